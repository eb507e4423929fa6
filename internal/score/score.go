// internal/score/score.go
package score

import (
	"log"
	"strings"

	"github.com/google/uuid"
)

// gradeSteps — шкала оценок до F. После F добавляются минусы: F-, F--, ...
var gradeSteps = []string{
	"A+", "A", "A-",
	"B+", "B", "B-",
	"C+", "C", "C-",
	"D+", "D", "D-",
	"F",
}

// Grade maps a hit count to its letter grade. Negative counts are treated as 0.
func Grade(hits int) string {
	if hits < 0 {
		hits = 0
	}
	fIndex := len(gradeSteps) - 1
	if hits <= fIndex {
		return gradeSteps[hits]
	}
	return "F" + strings.Repeat("-", hits-fIndex)
}

// Session holds the score state of one play session. It is owned by the game and
// handed to whoever reports hits or reads the grade.
type Session struct {
	id       string
	hits     int
	grade    string
	gameOver bool
}

// NewSession creates a fresh session with grade A+.
func NewSession() *Session {
	s := &Session{}
	s.Reset()
	return s
}

// RegisterHit counts one player hit unless the game is over.
func (s *Session) RegisterHit() {
	if s.gameOver {
		return
	}
	s.hits++
	s.grade = Grade(s.hits)
}

// EndGame latches the game-over flag. It cannot be cleared except by Reset.
func (s *Session) EndGame() {
	if s.gameOver {
		return
	}
	s.gameOver = true
	log.Printf("Session %s: game over with %d hits, grade %s", s.id, s.hits, s.grade)
}

// Reset reinitialises the whole session and assigns a new session id.
func (s *Session) Reset() {
	s.id = uuid.New().String()
	s.hits = 0
	s.grade = Grade(0)
	s.gameOver = false
}

func (s *Session) ID() string { return s.id }
func (s *Session) Hits() int { return s.hits }
func (s *Session) CurrentGrade() string { return s.grade }
func (s *Session) IsGameOver() bool { return s.gameOver }
