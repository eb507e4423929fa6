// internal/state/result_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"elemental-arena/internal/config"
	"elemental-arena/internal/ui"
)

var _ State = (*ResultState)(nil)

// ResultState рисует итог поверх замороженной арены и ждёт перезапуска.
type ResultState struct {
	sm       *StateMachine
	previous *GameState
	restart  *ui.Button
}

func NewResultState(sm *StateMachine, previous *GameState) *ResultState {
	return &ResultState{
		sm:       sm,
		previous: previous,
		restart:  ui.NewButton(config.ScreenWidth/2, config.ScreenHeight/2+40, 160, 36, "Restart"),
	}
}

func (s *ResultState) Enter() {}

func (s *ResultState) Update(deltaTime float64) {
	restart := inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeyEnter)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		restart = restart || s.restart.Contains(x, y)
	}
	if !restart {
		return
	}
	s.previous.game.ResetGame()
	s.sm.SetState(s.previous)
}

func (s *ResultState) Draw(screen *ebiten.Image) {
	s.previous.Draw(screen)
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)

	face := s.previous.face
	game := s.previous.game
	title := "GAME OVER"
	bounds := text.BoundString(face, title)
	text.Draw(screen, title, face, (config.ScreenWidth-bounds.Dx())/2, config.ScreenHeight/2-30, config.TextLightColor)

	grade := ui.GradeText(game.CurrentGrade())
	bounds = text.BoundString(face, grade)
	text.Draw(screen, grade, face, (config.ScreenWidth-bounds.Dx())/2, config.ScreenHeight/2-8, config.TextLightColor)

	x, y := ebiten.CursorPosition()
	s.restart.Draw(screen, face, x, y)
}

func (s *ResultState) Exit() {}
