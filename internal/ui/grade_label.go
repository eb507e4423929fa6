// internal/ui/grade_label.go
package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"elemental-arena/internal/config"
)

// GradeLabel показывает текущую оценку. Текст берётся у игры каждый кадр.
type GradeLabel struct {
	X, Y int
}

func NewGradeLabel(x, y int) *GradeLabel {
	return &GradeLabel{X: x, Y: y}
}

func GradeText(grade string) string {
	return "Grade: " + grade
}

func (l *GradeLabel) Draw(screen *ebiten.Image, face font.Face, grade string) {
	text.Draw(screen, GradeText(grade), face, l.X, l.Y, config.TextLightColor)
}
