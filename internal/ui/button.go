// internal/ui/button.go
package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"elemental-arena/internal/config"
)

// Button представляет кликабельную кнопку в UI.
type Button struct {
	Rect  image.Rectangle
	Text  string
	Color color.RGBA
	Hover color.RGBA
}

// NewButton centers a button of the given size at (cx, cy).
func NewButton(cx, cy, width, height int, label string) *Button {
	return &Button{
		Rect:  image.Rect(cx-width/2, cy-height/2, cx+width/2, cy+height/2),
		Text:  label,
		Color: config.ButtonColor,
		Hover: config.ButtonHoverColor,
	}
}

func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

func (b *Button) Draw(screen *ebiten.Image, face font.Face, cursorX, cursorY int) {
	clr := b.Color
	if b.Contains(cursorX, cursorY) {
		clr = b.Hover
	}
	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, clr, true)
	vector.StrokeRect(screen, x, y, w, h, 1, config.StrokeColor, true)

	bounds := text.BoundString(face, b.Text)
	textX := b.Rect.Min.X + (b.Rect.Dx()-bounds.Dx())/2
	textY := b.Rect.Min.Y + (b.Rect.Dy()-bounds.Dy())/2 - bounds.Min.Y
	text.Draw(screen, b.Text, face, textX, textY, config.TextLightColor)
}
