// internal/ui/cooldown_indicator.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"elemental-arena/internal/component"
	"elemental-arena/internal/config"
)

const (
	barWidth    = 90
	barHeight   = 10
	barGap      = 22
	borderWidth = 1
)

var barFill = color.RGBA{70, 100, 120, 220}

// CooldownSlot is one bar of the indicator.
type CooldownSlot struct {
	Label string
	Color color.RGBA
	Slot  *component.Cooldown
}

// CooldownIndicator рисует полосы перезарядки способностей игрока.
type CooldownIndicator struct {
	X, Y float32
}

func NewCooldownIndicator(x, y float32) *CooldownIndicator {
	return &CooldownIndicator{X: x, Y: y}
}

// Readiness is 1 when the slot is ready and grows linearly from 0 after a cast.
func Readiness(slot *component.Cooldown, now float64) float64 {
	if slot == nil || slot.Duration <= 0 || slot.Ready(now) {
		return 1
	}
	remaining := slot.NextAllowed - now
	r := 1 - remaining/slot.Duration
	if r < 0 {
		return 0
	}
	return r
}

func (i *CooldownIndicator) Draw(screen *ebiten.Image, face font.Face, slots []CooldownSlot, now float64) {
	for j, s := range slots {
		y := i.Y + float32(j)*barGap
		vector.StrokeRect(screen, i.X, y, barWidth, barHeight, borderWidth, config.StrokeColor, true)

		fill := barFill
		if s.Slot != nil && s.Slot.Ready(now) {
			fill = s.Color
		}
		w := float32(float64(barWidth-borderWidth*2) * Readiness(s.Slot, now))
		if w > 0 {
			vector.DrawFilledRect(screen, i.X+borderWidth, y+borderWidth, w, barHeight-borderWidth*2, fill, true)
		}
		text.Draw(screen, s.Label, face, int(i.X)+barWidth+8, int(y)+barHeight, config.TextLightColor)
	}
}
