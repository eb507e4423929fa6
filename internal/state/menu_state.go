// internal/state/menu_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"elemental-arena/internal/app"
	"elemental-arena/internal/config"
)

// MenuState — заставка с управлением, Space запускает арену.
type MenuState struct {
	sm   *StateMachine
	game *app.Game
}

func NewMenuState(sm *StateMachine, game *app.Game) *MenuState {
	return &MenuState{sm: sm, game: game}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		m.sm.SetState(NewGameState(m.sm, m.game))
	}
}

var menuLines = []string{
	"ELEMENTAL ARENA",
	"",
	"fire beats earth, earth beats water, water beats fire",
	"a wall falls only to the element that beats it",
	"",
	"press space",
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	face := basicfont.Face7x13
	y := config.ScreenHeight/2 - len(menuLines)*10
	for _, line := range menuLines {
		bounds := text.BoundString(face, line)
		text.Draw(screen, line, face, (config.ScreenWidth-bounds.Dx())/2, y, config.TextLightColor)
		y += 20
	}
}

func (m *MenuState) Exit() {}
