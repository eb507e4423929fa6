// internal/state/game_state.go
package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"elemental-arena/internal/app"
	"elemental-arena/internal/component"
	"elemental-arena/internal/config"
	"elemental-arena/internal/system"
	"elemental-arena/internal/ui"
)

// Нажатие — одна попытка через ворота перезарядки.
var castKeys = []struct {
	key  ebiten.Key
	cast func(*app.Game) bool
}{
	{ebiten.KeyZ, (*app.Game).FireAttack},
	{ebiten.KeyX, (*app.Game).WaterAttack},
	{ebiten.KeyC, (*app.Game).EarthAttack},
	{ebiten.KeyA, (*app.Game).SpawnFireWall},
	{ebiten.KeyS, (*app.Game).SpawnWaterWall},
	{ebiten.KeyD, (*app.Game).SpawnEarthWall},
	{ebiten.KeySpace, (*app.Game).Dash},
}

// GameState — основное состояние: ввод, симуляция и HUD.
type GameState struct {
	sm        *StateMachine
	game      *app.Game
	renderer  *system.RenderSystem
	face      font.Face
	grade     *ui.GradeLabel
	cooldowns *ui.CooldownIndicator
}

func NewGameState(sm *StateMachine, game *app.Game) *GameState {
	return &GameState{
		sm:        sm,
		game:      game,
		renderer:  system.NewRenderSystem(game.ECS),
		face:      basicfont.Face7x13,
		grade:     ui.NewGradeLabel(16, 24),
		cooldowns: ui.NewCooldownIndicator(16, 44),
	}
}

func (g *GameState) Enter() {}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.game.EndGame()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.game.ResetGame()
	}
	if g.game.IsGameOver() {
		g.sm.SetState(NewResultState(g.sm, g))
		return
	}

	// Движение — пока клавиша зажата.
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		g.game.Forward()
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		g.game.Backward()
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		g.game.TurnLeft()
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		g.game.TurnRight()
	}
	for _, b := range castKeys {
		if inpututil.IsKeyJustPressed(b.key) {
			b.cast(g.game)
		}
	}

	g.game.Update(deltaTime)
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.game.InterpolationAlpha())
	g.grade.Draw(screen, g.face, g.game.CurrentGrade())
	g.cooldowns.Draw(screen, g.face, g.cooldownSlots(), g.game.Now())

	hint := "arrows move  space dash  Z/X/C balls  A/S/D walls  esc end  R restart"
	text.Draw(screen, hint, g.face, 16, config.ScreenHeight-16, config.TextLightColor)
	status := fmt.Sprintf("session %.8s  hits %d", g.game.SessionID(), g.game.PlayerHits())
	text.Draw(screen, status, g.face, config.ScreenWidth-220, 24, config.TextLightColor)
}

func (g *GameState) Exit() {}

func (g *GameState) cooldownSlots() []ui.CooldownSlot {
	return []ui.CooldownSlot{
		{Label: "fire ball", Color: config.FireColor, Slot: g.game.Cooldown(component.AbilityFireBall)},
		{Label: "water ball", Color: config.WaterColor, Slot: g.game.Cooldown(component.AbilityWaterBall)},
		{Label: "earth ball", Color: config.EarthColor, Slot: g.game.Cooldown(component.AbilityEarthBall)},
		{Label: "fire wall", Color: config.FireColor, Slot: g.game.Cooldown(component.AbilityFireWall)},
		{Label: "water wall", Color: config.WaterColor, Slot: g.game.Cooldown(component.AbilityWaterWall)},
		{Label: "earth wall", Color: config.EarthColor, Slot: g.game.Cooldown(component.AbilityEarthWall)},
		{Label: "dash", Color: config.PlayerColor, Slot: g.game.Cooldown(component.AbilityDash)},
	}
}
