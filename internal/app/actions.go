// internal/app/actions.go
package app

import (
	"elemental-arena/internal/element"
)

// Каждый вызов — ровно одна попытка через ворота перезарядки.
// После конца игры ввод игнорируется.

// FireAttack throws a fire ball. Returns false for "no shot".
func (g *Game) FireAttack() bool { return g.attack(element.Fire) }

func (g *Game) WaterAttack() bool { return g.attack(element.Water) }

func (g *Game) EarthAttack() bool { return g.attack(element.Earth) }

func (g *Game) SpawnFireWall() bool { return g.wall(element.Fire) }

func (g *Game) SpawnWaterWall() bool { return g.wall(element.Water) }

func (g *Game) SpawnEarthWall() bool { return g.wall(element.Earth) }

func (g *Game) Forward() {
	if !g.IsGameOver() {
		g.MovementSystem.Forward(g.PlayerID)
	}
}

func (g *Game) Backward() {
	if !g.IsGameOver() {
		g.MovementSystem.Backward(g.PlayerID)
	}
}

func (g *Game) TurnLeft() {
	if !g.IsGameOver() {
		g.MovementSystem.TurnLeft(g.PlayerID)
	}
}

func (g *Game) TurnRight() {
	if !g.IsGameOver() {
		g.MovementSystem.TurnRight(g.PlayerID)
	}
}

// Dash is gated by its own cooldown slot.
func (g *Game) Dash() bool {
	if g.IsGameOver() {
		return false
	}
	return g.MovementSystem.Dash(g.PlayerID)
}

func (g *Game) attack(e element.Element) bool {
	if g.IsGameOver() {
		return false
	}
	_, ok := g.CasterSystem.Attack(g.PlayerID, e)
	return ok
}

func (g *Game) wall(e element.Element) bool {
	if g.IsGameOver() {
		return false
	}
	_, ok := g.CasterSystem.BuildWall(g.PlayerID, e)
	return ok
}
