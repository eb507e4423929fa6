// internal/app/arena.go
package app

import (
	"elemental-arena/internal/component"
	"elemental-arena/internal/config"
	"elemental-arena/internal/element"
	"elemental-arena/internal/system"
	"elemental-arena/internal/utils"
)

// buildArena creates the player, the environment and the targets.
func (g *Game) buildArena() {
	g.createPlayerEntity()
	g.placeEnvironment()
	for _, def := range g.Arena.Targets {
		g.TargetSystem.Spawn(def, g.PlayerID)
	}
}

func (g *Game) createPlayerEntity() {
	def := g.Arena.Player
	g.PlayerID = g.ECS.NewEntity()
	id := g.PlayerID

	g.ECS.Transforms[id] = &component.Transform{Position: def.Position, Yaw: utils.Deg2Rad(def.Yaw)}
	g.ECS.Bodies[id] = &component.Body{
		Mass:          config.PlayerMass,
		LinearDamping: config.PlayerLinearDamping,
		Interpolate:   true,
		Previous:      def.Position,
	}
	g.ECS.Colliders[id] = &component.Collider{Shape: component.ShapeSphere, Radius: def.Radius, Enabled: true}
	g.ECS.Tags[id] = element.NewTag(element.KindPlayer, element.None)
	g.ECS.Players[id] = &component.Player{}
	g.ECS.Casters[id] = system.PlayerCaster(g.Arena)
	g.ECS.Motors[id] = &component.Motor{
		MoveSpeed:      def.MoveSpeed,
		TurnSpeed:      def.TurnSpeed,
		DashMultiplier: def.DashMultiplier,
	}
	size := def.Radius * 2
	g.ECS.Renderables[id] = &component.Renderable{
		Color:     config.PlayerColor,
		Size:      utils.Vec3{X: size, Y: size, Z: size},
		HasStroke: true,
		Visible:   true,
	}
}

func (g *Game) placeEnvironment() {
	for _, def := range g.Arena.Environment {
		id := g.ECS.NewEntity()
		g.ECS.Transforms[id] = &component.Transform{Position: def.Position}
		g.ECS.Colliders[id] = &component.Collider{Shape: component.ShapeBox, HalfExtents: def.HalfExtents, Enabled: true}
		g.ECS.Tags[id] = element.NewTag(element.KindEnvironment, element.None)
	}
}
