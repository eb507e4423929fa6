// internal/system/caster.go
package system

import (
	"log"

	"elemental-arena/internal/component"
	"elemental-arena/internal/defs"
	"elemental-arena/internal/element"
	"elemental-arena/internal/entity"
	"elemental-arena/internal/types"
)

// CasterSystem — единственная точка входа для атак и стен.
// Каждая попытка проходит через ворота перезарядки ровно один раз.
type CasterSystem struct {
	ecs         *entity.ECS
	arena       *defs.ArenaDefinition
	projectiles *ProjectileSystem
	walls       *WallSystem
}

func NewCasterSystem(ecs *entity.ECS, arena *defs.ArenaDefinition, projectiles *ProjectileSystem, walls *WallSystem) *CasterSystem {
	return &CasterSystem{
		ecs:         ecs,
		arena:       arena,
		projectiles: projectiles,
		walls:       walls,
	}
}

// PlayerCaster builds a caster with every ball and wall slot plus dash, tuned from the arena.
func PlayerCaster(arena *defs.ArenaDefinition) *component.Caster {
	c := &component.Caster{Slots: make(map[component.Ability]*component.Cooldown)}
	for _, e := range element.All {
		if def, ok := arena.Projectile(e); ok {
			c.Slots[BallAbility(e)] = component.NewCooldown(def.Cooldown)
		}
		if def, ok := arena.Wall(e); ok {
			c.Slots[WallAbility(e)] = component.NewCooldown(def.Cooldown)
		}
	}
	c.Slots[component.AbilityDash] = component.NewCooldown(arena.Player.DashCooldown)
	return c
}

// TargetCaster builds a caster that can only throw its own element.
func TargetCaster(e element.Element, cooldown float64) *component.Caster {
	return &component.Caster{Slots: map[component.Ability]*component.Cooldown{
		BallAbility(e): component.NewCooldown(cooldown),
	}}
}

// Attack requests a projectile of element e from caster. It returns the new
// projectile, or false when the slot is missing or still cooling down.
func (s *CasterSystem) Attack(caster types.EntityID, e element.Element) (types.EntityID, bool) {
	slot, tr, ok := s.lookup(caster, BallAbility(e))
	if !ok {
		return types.NoEntity, false
	}
	def, ok := s.arena.Projectile(e)
	if !ok {
		log.Printf("CasterSystem: warning: no %s projectile definition", e)
		return types.NoEntity, false
	}
	if !slot.TryActivate(s.ecs.GameTime) {
		return types.NoEntity, false // No shot
	}
	return s.projectiles.Spawn(caster, def, tr.Position, tr.Yaw), true
}

// BuildWall requests a wall of element e in front of caster.
func (s *CasterSystem) BuildWall(caster types.EntityID, e element.Element) (types.EntityID, bool) {
	slot, tr, ok := s.lookup(caster, WallAbility(e))
	if !ok {
		return types.NoEntity, false
	}
	def, ok := s.arena.Wall(e)
	if !ok {
		log.Printf("CasterSystem: warning: no %s wall definition", e)
		return types.NoEntity, false
	}
	if !slot.TryActivate(s.ecs.GameTime) {
		log.Printf("CasterSystem: wall on cooldown")
		return types.NoEntity, false
	}
	return s.walls.Spawn(def, tr.Position, tr.Yaw), true
}

// TryAbility passes a non-spawning ability (dash) through its gate.
func (s *CasterSystem) TryAbility(caster types.EntityID, ability component.Ability) bool {
	slot, _, ok := s.lookup(caster, ability)
	if !ok {
		return false
	}
	return slot.TryActivate(s.ecs.GameTime)
}

func (s *CasterSystem) lookup(caster types.EntityID, ability component.Ability) (*component.Cooldown, *component.Transform, bool) {
	c, ok := s.ecs.Casters[caster]
	if !ok || !s.ecs.IsAlive(caster) {
		return nil, nil, false
	}
	tr, ok := s.ecs.Transforms[caster]
	if !ok {
		return nil, nil, false
	}
	slot := c.Slot(ability)
	if slot == nil {
		return nil, nil, false
	}
	return slot, tr, true
}
