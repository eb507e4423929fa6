// internal/system/projectile.go
package system

import (
	"elemental-arena/internal/component"
	"elemental-arena/internal/defs"
	"elemental-arena/internal/element"
	"elemental-arena/internal/entity"
	"elemental-arena/internal/event"
	"elemental-arena/internal/types"
	"elemental-arena/internal/utils"
)

// ProjectileSystem создаёт стихийные снаряды и решает исход их столкновений.
type ProjectileSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	walls           *WallSystem
	table           element.Table
}

func NewProjectileSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, walls *WallSystem, table element.Table) *ProjectileSystem {
	return &ProjectileSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		walls:           walls,
		table:           table,
	}
}

// Spawn creates a projectile in front of origin, flying along yaw.
func (s *ProjectileSystem) Spawn(owner types.EntityID, def defs.ProjectileDefinition, origin utils.Vec3, yaw float64) types.EntityID {
	now := s.ecs.GameTime
	forward := utils.Forward(yaw)
	pos := origin.Add(forward.Scale(def.SpawnOffset))

	id := s.ecs.NewEntity()
	s.ecs.Transforms[id] = &component.Transform{Position: pos, Yaw: yaw}
	s.ecs.Bodies[id] = &component.Body{
		Velocity:            forward.Scale(def.Speed),
		Mass:                1,
		Restitution:         1,
		UseGravity:          false,
		ContinuousCollision: true,
		Interpolate:         true,
		Previous:            pos,
	}
	s.ecs.Colliders[id] = &component.Collider{Shape: component.ShapeSphere, Radius: def.Radius, Enabled: true}
	s.ecs.Tags[id] = element.NewTag(element.KindProjectile, def.Element)
	s.ecs.Projectiles[id] = &component.Projectile{
		Element:         def.Element,
		Owner:           owner,
		SpawnTime:       now,
		DefaultLifespan: def.DefaultLifespan,
		BounceLifespan:  def.BounceLifespan,
	}
	s.ecs.Lifetimes[id] = &component.Lifetime{ExpiresAt: now + def.DefaultLifespan}
	s.ecs.Renderables[id] = &component.Renderable{
		Color:   def.Visuals.Color,
		Size:    def.Visuals.Size,
		Visible: true,
	}

	s.dispatch(event.ProjectileSpawned, id, 0)
	return id
}

// SnapshotVelocities records every projectile's velocity before the physics step
// applies its collision response.
func (s *ProjectileSystem) SnapshotVelocities() {
	for id, proj := range s.ecs.Projectiles {
		if body, ok := s.ecs.Bodies[id]; ok {
			proj.PreCollisionVelocity = body.Velocity
		}
	}
}

// OnCollisionEnter resolves a contact with the shared dominance rules.
func (s *ProjectileSystem) OnCollisionEnter(self, other types.EntityID) {
	proj, ok := s.ecs.Projectiles[self]
	if !ok || s.ecs.IsDestroyed(self) {
		return
	}

	switch s.table.ResolveProjectile(proj.Element, s.ecs.Tag(other)) {
	case element.ProjectileHitsPlayer:
		s.ecs.Destroy(self)
		s.eventDispatcher.Dispatch(event.Event{Type: event.PlayerHit, Data: event.PlayerHitData{
			Player:     other,
			Projectile: self,
			Element:    proj.Element,
		}})
		s.dispatch(event.ProjectileDestroyed, self, other)
	case element.ProjectileDestroyed:
		s.ecs.Destroy(self)
		s.dispatch(event.ProjectileDestroyed, self, other)
	case element.ProjectileBreaksWall:
		s.walls.Break(other, self)
		// Пролетаем сквозь: отклик физики от стены отменяется.
		if body, ok := s.ecs.Bodies[self]; ok {
			body.Velocity = proj.PreCollisionVelocity
		}
	default:
		s.bounce(self, other, proj)
	}
}

// bounce keeps the projectile alive; the physics response already reflected it.
func (s *ProjectileSystem) bounce(self, other types.EntityID, proj *component.Projectile) {
	proj.Bounces++
	if lifetime, ok := s.ecs.Lifetimes[self]; ok {
		lifetime.Schedule(s.ecs.GameTime + proj.BounceLifespan)
	}
	s.dispatch(event.ProjectileBounced, self, other)
}

func (s *ProjectileSystem) dispatch(t event.EventType, id, other types.EntityID) {
	data := event.ProjectileData{ID: id, Other: other}
	if proj, ok := s.ecs.Projectiles[id]; ok {
		data.Owner = proj.Owner
		data.Element = proj.Element
	}
	if tr, ok := s.ecs.Transforms[id]; ok {
		data.Position = tr.Position
	}
	s.eventDispatcher.Dispatch(event.Event{Type: t, Data: data})
}
