// internal/system/lifetime.go
package system

import (
	"elemental-arena/internal/entity"
)

// LifetimeSystem уничтожает сущности с истёкшим сроком жизни.
type LifetimeSystem struct {
	ecs *entity.ECS
}

func NewLifetimeSystem(ecs *entity.ECS) *LifetimeSystem {
	return &LifetimeSystem{ecs: ecs}
}

func (s *LifetimeSystem) Update() {
	now := s.ecs.GameTime
	for id, lifetime := range s.ecs.Lifetimes {
		if lifetime.Expired(now) {
			s.ecs.Destroy(id)
		}
	}
}
