// internal/system/visual_effect.go
package system

import (
	"elemental-arena/internal/component"
	"elemental-arena/internal/defs"
	"elemental-arena/internal/entity"
	"elemental-arena/internal/types"
	"elemental-arena/internal/utils"
)

// VisualEffectSystem управляет визуальными эффектами, такими как взрывы.
type VisualEffectSystem struct {
	ecs *entity.ECS
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(ecs *entity.ECS) *VisualEffectSystem {
	return &VisualEffectSystem{ecs: ecs}
}

// SpawnExplosion creates an expanding explosion scaled by scale.
func (s *VisualEffectSystem) SpawnExplosion(pos utils.Vec3, def defs.ExplosionDefinition, scale float64) types.EntityID {
	id := s.ecs.NewEntity()
	s.ecs.Transforms[id] = &component.Transform{Position: pos}
	s.ecs.Explosions[id] = &component.Explosion{
		Duration:  def.Duration,
		MaxRadius: def.Radius,
		Scale:     scale,
	}
	s.ecs.Renderables[id] = &component.Renderable{Color: def.Color, Visible: true}
	return id
}

// Update обновляет все активные визуальные эффекты.
func (s *VisualEffectSystem) Update(deltaTime float64) {
	for id, explosion := range s.ecs.Explosions {
		explosion.Timer += deltaTime

		if explosion.Timer >= explosion.Duration {
			// Эффект завершился, удаляем его
			s.ecs.Destroy(id)
			continue
		}

		// Обновляем радиус для анимации
		if renderable, ok := s.ecs.Renderables[id]; ok {
			progress := explosion.Timer / explosion.Duration
			d := 2 * progress * explosion.MaxRadius * explosion.Scale
			renderable.Size = utils.Vec3{X: d, Y: d, Z: d}
		}
	}
}
