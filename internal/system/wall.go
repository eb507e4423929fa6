// internal/system/wall.go
package system

import (
	"log"

	"elemental-arena/internal/component"
	"elemental-arena/internal/config"
	"elemental-arena/internal/defs"
	"elemental-arena/internal/element"
	"elemental-arena/internal/entity"
	"elemental-arena/internal/event"
	"elemental-arena/internal/types"
	"elemental-arena/internal/utils"
)

// WallSystem поднимает стены из-под земли и удаляет разбитые.
// Сама стена пассивна: её разрушает только снаряд.
type WallSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewWallSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *WallSystem {
	return &WallSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

// RenderedHeight is the height a wall rises by: its visuals, then its collider, then 1.
func RenderedHeight(def defs.WallDefinition) float64 {
	if def.Visuals.Size.Y > 0 {
		return def.Visuals.Size.Y
	}
	if def.HalfExtents.Y > 0 {
		return def.HalfExtents.Y * 2
	}
	return config.DefaultWallHeight
}

// Spawn places a wall at distance in front of origin, buried by half its height.
func (s *WallSystem) Spawn(def defs.WallDefinition, origin utils.Vec3, yaw float64) types.EntityID {
	now := s.ecs.GameTime
	height := RenderedHeight(def)

	ground := utils.Vec3{X: origin.X, Z: origin.Z}.Add(utils.Forward(yaw).Scale(def.Distance))
	spawnPos := utils.Vec3{X: ground.X, Y: -height / 2, Z: ground.Z}

	id := s.ecs.NewEntity()
	s.ecs.Transforms[id] = &component.Transform{Position: spawnPos, Yaw: yaw}
	s.ecs.Bodies[id] = &component.Body{Kinematic: true, Previous: spawnPos}
	s.ecs.Colliders[id] = &component.Collider{Shape: component.ShapeBox, HalfExtents: def.HalfExtents, Enabled: true}
	s.ecs.Tags[id] = element.NewTag(element.KindWall, def.Element)
	s.ecs.Walls[id] = &component.Wall{
		Element:        def.Element,
		SpawnPosition:  spawnPos,
		TargetPosition: spawnPos.Add(utils.Up.Scale(height)),
		Height:         height,
		Speed:          def.Speed,
		Lifespan:       def.Lifespan,
		Rising:         true,
	}
	s.ecs.Lifetimes[id] = &component.Lifetime{ExpiresAt: now + def.Lifespan}
	s.ecs.Renderables[id] = &component.Renderable{
		Color:     def.Visuals.Color,
		Size:      def.Visuals.Size,
		HasStroke: true,
		Visible:   true,
	}

	log.Printf("WallSystem: spawned %s wall at %.2f, %.2f, %.2f", def.Element, spawnPos.X, spawnPos.Y, spawnPos.Z)
	s.dispatch(event.WallSpawned, id, 0)
	return id
}

// Update moves rising walls toward their target at constant speed.
func (s *WallSystem) Update(deltaTime float64) {
	for id, wall := range s.ecs.Walls {
		if !wall.Rising {
			continue
		}
		tr, ok := s.ecs.Transforms[id]
		if !ok {
			continue
		}
		tr.Position = utils.MoveTowards(tr.Position, wall.TargetPosition, wall.Speed*deltaTime)
		if utils.Distance(tr.Position, wall.TargetPosition) < config.WallRiseEpsilon {
			wall.Rising = false
		}
	}
}

// Break removes a wall hit by its counter-element. Returns false if the wall is
// already gone.
func (s *WallSystem) Break(id, by types.EntityID) bool {
	if _, ok := s.ecs.Walls[id]; !ok || s.ecs.IsDestroyed(id) {
		return false
	}
	s.ecs.Destroy(id)
	s.dispatch(event.WallBroken, id, by)
	return true
}

func (s *WallSystem) dispatch(t event.EventType, id, by types.EntityID) {
	data := event.WallData{ID: id, BrokenBy: by}
	if wall, ok := s.ecs.Walls[id]; ok {
		data.Element = wall.Element
	}
	if tr, ok := s.ecs.Transforms[id]; ok {
		data.Position = tr.Position
	}
	s.eventDispatcher.Dispatch(event.Event{Type: t, Data: data})
}
