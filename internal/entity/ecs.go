// internal/entity/ecs.go
package entity

import (
	"sort"

	"elemental-arena/internal/component"
	"elemental-arena/internal/element"
	"elemental-arena/internal/types"
)

type ECS struct {
	GameTime  float64
	TimeScale float64 // 0 — симуляция заморожена (конец игры)
	NextID    types.EntityID

	Transforms  map[types.EntityID]*component.Transform
	Bodies      map[types.EntityID]*component.Body
	Colliders   map[types.EntityID]*component.Collider
	Tags        map[types.EntityID]element.Tag
	Projectiles map[types.EntityID]*component.Projectile
	Walls       map[types.EntityID]*component.Wall
	Targets     map[types.EntityID]*component.Target
	Casters     map[types.EntityID]*component.Caster
	Lifetimes   map[types.EntityID]*component.Lifetime
	Animators   map[types.EntityID]*component.Animator
	Billboards  map[types.EntityID]*component.Billboard
	Explosions  map[types.EntityID]*component.Explosion
	Renderables map[types.EntityID]*component.Renderable
	Players     map[types.EntityID]*component.Player
	Motors      map[types.EntityID]*component.Motor

	// Сущности, помеченные на удаление в текущем тике. Удаляются в Flush.
	doomed map[types.EntityID]struct{}
}

func NewECS() *ECS {
	return &ECS{
		TimeScale:   1,
		NextID:      1,
		Transforms:  make(map[types.EntityID]*component.Transform),
		Bodies:      make(map[types.EntityID]*component.Body),
		Colliders:   make(map[types.EntityID]*component.Collider),
		Tags:        make(map[types.EntityID]element.Tag),
		Projectiles: make(map[types.EntityID]*component.Projectile),
		Walls:       make(map[types.EntityID]*component.Wall),
		Targets:     make(map[types.EntityID]*component.Target),
		Casters:     make(map[types.EntityID]*component.Caster),
		Lifetimes:   make(map[types.EntityID]*component.Lifetime),
		Animators:   make(map[types.EntityID]*component.Animator),
		Billboards:  make(map[types.EntityID]*component.Billboard),
		Explosions:  make(map[types.EntityID]*component.Explosion),
		Renderables: make(map[types.EntityID]*component.Renderable),
		Players:     make(map[types.EntityID]*component.Player),
		Motors:      make(map[types.EntityID]*component.Motor),
		doomed:      make(map[types.EntityID]struct{}),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// Tag returns the classification of an entity. Untagged entities are environment.
func (ecs *ECS) Tag(id types.EntityID) element.Tag {
	if tag, ok := ecs.Tags[id]; ok {
		return tag
	}
	return element.NewTag(element.KindEnvironment, element.None)
}

// Destroy marks an entity for removal at the end of the tick. Repeated calls are no-ops.
func (ecs *ECS) Destroy(id types.EntityID) {
	if id == types.NoEntity {
		return
	}
	ecs.doomed[id] = struct{}{}
}

// IsDestroyed reports whether the entity is already marked for removal.
func (ecs *ECS) IsDestroyed(id types.EntityID) bool {
	_, ok := ecs.doomed[id]
	return ok
}

// IsAlive reports whether the entity exists and is not marked for removal.
func (ecs *ECS) IsAlive(id types.EntityID) bool {
	if ecs.IsDestroyed(id) {
		return false
	}
	_, ok := ecs.Transforms[id]
	return ok
}

// Flush removes every entity marked by Destroy and returns their ids in ascending order.
func (ecs *ECS) Flush() []types.EntityID {
	if len(ecs.doomed) == 0 {
		return nil
	}
	removed := make([]types.EntityID, 0, len(ecs.doomed))
	for id := range ecs.doomed {
		ecs.remove(id)
		removed = append(removed, id)
	}
	ecs.doomed = make(map[types.EntityID]struct{})
	sort.Slice(removed, func(i, j int) bool { return removed[i] < removed[j] })
	return removed
}

func (ecs *ECS) remove(id types.EntityID) {
	delete(ecs.Transforms, id)
	delete(ecs.Bodies, id)
	delete(ecs.Colliders, id)
	delete(ecs.Tags, id)
	delete(ecs.Projectiles, id)
	delete(ecs.Walls, id)
	delete(ecs.Targets, id)
	delete(ecs.Casters, id)
	delete(ecs.Lifetimes, id)
	delete(ecs.Animators, id)
	delete(ecs.Billboards, id)
	delete(ecs.Explosions, id)
	delete(ecs.Renderables, id)
	delete(ecs.Players, id)
	delete(ecs.Motors, id)
}

// SortedIDs returns the keys of a component map in ascending order so systems
// iterate deterministically.
func SortedIDs[T any](m map[types.EntityID]T) []types.EntityID {
	ids := make([]types.EntityID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Reset drops every entity and restores the initial clock, keeping the ECS
// pointer valid for systems that hold it.
func (ecs *ECS) Reset() {
	*ecs = *NewECS()
}
