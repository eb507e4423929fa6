// internal/system/collision.go
package system

import (
	"elemental-arena/internal/element"
	"elemental-arena/internal/entity"
	"elemental-arena/internal/types"
)

// CollisionHandler reacts to a contact begin from the point of view of self.
type CollisionHandler interface {
	OnCollisionEnter(self, other types.EntityID)
}

// CollisionSystem delivers every contact begin to both participants, routed by
// the participant's kind. Kinds without a handler (walls, players, environment)
// are passive.
type CollisionSystem struct {
	ecs      *entity.ECS
	handlers map[element.Kind]CollisionHandler
}

func NewCollisionSystem(ecs *entity.ECS) *CollisionSystem {
	return &CollisionSystem{
		ecs:      ecs,
		handlers: make(map[element.Kind]CollisionHandler),
	}
}

// Register sets the handler for one kind, replacing any previous one.
func (s *CollisionSystem) Register(kind element.Kind, handler CollisionHandler) {
	s.handlers[kind] = handler
}

// Dispatch delivers contacts in order. Destruction is deferred by the ECS, so both
// callbacks of a pair observe the same state.
func (s *CollisionSystem) Dispatch(contacts []Contact) {
	for _, c := range contacts {
		s.deliver(c.A, c.B)
		s.deliver(c.B, c.A)
	}
}

func (s *CollisionSystem) deliver(self, other types.EntityID) {
	if handler, ok := s.handlers[s.ecs.Tag(self).Kind]; ok {
		handler.OnCollisionEnter(self, other)
	}
}
