// internal/system/physics.go
package system

import (
	"math"

	"elemental-arena/internal/component"
	"elemental-arena/internal/config"
	"elemental-arena/internal/entity"
	"elemental-arena/internal/types"
	"elemental-arena/internal/utils"
)

const maxSweepSteps = 16

// Contact — пересечение двух коллайдеров на текущем шаге.
type Contact struct {
	A, B   types.EntityID // A < B
	Normal utils.Vec3     // From A toward B
	Depth  float64
}

type pairKey struct {
	a, b types.EntityID
}

// PhysicsSystem is a minimal rigid-body substrate: integration, sphere/sphere and
// sphere/box overlaps, a reflecting response and contact-begin reporting.
type PhysicsSystem struct {
	ecs      *entity.ECS
	gravity  float64
	touching map[pairKey]bool
}

func NewPhysicsSystem(ecs *entity.ECS) *PhysicsSystem {
	return &PhysicsSystem{
		ecs:      ecs,
		gravity:  config.Gravity,
		touching: make(map[pairKey]bool),
	}
}

// Step advances bodies by dt and returns the contacts that began on this step,
// ordered by (A, B).
func (s *PhysicsSystem) Step(dt float64) []Contact {
	s.integrate(dt)

	var begins []Contact
	current := make(map[pairKey]bool, len(s.touching))
	for _, c := range s.detect() {
		key := pairKey{c.A, c.B}
		current[key] = true
		s.respond(c)
		if !s.touching[key] {
			begins = append(begins, c)
		}
	}
	s.touching = current
	return begins
}

func (s *PhysicsSystem) integrate(dt float64) {
	for _, id := range entity.SortedIDs(s.ecs.Bodies) {
		body := s.ecs.Bodies[id]
		tr, ok := s.ecs.Transforms[id]
		if !ok {
			continue
		}
		body.Previous = tr.Position
		if body.Kinematic {
			body.Force = utils.Zero
			continue
		}

		acc := body.Force.Scale(body.InverseMass())
		if body.UseGravity {
			acc.Y += s.gravity
		}
		body.Velocity = body.Velocity.Add(acc.Scale(dt))
		if body.LinearDamping > 0 {
			body.Velocity = body.Velocity.Scale(1 / (1 + dt*body.LinearDamping))
		}
		body.Force = utils.Zero

		delta := body.Velocity.Scale(dt)
		if body.ContinuousCollision {
			s.sweep(id, tr, delta)
		} else {
			tr.Position = tr.Position.Add(delta)
		}
		if body.UseGravity {
			s.restOnGround(id, tr, body)
		}
	}
}

// sweep moves a fast sphere in sub-steps no longer than its radius and stops at
// the first overlap, so thin walls are not tunnelled through.
func (s *PhysicsSystem) sweep(id types.EntityID, tr *component.Transform, delta utils.Vec3) {
	col := s.ecs.Colliders[id]
	if col == nil || !col.Enabled || col.Shape != component.ShapeSphere || col.Radius <= 0 {
		tr.Position = tr.Position.Add(delta)
		return
	}
	steps := int(math.Ceil(delta.Length() / col.Radius))
	if steps < 1 {
		steps = 1
	}
	if steps > maxSweepSteps {
		steps = maxSweepSteps
	}
	step := delta.Scale(1 / float64(steps))
	for i := 0; i < steps; i++ {
		tr.Position = tr.Position.Add(step)
		if s.overlapsAny(id) {
			return
		}
	}
}

// Земля — плоскость y = 0, на ней лежат только тела с гравитацией.
func (s *PhysicsSystem) restOnGround(id types.EntityID, tr *component.Transform, body *component.Body) {
	bottom := tr.Position.Y
	if col, ok := s.ecs.Colliders[id]; ok {
		bottom -= col.Height() / 2
	}
	if bottom < 0 {
		tr.Position.Y -= bottom
		if body.Velocity.Y < 0 {
			body.Velocity.Y = 0
		}
	}
}

func (s *PhysicsSystem) overlapsAny(id types.EntityID) bool {
	for other := range s.ecs.Colliders {
		if other == id || s.ignored(id, other) {
			continue
		}
		if _, ok := s.overlap(id, other); ok {
			return true
		}
	}
	return false
}

func (s *PhysicsSystem) detect() []Contact {
	var contacts []Contact
	ids := entity.SortedIDs(s.ecs.Colliders)
	for i, a := range ids {
		for _, b := range ids[i+1:] {
			if s.ignored(a, b) {
				continue
			}
			if c, ok := s.overlap(a, b); ok {
				contacts = append(contacts, c)
			}
		}
	}
	return contacts
}

// ignored filters pairs that never produce contacts: disabled or doomed colliders,
// two static bodies, and a projectile with its caster before the first bounce.
func (s *PhysicsSystem) ignored(a, b types.EntityID) bool {
	ca, cb := s.ecs.Colliders[a], s.ecs.Colliders[b]
	if ca == nil || cb == nil || !ca.Enabled || !cb.Enabled {
		return true
	}
	if s.ecs.IsDestroyed(a) || s.ecs.IsDestroyed(b) {
		return true
	}
	if s.dynamicBody(a) == nil && s.dynamicBody(b) == nil {
		return true
	}
	if p, ok := s.ecs.Projectiles[a]; ok && p.Owner == b && p.Bounces == 0 {
		return true
	}
	if p, ok := s.ecs.Projectiles[b]; ok && p.Owner == a && p.Bounces == 0 {
		return true
	}
	return false
}

func (s *PhysicsSystem) dynamicBody(id types.EntityID) *component.Body {
	body, ok := s.ecs.Bodies[id]
	if !ok || body.Kinematic {
		return nil
	}
	return body
}

func (s *PhysicsSystem) overlap(a, b types.EntityID) (Contact, bool) {
	ta, okA := s.ecs.Transforms[a]
	tb, okB := s.ecs.Transforms[b]
	if !okA || !okB {
		return Contact{}, false
	}
	ca, cb := s.ecs.Colliders[a], s.ecs.Colliders[b]

	contact := Contact{A: a, B: b}
	switch {
	case ca.Shape == component.ShapeSphere && cb.Shape == component.ShapeSphere:
		d := tb.Position.Sub(ta.Position)
		dist := d.Length()
		r := ca.Radius + cb.Radius
		if dist >= r {
			return Contact{}, false
		}
		contact.Normal = d.Normalized()
		if contact.Normal == utils.Zero {
			contact.Normal = utils.Up
		}
		contact.Depth = r - dist
	case ca.Shape == component.ShapeSphere && cb.Shape == component.ShapeBox:
		n, depth, ok := sphereBox(ta.Position, ca.Radius, tb, cb)
		if !ok {
			return Contact{}, false
		}
		contact.Normal, contact.Depth = n.Scale(-1), depth
	case ca.Shape == component.ShapeBox && cb.Shape == component.ShapeSphere:
		n, depth, ok := sphereBox(tb.Position, cb.Radius, ta, ca)
		if !ok {
			return Contact{}, false
		}
		contact.Normal, contact.Depth = n, depth
	default:
		// box/box: стены и окружение статичны, такие пары не нужны
		return Contact{}, false
	}
	return contact, true
}

// sphereBox tests a sphere against a box rotated around Y by its transform's yaw.
// The returned normal points from the box toward the sphere.
func sphereBox(center utils.Vec3, radius float64, box *component.Transform, col *component.Collider) (utils.Vec3, float64, bool) {
	local := utils.RotateY(center.Sub(box.Position), -box.Yaw)
	h := col.HalfExtents
	closest := utils.Vec3{
		X: clamp(local.X, -h.X, h.X),
		Y: clamp(local.Y, -h.Y, h.Y),
		Z: clamp(local.Z, -h.Z, h.Z),
	}
	d := local.Sub(closest)
	dist := d.Length()
	if dist >= radius {
		return utils.Zero, 0, false
	}

	var normal utils.Vec3
	var depth float64
	if dist > 1e-9 {
		normal = d.Scale(1 / dist)
		depth = radius - dist
	} else {
		// Центр внутри коробки: выталкиваем по оси наименьшего проникновения.
		px := h.X - math.Abs(local.X)
		py := h.Y - math.Abs(local.Y)
		pz := h.Z - math.Abs(local.Z)
		switch {
		case px <= py && px <= pz:
			normal = utils.Vec3{X: sign(local.X)}
			depth = radius + px
		case py <= pz:
			normal = utils.Vec3{Y: sign(local.Y)}
			depth = radius + py
		default:
			normal = utils.Vec3{Z: sign(local.Z)}
			depth = radius + pz
		}
	}
	return utils.RotateY(normal, box.Yaw), depth, true
}

// respond separates overlapping bodies by inverse mass and reflects the velocity
// of each dynamic body that moves into the contact.
func (s *PhysicsSystem) respond(c Contact) {
	ba, bb := s.dynamicBody(c.A), s.dynamicBody(c.B)
	var invA, invB float64
	if ba != nil {
		invA = ba.InverseMass()
	}
	if bb != nil {
		invB = bb.InverseMass()
	}
	total := invA + invB
	if total == 0 {
		return
	}

	if invA > 0 {
		ta := s.ecs.Transforms[c.A]
		ta.Position = ta.Position.Sub(c.Normal.Scale(c.Depth * invA / total))
		if vn := ba.Velocity.Dot(c.Normal); vn > 0 {
			ba.Velocity = ba.Velocity.Sub(c.Normal.Scale((1 + ba.Restitution) * vn))
		}
	}
	if invB > 0 {
		tb := s.ecs.Transforms[c.B]
		tb.Position = tb.Position.Add(c.Normal.Scale(c.Depth * invB / total))
		if vn := bb.Velocity.Dot(c.Normal); vn < 0 {
			bb.Velocity = bb.Velocity.Sub(c.Normal.Scale((1 + bb.Restitution) * vn))
		}
	}
}
