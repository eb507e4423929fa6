// internal/system/target.go
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

// TargetSystem ведёт манекены: поражение, ожидание конца анимации, взрыв и контратаку.
type TargetSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	caster          *CasterSystem
	effects         *VisualEffectSystem
	table           element.Table

	// Не больше одного ожидания на манекен; новое заменяет старое.
	defeatWaits map[types.EntityID]struct{}
}

func NewTargetSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, caster *CasterSystem, effects *VisualEffectSystem, table element.Table) *TargetSystem {
	return &TargetSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		caster:          caster,
		effects:         effects,
		table:           table,
		defeatWaits:     make(map[types.EntityID]struct{}),
	}
}

// Spawn places a training target. camera is the entity its billboard faces.
func (s *TargetSystem) Spawn(def defs.TargetDefinition, camera types.EntityID) types.EntityID {
	id := s.ecs.NewEntity()
	s.ecs.Transforms[id] = &component.Transform{Position: def.Position}
	s.ecs.Bodies[id] = &component.Body{
		Mass:          config.TargetMass,
		LinearDamping: config.TargetLinearDamping,
		UseGravity:    true,
		Previous:      def.Position,
	}
	s.ecs.Colliders[id] = &component.Collider{Shape: component.ShapeSphere, Radius: def.Radius, Enabled: true}
	s.ecs.Tags[id] = element.NewTag(element.KindTarget, def.Element)
	s.ecs.Casters[id] = TargetCaster(def.Element, def.Cooldown)

	target := &component.Target{
		Enabled:       true,
		Element:       def.Element,
		Explosion:     def.Explosion,
		ExplosionSize: def.ExplosionSize,
	}
	target.SetOnDefeatComplete(func() { s.spawnExplosion(id) })
	s.ecs.Targets[id] = target

	if def.Animation != nil {
		// Анимация поражения стоит на паузе до поражения.
		s.ecs.Animators[id] = &component.Animator{Length: def.Animation.Length, Loop: def.Animation.Loop}
	}
	if def.Billboard != nil {
		s.ecs.Billboards[id] = &component.Billboard{Enabled: true, Camera: camera, SmoothSpeed: def.Billboard.SmoothSpeed}
	}
	if def.Visuals == nil {
		log.Printf("TargetSystem: error: renderer is missing on target %q, target disabled", def.ID)
		target.Enabled = false
	} else {
		s.ecs.Renderables[id] = &component.Renderable{
			Color:     def.Visuals.Color,
			Size:      def.Visuals.Size,
			HasStroke: true,
			Visible:   true,
		}
	}
	return id
}

// OnCollisionEnter reacts to an elemental contact while the target is active.
func (s *TargetSystem) OnCollisionEnter(self, other types.EntityID) {
	target, ok := s.ecs.Targets[self]
	if !ok || !target.Enabled || target.State != component.TargetActive {
		return
	}
	switch s.table.ResolveTarget(target.Element, s.ecs.Tag(other)) {
	case element.TargetDefeat:
		s.Defeat(self, other)
	case element.TargetCounter:
		s.counterAttack(self, target)
	}
}

// Defeat moves an active target into the terminal Defeated state. It returns
// false if the target was already defeated.
func (s *TargetSystem) Defeat(id, by types.EntityID) bool {
	target, ok := s.ecs.Targets[id]
	if !ok || target.State == component.TargetDefeated {
		return false
	}
	target.State = component.TargetDefeated

	if col, ok := s.ecs.Colliders[id]; ok {
		col.Enabled = false
	}
	if body, ok := s.ecs.Bodies[id]; ok {
		body.Kinematic = true
		body.Velocity = utils.Zero
	}
	if bb, ok := s.ecs.Billboards[id]; ok {
		bb.Enabled = false
	}

	s.dispatch(event.TargetDefeated, id, by)

	if anim, ok := s.ecs.Animators[id]; ok {
		anim.Enabled = true
		s.watchDefeat(id)
		return true
	}
	// Без аниматора взрыв появляется сразу.
	target.CompleteDefeat()
	return true
}

// watchDefeat starts polling the defeat animation, replacing a pending poll.
func (s *TargetSystem) watchDefeat(id types.EntityID) {
	delete(s.defeatWaits, id)
	s.defeatWaits[id] = struct{}{}
}

// Update polls pending defeat animations once per render tick.
func (s *TargetSystem) Update(deltaTime float64) {
	for _, id := range entity.SortedIDs(s.defeatWaits) {
		target, ok := s.ecs.Targets[id]
		if !ok {
			delete(s.defeatWaits, id)
			continue
		}
		anim := s.ecs.Animators[id]
		// Зацикленная или выключенная анимация считается завершённой.
		if anim != nil && anim.Enabled && !anim.Loop && anim.NormalizedTime() < 1 {
			continue
		}
		delete(s.defeatWaits, id)
		target.CompleteDefeat()
	}
}

// PendingDefeats reports how many targets are waiting for their defeat animation.
func (s *TargetSystem) PendingDefeats() int {
	return len(s.defeatWaits)
}

func (s *TargetSystem) counterAttack(id types.EntityID, target *component.Target) {
	projectile, ok := s.caster.Attack(id, target.Element)
	if !ok {
		return
	}
	log.Printf("TargetSystem: counterattack by target %d with element %s", id, target.Element)
	s.dispatch(event.CounterAttack, id, projectile)
}

func (s *TargetSystem) spawnExplosion(id types.EntityID) {
	target, ok := s.ecs.Targets[id]
	if !ok {
		return
	}
	if target.Explosion == nil {
		log.Printf("TargetSystem: warning: explosion prefab is not assigned on target %d", id)
		return
	}
	tr, ok := s.ecs.Transforms[id]
	if !ok {
		return
	}
	pos := tr.Position.Add(utils.Up.Scale(config.ExplosionOffsetUp))
	explosion := s.effects.SpawnExplosion(pos, *target.Explosion, target.ExplosionSize)
	log.Printf("TargetSystem: explosion spawned at %.2f, %.2f, %.2f for target %d", pos.X, pos.Y, pos.Z, id)

	s.eventDispatcher.Dispatch(event.Event{Type: event.ExplosionSpawned, Data: event.ExplosionData{
		ID:       explosion,
		Target:   id,
		Position: pos,
		Scale:    target.ExplosionSize,
	}})
}

func (s *TargetSystem) dispatch(t event.EventType, id, projectile types.EntityID) {
	data := event.TargetData{ID: id, Projectile: projectile}
	if target, ok := s.ecs.Targets[id]; ok {
		data.Element = target.Element
	}
	if tr, ok := s.ecs.Transforms[id]; ok {
		data.Position = tr.Position
	}
	s.eventDispatcher.Dispatch(event.Event{Type: t, Data: data})
}
