// internal/system/movement.go
package system

import (
	"elemental-arena/internal/component"
	"elemental-arena/internal/entity"
	"elemental-arena/internal/types"
	"elemental-arena/internal/utils"
)

// MovementSystem превращает накопленный ввод мотора в силу и поворот.
type MovementSystem struct {
	ecs    *entity.ECS
	caster *CasterSystem
}

func NewMovementSystem(ecs *entity.ECS, caster *CasterSystem) *MovementSystem {
	return &MovementSystem{ecs: ecs, caster: caster}
}

func (s *MovementSystem) Forward(id types.EntityID) {
	if m, ok := s.ecs.Motors[id]; ok {
		m.Thrust++
	}
}

func (s *MovementSystem) Backward(id types.EntityID) {
	if m, ok := s.ecs.Motors[id]; ok {
		m.Thrust--
	}
}

func (s *MovementSystem) TurnLeft(id types.EntityID) {
	if m, ok := s.ecs.Motors[id]; ok {
		m.Turn -= m.TurnSpeed
	}
}

func (s *MovementSystem) TurnRight(id types.EntityID) {
	if m, ok := s.ecs.Motors[id]; ok {
		m.Turn += m.TurnSpeed
	}
}

// Dash pushes forward with the dash multiplier if the dash slot is ready.
func (s *MovementSystem) Dash(id types.EntityID) bool {
	m, ok := s.ecs.Motors[id]
	if !ok {
		return false
	}
	if !s.caster.TryAbility(id, component.AbilityDash) {
		return false
	}
	m.Thrust += m.DashMultiplier
	return true
}

// Update applies and clears the input accumulated since the previous call.
// The force is consumed by the next physics step.
func (s *MovementSystem) Update(deltaTime float64) {
	for id, m := range s.ecs.Motors {
		if m.Thrust == 0 && m.Turn == 0 {
			continue
		}
		tr, ok := s.ecs.Transforms[id]
		if !ok {
			continue
		}
		tr.Yaw = utils.NormalizeAngle(tr.Yaw + utils.Deg2Rad(m.Turn))
		if body, ok := s.ecs.Bodies[id]; ok && m.Thrust != 0 {
			body.AddForce(tr.Forward().Scale(m.MoveSpeed * m.Thrust))
		}
		m.Thrust, m.Turn = 0, 0
	}
}
