// internal/component/movement.go
package component

import "elemental-arena/internal/utils"

// Transform — позиция и поворот сущности. Yaw 0 смотрит вдоль +Z.
type Transform struct {
	Position utils.Vec3
	Yaw      float64
}

// Forward — направление взгляда в горизонтальной плоскости.
func (t *Transform) Forward() utils.Vec3 {
	return utils.Forward(t.Yaw)
}

// Body — твёрдое тело физической подложки.
type Body struct {
	Velocity            utils.Vec3
	Force               utils.Vec3 // Накопленная сила до следующего физического шага
	Mass                float64
	LinearDamping       float64
	Restitution         float64 // 1 — упругий отскок, 0 — гасим нормальную составляющую
	UseGravity          bool
	Kinematic           bool // Не двигается физикой и не получает отклика на столкновения
	ContinuousCollision bool
	Interpolate         bool

	Previous utils.Vec3 // Позиция до последнего шага, для интерполяции отрисовки
}

// AddForce accumulates a force applied on the next physics step.
func (b *Body) AddForce(f utils.Vec3) {
	b.Force = b.Force.Add(f)
}

// InverseMass is 0 for bodies physics must not move.
func (b *Body) InverseMass() float64 {
	if b.Kinematic {
		return 0
	}
	if b.Mass <= 0 {
		return 1
	}
	return 1 / b.Mass
}

// Motor holds the player's movement tuning and the input accumulated since the
// last render tick.
type Motor struct {
	MoveSpeed      float64
	TurnSpeed      float64 // degrees per call
	DashMultiplier float64

	Thrust float64 // В единицах MoveSpeed, знак — направление
	Turn   float64 // degrees
}
