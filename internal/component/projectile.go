// internal/component/projectile.go
package component

import (
	"elemental-arena/internal/element"
	"elemental-arena/internal/types"
	"elemental-arena/internal/utils"
)

// Projectile представляет летящий стихийный снаряд.
type Projectile struct {
	Element         element.Element
	Owner           types.EntityID // Кастер; столкновения с ним игнорируются
	SpawnTime       float64
	DefaultLifespan float64
	BounceLifespan  float64
	Bounces         int

	// Скорость до отклика физики на текущем шаге. Нужна, чтобы пролететь сквозь разбитую стену.
	PreCollisionVelocity utils.Vec3
}
