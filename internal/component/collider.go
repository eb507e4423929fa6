// internal/component/collider.go
package component

import "elemental-arena/internal/utils"

// Shape of a collider volume.
type Shape int

const (
	ShapeSphere Shape = iota
	ShapeBox
)

// Collider — объём для обнаружения столкновений. Отключённый коллайдер не участвует в контактах.
type Collider struct {
	Shape       Shape
	Radius      float64    // ShapeSphere
	HalfExtents utils.Vec3 // ShapeBox
	Enabled     bool
}

// Height returns the vertical size of the collider bounds.
func (c *Collider) Height() float64 {
	if c.Shape == ShapeBox {
		return c.HalfExtents.Y * 2
	}
	return c.Radius * 2
}
