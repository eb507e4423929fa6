// component/render.go
package component

import (
	"image/color"

	"elemental-arena/internal/utils"
)

// Renderable — компонент для отрисовки
type Renderable struct {
	Color     color.RGBA
	Size      utils.Vec3 // Размер границ в мировых единицах
	HasStroke bool
	Visible   bool
}
