// internal/component/wall.go
package component

import (
	"elemental-arena/internal/element"
	"elemental-arena/internal/utils"
)

// Wall — временная стихийная стена, вырастающая из-под земли.
// Стену разрушает только снаряд стихии, которая побеждает стихию стены.
type Wall struct {
	Element        element.Element
	SpawnPosition  utils.Vec3
	TargetPosition utils.Vec3
	Height         float64
	Speed          float64 // units per second
	Lifespan       float64
	Rising         bool
}
