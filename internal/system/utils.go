// internal/system/utils.go
package system

import (
	"elemental-arena/internal/component"
	"elemental-arena/internal/element"
)

// BallAbility returns the cooldown slot that gates an element's projectile.
func BallAbility(e element.Element) component.Ability {
	switch e {
	case element.Water:
		return component.AbilityWaterBall
	case element.Earth:
		return component.AbilityEarthBall
	default:
		return component.AbilityFireBall
	}
}

// WallAbility returns the cooldown slot that gates an element's wall.
func WallAbility(e element.Element) component.Ability {
	switch e {
	case element.Water:
		return component.AbilityWaterWall
	case element.Earth:
		return component.AbilityEarthWall
	default:
		return component.AbilityFireWall
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
