// internal/system/animator.go
package system

import "elemental-arena/internal/entity"

// AnimatorSystem advances enabled animation clips.
type AnimatorSystem struct {
	ecs *entity.ECS
}

func NewAnimatorSystem(ecs *entity.ECS) *AnimatorSystem {
	return &AnimatorSystem{ecs: ecs}
}

func (s *AnimatorSystem) Update(deltaTime float64) {
	for _, anim := range s.ecs.Animators {
		if !anim.Enabled {
			continue
		}
		anim.Time += deltaTime
		if anim.Loop && anim.Length > 0 && anim.Time >= anim.Length {
			anim.Time -= anim.Length
		}
	}
}
