// internal/component/visual.go
package component

import "elemental-arena/internal/types"

// Animator plays a single clip. Time keeps growing past Length for
// non-looping clips, like a normalized time above 1.
type Animator struct {
	Enabled bool
	Length  float64 // seconds
	Loop    bool
	Time    float64
}

// NormalizedTime returns the clip progress, 1 meaning one full play.
func (a *Animator) NormalizedTime() float64 {
	if a.Length <= 0 {
		return 1
	}
	return a.Time / a.Length
}

// Explosion — расширяющийся визуальный эффект взрыва.
type Explosion struct {
	Timer     float64 // Сколько времени эффект уже активен
	Duration  float64 // Общая продолжительность эффекта
	MaxRadius float64
	Scale     float64
}

// Billboard поворачивает сущность лицом к камере, только вокруг вертикальной оси.
type Billboard struct {
	Enabled bool
	// Camera - сущность, к которой поворачиваемся (обычно игрок).
	Camera types.EntityID
	// SmoothSpeed - 0 поворачивает мгновенно, больше - плавнее.
	SmoothSpeed float64
}
