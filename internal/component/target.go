// internal/component/target.go
package component

import (
	"elemental-arena/internal/defs"
	"elemental-arena/internal/element"
)

// DefeatState of a training target. Defeated is terminal.
type DefeatState int

const (
	TargetActive DefeatState = iota
	TargetDefeated
)

// Target — тренировочный манекен.
type Target struct {
	Enabled       bool // false: конфигурация неполная, реакции на столкновения отключены
	Element       element.Element
	State         DefeatState
	Explosion     *defs.ExplosionDefinition // nil: префаб взрыва не назначен
	ExplosionSize float64

	onDefeatComplete func()
}

// SetOnDefeatComplete arms the one-shot continuation run when the defeat sequence ends.
func (t *Target) SetOnDefeatComplete(fn func()) {
	t.onDefeatComplete = fn
}

// CompleteDefeat runs the continuation at most once.
func (t *Target) CompleteDefeat() bool {
	if t.onDefeatComplete == nil {
		return false
	}
	fn := t.onDefeatComplete
	t.onDefeatComplete = nil
	fn()
	return true
}
