package state

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
)

type probe struct {
	log     *[]string
	name    string
	updates float64
}

func (p *probe) Enter()                    { *p.log = append(*p.log, "enter "+p.name) }
func (p *probe) Update(deltaTime float64)  { p.updates += deltaTime }
func (p *probe) Draw(screen *ebiten.Image) {}
func (p *probe) Exit()                     { *p.log = append(*p.log, "exit "+p.name) }

func TestStateMachine_Transitions(t *testing.T) {
	var log []string
	sm := NewStateMachine()
	sm.Update(1)

	a := &probe{log: &log, name: "a"}
	b := &probe{log: &log, name: "b"}
	sm.SetState(a)
	sm.Update(0.5)
	sm.SetState(b)
	sm.Update(0.25)
	sm.SetState(nil)

	assert.Equal(t, []string{"enter a", "exit a", "enter b", "exit b"}, log)
	assert.Equal(t, 0.5, a.updates)
	assert.Equal(t, 0.25, b.updates)
	assert.Nil(t, sm.Current())
}
