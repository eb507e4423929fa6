package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	got []Event
}

func (r *recorder) OnEvent(e Event) { r.got = append(r.got, e) }

func TestDispatcher_SubscribeIsDeduplicated(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.Subscribe(PlayerHit, r)
	d.Subscribe(PlayerHit, r)

	d.Dispatch(Event{Type: PlayerHit, Data: PlayerHitData{Player: 1}})
	assert.Len(t, r.got, 1)
}

func TestDispatcher_Unsubscribe(t *testing.T) {
	d := NewDispatcher()
	a, b := &recorder{}, &recorder{}
	d.SubscribeAll(a, WallSpawned, WallBroken)
	d.Subscribe(WallBroken, b)

	d.Unsubscribe(WallBroken, a)
	d.Dispatch(Event{Type: WallBroken})
	d.Dispatch(Event{Type: WallSpawned})

	assert.Len(t, a.got, 1)
	assert.Equal(t, WallSpawned, a.got[0].Type)
	assert.Len(t, b.got, 1)
}

func TestDispatcher_NoListeners(t *testing.T) {
	d := NewDispatcher()
	assert.NotPanics(t, func() { d.Dispatch(Event{Type: GameOver}) })
}

type quitter struct {
	d   *Dispatcher
	got int
}

func (q *quitter) OnEvent(e Event) {
	q.got++
	q.d.Unsubscribe(e.Type, q)
}

func TestDispatcher_UnsubscribeDuringDispatch(t *testing.T) {
	d := NewDispatcher()
	q := &quitter{d: d}
	r := &recorder{}
	d.Subscribe(TargetDefeated, q)
	d.Subscribe(TargetDefeated, r)

	d.Dispatch(Event{Type: TargetDefeated})
	d.Dispatch(Event{Type: TargetDefeated})

	assert.Equal(t, 1, q.got)
	assert.Len(t, r.got, 2)
}
