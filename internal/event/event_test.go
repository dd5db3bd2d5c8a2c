package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	got []Event
}

func (r *recorder) OnEvent(e Event) {
	r.got = append(r.got, e)
}

func TestDispatchReachesOnlySubscribers(t *testing.T) {
	d := NewDispatcher()
	kills := &recorder{}
	levels := &recorder{}
	d.Subscribe(EnemyKilled, kills)
	d.Subscribe(LevelUp, levels)

	d.Dispatch(Event{Type: EnemyKilled, Data: EnemyKilledData{EnemyID: 7}})

	assert.Len(t, kills.got, 1)
	assert.Empty(t, levels.got)
	assert.Equal(t, EnemyKilledData{EnemyID: 7}, kills.got[0].Data)
}

func TestDispatchKeepsSubscriptionOrder(t *testing.T) {
	d := NewDispatcher()
	var order []string
	d.Subscribe(WaveCleared, ListenerFunc(func(Event) { order = append(order, "first") }))
	d.Subscribe(WaveCleared, ListenerFunc(func(Event) { order = append(order, "second") }))

	d.Dispatch(Event{Type: WaveCleared})

	assert.Equal(t, []string{"first", "second"}, order)
}
