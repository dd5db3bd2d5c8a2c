package system

import (
	"go-pixel-arena/internal/component"
	"go-pixel-arena/internal/entity"
	"go-pixel-arena/internal/event"
)

// StateSystem следит за фазой сессии: игра идёт или окончена.
type StateSystem struct {
	state           *entity.GameState
	eventDispatcher *event.Dispatcher
}

func NewStateSystem(state *entity.GameState, eventDispatcher *event.Dispatcher) *StateSystem {
	return &StateSystem{
		state:           state,
		eventDispatcher: eventDispatcher,
	}
}

// Update ends the session once the player has no health left. GameOver is
// terminal and dispatched once.
func (s *StateSystem) Update() {
	if s.state.IsGameOver() || !s.state.Player.Stats.IsDead() {
		return
	}
	s.state.Phase = component.PhaseGameOver
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.GameOver,
		Data: event.GameOverData{
			Level:      s.state.Level,
			WorldLevel: s.state.WorldLevel,
			GameTime:   s.state.GameTime,
		},
	})
}
