// internal/system/movement.go
package system

import (
	"go-pixel-arena/internal/entity"
	"go-pixel-arena/internal/input"
	"go-pixel-arena/internal/utils"
)

// MovementSystem двигает игрока по вводу и пересчитывает камеру.
// Distances are per tick, not per second.
type MovementSystem struct {
	state *entity.GameState
}

func NewMovementSystem(state *entity.GameState) *MovementSystem {
	return &MovementSystem{state: state}
}

// Update applies one tick of input, clamps the player to the world and
// derives the camera from the player position.
func (s *MovementSystem) Update(in input.State) {
	p := &s.state.Player
	t := s.state.Tuning

	if in.Left {
		p.Rect.X -= p.Speed
	}
	if in.Right {
		p.Rect.X += p.Speed
	}
	if in.Up {
		p.Rect.Y -= p.Speed
	}
	if in.Down {
		p.Rect.Y += p.Speed
	}
	p.Rect.X = utils.Clamp(p.Rect.X, 0, t.WorldWidth-p.Rect.W)
	p.Rect.Y = utils.Clamp(p.Rect.Y, 0, t.WorldHeight-p.Rect.H)

	s.UpdateCamera()
}

// UpdateCamera centres the viewport on the player, clamped to the world.
func (s *MovementSystem) UpdateCamera() {
	t := s.state.Tuning
	p := &s.state.Player
	cam := &s.state.Camera
	center := p.Center()

	cam.Position.X = utils.Clamp(center.X-t.ViewportWidth/2, 0, t.WorldWidth-t.ViewportWidth)
	cam.Position.Y = utils.Clamp(center.Y-t.ViewportHeight/2, 0, t.WorldHeight-t.ViewportHeight)
}

// UpdateEnemies advances enemies by their speed. Enemies are stationary, so
// this only moves anything if SpeedX/SpeedY are ever set.
func (s *MovementSystem) UpdateEnemies() {
	for _, e := range s.state.Enemies {
		if e.SpeedX == 0 && e.SpeedY == 0 {
			continue
		}
		e.Rect.X += e.SpeedX
		e.Rect.Y += e.SpeedY
	}
}
