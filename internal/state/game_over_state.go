// internal/state/game_over_state.go
package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-pixel-arena/internal/config"
	"go-pixel-arena/internal/ui"
)

// Убеждаемся, что GameOverState соответствует интерфейсу State
var _ State = (*GameOverState)(nil)

// GameOverState рисует замороженную сессию под затемнением и ждёт R.
type GameOverState struct {
	stateMachine  *StateMachine
	previousState *GameState
}

func NewGameOverState(sm *StateMachine, prevState *GameState) *GameOverState {
	return &GameOverState{
		stateMachine:  sm,
		previousState: prevState,
	}
}

func (s *GameOverState) Enter() {}

func (s *GameOverState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.stateMachine.SetState(NewGameState(s.stateMachine, s.previousState.restartOptions()))
	}
}

// summary is the line under the title.
func summary(level, worldLevel int, gameTime float64) string {
	return fmt.Sprintf("Level %d  World %d  %.0fs", level, worldLevel, gameTime)
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	s.previousState.Draw(screen)

	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)

	snap := s.previousState.Snapshot()
	lines := []string{"GAME OVER", summary(snap.Level, snap.WorldLevel, snap.GameTime), "Press R to restart"}
	y := config.ScreenHeight/2 - 30
	for _, line := range lines {
		w := text.BoundString(ui.DefaultFace, line).Dx()
		text.Draw(screen, line, ui.DefaultFace, (config.ScreenWidth-w)/2, y, config.TextLightColor)
		y += 24
	}
}

func (s *GameOverState) Exit() {}
