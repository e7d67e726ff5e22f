// internal/state/pause_state.go
package state

import (
	"go-beastfight/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState рисует замороженный матч под затемнением. Игровые часы стоят,
// поэтому после выхода из паузы интервалы атак и эффекты продолжаются без скачка.
type PauseState struct {
	stateMachine  *StateMachine
	previousState State
}

func NewPauseState(sm *StateMachine, prevState State) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	if pauseKeyPressed() || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.resume()
	}
}

// resume возвращает предыдущее состояние и снимает игру с паузы.
func (s *PauseState) resume() {
	if gs, ok := s.previousState.(GameInterface); ok {
		if game := gs.GetGame(); game != nil {
			game.Resume()
		}
	}
	s.stateMachine.SetState(s.previousState)
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), config.PausedOverlayColor, false)
	const label = "PAUSED"
	face := basicfont.Face7x13
	x := w/2 - len(label)*face.Advance/2
	text.Draw(screen, label, face, x, h/2, config.TextLightColor)
}

func (s *PauseState) Exit() {}
