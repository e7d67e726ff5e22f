// internal/tui/spectator.go
package tui

import (
	"context"
	"fmt"
	"log"
	"time"

	"go-beastfight/internal/app"
	"go-beastfight/internal/config"

	"github.com/gdamore/tcell/v2"
)

// Spectator крутит матч в терминале: тик симуляции, перерисовка, клавиши.
type Spectator struct {
	screen tcell.Screen
	game   *app.Game
	logger *log.Logger
}

func NewSpectator(screen tcell.Screen, game *app.Game, logger *log.Logger) *Spectator {
	if logger == nil {
		logger = log.Default()
	}
	return &Spectator{screen: screen, game: game, logger: logger}
}

// Status снимает строку состояния с матча.
func (s *Spectator) Status() Status {
	alive := make([]int, len(s.game.Settings.Teams))
	for team := range alive {
		alive[team] = s.game.Alive(team)
	}
	return Status{
		Mode:    string(s.game.Settings.Mode),
		Phase:   s.game.Phase(),
		Steps:   s.game.Steps(),
		Elapsed: s.game.Elapsed().Seconds(),
		Paused:  s.game.Paused(),
		Alive:   alive,
	}
}

// Draw перерисовывает экран.
func (s *Spectator) Draw() {
	s.screen.Clear()
	DrawBoard(s.screen, s.game.Settings.GridWidth, s.game.Settings.GridHeight, s.game.UnitViews(), s.Status())
	s.screen.Show()
}

// HandleKey обрабатывает клавишу. Возвращает false, если пора выходить.
func (s *Spectator) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyF9:
		s.game.TogglePause()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return false
		case 'p', 'P':
			s.game.TogglePause()
		}
	}
	return true
}

// Run блокируется до выхода пользователя или отмены ctx.
func (s *Spectator) Run(ctx context.Context) error {
	w, h := s.screen.Size()
	needW, needH := BoardSize(s.game.Settings.GridWidth, s.game.Settings.GridHeight)
	if w < needW || h < needH {
		s.logger.Printf("WARNING: terminal %dx%d is smaller than the board %dx%d", w, h, needW, needH)
	}

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / config.TargetTPS)
	defer ticker.Stop()

	s.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !s.HandleKey(ev) {
					return nil
				}
			case *tcell.EventResize:
				s.screen.Sync()
			}
		case <-ticker.C:
			if err := s.tick(); err != nil {
				return err
			}
		}
	}
}

// tick продвигает матч на кадр. Паника внутри симуляции превращается в ошибку,
// чтобы терминал успел восстановиться.
func (s *Spectator) tick() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("simulation panicked: %v", r)
		}
	}()
	s.game.Update()
	s.Draw()
	return nil
}
