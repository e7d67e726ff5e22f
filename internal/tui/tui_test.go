package tui

import (
	"io"
	"log"
	"strings"
	"testing"
	"time"

	"go-beastfight/internal/app"
	"go-beastfight/internal/clock"
	"go-beastfight/internal/component"
	"go-beastfight/internal/config"
	"go-beastfight/internal/defs"
	"go-beastfight/internal/event"

	"github.com/gdamore/tcell/v2"
)

type cell struct {
	r     rune
	style tcell.Style
}

type fakeCanvas map[[2]int]cell

func (f fakeCanvas) SetContent(x, y int, primary rune, _ []rune, style tcell.Style) {
	f[[2]int{x, y}] = cell{primary, style}
}

func (f fakeCanvas) row(y, from, n int) string {
	var b strings.Builder
	for x := from; x < from+n; x++ {
		if c, ok := f[[2]int{x, y}]; ok {
			b.WriteRune(c.r)
		} else {
			b.WriteRune(' ')
		}
	}
	return b.String()
}

func TestFilled(t *testing.T) {
	tests := []struct {
		ratio float64
		want  int
	}{
		{0, 0},
		{-0.5, 0},
		{0.01, 1},
		{0.5, 5},
		{0.94, 9},
		{1, 10},
		{1.7, 10},
	}
	for _, tt := range tests {
		if got := Filled(tt.ratio, 10); got != tt.want {
			t.Errorf("Filled(%v, 10) = %d, want %d", tt.ratio, got, tt.want)
		}
	}
}

func TestHeaderAndFooter(t *testing.T) {
	s := Status{Mode: "duel", Phase: app.PhaseActive, Steps: 3, Elapsed: 3.7, Paused: true, Alive: []int{1, 0}}
	if got := HeaderLine(s); got != "duel | active | step 3 | 3.7s | PAUSED" {
		t.Errorf("unexpected header %q", got)
	}
	if got := FooterLine(s.Alive); got != "team 0: 1 | team 1: 0 | p pause  q quit" {
		t.Errorf("unexpected footer %q", got)
	}
}

func TestDrawBoardPlacesUnits(t *testing.T) {
	c := fakeCanvas{}
	views := []app.UnitView{
		{Name: "Inferna", Team: 1, CellX: 1, CellY: 2, HealthRatio: 0.5, ResourceRatio: 1, Kind: component.ResourceRage},
		{Name: "Nowhere", CellX: 40, CellY: 0}, // вне поля, не рисуется
	}
	DrawBoard(c, 3, 4, views, Status{Mode: "duel", Phase: app.PhaseWarmUp, Alive: []int{0, 1}})

	if got := c.row(0, 0, 4); got != "duel" {
		t.Errorf("Expected header at the top, got %q", got)
	}
	// Левый верхний угол клетки (1, 2).
	x0, y0 := 1*cellW, boardY+2*cellH
	if c[[2]int{x0, y0}].r != '+' {
		t.Errorf("Expected grid corner at (%d,%d)", x0, y0)
	}
	if got := c.row(y0+1, x0+1, 7); got != "Inferna" {
		t.Errorf("Expected unit name in cell, got %q", got)
	}
	if got := c.row(y0+2, x0+1, barSize); got != "█████░░░░░" {
		t.Errorf("Expected half health bar, got %q", got)
	}
	if got := c.row(y0+3, x0+1, barSize); got != strings.Repeat("█", barSize) {
		t.Errorf("Expected full resource bar, got %q", got)
	}
	if c[[2]int{x0 + 1, y0 + 3}].style != rageStyle {
		t.Error("Expected rage colour for the resource bar")
	}
	footerY := boardY + 4*cellH + 1
	if got := c.row(footerY, 0, 9); got != "team 0: 0" {
		t.Errorf("Expected footer under the board, got %q", got)
	}
}

func TestIconAndFlash(t *testing.T) {
	c := fakeCanvas{}
	DrawBoard(c, 1, 1, []app.UnitView{{Name: "Pyroar the Mighty", IconVisible: true, Flash: true}}, Status{})
	y := boardY + 1
	if got := c.row(y, 1, barSize); got != "Pyroar th*" {
		t.Errorf("Expected truncated name with icon mark, got %q", got)
	}
	if c[[2]int{1, y}].style != teamStyle(0).Reverse(true) {
		t.Error("Expected reversed style while flashing")
	}
}

func TestToneFor(t *testing.T) {
	crit, ok := ToneFor(event.Event{Type: event.AttackLanded, Data: component.AttackLanded{Critical: true}})
	if !ok || crit.Freq != 880 {
		t.Errorf("Expected crit tone, got %+v", crit)
	}
	hit, _ := ToneFor(event.Event{Type: event.AttackLanded, Data: component.AttackLanded{}})
	if hit.Freq != 440 {
		t.Errorf("Expected hit tone, got %+v", hit)
	}
	if _, ok := ToneFor(event.Event{Type: event.ProjectileSpawned}); ok {
		t.Error("Expected no tone for projectiles")
	}
}

func TestCuesSilentWithoutInit(t *testing.T) {
	c := NewCues(log.New(io.Discard, "", 0))
	d := event.NewDispatcher()
	c.Subscribe(d)
	// Без Initialize сигналы просто игнорируются.
	d.Dispatch(event.Event{Type: event.UnitDefeated})
	c.Cleanup()
}

func TestSpectatorStatus(t *testing.T) {
	catalog, err := defs.Default()
	if err != nil {
		t.Fatal(err)
	}
	mock := clock.NewMock(time.Unix(0, 0))
	game, err := app.NewGame(app.Options{
		Settings: config.DuelSettings(),
		Catalog:  catalog,
		Clock:    mock,
		Logger:   log.New(io.Discard, "", 0),
	})
	if err != nil {
		t.Fatal(err)
	}
	s := NewSpectator(nil, game, log.New(io.Discard, "", 0))

	mock.Advance(config.WarmUpDuration)
	game.Update()
	st := s.Status()
	if st.Mode != "duel" || st.Phase != app.PhaseActive || st.Steps != 1 {
		t.Errorf("Unexpected status %+v", st)
	}
	if len(st.Alive) != 2 || st.Alive[0] != 1 || st.Alive[1] != 1 {
		t.Errorf("Expected one unit alive per side, got %v", st.Alive)
	}
}
