// internal/state/battle_state.go
package state

import (
	"go-beastfight/internal/app"
	"go-beastfight/internal/config"
	"go-beastfight/internal/render"
	"go-beastfight/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameInterface — состояние, у которого есть матч.
type GameInterface interface {
	GetGame() *app.Game
}

var (
	_ State         = (*BattleState)(nil)
	_ GameInterface = (*BattleState)(nil)
)

// BattleState — идущий матч: каждый кадр продвигает симуляцию и рисует поле.
type BattleState struct {
	sm        *StateMachine
	game      *app.Game
	renderer  *render.BoardRenderer
	indicator *ui.StateIndicator
	steps     *ui.StepIndicator
}

func NewBattleState(sm *StateMachine, game *app.Game) *BattleState {
	return &BattleState{
		sm:        sm,
		game:      game,
		renderer:  render.NewBoardRenderer(game.Geometry()),
		indicator: ui.NewStateIndicator(config.ScreenWidth-30, 30, 12),
		steps:     ui.NewStepIndicator(20, 30),
	}
}

func (b *BattleState) GetGame() *app.Game { return b.game }

func (b *BattleState) Enter() {}

func (b *BattleState) Update(deltaTime float64) {
	if pauseKeyPressed() {
		b.game.Pause()
		b.sm.SetState(NewPauseState(b.sm, b))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		b.renderer.ShowName = !b.renderer.ShowName
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		b.renderer.ShowGrid = !b.renderer.ShowGrid
	}
	// Темп матча задают часы игры, deltaTime здесь не нужен.
	b.game.Update()
}

func (b *BattleState) Draw(screen *ebiten.Image) {
	b.renderer.Draw(screen, b.game.Background(), b.game.UnitViews(), b.game.ProjectileViews())

	now := b.game.Now()
	phaseColor := config.WarmUpStateColor
	if b.game.Phase() == app.PhaseActive {
		phaseColor = config.ActiveStateColor
	}
	b.indicator.SetColor(phaseColor, now)
	b.indicator.Draw(screen, now)

	alive := make([]int, len(b.game.Settings.Teams))
	for team := range alive {
		alive[team] = b.game.Alive(team)
	}
	b.steps.Draw(screen, b.game.Steps(), alive)
}

func (b *BattleState) Exit() {}

func pauseKeyPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyF9)
}
