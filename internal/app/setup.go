// internal/app/setup.go
package app

import (
	"fmt"

	"go-beastfight/internal/component"
	"go-beastfight/internal/config"
	"go-beastfight/internal/defs"
)

// populate создаёт команды из настроек. Явные юниты ставятся первыми,
// затем случайные из пула. Порядок создания задаёт порядок ходов.
func (g *Game) populate() error {
	for team, ts := range g.Settings.Teams {
		for _, slot := range ts.Units {
			def, err := g.catalog.Get(slot.Unit)
			if err != nil {
				return fmt.Errorf("failed to set up team %d: %w", team, err)
			}
			u, err := g.spawn(def, team)
			if err != nil {
				return err
			}
			if slot.At != nil {
				g.placeAt(u, slot.At[0], slot.At[1])
			} else {
				g.placeRandom(u)
			}
		}

		if ts.Count > 0 {
			if err := g.populatePool(team, ts); err != nil {
				return err
			}
		}
	}
	return nil
}

// populatePool добавляет Count случайных бойцов базового уровня класса Pool.
func (g *Game) populatePool(team int, ts config.TeamSettings) error {
	pool := g.catalog.Pool(ts.Pool, defs.TierStandard)
	if len(pool) == 0 {
		return fmt.Errorf("team %d: pool %q: %w", team, ts.Pool, defs.ErrUnknownUnit)
	}
	if ts.Count > len(pool) {
		g.logger.Printf("WARNING: team %d asked for %d units from %q, only %d available.", team, ts.Count, ts.Pool, len(pool))
	}
	for _, i := range g.Rng.SampleIndexes(len(pool), ts.Count) {
		u, err := g.spawn(pool[i], team)
		if err != nil {
			return err
		}
		g.placeRandom(u)
	}
	return nil
}

// spawn создаёт юнита, вешает способность и добавляет в ростер.
func (g *Game) spawn(def defs.UnitDefinition, team int) (*component.Unit, error) {
	u := component.NewUnit(def.Stats(), team, g.start)
	u.Sprite = g.image(def.Sprite)
	if err := g.registry.Attach(u, def.Ability, g.deps); err != nil {
		return nil, fmt.Errorf("failed to spawn %s: %w", def.ID, err)
	}
	g.World.AddUnit(u)
	g.StatsSystem.Track(u)
	return u, nil
}

// placeAt ставит юнита в клетку. Если поле заполнено, юнит выбывает.
func (g *Game) placeAt(u *component.Unit, x, y int) {
	if !g.World.Board.Place(u, x, y) {
		g.logger.Printf("WARNING: cannot place %s at (%d,%d), skipping.", u.Name, x, y)
		g.World.RemoveUnit(u)
		return
	}
	g.logger.Printf("%s (team %d) enters at (%d,%d).", u.Name, u.Team, u.X, u.Y)
}

// placeRandom ставит юнита в случайную свободную клетку.
func (g *Game) placeRandom(u *component.Unit) {
	board := g.World.Board
	var free [][2]int
	for x := 0; x < board.Width; x++ {
		for y := 0; y < board.Height; y++ {
			if board.At(x, y) == nil {
				free = append(free, [2]int{x, y})
			}
		}
	}
	if len(free) == 0 {
		g.logger.Printf("WARNING: board is full, %s is skipped.", u.Name)
		g.World.RemoveUnit(u)
		return
	}
	cell := free[g.Rng.Intn(len(free))]
	g.placeAt(u, cell[0], cell[1])
}
