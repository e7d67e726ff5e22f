// internal/entity/world.go
package entity

import (
	"sort"

	"go-beastfight/internal/component"
	"go-beastfight/pkg/grid"
)

// World хранит все сущности матча. Ростер юнитов единственный владелец их
// жизни: сетка и снаряды держат только невладеющие ссылки.
type World struct {
	Board *grid.Grid

	units       []*component.Unit
	byID        map[string]*component.Unit
	projectiles []*component.Projectile
}

// NewWorld создаёт пустой мир на сетке board.
func NewWorld(board *grid.Grid) *World {
	return &World{
		Board: board,
		byID:  make(map[string]*component.Unit),
	}
}

// AddUnit добавляет юнита в конец ростера. Порядок добавления задаёт порядок ходов.
func (w *World) AddUnit(u *component.Unit) {
	if _, exists := w.byID[u.ID]; exists {
		return
	}
	w.units = append(w.units, u)
	w.byID[u.ID] = u
}

// RemoveUnit убирает юнита с сетки и из ростера и помечает его удалённым,
// после чего все внешние ссылки видят Removed() == true.
func (w *World) RemoveUnit(u *component.Unit) bool {
	if _, exists := w.byID[u.ID]; !exists {
		return false
	}
	if w.Board != nil && u.Placed() {
		w.Board.Remove(u)
	}
	for i, it := range w.units {
		if it == u {
			w.units = append(w.units[:i], w.units[i+1:]...)
			break
		}
	}
	delete(w.byID, u.ID)
	u.MarkRemoved()
	return true
}

// Units возвращает копию ростера. Её можно обходить, пока ростер меняется.
func (w *World) Units() []*component.Unit {
	out := make([]*component.Unit, len(w.units))
	copy(out, w.units)
	return out
}

// Unit ищет юнита по ID.
func (w *World) Unit(id string) (*component.Unit, bool) {
	u, ok := w.byID[id]
	return u, ok
}

// UnitCount — сколько юнитов в ростере.
func (w *World) UnitCount() int { return len(w.units) }

// AliveCount — сколько живых юнитов в команде team.
func (w *World) AliveCount(team int) int {
	n := 0
	for _, u := range w.units {
		if u.Team == team && u.Alive() {
			n++
		}
	}
	return n
}

// Teams возвращает номера команд, у которых остались юниты.
func (w *World) Teams() []int {
	seen := make(map[int]bool)
	var teams []int
	for _, u := range w.units {
		if !seen[u.Team] {
			seen[u.Team] = true
			teams = append(teams, u.Team)
		}
	}
	sort.Ints(teams)
	return teams
}

// AddProjectile добавляет снаряд.
func (w *World) AddProjectile(p *component.Projectile) {
	if p != nil {
		w.projectiles = append(w.projectiles, p)
	}
}

// RemoveProjectile удаляет снаряд, если он ещё в списке.
func (w *World) RemoveProjectile(p *component.Projectile) bool {
	for i, it := range w.projectiles {
		if it == p {
			w.projectiles = append(w.projectiles[:i], w.projectiles[i+1:]...)
			return true
		}
	}
	return false
}

// Projectiles возвращает копию списка снарядов.
func (w *World) Projectiles() []*component.Projectile {
	out := make([]*component.Projectile, len(w.projectiles))
	copy(out, w.projectiles)
	return out
}

// Clear удаляет все сущности.
func (w *World) Clear() {
	for _, u := range w.Units() {
		w.RemoveUnit(u)
	}
	w.projectiles = nil
}
