// internal/system/combat.go
package system

import (
	"log"

	"go-beastfight/internal/component"
	"go-beastfight/internal/entity"
	"go-beastfight/internal/event"
)

// CombatSystem проводит атаки всех юнитов, которые достают до врага.
type CombatSystem struct {
	world      *entity.World
	env        *component.Env
	freeForAll bool
	logger     *log.Logger
}

func NewCombatSystem(world *entity.World, env *component.Env, freeForAll bool) *CombatSystem {
	logger := env.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &CombatSystem{world: world, env: env, freeForAll: freeForAll, logger: logger}
}

// Update проходит по снимку ростера в порядке создания. Погибшая цель
// сразу убирается с поля и из ростера, и следующие атакующие её уже не видят.
// Возвращает число состоявшихся атак.
func (s *CombatSystem) Update() int {
	attacks := 0
	for _, u := range s.world.Units() {
		if !u.Alive() {
			continue
		}
		attacks += s.resolve(u)
	}
	return attacks
}

// resolve обрабатывает одного атакующего. Паника внутри не прерывает ход остальных.
func (s *CombatSystem) resolve(u *component.Unit) (attacks int) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Printf("ERROR: combat for %s (%s) aborted: %v", u.Name, u.ID, r)
		}
	}()

	for _, t := range s.world.Units() {
		if !t.Alive() || !u.IsEnemy(t, s.freeForAll) || !u.CanAttack(t) {
			continue
		}
		if p := u.AttackEnemy(t, s.env); p != nil {
			s.world.AddProjectile(p)
			attacks++
		}
		if t.Health <= 0 {
			Defeat(s.world, t, u, s.env.Events, s.logger)
		}
	}
	return attacks
}

// Defeat убирает погибшего юнита из мира и сообщает об этом.
func Defeat(world *entity.World, u, by *component.Unit, events *event.Dispatcher, logger *log.Logger) {
	if !world.RemoveUnit(u) {
		return
	}
	logger.Printf("%s has been defeated!", u.Name)
	events.Dispatch(event.Event{Type: event.UnitDefeated, Data: component.UnitDefeated{Unit: u, By: by}})
}

// Reap убирает всех юнитов с нулевым здоровьем, например погибших от
// периодического урона между шагами. Возвращает число убранных.
func Reap(world *entity.World, events *event.Dispatcher, logger *log.Logger) int {
	n := 0
	for _, u := range world.Units() {
		if u.Health <= 0 {
			Defeat(world, u, nil, events, logger)
			n++
		}
	}
	return n
}
