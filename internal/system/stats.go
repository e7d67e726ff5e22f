// internal/system/stats.go
package system

import (
	"sort"
	"sync"

	"go-beastfight/internal/component"
	"go-beastfight/internal/event"
)

// UnitStats — итоги одного юнита за матч.
type UnitStats struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Team        int     `json:"team"`
	DamageDealt float64 `json:"damage_dealt"`
	DamageTaken float64 `json:"damage_taken"`
	Attacks     int     `json:"attacks"`
	Crits       int     `json:"crits"`
	Casts       int     `json:"casts"`
	Kills       int     `json:"kills"`
	Defeated    bool    `json:"defeated"`
}

// StatsSystem собирает статистику матча из событий боя.
// Пишет игровой цикл, читать можно из любой горутины через Snapshot.
type StatsSystem struct {
	mu    sync.RWMutex
	units map[string]*UnitStats
	order []string
}

func NewStatsSystem(d *event.Dispatcher) *StatsSystem {
	s := &StatsSystem{units: make(map[string]*UnitStats)}
	for _, t := range []event.EventType{event.AttackLanded, event.EffectTick, event.AbilityTriggered, event.UnitDefeated} {
		d.Subscribe(t, s)
	}
	return s
}

func (s *StatsSystem) entry(u *component.Unit) *UnitStats {
	if st, ok := s.units[u.ID]; ok {
		return st
	}
	st := &UnitStats{ID: u.ID, Name: u.Name, Team: u.Team}
	s.units[u.ID] = st
	s.order = append(s.order, u.ID)
	return st
}

// Track заводит запись заранее, чтобы юнит без единого удара тоже попал в таблицу.
func (s *StatsSystem) Track(u *component.Unit) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entry(u)
}

func (s *StatsSystem) OnEvent(e event.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch data := e.Data.(type) {
	case component.AttackLanded:
		a := s.entry(data.Attacker)
		a.DamageDealt += data.Damage
		a.Attacks++
		if data.Critical {
			a.Crits++
		}
		s.entry(data.Target).DamageTaken += data.Damage
	case component.EffectTick:
		s.entry(data.Source).DamageDealt += data.Damage
		s.entry(data.Target).DamageTaken += data.Damage
	case component.AbilityTriggered:
		if e.Type == event.AbilityTriggered {
			s.entry(data.Owner).Casts++
		}
	case component.UnitDefeated:
		s.entry(data.Unit).Defeated = true
		if data.By != nil {
			s.entry(data.By).Kills++
		}
	}
}

// Snapshot возвращает копию статистики, отсортированную по нанесённому урону.
func (s *StatsSystem) Snapshot() []UnitStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]UnitStats, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.units[id])
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].DamageDealt > out[j].DamageDealt })
	return out
}

// Reset очищает статистику перед новым матчем.
func (s *StatsSystem) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.units = make(map[string]*UnitStats)
	s.order = nil
}
