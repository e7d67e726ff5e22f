// internal/app/view.go
package app

import (
	"time"

	"go-beastfight/internal/assets"
	"go-beastfight/internal/component"
	"go-beastfight/internal/config"
	"go-beastfight/internal/system"
	"go-beastfight/pkg/grid"
)

// UnitView — всё, что нужно отрисовщику про юнита в клетке.
type UnitView struct {
	ID            string
	Name          string
	Team          int
	CellX, CellY  int
	X, Y          float64 // левый верхний угол спрайта
	Sprite        assets.Image
	HealthRatio   float64
	ResourceRatio float64
	Kind          component.ResourceKind
	Icon          assets.Image // иконка способности, если сейчас показывается
	IconVisible   bool
	Flash         bool // юнит только что получил урон
}

// ProjectileView — снаряд для отрисовки. X, Y — центр.
type ProjectileView struct {
	Sprite assets.Image
	X, Y   float64
	Melee  bool
}

var flashDuration = time.Duration(config.DamageFlashDuration * float64(time.Second))

// UnitViews обходит занятые клетки построчно.
func (g *Game) UnitViews() []UnitView {
	now := g.clock.Now()
	var views []UnitView
	g.World.Board.Each(func(x, y int, o grid.Occupant) {
		u, ok := o.(*component.Unit)
		if !ok || u.Removed() {
			return
		}
		ax, ay := g.geometry.SpriteAnchor(x, y, config.UnitSpriteSize)
		v := UnitView{
			ID:            u.ID,
			Name:          u.Name,
			Team:          u.Team,
			CellX:         x,
			CellY:         y,
			X:             ax,
			Y:             ay,
			Sprite:        u.Sprite,
			HealthRatio:   u.HealthRatio(),
			ResourceRatio: u.ResourceRatio(),
			Kind:          u.Kind,
			Flash:         !u.LastHit.IsZero() && now.Sub(u.LastHit) < flashDuration,
		}
		if src, ok := u.Ability.(component.IconSource); ok && src.IconVisible(now) {
			v.IconVisible = true
			v.Icon = src.Icon()
		}
		views = append(views, v)
	})
	return views
}

// ProjectileViews возвращает летящие снаряды.
func (g *Game) ProjectileViews() []ProjectileView {
	projectiles := g.World.Projectiles()
	views := make([]ProjectileView, 0, len(projectiles))
	for _, p := range projectiles {
		views = append(views, ProjectileView{Sprite: p.Sprite, X: p.X, Y: p.Y, Melee: p.Melee})
	}
	return views
}

// UnitState — состояние юнита в снимке для отладочного сервера.
type UnitState struct {
	ID             string  `json:"id"`
	DefID          string  `json:"def_id"`
	Name           string  `json:"name"`
	Team           int     `json:"team"`
	X              int     `json:"x"`
	Y              int     `json:"y"`
	Health         float64 `json:"health"`
	MaxHealth      float64 `json:"max_health"`
	Resource       float64 `json:"resource"`
	ResourcePool   float64 `json:"resource_pool"`
	Kind           string  `json:"resource_kind"`
	AttackDamage   float64 `json:"attack_damage"`
	AttackInterval float64 `json:"attack_interval_seconds"`
	Ability        string  `json:"ability,omitempty"`
}

// TeamState — сколько живых осталось у команды.
type TeamState struct {
	Team  int `json:"team"`
	Alive int `json:"alive"`
}

// Snapshot — неизменяемый снимок матча. Его можно читать из любой горутины.
type Snapshot struct {
	Mode        config.Mode        `json:"mode"`
	Phase       Phase              `json:"phase"`
	Paused      bool               `json:"paused"`
	Elapsed     float64            `json:"elapsed_seconds"`
	Steps       int                `json:"steps"`
	Units       []UnitState        `json:"units"`
	Teams       []TeamState        `json:"teams"`
	Projectiles int                `json:"projectiles"`
	Stats       []system.UnitStats `json:"stats"`
	TakenAt     time.Time          `json:"taken_at"`
}

// Snapshot возвращает последний опубликованный снимок.
func (g *Game) Snapshot() *Snapshot {
	return g.snapshot.Load()
}

// publish строит снимок не чаще SnapshotPublishInterval, если не force.
func (g *Game) publish(now time.Time, force bool) {
	if !force && now.Sub(g.lastPublish) < config.SnapshotPublishInterval {
		return
	}
	g.lastPublish = now

	units := g.World.Units()
	s := &Snapshot{
		Mode:        g.Settings.Mode,
		Phase:       g.phase,
		Paused:      g.clock.IsPaused(),
		Elapsed:     now.Sub(g.start).Seconds(),
		Steps:       g.steps,
		Units:       make([]UnitState, 0, len(units)),
		Projectiles: len(g.World.Projectiles()),
		Stats:       g.StatsSystem.Snapshot(),
		TakenAt:     now,
	}
	for _, u := range units {
		st := UnitState{
			ID:             u.ID,
			DefID:          u.DefID,
			Name:           u.Name,
			Team:           u.Team,
			X:              u.X,
			Y:              u.Y,
			Health:         u.Health,
			MaxHealth:      u.MaxHealth,
			Resource:       u.Resource,
			ResourcePool:   u.ResourcePool,
			Kind:           string(u.Kind),
			AttackDamage:   u.AttackDamage,
			AttackInterval: u.AttackInterval.Seconds(),
		}
		if u.Ability != nil {
			st.Ability = u.Ability.Kind()
		}
		s.Units = append(s.Units, st)
	}
	for team := range g.Settings.Teams {
		s.Teams = append(s.Teams, TeamState{Team: team, Alive: g.World.AliveCount(team)})
	}
	g.snapshot.Store(s)
}
