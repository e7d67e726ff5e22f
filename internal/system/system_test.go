package system

import (
	"io"
	"log"
	"testing"
	"time"

	"go-beastfight/internal/clock"
	"go-beastfight/internal/component"
	"go-beastfight/internal/config"
	"go-beastfight/internal/entity"
	"go-beastfight/internal/event"
	"go-beastfight/pkg/grid"
)

var (
	t0      = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	discard = log.New(io.Discard, "", 0)
)

type battle struct {
	world *entity.World
	clock *clock.Mock
	env   *component.Env
}

func newBattle() *battle {
	c := clock.NewMock(t0.Add(10 * time.Second))
	return &battle{
		world: entity.NewWorld(grid.New(config.GridWidth, config.GridHeight)),
		clock: c,
		env: &component.Env{
			Clock:    c,
			Geometry: grid.NewGeometry(1200, 900, config.GridWidth, config.GridHeight),
			Events:   event.NewDispatcher(),
			Logger:   discard,
		},
	}
}

func (b *battle) add(name string, team, x, y int, r component.Range, damage, health float64) *component.Unit {
	u := component.NewUnit(component.Stats{
		Name:         name,
		Health:       health,
		AttackDamage: damage,
		AttackSpeed:  1,
		Range:        r,
		ResourcePool: 100,
		Regen:        10,
		Kind:         component.ResourceRage,
	}, team, t0)
	b.world.AddUnit(u)
	if !b.world.Board.Place(u, x, y) {
		panic("test board full")
	}
	return u
}

func at(t *testing.T, u *component.Unit, x, y int) {
	t.Helper()
	if u.X != x || u.Y != y {
		t.Errorf("Expected %s at (%d,%d), got (%d,%d)", u.Name, x, y, u.X, u.Y)
	}
}

func TestDistancePenalisesDiagonal(t *testing.T) {
	a := &component.Unit{X: 0, Y: 0}
	tests := []struct {
		x, y, want int
	}{
		{3, 0, 3},
		{0, 2, 2},
		{1, 1, 3},
		{2, 3, 6},
		{0, 0, 0},
	}
	for _, tt := range tests {
		if got := Distance(a, &component.Unit{X: tt.x, Y: tt.y}); got != tt.want {
			t.Errorf("Distance to (%d,%d) = %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestNearestEnemyTieGoesToRosterOrder(t *testing.T) {
	b := newBattle()
	u := b.add("u", 0, 0, 0, component.RangeClose, 1, 100)
	first := b.add("first", 1, 2, 1, component.RangeClose, 1, 100) // 2+1+1 = 4
	b.add("second", 1, 4, 0, component.RangeClose, 1, 100)         // 4
	b.add("mate", 0, 1, 0, component.RangeClose, 1, 100)

	m := NewMovementSystem(b.world, false, config.TieBreakHorizontal, discard)
	if got := m.NearestEnemy(u); got != first {
		t.Errorf("Expected first enemy in roster order, got %v", got.Name)
	}

	closer := b.add("closer", 1, 0, 3, component.RangeClose, 1, 100) // 3
	if got := m.NearestEnemy(u); got != closer {
		t.Errorf("Expected closer enemy, got %v", got.Name)
	}
	closer.Health = 0
	if got := m.NearestEnemy(u); got != first {
		t.Errorf("Expected dead enemy to be ignored, got %v", got.Name)
	}
}

func TestStepTieBreakPolicies(t *testing.T) {
	u := &component.Unit{X: 2, Y: 2}
	tests := []struct {
		name         string
		tx, ty       int
		policy       config.TieBreak
		wantX, wantY int
	}{
		{"horizontal tie", 5, 5, config.TieBreakHorizontal, 3, 2},
		{"diagonal tie", 5, 5, config.TieBreakDiagonal, 3, 3},
		{"diagonal tie up-left", 0, 0, config.TieBreakDiagonal, 1, 1},
		{"larger x", 6, 3, config.TieBreakDiagonal, 3, 2},
		{"larger y", 2, 0, config.TieBreakHorizontal, 2, 1},
		{"larger y left", 1, 5, config.TieBreakHorizontal, 2, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMovementSystem(nil, false, tt.policy, discard)
			x, y := m.Step(u, &component.Unit{X: tt.tx, Y: tt.ty})
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("Expected (%d,%d), got (%d,%d)", tt.wantX, tt.wantY, x, y)
			}
		})
	}
}

func TestMovementSkipsUnitsInCombat(t *testing.T) {
	b := newBattle()
	a := b.add("a", 0, 0, 0, component.RangeClose, 1, 100)
	e := b.add("e", 1, 1, 1, component.RangeClose, 1, 100)

	m := NewMovementSystem(b.world, false, config.TieBreakHorizontal, discard)
	if moved := m.Update(); moved != 0 {
		t.Errorf("Expected nobody to move, got %d", moved)
	}
	at(t, a, 0, 0)
	at(t, e, 1, 1)
}

func TestMovementIgnoresTeammatesAndProbes(t *testing.T) {
	b := newBattle()
	u := b.add("u", 0, 0, 0, component.RangeClose, 1, 100)
	mate := b.add("mate", 0, 1, 0, component.RangeClose, 1, 100)
	enemy := b.add("enemy", 1, 5, 0, component.RangeClose, 1, 100)

	m := NewMovementSystem(b.world, false, config.TieBreakHorizontal, discard)
	if moved := m.Update(); moved != 3 {
		t.Errorf("Expected 3 moves, got %d", moved)
	}
	at(t, u, 1, 1) // (1,0) занята, проба вниз по столбцу
	at(t, mate, 2, 0)
	at(t, enemy, 4, 0)
	if b.world.Board.At(0, 0) != nil {
		t.Error("Expected old cell to be cleared")
	}
}

func TestMovementFreeForAllTargetsEveryone(t *testing.T) {
	b := newBattle()
	a := b.add("a", 0, 0, 0, component.RangeClose, 1, 100)
	c := b.add("c", 0, 6, 0, component.RangeClose, 1, 100)

	NewMovementSystem(b.world, false, config.TieBreakHorizontal, discard).Update()
	at(t, a, 0, 0)

	NewMovementSystem(b.world, true, config.TieBreakHorizontal, discard).Update()
	at(t, a, 1, 0)
	at(t, c, 5, 0)
}

func TestCombatRemovesDefeatedImmediately(t *testing.T) {
	b := newBattle()
	a := b.add("a", 0, 0, 0, component.RangeClose, 100, 300)
	victim := b.add("victim", 1, 1, 0, component.RangeClose, 10, 50)
	c := b.add("c", 0, 0, 1, component.RangeClose, 10, 300)

	var defeated []component.UnitDefeated
	b.env.Events.Subscribe(event.UnitDefeated, event.ListenerFunc(func(e event.Event) {
		defeated = append(defeated, e.Data.(component.UnitDefeated))
	}))

	cs := NewCombatSystem(b.world, b.env, false)
	if attacks := cs.Update(); attacks != 1 {
		t.Errorf("Expected 1 attack, got %d", attacks)
	}
	if !victim.Removed() || victim.Health != 0 {
		t.Errorf("Expected victim removed at 0 health, got %.0f", victim.Health)
	}
	if b.world.Board.At(1, 0) != nil {
		t.Error("Expected victim's cell cleared")
	}
	if !c.LastAttack.Equal(t0) {
		t.Error("Expected later unit not to attack a removed target")
	}
	if a.Health != 300 {
		t.Error("Expected dead victim never to strike back")
	}
	if len(defeated) != 1 || defeated[0].Unit != victim || defeated[0].By != a {
		t.Errorf("Unexpected defeat events: %+v", defeated)
	}
	if len(b.world.Projectiles()) != 1 {
		t.Errorf("Expected one projectile, got %d", len(b.world.Projectiles()))
	}
}

func TestCombatRespectsTeams(t *testing.T) {
	b := newBattle()
	a := b.add("a", 0, 0, 0, component.RangeClose, 10, 100)
	mate := b.add("mate", 0, 1, 0, component.RangeClose, 10, 100)

	if attacks := NewCombatSystem(b.world, b.env, false).Update(); attacks != 0 {
		t.Errorf("Expected teammates not to fight, got %d attacks", attacks)
	}
	if attacks := NewCombatSystem(b.world, b.env, true).Update(); attacks != 2 {
		t.Errorf("Expected free-for-all to make them fight, got %d attacks", attacks)
	}
	if a.Health != 90 || mate.Health != 90 {
		t.Errorf("Expected 10 damage each, got %.0f and %.0f", a.Health, mate.Health)
	}
}

type panicky struct{}

func (panicky) Kind() string                  { return "panicky" }
func (panicky) NeedsTarget() bool             { return false }
func (panicky) Trigger(*component.Unit) error { panic("boom") }

func TestCombatIsolatesPanickingUnit(t *testing.T) {
	b := newBattle()
	p := b.add("p", 0, 0, 0, component.RangeClose, 10, 100)
	p.Resource = 95
	p.Ability = panicky{}
	enemy := b.add("enemy", 1, 1, 0, component.RangeClose, 0, 200)
	q := b.add("q", 0, 1, 1, component.RangeClose, 15, 100)

	attacks := NewCombatSystem(b.world, b.env, false).Update()
	if enemy.Health != 200-10-15 {
		t.Errorf("Expected both attackers to land, enemy at %.0f", enemy.Health)
	}
	if !q.LastAttack.Equal(b.clock.Now()) {
		t.Error("Expected unit after the panicking one to attack")
	}
	// У p атака прервалась до снаряда, поэтому засчитаны удары q и enemy.
	if attacks != 2 {
		t.Errorf("Expected 2 attacks, got %d", attacks)
	}
}

func TestReapRemovesUnitsKilledBetweenSteps(t *testing.T) {
	b := newBattle()
	a := b.add("a", 0, 0, 0, component.RangeClose, 1, 100)
	burned := b.add("burned", 1, 5, 3, component.RangeClose, 1, 100)
	burned.ApplyDamage(1000)

	var got []component.UnitDefeated
	b.env.Events.Subscribe(event.UnitDefeated, event.ListenerFunc(func(e event.Event) {
		got = append(got, e.Data.(component.UnitDefeated))
	}))

	if n := Reap(b.world, b.env.Events, discard); n != 1 {
		t.Errorf("Expected 1 reaped unit, got %d", n)
	}
	if !burned.Removed() || a.Removed() {
		t.Error("Expected only the dead unit removed")
	}
	if b.world.Board.At(5, 3) != nil {
		t.Error("Expected dead unit's cell cleared")
	}
	if len(got) != 1 || got[0].By != nil {
		t.Errorf("Expected one defeat without a killer, got %+v", got)
	}
}

func TestProjectileSystemRemovesArrivedAndOrphaned(t *testing.T) {
	b := newBattle()
	target := b.add("target", 1, 3, 0, component.RangeClose, 1, 100)
	geo := b.env.Geometry
	cx, cy := geo.CellCenter(3, 0)

	near := component.NewProjectile(cx-4, cy, target, 5, nil, true)
	far := component.NewProjectile(cx-300, cy, target, 5, nil, true)
	orphan := component.NewProjectile(0, 0, nil, 5, nil, false)
	for _, p := range []*component.Projectile{near, far, orphan} {
		b.world.AddProjectile(p)
	}

	ps := NewProjectileSystem(b.world)
	if hits := ps.Update(geo); hits != 2 {
		t.Errorf("Expected 2 hits, got %d", hits)
	}
	if left := b.world.Projectiles(); len(left) != 1 || left[0] != far {
		t.Errorf("Expected only the far projectile left, got %d", len(left))
	}

	b.world.RemoveUnit(target)
	ps.Update(geo)
	if len(b.world.Projectiles()) != 0 {
		t.Error("Expected projectile with removed target to disappear")
	}
}

func TestStatsSystemAccumulates(t *testing.T) {
	b := newBattle()
	stats := NewStatsSystem(b.env.Events)
	a := b.add("a", 0, 0, 0, component.RangeClose, 60, 300)
	e := b.add("e", 1, 1, 0, component.RangeClose, 5, 100)
	idle := b.add("idle", 1, 8, 3, component.RangeClose, 5, 100)
	stats.Track(idle)

	cs := NewCombatSystem(b.world, b.env, false)
	cs.Update()
	b.clock.Advance(time.Second)
	cs.Update()

	b.env.Events.Dispatch(event.Event{Type: event.AbilityTriggered, Data: component.AbilityTriggered{Owner: a, Kind: "self_buff"}})
	b.env.Events.Dispatch(event.Event{Type: event.EffectTick, Data: component.EffectTick{Source: a, Target: idle, Damage: 7.5}})

	snap := stats.Snapshot()
	if len(snap) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(snap))
	}
	top := snap[0]
	if top.ID != a.ID || top.DamageDealt != 100+7.5 || top.Attacks != 2 || top.Kills != 1 || top.Casts != 1 {
		t.Errorf("Unexpected attacker stats: %+v", top)
	}
	for _, st := range snap {
		switch st.ID {
		case e.ID:
			if !st.Defeated || st.DamageTaken != 100 || st.DamageDealt != 5 {
				t.Errorf("Unexpected victim stats: %+v", st)
			}
		case idle.ID:
			if st.DamageTaken != 7.5 || st.Defeated {
				t.Errorf("Unexpected idle stats: %+v", st)
			}
		}
	}

	stats.Reset()
	if len(stats.Snapshot()) != 0 {
		t.Error("Expected empty stats after reset")
	}
}
