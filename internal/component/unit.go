// internal/component/unit.go
package component

import (
	"strings"
	"time"

	"go-beastfight/internal/assets"

	"github.com/google/uuid"
)

// Range — дальность атаки юнита.
type Range string

const (
	RangeClose  Range = "close"
	RangeMedium Range = "medium"
	RangeLong   Range = "long"
)

// ParseRange приводит строку из каталога к Range. Регистр не важен,
// неизвестные значения сохраняются как есть и считаются нераспознанными.
func ParseRange(s string) Range {
	return Range(strings.ToLower(strings.TrimSpace(s)))
}

// Known сообщает, распознана ли дальность.
func (r Range) Known() bool {
	switch r {
	case RangeClose, RangeMedium, RangeLong:
		return true
	}
	return false
}

// ResourceKind — вид ресурса способности.
type ResourceKind string

const (
	ResourceMana ResourceKind = "mana"
	ResourceRage ResourceKind = "rage"
)

// Stats — исходные характеристики, из которых создаётся юнит.
type Stats struct {
	DefID        string
	Name         string
	Description  string
	Classes      []string
	Traits       []string
	Health       float64
	Regen        float64
	Range        Range
	AttackDamage float64
	AttackSpeed  float64
	AbilityPower float64
	CritChance   float64
	ResourcePool float64
	Resource     float64 // стартовое значение
	Kind         ResourceKind
	SpritePath   string
}

// Unit — боевой юнит на поле.
type Unit struct {
	ID          string
	DefID       string
	Name        string
	Description string
	Classes     map[string]bool
	Traits      map[string]bool
	Team        int

	Health         float64
	MaxHealth      float64
	AttackDamage   float64
	AttackSpeed    float64
	AttackInterval time.Duration
	Range          Range
	CritChance     float64
	AbilityPower   float64

	ResourcePool float64
	Resource     float64
	Regen        float64 // прирост за каждую прошедшую атаку, может быть отрицательным
	Kind         ResourceKind

	LastAttack time.Time
	LastHit    time.Time // когда юнит последний раз получил урон, для вспышки

	Ability Ability

	Sprite     assets.Image
	SpritePath string

	X, Y    int
	placed  bool
	removed bool
}

// NewUnit создаёт юнита из характеристик. Интервал атаки выводится из скорости,
// первая атака возможна не раньше чем через интервал после spawn.
func NewUnit(s Stats, team int, spawn time.Time) *Unit {
	u := &Unit{
		ID:           "u_" + uuid.NewString()[:8],
		DefID:        s.DefID,
		Name:         s.Name,
		Description:  s.Description,
		Classes:      toSet(s.Classes),
		Traits:       toSet(s.Traits),
		Team:         team,
		Health:       s.Health,
		MaxHealth:    s.Health,
		AttackDamage: s.AttackDamage,
		AttackSpeed:  s.AttackSpeed,
		Range:        s.Range,
		CritChance:   s.CritChance,
		AbilityPower: s.AbilityPower,
		ResourcePool: s.ResourcePool,
		Regen:        s.Regen,
		Kind:         s.Kind,
		LastAttack:   spawn,
		SpritePath:   s.SpritePath,
	}
	if s.AttackSpeed > 0 {
		u.AttackInterval = time.Duration(float64(time.Second) / s.AttackSpeed)
	}
	u.GainResource(s.Resource)
	return u
}

func toSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, it := range items {
		set[it] = true
	}
	return set
}

// Cell возвращает клетку юнита.
func (u *Unit) Cell() (int, int) { return u.X, u.Y }

// SetCell вызывается сеткой при размещении.
func (u *Unit) SetCell(x, y int) {
	u.X, u.Y = x, y
	u.placed = true
}

// Placed сообщает, стоял ли юнит когда-нибудь на сетке.
func (u *Unit) Placed() bool { return u.placed }

// Alive — жив и всё ещё в ростере.
func (u *Unit) Alive() bool { return u.Health > 0 && !u.removed }

// Removed сообщает, что юнит убран из ростера. Снаряды и эффекты,
// держащие ссылку на юнита, проверяют именно этот флаг.
func (u *Unit) Removed() bool { return u.removed }

// MarkRemoved вызывается только ростером.
func (u *Unit) MarkRemoved() { u.removed = true }

// IsEnemy сообщает, может ли u сражаться с other. В режиме ffa врагами
// считаются все остальные юниты.
func (u *Unit) IsEnemy(other *Unit, ffa bool) bool {
	if other == nil || other == u {
		return false
	}
	return ffa || other.Team != u.Team
}

// HealthRatio — доля здоровья для полоски, [0, 1].
func (u *Unit) HealthRatio() float64 {
	if u.MaxHealth <= 0 {
		return 0
	}
	return u.Health / u.MaxHealth
}

// ResourceRatio — доля ресурса для полоски, [0, 1].
func (u *Unit) ResourceRatio() float64 {
	if u.ResourcePool <= 0 {
		return 0
	}
	return u.Resource / u.ResourcePool
}

// ResourceFull — ресурс заполнен до предела.
func (u *Unit) ResourceFull() bool {
	return u.ResourcePool > 0 && u.Resource >= u.ResourcePool
}

// HasClass проверяет класс или стихию.
func (u *Unit) HasClass(class string) bool { return u.Classes[class] }
