// internal/defs/types.go
package defs

import (
	"go-beastfight/internal/component"
)

// Tier — ценовая категория бойца.
type Tier string

const (
	TierStandard Tier = "standard"
	TierHighCost Tier = "high_cost"
	TierDummy    Tier = "dummy"
)

// UnitDefinition describes a fighter as it appears in the catalogue.
type UnitDefinition struct {
	ID               string   `yaml:"id"`
	Name             string   `yaml:"name"`
	Tier             Tier     `yaml:"tier"`
	Classes          []string `yaml:"classes"`
	Traits           []string `yaml:"traits"`
	Health           float64  `yaml:"health"`
	Regen            float64  `yaml:"regen"`
	Range            string   `yaml:"range"`
	AttackDamage     float64  `yaml:"attack_damage"`
	AttackSpeed      float64  `yaml:"attack_speed"`
	CritChance       float64  `yaml:"crit_chance"`
	AbilityPower     float64  `yaml:"ability_power"`
	ResourcePool     float64  `yaml:"resource_pool"`
	StartingResource float64  `yaml:"starting_resource"`
	Resource         string   `yaml:"resource"`
	Ability          string   `yaml:"ability,omitempty"`
	Description      string   `yaml:"description,omitempty"`
	Sprite           string   `yaml:"sprite"`
}

// HasClass reports whether the fighter belongs to class.
func (d UnitDefinition) HasClass(class string) bool {
	for _, c := range d.Classes {
		if c == class {
			return true
		}
	}
	return false
}

// Stats converts the definition into the stats a Unit is built from.
func (d UnitDefinition) Stats() component.Stats {
	return component.Stats{
		DefID:        d.ID,
		Name:         d.Name,
		Description:  d.Description,
		Classes:      d.Classes,
		Traits:       d.Traits,
		Health:       d.Health,
		Regen:        d.Regen,
		Range:        component.ParseRange(d.Range),
		AttackDamage: d.AttackDamage,
		AttackSpeed:  d.AttackSpeed,
		AbilityPower: d.AbilityPower,
		CritChance:   d.CritChance,
		ResourcePool: d.ResourcePool,
		Resource:     d.StartingResource,
		Kind:         component.ResourceKind(d.Resource),
		SpritePath:   d.Sprite,
	}
}
