// internal/defs/loader.go
package defs

import (
	_ "embed"
	"errors"
	"fmt"
	"log"
	"os"

	"go-beastfight/internal/component"

	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownUnit is returned when a unit id is not in the catalogue.
	ErrUnknownUnit = errors.New("unknown unit")
	// ErrUnknownAbility is returned when a unit references an ability kind nobody registered.
	ErrUnknownAbility = errors.New("unknown ability")
)

//go:embed roster.yaml
var embeddedRoster []byte

// Catalog holds all unit definitions keyed by id, in file order.
type Catalog struct {
	units map[string]UnitDefinition
	order []string
}

type catalogFile struct {
	Units []UnitDefinition `yaml:"units"`
}

// Default returns the catalogue compiled into the binary.
func Default() (*Catalog, error) {
	c, err := ParseCatalog(embeddedRoster)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded roster: %w", err)
	}
	return c, nil
}

// LoadCatalog reads a unit catalogue from a YAML file.
func LoadCatalog(path string) (*Catalog, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read unit definitions file: %w", err)
	}
	c, err := ParseCatalog(file)
	if err != nil {
		return nil, err
	}
	log.Printf("Loaded %d unit definitions from %s", c.Len(), path)
	return c, nil
}

// ParseCatalog decodes and validates a catalogue document.
func ParseCatalog(b []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("failed to unmarshal unit definitions: %w", err)
	}

	c := &Catalog{units: make(map[string]UnitDefinition, len(f.Units))}
	var errs []error
	for i, def := range f.Units {
		def.Range = string(component.ParseRange(def.Range))
		if err := validate(def); err != nil {
			errs = append(errs, fmt.Errorf("unit #%d (%s): %w", i, def.ID, err))
			continue
		}
		if _, dup := c.units[def.ID]; dup {
			errs = append(errs, fmt.Errorf("unit #%d: duplicate id %q", i, def.ID))
			continue
		}
		c.units[def.ID] = def
		c.order = append(c.order, def.ID)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("invalid unit definitions: %w", err)
	}
	return c, nil
}

func validate(d UnitDefinition) error {
	var errs []error
	if d.ID == "" {
		errs = append(errs, errors.New("id is required"))
	}
	if d.Name == "" {
		errs = append(errs, errors.New("name is required"))
	}
	if d.Health <= 0 {
		errs = append(errs, fmt.Errorf("health must be positive, got %v", d.Health))
	}
	if d.AttackSpeed <= 0 {
		errs = append(errs, fmt.Errorf("attack_speed must be positive, got %v", d.AttackSpeed))
	}
	if d.CritChance < 0 || d.CritChance > 1 {
		errs = append(errs, fmt.Errorf("crit_chance must be within [0, 1], got %v", d.CritChance))
	}
	if d.ResourcePool < 0 {
		errs = append(errs, fmt.Errorf("resource_pool must not be negative, got %v", d.ResourcePool))
	}
	switch component.ResourceKind(d.Resource) {
	case component.ResourceMana, component.ResourceRage:
	default:
		errs = append(errs, fmt.Errorf("unknown resource %q", d.Resource))
	}
	switch d.Tier {
	case TierStandard, TierHighCost, TierDummy:
	default:
		errs = append(errs, fmt.Errorf("unknown tier %q", d.Tier))
	}
	return errors.Join(errs...)
}

// Get returns the definition with the given id.
func (c *Catalog) Get(id string) (UnitDefinition, error) {
	def, ok := c.units[id]
	if !ok {
		return UnitDefinition{}, fmt.Errorf("%q: %w", id, ErrUnknownUnit)
	}
	return def, nil
}

// Len returns the number of definitions.
func (c *Catalog) Len() int { return len(c.order) }

// IDs returns all ids in file order.
func (c *Catalog) IDs() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Pool returns the definitions of the given tier that belong to class, in file order.
func (c *Catalog) Pool(class string, tier Tier) []UnitDefinition {
	var out []UnitDefinition
	for _, id := range c.order {
		def := c.units[id]
		if def.Tier == tier && def.HasClass(class) {
			out = append(out, def)
		}
	}
	return out
}

// CheckAbilities verifies that every referenced ability kind is known.
func (c *Catalog) CheckAbilities(known func(kind string) bool) error {
	var errs []error
	for _, id := range c.order {
		def := c.units[id]
		if def.Ability != "" && !known(def.Ability) {
			errs = append(errs, fmt.Errorf("unit %q: %q: %w", id, def.Ability, ErrUnknownAbility))
		}
	}
	return errors.Join(errs...)
}
