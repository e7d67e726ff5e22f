// internal/config/settings.go
package config

import (
	"errors"
	"fmt"
	"time"
)

// TieBreak — как ходит юнит, когда до цели одинаково по X и по Y.
type TieBreak string

const (
	// TieBreakHorizontal — при равенстве сдвиг только по X (матч на несколько юнитов).
	TieBreakHorizontal TieBreak = "horizontal"
	// TieBreakDiagonal — при равенстве сдвиг сразу по обеим осям (дуэль двух юнитов).
	TieBreakDiagonal TieBreak = "diagonal"
)

// Mode — готовый набор настроек матча.
type Mode string

const (
	ModeDuel     Mode = "duel"
	ModeSkirmish Mode = "skirmish"
	ModeCustom   Mode = "custom"
)

// UnitSlot — конкретный юнит из каталога. At задаёт клетку [x, y];
// без At юнит ставится в случайную свободную клетку.
type UnitSlot struct {
	Unit string `yaml:"unit"`
	At   []int  `yaml:"at,omitempty"`
}

// TeamSettings — состав одной команды: явные юниты и/или Count случайных
// юнитов базового уровня с классом Pool.
type TeamSettings struct {
	Units []UnitSlot `yaml:"units,omitempty"`
	Pool  string     `yaml:"pool,omitempty"`
	Count int        `yaml:"count,omitempty"`
}

// Settings — параметры матча, читаются из YAML.
type Settings struct {
	Mode         Mode           `yaml:"mode"`
	Seed         int64          `yaml:"seed"`
	GridWidth    int            `yaml:"grid_width"`
	GridHeight   int            `yaml:"grid_height"`
	WarmUp       time.Duration  `yaml:"warm_up"`
	StepInterval time.Duration  `yaml:"step_interval"`
	TieBreak     TieBreak       `yaml:"tie_break"`
	FreeForAll   bool           `yaml:"free_for_all"`
	RosterFile   string         `yaml:"roster_file,omitempty"`
	AssetDir     string         `yaml:"asset_dir"`
	DebugAddr    string         `yaml:"debug_addr"`
	Teams        []TeamSettings `yaml:"teams,omitempty"`
}

// DefaultSettings возвращает настройки схватки 3 на 3 (Fire против Grass).
func DefaultSettings() Settings {
	return SkirmishSettings()
}

func baseSettings() Settings {
	return Settings{
		GridWidth:    GridWidth,
		GridHeight:   GridHeight,
		WarmUp:       WarmUpDuration,
		StepInterval: StepInterval,
		AssetDir:     ".",
		DebugAddr:    DefaultDebugAddr,
	}
}

// SkirmishSettings — три случайных юнита Fire против трёх случайных Grass,
// случайная расстановка, команды, горизонтальный приоритет хода.
func SkirmishSettings() Settings {
	s := baseSettings()
	s.Mode = ModeSkirmish
	s.TieBreak = TieBreakHorizontal
	s.Teams = []TeamSettings{
		{Pool: "Fire", Count: 3},
		{Pool: "Grass", Count: 3},
	}
	return s
}

// DuelSettings — Ignis сверху по центру против Inferna снизу по центру, каждый
// сам за себя, диагональный ход при равенстве.
func DuelSettings() Settings {
	s := baseSettings()
	s.Mode = ModeDuel
	s.TieBreak = TieBreakDiagonal
	s.FreeForAll = true
	s.Teams = []TeamSettings{
		{Units: []UnitSlot{{Unit: "dragon", At: []int{s.GridWidth / 2, 0}}}},
		{Units: []UnitSlot{{Unit: "phoenix", At: []int{s.GridWidth / 2, s.GridHeight - 1}}}},
	}
	return s
}

// ForMode возвращает пресет по имени режима.
func ForMode(mode Mode) (Settings, error) {
	switch mode {
	case ModeDuel:
		return DuelSettings(), nil
	case ModeSkirmish, "":
		return SkirmishSettings(), nil
	case ModeCustom:
		s := baseSettings()
		s.Mode = ModeCustom
		s.TieBreak = TieBreakHorizontal
		return s, nil
	}
	return Settings{}, fmt.Errorf("unknown mode %q", mode)
}

// Validate проверяет согласованность настроек.
func (s Settings) Validate() error {
	var errs []error
	if s.GridWidth <= 0 || s.GridHeight <= 0 {
		errs = append(errs, fmt.Errorf("grid must be positive, got %dx%d", s.GridWidth, s.GridHeight))
	}
	if s.WarmUp < 0 {
		errs = append(errs, fmt.Errorf("warm_up must not be negative, got %v", s.WarmUp))
	}
	if s.StepInterval <= 0 {
		errs = append(errs, fmt.Errorf("step_interval must be positive, got %v", s.StepInterval))
	}
	switch s.TieBreak {
	case TieBreakHorizontal, TieBreakDiagonal:
	default:
		errs = append(errs, fmt.Errorf("unknown tie_break %q", s.TieBreak))
	}
	if len(s.Teams) == 0 {
		errs = append(errs, errors.New("at least one team is required"))
	}
	for i, team := range s.Teams {
		if len(team.Units) == 0 && team.Count <= 0 {
			errs = append(errs, fmt.Errorf("team %d has no units", i))
		}
		if team.Count > 0 && team.Pool == "" {
			errs = append(errs, fmt.Errorf("team %d: count without pool", i))
		}
		for _, slot := range team.Units {
			if slot.Unit == "" {
				errs = append(errs, fmt.Errorf("team %d: slot without unit id", i))
			}
			if slot.At != nil && len(slot.At) != 2 {
				errs = append(errs, fmt.Errorf("team %d: unit %q: at must be [x, y]", i, slot.Unit))
			}
		}
	}
	return errors.Join(errs...)
}
