// internal/app/launch.go
package app

import (
	"fmt"

	"go-beastfight/internal/config"
	"go-beastfight/internal/defs"
)

// LaunchFlags — параметры командной строки, общие для окна и терминала.
// Пустые поля не перекрывают значения из файла настроек.
type LaunchFlags struct {
	ConfigPath string
	Mode       string
	Seed       int64
	RosterPath string
	AssetDir   string
	DebugAddr  string
}

// ResolveSettings собирает настройки: файл (если задан) или пресет режима, затем флаги.
func ResolveSettings(f LaunchFlags) (config.Settings, error) {
	var (
		s   config.Settings
		err error
	)
	if f.ConfigPath != "" {
		s, err = config.Load(f.ConfigPath)
	} else {
		s, err = config.ForMode(config.Mode(f.Mode))
	}
	if err != nil {
		return config.Settings{}, err
	}

	if f.Seed != 0 {
		s.Seed = f.Seed
	}
	if f.RosterPath != "" {
		s.RosterFile = f.RosterPath
	}
	if f.AssetDir != "" {
		s.AssetDir = f.AssetDir
	}
	if f.DebugAddr != "" {
		s.DebugAddr = f.DebugAddr
	}
	if err := s.Validate(); err != nil {
		return config.Settings{}, fmt.Errorf("invalid settings: %w", err)
	}
	return s, nil
}

// ResolveCatalog берёт каталог из RosterFile или встроенный.
func ResolveCatalog(s config.Settings) (*defs.Catalog, error) {
	if s.RosterFile == "" {
		return defs.Default()
	}
	return defs.LoadCatalog(s.RosterFile)
}
