// internal/config/loader.go
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load читает настройки матча из YAML. Сначала берётся пресет режима из файла
// (mode), затем поверх него накладываются остальные поля.
func Load(path string) (Settings, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read settings file: %w", err)
	}
	return Parse(b)
}

// Parse разбирает YAML-настройки. Пустой документ даёт DefaultSettings.
func Parse(b []byte) (Settings, error) {
	var head struct {
		Mode Mode `yaml:"mode"`
	}
	if err := yaml.Unmarshal(b, &head); err != nil {
		return Settings{}, fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	s, err := ForMode(head.Mode)
	if err != nil {
		return Settings{}, err
	}
	if err := yaml.Unmarshal(b, &s); err != nil {
		return Settings{}, fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, fmt.Errorf("invalid settings: %w", err)
	}
	return s, nil
}
