// internal/assets/manager.go
package assets

import (
	"fmt"
	"log"
	"path/filepath"
	"sort"
)

// Manager управляет загрузкой и кэшированием спрайтов.
// Ошибка загрузки логируется один раз, дальше по этому пути отдаётся nil.
type Manager struct {
	dir    string
	loader Loader
	logger *log.Logger

	images map[string]Image
	failed map[string]error
}

// NewManager создаёт менеджер, читающий файлы из dir через loader.
func NewManager(dir string, loader Loader, logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.Default()
	}
	return &Manager{
		dir:    dir,
		loader: loader,
		logger: logger,
		images: make(map[string]Image),
		failed: make(map[string]error),
	}
}

// loadSingle безопасно загружает одну картинку. Паника декодера не роняет матч.
func (m *Manager) loadSingle(path string) (img Image, err error) {
	defer func() {
		if r := recover(); r != nil {
			img = nil
			err = fmt.Errorf("loader panicked on %s: %v", path, r)
		}
	}()
	if m.loader == nil {
		return nil, fmt.Errorf("no loader configured for %s", path)
	}
	return m.loader.Load(filepath.Join(m.dir, path))
}

// Load реализует Loader поверх кэша.
func (m *Manager) Load(path string) (Image, error) {
	if path == "" {
		return nil, nil
	}
	if img, ok := m.images[path]; ok {
		return img, nil
	}
	if err, ok := m.failed[path]; ok {
		return nil, err
	}

	img, err := m.loadSingle(path)
	if err != nil {
		err = fmt.Errorf("failed to load image %s: %w", path, err)
		m.failed[path] = err
		m.logger.Printf("WARNING: %v", err)
		return nil, err
	}
	m.images[path] = img
	return img, nil
}

// Get возвращает картинку или nil, если загрузить не удалось.
func (m *Manager) Get(path string) Image {
	img, _ := m.Load(path)
	return img
}

// Preload загружает список путей заранее и возвращает число успешных загрузок.
func (m *Manager) Preload(paths []string) int {
	loaded := 0
	for _, p := range paths {
		if m.Get(p) != nil {
			loaded++
		}
	}
	return loaded
}

// Failed возвращает отсортированный список путей, которые не загрузились.
func (m *Manager) Failed() []string {
	out := make([]string, 0, len(m.failed))
	for p := range m.failed {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// Cleanup сбрасывает кэш.
func (m *Manager) Cleanup() {
	m.images = make(map[string]Image)
	m.failed = make(map[string]error)
	m.logger.Println("All images unloaded.")
}
