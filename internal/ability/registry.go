// internal/ability/registry.go
package ability

import (
	"fmt"
	"log"
	"sort"

	"go-beastfight/internal/assets"
	"go-beastfight/internal/clock"
	"go-beastfight/internal/component"
	"go-beastfight/internal/event"
	"go-beastfight/internal/schedule"
)

const (
	KindSelfBuff = "self_buff"
	KindBurn     = "burn"
)

// Deps — зависимости, общие для всех способностей матча.
type Deps struct {
	Clock  clock.Clock
	Queue  *schedule.Queue
	Events *event.Dispatcher
	Images assets.Loader // может быть nil, тогда иконок нет
	Logger *log.Logger
}

func (d Deps) logger() *log.Logger {
	if d.Logger == nil {
		return log.Default()
	}
	return d.Logger
}

func (d Deps) image(path string) assets.Image {
	if d.Images == nil {
		return nil
	}
	img, err := d.Images.Load(path)
	if err != nil {
		return nil
	}
	return img
}

// Constructor создаёт способность, привязанную к owner.
type Constructor func(owner *component.Unit, deps Deps) component.Ability

// Registry сопоставляет вид способности из каталога с конструктором.
// Новая способность добавляется регистрацией, путь атаки юнита не меняется.
type Registry struct {
	ctors map[string]Constructor
}

// NewRegistry возвращает реестр со встроенными способностями.
func NewRegistry() *Registry {
	r := &Registry{ctors: make(map[string]Constructor)}
	r.Register(KindSelfBuff, func(owner *component.Unit, deps Deps) component.Ability {
		return NewSelfBuff(owner, deps)
	})
	r.Register(KindBurn, func(owner *component.Unit, deps Deps) component.Ability {
		return NewBurn(owner, deps)
	})
	return r
}

// Register добавляет или заменяет конструктор.
func (r *Registry) Register(kind string, ctor Constructor) {
	r.ctors[kind] = ctor
}

// Has сообщает, известен ли вид.
func (r *Registry) Has(kind string) bool {
	_, ok := r.ctors[kind]
	return ok
}

// Kinds возвращает зарегистрированные виды по алфавиту.
func (r *Registry) Kinds() []string {
	kinds := make([]string, 0, len(r.ctors))
	for k := range r.ctors {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// Attach создаёт способность вида kind и вешает её на owner.
// Пустой kind означает юнита без способности.
func (r *Registry) Attach(owner *component.Unit, kind string, deps Deps) error {
	if kind == "" {
		return nil
	}
	ctor, ok := r.ctors[kind]
	if !ok {
		return fmt.Errorf("failed to attach %q to %s: %w", kind, owner.Name, ErrUnknownKind)
	}
	owner.Ability = ctor(owner, deps)
	return nil
}
