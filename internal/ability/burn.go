// internal/ability/burn.go
package ability

import (
	"log"
	"time"

	"go-beastfight/internal/component"
	"go-beastfight/internal/config"
	"go-beastfight/internal/event"
	"go-beastfight/internal/schedule"
)

// Burn — периодический урон по цели. Первый тик сразу, остальные через
// BurnTickInterval в очереди игрового цикла. Одновременно горит только одна цель.
type Burn struct {
	owner  *component.Unit
	queue  *schedule.Queue
	events *event.Dispatcher
	logger *log.Logger

	target    *component.Unit
	remaining int
	perTick   float64
}

// NewBurn создаёт поджог для owner.
func NewBurn(owner *component.Unit, deps Deps) *Burn {
	return &Burn{
		owner:  owner,
		queue:  deps.Queue,
		events: deps.Events,
		logger: deps.logger(),
	}
}

func (b *Burn) Kind() string      { return KindBurn }
func (b *Burn) NeedsTarget() bool { return true }

// Active сообщает, горит ли сейчас цель.
func (b *Burn) Active() bool { return b.target != nil }

// Target возвращает горящую цель или nil.
func (b *Burn) Target() *component.Unit { return b.target }

// Ticks — сколько тиков длится поджог.
func Ticks() int {
	return int(config.BurnDuration / config.BurnTickInterval)
}

// Trigger поджигает target. При ошибке состояние владельца не меняется.
func (b *Burn) Trigger(target *component.Unit) error {
	if target == nil {
		return ErrNoTarget
	}
	if target.Health <= 0 || target.Removed() {
		return ErrTargetDefeated
	}
	if b.Active() {
		return ErrAbilityBusy
	}

	ticks := Ticks()
	b.target = target
	b.remaining = ticks
	b.perTick = target.MaxHealth * config.BurnMaxHealthFraction / float64(ticks)
	b.owner.ResetResource()
	b.logger.Printf("%s sets %s on fire: %d ticks of %.1f damage.", b.owner.Name, target.Name, ticks, b.perTick)

	if b.apply() {
		b.queue.After(config.BurnTickInterval, b.tick)
	}
	return nil
}

// tick — отложенный тик из очереди. Следующий отсчитывается от момента выполнения.
func (b *Burn) tick(now time.Time) {
	if b.apply() {
		b.queue.At(now.Add(config.BurnTickInterval), b.tick)
	}
}

// apply наносит один тик и возвращает true, если поджог продолжается.
func (b *Burn) apply() bool {
	t := b.target
	if t == nil || t.Removed() || t.Health <= 0 {
		b.stop()
		return false
	}

	dealt := t.ApplyDamage(b.perTick)
	b.remaining--
	b.logger.Printf("%s burns for %.1f damage. %s has %.1f health left.", t.Name, dealt, t.Name, t.Health)
	b.events.Dispatch(event.Event{Type: event.EffectTick, Data: component.EffectTick{
		Source: b.owner, Target: t, Kind: KindBurn, Damage: dealt,
	}})

	if t.Health <= 0 {
		b.logger.Printf("%s has been defeated by burn!", t.Name)
		b.stop()
		return false
	}
	if b.remaining <= 0 {
		b.stop()
		return false
	}
	return true
}

func (b *Burn) stop() {
	b.target = nil
	b.remaining = 0
	b.perTick = 0
}
