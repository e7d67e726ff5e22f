// internal/clock/clock.go
package clock

import (
	"sync"
	"sync/atomic"
	"time"
)

// Clock — источник монотонного времени для боя (интервалы атак, фазы матча, таймеры эффектов).
type Clock interface {
	Now() time.Time
}

// Monotonic отдаёт реальное время с монотонной составляющей.
type Monotonic struct{}

// NewMonotonic создаёт системные часы.
func NewMonotonic() *Monotonic {
	return &Monotonic{}
}

// Now возвращает time.Now(), монотонная часть сохраняется.
func (Monotonic) Now() time.Time {
	return time.Now()
}

// Pausable — игровое время, которое можно заморозить.
// Пока часы на паузе, Now() возвращает момент начала паузы, после Resume время
// продолжается без скачка.
type Pausable struct {
	mu sync.RWMutex

	source          Clock
	paused          atomic.Bool
	pauseStarted    time.Time
	totalPausedTime time.Duration
}

// NewPausable оборачивает source. Если source == nil, используются системные часы.
func NewPausable(source Clock) *Pausable {
	if source == nil {
		source = NewMonotonic()
	}
	return &Pausable{source: source}
}

// Now возвращает игровое время с учётом всех пауз.
func (p *Pausable) Now() time.Time {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.paused.Load() {
		return p.pauseStarted.Add(-p.totalPausedTime)
	}
	return p.source.Now().Add(-p.totalPausedTime)
}

// Pause останавливает игровое время. Повторный вызов ничего не делает.
func (p *Pausable) Pause() {
	if p.paused.CompareAndSwap(false, true) {
		p.mu.Lock()
		p.pauseStarted = p.source.Now()
		p.mu.Unlock()
	}
}

// Resume продолжает игровое время.
func (p *Pausable) Resume() {
	if p.paused.CompareAndSwap(true, false) {
		p.mu.Lock()
		p.totalPausedTime += p.source.Now().Sub(p.pauseStarted)
		p.pauseStarted = time.Time{}
		p.mu.Unlock()
	}
}

// IsPaused сообщает, стоит ли игровое время.
func (p *Pausable) IsPaused() bool {
	return p.paused.Load()
}

// TotalPaused возвращает суммарную длительность завершённых пауз.
func (p *Pausable) TotalPaused() time.Duration {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.totalPausedTime
}
