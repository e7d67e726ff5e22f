// internal/tui/sound.go
package tui

import (
	"log"
	"sync"
	"time"

	"go-beastfight/internal/component"
	"go-beastfight/internal/event"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Tone — короткий звуковой сигнал.
type Tone struct {
	Freq     float64
	Duration time.Duration
}

// Cues озвучивает события боя короткими синусоидами.
// Без звуковой карты просто молчит.
type Cues struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	logger      *log.Logger
}

func NewCues(logger *log.Logger) *Cues {
	if logger == nil {
		logger = log.Default()
	}
	return &Cues{mixer: &beep.Mixer{}, logger: logger}
}

// Initialize поднимает звук. Ошибка не фатальна, бой идёт и без него.
func (c *Cues) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// Subscribe подписывает сигналы на события матча.
func (c *Cues) Subscribe(d *event.Dispatcher) {
	for _, t := range []event.EventType{event.AttackLanded, event.AbilityTriggered, event.UnitDefeated} {
		d.Subscribe(t, c)
	}
}

// ToneFor выбирает сигнал для события.
func ToneFor(e event.Event) (Tone, bool) {
	switch e.Type {
	case event.AttackLanded:
		if hit, ok := e.Data.(component.AttackLanded); ok && hit.Critical {
			return Tone{Freq: 880, Duration: 60 * time.Millisecond}, true
		}
		return Tone{Freq: 440, Duration: 30 * time.Millisecond}, true
	case event.AbilityTriggered:
		return Tone{Freq: 660, Duration: 120 * time.Millisecond}, true
	case event.UnitDefeated:
		return Tone{Freq: 220, Duration: 250 * time.Millisecond}, true
	}
	return Tone{}, false
}

func (c *Cues) OnEvent(e event.Event) {
	if tone, ok := ToneFor(e); ok {
		c.Play(tone)
	}
}

// Play добавляет сигнал в микшер.
func (c *Cues) Play(t Tone) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	sine, err := generators.SineTone(sampleRate, t.Freq)
	if err != nil {
		c.logger.Printf("WARNING: failed to build tone %.0fHz: %v", t.Freq, err)
		return
	}
	quiet := &effects.Gain{Streamer: beep.Take(sampleRate.N(t.Duration), sine), Gain: -0.7}
	speaker.Lock()
	c.mixer.Add(quiet)
	speaker.Unlock()
}

// Cleanup глушит все сигналы.
func (c *Cues) Cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
	c.initialized = false
}
