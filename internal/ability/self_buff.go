// internal/ability/self_buff.go
package ability

import (
	"log"
	"time"

	"go-beastfight/internal/assets"
	"go-beastfight/internal/clock"
	"go-beastfight/internal/component"
	"go-beastfight/internal/config"
)

// SelfBuff — мгновенное усиление владельца: больше урона, короче интервал атаки.
type SelfBuff struct {
	owner  *component.Unit
	clock  clock.Clock
	logger *log.Logger

	icon      assets.Image
	iconUntil time.Time
}

// NewSelfBuff создаёт усиление для owner.
func NewSelfBuff(owner *component.Unit, deps Deps) *SelfBuff {
	return &SelfBuff{
		owner:  owner,
		clock:  deps.Clock,
		logger: deps.logger(),
		icon:   deps.image(config.SelfBuffIconAsset),
	}
}

func (s *SelfBuff) Kind() string      { return KindSelfBuff }
func (s *SelfBuff) NeedsTarget() bool { return false }

// Trigger усиливает владельца навсегда и сбрасывает его ресурс. Цель игнорируется.
func (s *SelfBuff) Trigger(_ *component.Unit) error {
	u := s.owner
	u.AttackDamage += config.SelfBuffDamageBonus

	interval := u.AttackInterval - config.SelfBuffIntervalCut
	if interval < config.SelfBuffMinInterval {
		interval = config.SelfBuffMinInterval
	}
	u.AttackInterval = interval
	u.AttackSpeed = float64(time.Second) / float64(interval)

	u.ResetResource()
	s.iconUntil = s.clock.Now().Add(config.SelfBuffIconDuration)

	s.logger.Printf("%s is empowered: attack damage %.0f, attack interval %v.", u.Name, u.AttackDamage, u.AttackInterval)
	return nil
}

// IconVisible — показывать ли иконку усиления над владельцем.
func (s *SelfBuff) IconVisible(now time.Time) bool {
	return now.Before(s.iconUntil)
}

// Icon возвращает картинку иконки, nil если она не загрузилась.
func (s *SelfBuff) Icon() assets.Image { return s.icon }
