// internal/component/combat.go
package component

import (
	"log"

	"go-beastfight/internal/assets"
	"go-beastfight/internal/clock"
	"go-beastfight/internal/config"
	"go-beastfight/internal/event"
	"go-beastfight/internal/utils"
	"go-beastfight/pkg/grid"
)

// CritRoller решает, стал ли удар критическим. Реализуется utils.PRNGService.
type CritRoller interface {
	Roll(chance float64) bool
}

// Env — окружение боя, которое юнит получает на время атаки.
type Env struct {
	Clock        clock.Clock
	Crit         CritRoller
	Geometry     grid.Geometry
	MeleeSprite  assets.Image
	RangedSprite assets.Image
	Events       *event.Dispatcher
	Logger       *log.Logger
}

func (e *Env) logger() *log.Logger {
	if e.Logger == nil {
		return log.Default()
	}
	return e.Logger
}

func (e *Env) emit(t event.EventType, data interface{}) {
	e.Events.Dispatch(event.Event{Type: t, Data: data})
}

// knightOffsets — ходы коня, доступные дальнобойным юнитам.
var knightOffsets = [8][2]int{
	{1, 2}, {2, 1}, {-1, 2}, {-2, 1},
	{1, -2}, {2, -1}, {-1, -2}, {-2, -1},
}

// CanAttack проверяет, достаёт ли u до target со своей клетки.
func (u *Unit) CanAttack(target *Unit) bool {
	if target == nil {
		return false
	}
	dx := utils.Abs(u.X - target.X)
	dy := utils.Abs(u.Y - target.Y)

	switch u.Range {
	case RangeClose:
		return dx <= 1 && dy <= 1
	case RangeMedium:
		return dx <= 2 && dy <= 2
	case RangeLong:
		if dx <= 3 {
			return true
		}
		// dx, dy уже по модулю, поэтому отрицательные смещения никогда не совпадут.
		for _, off := range knightOffsets {
			if dx == off[0] && dy == off[1] {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// AttackEnemy проводит одну атаку. Возвращает снаряд для отрисовки или nil,
// если атака не состоялась (кулдаун, дальность, мёртвые участники).
func (u *Unit) AttackEnemy(target *Unit, env *Env) *Projectile {
	if u.Health <= 0 || u.removed || target == nil || target.removed || target.Health <= 0 {
		return nil
	}
	now := env.Clock.Now()
	if now.Sub(u.LastAttack) < u.AttackInterval {
		return nil
	}
	if !u.CanAttack(target) {
		return nil
	}

	logger := env.logger()
	critical := env.Crit != nil && env.Crit.Roll(u.CritChance)
	damage := u.AttackDamage
	if critical {
		damage *= config.CritMultiplier
		logger.Printf("%s lands a critical hit!", u.Name)
	}
	dealt := target.ApplyDamage(damage)
	u.LastAttack = now
	target.LastHit = now
	logger.Printf("%s attacks %s for %.1f damage. %s has %.1f health left.", u.Name, target.Name, dealt, target.Name, target.Health)

	u.GainResource(u.Regen)
	logger.Printf("%s gains %.1f %s (%.1f/%.0f).", u.Name, u.Regen, u.Kind, u.Resource, u.ResourcePool)
	if target.Health > 0 {
		target.GainManaWhenAttacked()
	}
	env.emit(event.AttackLanded, AttackLanded{Attacker: u, Target: target, Damage: dealt, Critical: critical})

	if u.ResourceFull() {
		u.triggerAbility(target, env)
	}

	p := u.spawnProjectile(target, env)
	env.emit(event.ProjectileSpawned, ProjectileSpawned{Attacker: u, Projectile: p})
	return p
}

// triggerAbility — единственная точка вызова способности.
func (u *Unit) triggerAbility(target *Unit, env *Env) {
	if u.Ability == nil {
		return
	}
	var arg *Unit
	if u.Ability.NeedsTarget() {
		arg = target
	}
	if err := u.Ability.Trigger(arg); err != nil {
		env.logger().Printf("%s could not use %s: %v", u.Name, u.Ability.Kind(), err)
		env.emit(event.AbilityFailed, AbilityTriggered{Owner: u, Target: arg, Kind: u.Ability.Kind(), Err: err})
		return
	}
	env.logger().Printf("%s activates %s!", u.Name, u.Ability.Kind())
	env.emit(event.AbilityTriggered, AbilityTriggered{Owner: u, Target: arg, Kind: u.Ability.Kind()})
}

func (u *Unit) spawnProjectile(target *Unit, env *Env) *Projectile {
	x, y := env.Geometry.CellCenter(u.X, u.Y)
	melee := u.Range == RangeClose
	sprite := env.RangedSprite
	if melee {
		sprite = env.MeleeSprite
	}
	return NewProjectile(x, y, target, config.ProjectileSpeed, sprite, melee)
}

// ApplyDamage уменьшает здоровье на amount и держит его в [0, MaxHealth].
// Отрицательный урон лечит. Возвращает фактическое изменение здоровья.
func (u *Unit) ApplyDamage(amount float64) float64 {
	before := u.Health
	u.Health = utils.Clamp(u.Health-amount, 0, u.MaxHealth)
	return before - u.Health
}

// GainResource добавляет ресурс, не выходя за [0, ResourcePool].
func (u *Unit) GainResource(amount float64) {
	u.Resource = utils.Clamp(u.Resource+amount, 0, u.ResourcePool)
}

// ResetResource обнуляет ресурс после срабатывания способности.
func (u *Unit) ResetResource() { u.Resource = 0 }

// GainManaWhenAttacked — юниты на мане получают 30% своего прироста при попадании по ним.
func (u *Unit) GainManaWhenAttacked() {
	if u.Kind != ResourceMana {
		return
	}
	gain := u.Regen * config.HitResourceFraction
	u.GainResource(gain)
}
