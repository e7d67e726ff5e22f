// internal/component/events.go
package component

// AttackLanded — полезная нагрузка события event.AttackLanded.
type AttackLanded struct {
	Attacker *Unit
	Target   *Unit
	Damage   float64 // фактическое изменение здоровья цели
	Critical bool
}

// AbilityTriggered — полезная нагрузка event.AbilityTriggered и event.AbilityFailed.
type AbilityTriggered struct {
	Owner  *Unit
	Target *Unit
	Kind   string
	Err    error
}

// EffectTick — полезная нагрузка event.EffectTick.
type EffectTick struct {
	Source *Unit
	Target *Unit
	Kind   string
	Damage float64
}

// ProjectileSpawned — полезная нагрузка event.ProjectileSpawned.
type ProjectileSpawned struct {
	Attacker   *Unit
	Projectile *Projectile
}

// UnitDefeated — полезная нагрузка event.UnitDefeated. By равен nil,
// если юнит погиб от эффекта, а не от удара.
type UnitDefeated struct {
	Unit *Unit
	By   *Unit
}
