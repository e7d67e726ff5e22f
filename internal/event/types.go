// internal/event/types.go
package event

const (
	AttackLanded      EventType = "AttackLanded"      // удар прошёл, урон уже нанесён
	AbilityTriggered  EventType = "AbilityTriggered"  // способность сработала
	AbilityFailed     EventType = "AbilityFailed"     // способность не нашла цель
	UnitDefeated      EventType = "UnitDefeated"      // юнит убран с поля и из ростера
	ProjectileSpawned EventType = "ProjectileSpawned" // снаряд вылетел
	PhaseChanged      EventType = "PhaseChanged"      // разминка закончилась
	EffectTick        EventType = "EffectTick"        // тик периодического урона
)
