package ability

import "errors"

var (
	// ErrNoTarget — способности нужна цель, а её не передали.
	ErrNoTarget = errors.New("ability requires a target")
	// ErrTargetDefeated — цель уже мертва или убрана с поля.
	ErrTargetDefeated = errors.New("target already defeated")
	// ErrAbilityBusy — эффект уже действует на другую цель.
	ErrAbilityBusy = errors.New("ability effect already active")
	// ErrUnknownKind — в реестре нет способности с таким видом.
	ErrUnknownKind = errors.New("unknown ability kind")
)
