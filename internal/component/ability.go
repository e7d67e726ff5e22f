// internal/component/ability.go
package component

import (
	"time"

	"go-beastfight/internal/assets"
)

// Ability — особая способность юнита. Срабатывает, когда ресурс владельца
// заполнен после прошедшей атаки. Каждая способность привязана к одному владельцу.
type Ability interface {
	Kind() string
	NeedsTarget() bool
	// Trigger применяет эффект. target равен nil, если NeedsTarget() == false.
	Trigger(target *Unit) error
}

// IconSource реализуют способности, которые показывают иконку над владельцем.
type IconSource interface {
	IconVisible(now time.Time) bool
	Icon() assets.Image
}
