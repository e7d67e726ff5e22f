// internal/component/projectile.go
package component

import (
	"math"

	"go-beastfight/internal/assets"
	"go-beastfight/internal/config"
	"go-beastfight/pkg/grid"
)

// Projectile представляет летящий снаряд. Урон уже нанесён в момент атаки,
// снаряд только показывает удар.
type Projectile struct {
	X, Y   float64 // центр снаряда в пикселях
	Target *Unit   // не владеет целью
	Speed  float64 // пикселей за кадр
	Sprite assets.Image
	Melee  bool
}

// NewProjectile создаёт снаряд в точке (x, y).
func NewProjectile(x, y float64, target *Unit, speed float64, sprite assets.Image, melee bool) *Projectile {
	return &Projectile{X: x, Y: y, Target: target, Speed: speed, Sprite: sprite, Melee: melee}
}

// Advance сдвигает снаряд к центру клетки цели на Speed пикселей.
// Возвращает true, когда снаряд долетел или цели больше нет.
func (p *Projectile) Advance(geo grid.Geometry) bool {
	if p.Target == nil || p.Target.Removed() {
		return true
	}
	tx, ty := geo.CellCenter(p.Target.X, p.Target.Y)
	dx, dy := tx-p.X, ty-p.Y
	dist := math.Max(math.Hypot(dx, dy), config.ProjectileEpsilon)

	p.X += dx / dist * p.Speed
	p.Y += dy / dist * p.Speed

	return math.Hypot(tx-p.X, ty-p.Y) < p.Speed
}
