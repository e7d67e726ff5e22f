// internal/system/projectile.go
package system

import (
	"go-beastfight/internal/entity"
	"go-beastfight/pkg/grid"
)

// ProjectileSystem двигает снаряды каждый кадр. Урон уже нанесён при атаке,
// долетевший снаряд просто исчезает.
type ProjectileSystem struct {
	world *entity.World
}

func NewProjectileSystem(world *entity.World) *ProjectileSystem {
	return &ProjectileSystem{world: world}
}

// Update сдвигает все снаряды и возвращает число долетевших.
func (s *ProjectileSystem) Update(geo grid.Geometry) int {
	hits := 0
	for _, p := range s.world.Projectiles() {
		if p.Advance(geo) {
			s.world.RemoveProjectile(p)
			hits++
		}
	}
	return hits
}
