// internal/system/movement.go
package system

import (
	"log"

	"go-beastfight/internal/component"
	"go-beastfight/internal/config"
	"go-beastfight/internal/entity"
	"go-beastfight/internal/utils"
)

// MovementSystem двигает юнитов, которым некого атаковать, на клетку к ближайшему врагу.
type MovementSystem struct {
	world      *entity.World
	freeForAll bool
	tieBreak   config.TieBreak
	logger     *log.Logger
}

func NewMovementSystem(world *entity.World, freeForAll bool, tieBreak config.TieBreak, logger *log.Logger) *MovementSystem {
	if logger == nil {
		logger = log.Default()
	}
	return &MovementSystem{world: world, freeForAll: freeForAll, tieBreak: tieBreak, logger: logger}
}

// Distance — расстояние для выбора цели: по прямой dx+dy,
// если нужен сдвиг по обеим осям, то на единицу больше.
func Distance(a, b *component.Unit) int {
	dx := utils.Abs(a.X - b.X)
	dy := utils.Abs(a.Y - b.Y)
	if dx == 0 || dy == 0 {
		return dx + dy
	}
	return dx + dy + 1
}

// Update делает один шаг движения и возвращает число сдвинувшихся юнитов.
func (s *MovementSystem) Update() int {
	moved := 0
	for _, u := range s.world.Units() {
		if !u.Alive() || s.inCombat(u) {
			continue
		}
		target := s.NearestEnemy(u)
		if target == nil {
			continue
		}
		x, y := s.Step(u, target)
		if x == u.X && y == u.Y {
			continue
		}
		if !s.world.Board.Place(u, x, y) {
			s.logger.Printf("%s cannot move to (%d,%d): board is full.", u.Name, x, y)
			continue
		}
		moved++
	}
	return moved
}

// inCombat — есть ли у u живой враг в зоне атаки.
func (s *MovementSystem) inCombat(u *component.Unit) bool {
	for _, t := range s.world.Units() {
		if t.Alive() && u.IsEnemy(t, s.freeForAll) && u.CanAttack(t) {
			return true
		}
	}
	return false
}

// NearestEnemy — полный перебор ростера. При равенстве побеждает тот,
// кто раньше в ростере.
func (s *MovementSystem) NearestEnemy(u *component.Unit) *component.Unit {
	var nearest *component.Unit
	best := 0
	for _, t := range s.world.Units() {
		if !t.Alive() || !u.IsEnemy(t, s.freeForAll) {
			continue
		}
		if d := Distance(u, t); nearest == nil || d < best {
			nearest, best = t, d
		}
	}
	return nearest
}

// Step возвращает клетку, в которую u шагнёт к target: по оси с большим
// смещением. При равных смещениях решает tieBreak.
func (s *MovementSystem) Step(u, target *component.Unit) (int, int) {
	dx := target.X - u.X
	dy := target.Y - u.Y
	x, y := u.X, u.Y

	switch adx, ady := utils.Abs(dx), utils.Abs(dy); {
	case adx > ady:
		x += utils.Sign(dx)
	case ady > adx:
		y += utils.Sign(dy)
	default:
		x += utils.Sign(dx)
		if s.tieBreak == config.TieBreakDiagonal {
			y += utils.Sign(dy)
		}
	}
	return x, y
}
