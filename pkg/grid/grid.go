// pkg/grid/grid.go
package grid

// Occupant — всё, что может стоять в клетке поля. Сетка не владеет occupant'ами,
// она только хранит ссылки; реализации должны быть указателями.
type Occupant interface {
	Cell() (x, y int)
	SetCell(x, y int)
}

// Grid — прямоугольное поле Width x Height, в каждой клетке не больше одного юнита.
type Grid struct {
	Width  int
	Height int
	cells  [][]Occupant
}

// New создаёт пустое поле.
func New(width, height int) *Grid {
	cells := make([][]Occupant, height)
	for y := range cells {
		cells[y] = make([]Occupant, width)
	}
	return &Grid{Width: width, Height: height, cells: cells}
}

// InBounds проверяет, лежит ли клетка внутри поля.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// At возвращает occupant клетки или nil.
func (g *Grid) At(x, y int) Occupant {
	if !g.InBounds(x, y) {
		return nil
	}
	return g.cells[y][x]
}

// Place ставит o в клетку (x, y). Если клетка занята, идёт вниз по столбцу,
// с переносом на y=0 следующего столбца (столбцы тоже по кругу), пока не найдёт
// свободную. Собственная клетка o считается свободной. Перебор ограничен
// размером поля: на полностью занятом поле Place возвращает false и ничего не меняет.
func (g *Grid) Place(o Occupant, x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	for probes := 0; probes < g.Width*g.Height; probes++ {
		if c := g.cells[y][x]; c == nil || c == o {
			g.release(o)
			g.cells[y][x] = o
			o.SetCell(x, y)
			return true
		}
		y++
		if y >= g.Height {
			y = 0
			x = (x + 1) % g.Width
		}
	}
	return false
}

// Remove освобождает клетку, в которой стоит o. Возвращает false, если o не на поле.
func (g *Grid) Remove(o Occupant) bool {
	return g.release(o)
}

// release чистит прежнюю клетку o, только если там действительно o.
func (g *Grid) release(o Occupant) bool {
	x, y := o.Cell()
	if g.InBounds(x, y) && g.cells[y][x] == o {
		g.cells[y][x] = nil
		return true
	}
	return false
}

// Each обходит занятые клетки построчно.
func (g *Grid) Each(fn func(x, y int, o Occupant)) {
	for y, row := range g.cells {
		for x, o := range row {
			if o != nil {
				fn(x, y, o)
			}
		}
	}
}

// Occupied возвращает число занятых клеток.
func (g *Grid) Occupied() int {
	n := 0
	g.Each(func(int, int, Occupant) { n++ })
	return n
}

// Clear освобождает всё поле.
func (g *Grid) Clear() {
	for y := range g.cells {
		clear(g.cells[y])
	}
}
