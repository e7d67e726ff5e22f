// pkg/grid/geometry.go
package grid

const (
	// screenRows — на сколько строк делится высота экрана при выборе размера клетки.
	screenRows = 8
	// BottomMargin — отступ поля от нижнего края экрана.
	BottomMargin = 50
)

// Geometry описывает, как клетки поля ложатся на пиксели экрана.
type Geometry struct {
	Cols, Rows int
	CellSize   float64
	OffsetX    float64
	OffsetY    float64
}

// NewGeometry подбирает размер клетки под экран: поле центрируется по горизонтали
// и прижимается к низу с отступом BottomMargin.
func NewGeometry(screenWidth, screenHeight, cols, rows int) Geometry {
	cell := min(screenWidth/cols, screenHeight/screenRows)
	return Geometry{
		Cols:     cols,
		Rows:     rows,
		CellSize: float64(cell),
		OffsetX:  float64((screenWidth - cols*cell) / 2),
		OffsetY:  float64(screenHeight - rows*cell - BottomMargin),
	}
}

// CellOrigin возвращает левый верхний угол клетки.
func (g Geometry) CellOrigin(x, y int) (float64, float64) {
	return g.OffsetX + float64(x)*g.CellSize, g.OffsetY + float64(y)*g.CellSize
}

// CellCenter возвращает центр клетки.
func (g Geometry) CellCenter(x, y int) (float64, float64) {
	ox, oy := g.CellOrigin(x, y)
	return ox + g.CellSize/2, oy + g.CellSize/2
}

// SpriteAnchor возвращает левый верхний угол спрайта размера size, отцентрированного в клетке.
func (g Geometry) SpriteAnchor(x, y int, size float64) (float64, float64) {
	ox, oy := g.CellOrigin(x, y)
	return ox + (g.CellSize-size)/2, oy + (g.CellSize-size)/2
}

// Width и Height поля в пикселях.
func (g Geometry) Width() float64  { return float64(g.Cols) * g.CellSize }
func (g Geometry) Height() float64 { return float64(g.Rows) * g.CellSize }
