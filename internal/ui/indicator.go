// internal/ui/indicator.go
package ui

import (
	"image/color"
	"math"
	"time"

	"go-beastfight/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// StateIndicator — кружок в углу экрана, цвет показывает фазу матча.
// При смене фазы кружок коротко "вспухает".
type StateIndicator struct {
	X, Y         float32
	Radius       float32
	LastChange   time.Time
	currentColor color.RGBA
}

func NewStateIndicator(x, y, radius float32) *StateIndicator {
	return &StateIndicator{
		X:      x,
		Y:      y,
		Radius: radius,
	}
}

// SetColor меняет цвет и запускает анимацию, если цвет действительно поменялся.
func (i *StateIndicator) SetColor(c color.RGBA, now time.Time) {
	if c == i.currentColor {
		return
	}
	i.currentColor = c
	i.LastChange = now
}

// Color — текущий цвет индикатора.
func (i *StateIndicator) Color() color.RGBA { return i.currentColor }

// RadiusAt возвращает радиус с учётом затухающей пульсации.
func (i *StateIndicator) RadiusAt(now time.Time) float32 {
	if i.LastChange.IsZero() {
		return i.Radius
	}
	elapsed := now.Sub(i.LastChange).Seconds()
	if elapsed < 0 {
		elapsed = 0
	}
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	return i.Radius * float32(scale)
}

// Draw отрисовывает индикатор
func (i *StateIndicator) Draw(screen *ebiten.Image, now time.Time) {
	r := i.RadiusAt(now)
	vector.DrawFilledCircle(screen, i.X, i.Y, r, i.currentColor, true)
	vector.StrokeCircle(screen, i.X, i.Y, r, 2, config.TextLightColor, true)
}
