// internal/ui/step_indicator.go
package ui

import (
	"fmt"
	"image/color"
	"strings"

	"go-beastfight/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// StepIndicator показывает номер хода римскими цифрами и сколько живых у каждой команды.
type StepIndicator struct {
	X, Y     int
	Color    color.RGBA
	fontFace font.Face
}

func NewStepIndicator(x, y int) *StepIndicator {
	return &StepIndicator{
		X:        x,
		Y:        y,
		Color:    config.TextLightColor,
		fontFace: basicfont.Face7x13,
	}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Label собирает строку индикатора: "Step XII | team 0: 3 | team 1: 2".
func Label(step int, alive []int) string {
	var b strings.Builder
	b.WriteString("Step ")
	if step > 0 {
		b.WriteString(toRoman(step))
	} else {
		b.WriteString("-")
	}
	for team, n := range alive {
		fmt.Fprintf(&b, " | team %d: %d", team, n)
	}
	return b.String()
}

// Draw отрисовывает индикатор на экране.
func (i *StepIndicator) Draw(screen *ebiten.Image, step int, alive []int) {
	text.Draw(screen, Label(step, alive), i.fontFace, i.X, i.Y, i.Color)
}
