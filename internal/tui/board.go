// internal/tui/board.go
package tui

import (
	"fmt"
	"math"
	"strings"

	"go-beastfight/internal/app"
	"go-beastfight/internal/component"

	"github.com/gdamore/tcell/v2"
)

// Размер клетки поля в символах: рамка, имя, здоровье, ресурс.
const (
	cellW   = 11
	cellH   = 4
	boardY  = 2 // строка, с которой начинается поле
	barSize = cellW - 1
)

// Canvas — то, на чём можно рисовать символы. tcell.Screen подходит.
type Canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// Status — строка состояния над полем.
type Status struct {
	Mode    string
	Phase   app.Phase
	Steps   int
	Elapsed float64
	Paused  bool
	Alive   []int
}

var (
	borderStyle   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	headerStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	healthStyle   = tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 206, 27))
	healthEmpty   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	manaStyle     = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	rageStyle     = tcell.StyleDefault.Foreground(tcell.ColorRed)
	resourceEmpty = tcell.StyleDefault.Foreground(tcell.ColorNavy)
	teamStyles    = []tcell.Style{
		tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 120, 40)),
		tcell.StyleDefault.Foreground(tcell.NewRGBColor(60, 200, 90)),
		tcell.StyleDefault.Foreground(tcell.NewRGBColor(90, 140, 255)),
		tcell.StyleDefault.Foreground(tcell.ColorSilver),
	}
)

// BoardSize — сколько символов занимает поле cols x rows вместе со строками состояния.
func BoardSize(cols, rows int) (int, int) {
	return cols*cellW + 1, boardY + rows*cellH + 1 + 2
}

// HeaderLine собирает строку состояния.
func HeaderLine(s Status) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s | %s | step %d | %.1fs", s.Mode, s.Phase, s.Steps, s.Elapsed)
	if s.Paused {
		b.WriteString(" | PAUSED")
	}
	return b.String()
}

// FooterLine — живые по командам и подсказка по клавишам.
func FooterLine(alive []int) string {
	parts := make([]string, 0, len(alive)+1)
	for team, n := range alive {
		parts = append(parts, fmt.Sprintf("team %d: %d", team, n))
	}
	parts = append(parts, "p pause  q quit")
	return strings.Join(parts, " | ")
}

// DrawBoard рисует сетку, юнитов и строки состояния.
func DrawBoard(c Canvas, cols, rows int, views []app.UnitView, s Status) {
	drawText(c, 0, 0, HeaderLine(s), headerStyle)
	drawGrid(c, cols, rows)
	for _, v := range views {
		if v.CellX < 0 || v.CellX >= cols || v.CellY < 0 || v.CellY >= rows {
			continue
		}
		drawUnit(c, v)
	}
	drawText(c, 0, boardY+rows*cellH+1, FooterLine(s.Alive), borderStyle)
}

func drawGrid(c Canvas, cols, rows int) {
	w := cols * cellW
	h := rows * cellH
	for y := 0; y <= h; y++ {
		for x := 0; x <= w; x++ {
			onV := x%cellW == 0
			onH := y%cellH == 0
			var r rune
			switch {
			case onV && onH:
				r = '+'
			case onH:
				r = '-'
			case onV:
				r = '|'
			default:
				continue
			}
			c.SetContent(x, boardY+y, r, nil, borderStyle)
		}
	}
}

func drawUnit(c Canvas, v app.UnitView) {
	x0 := v.CellX*cellW + 1
	y0 := boardY + v.CellY*cellH + 1

	nameStyle := teamStyle(v.Team)
	if v.Flash {
		nameStyle = nameStyle.Reverse(true)
	}
	name := truncate(v.Name, barSize)
	if v.IconVisible {
		name = truncate(v.Name, barSize-1) + "*"
	}
	drawText(c, x0, y0, name, nameStyle)

	drawBar(c, x0, y0+1, v.HealthRatio, healthStyle, healthEmpty)
	fill := manaStyle
	if v.Kind == component.ResourceRage {
		fill = rageStyle
	}
	drawBar(c, x0, y0+2, v.ResourceRatio, fill, resourceEmpty)
}

// Filled — сколько делений полоски из width закрашено при доле ratio.
func Filled(ratio float64, width int) int {
	if ratio <= 0 || math.IsNaN(ratio) {
		return 0
	}
	if ratio >= 1 {
		return width
	}
	n := int(math.Round(ratio * float64(width)))
	// Живой юнит с крошечным остатком всё равно видит одно деление.
	if n == 0 {
		n = 1
	}
	return n
}

func drawBar(c Canvas, x, y int, ratio float64, fill, empty tcell.Style) {
	n := Filled(ratio, barSize)
	for i := 0; i < barSize; i++ {
		if i < n {
			c.SetContent(x+i, y, '█', nil, fill)
		} else {
			c.SetContent(x+i, y, '░', nil, empty)
		}
	}
}

func drawText(c Canvas, x, y int, s string, style tcell.Style) {
	for _, r := range s {
		c.SetContent(x, y, r, nil, style)
		x++
	}
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

func teamStyle(team int) tcell.Style {
	if team < 0 {
		team = 0
	}
	return teamStyles[team%len(teamStyles)]
}
