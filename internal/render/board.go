// internal/render/board.go
package render

import (
	"image/color"

	"go-beastfight/internal/app"
	"go-beastfight/internal/assets"
	"go-beastfight/internal/component"
	"go-beastfight/internal/config"
	"go-beastfight/pkg/grid"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// BoardRenderer рисует поле боя: фон, сетку, юнитов с полосками и снаряды.
type BoardRenderer struct {
	geometry grid.Geometry
	fontFace font.Face
	ShowGrid bool
	ShowName bool
}

func NewBoardRenderer(geometry grid.Geometry) *BoardRenderer {
	return &BoardRenderer{
		geometry: geometry,
		fontFace: basicfont.Face7x13,
		ShowGrid: true,
	}
}

// Draw рисует кадр по представлениям матча.
func (r *BoardRenderer) Draw(screen *ebiten.Image, background assets.Image, units []app.UnitView, projectiles []app.ProjectileView) {
	screen.Fill(config.BackgroundColor)
	r.drawBackground(screen, asEbiten(background))
	if r.ShowGrid {
		r.drawGrid(screen)
	}
	for _, u := range units {
		r.drawUnit(screen, u)
	}
	for _, p := range projectiles {
		r.drawProjectile(screen, p)
	}
}

func (r *BoardRenderer) drawBackground(screen, background *ebiten.Image) {
	if background == nil {
		return
	}
	b := background.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(sw)/float64(b.Dx()), float64(sh)/float64(b.Dy()))
	screen.DrawImage(background, op)
}

// drawGrid рисует линии клеток только в нижней половине экрана, где стоит поле.
func (r *BoardRenderer) drawGrid(screen *ebiten.Image) {
	g := r.geometry
	left, top := float32(g.OffsetX), float32(g.OffsetY)
	right := left + float32(g.Width())
	bottom := top + float32(g.Height())
	for col := 0; col <= g.Cols; col++ {
		x := left + float32(float64(col)*g.CellSize)
		vector.StrokeLine(screen, x, top, x, bottom, 1, config.GridLineColor, false)
	}
	for row := 0; row <= g.Rows; row++ {
		y := top + float32(float64(row)*g.CellSize)
		vector.StrokeLine(screen, left, y, right, y, 1, config.GridLineColor, false)
	}
}

func (r *BoardRenderer) drawUnit(screen *ebiten.Image, u app.UnitView) {
	size := config.UnitSpriteSize
	if sprite := asEbiten(u.Sprite); sprite != nil {
		drawScaled(screen, sprite, u.X, u.Y, size)
	} else {
		// Без картинки рисуем квадрат цвета команды.
		vector.DrawFilledRect(screen, float32(u.X), float32(u.Y), float32(size), float32(size), teamColor(u.Team), false)
	}
	if u.Flash {
		vector.DrawFilledRect(screen, float32(u.X), float32(u.Y), float32(size), float32(size), config.DamageFlashColor, false)
	}

	l := LayoutBars(u.X, u.Y, size)
	drawBar(screen, l.X, l.HealthY, l.Width, config.HealthBarHeight, u.HealthRatio, config.HealthBarBackground, config.HealthBarFill)
	back, fill := config.ManaBarBackground, config.ManaBarFill
	if u.Kind == component.ResourceRage {
		back, fill = config.RageBarBackground, config.RageBarFill
	}
	drawBar(screen, l.X, l.ResourceY, l.Width, config.ResourceBarHeight, u.ResourceRatio, back, fill)

	if u.IconVisible {
		if icon := asEbiten(u.Icon); icon != nil {
			drawScaled(screen, icon, u.X+size-config.AbilityIconSize, u.Y, config.AbilityIconSize)
		}
	}
	if r.ShowName {
		text.Draw(screen, u.Name, r.fontFace, int(u.X)+2, int(u.Y+size)-4, config.TextLightColor)
	}
}

func (r *BoardRenderer) drawProjectile(screen *ebiten.Image, p app.ProjectileView) {
	half := config.ProjectileSpriteSize / 2
	if sprite := asEbiten(p.Sprite); sprite != nil {
		drawScaled(screen, sprite, p.X-half, p.Y-half, config.ProjectileSpriteSize)
		return
	}
	vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), 6, config.RageBarFill, true)
}

// Bars — положение полосок здоровья и ресурса над спрайтом.
type Bars struct {
	X         float64
	Width     float64
	HealthY   float64
	ResourceY float64
}

// LayoutBars считает полоски для спрайта с левым верхним углом (x, y).
func LayoutBars(x, y, size float64) Bars {
	width := size * config.BarWidthFactor
	healthY := y - config.HealthBarOffsetY - config.ResourceBarHeight
	return Bars{
		X:         x + (size-width)/2,
		Width:     width,
		HealthY:   healthY,
		ResourceY: healthY + config.HealthBarHeight + config.BarGap,
	}
}

func drawBar(screen *ebiten.Image, x, y, width, height, ratio float64, back, fill color.Color) {
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(width), float32(height), back, false)
	if ratio > 0 {
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(width*ratio), float32(height), fill, false)
	}
}

func drawScaled(screen, img *ebiten.Image, x, y, size float64) {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size/float64(b.Dx()), size/float64(b.Dy()))
	op.GeoM.Translate(x, y)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}

func teamColor(team int) color.RGBA {
	if team < 0 {
		team = 0
	}
	return config.TeamColors[team%len(config.TeamColors)]
}
