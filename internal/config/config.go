// internal/config/config.go
package config

import (
	"image/color"
	"time"
)

const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	MaxDeltaTime = 0.06
	TargetTPS    = 30

	GridWidth  = 12
	GridHeight = 4

	WarmUpDuration = 1500 * time.Millisecond // до первого хода только отрисовка
	StepInterval   = 750 * time.Millisecond  // шаг движения и боя после разминки

	CritMultiplier      = 1.5
	HitResourceFraction = 0.3 // доля Regen, которую юнит с маной получает за полученный удар

	UnitSpriteSize       = 98.0
	ProjectileSpriteSize = 48.0
	ProjectileSpeed      = 5.0 // пикселей за кадр
	ProjectileEpsilon    = 1e-5

	SelfBuffDamageBonus     = 20.0
	SelfBuffIntervalCut     = 200 * time.Millisecond
	SelfBuffMinInterval     = 500 * time.Millisecond
	SelfBuffIconDuration    = 500 * time.Millisecond
	BurnDuration            = 2 * time.Second
	BurnTickInterval        = 500 * time.Millisecond
	BurnMaxHealthFraction   = 0.15
	DamageFlashDuration     = 0.15 // секунды
	HealthBarHeight         = 8
	ResourceBarHeight       = 6
	BarWidthFactor          = 0.9
	BarGap                  = 2
	HealthBarOffsetY        = 12
	AbilityIconSize         = 32.0
	MeleeProjectileAsset    = "Fire Characters/firecc.png"
	RangedProjectileAsset   = "Fire Characters/firelr.png"
	BackgroundAsset         = "Fire Characters/background.png"
	SelfBuffIconAsset       = "Fire Characters/lioabil.png"
	DefaultDebugAddr        = "localhost:6060"
	SnapshotPublishInterval = 250 * time.Millisecond
)

var (
	BackgroundColor     = color.RGBA{0, 0, 0, 255}
	GridLineColor       = color.RGBA{255, 255, 255, 255}
	HealthBarBackground = color.RGBA{255, 0, 0, 255}
	HealthBarFill       = color.RGBA{255, 206, 27, 255} // горчичный
	ManaBarBackground   = color.RGBA{0, 0, 128, 255}
	ManaBarFill         = color.RGBA{0, 0, 255, 255}
	RageBarBackground   = color.RGBA{128, 0, 0, 255}
	RageBarFill         = color.RGBA{255, 0, 0, 255}
	DamageFlashColor    = color.RGBA{255, 255, 255, 160}
	TextLightColor      = color.RGBA{240, 240, 240, 255}
	WarmUpStateColor    = color.RGBA{70, 130, 180, 220}
	ActiveStateColor    = color.RGBA{220, 60, 60, 220}
	PausedOverlayColor  = color.RGBA{0, 0, 0, 128}
	TeamColors          = []color.RGBA{
		{255, 120, 40, 255}, // команда 0
		{60, 200, 90, 255},  // команда 1
		{90, 140, 255, 255},
		{200, 200, 200, 255},
	}
)
