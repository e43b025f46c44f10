// internal/config/config.go
package config

import (
	"image/color"
	"time"
)

const (
	ScreenWidth   = 800
	ScreenHeight  = 600
	TPS           = 60
	MaxDeltaTime  = 60 * time.Millisecond // Ограничение шага часов после долгого кадра
	ClickCooldown = 300 * time.Millisecond

	EnemySpeed = 2.0  // Пикселей за тик
	EnemySize  = 20.0 // Сторона квадрата столкновений, рисуется кругом

	TowerSize           = 40.0
	TowerRange          = 200.0
	TowerAttackCooldown = 480 * time.Millisecond

	ProjectileSpeed = 5.0 // Пикселей за тик
	ProjectileSize  = 6.0

	SpawnInterval = 100 * time.Millisecond
	MaxEnemies    = 0 // 0 — без ограничения

	ShadowOffset = 2.0

	SpeedButtonOffsetX = 40 // От правого края экрана
	SpeedButtonY       = 30
	SpeedButtonSize    = 12.0
	PauseButtonOffsetX = 80
	PauseButtonY       = 30
	PauseButtonSize    = 10.0
)

var (
	BackgroundColor   = color.RGBA{255, 255, 255, 255}
	ShadowColor       = color.RGBA{0, 0, 0, 255}
	EnemyColor        = color.RGBA{200, 50, 50, 255}
	TowerColor        = color.RGBA{50, 50, 200, 255}
	ProjectileColor   = color.RGBA{50, 200, 50, 255}
	PathColor         = color.RGBA{220, 220, 220, 255}
	TextColor         = color.RGBA{20, 20, 30, 255}
	PauseOverlay      = color.RGBA{0, 0, 0, 128}
	UIBorderColor     = color.RGBA{20, 20, 30, 255}
	PauseButtonColor  = color.RGBA{70, 130, 180, 220}
	PlayButtonColor   = color.RGBA{220, 60, 60, 220}
	SpeedButtonColors = []color.RGBA{
		{70, 130, 180, 220},  // x1
		{220, 60, 60, 220},   // x2
		{194, 178, 128, 255}, // x4
	}
	SpeedMultipliers = []int{1, 2, 4} // Тиков симуляции за кадр
)
