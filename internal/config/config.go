// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 800
	ScreenHeight = 600
	MaxDeltaTime = 0.06

	PlayerSpeed         = 200.0
	PlayerHealth        = 100
	PlayerRadius        = 15.0
	PlayerShootCooldown = 0.3

	EnemySpeed           = 80.0
	EnemyHealth          = 30
	EnemyRadius          = 12.0
	EnemyShootCooldown   = 1.5
	AggroRadius          = 150.0
	WanderChangeInterval = 2.0

	BossHealth = 150
	BossRadius = 25.0
	// Частоты синусоиды для плетущегося движения босса (рад/с по осям).
	BossWeaveFreqX = 0.5
	BossWeaveFreqY = 0.3

	ProjectileSpeed        = 400.0
	ProjectileRadius       = 5.0
	ProjectilePoolSize     = 100
	ProjectileSpawnOffset  = 20.0
	PlayerProjectileDamage = 10
	EnemyProjectileDamage  = 5

	RoomWidth     = 800.0
	RoomHeight    = 600.0
	RoomCount     = 5
	ExitZoneWidth = 50.0
	// Отступ от краёв комнаты при расстановке врагов.
	EnemySpawnMargin = 100.0

	MinEnemiesPerRoom = 3
	MaxEnemiesPerRoom = 6
)

var (
	BackgroundColor = color.RGBA{0, 0, 0, 255}

	PlayerColor           = color.RGBA{0, 121, 241, 255}   // Синий
	EnemyColor            = color.RGBA{230, 41, 55, 255}   // Красный
	BossColor             = color.RGBA{200, 122, 255, 255} // Фиолетовый
	PlayerProjectileColor = color.RGBA{253, 249, 0, 255}   // Жёлтый
	EnemyProjectileColor  = color.RGBA{230, 41, 55, 255}

	RoomClearedColor    = color.RGBA{0, 228, 48, 255}
	RoomUnclearedColor  = color.RGBA{230, 41, 55, 255}
	HealthBarBackColor  = color.RGBA{230, 41, 55, 255}
	HealthBarFrontColor = color.RGBA{0, 228, 48, 255}
	TextLightColor      = color.RGBA{245, 245, 245, 255}
	TextGrayColor       = color.RGBA{200, 200, 200, 255}
	WarningColor        = color.RGBA{230, 41, 55, 255}
	FacingLineColor     = color.RGBA{255, 255, 255, 255}
	BossLabelColor      = color.RGBA{253, 249, 0, 255}
)
