package config

import "image/color"

const (
	ScreenWidth           = 1024
	ScreenHeight          = 768
	PixelsPerUnit         = 16.0 // Масштаб вида сверху
	TPS                   = 60
	FixedDeltaTime        = 1.0 / TPS
	MaxDeltaTime          = 0.06
	MaxFixedStepsPerFrame = 4

	// Снаряды (значения по умолчанию из оригинальной игры)
	ProjectileSpeed           = 25.0
	ProjectileSpawnOffset     = 1.0
	ProjectileRadius          = 0.35
	ProjectileCooldown        = 3.0
	ProjectileDefaultLifespan = 8.0
	ProjectileBounceLifespan  = 3.0

	// Стены
	WallSpawnDistance = 3.0
	WallSpeed         = 5.0
	WallLifespan      = 3.0
	WallCooldown      = 3.0
	WallWidth         = 4.0
	WallHeight        = 3.0
	WallDepth         = 0.5
	WallRiseEpsilon   = 0.01
	DefaultWallHeight = 1.0 // Если у стены нет ни рендера, ни коллайдера

	// Манекены
	TargetRadius          = 0.6
	TargetMass            = 50.0
	TargetLinearDamping   = 5.0
	TargetCooldown        = 3.0
	TargetExplosionSize   = 1.0
	TargetBillboardSmooth = 10.0
	ExplosionOffsetUp     = 1.0
	ExplosionDuration     = 0.6
	ExplosionRadius       = 1.5

	// Игрок
	PlayerRadius         = 0.5
	PlayerMoveSpeed      = 10.0
	PlayerTurnSpeed      = 1.0 // градусов за вызов
	PlayerDashMultiplier = 2.0
	PlayerDashCooldown   = 3.0
	PlayerMass           = 1.0
	PlayerLinearDamping  = 2.0

	Gravity = -9.81

	// Аудио
	AudioSampleRate = 44100
	CueDuration     = 0.15
	CueVolume       = 0.25

	ArenaHalfSize = 20.0
)

var (
	BackgroundColor  = color.RGBA{20, 20, 30, 255}
	GroundColor      = color.RGBA{45, 55, 45, 255}
	EnvironmentColor = color.RGBA{90, 90, 100, 255}
	PlayerColor      = color.RGBA{240, 240, 240, 255}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	TextDarkColor    = color.RGBA{20, 20, 30, 255}
	StrokeColor      = color.RGBA{255, 255, 255, 255}
	ExplosionColor   = color.RGBA{255, 160, 40, 200}
	OverlayColor     = color.RGBA{0, 0, 0, 160}
	ButtonColor      = color.RGBA{70, 130, 180, 220}
	ButtonHoverColor = color.RGBA{220, 60, 60, 220}

	// Цвета стихий: огонь, вода, земля, без стихии
	FireColor  = color.RGBA{178, 34, 34, 255}  // firebrick
	WaterColor = color.RGBA{50, 100, 255, 255}
	EarthColor = color.RGBA{244, 164, 96, 255} // sandy brown
	NoneColor  = color.RGBA{128, 128, 128, 255}
)
