// internal/defs/types.go
package defs

import (
	"image/color"

	"elemental-arena/internal/element"
	"elemental-arena/internal/utils"
)

// Visuals contains parameters for rendering an entity.
type Visuals struct {
	Color color.RGBA `json:"color"`
	Size  utils.Vec3 `json:"size"` // Нулевой размер = рендера нет
}

// ProjectileDefinition holds the tuning for one element's projectile ("ball").
type ProjectileDefinition struct {
	Element         element.Element `json:"element"`
	Speed           float64         `json:"speed"`
	SpawnOffset     float64         `json:"spawn_offset"`
	Radius          float64         `json:"radius"`
	Cooldown        float64         `json:"cooldown"`
	DefaultLifespan float64         `json:"default_lifespan"`
	BounceLifespan  float64         `json:"bounce_lifespan"`
	Visuals         Visuals         `json:"visuals"`
}

// WallDefinition holds the tuning for one element's wall.
type WallDefinition struct {
	Element  element.Element `json:"element"`
	Distance float64         `json:"distance"`
	Speed    float64         `json:"speed"`
	Lifespan float64         `json:"lifespan"`
	Cooldown float64         `json:"cooldown"`
	// Коллайдер стены; его высота используется, если у стены нет рендера.
	HalfExtents utils.Vec3 `json:"half_extents"`
	Visuals     Visuals    `json:"visuals"`
}

// AnimationDefinition describes a target's defeat clip.
type AnimationDefinition struct {
	Length float64 `json:"length"`
	Loop   bool    `json:"loop"`
}

// ExplosionDefinition is the explosion "prefab" spawned when a target is defeated.
type ExplosionDefinition struct {
	Duration float64    `json:"duration"`
	Radius   float64    `json:"radius"`
	Color    color.RGBA `json:"color"`
}

// BillboardDefinition configures camera facing for a target.
// Поворот только вокруг вертикальной оси.
type BillboardDefinition struct {
	SmoothSpeed float64 `json:"smooth_speed"`
}

// TargetDefinition places one training target in the arena.
type TargetDefinition struct {
	ID            string               `json:"id"`
	Element       element.Element      `json:"element"`
	Position      utils.Vec3           `json:"position"`
	Radius        float64              `json:"radius"`
	Cooldown      float64              `json:"cooldown"` // Перезарядка контратаки
	ExplosionSize float64              `json:"explosion_size"`
	Animation     *AnimationDefinition `json:"animation,omitempty"`
	Explosion     *ExplosionDefinition `json:"explosion,omitempty"`
	Billboard     *BillboardDefinition `json:"billboard,omitempty"`
	Visuals       *Visuals             `json:"visuals,omitempty"` // nil: рендер не назначен
}

// EnvironmentDefinition is a static, element-less box collider.
type EnvironmentDefinition struct {
	ID          string     `json:"id"`
	Position    utils.Vec3 `json:"position"`
	HalfExtents utils.Vec3 `json:"half_extents"`
}

// PlayerDefinition holds the player's spawn and movement tuning.
type PlayerDefinition struct {
	Position       utils.Vec3 `json:"position"`
	Yaw            float64    `json:"yaw"` // degrees
	Radius         float64    `json:"radius"`
	MoveSpeed      float64    `json:"move_speed"`
	TurnSpeed      float64    `json:"turn_speed"`
	DashMultiplier float64    `json:"dash_multiplier"`
	DashCooldown   float64    `json:"dash_cooldown"`
}

// ArenaDefinition is the whole scene description.
type ArenaDefinition struct {
	Name        string                  `json:"name"`
	Player      PlayerDefinition        `json:"player"`
	Projectiles []ProjectileDefinition  `json:"projectiles"`
	Walls       []WallDefinition        `json:"walls"`
	Targets     []TargetDefinition      `json:"targets"`
	Environment []EnvironmentDefinition `json:"environment"`
}
