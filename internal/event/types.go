// internal/event/types.go
package event

import (
	"elemental-arena/internal/element"
	"elemental-arena/internal/types"
	"elemental-arena/internal/utils"
)

const (
	ProjectileSpawned   EventType = "ProjectileSpawned"
	ProjectileBounced   EventType = "ProjectileBounced"
	ProjectileDestroyed EventType = "ProjectileDestroyed"
	WallSpawned         EventType = "WallSpawned"
	WallBroken          EventType = "WallBroken"
	TargetDefeated      EventType = "TargetDefeated"
	ExplosionSpawned    EventType = "ExplosionSpawned"
	CounterAttack       EventType = "CounterAttack" // Манекен ответил своим снарядом
	PlayerHit           EventType = "PlayerHit"
	GameOver            EventType = "GameOver"
	GameReset           EventType = "GameReset"
)

// All lists every game event type, in the order above.
var All = []EventType{
	ProjectileSpawned, ProjectileBounced, ProjectileDestroyed,
	WallSpawned, WallBroken,
	TargetDefeated, ExplosionSpawned, CounterAttack,
	PlayerHit, GameOver, GameReset,
}

// ProjectileData — данные для событий снаряда.
type ProjectileData struct {
	ID       types.EntityID  `json:"id"`
	Owner    types.EntityID  `json:"owner"`
	Element  element.Element `json:"element"`
	Position utils.Vec3      `json:"position"`
	Other    types.EntityID  `json:"other,omitempty"` // С кем столкнулся
}

// WallData — данные для событий стены.
type WallData struct {
	ID       types.EntityID  `json:"id"`
	Element  element.Element `json:"element"`
	Position utils.Vec3      `json:"position"`
	BrokenBy types.EntityID  `json:"broken_by,omitempty"`
}

// TargetData — данные для событий манекена.
type TargetData struct {
	ID         types.EntityID  `json:"id"`
	Element    element.Element `json:"element"`
	Position   utils.Vec3      `json:"position"`
	Projectile types.EntityID  `json:"projectile,omitempty"` // Снаряд контратаки или победивший снаряд
}

// ExplosionData — данные о появившемся взрыве.
type ExplosionData struct {
	ID       types.EntityID `json:"id"`
	Target   types.EntityID `json:"target"`
	Position utils.Vec3     `json:"position"`
	Scale    float64        `json:"scale"`
}

// PlayerHitData — попадание снаряда в игрока.
type PlayerHitData struct {
	Player     types.EntityID  `json:"player"`
	Projectile types.EntityID  `json:"projectile"`
	Element    element.Element `json:"element"`
}

// SessionData — состояние счёта при конце игры или перезапуске.
type SessionData struct {
	Session string `json:"session"`
	Hits    int    `json:"hits"`
	Grade   string `json:"grade"`
}
