// internal/types/types.go
package types

// EntityID — идентификатор сущности в ECS.
type EntityID uint64

// NoEntity is never handed out by the ECS.
const NoEntity EntityID = 0
