// internal/component/player.go
package component

// Player отмечает сущность игрока. Попадание снаряда в игрока понижает оценку.
type Player struct {
	Hits int // Попадания за жизнь этой сущности, только для отображения
}
