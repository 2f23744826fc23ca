// internal/event/types.go
package event

const (
	EnemyDestroyed EventType = "EnemyDestroyed" // Враг уничтожен, Data: component.EnemyKind
	RoomCleared    EventType = "RoomCleared"    // Комната зачищена, Data: индекс комнаты
	PlayerDied     EventType = "PlayerDied"     // Игрок погиб
)
