// internal/level/level.go
package level

import (
	"go-topdown-shooter/internal/config"
	"go-topdown-shooter/internal/utils"
)

// Level это упорядоченная последовательность комнат с курсором текущей.
// Число комнат после генерации не меняется, курсор движется только
// вперёд и только на одну комнату.
type Level struct {
	Rooms   []Room
	Current int
}

// Generate строит уровень со стандартным числом комнат.
func Generate(rng *utils.PRNGService) *Level {
	return GenerateN(config.RoomCount, rng)
}

// GenerateN строит уровень из roomCount комнат, выложенных слева направо
// без зазоров. Все комнаты, кроме последней, получают случайное число
// врагов на случайных позициях внутри отступа от стен; последняя комната
// получает ровно одного босса в центре.
func GenerateN(roomCount int, rng *utils.PRNGService) *Level {
	if roomCount <= 0 {
		panic("level: room count must be positive")
	}

	l := &Level{
		Rooms: make([]Room, 0, roomCount),
	}

	for i := 0; i < roomCount; i++ {
		isBossRoom := i == roomCount-1
		room := NewRoom(float64(i)*config.RoomWidth, 0, config.RoomWidth, config.RoomHeight, isBossRoom)

		if isBossRoom {
			room.AddBoss(room.X+config.RoomWidth/2, config.RoomHeight/2, rng)
		} else {
			enemyCount := rng.IntRange(config.MinEnemiesPerRoom, config.MaxEnemiesPerRoom)
			for j := 0; j < enemyCount; j++ {
				x := rng.FloatRange(room.X+config.EnemySpawnMargin, room.X+config.RoomWidth-config.EnemySpawnMargin)
				y := rng.FloatRange(config.EnemySpawnMargin, config.RoomHeight-config.EnemySpawnMargin)
				room.AddEnemy(x, y, rng)
			}
		}

		l.Rooms = append(l.Rooms, room)
	}

	return l
}

// CurrentRoom возвращает комнату под курсором.
func (l *Level) CurrentRoom() *Room {
	return &l.Rooms[l.Current]
}

// IsLastRoom сообщает, стоит ли курсор на последней комнате.
func (l *Level) IsLastRoom() bool {
	return l.Current == len(l.Rooms)-1
}

// Advance сдвигает курсор на следующую комнату. За последней комнатой
// продвижение молча не происходит.
func (l *Level) Advance() bool {
	if l.Current >= len(l.Rooms)-1 {
		return false
	}
	l.Current++
	return true
}
