package level

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-topdown-shooter/internal/component"
	"go-topdown-shooter/internal/config"
	"go-topdown-shooter/internal/utils"
)

func TestGenerateNLayout(t *testing.T) {
	l := GenerateN(3, utils.NewPRNGService(42))

	require.Len(t, l.Rooms, 3)
	assert.Equal(t, 0, l.Current)
	for i, room := range l.Rooms {
		assert.Equal(t, float64(i)*config.RoomWidth, room.X)
		assert.Equal(t, 0.0, room.Y)
		assert.Equal(t, config.RoomWidth, room.Width)
		assert.Equal(t, config.RoomHeight, room.Height)
	}
}

func TestGenerateNBossRoomIsLast(t *testing.T) {
	l := GenerateN(3, utils.NewPRNGService(42))

	last := l.Rooms[2]
	assert.True(t, last.HasBoss)
	require.Len(t, last.Enemies, 1)
	boss := last.Enemies[0]
	assert.Equal(t, component.KindBoss, boss.Kind)
	assert.Equal(t, last.X+config.RoomWidth/2, boss.X)
	assert.Equal(t, config.RoomHeight/2, boss.Y)

	assert.False(t, l.Rooms[0].HasBoss)
	assert.False(t, l.Rooms[1].HasBoss)
}

func TestGenerateNEnemyCountsAndPlacement(t *testing.T) {
	// Несколько сидов, чтобы покрыть диапазон генерации.
	for seed := int64(1); seed <= 20; seed++ {
		l := GenerateN(config.RoomCount, utils.NewPRNGService(seed))

		for i := 0; i < len(l.Rooms)-1; i++ {
			room := l.Rooms[i]
			assert.GreaterOrEqual(t, len(room.Enemies), config.MinEnemiesPerRoom)
			assert.LessOrEqual(t, len(room.Enemies), config.MaxEnemiesPerRoom)

			for _, e := range room.Enemies {
				assert.Equal(t, component.KindGrunt, e.Kind)
				assert.GreaterOrEqual(t, e.X, room.X+config.EnemySpawnMargin)
				assert.LessOrEqual(t, e.X, room.X+config.RoomWidth-config.EnemySpawnMargin)
				assert.GreaterOrEqual(t, e.Y, config.EnemySpawnMargin)
				assert.LessOrEqual(t, e.Y, config.RoomHeight-config.EnemySpawnMargin)
			}
		}
	}
}

func TestGenerateUsesDefaultRoomCount(t *testing.T) {
	l := Generate(utils.NewPRNGService(7))

	assert.Len(t, l.Rooms, config.RoomCount)
}

func TestGenerateNPanicsOnZeroRooms(t *testing.T) {
	assert.Panics(t, func() {
		GenerateN(0, utils.NewPRNGService(1))
	})
}

func TestAdvanceMovesForwardOnly(t *testing.T) {
	l := GenerateN(3, utils.NewPRNGService(42))

	assert.True(t, l.Advance())
	assert.Equal(t, 1, l.Current)
	assert.False(t, l.IsLastRoom())

	assert.True(t, l.Advance())
	assert.Equal(t, 2, l.Current)
	assert.True(t, l.IsLastRoom())

	// За последней комнатой курсор не двигается.
	assert.False(t, l.Advance())
	assert.Equal(t, 2, l.Current)
}

func TestCurrentRoomFollowsCursor(t *testing.T) {
	l := GenerateN(2, utils.NewPRNGService(42))

	assert.Equal(t, 0.0, l.CurrentRoom().X)
	l.Advance()
	assert.Equal(t, config.RoomWidth, l.CurrentRoom().X)
}
