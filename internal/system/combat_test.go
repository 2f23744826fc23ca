package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-topdown-shooter/internal/component"
	"go-topdown-shooter/internal/config"
	"go-topdown-shooter/internal/input"
	"go-topdown-shooter/internal/utils"
)

func TestHandlePlayerFire(t *testing.T) {
	projectiles, _ := newTestSystem()
	combat := NewCombatSystem(projectiles)
	player := component.NewPlayer(400, 300)

	// Клавиша не нажата: выстрела нет.
	combat.HandlePlayerFire(player, input.State{})
	assert.Equal(t, 0, projectiles.ActiveCount())

	combat.HandlePlayerFire(player, input.State{Fire: true})
	assert.Equal(t, 1, projectiles.ActiveCount())
	assert.Equal(t, config.PlayerShootCooldown, player.ShootCooldown)

	// Кулдаун взведён: удержание клавиши не даёт второго снаряда.
	combat.HandlePlayerFire(player, input.State{Fire: true})
	assert.Equal(t, 1, projectiles.ActiveCount())
}

func TestHandlePlayerFireAfterCooldown(t *testing.T) {
	projectiles, _ := newTestSystem()
	combat := NewCombatSystem(projectiles)
	player := component.NewPlayer(400, 300)

	combat.HandlePlayerFire(player, input.State{Fire: true})
	player.Update(config.PlayerShootCooldown, input.State{})
	combat.HandlePlayerFire(player, input.State{Fire: true})

	assert.Equal(t, 2, projectiles.ActiveCount())
}

func TestHandleEnemyFireRequiresAggro(t *testing.T) {
	projectiles, _ := newTestSystem()
	combat := NewCombatSystem(projectiles)
	rng := utils.NewPRNGService(1)
	room := testRoom()
	room.AddEnemy(200, 200, rng)

	// Без агро враг молчит даже со снятым кулдауном.
	combat.HandleEnemyFire(&room)
	assert.Equal(t, 0, projectiles.ActiveCount())

	room.Enemies[0].Aggro = true
	combat.HandleEnemyFire(&room)
	assert.Equal(t, 1, projectiles.ActiveCount())
	assert.Equal(t, config.EnemyShootCooldown, room.Enemies[0].ShootCooldown)

	combat.HandleEnemyFire(&room)
	assert.Equal(t, 1, projectiles.ActiveCount(), "cooldown blocks the next shot")
}

func TestHandleEnemyFireSkipsInactive(t *testing.T) {
	projectiles, _ := newTestSystem()
	combat := NewCombatSystem(projectiles)
	rng := utils.NewPRNGService(1)
	room := testRoom()
	room.AddEnemy(200, 200, rng)
	room.Enemies[0].Aggro = true
	room.Enemies[0].Active = false

	combat.HandleEnemyFire(&room)

	assert.Equal(t, 0, projectiles.ActiveCount())
}

func TestHandleEnemyFireAllEligibleShoot(t *testing.T) {
	projectiles, _ := newTestSystem()
	combat := NewCombatSystem(projectiles)
	rng := utils.NewPRNGService(1)
	room := testRoom()
	for i := 0; i < 3; i++ {
		room.AddEnemy(float64(100+i*50), 200, rng)
		room.Enemies[i].Aggro = true
	}

	combat.HandleEnemyFire(&room)

	assert.Equal(t, 3, projectiles.ActiveCount())
}
