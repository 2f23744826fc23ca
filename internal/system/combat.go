// internal/system/combat.go
package system

import (
	"go-topdown-shooter/internal/component"
	"go-topdown-shooter/internal/input"
	"go-topdown-shooter/internal/level"
)

// CombatSystem решает, кто стреляет в этом тике, и заводит кулдауны.
// Сами снаряды живут в ProjectileSystem.
type CombatSystem struct {
	projectiles *ProjectileSystem
}

// NewCombatSystem создаёт боевую систему поверх пула снарядов.
func NewCombatSystem(projectiles *ProjectileSystem) *CombatSystem {
	return &CombatSystem{projectiles: projectiles}
}

// HandlePlayerFire порождает снаряд игрока, если клавиша удерживается
// и кулдаун снят.
func (s *CombatSystem) HandlePlayerFire(player *component.Player, in input.State) {
	if !in.Fire || !player.CanShoot() {
		return
	}
	s.projectiles.Fire(player.X, player.Y, player.Facing, false)
	player.ResetShootCooldown()
}

// HandleEnemyFire даёт выстрелить каждому живому врагу комнаты,
// который в агро и со снятым кулдауном.
func (s *CombatSystem) HandleEnemyFire(room *level.Room) {
	for i := range room.Enemies {
		enemy := &room.Enemies[i]
		if !enemy.Active || !enemy.CanShoot() {
			continue
		}
		s.projectiles.Fire(enemy.X, enemy.Y, enemy.Facing, true)
		enemy.ResetShootCooldown()
	}
}
