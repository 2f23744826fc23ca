// internal/component/player.go
package component

import (
	"go-topdown-shooter/internal/config"
	"go-topdown-shooter/internal/input"
)

// Player хранит состояние игрока. Скорость не накапливается:
// каждый тик она выводится заново из текущего ввода.
type Player struct {
	Entity
	SpeedX        float64
	SpeedY        float64
	ShootCooldown float64
}

// NewPlayer создаёт игрока в точке (x, y) с полным здоровьем.
func NewPlayer(x, y float64) *Player {
	return &Player{
		Entity: NewEntity(x, y, config.PlayerRadius, config.PlayerHealth, config.PlayerColor),
	}
}

// Update пересчитывает скорость из ввода, интегрирует позицию и
// уменьшает кулдаун выстрела. Направление взгляда определяется
// последним сработавшим направлением в фиксированном порядке
// проверки: вверх, вниз, влево, вправо.
func (p *Player) Update(deltaTime float64, in input.State) {
	p.SpeedX = 0
	p.SpeedY = 0

	if in.Up {
		p.SpeedY = -config.PlayerSpeed
		p.Facing = DirUp
	}
	if in.Down {
		p.SpeedY = config.PlayerSpeed
		p.Facing = DirDown
	}
	if in.Left {
		p.SpeedX = -config.PlayerSpeed
		p.Facing = DirLeft
	}
	if in.Right {
		p.SpeedX = config.PlayerSpeed
		p.Facing = DirRight
	}

	p.X += p.SpeedX * deltaTime
	p.Y += p.SpeedY * deltaTime

	if p.ShootCooldown > 0 {
		p.ShootCooldown -= deltaTime
	}
}

// CanShoot сообщает, готов ли игрок к выстрелу.
func (p *Player) CanShoot() bool {
	return p.ShootCooldown <= 0
}

// ResetShootCooldown взводит кулдаун после выстрела.
func (p *Player) ResetShootCooldown() {
	p.ShootCooldown = config.PlayerShootCooldown
}
