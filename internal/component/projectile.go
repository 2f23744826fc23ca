// internal/component/projectile.go
package component

import "go-topdown-shooter/internal/config"

// Projectile представляет летящий снаряд. Снаряды живут в пуле:
// неактивный снаряд это свободный слот, готовый к повторному выстрелу.
type Projectile struct {
	Entity
	SpeedX    float64
	SpeedY    float64
	FromEnemy bool
	Damage    int
}

// NewProjectile создаёт неактивный снаряд (слот пула по умолчанию).
func NewProjectile() Projectile {
	p := Projectile{
		Entity: NewEntity(0, 0, config.ProjectileRadius, 1, config.PlayerProjectileColor),
		Damage: config.PlayerProjectileDamage,
	}
	p.Active = false
	return p
}

// Fire активирует снаряд в точке (x, y) и направляет его по dir.
// Урон и цвет зависят от того, кто стреляет.
func (p *Projectile) Fire(x, y float64, dir Direction, fromEnemy bool) {
	p.X = x
	p.Y = y
	p.Active = true
	p.FromEnemy = fromEnemy
	p.Facing = dir

	if fromEnemy {
		p.Color = config.EnemyProjectileColor
		p.Damage = config.EnemyProjectileDamage
	} else {
		p.Color = config.PlayerProjectileColor
		p.Damage = config.PlayerProjectileDamage
	}

	p.SpeedX = 0
	p.SpeedY = 0
	switch dir {
	case DirUp:
		p.SpeedY = -config.ProjectileSpeed
	case DirRight:
		p.SpeedX = config.ProjectileSpeed
	case DirDown:
		p.SpeedY = config.ProjectileSpeed
	case DirLeft:
		p.SpeedX = -config.ProjectileSpeed
	}
}

// Advance интегрирует позицию активного снаряда по его скорости.
func (p *Projectile) Advance(deltaTime float64) {
	if !p.Active {
		return
	}
	p.X += p.SpeedX * deltaTime
	p.Y += p.SpeedY * deltaTime
}
