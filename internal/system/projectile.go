// internal/system/projectile.go
package system

import (
	"go-topdown-shooter/internal/component"
	"go-topdown-shooter/internal/config"
	"go-topdown-shooter/internal/event"
	"go-topdown-shooter/internal/level"
)

// ProjectileSystem владеет пулом снарядов фиксированной ёмкости и
// управляет их полётом и попаданиями. Пул создаётся один раз на игру,
// во время боя снаряды только переиспользуют слоты.
type ProjectileSystem struct {
	pool            []component.Projectile
	eventDispatcher *event.Dispatcher
}

// NewProjectileSystem создаёт систему с пулом неактивных снарядов.
func NewProjectileSystem(eventDispatcher *event.Dispatcher) *ProjectileSystem {
	pool := make([]component.Projectile, config.ProjectilePoolSize)
	for i := range pool {
		pool[i] = component.NewProjectile()
	}
	return &ProjectileSystem{
		pool:            pool,
		eventDispatcher: eventDispatcher,
	}
}

// Fire активирует первый свободный слот пула: позиция смещается на
// фиксированное расстояние по направлению выстрела от источника.
// Если свободного слота нет, выстрел молча пропадает.
func (s *ProjectileSystem) Fire(originX, originY float64, dir component.Direction, fromEnemy bool) bool {
	for i := range s.pool {
		if s.pool[i].Active {
			continue
		}

		spawnX := originX
		spawnY := originY
		switch dir {
		case component.DirUp:
			spawnY -= config.ProjectileSpawnOffset
		case component.DirRight:
			spawnX += config.ProjectileSpawnOffset
		case component.DirDown:
			spawnY += config.ProjectileSpawnOffset
		case component.DirLeft:
			spawnX -= config.ProjectileSpawnOffset
		}

		s.pool[i].Fire(spawnX, spawnY, dir, fromEnemy)
		return true
	}
	return false
}

// Advance интегрирует позиции всех активных снарядов.
func (s *ProjectileSystem) Advance(deltaTime float64) {
	for i := range s.pool {
		s.pool[i].Advance(deltaTime)
	}
}

// Resolve разбирает попадания: снаряд за границей комнаты гаснет;
// снаряд игрока бьёт не более одного врага в порядке ростера;
// вражеский снаряд проверяется только против игрока.
func (s *ProjectileSystem) Resolve(room *level.Room, player *component.Player) {
	for i := range s.pool {
		proj := &s.pool[i]
		if !proj.Active {
			continue
		}

		if !room.ContainsPoint(proj.X, proj.Y) {
			proj.Active = false
			continue
		}

		if !proj.FromEnemy {
			for j := range room.Enemies {
				enemy := &room.Enemies[j]
				if !enemy.Active || !proj.IsColliding(&enemy.Entity) {
					continue
				}
				enemy.TakeDamage(proj.Damage)
				proj.Active = false
				if !enemy.Active {
					s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyDestroyed, Data: enemy.Kind})
				}
				break
			}
		} else if proj.IsColliding(&player.Entity) {
			player.TakeDamage(proj.Damage)
			proj.Active = false
		}
	}
}

// Reset деактивирует все снаряды, возвращая пул в исходное состояние.
func (s *ProjectileSystem) Reset() {
	for i := range s.pool {
		s.pool[i].Active = false
	}
}

// Pool открывает слоты пула для чтения (снимок отрисовки, тесты).
func (s *ProjectileSystem) Pool() []component.Projectile {
	return s.pool
}

// ActiveCount возвращает число летящих снарядов.
func (s *ProjectileSystem) ActiveCount() int {
	count := 0
	for i := range s.pool {
		if s.pool[i].Active {
			count++
		}
	}
	return count
}
