// internal/level/room.go
package level

import (
	"go-topdown-shooter/internal/component"
	"go-topdown-shooter/internal/config"
	"go-topdown-shooter/internal/utils"
)

// Room это прямоугольный участок уровня, владеющий своими врагами.
// Враги хранятся по значению в одном срезе: стабильный индекс вместо
// указателей, вид врага задаётся дискриминантом Kind.
type Room struct {
	X, Y          float64
	Width, Height float64
	Enemies       []component.Enemy
	Cleared       bool
	HasBoss       bool
}

// NewRoom создаёт комнату с заданными границами.
func NewRoom(x, y, width, height float64, hasBoss bool) Room {
	return Room{
		X:       x,
		Y:       y,
		Width:   width,
		Height:  height,
		HasBoss: hasBoss,
	}
}

// AddEnemy добавляет обычного врага в точку (x, y).
func (r *Room) AddEnemy(x, y float64, rng *utils.PRNGService) {
	r.Enemies = append(r.Enemies, component.NewEnemy(x, y, rng))
}

// AddBoss добавляет босса в точку (x, y).
func (r *Room) AddBoss(x, y float64, rng *utils.PRNGService) {
	r.Enemies = append(r.Enemies, component.NewBoss(x, y, rng))
}

// Update обновляет активных врагов, удерживает их в границах комнаты
// и пересчитывает флаг зачистки. Комната без активных врагов зачищена;
// пустая комната зачищается первым же вызовом.
func (r *Room) Update(deltaTime float64, player *component.Player, rng *utils.PRNGService, gameTime float64) {
	for i := range r.Enemies {
		enemy := &r.Enemies[i]
		if !enemy.Active {
			continue
		}
		enemy.Update(deltaTime, player, rng, gameTime)
		r.ClampEntity(&enemy.Entity)
	}

	r.Cleared = true
	for i := range r.Enemies {
		if r.Enemies[i].Active {
			r.Cleared = false
			break
		}
	}
}

// ClampEntity прижимает сущность внутрь комнаты с учётом её радиуса.
func (r *Room) ClampEntity(e *component.Entity) {
	e.X = clamp(e.X, r.X+e.Radius, r.X+r.Width-e.Radius)
	e.Y = clamp(e.Y, r.Y+e.Radius, r.Y+r.Height-e.Radius)
}

// ContainsPoint проверяет, лежит ли точка в комнате (границы включительно).
func (r *Room) ContainsPoint(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width && y >= r.Y && y <= r.Y+r.Height
}

// ExitBoundary возвращает X-координату, за которой начинается зона выхода
// у правого края комнаты.
func (r *Room) ExitBoundary() float64 {
	return r.X + r.Width - config.ExitZoneWidth
}

// ActiveEnemyCount возвращает число живых врагов в комнате.
func (r *Room) ActiveEnemyCount() int {
	count := 0
	for i := range r.Enemies {
		if r.Enemies[i].Active {
			count++
		}
	}
	return count
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
