// internal/component/entity.go
package component

import (
	"image/color"
	"math"
)

// Direction задаёт одно из четырёх направлений взгляда.
type Direction int

const (
	DirUp Direction = iota
	DirRight
	DirDown
	DirLeft
)

// Entity хранит общие атрибуты всех игровых объектов:
// позицию, радиус столкновения, здоровье и флаг активности.
// Неактивная сущность не участвует в симуляции и не рисуется.
type Entity struct {
	X, Y      float64
	Radius    float64
	Health    int
	MaxHealth int
	Active    bool
	Facing    Direction
	Color     color.RGBA
}

// NewEntity создаёт активную сущность с полным здоровьем, смотрящую вправо.
func NewEntity(x, y, radius float64, health int, c color.RGBA) Entity {
	return Entity{
		X:         x,
		Y:         y,
		Radius:    radius,
		Health:    health,
		MaxHealth: health,
		Active:    true,
		Facing:    DirRight,
		Color:     c,
	}
}

// TakeDamage уменьшает здоровье на amount. При достижении нуля
// здоровье фиксируется на нуле, а сущность деактивируется.
func (e *Entity) TakeDamage(amount int) {
	e.Health -= amount
	if e.Health <= 0 {
		e.Health = 0
		e.Active = false
	}
}

// IsColliding проверяет пересечение двух окружностей.
// Касание без перекрытия столкновением не считается.
func (e *Entity) IsColliding(other *Entity) bool {
	dx := e.X - other.X
	dy := e.Y - other.Y
	distance := math.Sqrt(dx*dx + dy*dy)
	return distance < e.Radius+other.Radius
}
