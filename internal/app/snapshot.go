// internal/app/snapshot.go
package app

import (
	"image/color"

	"go-topdown-shooter/internal/component"
)

// EntitySnapshot это всё, что нужно фронтенду, чтобы нарисовать
// одну сущность: позиция, радиус, здоровье для полоски, цвет и метка.
type EntitySnapshot struct {
	X, Y      float64
	Radius    float64
	Health    int
	MaxHealth int
	Color     color.RGBA
	Facing    component.Direction
	Label     string
}

// RoomSnapshot описывает текущую комнату для отрисовки.
type RoomSnapshot struct {
	X, Y          float64
	Width, Height float64
	Cleared       bool
	EnemiesLeft   int
}

// UISnapshot собирает данные для HUD.
type UISnapshot struct {
	Health        int
	MaxHealth     int
	RoomIndex     int // с единицы, для надписи ROOM: i/n
	RoomCount     int
	BossWarning   bool
	ExitBlocked   bool
	EnemiesKilled int
	RoomsCleared  int
	Deaths        int
}

// FrameSnapshot это доступный только для чтения снимок кадра.
// Ядро не рисует само: фронтенды читают снимок и рисуют чем умеют.
type FrameSnapshot struct {
	Mode        Mode
	Outcome     Outcome
	Player      EntitySnapshot
	Enemies     []EntitySnapshot
	Projectiles []EntitySnapshot
	Room        RoomSnapshot
	UI          UISnapshot
}

// Snapshot строит снимок текущего кадра для отрисовки.
func (g *Game) Snapshot() FrameSnapshot {
	room := g.Level.CurrentRoom()

	snap := FrameSnapshot{
		Mode:    g.Mode,
		Outcome: g.Outcome,
		Player:  entitySnapshot(&g.Player.Entity, ""),
		Room: RoomSnapshot{
			X:           room.X,
			Y:           room.Y,
			Width:       room.Width,
			Height:      room.Height,
			Cleared:     room.Cleared,
			EnemiesLeft: room.ActiveEnemyCount(),
		},
		UI: UISnapshot{
			Health:        g.Player.Health,
			MaxHealth:     g.Player.MaxHealth,
			RoomIndex:     g.Level.Current + 1,
			RoomCount:     len(g.Level.Rooms),
			BossWarning:   g.Level.IsLastRoom() && !room.Cleared,
			ExitBlocked:   g.exitBlocked,
			EnemiesKilled: g.Stats.EnemiesKilled,
			RoomsCleared:  g.Stats.RoomsCleared,
			Deaths:        g.Stats.Deaths,
		},
	}

	for i := range room.Enemies {
		enemy := &room.Enemies[i]
		if !enemy.Active {
			continue
		}
		label := ""
		if enemy.Kind == component.KindBoss {
			label = "BOSS"
		}
		snap.Enemies = append(snap.Enemies, entitySnapshot(&enemy.Entity, label))
	}

	pool := g.ProjectileSystem.Pool()
	for i := range pool {
		if !pool[i].Active {
			continue
		}
		snap.Projectiles = append(snap.Projectiles, entitySnapshot(&pool[i].Entity, ""))
	}

	return snap
}

func entitySnapshot(e *component.Entity, label string) EntitySnapshot {
	return EntitySnapshot{
		X:         e.X,
		Y:         e.Y,
		Radius:    e.Radius,
		Health:    e.Health,
		MaxHealth: e.MaxHealth,
		Color:     e.Color,
		Facing:    e.Facing,
		Label:     label,
	}
}
