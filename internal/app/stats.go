// internal/app/stats.go
package app

import (
	"go-topdown-shooter/internal/component"
	"go-topdown-shooter/internal/event"
)

// SessionStats копит статистику за время жизни процесса.
// Внутриигровой сброс её не обнуляет.
type SessionStats struct {
	EnemiesKilled int
	BossesKilled  int
	RoomsCleared  int
	Deaths        int
}

// OnEvent реализует интерфейс event.Listener.
func (s *SessionStats) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyDestroyed:
		s.EnemiesKilled++
		if kind, ok := e.Data.(component.EnemyKind); ok && kind == component.KindBoss {
			s.BossesKilled++
		}
	case event.RoomCleared:
		s.RoomsCleared++
	case event.PlayerDied:
		s.Deaths++
	}
}
