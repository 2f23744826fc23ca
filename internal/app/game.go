// internal/app/game.go
package app

import (
	"go-topdown-shooter/internal/component"
	"go-topdown-shooter/internal/config"
	"go-topdown-shooter/internal/event"
	"go-topdown-shooter/internal/input"
	"go-topdown-shooter/internal/level"
	"go-topdown-shooter/internal/system"
	"go-topdown-shooter/internal/utils"
)

// Mode задаёт верхнеуровневое состояние игры.
type Mode int

const (
	ModeMainMenu Mode = iota
	ModePlaying
	ModeGameOver
)

// Outcome фиксирует исход завершённой партии.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeVictory
	OutcomeDefeat
)

// Game holds the main game state and logic. Один экземпляр на процесс:
// генератор случайных чисел и статистика сессии живут через рестарты,
// всё остальное пересоздаётся при полном сбросе.
type Game struct {
	Mode    Mode
	Outcome Outcome

	Player *component.Player
	Level  *level.Level

	ProjectileSystem *system.ProjectileSystem
	CombatSystem     *system.CombatSystem
	EventDispatcher  *event.Dispatcher
	Rng              *utils.PRNGService
	Stats            *SessionStats

	gameTime    float64
	exitBlocked bool
}

// NewGame initializes a new game instance. Сид 0 означает сид от
// системных часов: каждый запуск процесса даёт свой поток случайности.
func NewGame(seed int64) *Game {
	eventDispatcher := event.NewDispatcher()
	projectiles := system.NewProjectileSystem(eventDispatcher)

	g := &Game{
		Mode:             ModeMainMenu,
		ProjectileSystem: projectiles,
		CombatSystem:     system.NewCombatSystem(projectiles),
		EventDispatcher:  eventDispatcher,
		Rng:              utils.NewPRNGService(seed),
		Stats:            &SessionStats{},
	}

	eventDispatcher.Subscribe(event.EnemyDestroyed, g.Stats)
	eventDispatcher.Subscribe(event.RoomCleared, g.Stats)
	eventDispatcher.Subscribe(event.PlayerDied, g.Stats)

	g.ResetGame()
	return g
}

// ResetGame полностью пересобирает партию: новый игрок, новый уровень,
// пустой пул снарядов. Поток случайности и статистика сессии при этом
// продолжаются, игровое время не откатывается.
func (g *Game) ResetGame() {
	g.Player = component.NewPlayer(config.ScreenWidth/2, config.ScreenHeight/2)
	g.Level = level.Generate(g.Rng)
	g.ProjectileSystem.Reset()
	g.Outcome = OutcomeNone
	g.exitBlocked = false
}

// Update progresses the game state by one frame.
func (g *Game) Update(in input.State, deltaTime float64) {
	switch g.Mode {
	case ModeMainMenu:
		if in.Confirm {
			g.Mode = ModePlaying
		}
	case ModeGameOver:
		if in.Confirm {
			g.ResetGame()
			g.Mode = ModeMainMenu
		}
	case ModePlaying:
		g.updatePlaying(in, deltaTime)
	}
}

// updatePlaying выполняет один тик боя. Порядок шагов фиксирован:
// движение игрока, выстрелы, полёт и попадания снарядов, обновление
// комнаты, переход между комнатами, проверка исхода.
func (g *Game) updatePlaying(in input.State, deltaTime float64) {
	g.gameTime += deltaTime
	room := g.Level.CurrentRoom()

	g.Player.Update(deltaTime, in)
	room.ClampEntity(&g.Player.Entity)

	g.CombatSystem.HandlePlayerFire(g.Player, in)
	g.CombatSystem.HandleEnemyFire(room)

	g.ProjectileSystem.Advance(deltaTime)
	g.ProjectileSystem.Resolve(room, g.Player)

	wasCleared := room.Cleared
	room.Update(deltaTime, g.Player, g.Rng, g.gameTime)
	if room.Cleared && !wasCleared {
		g.EventDispatcher.Dispatch(event.Event{Type: event.RoomCleared, Data: g.Level.Current})
	}

	g.exitBlocked = false
	if g.Player.X > room.ExitBoundary() {
		if room.Cleared {
			if g.Level.Advance() {
				g.Player.X = g.Level.CurrentRoom().X + config.ExitZoneWidth
			}
		} else {
			// Выход заперт, пока комната не зачищена.
			g.Player.X = room.ExitBoundary()
			g.exitBlocked = true
		}
	}

	// Поражение побеждает в гонке: если игрок погиб в тот же тик,
	// когда пал последний враг, засчитывается поражение.
	if g.Player.Health <= 0 {
		g.Mode = ModeGameOver
		g.Outcome = OutcomeDefeat
		g.EventDispatcher.Dispatch(event.Event{Type: event.PlayerDied})
		return
	}
	if g.Level.IsLastRoom() && g.Level.CurrentRoom().Cleared {
		g.Mode = ModeGameOver
		g.Outcome = OutcomeVictory
	}
}

// GameTime возвращает накопленное игровое время.
func (g *Game) GameTime() float64 {
	return g.gameTime
}
