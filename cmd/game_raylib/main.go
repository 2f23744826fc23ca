// cmd/game_raylib/main.go
package main

import (
	"fmt"
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"go-topdown-shooter/internal/app"
	"go-topdown-shooter/internal/component"
	"go-topdown-shooter/internal/config"
	"go-topdown-shooter/internal/input"
)

// Альтернативный фронтенд на raylib. Ядро то же самое, меняется
// только опрос клавиатуры и отрисовка.

func main() {
	rl.InitWindow(config.ScreenWidth, config.ScreenHeight, "Top-Down Shooter")
	rl.SetTargetFPS(60)

	game := app.NewGame(0)

	for !rl.WindowShouldClose() {
		deltaTime := float64(rl.GetFrameTime())
		if deltaTime > config.MaxDeltaTime {
			deltaTime = config.MaxDeltaTime
		}
		game.Update(readInput(), deltaTime)
		draw(game.Snapshot())
	}

	rl.CloseWindow()
}

// readInput собирает снимок ввода за кадр.
func readInput() input.State {
	return input.State{
		Up:      rl.IsKeyDown(rl.KeyW) || rl.IsKeyDown(rl.KeyUp),
		Down:    rl.IsKeyDown(rl.KeyS) || rl.IsKeyDown(rl.KeyDown),
		Left:    rl.IsKeyDown(rl.KeyA) || rl.IsKeyDown(rl.KeyLeft),
		Right:   rl.IsKeyDown(rl.KeyD) || rl.IsKeyDown(rl.KeyRight),
		Fire:    rl.IsKeyDown(rl.KeySpace),
		Confirm: rl.IsKeyPressed(rl.KeyEnter),
	}
}

func draw(snap app.FrameSnapshot) {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	switch snap.Mode {
	case app.ModeMainMenu:
		drawMainMenu()
	case app.ModeGameOver:
		drawGameOver(snap)
	case app.ModePlaying:
		drawGame(snap)
	}

	rl.EndDrawing()
}

func drawMainMenu() {
	rl.DrawText("TOP-DOWN SHOOTER", config.ScreenWidth/2-150, 200, 30, rl.White)
	rl.DrawText("Press ENTER to Start", config.ScreenWidth/2-120, 300, 20, rl.White)
	rl.DrawText("WASD to move, SPACE to shoot", config.ScreenWidth/2-170, 350, 20, rl.LightGray)
}

func drawGameOver(snap app.FrameSnapshot) {
	if snap.Outcome == app.OutcomeDefeat {
		rl.DrawText("GAME OVER - YOU DIED!", config.ScreenWidth/2-200, config.ScreenHeight/2-50, 30, rl.White)
	} else {
		rl.DrawText("YOU WIN! BOSS DEFEATED!", config.ScreenWidth/2-200, config.ScreenHeight/2-50, 30, rl.White)
	}
	rl.DrawText("Press ENTER to return to main menu", config.ScreenWidth/2-200, config.ScreenHeight/2+50, 20, rl.LightGray)
}

func drawGame(snap app.FrameSnapshot) {
	camera := rl.Camera2D{
		Target:   rl.NewVector2(float32(snap.Player.X), float32(snap.Player.Y)),
		Offset:   rl.NewVector2(config.ScreenWidth/2.0, config.ScreenHeight/2.0),
		Rotation: 0,
		Zoom:     1,
	}
	rl.BeginMode2D(camera)

	// Граница комнаты: зелёная для зачищенной, красная для боевой.
	roomColor := rl.Red
	if snap.Room.Cleared {
		roomColor = rl.Green
	}
	rl.DrawRectangleLines(int32(snap.Room.X), int32(snap.Room.Y), int32(snap.Room.Width), int32(snap.Room.Height), roomColor)

	if snap.Room.Cleared {
		rl.DrawText("NEXT ROOM -->", int32(snap.Room.X+snap.Room.Width-150), int32(snap.Room.Y+snap.Room.Height/2), 20, rl.Green)
	} else {
		rl.DrawText(fmt.Sprintf("Enemies: %d", snap.Room.EnemiesLeft), int32(snap.Room.X+snap.Room.Width/2-50), int32(snap.Room.Y+20), 20, rl.Red)
	}

	for _, enemy := range snap.Enemies {
		drawEntity(enemy)
	}
	for _, proj := range snap.Projectiles {
		rl.DrawCircleV(rl.NewVector2(float32(proj.X), float32(proj.Y)), float32(proj.Radius), rlColor(proj.Color))
	}

	drawEntity(snap.Player)
	drawFacingLine(snap.Player)

	if snap.UI.ExitBlocked {
		rl.DrawText("Defeat all enemies to proceed!", int32(snap.Player.X-200), int32(snap.Player.Y-50), 20, rl.Red)
	}

	rl.EndMode2D()

	drawHUD(snap)
}

func drawEntity(e app.EntitySnapshot) {
	rl.DrawCircleV(rl.NewVector2(float32(e.X), float32(e.Y)), float32(e.Radius), rlColor(e.Color))

	if e.Health < e.MaxHealth {
		barWidth := int32(2 * e.Radius)
		fill := int32(2 * e.Radius * float64(e.Health) / float64(e.MaxHealth))
		rl.DrawRectangle(int32(e.X-e.Radius), int32(e.Y-e.Radius-10), barWidth, 5, rl.Red)
		rl.DrawRectangle(int32(e.X-e.Radius), int32(e.Y-e.Radius-10), fill, 5, rl.Green)
	}

	if e.Label != "" {
		rl.DrawText(e.Label, int32(e.X-20), int32(e.Y-e.Radius-25), 20, rl.Yellow)
	}
}

func drawFacingLine(p app.EntitySnapshot) {
	tipX, tipY := p.X, p.Y
	offset := p.Radius + 10

	switch p.Facing {
	case component.DirUp:
		tipY = p.Y - offset
	case component.DirRight:
		tipX = p.X + offset
	case component.DirDown:
		tipY = p.Y + offset
	case component.DirLeft:
		tipX = p.X - offset
	}

	rl.DrawLine(int32(p.X), int32(p.Y), int32(tipX), int32(tipY), rl.White)
}

func drawHUD(snap app.FrameSnapshot) {
	rl.DrawRectangle(20, 20, 200, 30, rl.Red)
	rl.DrawRectangle(20, 20, int32(200*snap.UI.Health/snap.UI.MaxHealth), 30, rl.Green)
	rl.DrawText(fmt.Sprintf("HEALTH: %d/%d", snap.UI.Health, snap.UI.MaxHealth), 30, 25, 20, rl.White)

	rl.DrawText(fmt.Sprintf("ROOM: %d/%d", snap.UI.RoomIndex, snap.UI.RoomCount), config.ScreenWidth-150, 20, 20, rl.White)
	rl.DrawText(fmt.Sprintf("KILLS: %d", snap.UI.EnemiesKilled), config.ScreenWidth-150, 45, 20, rl.LightGray)

	if snap.UI.BossWarning {
		rl.DrawText("WARNING: BOSS AHEAD!", config.ScreenWidth/2-150, 20, 25, rl.Red)
	}
}

// rlColor преобразует image/color.RGBA в цвет raylib.
func rlColor(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}
