// cmd/game/main.go
package main

import (
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-topdown-shooter/internal/app"
	"go-topdown-shooter/internal/component"
	"go-topdown-shooter/internal/config"
	"go-topdown-shooter/internal/input"
	"go-topdown-shooter/internal/ui"
	"go-topdown-shooter/pkg/render"
)

// AppGame связывает ядро симуляции с циклом ebiten.
type AppGame struct {
	game           *app.Game
	hud            *ui.HUD
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.game.Update(readInput(), deltaTime)
	return nil
}

// readInput собирает снимок ввода за кадр.
func readInput() input.State {
	return input.State{
		Up:      ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:    ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Left:    ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:   ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Fire:    ebiten.IsKeyPressed(ebiten.KeySpace),
		Confirm: inpututil.IsKeyJustPressed(ebiten.KeyEnter),
	}
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	snap := a.game.Snapshot()

	switch snap.Mode {
	case app.ModeMainMenu:
		a.hud.DrawMenu(screen)
	case app.ModeGameOver:
		a.hud.DrawGameOver(screen, snap)
	case app.ModePlaying:
		a.drawWorld(screen, snap)
		a.hud.Draw(screen, snap)
	}
}

// drawWorld рисует комнату и сущности. Камера следует за игроком:
// мировые координаты сдвигаются так, чтобы игрок был в центре экрана.
func (a *AppGame) drawWorld(screen *ebiten.Image, snap app.FrameSnapshot) {
	camX := snap.Player.X - config.ScreenWidth/2
	camY := snap.Player.Y - config.ScreenHeight/2

	roomColor := config.RoomUnclearedColor
	if snap.Room.Cleared {
		roomColor = config.RoomClearedColor
	}
	render.StrokeRect(screen,
		float32(snap.Room.X-camX), float32(snap.Room.Y-camY),
		float32(snap.Room.Width), float32(snap.Room.Height), 2, roomColor)

	if snap.Room.Cleared {
		render.Text(screen, render.HUDFace(), "NEXT ROOM -->",
			int(snap.Room.X+snap.Room.Width-150-camX), int(snap.Room.Y+snap.Room.Height/2-camY), config.RoomClearedColor)
	} else {
		render.Text(screen, render.HUDFace(), fmt.Sprintf("Enemies: %d", snap.Room.EnemiesLeft),
			int(snap.Room.X+snap.Room.Width/2-50-camX), int(snap.Room.Y+30-camY), config.RoomUnclearedColor)
	}

	for _, enemy := range snap.Enemies {
		drawEntity(screen, enemy, camX, camY)
	}
	for _, proj := range snap.Projectiles {
		render.FillCircle(screen, float32(proj.X-camX), float32(proj.Y-camY), float32(proj.Radius), proj.Color)
	}

	drawEntity(screen, snap.Player, camX, camY)
	drawFacingLine(screen, snap.Player, camX, camY)
}

// drawEntity рисует круг сущности, полоску здоровья при уроне и метку.
func drawEntity(screen *ebiten.Image, e app.EntitySnapshot, camX, camY float64) {
	x := float32(e.X - camX)
	y := float32(e.Y - camY)
	r := float32(e.Radius)
	render.FillCircle(screen, x, y, r, e.Color)

	if e.Health < e.MaxHealth {
		barWidth := 2 * r
		fill := barWidth * float32(e.Health) / float32(e.MaxHealth)
		render.FillRect(screen, x-r, y-r-10, barWidth, 5, config.HealthBarBackColor)
		render.FillRect(screen, x-r, y-r-10, fill, 5, config.HealthBarFrontColor)
	}

	if e.Label != "" {
		render.Text(screen, render.HUDFace(), e.Label, int(x)-20, int(y-r)-16, config.BossLabelColor)
	}
}

// drawFacingLine рисует указатель направления взгляда игрока.
func drawFacingLine(screen *ebiten.Image, p app.EntitySnapshot, camX, camY float64) {
	x := float32(p.X - camX)
	y := float32(p.Y - camY)
	tipX, tipY := x, y
	offset := float32(p.Radius) + 10

	switch p.Facing {
	case component.DirUp:
		tipY = y - offset
	case component.DirRight:
		tipX = x + offset
	case component.DirDown:
		tipY = y + offset
	case component.DirLeft:
		tipX = x - offset
	}

	render.Line(screen, x, y, tipX, tipY, 1, config.FacingLineColor)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	game := app.NewGame(0)
	appGame := &AppGame{
		game:           game,
		hud:            ui.NewHUD(render.HUDFace()),
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Top-Down Shooter")
	if err := ebiten.RunGame(appGame); err != nil {
		log.Fatal(err)
	}
}
