// internal/ui/hud.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"

	"go-topdown-shooter/internal/app"
	"go-topdown-shooter/internal/config"
	"go-topdown-shooter/pkg/render"
)

// HUD рисует интерфейс поверх игрового мира: полоску здоровья,
// счётчик комнат, предупреждения и экраны меню и конца игры.
// Всё рисуется из снимка кадра, в ядро HUD не заглядывает.
type HUD struct {
	face font.Face
}

// NewHUD создаёт HUD с указанным шрифтом.
func NewHUD(face font.Face) *HUD {
	return &HUD{face: face}
}

// Draw рисует игровой HUD.
func (h *HUD) Draw(screen *ebiten.Image, snap app.FrameSnapshot) {
	// Полоска здоровья игрока.
	barWidth := 200.0
	fill := barWidth * float64(snap.UI.Health) / float64(snap.UI.MaxHealth)
	render.FillRect(screen, 20, 20, float32(barWidth), 30, config.HealthBarBackColor)
	render.FillRect(screen, 20, 20, float32(fill), 30, config.HealthBarFrontColor)
	render.Text(screen, h.face, fmt.Sprintf("HEALTH: %d/%d", snap.UI.Health, snap.UI.MaxHealth), 30, 40, config.TextLightColor)

	render.Text(screen, h.face, fmt.Sprintf("ROOM: %d/%d", snap.UI.RoomIndex, snap.UI.RoomCount), config.ScreenWidth-130, 40, config.TextLightColor)
	render.Text(screen, h.face, fmt.Sprintf("KILLS: %d", snap.UI.EnemiesKilled), config.ScreenWidth-130, 58, config.TextGrayColor)

	if snap.UI.BossWarning {
		h.centered(screen, "WARNING: BOSS AHEAD!", 40, config.WarningColor)
	}
	if snap.UI.ExitBlocked {
		h.centered(screen, "Defeat all enemies to proceed!", config.ScreenHeight/2-60, config.WarningColor)
	}
}

// DrawMenu рисует главное меню.
func (h *HUD) DrawMenu(screen *ebiten.Image) {
	h.centered(screen, "TOP-DOWN SHOOTER", 200, config.TextLightColor)
	h.centered(screen, "Press ENTER to Start", 300, config.TextLightColor)
	h.centered(screen, "WASD to move, SPACE to shoot", 350, config.TextGrayColor)
}

// DrawGameOver рисует экран конца игры с текстом по исходу партии.
func (h *HUD) DrawGameOver(screen *ebiten.Image, snap app.FrameSnapshot) {
	if snap.Outcome == app.OutcomeDefeat {
		h.centered(screen, "GAME OVER - YOU DIED!", config.ScreenHeight/2-50, config.TextLightColor)
	} else {
		h.centered(screen, "YOU WIN! BOSS DEFEATED!", config.ScreenHeight/2-50, config.TextLightColor)
	}
	h.centered(screen, "Press ENTER to return to main menu", config.ScreenHeight/2+50, config.TextGrayColor)
	h.centered(screen, fmt.Sprintf("Kills: %d   Rooms cleared: %d   Deaths: %d",
		snap.UI.EnemiesKilled, snap.UI.RoomsCleared, snap.UI.Deaths), config.ScreenHeight/2+90, config.TextGrayColor)
}

func (h *HUD) centered(screen *ebiten.Image, s string, y int, clr color.Color) {
	x := (config.ScreenWidth - render.TextWidth(h.face, s)) / 2
	render.Text(screen, h.face, s, x, y, clr)
}
