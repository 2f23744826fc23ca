// pkg/render/draw.go
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// HUDFace возвращает встроенный шрифт для HUD. TTF с диска не грузим:
// у игры нет ассетов.
func HUDFace() font.Face {
	return basicfont.Face7x13
}

// FillCircle рисует залитый круг.
func FillCircle(dst *ebiten.Image, x, y, radius float32, clr color.Color) {
	vector.DrawFilledCircle(dst, x, y, radius, clr, true)
}

// StrokeCircle рисует контур круга.
func StrokeCircle(dst *ebiten.Image, x, y, radius, width float32, clr color.Color) {
	vector.StrokeCircle(dst, x, y, radius, width, clr, true)
}

// FillRect рисует залитый прямоугольник.
func FillRect(dst *ebiten.Image, x, y, w, h float32, clr color.Color) {
	vector.DrawFilledRect(dst, x, y, w, h, clr, false)
}

// StrokeRect рисует контур прямоугольника.
func StrokeRect(dst *ebiten.Image, x, y, w, h, width float32, clr color.Color) {
	vector.StrokeRect(dst, x, y, w, h, width, clr, false)
}

// Line рисует отрезок.
func Line(dst *ebiten.Image, x1, y1, x2, y2, width float32, clr color.Color) {
	vector.StrokeLine(dst, x1, y1, x2, y2, width, clr, true)
}

// Text выводит строку базовой линией в (x, y).
func Text(dst *ebiten.Image, face font.Face, s string, x, y int, clr color.Color) {
	text.Draw(dst, s, face, x, y, clr)
}

// TextWidth возвращает ширину строки в пикселях для центрирования.
func TextWidth(face font.Face, s string) int {
	return font.MeasureString(face, s).Ceil()
}
