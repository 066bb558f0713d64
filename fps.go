package sprig

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// drawFPS prints FPS, TPS and this frame's renderer statistics in the
// top-left corner of screen. The text is refreshed every ~0.5 seconds.
func (app *Application) drawFPS(screen *ebiten.Image) {
	if app.fpsImage == nil {
		// 160x64 is enough for four lines of the debug font.
		app.fpsImage = ebiten.NewImage(160, 64)
	}
	app.fpsElapsed += 1 / ebiten.ActualFPS()
	if app.fpsElapsed >= 0.5 || !app.fpsDrawn {
		app.fpsElapsed = 0
		app.fpsDrawn = true
		app.fpsImage.Clear()
		// Semi-transparent background for readability
		app.fpsImage.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(app.fpsImage, FormatStats(app.renderer.Stats()))
	}
	screen.DrawImage(app.fpsImage, nil)
}

// FormatStats renders the frame rate and renderer statistics as text.
func FormatStats(s Statistics) string {
	return fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nDraw calls: %d\nQuads: %d",
		ebiten.ActualFPS(), ebiten.ActualTPS(), s.DrawCalls, s.QuadCount)
}
