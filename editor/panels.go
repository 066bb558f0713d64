package editor

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/phanxgames/sprig"
	"github.com/phanxgames/sprig/scene"
)

const (
	menuBarHeight = 18
	settingsWidth = 240
	panelPadding  = 6
)

var (
	panelBackground = color.RGBA{0x24, 0x24, 0x28, 0xff}
	menuBackground  = color.RGBA{0x18, 0x18, 0x1c, 0xff}
	borderFocused   = color.RGBA{0x50, 0x90, 0xe0, 0xff}
)

// layoutViewport returns the viewport panel rectangle for a window of
// width x height. Fullscreen and a closed dockspace give the viewport the
// whole window.
func (l *Layer) layoutViewport(width, height int) image.Rectangle {
	if !l.dockspaceOpen || l.fullscreen {
		return image.Rect(0, 0, width, height)
	}
	r := image.Rect(0, menuBarHeight, width, height)
	if l.showSettings {
		r.Max.X = max(r.Min.X, width-settingsWidth)
	}
	if r.Dx() <= 0 || r.Dy() <= 0 {
		return image.Rectangle{}
	}
	return r
}

// OnUIRender draws the menu bar, the viewport panel and the settings panel.
func (l *Layer) OnUIRender(screen *ebiten.Image) {
	l.updateViewportFocus()

	if l.dockspaceOpen && !l.fullscreen {
		l.drawMenuBar(screen)
	}
	l.drawViewport(screen)
	if l.dockspaceOpen && !l.fullscreen && l.showSettings {
		w, h := l.host.Size()
		l.drawSettings(screen, image.Rect(w-settingsWidth, menuBarHeight, w, h))
	}
}

// updateViewportFocus tracks hover from the cursor and focus from clicks,
// and stops mouse events reaching the layers while the cursor is elsewhere.
func (l *Layer) updateViewportFocus() {
	in := l.host.Input()
	x, y := in.MousePosition()
	l.viewportHovered = image.Pt(int(x), int(y)).In(l.viewportBounds)
	if in.IsMouseButtonPressed(sprig.MouseButtonLeft) {
		l.viewportFocused = l.viewportHovered
	}
	l.host.BlockEvents(!l.viewportHovered)
}

func (l *Layer) drawMenuBar(screen *ebiten.Image) {
	w, _ := l.host.Size()
	fillRect(screen, image.Rect(0, 0, w, menuBarHeight), menuBackground)
	mode := "Play"
	if l.editMode {
		mode = "Edit"
	}
	ebitenutil.DebugPrintAt(screen, "File: Exit (Esc)   View: Settings (F1)  Fullscreen (F11)   Mode: "+mode+" (C)", panelPadding, 1)
}

func (l *Layer) drawViewport(screen *ebiten.Image) {
	b := l.viewportBounds
	if b.Empty() {
		return
	}
	img := l.framebuffer.ColorAttachment()
	ib := img.Bounds()

	var op ebiten.DrawImageOptions
	op.GeoM.Scale(float64(b.Dx())/float64(ib.Dx()), float64(b.Dy())/float64(ib.Dy()))
	op.GeoM.Translate(float64(b.Min.X), float64(b.Min.Y))
	screen.DrawImage(img, &op)

	if l.viewportFocused && l.dockspaceOpen && !l.fullscreen {
		strokeRect(screen, b, borderFocused)
	}
}

func (l *Layer) drawSettings(screen *ebiten.Image, r image.Rectangle) {
	fillRect(screen, r, panelBackground)
	ebitenutil.DebugPrintAt(screen, l.settingsText(), r.Min.X+panelPadding, r.Min.Y+panelPadding)
}

// settingsText renders the settings panel: renderer statistics, the scene
// hierarchy and the selected camera.
func (l *Layer) settingsText() string {
	var b strings.Builder
	stats := l.host.Renderer().Stats()
	b.WriteString("Renderer2D Stats:\n")
	fmt.Fprintf(&b, "  Draw Calls: %d\n", stats.DrawCalls)
	fmt.Fprintf(&b, "  Quads: %d\n", stats.QuadCount)
	fmt.Fprintf(&b, "  Vertices: %d\n", stats.TotalVertexCount())
	fmt.Fprintf(&b, "  Indices: %d\n\n", stats.TotalIndexCount())

	spec := l.framebuffer.Specification()
	fmt.Fprintf(&b, "Viewport: %dx%d\n", spec.Width, spec.Height)
	fmt.Fprintf(&b, "Focused: %t  Hovered: %t\n\n", l.viewportFocused, l.viewportHovered)

	b.WriteString("Scene:\n")
	for _, e := range l.activeScene.Entities() {
		marker := " "
		if cc := scene.TryGetComponent(e, scene.Camera); cc != nil && cc.Primary {
			marker = "*"
		}
		fmt.Fprintf(&b, " %s %s\n", marker, e.Name())
	}

	if sr := scene.TryGetComponent(l.squareEntity, scene.SpriteRenderer); sr != nil {
		c := sr.Color
		fmt.Fprintf(&b, "\nSquare Color: %.2f %.2f %.2f %.2f\n", c.R, c.G, c.B, c.A)
	}
	camera := "Camera A"
	if !l.primaryCamera {
		camera = "Camera B"
	}
	fmt.Fprintf(&b, "Primary: %s (Tab)\n", camera)
	t := scene.GetComponent(l.cameraEntity, scene.Transform).Translation
	fmt.Fprintf(&b, "Camera A: %.2f %.2f\n", t.X(), t.Y())
	if l.editMode {
		fmt.Fprintf(&b, "Editor zoom: %.2f\n", l.cameraController.ZoomLevel())
	}
	return b.String()
}

func fillRect(dst *ebiten.Image, r image.Rectangle, c color.Color) {
	r = r.Intersect(dst.Bounds())
	if r.Empty() {
		return
	}
	dst.SubImage(r).(*ebiten.Image).Fill(c)
}

func strokeRect(dst *ebiten.Image, r image.Rectangle, c color.Color) {
	fillRect(dst, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1), c)
	fillRect(dst, image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y), c)
	fillRect(dst, image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y), c)
	fillRect(dst, image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y), c)
}
