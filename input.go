package sprig

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// Key identifies a keyboard key.
type Key = ebiten.Key

// Keys used by the built-in camera controller and programs.
const (
	KeyA      = ebiten.KeyA
	KeyC      = ebiten.KeyC
	KeyD      = ebiten.KeyD
	KeyE      = ebiten.KeyE
	KeyQ      = ebiten.KeyQ
	KeyS      = ebiten.KeyS
	KeyW      = ebiten.KeyW
	KeyLeft   = ebiten.KeyArrowLeft
	KeyRight  = ebiten.KeyArrowRight
	KeyUp     = ebiten.KeyArrowUp
	KeyDown   = ebiten.KeyArrowDown
	KeySpace  = ebiten.KeySpace
	KeyEscape = ebiten.KeyEscape
	KeyTab    = ebiten.KeyTab
	KeyF1     = ebiten.KeyF1
	KeyF11    = ebiten.KeyF11
	KeyF12    = ebiten.KeyF12
)

// MouseButton identifies a mouse button.
type MouseButton = ebiten.MouseButton

const (
	MouseButtonLeft   = ebiten.MouseButtonLeft
	MouseButtonRight  = ebiten.MouseButtonRight
	MouseButtonMiddle = ebiten.MouseButtonMiddle
)

// KeyModifiers is a bitmask of held modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
)

// Input is polled by layers and native scripts each frame.
type Input interface {
	IsKeyPressed(k Key) bool
	IsMouseButtonPressed(b MouseButton) bool
	// MousePosition returns the cursor position in window pixels.
	MousePosition() (x, y float32)
}

// EbitenInput reads the live keyboard and mouse state from ebiten.
type EbitenInput struct{}

func (EbitenInput) IsKeyPressed(k Key) bool { return ebiten.IsKeyPressed(k) }

func (EbitenInput) IsMouseButtonPressed(b MouseButton) bool { return ebiten.IsMouseButtonPressed(b) }

func (EbitenInput) MousePosition() (float32, float32) {
	x, y := ebiten.CursorPosition()
	return float32(x), float32(y)
}

// Modifiers reads the current keyboard modifier state.
func (in EbitenInput) Modifiers() KeyModifiers {
	var mods KeyModifiers
	if in.IsKeyPressed(ebiten.KeyShift) || in.IsKeyPressed(ebiten.KeyShiftLeft) || in.IsKeyPressed(ebiten.KeyShiftRight) {
		mods |= ModShift
	}
	if in.IsKeyPressed(ebiten.KeyControl) || in.IsKeyPressed(ebiten.KeyControlLeft) || in.IsKeyPressed(ebiten.KeyControlRight) {
		mods |= ModCtrl
	}
	if in.IsKeyPressed(ebiten.KeyAlt) || in.IsKeyPressed(ebiten.KeyAltLeft) || in.IsKeyPressed(ebiten.KeyAltRight) {
		mods |= ModAlt
	}
	if in.IsKeyPressed(ebiten.KeyMeta) || in.IsKeyPressed(ebiten.KeyMetaLeft) || in.IsKeyPressed(ebiten.KeyMetaRight) {
		mods |= ModMeta
	}
	return mods
}

// ParseKey looks a key up by its ebiten name ("W", "Space", "ArrowLeft").
// Matching is case-insensitive.
func ParseKey(name string) (Key, bool) {
	if name == "" {
		return 0, false
	}
	for k := Key(0); k <= ebiten.KeyMax; k++ {
		if strings.EqualFold(k.String(), name) {
			return k, true
		}
	}
	return 0, false
}
