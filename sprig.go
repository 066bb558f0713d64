package sprig

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float32
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// ColorTransparent is a fully transparent tint. Unlike the zero Color it is
// not replaced by white, so textured quads drawn with it vanish.
var ColorTransparent = Color{1, 1, 1, 0}

// Vec4 returns the color as an mgl32.Vec4 for vertex packing.
func (c Color) Vec4() mgl32.Vec4 {
	return mgl32.Vec4{c.R, c.G, c.B, c.A}
}

// IsZero reports whether every component is zero. A zero tint is treated as
// opaque white by the textured draw paths; any other color with A = 0, such
// as ColorTransparent, is kept as given.
func (c Color) IsZero() bool {
	return c == Color{}
}

// Radians converts degrees to radians. All rotation arguments in sprig are
// radians; UI-facing degree values must pass through this first.
func Radians(deg float32) float32 {
	return mgl32.DegToRad(deg)
}

// Rect is an axis-aligned rectangle in pixels with the origin at the top-left.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// BlendMode selects a compositing operation. Each maps to a specific ebiten.Blend value.
type BlendMode uint8

const (
	BlendNormal   BlendMode = iota // source-over (standard alpha blending)
	BlendAdd                       // additive / lighter
	BlendMultiply                  // multiply (source * destination; only darkens)
	BlendNone                      // opaque copy (skip blending)
)

// EbitenBlend returns the ebiten.Blend value corresponding to this BlendMode.
func (b BlendMode) EbitenBlend() ebiten.Blend {
	switch b {
	case BlendAdd:
		return ebiten.BlendLighter
	case BlendMultiply:
		return ebiten.Blend{
			BlendFactorSourceRGB:        ebiten.BlendFactorDestinationColor,
			BlendFactorSourceAlpha:      ebiten.BlendFactorDestinationAlpha,
			BlendFactorDestinationRGB:   ebiten.BlendFactorOneMinusSourceAlpha,
			BlendFactorDestinationAlpha: ebiten.BlendFactorOneMinusSourceAlpha,
			BlendOperationRGB:           ebiten.BlendOperationAdd,
			BlendOperationAlpha:         ebiten.BlendOperationAdd,
		}
	case BlendNone:
		return ebiten.BlendCopy
	default:
		return ebiten.BlendSourceOver
	}
}

// toRGBA converts a Color to a premultiplied colorRGBA for image.Fill.
func (c Color) toRGBA() colorRGBA {
	return colorRGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// colorRGBA implements the color.Color interface for image.Fill.
type colorRGBA struct {
	R, G, B, A uint8
}

func (c colorRGBA) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	a = uint32(c.A) * 0x101
	return
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// assert panics with a "sprig:" prefixed message when cond is false. Used for
// API misuse (begin/end mismatch, missing components): these are programmer
// errors, not runtime conditions.
func assert(cond bool, msg string) {
	if !cond {
		panic("sprig: " + msg)
	}
}

// assertf is assert with a format string.
func assertf(cond bool, format string, args ...any) {
	if !cond {
		panic("sprig: " + fmt.Sprintf(format, args...))
	}
}
