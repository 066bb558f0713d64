package sprig

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNewTexture2DAssignsUniqueIDs(t *testing.T) {
	a := NewTexture2D(4, 4)
	b := NewTexture2D(4, 4)
	if a.RendererID() == b.RendererID() {
		t.Error("two textures share a RendererID")
	}
	if a.Width() != 4 || a.Height() != 4 {
		t.Errorf("size = %dx%d, want 4x4", a.Width(), a.Height())
	}
}

func TestNewTexture2DRejectsEmpty(t *testing.T) {
	expectPanic(t, "must be positive", func() { NewTexture2D(0, 4) })
}

func TestSetDataChecksLength(t *testing.T) {
	tex := NewTexture2D(2, 2)
	tex.SetData(make([]byte, 16))
	expectPanic(t, "SetData", func() { tex.SetData(make([]byte, 15)) })
}

func TestWhiteTexture(t *testing.T) {
	w := newWhiteTexture()
	if w.Width() != 1 || w.Height() != 1 {
		t.Errorf("white texture = %dx%d, want 1x1", w.Width(), w.Height())
	}
}

func TestDisposeIsIdempotent(t *testing.T) {
	tex := NewTexture2D(2, 2)
	tex.Dispose()
	tex.Dispose()
	if tex.Image() != nil {
		t.Error("image survived Dispose")
	}
}

func TestSubTextureFromCoords(t *testing.T) {
	sheet := NewTexture2D(64, 32)
	sub := SubTextureFromCoords(sheet, mgl32.Vec2{1, 0}, mgl32.Vec2{16, 16}, mgl32.Vec2{1, 1})

	want := [4]mgl32.Vec2{{0.25, 0}, {0.5, 0}, {0.5, 0.5}, {0.25, 0.5}}
	if sub.TexCoords() != want {
		t.Errorf("TexCoords = %v, want %v", sub.TexCoords(), want)
	}
	if sub.Texture() != sheet {
		t.Error("sub-texture lost its parent")
	}
}

func TestSubTextureFromCoordsMultiCell(t *testing.T) {
	sheet := NewTexture2D(64, 64)
	sub := SubTextureFromCoords(sheet, mgl32.Vec2{2, 1}, mgl32.Vec2{16, 16}, mgl32.Vec2{2, 3})

	want := [4]mgl32.Vec2{{0.5, 0.25}, {1, 0.25}, {1, 1}, {0.5, 1}}
	if sub.TexCoords() != want {
		t.Errorf("TexCoords = %v, want %v", sub.TexCoords(), want)
	}
}

func TestFullTextureCoords(t *testing.T) {
	sub := NewSubTexture(NewTexture2D(1, 1), mgl32.Vec2{0, 0}, mgl32.Vec2{1, 1})
	if sub.TexCoords() != quadTexCoords {
		t.Errorf("full-range sub-texture = %v, want %v", sub.TexCoords(), quadTexCoords)
	}
}

func TestColorHelpers(t *testing.T) {
	if !(Color{}).IsZero() {
		t.Error("zero Color should report IsZero")
	}
	if ColorWhite.IsZero() {
		t.Error("white should not report IsZero")
	}
	c := Color{R: 1, G: 0.5, B: 0, A: 0.5}.toRGBA()
	if c.A != 127 || c.R != 127 {
		t.Errorf("toRGBA = %+v, want premultiplied R=127 A=127", c)
	}
	if clamp01(-1) != 0 || clamp01(2) != 1 || clamp01(0.5) != 0.5 {
		t.Error("clamp01 out of range")
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 10, Width: 20, Height: 10}
	if !r.Contains(10, 10) || !r.Contains(30, 20) || !r.Contains(15, 15) {
		t.Error("Contains should include edges and interior")
	}
	if r.Contains(9, 15) || r.Contains(15, 21) {
		t.Error("Contains should exclude points outside")
	}
}
