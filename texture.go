package sprig

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
)

// textureIDCounter is a plain counter (no atomic; textures are created on the
// main goroutine).
var textureIDCounter uint32

func nextTextureID() uint32 {
	textureIDCounter++
	return textureIDCounter
}

// Texture2D is a GPU image plus a stable renderer ID. Two textures are the same
// slot-table entry only if their RendererIDs match.
type Texture2D struct {
	image  *ebiten.Image
	width  int
	height int
	id     uint32
	path   string
}

// NewTexture2D allocates an empty texture of the given size.
func NewTexture2D(width, height int) *Texture2D {
	assertf(width > 0 && height > 0, "texture size %dx%d must be positive", width, height)
	return &Texture2D{
		image:  ebiten.NewImage(width, height),
		width:  width,
		height: height,
		id:     nextTextureID(),
	}
}

// NewTextureFromImage uploads a decoded image.
func NewTextureFromImage(img image.Image) *Texture2D {
	b := img.Bounds()
	return &Texture2D{
		image:  ebiten.NewImageFromImage(img),
		width:  b.Dx(),
		height: b.Dy(),
		id:     nextTextureID(),
	}
}

// LoadTexture reads and decodes a PNG or JPEG file.
func LoadTexture(path string) (*Texture2D, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("sprig: load texture: %w", err)
	}
	img, err := decodeImage(data)
	if err != nil {
		return nil, fmt.Errorf("sprig: load texture %s: %w", path, err)
	}
	t := NewTextureFromImage(img)
	t.path = path
	return t, nil
}

func decodeImage(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	return img, err
}

// newWhiteTexture creates the 1x1 white texture bound to slot 0.
func newWhiteTexture() *Texture2D {
	t := NewTexture2D(1, 1)
	t.image.Fill(ColorWhite.toRGBA())
	t.path = "<white>"
	return t
}

// Width returns the texture width in pixels.
func (t *Texture2D) Width() int { return t.width }

// Height returns the texture height in pixels.
func (t *Texture2D) Height() int { return t.height }

// RendererID returns the texture's unique identity.
func (t *Texture2D) RendererID() uint32 { return t.id }

// Image returns the backing ebiten image.
func (t *Texture2D) Image() *ebiten.Image { return t.image }

// Path returns the file the texture was loaded from, if any.
func (t *Texture2D) Path() string { return t.path }

// SetData replaces the texture contents with RGBA pixels. len(pixels) must be
// 4*Width*Height.
func (t *Texture2D) SetData(pixels []byte) {
	assertf(len(pixels) == 4*t.width*t.height, "SetData: got %d bytes, want %d", len(pixels), 4*t.width*t.height)
	t.image.WritePixels(pixels)
}

// Fill sets every pixel to c.
func (t *Texture2D) Fill(c color.Color) {
	t.image.Fill(c)
}

// Dispose releases the backing image. The texture must not be drawn afterwards.
func (t *Texture2D) Dispose() {
	if t.image != nil {
		t.image.Deallocate()
		t.image = nil
	}
}

// quadTexCoords are the UVs of a full texture in vertex order
// bottom-left, bottom-right, top-right, top-left. V grows upward.
var quadTexCoords = [4]mgl32.Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

// SubTexture2D is a UV sub-rectangle of a texture, typically one sprite of a
// sprite sheet.
type SubTexture2D struct {
	texture   *Texture2D
	texCoords [4]mgl32.Vec2
}

// NewSubTexture creates a sub-texture spanning the UV rectangle [min, max].
func NewSubTexture(texture *Texture2D, min, max mgl32.Vec2) *SubTexture2D {
	return &SubTexture2D{
		texture: texture,
		texCoords: [4]mgl32.Vec2{
			{min.X(), min.Y()},
			{max.X(), min.Y()},
			{max.X(), max.Y()},
			{min.X(), max.Y()},
		},
	}
}

// SubTextureFromCoords addresses a sprite sheet by cell. coords are cell
// indices counted from the bottom-left, cellSize is the cell size in pixels and
// spriteSize is the sprite extent in cells (1x1 for a single cell).
func SubTextureFromCoords(texture *Texture2D, coords, cellSize, spriteSize mgl32.Vec2) *SubTexture2D {
	w := float32(texture.Width())
	h := float32(texture.Height())
	min := mgl32.Vec2{
		coords.X() * cellSize.X() / w,
		coords.Y() * cellSize.Y() / h,
	}
	max := mgl32.Vec2{
		(coords.X() + spriteSize.X()) * cellSize.X() / w,
		(coords.Y() + spriteSize.Y()) * cellSize.Y() / h,
	}
	return NewSubTexture(texture, min, max)
}

// Texture returns the parent texture.
func (s *SubTexture2D) Texture() *Texture2D { return s.texture }

// TexCoords returns the UVs in vertex order.
func (s *SubTexture2D) TexCoords() [4]mgl32.Vec2 { return s.texCoords }
