package sprig

import (
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// maxFramebufferSize is the largest width or height Resize accepts.
const maxFramebufferSize = 8192

// FramebufferSpec describes the size of a framebuffer's color attachment.
type FramebufferSpec struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Framebuffer is an offscreen render target. While bound, everything the
// RendererAPI draws lands in its color attachment instead of the screen.
type Framebuffer struct {
	binder TargetBinder
	spec   FramebufferSpec
	color  *Texture2D
	bound  bool
}

// NewFramebuffer allocates a framebuffer that binds through binder.
func NewFramebuffer(binder TargetBinder, spec FramebufferSpec) *Framebuffer {
	assert(binder != nil, "NewFramebuffer: nil binder")
	assertf(spec.Width > 0 && spec.Height > 0, "framebuffer size %dx%d must be positive", spec.Width, spec.Height)
	fb := &Framebuffer{binder: binder, spec: spec}
	fb.invalidate()
	return fb
}

// invalidate (re)creates the color attachment at the current spec size.
func (fb *Framebuffer) invalidate() {
	if fb.color != nil {
		fb.color.Dispose()
	}
	fb.color = NewTexture2D(fb.spec.Width, fb.spec.Height)
}

// Bind redirects drawing to the framebuffer.
func (fb *Framebuffer) Bind() {
	assert(!fb.bound, "Framebuffer.Bind while already bound")
	fb.binder.BindTarget(fb.color.image)
	fb.bound = true
}

// Unbind restores the previous render target.
func (fb *Framebuffer) Unbind() {
	assert(fb.bound, "Framebuffer.Unbind while not bound")
	fb.binder.UnbindTarget()
	fb.bound = false
}

// Resize reallocates the color attachment. Zero, unchanged and oversized
// dimensions are ignored; the return value reports whether a new attachment
// was created.
func (fb *Framebuffer) Resize(width, height int) bool {
	if width <= 0 || height <= 0 {
		return false
	}
	if width > maxFramebufferSize || height > maxFramebufferSize {
		CoreLogger().Warn("framebuffer resize rejected",
			zap.Int("width", width), zap.Int("height", height))
		return false
	}
	if width == fb.spec.Width && height == fb.spec.Height {
		return false
	}
	assert(!fb.bound, "Framebuffer.Resize while bound")
	fb.spec.Width, fb.spec.Height = width, height
	fb.invalidate()
	return true
}

// Clear fills the color attachment with c.
func (fb *Framebuffer) Clear(c Color) {
	fb.color.image.Fill(c.toRGBA())
}

// ColorAttachmentRendererID identifies the current color attachment. It
// changes every time Resize allocates a new one.
func (fb *Framebuffer) ColorAttachmentRendererID() uint32 {
	return fb.color.id
}

// ColorAttachment returns the image drawing lands on.
func (fb *Framebuffer) ColorAttachment() *ebiten.Image {
	return fb.color.image
}

// ColorTexture returns the color attachment as a texture, so it can itself
// be drawn by the Renderer2D.
func (fb *Framebuffer) ColorTexture() *Texture2D {
	return fb.color
}

// Specification returns the current size.
func (fb *Framebuffer) Specification() FramebufferSpec {
	return fb.spec
}

// SavePNG writes the color attachment to path.
func (fb *Framebuffer) SavePNG(path string) error {
	return writePNG(path, captureImage(fb.color.image))
}

// Dispose releases the color attachment.
func (fb *Framebuffer) Dispose() {
	assert(!fb.bound, "Framebuffer.Dispose while bound")
	if fb.color != nil {
		fb.color.Dispose()
		fb.color = nil
	}
}
