package sprig

import "testing"

func TestFramebufferBindRedirectsTarget(t *testing.T) {
	api := NewEbitenAPI()
	fb := NewFramebuffer(api, FramebufferSpec{Width: 64, Height: 32})

	fb.Bind()
	if api.Target() != fb.ColorAttachment() {
		t.Error("bound framebuffer is not the current target")
	}
	fb.Unbind()
	if api.Target() != nil {
		t.Error("Unbind should restore the (nil) screen")
	}
}

func TestFramebufferBindMisuse(t *testing.T) {
	fb := NewFramebuffer(&recordingAPI{}, FramebufferSpec{Width: 8, Height: 8})
	expectPanic(t, "while not bound", fb.Unbind)
	fb.Bind()
	expectPanic(t, "already bound", fb.Bind)
	expectPanic(t, "Resize while bound", func() { fb.Resize(16, 16) })
	fb.Unbind()
}

func TestNewFramebufferRejectsBadInput(t *testing.T) {
	expectPanic(t, "nil binder", func() { NewFramebuffer(nil, FramebufferSpec{Width: 1, Height: 1}) })
	expectPanic(t, "must be positive", func() { NewFramebuffer(&recordingAPI{}, FramebufferSpec{Width: 0, Height: 4}) })
}

func TestFramebufferResize(t *testing.T) {
	fb := NewFramebuffer(&recordingAPI{}, FramebufferSpec{Width: 100, Height: 50})
	id := fb.ColorAttachmentRendererID()

	tests := []struct {
		name string
		w, h int
	}{
		{"zero width", 0, 50},
		{"zero height", 100, 0},
		{"negative", -5, 10},
		{"same size", 100, 50},
		{"too large", maxFramebufferSize + 1, 10},
	}
	for _, tt := range tests {
		if fb.Resize(tt.w, tt.h) {
			t.Errorf("%s: Resize(%d, %d) reallocated", tt.name, tt.w, tt.h)
		}
		if fb.ColorAttachmentRendererID() != id {
			t.Errorf("%s: attachment id changed", tt.name)
		}
	}

	if !fb.Resize(200, 80) {
		t.Fatal("Resize(200, 80) = false, want true")
	}
	if fb.ColorAttachmentRendererID() == id {
		t.Error("attachment id unchanged after a real resize")
	}
	spec := fb.Specification()
	if spec.Width != 200 || spec.Height != 80 {
		t.Errorf("spec = %+v, want 200x80", spec)
	}
	if tex := fb.ColorTexture(); tex.Width() != 200 || tex.Height() != 80 {
		t.Errorf("color texture = %dx%d, want 200x80", tex.Width(), tex.Height())
	}
}

func TestFramebufferDispose(t *testing.T) {
	fb := NewFramebuffer(&recordingAPI{}, FramebufferSpec{Width: 4, Height: 4})
	fb.Bind()
	expectPanic(t, "Dispose while bound", fb.Dispose)
	fb.Unbind()
	fb.Dispose()
	if fb.ColorTexture() != nil {
		t.Error("color attachment survived Dispose")
	}
}
