package sprig

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
)

const epsilon = 1e-5

func approxEqual(a, b, eps float32) bool {
	return math.Abs(float64(a-b)) < float64(eps)
}

func vec3ApproxEqual(a, b mgl32.Vec3) bool {
	return approxEqual(a[0], b[0], epsilon) &&
		approxEqual(a[1], b[1], epsilon) &&
		approxEqual(a[2], b[2], epsilon)
}

func matApproxEqual(a, b mgl32.Mat4) bool {
	for i := range a {
		if !approxEqual(a[i], b[i], epsilon) {
			return false
		}
	}
	return true
}

// recordingAPI captures a copy of every batch submitted to it.
type recordingAPI struct {
	batches    []recordedBatch
	clears     int
	clearColor Color
	bound      []*ebiten.Image
}

type recordedBatch struct {
	vertices       []QuadVertex
	textures       []*Texture2D
	quads          int
	viewProjection mgl32.Mat4
}

func (a *recordingAPI) SetClearColor(c Color) { a.clearColor = c }
func (a *recordingAPI) Clear()                { a.clears++ }

func (a *recordingAPI) BindTarget(img *ebiten.Image) { a.bound = append(a.bound, img) }

func (a *recordingAPI) UnbindTarget() { a.bound = a.bound[:len(a.bound)-1] }

func (a *recordingAPI) DrawIndexed(b *Batch) {
	rb := recordedBatch{
		vertices:       make([]QuadVertex, b.QuadCount()*4),
		textures:       make([]*Texture2D, len(b.Textures)),
		quads:          b.QuadCount(),
		viewProjection: b.ViewProjection,
	}
	copy(rb.vertices, b.Vertices)
	copy(rb.textures, b.Textures)
	a.batches = append(a.batches, rb)
}

func newTestRenderer(t *testing.T, cfg RendererConfig) (*Renderer2D, *recordingAPI) {
	t.Helper()
	api := &recordingAPI{}
	r := NewRenderer2D(api, cfg)
	r.Init()
	t.Cleanup(func() {
		if r.initialized {
			r.Shutdown()
		}
	})
	return r, api
}

func expectPanic(t *testing.T, substr string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic containing %q, got none", substr)
		}
		if msg := fmt.Sprint(r); !strings.Contains(msg, substr) {
			t.Errorf("panic = %q, want it to contain %q", msg, substr)
		}
	}()
	fn()
}
