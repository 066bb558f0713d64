package sprig

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
)

// QuadVertex is one corner of a batched quad. Positions are world space; the
// view-projection is applied when the batch is submitted.
type QuadVertex struct {
	Position     mgl32.Vec3
	Color        mgl32.Vec4
	TexCoord     mgl32.Vec2
	TexIndex     float32
	TilingFactor float32
}

// Batch is the geometry of one draw call.
type Batch struct {
	// Vertices holds 4 vertices per quad, in quad order.
	Vertices []QuadVertex
	// Indices is the shared quad index buffer; only the first IndexCount
	// entries are part of this batch.
	Indices    []uint32
	IndexCount int
	// Textures is the slot table. Textures[0] is the white texture.
	Textures       []*Texture2D
	ViewProjection mgl32.Mat4
}

// QuadCount returns the number of quads in the batch.
func (b *Batch) QuadCount() int {
	return b.IndexCount / 6
}

// RendererAPI is the GPU command layer the batch renderer submits to.
type RendererAPI interface {
	SetClearColor(c Color)
	Clear()
	DrawIndexed(b *Batch)
	TargetBinder
}

// TargetBinder redirects drawing to an offscreen image. Framebuffers bind
// through it.
type TargetBinder interface {
	BindTarget(img *ebiten.Image)
	UnbindTarget()
}

// EbitenAPI implements RendererAPI on top of ebiten's DrawTriangles32. The
// view-projection transform runs on the CPU: clip-space X/Y map to the target
// image with Y flipped, and UVs map to source pixels with V growing upward.
type EbitenAPI struct {
	// DepthSort orders quads inside each batch by ascending Z. Ebiten has no
	// depth buffer, so this stands in for depth testing.
	DepthSort bool
	// Blend is applied to every submitted batch.
	Blend BlendMode

	screen     *ebiten.Image
	targets    []*ebiten.Image
	clearColor Color

	verts   []ebiten.Vertex
	order   []int
	sortBuf []int
	depth   []float32

	submits int
}

// NewEbitenAPI creates an API with no screen; call SetScreen once per frame.
func NewEbitenAPI() *EbitenAPI {
	return &EbitenAPI{clearColor: Color{0, 0, 0, 1}}
}

// SetScreen sets the default render target (the frame's screen image).
func (a *EbitenAPI) SetScreen(screen *ebiten.Image) {
	a.screen = screen
}

// Target returns the image draws currently land on.
func (a *EbitenAPI) Target() *ebiten.Image {
	if n := len(a.targets); n > 0 {
		return a.targets[n-1]
	}
	return a.screen
}

// BindTarget pushes img as the current target.
func (a *EbitenAPI) BindTarget(img *ebiten.Image) {
	a.targets = append(a.targets, img)
}

// UnbindTarget pops the current target. Unbinding with nothing bound panics.
func (a *EbitenAPI) UnbindTarget() {
	assert(len(a.targets) > 0, "UnbindTarget without a bound target")
	a.targets[len(a.targets)-1] = nil
	a.targets = a.targets[:len(a.targets)-1]
}

// SetClearColor sets the color used by Clear.
func (a *EbitenAPI) SetClearColor(c Color) {
	a.clearColor = c
}

// Clear fills the current target with the clear color.
func (a *EbitenAPI) Clear() {
	if t := a.Target(); t != nil {
		t.Fill(a.clearColor.toRGBA())
	}
}

// Submits returns the number of DrawTriangles32 calls issued so far. A batch
// whose consecutive quads alternate textures costs more than one.
func (a *EbitenAPI) Submits() int {
	return a.submits
}

// DrawIndexed submits a batch. Consecutive quads sharing a slot and
// addressing mode are coalesced into one DrawTriangles32 call.
func (a *EbitenAPI) DrawIndexed(b *Batch) {
	target := a.Target()
	quads := b.QuadCount()
	if target == nil || quads == 0 {
		return
	}

	order := a.quadOrder(b.Vertices, quads)

	tb := target.Bounds()
	ox, oy := float32(tb.Min.X), float32(tb.Min.Y)
	tw, th := float32(tb.Dx()), float32(tb.Dy())

	a.verts = a.verts[:0]
	runSlot := -1
	runRepeat := false

	for _, q := range order {
		v := b.Vertices[q*4 : q*4+4]
		slot := int(v[0].TexIndex)
		repeat := v[0].TilingFactor != 1
		if runSlot >= 0 && (slot != runSlot || repeat != runRepeat) {
			a.submitRun(target, b, runSlot, runRepeat)
		}
		runSlot = slot
		runRepeat = repeat

		tex := b.Textures[slot]
		var sx, sy, sw, sh float32
		if tex != nil && tex.image != nil {
			sb := tex.image.Bounds()
			sx, sy = float32(sb.Min.X), float32(sb.Min.Y)
			sw, sh = float32(sb.Dx()), float32(sb.Dy())
		}

		for i := range v {
			clip := b.ViewProjection.Mul4x1(v[i].Position.Vec4(1))
			if w := clip.W(); w != 0 && w != 1 {
				clip = clip.Mul(1 / w)
			}
			tiling := v[i].TilingFactor
			u := v[i].TexCoord.X() * tiling
			vv := v[i].TexCoord.Y() * tiling
			a.verts = append(a.verts, ebiten.Vertex{
				DstX:   ox + (clip.X()+1)*0.5*tw,
				DstY:   oy + (1-clip.Y())*0.5*th,
				SrcX:   sx + u*sw,
				SrcY:   sy + (1-vv)*sh,
				ColorR: v[i].Color.X(),
				ColorG: v[i].Color.Y(),
				ColorB: v[i].Color.Z(),
				ColorA: v[i].Color.W(),
			})
		}
	}
	a.submitRun(target, b, runSlot, runRepeat)
}

// submitRun draws the accumulated vertices with the texture in slot.
func (a *EbitenAPI) submitRun(target *ebiten.Image, b *Batch, slot int, repeat bool) {
	if len(a.verts) == 0 {
		return
	}
	tex := b.Textures[slot]
	if tex == nil || tex.image == nil {
		a.verts = a.verts[:0]
		return
	}

	var op ebiten.DrawTrianglesOptions
	op.Blend = a.Blend.EbitenBlend()
	if repeat {
		op.Address = ebiten.AddressRepeat
	}

	// The index pattern is identical for every quad run starting at vertex 0,
	// so the head of the shared index buffer serves any run.
	n := len(a.verts) / 4 * 6
	target.DrawTriangles32(a.verts, b.Indices[:n], tex.image, &op)
	a.submits++
	a.verts = a.verts[:0]
}

// quadOrder returns the submission order of the batch's quads: identity, or
// ascending average Z when DepthSort is set.
func (a *EbitenAPI) quadOrder(verts []QuadVertex, quads int) []int {
	if cap(a.order) < quads {
		a.order = make([]int, quads)
	}
	a.order = a.order[:quads]
	for i := range a.order {
		a.order[i] = i
	}
	if !a.DepthSort || quads <= 1 {
		return a.order
	}

	if cap(a.depth) < quads {
		a.depth = make([]float32, quads)
	}
	a.depth = a.depth[:quads]
	for q := 0; q < quads; q++ {
		v := verts[q*4 : q*4+4]
		a.depth[q] = (v[0].Position.Z() + v[1].Position.Z() + v[2].Position.Z() + v[3].Position.Z()) / 4
	}
	a.mergeSort()
	return a.order
}

// --- Merge sort ---

// mergeSort sorts a.order by a.depth in place using a.sortBuf as scratch space.
// Bottom-up merge sort: stable, zero allocations after the scratch buffer
// reaches its high-water mark.
func (a *EbitenAPI) mergeSort() {
	n := len(a.order)
	if cap(a.sortBuf) < n {
		a.sortBuf = make([]int, n)
	}
	a.sortBuf = a.sortBuf[:n]

	src := a.order
	dst := a.sortBuf
	swapped := false

	for width := 1; width < n; width *= 2 {
		for i := 0; i < n; i += 2 * width {
			lo := i
			mid := min(lo+width, n)
			hi := min(lo+2*width, n)
			mergeRun(a.depth, src, dst, lo, mid, hi)
		}
		src, dst = dst, src
		swapped = !swapped
	}

	if swapped {
		copy(a.order, a.sortBuf)
	}
}

// mergeRun merges two sorted runs [lo, mid) and [mid, hi) from src into dst.
// Using <= keeps equal depths in submission order.
func mergeRun(depth []float32, src, dst []int, lo, mid, hi int) {
	i, j, k := lo, mid, lo
	for i < mid && j < hi {
		if depth[src[i]] <= depth[src[j]] {
			dst[k] = src[i]
			i++
		} else {
			dst[k] = src[j]
			j++
		}
		k++
	}
	for i < mid {
		dst[k] = src[i]
		i++
		k++
	}
	for j < hi {
		dst[k] = src[j]
		j++
		k++
	}
}
