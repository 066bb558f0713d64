package sprig

import (
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// quadPositions are the corners of the unit quad centred on the origin, in
// vertex order bottom-left, bottom-right, top-right, top-left.
var quadPositions = [4]mgl32.Vec4{
	{-0.5, -0.5, 0, 1},
	{0.5, -0.5, 0, 1},
	{0.5, 0.5, 0, 1},
	{-0.5, 0.5, 0, 1},
}

// whiteTextureSlot is the slot reserved for the white texture.
const whiteTextureSlot = 0

// Statistics counts the work done since the last ResetStats.
type Statistics struct {
	DrawCalls uint32
	QuadCount uint32
}

// TotalVertexCount returns the number of vertices submitted.
func (s Statistics) TotalVertexCount() uint32 { return s.QuadCount * 4 }

// TotalIndexCount returns the number of indices submitted.
func (s Statistics) TotalIndexCount() uint32 { return s.QuadCount * 6 }

// Camera is anything that supplies a projection matrix.
type Camera interface {
	Projection() mgl32.Mat4
}

// Quad is a single draw request. Exactly one of Texture and SubTexture may be
// set; with neither, the quad is drawn with the white texture and Color.
type Quad struct {
	Position mgl32.Vec3
	Size     mgl32.Vec2
	// Rotation around Z in radians.
	Rotation float32
	Color    Color

	Texture    *Texture2D
	SubTexture *SubTexture2D
	// Tiling repeats the texture across the quad. Zero means 1.
	Tiling float32
	// Tint multiplies textured quads. The zero value means opaque white.
	Tint Color
}

// Renderer2D accumulates quads into batches and submits each batch to a
// RendererAPI as one draw call. A batch ends when its index buffer or its
// texture slot table is full, or at EndScene.
//
// Renderer2D is not safe for concurrent use and BeginScene/EndScene pairs
// must not nest.
type Renderer2D struct {
	api RendererAPI
	cfg RendererConfig

	maxVertices int
	maxIndices  int

	initialized bool
	sceneOpen   bool

	vertices   []QuadVertex
	indices    []uint32
	indexCount int

	whiteTexture *Texture2D
	slots        []*Texture2D

	viewProjection mgl32.Mat4
	stats          Statistics
	batch          Batch
}

// NewRenderer2D creates a renderer that submits to api. Call Init before use.
func NewRenderer2D(api RendererAPI, cfg RendererConfig) *Renderer2D {
	assert(api != nil, "NewRenderer2D: nil RendererAPI")
	if err := cfg.Validate(); err != nil {
		panic(err)
	}
	return &Renderer2D{
		api:         api,
		cfg:         cfg,
		maxVertices: cfg.MaxQuads * 4,
		maxIndices:  cfg.MaxQuads * 6,
	}
}

// Init allocates the vertex buffer, index buffer and white texture.
func (r *Renderer2D) Init() {
	assert(!r.initialized, "Renderer2D.Init called twice")

	r.vertices = make([]QuadVertex, 0, r.maxVertices)

	r.indices = make([]uint32, r.maxIndices)
	var offset uint32
	for i := 0; i < r.maxIndices; i += 6 {
		r.indices[i+0] = offset + 0
		r.indices[i+1] = offset + 1
		r.indices[i+2] = offset + 2
		r.indices[i+3] = offset + 2
		r.indices[i+4] = offset + 3
		r.indices[i+5] = offset + 0
		offset += 4
	}

	r.whiteTexture = newWhiteTexture()
	r.slots = make([]*Texture2D, 1, r.cfg.MaxTextureSlots)
	r.slots[whiteTextureSlot] = r.whiteTexture

	r.initialized = true
	CoreLogger().Info("renderer2d initialized",
		zap.Int("max_quads", r.cfg.MaxQuads),
		zap.Int("max_texture_slots", r.cfg.MaxTextureSlots))
}

// Shutdown releases everything Init allocated.
func (r *Renderer2D) Shutdown() {
	assert(r.initialized, "Renderer2D.Shutdown before Init")
	assert(!r.sceneOpen, "Renderer2D.Shutdown inside BeginScene/EndScene")

	r.whiteTexture.Dispose()
	r.whiteTexture = nil
	r.vertices = nil
	r.indices = nil
	r.slots = nil
	r.batch = Batch{}
	r.initialized = false
	CoreLogger().Info("renderer2d shut down")
}

// WhiteTexture returns the texture bound to slot 0.
func (r *Renderer2D) WhiteTexture() *Texture2D {
	return r.whiteTexture
}

// Config returns the limits the renderer was created with.
func (r *Renderer2D) Config() RendererConfig {
	return r.cfg
}

// BeginScene opens a scene viewed by camera placed at transform.
func (r *Renderer2D) BeginScene(camera Camera, transform mgl32.Mat4) {
	r.beginScene(camera.Projection().Mul4(transform.Inv()))
}

// BeginSceneOrtho opens a scene using the camera's cached view-projection.
func (r *Renderer2D) BeginSceneOrtho(camera *OrthographicCamera) {
	r.beginScene(camera.ViewProjection())
}

func (r *Renderer2D) beginScene(viewProjection mgl32.Mat4) {
	assert(r.initialized, "BeginScene before Init")
	assert(!r.sceneOpen, "BeginScene called while a scene is already open")
	r.sceneOpen = true
	r.viewProjection = viewProjection
	r.startBatch()
}

// EndScene submits what is left of the current batch and closes the scene.
func (r *Renderer2D) EndScene() {
	assert(r.sceneOpen, "EndScene without BeginScene")
	r.Flush()
	r.sceneOpen = false
}

// Flush submits the current batch, if non-empty, as one draw call and starts
// an empty one. Quads drawn after a Flush go into the next draw call only.
func (r *Renderer2D) Flush() {
	assert(r.sceneOpen, "Flush outside BeginScene/EndScene")
	if r.indexCount == 0 {
		return
	}

	r.batch = Batch{
		Vertices:       r.vertices,
		Indices:        r.indices,
		IndexCount:     r.indexCount,
		Textures:       r.slots,
		ViewProjection: r.viewProjection,
	}
	r.api.DrawIndexed(&r.batch)
	r.stats.DrawCalls++
	r.startBatch()
}

// startBatch rewinds the vertex cursor and leaves only the white texture bound.
func (r *Renderer2D) startBatch() {
	r.vertices = r.vertices[:0]
	r.indexCount = 0
	clear(r.slots[1:])
	r.slots = r.slots[:1]
}

// --- Draw entry points ---

// DrawQuad submits a quad request.
func (r *Renderer2D) DrawQuad(q Quad) {
	transform := QuadTransform(q.Position, q.Size, q.Rotation)
	switch {
	case q.SubTexture != nil:
		r.submit(transform, tintOrWhite(q.Tint), q.SubTexture.texture, q.SubTexture.texCoords, q.Tiling)
	case q.Texture != nil:
		r.submit(transform, tintOrWhite(q.Tint), q.Texture, quadTexCoords, q.Tiling)
	default:
		r.submit(transform, q.Color, nil, quadTexCoords, 1)
	}
}

// DrawColorQuad draws a flat colored quad. rotation is in radians.
func (r *Renderer2D) DrawColorQuad(position mgl32.Vec3, size mgl32.Vec2, rotation float32, color Color) {
	r.submit(QuadTransform(position, size, rotation), color, nil, quadTexCoords, 1)
}

// DrawTexturedQuad draws a textured quad. rotation is in radians.
func (r *Renderer2D) DrawTexturedQuad(position mgl32.Vec3, size mgl32.Vec2, rotation float32, texture *Texture2D, tiling float32, tint Color) {
	r.submit(QuadTransform(position, size, rotation), tintOrWhite(tint), texture, quadTexCoords, tiling)
}

// DrawSubTexturedQuad draws a region of a sprite sheet. rotation is in radians.
func (r *Renderer2D) DrawSubTexturedQuad(position mgl32.Vec3, size mgl32.Vec2, rotation float32, sub *SubTexture2D, tiling float32, tint Color) {
	r.submit(QuadTransform(position, size, rotation), tintOrWhite(tint), sub.texture, sub.texCoords, tiling)
}

// DrawQuadTransform draws a flat colored unit quad transformed by transform.
func (r *Renderer2D) DrawQuadTransform(transform mgl32.Mat4, color Color) {
	r.submit(transform, color, nil, quadTexCoords, 1)
}

// DrawTexturedQuadTransform draws a textured unit quad transformed by transform.
func (r *Renderer2D) DrawTexturedQuadTransform(transform mgl32.Mat4, texture *Texture2D, tiling float32, tint Color) {
	r.submit(transform, tintOrWhite(tint), texture, quadTexCoords, tiling)
}

// DrawSubTexturedQuadTransform draws a sprite sheet region transformed by transform.
func (r *Renderer2D) DrawSubTexturedQuadTransform(transform mgl32.Mat4, sub *SubTexture2D, tiling float32, tint Color) {
	r.submit(transform, tintOrWhite(tint), sub.texture, sub.texCoords, tiling)
}

func tintOrWhite(c Color) Color {
	if c.IsZero() {
		return ColorWhite
	}
	return c
}

// submit appends one quad, flushing first when the batch cannot take it.
// A nil texture selects the white texture.
func (r *Renderer2D) submit(transform mgl32.Mat4, color Color, texture *Texture2D, texCoords [4]mgl32.Vec2, tiling float32) {
	assert(r.sceneOpen, "draw call outside BeginScene/EndScene")

	if r.indexCount+6 > r.maxIndices {
		r.Flush()
	}

	slot := float32(whiteTextureSlot)
	if texture != nil && texture != r.whiteTexture {
		idx := r.slotOf(texture)
		if idx < 0 {
			if len(r.slots) >= r.cfg.MaxTextureSlots {
				r.Flush()
			}
			idx = len(r.slots)
			r.slots = append(r.slots, texture)
		}
		slot = float32(idx)
	}

	if tiling == 0 {
		tiling = 1
	}
	c := color.Vec4()
	for i := range quadPositions {
		r.vertices = append(r.vertices, QuadVertex{
			Position:     transform.Mul4x1(quadPositions[i]).Vec3(),
			Color:        c,
			TexCoord:     texCoords[i],
			TexIndex:     slot,
			TilingFactor: tiling,
		})
	}
	r.indexCount += 6
	r.stats.QuadCount++
}

// slotOf returns the slot holding texture, or -1. Slot 0 is never scanned;
// it always holds the white texture.
func (r *Renderer2D) slotOf(texture *Texture2D) int {
	for i := 1; i < len(r.slots); i++ {
		if r.slots[i].id == texture.id {
			return i
		}
	}
	return -1
}

// --- Stats ---

// ResetStats zeroes the statistics. Call once per frame.
func (r *Renderer2D) ResetStats() {
	r.stats = Statistics{}
}

// Stats returns the statistics accumulated since the last ResetStats.
func (r *Renderer2D) Stats() Statistics {
	return r.stats
}

// LogStats writes the current statistics at debug level.
func (r *Renderer2D) LogStats() {
	s := r.stats
	CoreLogger().Debug("renderer2d stats",
		zap.Uint32("draw_calls", s.DrawCalls),
		zap.Uint32("quads", s.QuadCount),
		zap.Uint32("vertices", s.TotalVertexCount()),
		zap.Uint32("indices", s.TotalIndexCount()))
}
