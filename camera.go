package sprig

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// OrthographicCamera is a 2D camera with a position and a Z rotation.
// The view-projection is cached and recomputed when the camera moves.
type OrthographicCamera struct {
	projection     mgl32.Mat4
	view           mgl32.Mat4
	viewProjection mgl32.Mat4

	position mgl32.Vec3
	rotation float32
}

// NewOrthographicCamera creates a camera whose visible area is
// [left, right] x [bottom, top] with depth range [-1, 1].
func NewOrthographicCamera(left, right, bottom, top float32) *OrthographicCamera {
	c := &OrthographicCamera{
		projection: mgl32.Ortho(left, right, bottom, top, -1, 1),
		view:       mgl32.Ident4(),
	}
	c.viewProjection = c.projection.Mul4(c.view)
	return c
}

// SetProjection replaces the visible area.
func (c *OrthographicCamera) SetProjection(left, right, bottom, top float32) {
	c.projection = mgl32.Ortho(left, right, bottom, top, -1, 1)
	c.viewProjection = c.projection.Mul4(c.view)
}

// Position returns the camera position.
func (c *OrthographicCamera) Position() mgl32.Vec3 { return c.position }

// SetPosition moves the camera.
func (c *OrthographicCamera) SetPosition(p mgl32.Vec3) {
	c.position = p
	c.recalculateView()
}

// Rotation returns the Z rotation in radians.
func (c *OrthographicCamera) Rotation() float32 { return c.rotation }

// SetRotation sets the Z rotation in radians.
func (c *OrthographicCamera) SetRotation(radians float32) {
	c.rotation = radians
	c.recalculateView()
}

// Projection returns the projection matrix.
func (c *OrthographicCamera) Projection() mgl32.Mat4 { return c.projection }

// View returns the view matrix (inverse of the camera transform).
func (c *OrthographicCamera) View() mgl32.Mat4 { return c.view }

// ViewProjection returns Projection * View.
func (c *OrthographicCamera) ViewProjection() mgl32.Mat4 { return c.viewProjection }

func (c *OrthographicCamera) recalculateView() {
	transform := mgl32.Translate3D(c.position.X(), c.position.Y(), c.position.Z()).
		Mul4(mgl32.HomogRotate3DZ(c.rotation))
	c.view = transform.Inv()
	c.viewProjection = c.projection.Mul4(c.view)
}

// --- Controller ---

const (
	minZoomLevel     = 0.25
	scrollZoomFactor = 0.25
)

// OrthographicCameraController drives an OrthographicCamera from keyboard and
// scroll input: WASD pans, Q/E rotates (when enabled), the wheel zooms.
type OrthographicCameraController struct {
	// TranslationSpeed is in world units per second at zoom level 1.
	TranslationSpeed float32
	// RotationSpeed is in radians per second.
	RotationSpeed float32
	// SmoothZoom animates wheel zoom over ZoomDuration seconds.
	SmoothZoom   bool
	ZoomDuration float32

	aspectRatio float32
	zoomLevel   float32
	rotation    bool

	camera   *OrthographicCamera
	position mgl32.Vec3
	angle    float32

	input      Input
	zoomAnim   *gween.Tween
	zoomTarget float32
}

// NewOrthographicCameraController creates a controller for a viewport of the
// given aspect ratio. input may be nil, in which case OnUpdate ignores keys.
func NewOrthographicCameraController(aspectRatio float32, rotation bool, input Input) *OrthographicCameraController {
	c := &OrthographicCameraController{
		TranslationSpeed: 5,
		RotationSpeed:    Radians(180),
		ZoomDuration:     0.15,
		aspectRatio:      aspectRatio,
		zoomLevel:        1,
		rotation:         rotation,
		input:            input,
	}
	c.camera = NewOrthographicCamera(-aspectRatio*c.zoomLevel, aspectRatio*c.zoomLevel, -c.zoomLevel, c.zoomLevel)
	return c
}

// Camera returns the controlled camera.
func (c *OrthographicCameraController) Camera() *OrthographicCamera { return c.camera }

// ZoomLevel returns the half-height of the visible area in world units.
func (c *OrthographicCameraController) ZoomLevel() float32 { return c.zoomLevel }

// SetZoomLevel sets the zoom immediately and cancels any zoom animation.
func (c *OrthographicCameraController) SetZoomLevel(level float32) {
	c.zoomAnim = nil
	c.setZoom(level)
}

// AspectRatio returns the current viewport aspect ratio.
func (c *OrthographicCameraController) AspectRatio() float32 { return c.aspectRatio }

// ZoomTo animates the zoom level to level over duration seconds.
func (c *OrthographicCameraController) ZoomTo(level, duration float32, fn ease.TweenFunc) {
	level = max(level, minZoomLevel)
	if duration <= 0 {
		c.SetZoomLevel(level)
		return
	}
	c.zoomAnim = gween.New(c.zoomLevel, level, duration, fn)
	c.zoomTarget = level
}

// OnUpdate applies held keys and advances the zoom animation.
func (c *OrthographicCameraController) OnUpdate(ts Timestep) {
	dt := ts.Seconds()

	if c.zoomAnim != nil {
		level, done := c.zoomAnim.Update(dt)
		c.setZoom(level)
		if done {
			c.zoomAnim = nil
		}
	}

	if c.input == nil {
		return
	}

	// Pan speed scales with zoom so the screen-space speed stays constant.
	speed := c.TranslationSpeed * c.zoomLevel * dt
	moved := false
	if c.input.IsKeyPressed(KeyA) {
		c.position[0] -= speed
		moved = true
	} else if c.input.IsKeyPressed(KeyD) {
		c.position[0] += speed
		moved = true
	}
	if c.input.IsKeyPressed(KeyW) {
		c.position[1] += speed
		moved = true
	} else if c.input.IsKeyPressed(KeyS) {
		c.position[1] -= speed
		moved = true
	}
	if moved {
		c.camera.SetPosition(c.position)
	}

	if c.rotation {
		turned := false
		if c.input.IsKeyPressed(KeyQ) {
			c.angle += c.RotationSpeed * dt
			turned = true
		}
		if c.input.IsKeyPressed(KeyE) {
			c.angle -= c.RotationSpeed * dt
			turned = true
		}
		if turned {
			c.camera.SetRotation(c.angle)
		}
	}
}

// OnEvent handles mouse-scroll and window-resize events.
func (c *OrthographicCameraController) OnEvent(e Event) {
	Dispatch(e, c.onMouseScrolled)
	Dispatch(e, c.onWindowResized)
}

// OnResize updates the aspect ratio for a viewport of width x height.
// Zero-area sizes are ignored.
func (c *OrthographicCameraController) OnResize(width, height float32) {
	if width <= 0 || height <= 0 {
		return
	}
	c.aspectRatio = width / height
	c.updateProjection()
}

func (c *OrthographicCameraController) onMouseScrolled(e *MouseScrolledEvent) bool {
	target := c.zoomLevel
	if c.zoomAnim != nil {
		// Accumulate onto the pending target rather than the animated value.
		target = c.zoomTarget
	}
	target = max(target-float32(e.YOffset)*scrollZoomFactor, minZoomLevel)
	if c.SmoothZoom {
		c.ZoomTo(target, c.ZoomDuration, ease.OutQuad)
	} else {
		c.SetZoomLevel(target)
	}
	return false
}

func (c *OrthographicCameraController) onWindowResized(e *WindowResizeEvent) bool {
	c.OnResize(float32(e.Width), float32(e.Height))
	return false
}

func (c *OrthographicCameraController) setZoom(level float32) {
	c.zoomLevel = max(level, minZoomLevel)
	c.updateProjection()
}

func (c *OrthographicCameraController) updateProjection() {
	c.camera.SetProjection(-c.aspectRatio*c.zoomLevel, c.aspectRatio*c.zoomLevel, -c.zoomLevel, c.zoomLevel)
}
