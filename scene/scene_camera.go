package scene

import "github.com/go-gl/mathgl/mgl32"

const (
	defaultOrthographicSize = 10
	defaultOrthographicNear = -1
	defaultOrthographicFar  = 1
)

// SceneCamera is an orthographic projection sized by its vertical extent in
// world units. The camera's position comes from its entity's transform.
type SceneCamera struct {
	orthographicSize float32
	orthographicNear float32
	orthographicFar  float32
	aspectRatio      float32

	projection mgl32.Mat4
}

// NewSceneCamera returns a camera 10 units tall with depth range [-1, 1] and
// a square aspect ratio.
func NewSceneCamera() SceneCamera {
	c := SceneCamera{
		orthographicSize: defaultOrthographicSize,
		orthographicNear: defaultOrthographicNear,
		orthographicFar:  defaultOrthographicFar,
		aspectRatio:      1,
	}
	c.recalculateProjection()
	return c
}

// SetOrthographic sets the vertical extent and depth range.
func (c *SceneCamera) SetOrthographic(size, near, far float32) {
	c.orthographicSize = size
	c.orthographicNear = near
	c.orthographicFar = far
	c.recalculateProjection()
}

// SetViewportSize matches the aspect ratio to a width x height viewport.
// A zero height is ignored.
func (c *SceneCamera) SetViewportSize(width, height uint32) {
	if height == 0 {
		return
	}
	c.aspectRatio = float32(width) / float32(height)
	c.recalculateProjection()
}

// OrthographicSize returns the vertical extent in world units.
func (c *SceneCamera) OrthographicSize() float32 { return c.orthographicSize }

// SetOrthographicSize changes the vertical extent.
func (c *SceneCamera) SetOrthographicSize(size float32) {
	c.orthographicSize = size
	c.recalculateProjection()
}

// AspectRatio returns width / height.
func (c *SceneCamera) AspectRatio() float32 { return c.aspectRatio }

// Projection returns the projection matrix.
func (c *SceneCamera) Projection() mgl32.Mat4 { return c.projection }

func (c *SceneCamera) recalculateProjection() {
	halfH := c.orthographicSize * 0.5
	halfW := halfH * c.aspectRatio
	c.projection = mgl32.Ortho(-halfW, halfW, -halfH, halfH, c.orthographicNear, c.orthographicFar)
}
