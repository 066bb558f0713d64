package sprig

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/tanema/gween/ease"
)

func TestOrthographicCameraProjection(t *testing.T) {
	cam := NewOrthographicCamera(-2, 2, -1, 1)
	if !matApproxEqual(cam.Projection(), mgl32.Ortho(-2, 2, -1, 1, -1, 1)) {
		t.Error("projection does not match Ortho(-2, 2, -1, 1, -1, 1)")
	}
	if !matApproxEqual(cam.View(), mgl32.Ident4()) {
		t.Error("new camera view should be identity")
	}
	if !matApproxEqual(cam.ViewProjection(), cam.Projection()) {
		t.Error("view-projection should equal projection at the origin")
	}
}

func TestOrthographicCameraPositionMapsToCenter(t *testing.T) {
	cam := NewOrthographicCamera(-2, 2, -1, 1)
	cam.SetPosition(mgl32.Vec3{5, -3, 0})

	got := TransformPoint(cam.ViewProjection(), mgl32.Vec3{5, -3, 0})
	if !vec3ApproxEqual(got, mgl32.Vec3{}) {
		t.Errorf("camera position projects to %v, want origin", got)
	}
	edge := TransformPoint(cam.ViewProjection(), mgl32.Vec3{7, -3, 0})
	if !approxEqual(edge.X(), 1, epsilon) {
		t.Errorf("right edge projects to x=%v, want 1", edge.X())
	}
}

func TestOrthographicCameraRotation(t *testing.T) {
	cam := NewOrthographicCamera(-1, 1, -1, 1)
	cam.SetRotation(math.Pi / 2)
	if cam.Rotation() != math.Pi/2 {
		t.Errorf("Rotation = %v", cam.Rotation())
	}
	// The view undoes the camera's quarter turn, so world +Y lands on clip +X.
	got := TransformPoint(cam.ViewProjection(), mgl32.Vec3{0, 1, 0})
	if !vec3ApproxEqual(got, mgl32.Vec3{1, 0, 0}) {
		t.Errorf("(0,1) projects to %v, want (1,0)", got)
	}
}

func TestOrthographicCameraSetProjectionKeepsView(t *testing.T) {
	cam := NewOrthographicCamera(-1, 1, -1, 1)
	cam.SetPosition(mgl32.Vec3{1, 0, 0})
	cam.SetProjection(-4, 4, -2, 2)

	want := mgl32.Ortho(-4, 4, -2, 2, -1, 1).Mul4(mgl32.Translate3D(-1, 0, 0))
	if !matApproxEqual(cam.ViewProjection(), want) {
		t.Error("SetProjection lost the view transform")
	}
}

func TestControllerDefaults(t *testing.T) {
	c := NewOrthographicCameraController(16.0/9.0, false, nil)
	if c.ZoomLevel() != 1 {
		t.Errorf("ZoomLevel = %v, want 1", c.ZoomLevel())
	}
	a := float32(16.0 / 9.0)
	if !matApproxEqual(c.Camera().Projection(), mgl32.Ortho(-a, a, -1, 1, -1, 1)) {
		t.Error("default projection should span the aspect ratio at zoom 1")
	}
}

func TestControllerScrollZoom(t *testing.T) {
	c := NewOrthographicCameraController(1, false, nil)
	c.OnEvent(&MouseScrolledEvent{YOffset: 1})
	if !approxEqual(c.ZoomLevel(), 0.75, epsilon) {
		t.Errorf("ZoomLevel after scroll up = %v, want 0.75", c.ZoomLevel())
	}
	c.OnEvent(&MouseScrolledEvent{YOffset: -2})
	if !approxEqual(c.ZoomLevel(), 1.25, epsilon) {
		t.Errorf("ZoomLevel after scroll down = %v, want 1.25", c.ZoomLevel())
	}
	if !matApproxEqual(c.Camera().Projection(), mgl32.Ortho(-1.25, 1.25, -1.25, 1.25, -1, 1)) {
		t.Error("projection not updated after zoom")
	}
}

func TestControllerZoomClamped(t *testing.T) {
	c := NewOrthographicCameraController(1, false, nil)
	c.OnEvent(&MouseScrolledEvent{YOffset: 100})
	if c.ZoomLevel() != minZoomLevel {
		t.Errorf("ZoomLevel = %v, want %v", c.ZoomLevel(), minZoomLevel)
	}
	c.SetZoomLevel(-3)
	if c.ZoomLevel() != minZoomLevel {
		t.Errorf("SetZoomLevel(-3) = %v, want %v", c.ZoomLevel(), minZoomLevel)
	}
}

func TestControllerScrollDoesNotHandleEvent(t *testing.T) {
	c := NewOrthographicCameraController(1, false, nil)
	e := &MouseScrolledEvent{YOffset: 1}
	c.OnEvent(e)
	if e.Handled() {
		t.Error("scroll should stay unhandled for layers below")
	}
}

func TestControllerResize(t *testing.T) {
	c := NewOrthographicCameraController(1, false, nil)
	c.OnEvent(&WindowResizeEvent{Width: 800, Height: 400})
	if c.AspectRatio() != 2 {
		t.Errorf("AspectRatio = %v, want 2", c.AspectRatio())
	}
	c.OnResize(0, 400)
	c.OnResize(800, 0)
	if c.AspectRatio() != 2 {
		t.Errorf("zero-area resize changed AspectRatio to %v", c.AspectRatio())
	}
	if !matApproxEqual(c.Camera().Projection(), mgl32.Ortho(-2, 2, -1, 1, -1, 1)) {
		t.Error("projection not updated after resize")
	}
}

func TestControllerSmoothZoom(t *testing.T) {
	c := NewOrthographicCameraController(1, false, nil)
	c.SmoothZoom = true

	c.OnEvent(&MouseScrolledEvent{YOffset: 1})
	if c.ZoomLevel() != 1 {
		t.Errorf("smooth zoom applied immediately: %v", c.ZoomLevel())
	}
	// A second notch before the first finishes stacks onto its target.
	c.OnEvent(&MouseScrolledEvent{YOffset: 1})
	c.OnUpdate(1)
	if !approxEqual(c.ZoomLevel(), 0.5, epsilon) {
		t.Errorf("ZoomLevel after animation = %v, want 0.5", c.ZoomLevel())
	}
	if c.zoomAnim != nil {
		t.Error("finished animation was not cleared")
	}
}

func TestControllerZoomTo(t *testing.T) {
	c := NewOrthographicCameraController(1, false, nil)
	c.ZoomTo(3, 0.5, ease.Linear)
	c.OnUpdate(0.25)
	if z := c.ZoomLevel(); z <= 1 || z >= 3 {
		t.Errorf("ZoomLevel midway = %v, want between 1 and 3", z)
	}
	c.OnUpdate(1)
	if !approxEqual(c.ZoomLevel(), 3, epsilon) {
		t.Errorf("ZoomLevel = %v, want 3", c.ZoomLevel())
	}

	c.ZoomTo(2, 0, ease.Linear)
	if c.ZoomLevel() != 2 {
		t.Errorf("zero-duration ZoomTo = %v, want 2", c.ZoomLevel())
	}
}

func TestControllerKeyboardPan(t *testing.T) {
	in := NewInjectedInput(nil)
	c := NewOrthographicCameraController(1, false, in)

	in.PressKey(KeyW)
	in.PressKey(KeyD)
	c.OnUpdate(0.5)

	// Speed 5 units/s at zoom 1 for half a second.
	pos := c.Camera().Position()
	if !vec3ApproxEqual(pos, mgl32.Vec3{2.5, 2.5, 0}) {
		t.Errorf("position = %v, want (2.5, 2.5, 0)", pos)
	}

	in.Reset()
	c.SetZoomLevel(2)
	in.PressKey(KeyA)
	c.OnUpdate(0.5)
	if got := c.Camera().Position().X(); !approxEqual(got, -2.5, epsilon) {
		t.Errorf("x after zoomed pan = %v, want -2.5", got)
	}
}

func TestControllerRotation(t *testing.T) {
	in := NewInjectedInput(nil)
	fixed := NewOrthographicCameraController(1, false, in)
	free := NewOrthographicCameraController(1, true, in)

	in.PressKey(KeyQ)
	fixed.OnUpdate(0.5)
	free.OnUpdate(0.5)

	if fixed.Camera().Rotation() != 0 {
		t.Error("rotation disabled but Q rotated the camera")
	}
	if !approxEqual(free.Camera().Rotation(), Radians(90), epsilon) {
		t.Errorf("rotation = %v, want %v", free.Camera().Rotation(), Radians(90))
	}
}
