package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestSceneCameraDefaults(t *testing.T) {
	c := NewSceneCamera()
	if c.OrthographicSize() != 10 {
		t.Errorf("OrthographicSize() = %v, want 10", c.OrthographicSize())
	}
	if c.AspectRatio() != 1 {
		t.Errorf("AspectRatio() = %v, want 1", c.AspectRatio())
	}
	want := mgl32.Ortho(-5, 5, -5, 5, -1, 1)
	if !matApproxEqual(c.Projection(), want) {
		t.Errorf("Projection() = %v, want %v", c.Projection(), want)
	}
}

func TestSceneCameraViewportSize(t *testing.T) {
	c := NewSceneCamera()
	c.SetViewportSize(400, 200)
	want := mgl32.Ortho(-10, 10, -5, 5, -1, 1)
	if !matApproxEqual(c.Projection(), want) {
		t.Errorf("Projection() = %v, want %v", c.Projection(), want)
	}

	before := c.Projection()
	c.SetViewportSize(400, 0)
	if c.Projection() != before {
		t.Error("zero height changed the projection")
	}
}

func TestSceneCameraSetOrthographic(t *testing.T) {
	c := NewSceneCamera()
	c.SetOrthographic(4, -2, 2)
	want := mgl32.Ortho(-2, 2, -2, 2, -2, 2)
	if !matApproxEqual(c.Projection(), want) {
		t.Errorf("Projection() = %v, want %v", c.Projection(), want)
	}
	c.SetOrthographicSize(8)
	if c.OrthographicSize() != 8 {
		t.Errorf("OrthographicSize() = %v, want 8", c.OrthographicSize())
	}
}
