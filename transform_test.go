package sprig

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestQuadTransformUnitCorners(t *testing.T) {
	m := QuadTransform(mgl32.Vec3{10, 20, 0.5}, mgl32.Vec2{4, 2}, 0)
	tests := []struct {
		in, want mgl32.Vec3
	}{
		{mgl32.Vec3{-0.5, -0.5, 0}, mgl32.Vec3{8, 19, 0.5}},
		{mgl32.Vec3{0.5, 0.5, 0}, mgl32.Vec3{12, 21, 0.5}},
		{mgl32.Vec3{0, 0, 0}, mgl32.Vec3{10, 20, 0.5}},
	}
	for _, tt := range tests {
		if got := TransformPoint(m, tt.in); !vec3ApproxEqual(got, tt.want) {
			t.Errorf("TransformPoint(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestQuadTransformRotatesBeforeTranslating(t *testing.T) {
	m := QuadTransform(mgl32.Vec3{1, 0, 0}, mgl32.Vec2{2, 2}, Radians(90))
	// (0.5, 0) scales to (1, 0), turns to (0, 1), moves to (1, 1).
	if got := TransformPoint(m, mgl32.Vec3{0.5, 0, 0}); !vec3ApproxEqual(got, mgl32.Vec3{1, 1, 0}) {
		t.Errorf("got %v, want (1,1,0)", got)
	}
}

func TestTRSMatchesQuadTransform(t *testing.T) {
	pos := mgl32.Vec3{3, -2, 0.25}
	a := QuadTransform(pos, mgl32.Vec2{2, 5}, 0.7)
	b := TRS(pos, mgl32.Vec3{0, 0, 0.7}, mgl32.Vec3{2, 5, 1})
	if !matApproxEqual(a, b) {
		t.Errorf("QuadTransform = %v\nTRS = %v", a, b)
	}
}

func TestTRSIdentity(t *testing.T) {
	if m := TRS(mgl32.Vec3{}, mgl32.Vec3{}, mgl32.Vec3{1, 1, 1}); !matApproxEqual(m, mgl32.Ident4()) {
		t.Errorf("TRS(0, 0, 1) = %v, want identity", m)
	}
}

func TestRadians(t *testing.T) {
	if !approxEqual(Radians(180), 3.14159265, epsilon) {
		t.Errorf("Radians(180) = %v", Radians(180))
	}
}
