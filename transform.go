package sprig

import "github.com/go-gl/mathgl/mgl32"

// QuadTransform composes Translate(position) * RotateZ(rotation) * Scale(size).
// rotation is in radians. Applied to the unit quad it yields a quad of the
// given size centred on position.
func QuadTransform(position mgl32.Vec3, size mgl32.Vec2, rotation float32) mgl32.Mat4 {
	m := mgl32.Translate3D(position.X(), position.Y(), position.Z())
	if rotation != 0 {
		m = m.Mul4(mgl32.HomogRotate3DZ(rotation))
	}
	return m.Mul4(mgl32.Scale3D(size.X(), size.Y(), 1))
}

// TRS composes Translate * RotateX * RotateY * RotateZ * Scale. rotation holds
// Euler angles in radians.
func TRS(translation, rotation, scale mgl32.Vec3) mgl32.Mat4 {
	m := mgl32.Translate3D(translation.X(), translation.Y(), translation.Z())
	if rotation.X() != 0 {
		m = m.Mul4(mgl32.HomogRotate3DX(rotation.X()))
	}
	if rotation.Y() != 0 {
		m = m.Mul4(mgl32.HomogRotate3DY(rotation.Y()))
	}
	if rotation.Z() != 0 {
		m = m.Mul4(mgl32.HomogRotate3DZ(rotation.Z()))
	}
	return m.Mul4(mgl32.Scale3D(scale.X(), scale.Y(), scale.Z()))
}

// TransformPoint applies m to the point p (w = 1).
func TransformPoint(m mgl32.Mat4, p mgl32.Vec3) mgl32.Vec3 {
	return m.Mul4x1(p.Vec4(1)).Vec3()
}
