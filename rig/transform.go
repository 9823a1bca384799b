package rig

import "github.com/go-gl/mathgl/mgl32"

// Transform is the pose a rig resolves to: a translation and a rotation.
type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
}

func Identity() Transform {
	return Transform{
		Position: mgl32.Vec3{0, 0, 0},
		Rotation: mgl32.QuatIdent(),
	}
}

// ViewMatrix returns the inverse of the pose, suitable as a camera view matrix.
func (t Transform) ViewMatrix() mgl32.Mat4 {
	invRotate := t.Rotation.Conjugate().Mat4()
	invTranslate := mgl32.Translate3D(-t.Position.X(), -t.Position.Y(), -t.Position.Z())
	return invRotate.Mul4(invTranslate)
}
