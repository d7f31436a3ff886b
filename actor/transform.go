package actor

import "github.com/go-gl/mathgl/mgl64"

// Transform is the pose of a body: world position and orientation
type Transform struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
}

// NewTransform creates an identity transform
func NewTransform() Transform {
	return Transform{
		Position: mgl64.Vec3{0, 0, 0},
		Rotation: mgl64.QuatIdent(),
	}
}

// ToWorld maps a local point to world space
func (t Transform) ToWorld(local mgl64.Vec3) mgl64.Vec3 {
	return t.Position.Add(t.rotation().Rotate(local))
}

// ToLocalDirection maps a world direction into the local frame, ignoring translation
func (t Transform) ToLocalDirection(direction mgl64.Vec3) mgl64.Vec3 {
	return t.rotation().Conjugate().Rotate(direction)
}

// ToWorldDirection maps a local direction to world space, ignoring translation
func (t Transform) ToWorldDirection(direction mgl64.Vec3) mgl64.Vec3 {
	return t.rotation().Rotate(direction)
}

// rotation treats the zero quaternion as the identity, so a zero-value Transform is usable.
func (t Transform) rotation() mgl64.Quat {
	if t.Rotation.W == 0 && t.Rotation.V.LenSqr() == 0 {
		return mgl64.QuatIdent()
	}
	return t.Rotation.Normalize()
}
