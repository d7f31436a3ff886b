package actor

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

// BodyType represents the type of rigid body
type BodyType int

const (
	// BodyTypeDynamic bodies are affected by gravity and collisions
	// They have finite mass and can move freely
	BodyTypeDynamic BodyType = iota

	// BodyTypeStatic bodies are immovable and have infinite mass
	// They are not affected by gravity or impulses (e.g., ground, walls)
	BodyTypeStatic
)

func (t BodyType) String() string {
	switch t {
	case BodyTypeDynamic:
		return "dynamic"
	case BodyTypeStatic:
		return "static"
	}
	return "unknown"
}

// RigidBody holds the pose, velocity and mass of a shape
type RigidBody struct {
	ID uuid.UUID

	Transform Transform
	Velocity  mgl64.Vec3 // Linear velocity (m/s)

	BodyType BodyType
	Shape    Shape

	mass float64
}

// NewRigidBody creates a new rigid body with the given properties
// density is used to calculate mass for dynamic bodies (ignored for static)
func NewRigidBody(transform Transform, shape Shape, bodyType BodyType, density float64) *RigidBody {
	rb := &RigidBody{
		ID:        uuid.New(),
		Transform: transform,
		Shape:     shape,
		BodyType:  bodyType,
	}

	if bodyType == BodyTypeStatic {
		rb.mass = math.Inf(1)
	} else {
		rb.mass = shape.ComputeMass(density)
	}

	return rb
}

// Mass in kg, +Inf for static bodies
func (rb *RigidBody) Mass() float64 {
	return rb.mass
}

// SetMass overrides the mass computed from the shape and density.
func (rb *RigidBody) SetMass(mass float64) {
	rb.mass = mass
}

// Position of the body in world space
func (rb *RigidBody) Position() mgl64.Vec3 {
	return rb.Transform.Position
}

// IsImmovable reports whether impulses and gravity leave the body untouched.
// Bodies heavier than immovableMass are treated as static.
func (rb *RigidBody) IsImmovable(immovableMass float64) bool {
	return rb.BodyType == BodyTypeStatic || math.IsInf(rb.mass, 1) || rb.mass > immovableMass
}

// InverseMass returns 1/mass, or 0 for immovable bodies.
func (rb *RigidBody) InverseMass(immovableMass float64) float64 {
	if rb.IsImmovable(immovableMass) || rb.mass <= 0 {
		return 0
	}
	return 1.0 / rb.mass
}

// Integrate applies gravity to the velocity, then the velocity to the position (semi-implicit Euler).
func (rb *RigidBody) Integrate(dt float64, gravity mgl64.Vec3, immovableMass float64) {
	if rb.IsImmovable(immovableMass) {
		return
	}

	rb.Velocity = rb.Velocity.Add(gravity.Mul(dt))
	rb.Transform.Position = rb.Transform.Position.Add(rb.Velocity.Mul(dt))
}

// SupportWorld returns the extreme point of the body along a world direction, in world space.
func (rb *RigidBody) SupportWorld(direction mgl64.Vec3) mgl64.Vec3 {
	// 1. Transform the direction into local space (inverse rotation)
	localDirection := rb.Transform.ToLocalDirection(direction)

	// 2. Find the support in local space
	localSupport := rb.Shape.Support(localDirection)

	// 3. Transform the support point back to world space (rotation + translation)
	return rb.Transform.ToWorld(localSupport)
}
