package actor

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

func TestNewRigidBody(t *testing.T) {
	t.Run("dynamic body mass from density", func(t *testing.T) {
		rb := NewRigidBody(NewTransform(), &Sphere{Radius: 1}, BodyTypeDynamic, 3)

		if !floatEqual(rb.Mass(), 4*math.Pi, 1e-9) {
			t.Errorf("Expected mass 4π, got %v", rb.Mass())
		}
		if rb.ID == uuid.Nil {
			t.Error("Expected a generated ID")
		}
	})

	t.Run("static body has infinite mass", func(t *testing.T) {
		rb := NewRigidBody(NewTransform(), NewBox(mgl64.Vec3{1, 1, 1}), BodyTypeStatic, 10)

		if !math.IsInf(rb.Mass(), 1) {
			t.Errorf("Expected +Inf mass, got %v", rb.Mass())
		}
	})

	t.Run("IDs are unique", func(t *testing.T) {
		a := NewRigidBody(NewTransform(), &Sphere{Radius: 1}, BodyTypeDynamic, 1)
		b := NewRigidBody(NewTransform(), &Sphere{Radius: 1}, BodyTypeDynamic, 1)
		if a.ID == b.ID {
			t.Error("Expected distinct IDs")
		}
	})
}

func TestInverseMass(t *testing.T) {
	const threshold = 1000.0

	tests := []struct {
		name     string
		bodyType BodyType
		mass     float64
		expected float64
	}{
		{"light dynamic body", BodyTypeDynamic, 2, 0.5},
		{"at the threshold", BodyTypeDynamic, 1000, 0.001},
		{"above the threshold", BodyTypeDynamic, 1000.5, 0},
		{"static body", BodyTypeStatic, 1, 0},
		{"infinite mass", BodyTypeDynamic, math.Inf(1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rb := NewRigidBody(NewTransform(), &Sphere{Radius: 1}, tt.bodyType, 1)
			rb.SetMass(tt.mass)

			if got := rb.InverseMass(threshold); !floatEqual(got, tt.expected, 1e-12) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestIntegrate(t *testing.T) {
	gravity := mgl64.Vec3{0, -10, 0}

	t.Run("dynamic body falls", func(t *testing.T) {
		rb := NewRigidBody(NewTransform(), &Sphere{Radius: 1}, BodyTypeDynamic, 1)
		rb.Velocity = mgl64.Vec3{1, 0, 0}

		rb.Integrate(0.1, gravity, 1000)

		if !vec3Equal(rb.Velocity, mgl64.Vec3{1, -1, 0}, 1e-12) {
			t.Errorf("Expected velocity (1, -1, 0), got %v", rb.Velocity)
		}
		if !vec3Equal(rb.Position(), mgl64.Vec3{0.1, -0.1, 0}, 1e-12) {
			t.Errorf("Expected position (0.1, -0.1, 0), got %v", rb.Position())
		}
	})

	t.Run("immovable body does not move", func(t *testing.T) {
		rb := NewRigidBody(NewTransform(), &Sphere{Radius: 1}, BodyTypeDynamic, 1)
		rb.SetMass(5000)
		rb.Velocity = mgl64.Vec3{1, 0, 0}

		rb.Integrate(0.1, gravity, 1000)

		if rb.Velocity != (mgl64.Vec3{1, 0, 0}) || rb.Position() != (mgl64.Vec3{}) {
			t.Errorf("Expected untouched body, got velocity %v position %v", rb.Velocity, rb.Position())
		}
	})
}

func TestSupportWorld(t *testing.T) {
	t.Run("translated sphere", func(t *testing.T) {
		rb := NewRigidBody(Transform{Position: mgl64.Vec3{5, 0, 0}, Rotation: mgl64.QuatIdent()}, &Sphere{Radius: 1}, BodyTypeDynamic, 1)

		got := rb.SupportWorld(mgl64.Vec3{0, 1, 0})
		if !vec3Equal(got, mgl64.Vec3{5, 1, 0}, 1e-9) {
			t.Errorf("Expected (5, 1, 0), got %v", got)
		}
	})

	t.Run("rotated box", func(t *testing.T) {
		// 90° around Z maps local +X onto world +Y
		rotation := mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{0, 0, 1})
		rb := NewRigidBody(Transform{Position: mgl64.Vec3{0, 1, 0}, Rotation: rotation}, NewBox(mgl64.Vec3{2, 0.5, 0.5}), BodyTypeDynamic, 1)

		got := rb.SupportWorld(mgl64.Vec3{0, 1, 0})
		if !floatEqual(got.Y(), 3, 1e-9) {
			t.Errorf("Expected the long axis along +Y (y = 3), got %v", got)
		}
	})

	t.Run("zero-value rotation acts as identity", func(t *testing.T) {
		rb := NewRigidBody(Transform{Position: mgl64.Vec3{0, 0, 1}}, NewBox(mgl64.Vec3{1, 1, 1}), BodyTypeDynamic, 1)

		got := rb.SupportWorld(mgl64.Vec3{1, 1, 1})
		if !vec3Equal(got, mgl64.Vec3{1, 1, 2}, 1e-9) {
			t.Errorf("Expected (1, 1, 2), got %v", got)
		}
	})
}
