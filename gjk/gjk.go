// Package gjk implements the Gilbert-Johnson-Keerthi (GJK) algorithm for collision detection.
//
// GJK detects whether two convex shapes overlap by testing if their Minkowski difference
// contains the origin. The algorithm builds a simplex incrementally, converging toward
// the origin in typically 3-6 iterations.
//
// On a hit the simplex always ends as a tetrahedron (4 samples) enclosing the origin,
// which the contact package turns into a contact point.
//
// References:
//   - Gilbert, Johnson, Keerthi: "A Fast Procedure for Computing the Distance Between
//     Complex Objects in Three-Dimensional Space" (1988)
//   - Van den Bergen: "Collision Detection in Interactive 3D Environments" (2003)
package gjk

import (
	"github.com/akmonengine/collide/actor"
	"github.com/akmonengine/collide/config"
	"github.com/akmonengine/collide/vecmath"
	"github.com/go-gl/mathgl/mgl64"
)

// Result is the outcome of a GJK query
type Result int

const (
	// Separated: a support point failed to pass the origin, the shapes do not overlap.
	Separated Result = iota
	// Intersecting: the simplex is a tetrahedron enclosing the origin.
	Intersecting
	// Touching: the origin lies on the boundary of the Minkowski difference,
	// within tolerance. The shapes are in contact with no measurable penetration.
	Touching
	// Exhausted: the iteration cap was reached. Callers report no collision.
	Exhausted
)

func (r Result) String() string {
	switch r {
	case Separated:
		return "separated"
	case Intersecting:
		return "intersecting"
	case Touching:
		return "touching"
	case Exhausted:
		return "exhausted"
	}
	return "unknown"
}

// Hit reports whether the result is a collision (intersecting or touching)
func (r Result) Hit() bool {
	return r == Intersecting || r == Touching
}

// MinkowskiSupport computes a support point in the Minkowski difference (A - B).
//
// The Minkowski difference A - B is the set of all vectors (a - b) where a ∈ A and b ∈ B.
// For collision detection, we only need the extreme points (support points) in any direction:
//
//	support(A - B, d) = support(A, d) - support(B, -d)
//
// Both source points are returned with the difference.
func MinkowskiSupport(a, b *actor.RigidBody, direction mgl64.Vec3) MinkowskiSample {
	supportA := a.SupportWorld(direction)
	supportB := b.SupportWorld(direction.Mul(-1))

	return MinkowskiSample{
		Point: supportA.Sub(supportB),
		A:     supportA,
		B:     supportB,
	}
}

// GJK performs collision detection between two convex rigid bodies.
//
// Algorithm overview:
//  1. Seed the search direction with posA - posB
//  2. Get first support point in Minkowski difference, then search the opposite way
//  3. Each new support point must pass the origin, otherwise the shapes are separated
//  4. containsOrigin reduces the simplex to the feature nearest the origin,
//     and returns the next direction, or confirms the origin is enclosed
//  5. A confirmation on a segment or triangle is extruded into a tetrahedron
//
// The simplex must be empty; it is modified in place. cfg.Tolerance drives every
// degeneracy test and cfg.MaxIterations bounds the loop.
func GJK(a, b *actor.RigidBody, simplex *Simplex, cfg config.Config) Result {
	tolerance := cfg.Tolerance

	direction := a.Position().Sub(b.Position())
	if direction.LenSqr() < tolerance*tolerance {
		direction = mgl64.Vec3{1, 0, 0} // Fallback if positions are identical
	}

	first := MinkowskiSupport(a, b, direction)
	simplex.Push(first)

	// If first support point is at/near origin, shapes are touching
	if first.Point.Len() < tolerance {
		return Touching
	}

	direction = direction.Mul(-1)

	for i := 0; i < cfg.MaxIterations; i++ {
		sample := MinkowskiSupport(a, b, direction)

		if sample.Point.Len() < tolerance {
			simplex.Push(sample)
			return Touching
		}

		// The new point does not pass the origin in the search direction:
		// the origin cannot be reached, therefore no collision.
		if sample.Point.Dot(direction) <= 0 {
			return Separated
		}

		simplex.Push(sample)

		if !containsOrigin(simplex, &direction, tolerance) {
			continue
		}

		if simplex.Len() == 4 {
			return Intersecting
		}

		// Origin on a segment or a triangle: the contact step needs a full tetrahedron
		return extrude(a, b, simplex, tolerance)
	}

	return Exhausted
}

// extrude grows a segment or triangle known to contain the origin into a tetrahedron.
// The new samples are taken along a direction orthogonal to the current feature,
// on whichever side the Minkowski difference extends beyond tolerance.
// If it extends on neither side, the difference is flat around the origin: Touching.
func extrude(a, b *actor.RigidBody, simplex *Simplex, tolerance float64) Result {
	for simplex.Len() < 4 {
		var axis mgl64.Vec3
		switch simplex.Len() {
		case 2:
			axis = vecmath.AnyPerpendicular(simplex.Point(1).Sub(simplex.Point(0)))
		case 3:
			axis = simplex.Point(1).Sub(simplex.Point(0)).Cross(simplex.Point(2).Sub(simplex.Point(0)))
		default:
			return Touching
		}

		direction, err := vecmath.Normalize(axis)
		if err != nil {
			return Touching
		}

		sample := MinkowskiSupport(a, b, direction)
		if sample.Point.Dot(direction) <= tolerance {
			direction = direction.Mul(-1)
			sample = MinkowskiSupport(a, b, direction)
			if sample.Point.Dot(direction) <= tolerance {
				return Touching
			}
		}

		simplex.Push(sample)
	}

	return Intersecting
}
