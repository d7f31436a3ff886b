// Package contact turns the terminal GJK simplex into a single contact:
// a point on shape A, a unit normal from A toward B, and a penetration depth.
//
// Depth is exact for half-spaces and for the chosen axis of polyhedra, and a
// rough approximation when a sphere is involved. Multi-point manifolds are not produced.
package contact

import (
	"math"

	"github.com/akmonengine/collide/actor"
	"github.com/akmonengine/collide/config"
	"github.com/akmonengine/collide/gjk"
	"github.com/akmonengine/collide/vecmath"
	"github.com/go-gl/mathgl/mgl64"
)

// Info is the contact between two bodies.
type Info struct {
	Point  mgl64.Vec3 // contact point on A, world space
	Normal mgl64.Vec3 // unit length, oriented from A toward B
	Depth  float64    // penetration along Normal, >= 0
}

// Extract builds the contact of a pair GJK reported as a hit.
// The simplex must hold the samples GJK terminated with; result is the GJK outcome.
// Touching pairs, and depths under cfg.Tolerance, get a zero depth.
func Extract(a, b *actor.RigidBody, simplex *gjk.Simplex, result gjk.Result, cfg config.Config) Info {
	point := contactPoint(simplex)
	normal, depth := normalAndDepth(a, b, simplex, point)

	if result == gjk.Touching || depth < cfg.Tolerance {
		depth = 0
	}

	return Info{Point: point, Normal: normal, Depth: depth}
}

// contactPoint applies the barycentric weights of the origin to the A source points.
// A singular system, or fewer than 4 samples, falls back to the simplex feature
// nearest the origin, and the contact is the midpoint of both shapes' points on it.
func contactPoint(simplex *gjk.Simplex) mgl64.Vec3 {
	samples := simplex.Samples()
	if len(samples) == 0 {
		return mgl64.Vec3{}
	}

	if len(samples) == 4 {
		var vertices [4]mgl64.Vec3
		for i, s := range samples {
			vertices[i] = s.Point
		}

		if weights, ok := Barycentric(vertices, mgl64.Vec3{}); ok {
			var point mgl64.Vec3
			for i, s := range samples {
				point = point.Add(s.A.Mul(weights[i]))
			}
			return point
		}
	}

	points := make([]mgl64.Vec3, len(samples))
	for i, s := range samples {
		points[i] = s.Point
	}
	weights := closestFeature(points)

	var onA, onB mgl64.Vec3
	for i, s := range samples {
		onA = onA.Add(s.A.Mul(weights[i]))
		onB = onB.Add(s.B.Mul(weights[i]))
	}

	return onA.Add(onB).Mul(0.5)
}

// normalAndDepth picks the estimator for the pair, in priority order: half-space, sphere, general.
func normalAndDepth(a, b *actor.RigidBody, simplex *gjk.Simplex, point mgl64.Vec3) (mgl64.Vec3, float64) {
	if h, ok := b.Shape.(*actor.HalfSpace); ok {
		n := planeNormal(b, h)
		// A's deepest point below B's surface
		depth := b.Position().Sub(a.SupportWorld(n.Mul(-1))).Dot(n)
		return n.Mul(-1), math.Max(0, depth)
	}
	if h, ok := a.Shape.(*actor.HalfSpace); ok {
		n := planeNormal(a, h)
		depth := a.Position().Sub(b.SupportWorld(n.Mul(-1))).Dot(n)
		return n, math.Max(0, depth)
	}

	if s, ok := b.Shape.(*actor.Sphere); ok {
		axis, depth := sphereAxis(b, s, a, point)
		return axis.Mul(-1), depth
	}
	if s, ok := a.Shape.(*actor.Sphere); ok {
		return sphereAxis(a, s, b, point)
	}

	return minimumAxis(a, b, simplex)
}

// planeNormal returns the unit world normal of a half-space body, or +Y when undefined.
func planeNormal(body *actor.RigidBody, h *actor.HalfSpace) mgl64.Vec3 {
	n, err := vecmath.Normalize(body.Transform.ToWorldDirection(h.Normal))
	if err != nil {
		return mgl64.Vec3{0, 1, 0}
	}
	return n
}

// sphereAxis returns the unit axis from the sphere center toward the other body and the depth along it.
//
// Two candidate axes are tried, toward the other body's center and through the contact point,
// and the one with the smaller depth is kept. Along an axis the depth is measured from the
// sphere's support point center + r*axis back to a target on the other body, signed:
//
//	depth = r - (target - center)·axis
//
// The target is the other body's deepest point toward the sphere, or its center when the other
// body is a sphere too. A sphere pair at center distance d thus gets r - d, a rough estimate
// that grows with the overlap.
func sphereAxis(sphereBody *actor.RigidBody, sphere *actor.Sphere, other *actor.RigidBody, point mgl64.Vec3) (mgl64.Vec3, float64) {
	center := sphereBody.Position()
	_, otherIsSphere := other.Shape.(*actor.Sphere)

	depthAlong := func(axis mgl64.Vec3) float64 {
		target := other.Position()
		if !otherIsSphere {
			target = other.SupportWorld(axis.Mul(-1))
		}
		return sphere.Radius - target.Sub(center).Dot(axis)
	}

	bestAxis := mgl64.Vec3{0, 1, 0}
	bestDepth := math.Inf(1)
	for _, direction := range []mgl64.Vec3{other.Position().Sub(center), point.Sub(center)} {
		axis, err := vecmath.Normalize(direction)
		if err != nil {
			continue
		}
		if depth := depthAlong(axis); depth < bestDepth {
			bestAxis, bestDepth = axis, depth
		}
	}

	if math.IsInf(bestDepth, 1) {
		// Concentric, with the contact on the center
		bestDepth = depthAlong(bestAxis)
	}

	return bestAxis, math.Max(0, bestDepth)
}

// minimumAxis tests the center axis and the outward face normals of the simplex,
// and keeps the one along which A and B overlap the least.
func minimumAxis(a, b *actor.RigidBody, simplex *gjk.Simplex) (mgl64.Vec3, float64) {
	candidates := make([]mgl64.Vec3, 0, 5)
	if axis, err := vecmath.Normalize(b.Position().Sub(a.Position())); err == nil {
		candidates = append(candidates, axis)
	}
	candidates = append(candidates, faceNormals(simplex)...)

	if len(candidates) == 0 {
		return mgl64.Vec3{0, 1, 0}, 0
	}

	bestAxis := candidates[0]
	bestDepth := math.Inf(1)
	for _, axis := range candidates {
		// Overlap along axis: max(A·axis) - min(B·axis)
		depth := gjk.MinkowskiSupport(a, b, axis).Point.Dot(axis)
		if depth < bestDepth {
			bestDepth = depth
			bestAxis = axis
		}
	}

	return bestAxis, math.Max(0, bestDepth)
}

// faceNormals returns the unit outward normals of a tetrahedral simplex.
func faceNormals(simplex *gjk.Simplex) []mgl64.Vec3 {
	if simplex.Len() != 4 {
		return nil
	}

	faces := [4][4]int{
		{0, 1, 2, 3},
		{0, 1, 3, 2},
		{0, 2, 3, 1},
		{1, 2, 3, 0},
	}

	normals := make([]mgl64.Vec3, 0, 4)
	for _, f := range faces {
		p0, p1, p2, opposite := simplex.Point(f[0]), simplex.Point(f[1]), simplex.Point(f[2]), simplex.Point(f[3])

		n := p1.Sub(p0).Cross(p2.Sub(p0))
		if n.Dot(opposite.Sub(p0)) > 0 {
			n = n.Mul(-1)
		}

		if unit, err := vecmath.Normalize(n); err == nil {
			normals = append(normals, unit)
		}
	}

	return normals
}
