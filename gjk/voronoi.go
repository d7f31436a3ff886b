package gjk

import (
	"github.com/akmonengine/collide/vecmath"
	"github.com/go-gl/mathgl/mgl64"
)

// containsOrigin tests if the simplex contains the origin and refines the simplex.
//
// This is the heart of GJK - it determines which feature of the simplex (point, edge, face)
// is closest to the origin, keeps only the relevant points, and updates the search direction.
// At most one sample is removed per call.
//
// Behavior by simplex dimension (a is always the most recent sample):
//   - 2 points (line): keep the segment, or drop b when the origin is behind a
//   - 3 points (triangle): reduce to the edge facing the origin, or search along the face normal
//   - 4 points (tetrahedron): drop the vertex opposite the face the origin is outside of
//
// Returns:
//   - true: the origin lies on the segment, on the triangle, or inside the tetrahedron
//   - false: direction is updated for the next iteration
func containsOrigin(simplex *Simplex, direction *mgl64.Vec3, tolerance float64) bool {
	switch simplex.Len() {
	case 2:
		return line(simplex, direction, tolerance)
	case 3:
		return triangle(simplex, direction, tolerance)
	case 4:
		return tetrahedron(simplex, direction)
	}
	return false
}

// line handles the line simplex case (2 points: B then A).
//
// Tests which Voronoi region contains the origin:
//   - Region A: Origin is closest to point A alone, B is dropped
//   - Region AB: Origin is closest to the segment, search perpendicular to it
//
// The origin within tolerance of the segment confirms.
func line(simplex *Simplex, direction *mgl64.Vec3, tolerance float64) bool {
	a := simplex.Point(1)
	b := simplex.Point(0)
	ab := b.Sub(a)
	ao := a.Mul(-1)

	// Origin behind A, or B duplicates A: keep A only
	if ab.Dot(ao) < 0 || ab.LenSqr() < tolerance*tolerance {
		simplex.RemoveAt(0)
		*direction = ao
		return false
	}

	return towardSegment(ab, ao, direction, tolerance)
}

// towardSegment sets direction to the component of ao perpendicular to ab.
// It confirms when that component vanishes and the origin projects between A and B.
func towardSegment(ab, ao mgl64.Vec3, direction *mgl64.Vec3, tolerance float64) bool {
	abPerp := vecmath.DoubleCross(ab, ao, ab)
	if abPerp.Len() >= tolerance {
		*direction = abPerp
		return false
	}

	if ab.Dot(ao) > ab.LenSqr() {
		// Colinear but past B
		*direction = ao.Sub(ab)
		return false
	}

	return true
}

// triangle handles the triangle simplex case (3 points: C, B, then A).
//
// Tests which Voronoi region contains the origin:
//   - Region AB: Origin closest to edge AB, C is dropped
//   - Region AC: Origin closest to edge AC, B is dropped
//   - Region ABC: Origin above or below the face, search along the normal facing it
//
// Degenerate case: if the points are colinear, C is dropped and the simplex is treated as line AB.
// An origin lying in the plane of the triangle, inside both edges, confirms.
func triangle(simplex *Simplex, direction *mgl64.Vec3, tolerance float64) bool {
	a := simplex.Point(2) // Most recent point
	b := simplex.Point(1)
	c := simplex.Point(0)

	ab := b.Sub(a)
	ac := c.Sub(a)
	ao := a.Mul(-1)

	abc := ab.Cross(ac) // Triangle normal

	if abc.Len() < tolerance {
		simplex.RemoveAt(0)
		if ab.Dot(ao) < 0 {
			*direction = ao
			return false
		}
		return towardSegment(ab, ao, direction, tolerance)
	}

	// Region AB (edge), in-plane normal ab × (ab × ac)
	if vecmath.DoubleCross(ab, ab, ac).Dot(ao) > 0 {
		simplex.RemoveAt(0)
		return towardSegment(ab, ao, direction, tolerance)
	}

	// Region AC (edge), in-plane normal (ab × ac) × ac
	if vecmath.TripleProduct(ab, ac, ac).Dot(ao) > 0 {
		simplex.RemoveAt(1)
		return towardSegment(ac, ao, direction, tolerance)
	}

	// Origin within the prism above/below the face
	distance := abc.Dot(ao)
	if distance <= tolerance*abc.Len() && distance >= -tolerance*abc.Len() {
		// Coplanar: the origin is on the triangle
		return true
	}

	*direction = abc.Mul(vecmath.Sign(distance))
	return false
}

// tetrahedron handles the tetrahedron simplex case (4 points: D, C, B, then A).
//
// Tests if origin is inside the tetrahedron by checking which side of each face
// the origin lies on:
//   - If outside face ABC → drop D
//   - If outside face ABD → drop C
//   - If outside face ACD → drop B
//   - If inside all faces → origin contained, collision!
//
// Face normals point away from the 4th vertex. The face behind A (BCD) is not tested:
// the origin was already known to be on A's side of it.
func tetrahedron(simplex *Simplex, direction *mgl64.Vec3) bool {
	a := simplex.Point(3) // Most recent point
	b := simplex.Point(2)
	c := simplex.Point(1)
	d := simplex.Point(0)

	ab := b.Sub(a)
	ac := c.Sub(a)
	ad := d.Sub(a)
	ao := a.Mul(-1)

	// Face ABC (opposite to D)
	abc := ab.Cross(ac)
	if abc.Dot(ad) > 0 {
		abc = abc.Mul(-1)
	}

	// Face ABD (opposite to C)
	abd := ab.Cross(ad)
	if abd.Dot(ac) > 0 {
		abd = abd.Mul(-1)
	}

	// Face ACD (opposite to B)
	acd := ac.Cross(ad)
	if acd.Dot(ab) > 0 {
		acd = acd.Mul(-1)
	}

	if abc.Dot(ao) > 0 {
		simplex.RemoveAt(0)
		*direction = abc
		return false
	}

	if abd.Dot(ao) > 0 {
		simplex.RemoveAt(1)
		*direction = abd
		return false
	}

	if acd.Dot(ao) > 0 {
		simplex.RemoveAt(2)
		*direction = acd
		return false
	}

	// The origin is inside the tetrahedron
	return true
}
