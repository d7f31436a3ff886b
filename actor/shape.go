package actor

import (
	"math"

	"github.com/akmonengine/collide/vecmath"
	"github.com/go-gl/mathgl/mgl64"
)

// Shape is the single capability a convex shape needs to take part in collision queries.
// Support works in the shape's local frame: RigidBody.SupportWorld handles the pose.
type Shape interface {
	// Support returns the extreme point of the shape along direction, in local space.
	// The point must be a true extreme point, the GJK query relies on it.
	Support(direction mgl64.Vec3) mgl64.Vec3
	// ComputeMass calculates the mass of the shape for a given density
	ComputeMass(density float64) float64
}

// Polyhedron is a convex shape given by an explicit point cloud, in local space.
// The vertices are expected to describe a convex hull; interior points are harmless.
type Polyhedron struct {
	Vertices []mgl64.Vec3
}

// NewBox creates the 8-corner point cloud of a box centered on the local origin.
func NewBox(halfExtents mgl64.Vec3) *Polyhedron {
	hx, hy, hz := halfExtents.X(), halfExtents.Y(), halfExtents.Z()

	return &Polyhedron{
		Vertices: []mgl64.Vec3{
			{-hx, -hy, -hz},
			{+hx, -hy, -hz},
			{-hx, +hy, -hz},
			{+hx, +hy, -hz},
			{-hx, -hy, +hz},
			{+hx, -hy, +hz},
			{-hx, +hy, +hz},
			{+hx, +hy, +hz},
		},
	}
}

// Support returns the vertex maximizing the dot product with direction.
// Ties are broken by the first occurrence in Vertices.
func (p *Polyhedron) Support(direction mgl64.Vec3) mgl64.Vec3 {
	if len(p.Vertices) == 0 {
		return mgl64.Vec3{}
	}

	best := p.Vertices[0]
	bestDot := best.Dot(direction)
	for _, v := range p.Vertices[1:] {
		if d := v.Dot(direction); d > bestDot {
			best = v
			bestDot = d
		}
	}

	return best
}

// ComputeMass approximates the volume by the local bounding box of the vertices
func (p *Polyhedron) ComputeMass(density float64) float64 {
	return density * p.Bounds().Volume()
}

// Bounds returns the local axis-aligned box enclosing every vertex.
func (p *Polyhedron) Bounds() AABB {
	if len(p.Vertices) == 0 {
		return AABB{}
	}

	bounds := AABB{Min: p.Vertices[0], Max: p.Vertices[0]}
	for _, v := range p.Vertices[1:] {
		bounds = bounds.Extend(v)
	}

	return bounds
}

// Sphere represents a spherical collision shape, centered on the body position
type Sphere struct {
	Radius float64
}

// Support returns normalize(direction) * Radius.
// A zero direction has no extreme point: the center is returned.
func (s *Sphere) Support(direction mgl64.Vec3) mgl64.Vec3 {
	n, err := vecmath.Normalize(direction)
	if err != nil {
		return mgl64.Vec3{}
	}

	return n.Mul(s.Radius)
}

// ComputeMass calculates mass data for the sphere
func (s *Sphere) ComputeMass(density float64) float64 {
	// Volume of sphere = (4/3) * π * r³
	volume := (4.0 / 3.0) * math.Pi * math.Pow(s.Radius, 3)

	return density * volume
}

const (
	DefaultHalfSpaceExtent    = 1000.0
	DefaultHalfSpaceThickness = 1.0
)

// HalfSpace is the solid side of a plane through the body position.
// Normal points out of the solid, in local space.
//
// A support mapping must return a finite point, so the half-space is bounded
// by a slab: Extent along both tangents, Thickness below the surface.
// Shapes going past the slab are not detected.
type HalfSpace struct {
	Normal    mgl64.Vec3
	Extent    float64
	Thickness float64
}

// NewHalfSpace creates a half-space with the default slab dimensions.
func NewHalfSpace(normal mgl64.Vec3) *HalfSpace {
	return &HalfSpace{
		Normal:    normal.Normalize(),
		Extent:    DefaultHalfSpaceExtent,
		Thickness: DefaultHalfSpaceThickness,
	}
}

// Support returns the slab corner furthest along direction.
// Directions with a positive normal component pick a corner on the surface.
func (h *HalfSpace) Support(direction mgl64.Vec3) mgl64.Vec3 {
	t1, t2 := vecmath.TangentBasis(h.Normal)

	point := t1.Mul(vecmath.Sign(direction.Dot(t1)) * h.Extent).
		Add(t2.Mul(vecmath.Sign(direction.Dot(t2)) * h.Extent))
	if direction.Dot(h.Normal) <= 0 {
		point = point.Sub(h.Normal.Mul(h.Thickness))
	}

	return point
}

// ComputeMass returns +Inf: a half-space never moves.
func (h *HalfSpace) ComputeMass(density float64) float64 {
	return math.Inf(1)
}
