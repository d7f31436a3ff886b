package actor

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// Extend returns the smallest AABB containing both a and point
func (a AABB) Extend(point mgl64.Vec3) AABB {
	return AABB{
		Min: mgl64.Vec3{math.Min(a.Min[0], point[0]), math.Min(a.Min[1], point[1]), math.Min(a.Min[2], point[2])},
		Max: mgl64.Vec3{math.Max(a.Max[0], point[0]), math.Max(a.Max[1], point[1]), math.Max(a.Max[2], point[2])},
	}
}

// Volume of the box, 0 when it is flat
func (a AABB) Volume() float64 {
	size := a.Max.Sub(a.Min)

	return size.X() * size.Y() * size.Z()
}
