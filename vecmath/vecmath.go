// Package vecmath extends mgl64 with the vector identities used by the collision core.
//
// All helpers take and return values: no function mutates its arguments.
package vecmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
)

// ErrUndefinedDirection is returned when a zero-length vector is normalized.
var ErrUndefinedDirection = errors.New("vecmath: undefined direction")

// Epsilon is the squared length under which a vector is considered zero.
const Epsilon = 1e-18

// Normalize returns v scaled to unit length.
// A zero vector has no direction and fails with ErrUndefinedDirection.
func Normalize(v mgl64.Vec3) (mgl64.Vec3, error) {
	lenSqr := v.LenSqr()
	if lenSqr < Epsilon {
		return mgl64.Vec3{}, ErrUndefinedDirection
	}

	return v.Mul(1.0 / math.Sqrt(lenSqr)), nil
}

// ProjectLength returns the signed length of v along onto.
// onto does not need to be normalized; a zero onto yields 0.
func ProjectLength(v, onto mgl64.Vec3) float64 {
	lenSqr := onto.LenSqr()
	if lenSqr < Epsilon {
		return 0
	}

	return v.Dot(onto) / math.Sqrt(lenSqr)
}

// Project returns the vector projection of v onto the line spanned by onto.
func Project(v, onto mgl64.Vec3) mgl64.Vec3 {
	lenSqr := onto.LenSqr()
	if lenSqr < Epsilon {
		return mgl64.Vec3{}
	}

	return onto.Mul(v.Dot(onto) / lenSqr)
}

// ProjectPlane returns the projection of v onto the plane spanned by e1 and e2.
// e1 and e2 must be orthogonal, they do not need to be normalized.
func ProjectPlane(v, e1, e2 mgl64.Vec3) mgl64.Vec3 {
	return Project(v, e1).Add(Project(v, e2))
}

// TripleProduct computes (a × b) × c without the two intermediate cross products:
//
//	(a × b) × c = b(a·c) - a(b·c)
func TripleProduct(a, b, c mgl64.Vec3) mgl64.Vec3 {
	return b.Mul(a.Dot(c)).Sub(a.Mul(b.Dot(c)))
}

// DoubleCross computes a × (b × c) as b(a·c) - c(a·b).
//
// With a = c = ab and b = ao, DoubleCross(ab, ao, ab) is the component of ao
// perpendicular to ab, scaled by |ab|², pointing toward ao.
func DoubleCross(a, b, c mgl64.Vec3) mgl64.Vec3 {
	return b.Mul(a.Dot(c)).Sub(c.Mul(a.Dot(b)))
}

// AnyPerpendicular returns a vector orthogonal to v, crossing v with the
// world axis it is least aligned with. The result is not normalized.
func AnyPerpendicular(v mgl64.Vec3) mgl64.Vec3 {
	ax, ay, az := math.Abs(v.X()), math.Abs(v.Y()), math.Abs(v.Z())

	axis := mgl64.Vec3{1, 0, 0}
	if ay < ax && ay <= az {
		axis = mgl64.Vec3{0, 1, 0}
	} else if az < ax && az < ay {
		axis = mgl64.Vec3{0, 0, 1}
	}

	return v.Cross(axis)
}

// Sign returns -1 for negative values and 1 otherwise.
func Sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}

// TangentBasis returns two unit vectors that, with the unit normal n,
// form a right-handed orthonormal basis.
func TangentBasis(n mgl64.Vec3) (mgl64.Vec3, mgl64.Vec3) {
	var tangent1 mgl64.Vec3
	if math.Abs(n.X()) > 0.9 {
		tangent1 = mgl64.Vec3{0, 1, 0}
	} else {
		tangent1 = mgl64.Vec3{1, 0, 0}
	}

	tangent1 = tangent1.Sub(Project(tangent1, n)).Normalize()
	tangent2 := n.Cross(tangent1).Normalize()

	return tangent1, tangent2
}
