package contact

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// singularPivot is the pivot magnitude under which the barycentric system is treated as singular.
const singularPivot = 1e-12

// Barycentric solves for the weights w expressing p in terms of the four vertices:
//
//	w0 + w1 + w2 + w3 = 1
//	w0*v0 + w1*v1 + w2*v2 + w3*v3 = p
//
// The 4x4 system is solved by Gaussian elimination with partial pivoting.
// ok is false when the vertices are coplanar (or nearly so) and the system is singular.
func Barycentric(vertices [4]mgl64.Vec3, p mgl64.Vec3) (weights [4]float64, ok bool) {
	m := mgl64.Mat4FromRows(
		mgl64.Vec4{1, 1, 1, 1},
		mgl64.Vec4{vertices[0].X(), vertices[1].X(), vertices[2].X(), vertices[3].X()},
		mgl64.Vec4{vertices[0].Y(), vertices[1].Y(), vertices[2].Y(), vertices[3].Y()},
		mgl64.Vec4{vertices[0].Z(), vertices[1].Z(), vertices[2].Z(), vertices[3].Z()},
	)
	rhs := mgl64.Vec4{1, p.X(), p.Y(), p.Z()}

	w, ok := solve(m, rhs)
	if !ok {
		return weights, false
	}

	for i := range weights {
		if math.IsNaN(w[i]) || math.IsInf(w[i], 0) {
			return [4]float64{}, false
		}
		weights[i] = w[i]
	}

	return weights, true
}

// solve returns x such that m * x = rhs.
func solve(m mgl64.Mat4, rhs mgl64.Vec4) (mgl64.Vec4, bool) {
	const n = 4

	// Forward elimination
	for col := 0; col < n; col++ {
		pivot := col
		for row := col + 1; row < n; row++ {
			if math.Abs(m.At(row, col)) > math.Abs(m.At(pivot, col)) {
				pivot = row
			}
		}
		if math.Abs(m.At(pivot, col)) < singularPivot {
			return mgl64.Vec4{}, false
		}

		if pivot != col {
			for k := 0; k < n; k++ {
				tmp := m.At(col, k)
				m.Set(col, k, m.At(pivot, k))
				m.Set(pivot, k, tmp)
			}
			rhs[col], rhs[pivot] = rhs[pivot], rhs[col]
		}

		for row := col + 1; row < n; row++ {
			factor := m.At(row, col) / m.At(col, col)
			if factor == 0 {
				continue
			}
			for k := col; k < n; k++ {
				m.Set(row, k, m.At(row, k)-factor*m.At(col, k))
			}
			rhs[row] -= factor * rhs[col]
		}
	}

	// Back substitution
	var x mgl64.Vec4
	for row := n - 1; row >= 0; row-- {
		sum := rhs[row]
		for k := row + 1; k < n; k++ {
			sum -= m.At(row, k) * x[k]
		}
		x[row] = sum / m.At(row, row)
	}

	return x, true
}
