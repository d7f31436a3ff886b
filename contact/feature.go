package contact

import (
	"math"

	"github.com/akmonengine/collide/vecmath"
	"github.com/go-gl/mathgl/mgl64"
)

// closestFeature finds the vertex, edge or face of the simplex nearest the origin.
// It returns one weight per point: the nearest point is Σ weights[i] * points[i],
// with non-zero weights only on the vertices of the chosen feature.
func closestFeature(points []mgl64.Vec3) [4]float64 {
	var best [4]float64
	bestDistance := math.Inf(1)

	consider := func(weights [4]float64) {
		var p mgl64.Vec3
		for i, pt := range points {
			p = p.Add(pt.Mul(weights[i]))
		}
		if d := p.LenSqr(); d < bestDistance {
			bestDistance = d
			best = weights
		}
	}

	n := len(points)
	for i := 0; i < n; i++ {
		var w [4]float64
		w[i] = 1
		consider(w)
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			t := closestOnSegment(points[i], points[j])
			var w [4]float64
			w[i], w[j] = 1-t, t
			consider(w)
		}
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			for k := j + 1; k < n; k++ {
				u, v, wk, ok := closestOnTriangle(points[i], points[j], points[k])
				if !ok {
					continue
				}
				var w [4]float64
				w[i], w[j], w[k] = u, v, wk
				consider(w)
			}
		}
	}

	return best
}

// closestOnSegment returns t in [0, 1] such that a + t(b - a) is nearest the origin.
func closestOnSegment(a, b mgl64.Vec3) float64 {
	ab := b.Sub(a)
	length := ab.Len()
	if length < 1e-12 {
		return 0
	}

	return mgl64.Clamp(vecmath.ProjectLength(a.Mul(-1), ab)/length, 0, 1)
}

// closestOnTriangle returns the barycentric weights of the point of triangle abc nearest the origin.
// Voronoi region walk from Ericson, "Real-Time Collision Detection" §5.1.5.
// ok is false for a degenerate triangle: its edges already cover it.
func closestOnTriangle(a, b, c mgl64.Vec3) (u, v, w float64, ok bool) {
	ab := b.Sub(a)
	ac := c.Sub(a)
	if ab.Cross(ac).LenSqr() < 1e-24 {
		return 0, 0, 0, false
	}

	ap := a.Mul(-1)
	d1 := ab.Dot(ap)
	d2 := ac.Dot(ap)
	if d1 <= 0 && d2 <= 0 {
		return 1, 0, 0, true // vertex a
	}

	bp := b.Mul(-1)
	d3 := ab.Dot(bp)
	d4 := ac.Dot(bp)
	if d3 >= 0 && d4 <= d3 {
		return 0, 1, 0, true // vertex b
	}

	vc := d1*d4 - d3*d2
	if vc <= 0 && d1 >= 0 && d3 <= 0 {
		t := d1 / (d1 - d3)
		return 1 - t, t, 0, true // edge ab
	}

	cp := c.Mul(-1)
	d5 := ab.Dot(cp)
	d6 := ac.Dot(cp)
	if d6 >= 0 && d5 <= d6 {
		return 0, 0, 1, true // vertex c
	}

	vb := d5*d2 - d1*d6
	if vb <= 0 && d2 >= 0 && d6 <= 0 {
		t := d2 / (d2 - d6)
		return 1 - t, 0, t, true // edge ac
	}

	va := d3*d6 - d5*d4
	if va <= 0 && (d4-d3) >= 0 && (d5-d6) >= 0 {
		t := (d4 - d3) / ((d4 - d3) + (d5 - d6))
		return 0, 1 - t, t, true // edge bc
	}

	// Face region
	denom := 1 / (va + vb + vc)
	v = vb * denom
	w = vc * denom
	return 1 - v - w, v, w, true
}
