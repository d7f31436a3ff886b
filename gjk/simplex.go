package gjk

import (
	"sync"

	"github.com/go-gl/mathgl/mgl64"
)

// MinkowskiSample is a point of the Minkowski difference A - B along with the
// two support points it was built from. The source points are kept so the
// contact point can be rebuilt on each shape once the query is over.
type MinkowskiSample struct {
	Point mgl64.Vec3 // A - B
	A     mgl64.Vec3 // support point on shape A, world space
	B     mgl64.Vec3 // support point on shape B, world space
}

// Simplex represents a set of 1-4 samples in the Minkowski difference space.
// Samples are kept in insertion order: the most recent one is last.
// Size progression: 1 point → 2 points (line) → 3 points (triangle) → 4 points (tetrahedron)
type Simplex struct {
	samples [4]MinkowskiSample
	count   int
}

var SimplexPool = sync.Pool{
	New: func() interface{} {
		return &Simplex{}
	},
}

func (s *Simplex) Reset() {
	s.count = 0
}

// Len returns the number of samples held
func (s *Simplex) Len() int {
	return s.count
}

// Push appends a sample. A fifth sample is an invariant breach and panics.
func (s *Simplex) Push(sample MinkowskiSample) {
	if s.count == len(s.samples) {
		panic("gjk: simplex already holds 4 samples")
	}

	s.samples[s.count] = sample
	s.count++
}

// At returns the i-th oldest sample
func (s *Simplex) At(i int) MinkowskiSample {
	if i < 0 || i >= s.count {
		panic("gjk: simplex index out of range")
	}
	return s.samples[i]
}

// Point returns the Minkowski point of the i-th oldest sample
func (s *Simplex) Point(i int) mgl64.Vec3 {
	return s.At(i).Point
}

// Last returns the most recently added sample
func (s *Simplex) Last() MinkowskiSample {
	return s.At(s.count - 1)
}

// RemoveAt drops the i-th sample and shifts the newer ones down, preserving order.
// Removing by position keeps two samples with equal points but different sources apart.
func (s *Simplex) RemoveAt(i int) {
	if i < 0 || i >= s.count {
		panic("gjk: simplex index out of range")
	}

	copy(s.samples[i:s.count], s.samples[i+1:s.count])
	s.count--
}

// Samples returns a copy of the held samples, oldest first
func (s *Simplex) Samples() []MinkowskiSample {
	out := make([]MinkowskiSample, s.count)
	copy(out, s.samples[:s.count])

	return out
}
