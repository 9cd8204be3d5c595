package interpolate

import (
	"math"
)

// searcher finds the grid interval containing a value. xs must be strictly
// increasing.
type searcher struct {
	xs          []float64
	x0, dx, lim float64
	n           int
	unif        bool
}

func (s *searcher) init(xs []float64) {
	s.xs = xs
	s.x0 = xs[0]
	s.lim = xs[len(xs)-1]
	s.n = len(xs)
	s.unif = false
	if s.n > 1 {
		s.dx = (s.lim - s.x0) / float64(s.n-1)
	} else {
		s.dx = 0
	}
}

// unifInit sets up a searcher over x0 + i*dx. xs must hold the same values;
// it is only used to resolve rounding at interval edges.
func (s *searcher) unifInit(x0, dx float64, xs []float64) {
	s.xs = xs
	s.x0 = x0
	s.lim = xs[len(xs)-1]
	s.dx = dx
	s.n = len(xs)
	s.unif = true
}

// search returns the largest index i with xs[i] <= x. x must lie within
// [xs[0], xs[n-1]]. NaN maps to 0.
func (s *searcher) search(x float64) int {
	if s.n == 1 || !(x > s.x0) {
		return 0
	} else if x >= s.lim {
		return s.n - 1
	}

	if s.unif {
		idx := s.clamp((x - s.x0) / s.dx)
		// Rounding in (x - x0) / dx can put us one cell off.
		if s.xs[idx] > x {
			idx--
		} else if s.xs[idx+1] <= x {
			idx++
		}
		return idx
	}

	// Guess under the assumption of uniform spacing.
	guess := s.clamp((x - s.x0) / s.dx)
	if s.xs[guess] <= x && s.xs[guess+1] > x {
		return guess
	}

	// Binary search.
	lo, hi := 0, s.n-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if x >= s.xs[mid] {
			lo = mid
		} else {
			hi = mid
		}
	}

	return lo
}

// clamp converts a fractional index guess to an interval index in
// [0, n-2].
func (s *searcher) clamp(f float64) int {
	if math.IsNaN(f) || f < 0 {
		return 0
	} else if f > float64(s.n-2) {
		return s.n - 2
	}
	return int(f)
}

func (s *searcher) val(i int) float64 {
	return s.xs[i]
}
