package feature

import "math"

// Closed reports whether the ring's first and last points coincide exactly.
func Closed(r Ring) bool {
	if len(r) < 2 {
		return false
	}
	return r[0][0] == r[len(r)-1][0] && r[0][1] == r[len(r)-1][1]
}

// Close appends the first point if the ring isn't already closed.
func Close(r Ring) Ring {
	if Closed(r) {
		return r
	}
	out := make(Ring, len(r)+1)
	copy(out, r)
	out[len(r)] = r[0]
	return out
}

// SignedArea computes the ring's signed area via the shoelace formula.
// Positive for counter-clockwise rings, negative for clockwise.
func SignedArea(r Ring) float64 {
	if len(r) < 3 {
		return 0
	}
	var sum float64
	n := len(r)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += r[i][0]*r[j][1] - r[j][0]*r[i][1]
	}
	return sum / 2
}

// Area returns the ring's absolute area.
func Area(r Ring) float64 {
	return math.Abs(SignedArea(r))
}

// PointInRing reports whether pt lies inside r using the standard
// ray-casting even-odd test. Points exactly on an edge may go either way;
// the tracer never relies on that boundary case.
func PointInRing(pt Pt, r Ring) bool {
	inside := false
	n := len(r)
	if n < 3 {
		return false
	}
	j := n - 1
	for i := 0; i < n; i++ {
		xi, yi := r[i][0], r[i][1]
		xj, yj := r[j][0], r[j][1]
		if (yi > pt[1]) != (yj > pt[1]) {
			x := xi + (pt[1]-yi)/(yj-yi)*(xj-xi)
			if pt[0] < x {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}
