package fract

import "math"

// Segment is a line segment between two points.
type Segment struct {
	P, Q Vec2
}

// Crosses returns true if the other segment crosses s.
// Basically, line intersection but looking at end points.
func (s Segment) Crosses(other Segment) bool {
	return Crosses(s.P, s.Q, other.P, other.Q)
}

func onSegment(p, q, r Vec2) bool {
	return q.X <= math.Max(p.X, r.X) && q.X >= math.Min(p.X, r.X) &&
		q.Y <= math.Max(p.Y, r.Y) && q.Y >= math.Min(p.Y, r.Y)
}

// To find orientation of ordered triplet (p, q, r).
// The function returns following values
// 0 --> p, q and r are colinear
// 1 --> Clockwise
// 2 --> Counterclockwise
func orientation(p, q, r Vec2) int {
	val := (q.Y-p.Y)*(r.X-q.X) - (q.X-p.X)*(r.Y-q.Y)
	if val == 0 {
		return 0 // colinear
	}
	if val > 0 {
		return 1 // clockwise
	}
	return 2 // counterclock wise
}

// Crosses returns true if line segment `p1`, `q1` and `p2`, `q2` crosses.
func Crosses(p1, q1, p2, q2 Vec2) bool {
	// Find the four orientations needed for general and
	// special cases
	o1 := orientation(p1, q1, p2)
	o2 := orientation(p1, q1, q2)
	o3 := orientation(p2, q2, p1)
	o4 := orientation(p2, q2, q1)

	// General case
	if o1 != o2 && o3 != o4 {
		return true
	}
	// Special Cases
	// p1, q1 and p2 are colinear and p2 lies on segment p1q1
	if o1 == 0 && onSegment(p1, p2, q1) {
		return true
	}
	// p1, q1 and q2 are colinear and q2 lies on segment p1q1
	if o2 == 0 && onSegment(p1, q2, q1) {
		return true
	}
	// p2, q2 and p1 are colinear and p1 lies on segment p2q2
	if o3 == 0 && onSegment(p2, p1, q2) {
		return true
	}
	// p2, q2 and q1 are colinear and q1 lies on segment p2q2
	if o4 == 0 && onSegment(p2, q1, q2) {
		return true
	}
	return false // Doesn't fall in any of the above cases
}

// SelfIntersects reports whether the polyline through p crosses itself.
// Segments sharing an endpoint do not count: consecutive segments are
// skipped, as are the first and last segments of a closed polyline.
func (p PointSequence) SelfIntersects() bool {
	n := p.Len() - 1 // number of segments
	closed := n > 0 && p.At(0).Add(p.At(n).Scale(-1)).Len() < 1e-9
	for i := 0; i < n; i++ {
		for j := i + 2; j < n; j++ {
			if i == 0 && j == n-1 && closed {
				continue
			}
			if Crosses(p.At(i), p.At(i+1), p.At(j), p.At(j+1)) {
				return true
			}
		}
	}
	return false
}
