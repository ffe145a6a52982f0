package softbody

import (
	"fmt"
	"math"

	"github.com/setanarut/vec"
)

// BB is an axis-aligned 2D bounding box. (left, bottom, right, top)
//
// L and B hold the minimum corner, R and T the maximum corner, whatever way
// the Y axis points on screen.
type BB struct {
	L, B, R, T float64
}

// NewBB is convenience constructor for BB structs.
func NewBB(l, b, r, t float64) BB {
	return BB{
		L: l,
		B: b,
		R: r,
		T: t,
	}
}

// NewBBForPoints returns the smallest box holding every point position.
// An empty slice yields an inverted box that intersects nothing.
func NewBBForPoints(points []Point) BB {
	bb := NewBB(infinity, infinity, -infinity, -infinity)
	for i := range points {
		bb = bb.Expand(points[i].Position)
	}
	return bb
}

func (bb BB) String() string {
	return fmt.Sprintf("%v %v %v %v", bb.L, bb.B, bb.R, bb.T)
}

// Intersects returns true if a and b intersect.
//
// Two boxes are disjoint when either one's max is less than the other's min
// on some axis; touching boxes intersect.
func (bb BB) Intersects(b BB) bool {
	return bb.L <= b.R && b.L <= bb.R && bb.B <= b.T && b.B <= bb.T
}

// ContainsVect returns true if bb contains v.
func (bb BB) ContainsVect(v vec.Vec2) bool {
	return bb.L <= v.X && bb.R >= v.X && bb.B <= v.Y && bb.T >= v.Y
}

// Expand returns a bounding box that holds both bb and v.
func (bb BB) Expand(v vec.Vec2) BB {
	return BB{
		math.Min(bb.L, v.X),
		math.Min(bb.B, v.Y),
		math.Max(bb.R, v.X),
		math.Max(bb.T, v.Y),
	}
}

// Center returns the center of a bounding box.
func (bb BB) Center() vec.Vec2 {
	return vec.Vec2{X: bb.L, Y: bb.B}.Lerp(vec.Vec2{X: bb.R, Y: bb.T}, 0.5)
}

// segmentBB returns the box spanned by the segment a-b, grown by slack.
func segmentBB(a, b vec.Vec2, slack float64) BB {
	return NewBB(
		math.Min(a.X, b.X)-slack,
		math.Min(a.Y, b.Y)-slack,
		math.Max(a.X, b.X)+slack,
		math.Max(a.Y, b.Y)+slack,
	)
}
