package softbody_test

import (
	"testing"

	"github.com/setanarut/softbody"
	"github.com/setanarut/vec"
)

func TestBBForPointsHoldsEveryPoint(t *testing.T) {
	points := []softbody.Point{
		{Position: vec.Vec2{X: 3, Y: -2}},
		{Position: vec.Vec2{X: -1, Y: 7}},
		{Position: vec.Vec2{X: 5, Y: 1}},
	}
	bb := softbody.NewBBForPoints(points)
	if got, want := bb.String(), softbody.NewBB(-1, -2, 5, 7).String(); got != want {
		t.Errorf("got [%v] want [%v]", got, want)
	}
	for _, p := range points {
		if !bb.ContainsVect(p.Position) {
			t.Errorf("%v outside %v", p.Position, bb)
		}
	}
}

func TestBBIntersects(t *testing.T) {
	a := softbody.NewBB(0, 0, 10, 10)
	cases := []struct {
		b    softbody.BB
		want bool
	}{
		{softbody.NewBB(5, 5, 15, 15), true},
		{softbody.NewBB(10, 10, 20, 20), true},
		{softbody.NewBB(11, 0, 20, 10), false},
		{softbody.NewBB(0, -20, 10, -1), false},
		{softbody.NewBB(2, 2, 3, 3), true},
	}
	for _, c := range cases {
		if got := a.Intersects(c.b); got != c.want {
			t.Errorf("%v intersects %v: got %v want %v", a, c.b, got, c.want)
		}
		if got := c.b.Intersects(a); got != c.want {
			t.Errorf("%v intersects %v: got %v want %v", c.b, a, got, c.want)
		}
	}
}

func TestBBCenter(t *testing.T) {
	c := softbody.NewBB(-2, 0, 4, 10).Center()
	if c.X != 1 || c.Y != 5 {
		t.Errorf("got %v want (1, 5)", c)
	}
}

func TestBodyBoundsAfterStep(t *testing.T) {
	m := newDropScene(t)
	for range 200 {
		m.Step(0.005)
		m.EachBody(func(b *softbody.Body) {
			bb := b.BB()
			if bb.L > bb.R || bb.B > bb.T {
				t.Fatalf("inverted bounds %v", bb)
			}
		})
	}
	// Bounds are refreshed at the start of a step, so step once more with a
	// zero dt to line them up with the current positions.
	m.Step(0)
	m.EachBody(func(b *softbody.Body) {
		bb := b.BB()
		for _, p := range b.Points() {
			if !bb.ContainsVect(p.Position) {
				t.Errorf("%v outside %v", p.Position, bb)
			}
		}
	})
}
