package softbody

import (
	"fmt"
	"math"

	"github.com/setanarut/vec"
)

// diagonalRestScale is the rest length of a grid's diagonal springs relative
// to the lattice step. It is deliberately longer than √2 so the diagonals
// push the lattice outward slightly.
const diagonalRestScale = 1.44444

// GridSettings are the material constants of a lattice body.
var GridSettings = Settings{
	Stiffness:         50,
	Damping:           10,
	Friction:          0.01,
	InverseMass:       1,
	SkeletonStiffness: 30,
}

// RingSettings are the material constants of a ring body.
var RingSettings = Settings{
	Stiffness:         100,
	Damping:           100,
	Friction:          0.01,
	InverseMass:       1,
	SkeletonStiffness: 200,
}

// ObstacleSettings are the material constants of a static obstacle.
var ObstacleSettings = Settings{
	Stiffness:   1000,
	Damping:     0.4,
	Friction:    0.1,
	InverseMass: 1,
}

// NewGridBody returns a w×h lattice of points spaced step apart, with its
// first point at offset.
//
// Parameters:
//   - w, h: The number of points per row and per column, both at least 2.
//   - step: The lattice spacing.
//   - offset: The position of the top-left point.
//   - s: The material constants.
//
// The outer ring comes first (top row, bottom row, left column, right
// column), then the interior structural springs, then both diagonal
// families.
func NewGridBody(w, h int, step float64, offset vec.Vec2, s Settings) (*Body, error) {
	if w < 2 || h < 2 {
		return nil, fmt.Errorf("%w: grid %dx%d", ErrOuterRing, w, h)
	}

	t := NewTransformTranslate(offset).Mult(NewTransformScale(step, step))
	points := make([]Point, w*h)
	for y := range h {
		for x := range w {
			points[y*w+x] = Point{Position: t.Apply(vec.Vec2{X: float64(x), Y: float64(y)})}
		}
	}

	at := func(x, y int) int { return y*w + x }
	diag := step * diagonalRestScale
	springs := make([]Spring, 0, h*(w-1)+w*(h-1)+2*(w-1)*(h-1))

	for x := 0; x < w-1; x++ {
		springs = append(springs, Spring{at(x+1, 0), at(x, 0), step})
	}
	for x := 0; x < w-1; x++ {
		springs = append(springs, Spring{at(x, h-1), at(x+1, h-1), step})
	}
	for y := 0; y < h-1; y++ {
		springs = append(springs, Spring{at(0, y), at(0, y+1), step})
	}
	for y := 0; y < h-1; y++ {
		springs = append(springs, Spring{at(w-1, y+1), at(w-1, y), step})
	}
	outer := len(springs)

	for y := 0; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			springs = append(springs, Spring{at(x, y), at(x, y+1), step})
		}
	}
	for y := 1; y < h-1; y++ {
		for x := 0; x < w-1; x++ {
			springs = append(springs, Spring{at(x, y), at(x+1, y), step})
		}
	}
	for y := 0; y < h-1; y++ {
		for x := 0; x < w-1; x++ {
			springs = append(springs, Spring{at(x, y), at(x+1, y+1), diag})
		}
	}
	for y := 0; y < h-1; y++ {
		for x := 1; x < w; x++ {
			springs = append(springs, Spring{at(x, y), at(x-1, y+1), diag})
		}
	}

	return NewBody(s, points, springs, outer)
}

// NewRingBody returns a regular n-gon of the given radius centred on offset,
// with boundary springs only.
func NewRingBody(n int, radius float64, offset vec.Vec2, s Settings) (*Body, error) {
	if n < 3 {
		return nil, fmt.Errorf("%w: ring of %d points", ErrOuterRing, n)
	}

	step := 2 * math.Pi / float64(n)
	points := make([]Point, n)
	for i := range n {
		t := NewTransformRigid(offset, -float64(i)*step)
		points[i] = Point{Position: t.Apply(vec.Vec2{X: radius})}
	}

	rest := 2 * math.Sin(0.5*step) * radius
	springs := make([]Spring, n)
	for i := range n {
		springs[i] = Spring{i, (i + 1) % n, rest}
	}

	return NewBody(s, points, springs, n)
}

// NewQuadBody returns a closed quadrilateral with four boundary springs.
//
// The corners may be given in either winding; they are reversed if needed so
// the normals point outward.
func NewQuadBody(a, b, c, d vec.Vec2, s Settings) (*Body, error) {
	verts := []vec.Vec2{a, b, c, d}
	if ringArea(verts) > 0 {
		verts[1], verts[3] = verts[3], verts[1]
	}

	points := make([]Point, len(verts))
	for i, v := range verts {
		points[i] = Point{Position: v}
	}
	springs := []Spring{
		{A: 0, B: 1},
		{A: 1, B: 2},
		{A: 2, B: 3},
		{A: 3, B: 0},
	}
	return NewBody(s, points, springs, len(springs))
}

// NewBoxWalls returns the four walls of a w×h frame of the given thickness:
// left, bottom, right and top.
func NewBoxWalls(w, h, thickness float64, s Settings) ([]*Body, error) {
	d := thickness
	corners := [][4]vec.Vec2{
		{{X: 0, Y: d}, {X: 0, Y: h - d}, {X: d, Y: h - d}, {X: d, Y: d}},
		{{X: 0, Y: h - d}, {X: 0, Y: h}, {X: w, Y: h}, {X: w, Y: h - d}},
		{{X: w - d, Y: h - d}, {X: w, Y: h - d}, {X: w, Y: d}, {X: w - d, Y: d}},
		{{X: 0, Y: 0}, {X: 0, Y: d}, {X: w, Y: d}, {X: w, Y: 0}},
	}

	walls := make([]*Body, 0, len(corners))
	for _, c := range corners {
		wall, err := NewQuadBody(c[0], c[1], c[2], c[3], s)
		if err != nil {
			return nil, err
		}
		walls = append(walls, wall)
	}
	return walls, nil
}
