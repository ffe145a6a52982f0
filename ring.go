package softbody

import (
	"fmt"

	"github.com/peterstace/simplefeatures/geom"
	"github.com/setanarut/vec"
)

// validateRing checks that the outer springs chain into a single closed,
// non-self-intersecting cycle whose normals point outward.
//
// The springs need not be listed in ring order: following each spring's B
// end to the spring that starts there must visit every outer spring once
// and come back to the first.
func validateRing(points []Point, outer []Spring) error {
	if len(outer) < 3 {
		return fmt.Errorf("%w: %d edges", ErrOuterRing, len(outer))
	}

	next := make(map[int]int, len(outer))
	for i, s := range outer {
		if s.A == s.B {
			return fmt.Errorf("%w: spring %d is a loop", ErrOuterRing, i)
		}
		if points[s.A].Position.Equal(points[s.B].Position) {
			return fmt.Errorf("%w: spring %d has zero length", ErrOuterRing, i)
		}
		if _, ok := next[s.A]; ok {
			return fmt.Errorf("%w: point %d starts two outer springs", ErrOuterRing, s.A)
		}
		next[s.A] = i
	}

	coords := make([]float64, 0, 2*(len(outer)+1))
	visited := make([]bool, len(outer))
	cur := 0
	for range outer {
		if visited[cur] {
			return fmt.Errorf("%w: outer springs form more than one cycle", ErrOuterRing)
		}
		visited[cur] = true
		s := outer[cur]
		p := points[s.A].Position
		coords = append(coords, p.X, p.Y)
		n, ok := next[s.B]
		if !ok {
			return fmt.Errorf("%w: point %d ends an outer spring but starts none", ErrOuterRing, s.B)
		}
		cur = n
	}
	if cur != 0 {
		return fmt.Errorf("%w: outer springs do not close", ErrOuterRing)
	}
	first := points[outer[0].A].Position
	coords = append(coords, first.X, first.Y)

	ls, err := geom.NewLineString(geom.NewSequence(coords, geom.DimXY))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrOuterRing, err)
	}
	if !ls.IsRing() {
		return fmt.Errorf("%w: ring is self-intersecting", ErrOuterRing)
	}

	if signedArea(points, outer) >= 0 {
		return ErrWinding
	}
	return nil
}

// signedArea returns twice the signed area enclosed by the ring, computed
// edge by edge so that ring order does not matter.
//
// Rings whose normals point outward have negative area.
func signedArea(points []Point, outer []Spring) float64 {
	var area float64
	for _, s := range outer {
		area += points[s.A].Position.Cross(points[s.B].Position)
	}
	return area
}

// ringArea is a convenience for callers holding plain vertices in ring order.
func ringArea(verts []vec.Vec2) float64 {
	var area float64
	for i := range verts {
		area += verts[i].Cross(verts[(i+1)%len(verts)])
	}
	return area
}
