package softbody

import (
	"math"

	"github.com/setanarut/vec"
)

// ContainsPoint reports whether p lies inside the body's outer polygon, as of
// the last bounds and normal refresh.
//
// A ray is cast along +X and crossings with the outer springs are counted;
// an odd count means inside. Edges nearly parallel to the ray are skipped.
// Points exactly on the boundary may go either way.
func (b *Body) ContainsPoint(p vec.Vec2) bool {
	if !b.bb.ContainsVect(p) {
		return false
	}

	count := 0
	for i := 0; i < b.outerSpringCount; i++ {
		s := b.springs[i]
		a := b.points[s.A].Position
		c := b.points[s.B].Position
		n := b.normals[i]

		denom := rayDirection.Dot(n)
		if math.Abs(denom) < magicEpsilon {
			continue
		}

		t := a.Sub(p).Dot(n) / denom
		if t < 0 {
			continue
		}

		hit := p.Add(rayDirection.Scale(t))
		if !segmentBB(a, c, segmentSlack).ContainsVect(hit) {
			continue
		}
		count++
	}
	return count%2 == 1
}

// ClosestEdge returns the outer spring nearest to p among those that have p
// on their interior side, and p's depth behind it.
//
// It returns -1 and infinity when no edge qualifies, which can only happen
// for points outside the body. On ties the later edge wins.
func (b *Body) ClosestEdge(p vec.Vec2) (index int, depth float64) {
	index = -1
	depth = infinity
	for i := 0; i < b.outerSpringCount; i++ {
		a := b.points[b.springs[i].A].Position
		d := p.Sub(a).Dot(b.normals[i])
		if d > 0 {
			continue
		}
		d = math.Abs(d)
		if d > depth {
			continue
		}
		depth = d
		index = i
	}
	return index, depth
}

// combinedFriction returns sqrt(fa² + fb²).
func combinedFriction(a, b *Body) float64 {
	return math.Hypot(a.settings.Friction, b.settings.Friction)
}

// solveCollision pushes the points of a that are inside b back out along b's
// nearest edge normal. Only a's points receive force; b is read-only.
func solveCollision(a, b *Body) {
	if !a.bb.Intersects(b.bb) {
		return
	}

	for i := range a.points {
		pt := a.points[i]
		if !b.ContainsPoint(pt.Position) {
			continue
		}

		edge, depth := b.ClosestEdge(pt.Position)
		if edge < 0 {
			panic(InvariantViolation{Point: pt.Position, Body: b})
		}
		if depth < IgnoreCollisionThreshold {
			continue
		}

		n := b.normals[edge]
		if n.Dot(pt.Velocity) > 0 {
			continue
		}

		a.points[i].Force = a.points[i].Force.Add(contactForce(a, b, pt, edge, depth))
	}
}

// contactForce is the penalty force on pt penetrating b's outer spring edge
// at the given depth: a normal push proportional to depth plus a friction
// term opposing the tangential velocity relative to the edge.
func contactForce(a, b *Body, pt Point, edge int, depth float64) vec.Vec2 {
	n := b.normals[edge]
	s := b.springs[edge]
	edgeVel := b.points[s.A].Velocity.Add(b.points[s.B].Velocity).Scale(0.5)
	relVel := pt.Velocity.Sub(edgeVel)
	tangent := vec.Vec2{X: n.Y, Y: -n.X}

	normalForce := (a.settings.Stiffness + b.settings.Stiffness) * depth
	frictionForce := normalForce * combinedFriction(a, b) * sign(n.Cross(relVel))

	return n.Scale(normalForce).Add(tangent.Scale(frictionForce))
}
