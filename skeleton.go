package softbody

import (
	"math"

	"github.com/setanarut/vec"
)

// Rotation returns the body's estimated rotation away from its skeleton, in
// radians.
//
// It is the arithmetic mean of each point's angle from its skeleton direction
// to its current direction around the current centroid: an approximation of
// a best-fit rotation, not a least-squares one. Points sitting on either
// centroid have no direction and are left out of the mean.
func (b *Body) Rotation() float64 {
	return b.rotationAbout(b.Centroid())
}

func (b *Body) rotationAbout(centroid vec.Vec2) float64 {
	var angle float64
	counted := 0
	for i := range b.points {
		from := b.skeleton[i]
		to := b.points[i].Position.Sub(centroid)
		if from.LengthSq() == 0 || to.LengthSq() == 0 {
			continue
		}
		from, to = from.Unit(), to.Unit()
		angle += math.Atan2(from.Cross(to), from.Dot(to))
		counted++
	}
	if counted == 0 {
		return 0
	}
	return angle / float64(counted)
}

// matchShape pulls every point towards the skeleton rotated to follow the
// body, with a force proportional to SkeletonStiffness.
func matchShape(body *Body) {
	centroid := body.Centroid()
	rot := NewTransformRotate(body.rotationAbout(centroid))
	k := body.settings.SkeletonStiffness

	for i := range body.points {
		target := rot.ApplyVector(body.skeleton[i])
		current := body.points[i].Position.Sub(centroid)
		body.points[i].Force = body.points[i].Force.Add(target.Sub(current).Scale(k))
	}
}
