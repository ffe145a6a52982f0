package softbody

// Length returns the current distance between the spring's endpoints.
func (s Spring) Length(points []Point) float64 {
	return points[s.A].Position.Distance(points[s.B].Position)
}

// applySprings accumulates damped spring forces on every spring of the body,
// in array order. A stretched spring pulls its endpoints together.
//
// A zero-length spring has no direction and yields NaN forces.
func applySprings(body *Body) {
	k := body.settings.Stiffness
	c := body.settings.Damping

	for _, s := range body.springs {
		a := body.points[s.A]
		b := body.points[s.B]

		delta := b.Position.Sub(a.Position)
		dist := delta.Mag()
		dir := delta.Scale(1 / dist)

		magnitude := k*(dist-s.RestLength) + c*dir.Dot(b.Velocity.Sub(a.Velocity))
		force := dir.Scale(magnitude)

		body.points[s.A].Force = body.points[s.A].Force.Add(force)
		body.points[s.B].Force = body.points[s.B].Force.Sub(force)
	}
}
