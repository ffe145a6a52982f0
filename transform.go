package softbody

import (
	"github.com/setanarut/vec"
)

// Transform represents a 2D affine transformation using a 2x3 matrix.
//
//	| a  b  tx |   -> X' = a * X + b * Y + tx
//	| c  d  ty |   -> Y' = c * X + d * Y + ty
//
// Shape matching uses the rotation part to turn a body's skeleton; the
// factories scale and translate lattices into the world.
type Transform struct {
	a, b, c, d, tx, ty float64
}

// NewTransformTranspose returns a new transformation matrix given row by row.
func NewTransformTranspose(a, b, tx, c, d, ty float64) Transform {
	return Transform{a, b, c, d, tx, ty}
}

// NewTransformTranslate returns a new transformation matrix with translation
func NewTransformTranslate(translate vec.Vec2) Transform {
	return NewTransformTranspose(
		1, 0, translate.X,
		0, 1, translate.Y,
	)
}

// NewTransformScale returns a new transformation with scaling.
func NewTransformScale(scaleX, scaleY float64) Transform {
	return NewTransformTranspose(
		scaleX, 0, 0,
		0, scaleY, 0,
	)
}

// NewTransformRotate returns a new rigid transformation with rotation.
//
// A positive angle turns +X towards +Y.
func NewTransformRotate(rotation float64) Transform {
	rot := vec.ForAngle(rotation)
	return NewTransformTranspose(
		rot.X, -rot.Y, 0,
		rot.Y, rot.X, 0,
	)
}

// NewTransformRigid creates a new rigid transformation that rotates and then
// translates.
func NewTransformRigid(translate vec.Vec2, rotation float64) Transform {
	rot := vec.ForAngle(rotation)
	return NewTransformTranspose(
		rot.X, -rot.Y, translate.X,
		rot.Y, rot.X, translate.Y,
	)
}

// Mult returns the transform applying t2 first and then t.
func (t Transform) Mult(t2 Transform) Transform {
	return NewTransformTranspose(
		t.a*t2.a+t.b*t2.c, t.a*t2.b+t.b*t2.d, t.a*t2.tx+t.b*t2.ty+t.tx,
		t.c*t2.a+t.d*t2.c, t.c*t2.b+t.d*t2.d, t.c*t2.tx+t.d*t2.ty+t.ty,
	)
}

// Apply transforms a point.
func (t Transform) Apply(p vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: t.a*p.X + t.b*p.Y + t.tx, Y: t.c*p.X + t.d*p.Y + t.ty}
}

// ApplyVector transforms a direction, ignoring translation.
func (t Transform) ApplyVector(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: t.a*v.X + t.b*v.Y, Y: t.c*v.X + t.d*v.Y}
}
