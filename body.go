package softbody

import (
	"fmt"
	"math"
	"slices"

	"github.com/setanarut/vec"
)

// BodyType for bodies; Dynamic or Static
type BodyType uint8

const (
	// Unregistered bodies have not been handed to a Manager yet.
	Unregistered BodyType = 0
	// Dynamic bodies are integrated and respond to forces.
	Dynamic BodyType = 1
	// Static bodies never move but are still collision targets.
	Static BodyType = 2
)

func (t BodyType) String() string {
	switch t {
	case Dynamic:
		return "dynamic"
	case Static:
		return "static"
	default:
		return "unregistered"
	}
}

// Point is a point mass. Its identity is its index in the owning body.
type Point struct {
	Position vec.Vec2
	Velocity vec.Vec2
	Force    vec.Vec2 // Accumulated force, cleared after every integration
}

// Spring connects points A and B of the same body.
type Spring struct {
	A, B       int
	RestLength float64
}

// Settings are the material constants of a body.
type Settings struct {
	Stiffness         float64 // Spring and contact stiffness
	Damping           float64 // Spring damping
	Friction          float64 // Contact friction coefficient
	InverseMass       float64 // Inverse mass of every point
	SkeletonStiffness float64 // Shape matching stiffness
}

func (s Settings) validate() error {
	for _, f := range []float64{s.Stiffness, s.Damping, s.Friction, s.InverseMass, s.SkeletonStiffness} {
		if f < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("%w: %+v", ErrInvalidSettings, s)
		}
	}
	return nil
}

// Body is a deformable polygon made of point masses and springs.
//
// The first OuterSpringCount springs are the outer ring; only they take part
// in bounds, normals and containment. Structural fields never change after
// NewBody; points are mutated in place by the Manager every step.
type Body struct {
	// UserData is an object that this body is associated with.
	UserData any

	points           []Point
	springs          []Spring
	settings         Settings
	outerSpringCount int
	bodyType         BodyType

	skeleton []vec.Vec2 // Rest positions relative to the initial centroid
	bb       BB         // Bounds as of the last refresh
	normals  []vec.Vec2 // Outward normal per outer spring
}

// NewBody validates the springs and outer ring and captures the skeleton.
//
// Points and springs are copied, so no two bodies share storage.
func NewBody(settings Settings, points []Point, springs []Spring, outerSpringCount int) (*Body, error) {
	if len(points) == 0 {
		return nil, ErrNoPoints
	}
	points = slices.Clone(points)
	springs = slices.Clone(springs)
	if err := settings.validate(); err != nil {
		return nil, err
	}
	for i, s := range springs {
		if s.A < 0 || s.A >= len(points) || s.B < 0 || s.B >= len(points) {
			return nil, fmt.Errorf("%w: spring %d (%d, %d) with %d points", ErrSpringIndex, i, s.A, s.B, len(points))
		}
	}
	if outerSpringCount < 0 || outerSpringCount > len(springs) {
		return nil, fmt.Errorf("%w: %d of %d springs", ErrOuterSpringCount, outerSpringCount, len(springs))
	}
	if outerSpringCount > 0 {
		if err := validateRing(points, springs[:outerSpringCount]); err != nil {
			return nil, err
		}
	}

	body := &Body{
		points:           points,
		springs:          springs,
		settings:         settings,
		outerSpringCount: outerSpringCount,
		skeleton:         make([]vec.Vec2, len(points)),
		normals:          make([]vec.Vec2, outerSpringCount),
	}

	centroid := body.Centroid()
	for i := range points {
		body.skeleton[i] = points[i].Position.Sub(centroid)
	}
	body.bb = NewBBForPoints(points)
	body.updateNormals()
	return body, nil
}

// MustBody is like NewBody but panics on invalid input.
func MustBody(settings Settings, points []Point, springs []Spring, outerSpringCount int) *Body {
	body, err := NewBody(settings, points, springs, outerSpringCount)
	if err != nil {
		panic(err)
	}
	return body
}

func (b Body) String() string {
	return fmt.Sprint("Body ", b.bodyType, ", Points ", len(b.points), ", Springs ", len(b.springs))
}

// Points returns the point array. Positions and velocities may be read for
// rendering; the Manager owns mutation.
func (b *Body) Points() []Point {
	return b.points
}

// Springs returns the spring array.
func (b *Body) Springs() []Spring {
	return b.springs
}

// OuterSprings returns the springs forming the outer ring.
func (b *Body) OuterSprings() []Spring {
	return b.springs[:b.outerSpringCount]
}

func (b *Body) OuterSpringCount() int {
	return b.outerSpringCount
}

func (b *Body) Settings() Settings {
	return b.settings
}

// Type returns how the body was registered.
func (b *Body) Type() BodyType {
	return b.bodyType
}

// Skeleton returns the rest shape relative to the initial centroid.
func (b *Body) Skeleton() []vec.Vec2 {
	return b.skeleton
}

// BB returns the bounds as of the last refresh.
func (b *Body) BB() BB {
	return b.bb
}

// Normals returns the outward normals of the outer springs as of the last
// refresh.
func (b *Body) Normals() []vec.Vec2 {
	return b.normals
}

// Centroid returns the mean of all point positions.
func (b *Body) Centroid() vec.Vec2 {
	var sum vec.Vec2
	for i := range b.points {
		sum = sum.Add(b.points[i].Position)
	}
	return sum.Scale(1 / float64(len(b.points)))
}

// Translate moves every point by delta and stops it.
func (b *Body) Translate(delta vec.Vec2) {
	for i := range b.points {
		b.points[i].Position = b.points[i].Position.Add(delta)
		b.points[i].Velocity = vec.Vec2{}
	}
}

func (b *Body) updateBB() {
	b.bb = NewBBForPoints(b.points)
}

// updateNormals recomputes the outward normal of every outer spring from the
// current positions. The ring's winding decides the sign.
func (b *Body) updateNormals() {
	for i := 0; i < b.outerSpringCount; i++ {
		s := b.springs[i]
		p := b.points[s.A].Position
		q := b.points[s.B].Position
		b.normals[i] = vec.Vec2{X: p.Y - q.Y, Y: q.X - p.X}.Unit()
	}
}
