package softbody

import (
	"errors"
	"math"

	"github.com/setanarut/vec"
)

const (
	infinity     float64 = math.MaxFloat64
	magicEpsilon float64 = 1e-5

	// segmentSlack widens an edge's box in the ray-cast hit test so a hit
	// computed as p + (edge - p) still lands on the edge after rounding.
	segmentSlack float64 = 1e-9

	// IgnoreCollisionThreshold is the penetration depth below which a contact
	// produces no response. It keeps resting contact from jittering.
	IgnoreCollisionThreshold float64 = 0.001
)

// DefaultGravity is the acceleration applied to every dynamic point.
//
// The engine works in screen coordinates (+Y down), so "down" is +Y. The
// magnitude is 9.81 in position units per second squared, whatever those
// units are.
var DefaultGravity = vec.Vec2{X: 0, Y: 9.81}

// rayDirection is the fixed direction of the containment ray.
var rayDirection = vec.Vec2{X: 1, Y: 0}

var (
	ErrNoPoints          = errors.New("softbody: body needs at least one point")
	ErrSpringIndex       = errors.New("softbody: spring index out of range")
	ErrOuterSpringCount  = errors.New("softbody: outer spring count out of range")
	ErrOuterRing         = errors.New("softbody: outer springs do not form a simple closed ring")
	ErrWinding           = errors.New("softbody: outer ring has the wrong winding")
	ErrAlreadyRegistered = errors.New("softbody: body is already registered")
	ErrNilBody           = errors.New("softbody: nil body")
	ErrInvalidSettings   = errors.New("softbody: invalid settings")
)

// InvariantViolation is the panic value raised when two collision queries
// disagree about the same point: the ray cast classified it as inside a body
// but no boundary edge has the point on its interior side.
type InvariantViolation struct {
	Point vec.Vec2
	Body  *Body
}

func (e InvariantViolation) Error() string {
	return "softbody: point classified inside body has no penetrated edge"
}

// sign returns -1, 0 or 1.
func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
