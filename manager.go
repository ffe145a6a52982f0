package softbody

import (
	"fmt"

	"github.com/setanarut/vec"
)

// Manager owns the registered bodies and advances them one step at a time.
//
// Dynamic bodies are simulated; static bodies never move but are still
// collision targets. Iteration order is DynamicBodies front to back, then
// StaticBodies. That order decides force accumulation order and which body
// wins a pointer query, so results are reproducible only if it is kept.
//
// A Manager is not safe for concurrent use.
type Manager struct {
	// UserData is an object that this manager is associated with.
	UserData any

	// Gravity is the acceleration added to every dynamic point each step.
	Gravity vec.Vec2

	// DynamicBodies are most recently registered first.
	DynamicBodies []*Body
	// StaticBodies are in registration order.
	StaticBodies []*Body

	ticks uint64
}

// NewManager returns an empty manager with DefaultGravity.
func NewManager() *Manager {
	return &Manager{
		Gravity: DefaultGravity,
	}
}

// DynamicBodyCount returns the number of dynamic bodies.
func (m *Manager) DynamicBodyCount() int {
	return len(m.DynamicBodies)
}

// StaticBodyCount returns the number of static bodies.
func (m *Manager) StaticBodyCount() int {
	return len(m.StaticBodies)
}

// BodyCount returns the number of registered bodies.
func (m *Manager) BodyCount() int {
	return len(m.DynamicBodies) + len(m.StaticBodies)
}

// Ticks returns the number of completed steps.
func (m *Manager) Ticks() uint64 {
	return m.ticks
}

func (m *Manager) register(body *Body, t BodyType) error {
	if body == nil {
		return ErrNilBody
	}
	if body.bodyType != Unregistered {
		return fmt.Errorf("%w as %v", ErrAlreadyRegistered, body.bodyType)
	}
	body.bodyType = t
	return nil
}

// RegisterDynamic adds body as a simulated body. It goes to the front of the
// iteration order.
func (m *Manager) RegisterDynamic(body *Body) error {
	if err := m.register(body, Dynamic); err != nil {
		return err
	}
	m.DynamicBodies = append([]*Body{body}, m.DynamicBodies...)
	return nil
}

// RegisterStatic adds body as an immovable obstacle. It goes to the back of
// the iteration order.
func (m *Manager) RegisterStatic(body *Body) error {
	if err := m.register(body, Static); err != nil {
		return err
	}
	m.StaticBodies = append(m.StaticBodies, body)
	return nil
}

// EachBody calls f for every body in iteration order.
func (m *Manager) EachBody(f func(b *Body)) {
	for _, b := range m.DynamicBodies {
		f(b)
	}
	for _, b := range m.StaticBodies {
		f(b)
	}
}

// EachDynamicBody calls f for every dynamic body in iteration order.
func (m *Manager) EachDynamicBody(f func(b *Body)) {
	for _, b := range m.DynamicBodies {
		f(b)
	}
}

// EachStaticBody calls f for every static body in iteration order.
func (m *Manager) EachStaticBody(f func(b *Body)) {
	for _, b := range m.StaticBodies {
		f(b)
	}
}

// BodyAt returns the first body in iteration order whose outer polygon
// contains p, or nil.
func (m *Manager) BodyAt(p vec.Vec2) *Body {
	for _, b := range m.DynamicBodies {
		if b.ContainsPoint(p) {
			return b
		}
	}
	for _, b := range m.StaticBodies {
		if b.ContainsPoint(p) {
			return b
		}
	}
	return nil
}

// ApplyDrag moves the first body under pointer by delta and zeroes its
// velocities. It is a kinematic override, not a force, and works on static
// bodies too. It reports whether a body was moved.
func (m *Manager) ApplyDrag(pointer, delta vec.Vec2) bool {
	body := m.BodyAt(pointer)
	if body == nil {
		return false
	}
	body.Translate(delta)
	body.updateBB()
	return true
}

// Step advances the simulation by dt.
//
// Each phase runs for every body it applies to before the next begins:
// bounds, normals, collisions, shape matching, springs, integration. The
// caller is expected to keep dt small (around 16ms or less); the penalty
// solver is not stable for large steps and this is not enforced here.
func (m *Manager) Step(dt float64) {
	m.EachBody((*Body).updateBB)
	m.EachBody((*Body).updateNormals)

	for _, a := range m.DynamicBodies {
		m.EachBody(func(b *Body) {
			if a != b {
				solveCollision(a, b)
			}
		})
	}

	for _, b := range m.DynamicBodies {
		matchShape(b)
	}
	for _, b := range m.DynamicBodies {
		applySprings(b)
	}
	for _, b := range m.DynamicBodies {
		integrate(b, m.Gravity, dt)
	}

	m.ticks++
}

// integrate advances the body's points with semi-implicit Euler and clears
// their forces.
func integrate(body *Body, gravity vec.Vec2, dt float64) {
	invMass := body.settings.InverseMass
	for i := range body.points {
		p := &body.points[i]
		p.Velocity = p.Velocity.Add(p.Force.Scale(dt * invMass))
		p.Velocity = p.Velocity.Add(gravity.Scale(dt))
		p.Position = p.Position.Add(p.Velocity.Scale(dt))
		p.Force = vec.Vec2{}
	}
}
