package softbody

import (
	"github.com/setanarut/vec"
)

// Drawer receives the segments of every spring. The engine keeps no
// rendering state; a host implements Drawer over whatever it draws with.
type Drawer interface {
	DrawSegment(a, b vec.Vec2, outer bool, data any)
	Data() any
}

// DrawBody draws every spring of body, flagging outer springs.
func DrawBody(body *Body, drawer Drawer) {
	data := drawer.Data()
	for i, s := range body.springs {
		a := body.points[s.A].Position
		b := body.points[s.B].Position
		drawer.DrawSegment(a, b, i < body.outerSpringCount, data)
	}
}

// DrawManager draws all bodies of the manager in iteration order.
func DrawManager(m *Manager, drawer Drawer) {
	m.EachBody(func(b *Body) {
		DrawBody(b, drawer)
	})
}
