package scene

import (
	"fmt"

	"github.com/setanarut/softbody"
	"github.com/setanarut/softbody/internal/config"
	"github.com/setanarut/vec"
)

func toVec(v config.Vec) vec.Vec2 {
	return vec.Vec2{X: v.X, Y: v.Y}
}

// Build creates a manager holding the walls and obstacles of s as static
// bodies, then its grids and rings as dynamic bodies.
//
// Dynamic bodies are registered in listed order, grids before rings, so the
// last ring listed ends up first in iteration order.
func Build(s config.Scene) (*softbody.Manager, error) {
	m := softbody.NewManager()

	if s.WallThickness > 0 {
		walls, err := softbody.NewBoxWalls(s.Width, s.Height, s.WallThickness, softbody.ObstacleSettings)
		if err != nil {
			return nil, fmt.Errorf("walls: %w", err)
		}
		for _, w := range walls {
			if err := m.RegisterStatic(w); err != nil {
				return nil, err
			}
		}
	}

	for i, o := range s.Obstacles {
		if len(o.Corners) != 4 {
			return nil, fmt.Errorf("obstacle %d: %d corners, want 4", i, len(o.Corners))
		}
		c := o.Corners
		body, err := softbody.NewQuadBody(toVec(c[0]), toVec(c[1]), toVec(c[2]), toVec(c[3]), softbody.ObstacleSettings)
		if err != nil {
			return nil, fmt.Errorf("obstacle %d: %w", i, err)
		}
		if err := m.RegisterStatic(body); err != nil {
			return nil, err
		}
	}

	for i, g := range s.Grids {
		body, err := softbody.NewGridBody(g.Cols, g.Rows, g.Step, vec.Vec2{X: g.X, Y: g.Y}, softbody.GridSettings)
		if err != nil {
			return nil, fmt.Errorf("grid %d: %w", i, err)
		}
		body.UserData = fmt.Sprintf("grid-%d", i)
		if err := m.RegisterDynamic(body); err != nil {
			return nil, err
		}
	}

	for i, r := range s.Rings {
		body, err := softbody.NewRingBody(r.Points, r.Radius, vec.Vec2{X: r.X, Y: r.Y}, softbody.RingSettings)
		if err != nil {
			return nil, fmt.Errorf("ring %d: %w", i, err)
		}
		body.UserData = fmt.Sprintf("ring-%d", i)
		if err := m.RegisterDynamic(body); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Name returns the label Build gave a dynamic body, or its type for static
// bodies.
func Name(b *softbody.Body) string {
	if name, ok := b.UserData.(string); ok {
		return name
	}
	return b.Type().String()
}
