package host

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"
	"github.com/setanarut/softbody"
	"github.com/setanarut/softbody/internal/config"
	"github.com/setanarut/softbody/internal/scene"
	"github.com/setanarut/softbody/internal/telemetry"
	"github.com/setanarut/vec"
)

// ErrInvariant is returned by Run when a step panics with
// softbody.InvariantViolation.
var ErrInvariant = errors.New("simulation invariant violated")

// Loop drives a manager the way an interactive host would: per frame an
// optional drag, then the frame time split into stable steps, then drawing.
type Loop struct {
	Manager *softbody.Manager
	Config  *config.Config
	Log     zerolog.Logger
	Metrics *telemetry.Metrics

	// Drawer receives every spring after each frame. May be nil.
	Drawer softbody.Drawer
}

// Run plays Config.Ticks frames or until ctx is done, and returns the number
// of completed frames.
func (l *Loop) Run(ctx context.Context) (frames int, err error) {
	cfg := l.Config
	dt := cfg.ClampDT(cfg.DT)
	if dt != cfg.DT {
		l.Log.Warn().Float64("dt", cfg.DT).Float64("clamped", dt).Msg("dt clamped")
	}
	substeps, step := cfg.Substeps(dt)
	l.Log.Debug().Int("substeps", substeps).Float64("step", step).Msg("frame split")

	l.Manager.EachStaticBody(func(b *softbody.Body) {
		c := b.BB().Center()
		l.Log.Debug().Str("body", scene.Name(b)).Float64("x", c.X).Float64("y", c.Y).Msg("static")
	})

	defer func() {
		if r := recover(); r != nil {
			v, ok := r.(softbody.InvariantViolation)
			if !ok {
				panic(r)
			}
			err = fmt.Errorf("%w at frame %d: %v (point %v, body %s)",
				ErrInvariant, frames, v, v.Point, scene.Name(v.Body))
		}
	}()

	drag := cfg.Drag
	pointer := vec.Vec2{X: drag.From.X, Y: drag.From.Y}
	delta := vec.Vec2{X: drag.Delta.X, Y: drag.Delta.Y}

	for ; frames < cfg.Ticks; frames++ {
		if err := ctx.Err(); err != nil {
			return frames, err
		}

		if drag.Enabled && frames >= drag.StartTick && frames < drag.StartTick+drag.Ticks {
			hit := l.Manager.ApplyDrag(pointer, delta)
			l.Metrics.RecordDrag(ctx, hit)
			l.Log.Debug().Int("tick", frames).Bool("hit", hit).
				Float64("x", pointer.X).Float64("y", pointer.Y).Msg("drag")
			pointer = pointer.Add(delta)
		}

		for range substeps {
			start := time.Now()
			l.Manager.Step(step)
			l.Metrics.RecordStep(ctx, time.Since(start), l.Manager.BodyCount())
		}

		if l.Drawer != nil {
			softbody.DrawManager(l.Manager, l.Drawer)
		}

		if cfg.ReportEvery > 0 && (frames+1)%cfg.ReportEvery == 0 {
			l.report(frames + 1)
		}
	}
	return frames, nil
}

func (l *Loop) report(tick int) {
	l.Manager.EachDynamicBody(func(b *softbody.Body) {
		c := b.Centroid()
		points := b.Points()
		var speed float64
		for _, p := range points {
			speed = max(speed, p.Velocity.Mag())
		}
		var strain float64
		for _, s := range b.Springs() {
			if s.RestLength > 0 {
				strain = max(strain, math.Abs(s.Length(points)/s.RestLength-1))
			}
		}
		l.Log.Info().
			Int("tick", tick).
			Str("body", scene.Name(b)).
			Float64("x", c.X).
			Float64("y", c.Y).
			Float64("rotation", b.Rotation()).
			Float64("maxSpeed", speed).
			Float64("maxStrain", strain).
			Msg("body")
	})
}

// SegmentCounter is a Drawer that only counts the segments it is handed.
type SegmentCounter struct {
	Segments int
	Outer    int
}

func (c *SegmentCounter) DrawSegment(a, b vec.Vec2, outer bool, data any) {
	c.Segments++
	if outer {
		c.Outer++
	}
}

func (c *SegmentCounter) Data() any {
	return nil
}
