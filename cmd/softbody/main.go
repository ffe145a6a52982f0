// Command softbody runs a soft-body scene headless and logs where the bodies
// end up.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/setanarut/softbody/internal/config"
	"github.com/setanarut/softbody/internal/host"
	"github.com/setanarut/softbody/internal/logging"
	"github.com/setanarut/softbody/internal/scene"
	"github.com/setanarut/softbody/internal/telemetry"
	"github.com/setanarut/vec"
	"go.opentelemetry.io/otel"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stderr); err != nil {
		l := logging.New(os.Stderr, "info", "console")
		l.Fatal().Err(err).Msg("softbody")
	}
}

func run(ctx context.Context, args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("softbody", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to a JSON or YAML config file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log := logging.New(stderr, cfg.LogLevel, cfg.LogFormat)

	m, err := scene.Build(cfg.Scene)
	if err != nil {
		return fmt.Errorf("build scene: %w", err)
	}
	m.Gravity = vec.Vec2{X: cfg.Gravity.X, Y: cfg.Gravity.Y}
	log.Info().
		Int("dynamic", m.DynamicBodyCount()).
		Int("static", m.StaticBodyCount()).
		Float64("dt", cfg.DT).
		Float64("substepDt", cfg.SubstepDT).
		Int("ticks", cfg.Ticks).
		Msg("scene ready")

	metrics, err := telemetry.New(otel.Meter(telemetry.MeterName))
	if err != nil {
		return err
	}

	counter := &host.SegmentCounter{}
	loop := &host.Loop{Manager: m, Config: cfg, Log: log, Metrics: metrics, Drawer: counter}
	n, err := loop.Run(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("run: %w", err)
	}
	log.Info().Int("ticks", n).Uint64("steps", m.Ticks()).Int("segments", counter.Segments).Msg("done")
	return nil
}
