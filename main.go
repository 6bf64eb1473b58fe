package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"flightsim/config"
	"flightsim/log"
	"flightsim/rendering/opengl"
	"flightsim/rendering/raylib"
	"flightsim/rendering/scene"
	"flightsim/simulation"
)

func init() {
	// GLFW and GL calls must come from the main thread.
	runtime.LockOSThread()
}

func main() {
	flag.Parse()

	if err := run(); err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

// loggedError wraps an error that already went through the logger, which
// echoes errors to stderr itself.
type loggedError struct{ error }

func (e loggedError) Unwrap() error { return e.error }

func reportError(w io.Writer, err error) {
	var logged loggedError
	if errors.As(err, &logged) {
		return
	}
	fmt.Fprintln(w, "flightsim:", err)
}

func run() error {
	if err := config.LoadEnvFile(*envFileFlag); err != nil {
		return err
	}

	path := config.ConfigPath(os.Getenv)
	if *configFlag != "" {
		path = *configFlag
	}
	settings, err := config.Load(path)
	if err != nil {
		return err
	}
	settings.ApplyEnv(os.Getenv)
	applyFlags(&settings)
	if err := settings.Validate(); err != nil {
		return err
	}

	lg := log.New(settings.Log.Level, settings.Log.Dir)
	defer lg.Close()
	if settings.Source == "" {
		lg.Infof("No %s found, using defaults", path)
	} else {
		lg.Infof("Loaded settings from %s", settings.Source)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sim := simulation.New(simulationConfig(settings), lg)

	if *headlessFlag {
		fmt.Println("Flight Simulator (headless) ...")
		start := time.Now()
		performed := sim.RunHeadless(ctx, *stepsFlag, *upsFlag, *durationFlag)
		elapsed := time.Since(start)
		fmt.Printf("Completed %d steps in %s (achieved ~%.1f UPS)\n",
			performed, elapsed.Truncate(time.Millisecond), float64(performed)/elapsed.Seconds())
		fmt.Println(sim.Telemetry())
		return nil
	}

	backend, err := newBackend(settings, lg)
	if err != nil {
		lg.Errorf("%v", err)
		return loggedError{err}
	}
	defer backend.Terminate()

	printControls()

	if err := sim.Run(ctx, backend); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	fmt.Println("Shutting down...")
	return nil
}

func applyFlags(s *config.Settings) {
	if *backendFlag != "" {
		s.Render.Backend = *backendFlag
	}
	if *widthFlag > 0 {
		s.Window.Width = *widthFlag
	}
	if *heightFlag > 0 {
		s.Window.Height = *heightFlag
	}
	if *logLevelFlag != "" {
		s.Log.Level = *logLevelFlag
	}
	if *logDirFlag != "" {
		s.Log.Dir = *logDirFlag
	}
}

func simulationConfig(s config.Settings) simulation.Config {
	c := s.Render.ClearColor
	return simulation.Config{
		Title:            s.Window.Title,
		Model:            s.FlightModel(),
		Lens:             s.Lens(),
		Clear:            scene.Color{R: c[0], G: c[1], B: c[2]},
		TickHz:           s.Flight.TickHz,
		MaxStepsPerFrame: s.Flight.MaxStepsPerFrame,
	}
}

func newBackend(s config.Settings, lg *log.Logger) (simulation.Backend, error) {
	w := s.Window
	switch s.Render.Backend {
	case config.BackendGL:
		c := s.Render.ClearColor
		return opengl.NewRenderer(opengl.Config{
			Title:  w.Title,
			Width:  w.Width,
			Height: w.Height,
			X:      w.X,
			Y:      w.Y,
			VSync:  w.VSync,
			Clear:  scene.Color{R: c[0], G: c[1], B: c[2]},
		}, lg)
	case config.BackendRaylib:
		return raylib.NewRenderer(raylib.Config{
			Title:  w.Title,
			Width:  w.Width,
			Height: w.Height,
			X:      w.X,
			Y:      w.Y,
			VSync:  w.VSync,
			FovY:   s.Render.FovY,
		}, lg)
	default:
		return nil, fmt.Errorf("%w: %q", simulation.ErrUnknownBackend, s.Render.Backend)
	}
}

func printControls() {
	fmt.Println("Controls:")
	fmt.Println("  Left/Right: Roll")
	fmt.Println("  Up/Down: Pitch")
	fmt.Println("  Space: Reset")
	fmt.Println("  1: Ground camera  2: First-person camera")
	fmt.Println("  ESC: Exit")
}
