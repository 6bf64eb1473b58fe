package simulation

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"flightsim/core"
	"flightsim/log"
	"flightsim/rendering/scene"
)

type Config struct {
	Title            string
	Model            core.FlightModel
	Lens             core.Lens
	Clear            scene.Color
	TickHz           float64
	MaxStepsPerFrame int
}

func DefaultConfig() Config {
	return Config{
		Title:            "Flight Simulator",
		Model:            core.DefaultFlightModel(),
		Lens:             core.DefaultLens(),
		Clear:            scene.SkyColor,
		TickHz:           60,
		MaxStepsPerFrame: 10,
	}
}

// Simulator owns the flight state and drives a backend. It is not safe for
// concurrent use; everything runs on the render thread.
type Simulator struct {
	cfg   Config
	state core.FlightState
	mode  core.CameraMode
	clock *FixedTimeStep
	steps uint64
	quit  bool

	list  *scene.DrawList
	frame scene.Frame

	lg  *log.Logger
	now func() time.Time
}

func New(cfg Config, lg *log.Logger) *Simulator {
	return &Simulator{
		cfg:   cfg,
		state: core.NewFlightState(),
		mode:  core.CameraGround,
		clock: NewFixedTimeStep(cfg.TickHz, cfg.MaxStepsPerFrame),
		list:  scene.NewDrawList(),
		lg:    lg,
		now:   time.Now,
	}
}

func (s *Simulator) State() core.FlightState { return s.state }

func (s *Simulator) Mode() core.CameraMode { return s.mode }

func (s *Simulator) Steps() uint64 { return s.steps }

// QuitRequested reports whether a quit control has been applied.
func (s *Simulator) QuitRequested() bool { return s.quit }

// Apply handles one user control.
func (s *Simulator) Apply(c core.Control) {
	switch c {
	case core.ControlReset:
		s.state.Reset()
		s.lg.Info("Reset flight state")
	case core.ControlCameraGround, core.ControlCameraFirst:
		mode := core.CameraGround
		if c == core.ControlCameraFirst {
			mode = core.CameraFirst
		}
		if mode != s.mode {
			s.lg.Info("Camera changed", slog.String("mode", mode.String()))
		}
		s.mode = mode
	case core.ControlQuit:
		s.quit = true
	default:
		if c.IsSteering() {
			s.state.Steer(c, s.cfg.Model)
			s.lg.Debug("Steer", slog.String("control", c.String()),
				slog.Float64("roll", s.state.Roll), slog.Float64("pitch", s.state.Pitch))
		}
	}
}

// Tick runs n simulation steps.
func (s *Simulator) Tick(n int) {
	for i := 0; i < n; i++ {
		s.state.Step(s.cfg.Model)
	}
	if n > 0 {
		s.steps += uint64(n)
	}
}

// Frame builds the frame for a framebuffer of the given size. The returned
// frame and its draw list are reused by the next call.
func (s *Simulator) Frame(width, height int) *scene.Frame {
	s.list.Reset()
	scene.Build(s.list, s.state, s.mode)
	s.frame = scene.Frame{
		View:       core.ViewMatrix(s.state, s.mode),
		Projection: core.Projection(width, height, s.cfg.Lens),
		Clear:      s.cfg.Clear,
		List:       s.list,
	}
	return &s.frame
}

// Run drives the backend until its window closes, a quit control arrives
// or ctx is cancelled. Cancellation is reported as ctx.Err().
func (s *Simulator) Run(ctx context.Context, b Backend) error {
	b.SetControlHandler(s.Apply)
	s.lg.Info("Starting render loop", slog.String("title", s.cfg.Title))

	last := s.now()
	fpsStart, frames := last, 0

	for !s.quit && !b.ShouldClose() {
		if err := ctx.Err(); err != nil {
			return err
		}

		b.PollEvents()

		now := s.now()
		s.Tick(s.clock.Advance(now.Sub(last)))
		last = now

		b.Render(s.Frame(b.FramebufferSize()))
		frames++

		if elapsed := now.Sub(fpsStart); elapsed >= time.Second {
			fps := float64(frames) / elapsed.Seconds()
			b.SetTitle(s.Title(fps))
			s.lg.Debug("Telemetry", slog.Float64("fps", fps), slog.String("state", s.Telemetry().String()))
			fpsStart, frames = now, 0
		}
	}

	s.lg.Info("Render loop finished", slog.Uint64("steps", s.steps),
		slog.Duration("dropped", s.clock.Dropped()))
	return nil
}

// RunHeadless advances the simulation without a window. With steps > 0 it
// runs exactly that many steps as fast as possible. Otherwise it steps in
// real time at ups updates per second until duration elapses (or forever
// when duration is zero) or ctx is cancelled. It returns the number of
// steps performed.
func (s *Simulator) RunHeadless(ctx context.Context, steps int, ups int, duration time.Duration) int {
	if steps > 0 {
		for i := 0; i < steps; i++ {
			if ctx.Err() != nil {
				return i
			}
			s.Tick(1)
		}
		return steps
	}

	if ups <= 0 {
		ups = int(s.cfg.TickHz)
	}
	if duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, duration)
		defer cancel()
	}

	ticker := time.NewTicker(time.Second / time.Duration(ups))
	defer ticker.Stop()

	performed := 0
	for {
		select {
		case <-ctx.Done():
			return performed
		case <-ticker.C:
			s.Tick(1)
			performed++
		}
	}
}

// Telemetry is a snapshot of the flight for display.
type Telemetry struct {
	Heading  float64 // [0, 360)
	Pitch    float64
	Roll     float64
	Position core.Vector3
	Camera   core.CameraMode
	Steps    uint64
}

func (s *Simulator) Telemetry() Telemetry {
	hdg := math.Mod(s.state.Heading, 360)
	if hdg < 0 {
		hdg += 360
	}
	return Telemetry{
		Heading:  hdg,
		Pitch:    s.state.Pitch,
		Roll:     s.state.Roll,
		Position: s.state.Position(),
		Camera:   s.mode,
		Steps:    s.steps,
	}
}

func (t Telemetry) String() string {
	p := t.Position
	return fmt.Sprintf("hdg %03.0f pitch %+.0f roll %+.0f alt %.1f pos (%.1f, %.1f, %.1f) cam %s",
		math.Mod(rounded(t.Heading, 0), 360), rounded(t.Pitch, 0), rounded(t.Roll, 0),
		rounded(p.Y, 1), rounded(p.X, 1), rounded(p.Y, 1), rounded(p.Z, 1), t.Camera)
}

// rounded rounds v to the given number of decimals, mapping results that
// round to zero onto +0 so they never print as "-0".
func rounded(v float64, decimals int) float64 {
	scale := math.Pow10(decimals)
	r := math.Round(v*scale) / scale
	if r == 0 {
		return 0
	}
	return r
}

// Title returns the window title with current telemetry.
func (s *Simulator) Title(fps float64) string {
	return fmt.Sprintf("%s | %.0f fps | %s", s.cfg.Title, fps, s.Telemetry())
}
