package raylib

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"flightsim/core"
	"flightsim/log"
	"flightsim/rendering/scene"
)

type Config struct {
	Title         string
	Width, Height int
	X, Y          int
	VSync         bool
	FovY          float32
}

type keyBinding struct {
	key     int32
	control core.Control
	repeat  bool
}

var bindings = []keyBinding{
	{rl.KeyLeft, core.ControlRollLeft, true},
	{rl.KeyRight, core.ControlRollRight, true},
	{rl.KeyUp, core.ControlPitchUp, true},
	{rl.KeyDown, core.ControlPitchDown, true},
	{rl.KeySpace, core.ControlReset, false},
	{rl.KeyOne, core.ControlCameraGround, false},
	{rl.KeyTwo, core.ControlCameraFirst, false},
	{rl.KeyEscape, core.ControlQuit, false},
}

// Renderer draws frames with raylib. raylib keeps its window and context
// in package state, so only one Renderer may exist at a time.
type Renderer struct {
	handler func(core.Control)
	fovY    float32
	lg      *log.Logger
}

func NewRenderer(cfg Config, lg *log.Logger) (*Renderer, error) {
	flags := uint32(rl.FlagWindowResizable)
	if cfg.VSync {
		flags |= rl.FlagVsyncHint
	}
	rl.SetConfigFlags(flags)
	rl.SetTraceLogLevel(rl.LogWarning)

	rl.InitWindow(int32(cfg.Width), int32(cfg.Height), cfg.Title)
	rl.SetWindowPosition(cfg.X, cfg.Y)
	// Escape is delivered as a quit control instead of closing the window
	// behind the simulator's back.
	rl.SetExitKey(0)

	lg.Info("raylib window", slog.Int("width", rl.GetScreenWidth()), slog.Int("height", rl.GetScreenHeight()))

	return &Renderer{fovY: cfg.FovY, lg: lg}, nil
}

func (r *Renderer) SetControlHandler(h func(core.Control)) {
	r.handler = h
}

func (r *Renderer) ShouldClose() bool {
	return rl.WindowShouldClose()
}

// PollEvents reports the keys raylib saw during the last frame. raylib
// collects input itself when a frame ends.
func (r *Renderer) PollEvents() {
	if r.handler == nil {
		return
	}
	for _, b := range bindings {
		if rl.IsKeyPressed(b.key) || (b.repeat && rl.IsKeyPressedRepeat(b.key)) {
			r.handler(b.control)
		}
	}
}

func (r *Renderer) FramebufferSize() (int, int) {
	return rl.GetRenderWidth(), rl.GetRenderHeight()
}

func (r *Renderer) Render(f *scene.Frame) {
	eye, target, up := core.CameraFrame(f.View)
	camera := rl.Camera3D{
		Position:   rl.NewVector3(eye.X(), eye.Y(), eye.Z()),
		Target:     rl.NewVector3(target.X(), target.Y(), target.Z()),
		Up:         rl.NewVector3(up.X(), up.Y(), up.Z()),
		Fovy:       r.fovY,
		Projection: rl.CameraPerspective,
	}

	rl.BeginDrawing()
	rl.ClearBackground(toColor(f.Clear))
	rl.BeginMode3D(camera)

	for _, t := range f.List.Triangles {
		a, b, c := toVector(t.V[0]), toVector(t.V[1]), toVector(t.V[2])
		col := toColor(t.Color)
		// raylib culls back faces; emit both windings so every face shows,
		// as with the GL backend.
		rl.DrawTriangle3D(a, b, c, col)
		rl.DrawTriangle3D(a, c, b, col)
	}
	for _, l := range f.List.Lines {
		rl.DrawLine3D(toVector(l.A), toVector(l.B), toColor(l.Color))
	}

	rl.EndMode3D()
	rl.EndDrawing()
}

func (r *Renderer) SetTitle(title string) {
	rl.SetWindowTitle(title)
}

func (r *Renderer) Terminate() {
	rl.CloseWindow()
}

func toVector(v [3]float32) rl.Vector3 {
	return rl.NewVector3(v[0], v[1], v[2])
}

func toColor(c scene.Color) rl.Color {
	return rl.NewColor(channel(c.R), channel(c.G), channel(c.B), 255)
}

func channel(v float32) uint8 {
	return uint8(core.Clamp(v, 0, 1)*255 + 0.5)
}
