package opengl

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"flightsim/core"
	"flightsim/log"
	"flightsim/rendering/scene"
)

type Config struct {
	Title         string
	Width, Height int
	X, Y          int
	VSync         bool
	Clear         scene.Color
}

// Renderer is a GLFW window with a fixed-function OpenGL 2.1 context.
type Renderer struct {
	window  *glfw.Window
	handler func(core.Control)

	width, height int

	lg *log.Logger
}

// NewRenderer creates the window and GL context. The calling goroutine
// must stay on the same OS thread for the renderer's whole lifetime.
func NewRenderer(cfg Config, lg *log.Logger) (*Renderer, error) {
	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}
	lg.Infof("GLFW: %s", glfw.GetVersionString())

	// Legacy context; the scene is drawn with glBegin/glEnd.
	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.DoubleBuffer, glfw.True)
	glfw.WindowHint(glfw.DepthBits, 24)
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	window.SetPos(cfg.X, cfg.Y)
	window.Show()
	window.MakeContextCurrent()

	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	lg.Info("OpenGL context",
		slog.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		slog.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))))

	r := &Renderer{
		window: window,
		lg:     lg,
	}
	r.width, r.height = window.GetFramebufferSize()

	gl.ClearColor(cfg.Clear.R, cfg.Clear.G, cfg.Clear.B, 1)
	gl.Enable(gl.DEPTH_TEST)
	gl.Viewport(0, 0, int32(r.width), int32(r.height))

	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		r.onResize(width, height)
	})
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		r.onKey(key, action)
	})

	return r, nil
}

func (r *Renderer) SetControlHandler(h func(core.Control)) {
	r.handler = h
}

func (r *Renderer) onResize(width, height int) {
	r.width = width
	r.height = height
	gl.Viewport(0, 0, int32(width), int32(height))
}

func (r *Renderer) onKey(key glfw.Key, action glfw.Action) {
	c, ok := controlForKey(key, action)
	if !ok || r.handler == nil {
		return
	}
	r.handler(c)
}

// controlForKey maps a key event to a control. Arrow keys also act on key
// repeat so that holding one keeps steering.
func controlForKey(key glfw.Key, action glfw.Action) (core.Control, bool) {
	if action == glfw.Release {
		return 0, false
	}

	switch key {
	case glfw.KeyLeft:
		return core.ControlRollLeft, true
	case glfw.KeyRight:
		return core.ControlRollRight, true
	case glfw.KeyUp:
		return core.ControlPitchUp, true
	case glfw.KeyDown:
		return core.ControlPitchDown, true
	}

	if action != glfw.Press {
		return 0, false
	}

	switch key {
	case glfw.KeyEscape:
		return core.ControlQuit, true
	case glfw.KeySpace:
		return core.ControlReset, true
	case glfw.Key1, glfw.KeyKP1:
		return core.ControlCameraGround, true
	case glfw.Key2, glfw.KeyKP2:
		return core.ControlCameraFirst, true
	}
	return 0, false
}

func (r *Renderer) FramebufferSize() (int, int) {
	return r.width, r.height
}

// Render draws the frame and swaps buffers.
func (r *Renderer) Render(f *scene.Frame) {
	gl.ClearColor(f.Clear.R, f.Clear.G, f.Clear.B, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	loadMatrix(gl.PROJECTION, f.Projection)
	loadMatrix(gl.MODELVIEW, f.View)

	gl.Begin(gl.TRIANGLES)
	for _, t := range f.List.Triangles {
		gl.Color3f(t.Color.R, t.Color.G, t.Color.B)
		for _, v := range t.V {
			gl.Vertex3f(v.X(), v.Y(), v.Z())
		}
	}
	gl.End()

	gl.Begin(gl.LINES)
	for _, l := range f.List.Lines {
		gl.Color3f(l.Color.R, l.Color.G, l.Color.B)
		gl.Vertex3f(l.A.X(), l.A.Y(), l.A.Z())
		gl.Vertex3f(l.B.X(), l.B.Y(), l.B.Z())
	}
	gl.End()

	r.window.SwapBuffers()
}

func loadMatrix(mode uint32, m mgl32.Mat4) {
	gl.MatrixMode(mode)
	gl.LoadMatrixf(&m[0])
}

func (r *Renderer) SetTitle(title string) {
	r.window.SetTitle(title)
}

func (r *Renderer) ShouldClose() bool {
	return r.window.ShouldClose()
}

// PollEvents processes window events
func (r *Renderer) PollEvents() {
	glfw.PollEvents()
}

// Terminate destroys the window and shuts GLFW down
func (r *Renderer) Terminate() {
	r.window.Destroy()
	glfw.Terminate()
}
