package simulation

import (
	"errors"

	"flightsim/core"
	"flightsim/rendering/scene"
)

var ErrUnknownBackend = errors.New("unknown backend")

// Backend is a window plus a way to draw frames into it. All methods are
// called from the goroutine that created the backend, which must be locked
// to its OS thread.
type Backend interface {
	ShouldClose() bool
	// PollEvents processes pending window events; key presses are delivered
	// synchronously to the control handler.
	PollEvents()
	FramebufferSize() (width, height int)
	Render(f *scene.Frame)
	SetTitle(title string)
	SetControlHandler(func(core.Control))
	Terminate()
}
