package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"flightsim/core"
)

var (
	GrassColor  = Color{0.7, 1.0, 0.7}
	RunwayColor = Color{0.7, 0.7, 0.7}
	SkyColor    = Color{0.4, 0.9, 1.0}
)

// Towers are the obstacle centers; each is a 2x10x2 block standing on the
// ground.
var Towers = []mgl32.Vec3{
	{-30, 5, -50},
	{-35, 5, -50},
	{0, 5, -90},
}

var towerSize = mgl32.Vec3{2, 10, 2}

// Plane model dimensions
const (
	fuselageOffset = 2.5
	fuselageRadius = 0.5
	fuselageLength = 5
	fuselageSlices = 20
	fuselageStacks = 20
)

// Frame is everything a backend needs to draw one frame.
type Frame struct {
	View       mgl32.Mat4
	Projection mgl32.Mat4
	Clear      Color
	List       *DrawList
}

// Build emits the whole scene for the given state into dl. The plane itself
// is only visible from the ground camera.
func Build(dl *DrawList, s core.FlightState, mode core.CameraMode) {
	Ground(dl)
	TowerBlocks(dl)
	if mode == core.CameraGround {
		dl.PushMatrix()
		dl.MultMatrix(core.PlaneModelMatrix(s))
		Plane(dl)
		dl.PopMatrix()
	}
	Axes(dl)
}

// Ground draws the grass diamond and the runway strip.
func Ground(dl *DrawList) {
	dl.SetColor(GrassColor)
	dl.Quad(
		mgl32.Vec3{-100, -0.1, 0},
		mgl32.Vec3{0, -0.1, -100},
		mgl32.Vec3{100, -0.1, 0},
		mgl32.Vec3{0, -0.1, 100})

	dl.SetColor(RunwayColor)
	dl.Quad(
		mgl32.Vec3{-10, 0, -100},
		mgl32.Vec3{10, 0, -100},
		mgl32.Vec3{10, 0, 100},
		mgl32.Vec3{-10, 0, 100})
}

// TowerBlocks draws the obstacles in the current color.
func TowerBlocks(dl *DrawList) {
	for _, t := range Towers {
		dl.PushMatrix()
		dl.Translate(t.X(), t.Y(), t.Z())
		dl.Scale(towerSize.X(), towerSize.Y(), towerSize.Z())
		dl.Cube(1)
		dl.PopMatrix()
	}
}

// Plane draws the plane model in its local frame: a white fuselage tube
// with two wings and a tail fin.
func Plane(dl *DrawList) {
	dl.PushMatrix()
	dl.Translate(0, 0, fuselageOffset)
	dl.SetColor(White)
	dl.Cylinder(fuselageRadius, fuselageRadius, fuselageLength, fuselageSlices, fuselageStacks)

	// wings
	dl.Triangle(mgl32.Vec3{0.5, 0, 3}, mgl32.Vec3{3, 0, 1}, mgl32.Vec3{0.5, 0, 1})
	dl.Triangle(mgl32.Vec3{-0.5, 0, 3}, mgl32.Vec3{-3, 0, 1}, mgl32.Vec3{-0.5, 0, 1})
	// tail
	dl.Triangle(mgl32.Vec3{0, 0.5, 1}, mgl32.Vec3{0, 2, 0}, mgl32.Vec3{0, 0.5, 0})
	dl.PopMatrix()
}

// Axes draws the red x, green y and blue z reference lines.
func Axes(dl *DrawList) {
	dl.SetColor(Red)
	dl.Line(mgl32.Vec3{-100, 0, 0}, mgl32.Vec3{100, 0, 0})
	dl.SetColor(Green)
	dl.Line(mgl32.Vec3{0, -100, 0}, mgl32.Vec3{0, 100, 0})
	dl.SetColor(Blue)
	dl.Line(mgl32.Vec3{0, 0, -100}, mgl32.Vec3{0, 0, 100})
}
