package core

import (
	"github.com/go-gl/mathgl/mgl32"
)

// GroundEye is where the chase camera stands
var GroundEye = mgl32.Vec3{0, 5, 5}

var worldUp = mgl32.Vec3{0, 1, 0}

// Lens describes the perspective projection
type Lens struct {
	FovY float32 // degrees
	Near float32
	Far  float32
}

func DefaultLens() Lens {
	return Lens{FovY: 45, Near: 0.1, Far: 100}
}

// Projection returns the perspective matrix for a framebuffer of the given
// size. A zero height (minimized window) falls back to a square aspect.
func Projection(width, height int, lens Lens) mgl32.Mat4 {
	aspect := float32(1)
	if height > 0 {
		aspect = float32(width) / float32(height)
	}
	return mgl32.Perspective(mgl32.DegToRad(lens.FovY), aspect, lens.Near, lens.Far)
}

// ViewMatrix returns the world-to-eye transform for the given camera mode.
func ViewMatrix(s FlightState, mode CameraMode) mgl32.Mat4 {
	if mode == CameraFirst {
		return firstPersonView(s)
	}
	return groundView(s)
}

func groundView(s FlightState) mgl32.Mat4 {
	target := vec32(s.Position())
	if target.Sub(GroundEye).Len() < 1e-6 {
		// Looking at our own eye is undefined; aim along the flight path.
		target = target.Add(vec32(s.Direction()))
	}
	return mgl32.LookAtV(GroundEye, target, worldUp)
}

// firstPersonView composes the transforms in fixed-function order: the
// translation is applied last to the vertices.
func firstPersonView(s FlightState) mgl32.Mat4 {
	m := mgl32.Translate3D(float32(-s.X), float32(-s.Y), float32(-s.Z))
	m = m.Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(float32(180 - s.Heading))))
	m = m.Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(float32(s.Roll))))
	m = m.Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(float32(s.Pitch))))
	return m
}

// PlaneModelMatrix places the plane model at the state's position and
// attitude.
func PlaneModelMatrix(s FlightState) mgl32.Mat4 {
	m := mgl32.Translate3D(float32(s.X), float32(s.Y), float32(s.Z))
	m = m.Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(float32(s.Heading))))
	m = m.Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(float32(s.Pitch))))
	m = m.Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(float32(s.Roll))))
	return m
}

// CameraFrame recovers eye position, look target and up vector from a rigid
// view matrix, for camera APIs that only take look-at parameters.
func CameraFrame(view mgl32.Mat4) (eye, target, up mgl32.Vec3) {
	inv := view.Inv()
	eye = inv.Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3()
	forward := inv.Mul4x1(mgl32.Vec4{0, 0, -1, 0}).Vec3()
	up = inv.Mul4x1(mgl32.Vec4{0, 1, 0, 0}).Vec3()
	return eye, eye.Add(forward), up
}

func vec32(v Vector3) mgl32.Vec3 {
	return mgl32.Vec3{float32(v.X), float32(v.Y), float32(v.Z)}
}
