package core

import (
	"math"
)

// Vector3 represents a 3D vector in world units
type Vector3 struct {
	X, Y, Z float64
}

func (v Vector3) Add(other Vector3) Vector3 {
	return Vector3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

func (v Vector3) Sub(other Vector3) Vector3 {
	return Vector3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

func (v Vector3) Scale(s float64) Vector3 {
	return Vector3{v.X * s, v.Y * s, v.Z * s}
}

func (v Vector3) Dot(other Vector3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

func (v Vector3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

func (v Vector3) Normalize() Vector3 {
	length := v.Length()
	if length == 0 {
		return Vector3{0, 0, 0}
	}
	return Vector3{v.X / length, v.Y / length, v.Z / length}
}

// CameraMode selects how the scene is viewed
type CameraMode int

const (
	CameraGround CameraMode = iota // chase view from a fixed point on the ground
	CameraFirst                    // view from the cockpit
)

func (m CameraMode) String() string {
	switch m {
	case CameraGround:
		return "ground"
	case CameraFirst:
		return "first"
	default:
		return "unknown"
	}
}

// Control is a user action delivered by a window backend
type Control int

const (
	ControlRollLeft Control = iota
	ControlRollRight
	ControlPitchUp
	ControlPitchDown
	ControlReset
	ControlCameraGround
	ControlCameraFirst
	ControlQuit
)

var controlNames = [...]string{
	ControlRollLeft:     "roll-left",
	ControlRollRight:    "roll-right",
	ControlPitchUp:      "pitch-up",
	ControlPitchDown:    "pitch-down",
	ControlReset:        "reset",
	ControlCameraGround: "camera-ground",
	ControlCameraFirst:  "camera-first",
	ControlQuit:         "quit",
}

func (c Control) String() string {
	if c < 0 || int(c) >= len(controlNames) {
		return "unknown"
	}
	return controlNames[c]
}

// IsSteering reports whether the control changes roll or pitch
func (c Control) IsSteering() bool {
	return c >= ControlRollLeft && c <= ControlPitchDown
}
