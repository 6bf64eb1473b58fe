package core

import (
	"math"
)

// Initial attitude and position restored by Reset
const (
	InitialHeading = -180.0
	InitialPitch   = 0.0
	InitialRoll    = 0.0
)

var InitialPosition = Vector3{X: 0, Y: 3, Z: -5}

// FlightModel holds the tuning of the per-step update
type FlightModel struct {
	Speed       float64 // distance travelled per step
	SteerStep   float64 // degrees of roll or pitch per key event
	Limit       float64 // roll and pitch are clamped to [-Limit, Limit]
	TurnDivisor float64 // heading changes by -roll/TurnDivisor every step
}

// DefaultFlightModel returns the stock tuning
func DefaultFlightModel() FlightModel {
	return FlightModel{
		Speed:       0.1,
		SteerStep:   2.0,
		Limit:       90.0,
		TurnDivisor: 90.0,
	}
}

// FlightState is the complete state of the plane. Angles are in degrees.
type FlightState struct {
	Heading float64
	Pitch   float64
	Roll    float64
	X, Y, Z float64
}

// NewFlightState returns a state positioned for takeoff
func NewFlightState() FlightState {
	var s FlightState
	s.Reset()
	return s
}

// Reset puts the plane back at its starting position and attitude
func (s *FlightState) Reset() {
	s.Heading = InitialHeading
	s.Pitch = InitialPitch
	s.Roll = InitialRoll
	s.X, s.Y, s.Z = InitialPosition.X, InitialPosition.Y, InitialPosition.Z
}

func (s FlightState) Position() Vector3 {
	return Vector3{s.X, s.Y, s.Z}
}

// Direction returns the unit vector the plane is flying along.
func (s FlightState) Direction() Vector3 {
	h := DegreesToRadians(s.Heading)
	p := DegreesToRadians(s.Pitch)
	return Vector3{
		X: math.Sin(h),
		Y: -math.Sin(p),
		Z: math.Cos(h),
	}.Normalize()
}

// Steer applies a single key event to roll or pitch. Controls that do not
// steer are ignored.
func (s *FlightState) Steer(c Control, m FlightModel) {
	switch c {
	case ControlRollLeft:
		s.Roll -= m.SteerStep
	case ControlRollRight:
		s.Roll += m.SteerStep
	case ControlPitchUp:
		s.Pitch -= m.SteerStep
	case ControlPitchDown:
		s.Pitch += m.SteerStep
	default:
		return
	}

	s.Roll = Clamp(s.Roll, -m.Limit, m.Limit)
	s.Pitch = Clamp(s.Pitch, -m.Limit, m.Limit)
}

// Step advances the plane by one simulation step: banking turns the
// heading, then the plane moves forward along its direction.
func (s *FlightState) Step(m FlightModel) {
	if s.Roll != 0 {
		s.Heading += s.Roll / -m.TurnDivisor
	}

	d := s.Direction()
	s.X += d.X * m.Speed
	s.Y += d.Y * m.Speed
	s.Z += d.Z * m.Speed
}
