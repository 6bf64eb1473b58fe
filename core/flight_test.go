package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResetRestoresStartingState(t *testing.T) {
	s := FlightState{Heading: 12, Pitch: 30, Roll: -40, X: 7, Y: 8, Z: 9}
	s.Reset()

	assert.Equal(t, FlightState{Heading: -180, Pitch: 0, Roll: 0, X: 0, Y: 3, Z: -5}, s)
	assert.Equal(t, s, NewFlightState())
}

func TestDirectionIsUnitLength(t *testing.T) {
	tests := []struct {
		name           string
		heading, pitch float64
		want           Vector3
	}{
		{"initial heading flies towards -z", -180, 0, Vector3{0, 0, -1}},
		{"zero heading flies towards +z", 0, 0, Vector3{0, 0, 1}},
		{"heading 90 flies towards +x", 90, 0, Vector3{1, 0, 0}},
		{"pitch down descends", 0, 90, Vector3{0, -1 / math.Sqrt2, 1 / math.Sqrt2}},
		{"pitch up climbs", 0, -30, Vector3{0, 0.5, 1}.Normalize()},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := FlightState{Heading: tc.heading, Pitch: tc.pitch}
			d := s.Direction()
			assert.InDelta(t, 1.0, d.Length(), 1e-12)
			assert.InDelta(t, tc.want.X, d.X, 1e-9)
			assert.InDelta(t, tc.want.Y, d.Y, 1e-9)
			assert.InDelta(t, tc.want.Z, d.Z, 1e-9)
		})
	}
}

func TestSteerAdjustsAndClamps(t *testing.T) {
	m := DefaultFlightModel()

	tests := []struct {
		name      string
		control   Control
		presses   int
		wantRoll  float64
		wantPitch float64
	}{
		{"roll left", ControlRollLeft, 3, -6, 0},
		{"roll right", ControlRollRight, 5, 10, 0},
		{"pitch up", ControlPitchUp, 2, 0, -4},
		{"pitch down", ControlPitchDown, 1, 0, 2},
		{"roll clamps at limit", ControlRollRight, 100, 90, 0},
		{"pitch clamps at negative limit", ControlPitchUp, 100, 0, -90},
		{"non steering control ignored", ControlReset, 4, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewFlightState()
			for i := 0; i < tc.presses; i++ {
				s.Steer(tc.control, m)
			}
			assert.Equal(t, tc.wantRoll, s.Roll)
			assert.Equal(t, tc.wantPitch, s.Pitch)
			assert.Equal(t, InitialHeading, s.Heading)
		})
	}
}

func TestStepMovesForward(t *testing.T) {
	m := DefaultFlightModel()
	s := NewFlightState()

	s.Step(m)

	assert.Equal(t, InitialHeading, s.Heading)
	assert.InDelta(t, 0, s.X, 1e-12)
	assert.InDelta(t, 3, s.Y, 1e-12)
	assert.InDelta(t, -5.1, s.Z, 1e-12)
}

func TestStepTurnsWhenBanked(t *testing.T) {
	m := DefaultFlightModel()
	s := NewFlightState()
	for i := 0; i < 45; i++ {
		s.Steer(ControlRollRight, m)
	}
	require.Equal(t, 90.0, s.Roll)

	s.Step(m)
	assert.InDelta(t, -181, s.Heading, 1e-12)

	s.Step(m)
	assert.InDelta(t, -182, s.Heading, 1e-12)

	s.Roll = -45
	s.Step(m)
	assert.InDelta(t, -181.5, s.Heading, 1e-12)
}

func TestStepTravelsSpeedPerStep(t *testing.T) {
	m := DefaultFlightModel()
	s := FlightState{Heading: 33, Pitch: -20, Roll: 10}

	before := s.Position()
	s.Step(m)
	moved := s.Position().Sub(before)

	assert.InDelta(t, m.Speed, moved.Length(), 1e-12)
	assert.Greater(t, moved.Y, 0.0, "negative pitch should climb")
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 5, Clamp(7, 0, 5))
	assert.Equal(t, -1.5, Clamp(-3.0, -1.5, 1.5))
	assert.Equal(t, 0.25, Clamp(0.25, 0, 1))
}

func TestControlNames(t *testing.T) {
	assert.Equal(t, "roll-left", ControlRollLeft.String())
	assert.Equal(t, "quit", ControlQuit.String())
	assert.Equal(t, "unknown", Control(42).String())
	assert.True(t, ControlPitchDown.IsSteering())
	assert.False(t, ControlCameraFirst.IsSteering())
	assert.Equal(t, "first", CameraFirst.String())
}
