package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"flightsim/core"
)

// ErrInvalidSettings is wrapped by every parse and validation failure.
var ErrInvalidSettings = errors.New("invalid settings")

const DefaultPath = "flightsim.yaml"

// Backend names accepted in render.backend
const (
	BackendGL     = "gl"
	BackendRaylib = "raylib"
)

// Environment variables that override the settings file
const (
	EnvConfig   = "FLIGHTSIM_CONFIG"
	EnvBackend  = "FLIGHTSIM_BACKEND"
	EnvLogLevel = "FLIGHTSIM_LOG_LEVEL"
)

type Settings struct {
	Window WindowSettings `yaml:"window"`
	Render RenderSettings `yaml:"render"`
	Flight FlightSettings `yaml:"flight"`
	Log    LogSettings    `yaml:"log"`

	// Source is the file the settings came from, empty for defaults.
	Source string `yaml:"-"`
}

type WindowSettings struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	X      int    `yaml:"x"`
	Y      int    `yaml:"y"`
	VSync  bool   `yaml:"vsync"`
}

type RenderSettings struct {
	Backend    string     `yaml:"backend"` // "gl" or "raylib"
	FovY       float32    `yaml:"fov_y"`   // degrees
	Near       float32    `yaml:"near"`
	Far        float32    `yaml:"far"`
	ClearColor [3]float32 `yaml:"clear_color"`
}

type FlightSettings struct {
	Speed            float64 `yaml:"speed"`
	SteerStep        float64 `yaml:"steer_step"`
	Limit            float64 `yaml:"limit"`
	TurnDivisor      float64 `yaml:"turn_divisor"`
	TickHz           float64 `yaml:"tick_hz"`
	MaxStepsPerFrame int     `yaml:"max_steps_per_frame"`
}

type LogSettings struct {
	Level string `yaml:"level"`
	Dir   string `yaml:"dir"`
}

// Defaults returns the stock settings.
func Defaults() Settings {
	fm := core.DefaultFlightModel()
	lens := core.DefaultLens()
	return Settings{
		Window: WindowSettings{
			Title:  "Flight Simulator",
			Width:  400,
			Height: 400,
			X:      100,
			Y:      100,
			VSync:  true,
		},
		Render: RenderSettings{
			Backend:    BackendGL,
			FovY:       lens.FovY,
			Near:       lens.Near,
			Far:        lens.Far,
			ClearColor: [3]float32{0.4, 0.9, 1.0},
		},
		Flight: FlightSettings{
			Speed:            fm.Speed,
			SteerStep:        fm.SteerStep,
			Limit:            fm.Limit,
			TurnDivisor:      fm.TurnDivisor,
			TickHz:           60,
			MaxStepsPerFrame: 10,
		},
		Log: LogSettings{
			Level: "info",
		},
	}
}

// Load reads settings from a YAML file on top of the defaults. A missing
// file is not an error; the defaults are returned as-is. The result is not
// validated, since environment and flag overrides may still replace bad
// values; call Validate once they are applied.
func Load(path string) (Settings, error) {
	s := Defaults()

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return s, err
	}
	defer f.Close()

	if err := s.decode(f); err != nil {
		return s, fmt.Errorf("%s: %w", path, err)
	}
	s.Source = path
	return s, nil
}

// Parse decodes YAML settings on top of the defaults and validates them.
func Parse(data []byte) (Settings, error) {
	s := Defaults()
	if err := s.decode(bytes.NewReader(data)); err != nil {
		return s, err
	}
	return s, s.Validate()
}

func (s *Settings) decode(r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(s); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}
	return nil
}

// LoadEnvFile loads KEY=value pairs from a dotenv file into the process
// environment without overriding variables that are already set. A missing
// file is ignored.
func LoadEnvFile(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// ConfigPath returns the settings file to read: the environment override if
// set, otherwise DefaultPath.
func ConfigPath(getenv func(string) string) string {
	if p := getenv(EnvConfig); p != "" {
		return p
	}
	return DefaultPath
}

// ApplyEnv overrides settings from environment variables.
func (s *Settings) ApplyEnv(getenv func(string) string) {
	if v := getenv(EnvBackend); v != "" {
		s.Render.Backend = v
	}
	if v := getenv(EnvLogLevel); v != "" {
		s.Log.Level = v
	}
}

func (s Settings) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(s.Window.Width > 0 && s.Window.Height > 0,
		"window size %dx%d must be positive", s.Window.Width, s.Window.Height)
	check(s.Render.Backend == BackendGL || s.Render.Backend == BackendRaylib,
		"unknown backend %q", s.Render.Backend)
	check(s.Render.FovY > 0 && s.Render.FovY < 180,
		"fov_y %g must be in (0, 180)", s.Render.FovY)
	check(s.Render.Near > 0 && s.Render.Near < s.Render.Far,
		"near %g and far %g must satisfy 0 < near < far", s.Render.Near, s.Render.Far)
	check(s.Flight.Speed >= 0, "speed %g must not be negative", s.Flight.Speed)
	check(s.Flight.Limit > 0 && s.Flight.Limit <= 180, "limit %g must be in (0, 180]", s.Flight.Limit)
	check(s.Flight.TurnDivisor != 0, "turn_divisor must not be zero")
	check(s.Flight.TickHz > 0, "tick_hz %g must be positive", s.Flight.TickHz)
	check(s.Flight.MaxStepsPerFrame > 0, "max_steps_per_frame %d must be positive", s.Flight.MaxStepsPerFrame)

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidSettings, errors.Join(errs...))
}

func (s Settings) FlightModel() core.FlightModel {
	return core.FlightModel{
		Speed:       s.Flight.Speed,
		SteerStep:   s.Flight.SteerStep,
		Limit:       s.Flight.Limit,
		TurnDivisor: s.Flight.TurnDivisor,
	}
}

func (s Settings) Lens() core.Lens {
	return core.Lens{FovY: s.Render.FovY, Near: s.Render.Near, Far: s.Render.Far}
}
