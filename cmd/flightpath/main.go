// Command flightpath prints the trajectory flown while holding a fixed
// bank and pitch, for checking the flight model without a display.
package main

import (
	"flag"
	"fmt"
	"os"

	"flightsim/config"
	"flightsim/core"
)

func main() {
	var (
		configPath = flag.String("config", "", "settings file (default flightsim.yaml or $FLIGHTSIM_CONFIG)")
		steps      = flag.Int("steps", 600, "number of steps to fly")
		every      = flag.Int("every", 60, "print one line every this many steps")
		roll       = flag.Float64("roll", 0, "bank angle held during the flight, degrees")
		pitch      = flag.Float64("pitch", 0, "pitch angle held during the flight, degrees")
	)
	flag.Parse()

	settings, err := loadSettings(*configPath, os.Getenv)
	if err != nil {
		fmt.Fprintln(os.Stderr, "flightpath:", err)
		os.Exit(1)
	}
	model := settings.FlightModel()

	s := core.NewFlightState()
	s.Roll = core.Clamp(*roll, -model.Limit, model.Limit)
	s.Pitch = core.Clamp(*pitch, -model.Limit, model.Limit)
	if *every <= 0 {
		*every = 1
	}

	fmt.Printf("=== Flight path: roll %.0f°, pitch %.0f°, %d steps ===\n\n", s.Roll, s.Pitch, *steps)
	fmt.Printf("%6s %9s %9s %9s %9s\n", "step", "heading", "x", "y", "z")
	for i := 0; i <= *steps; i++ {
		if i%*every == 0 || i == *steps {
			fmt.Printf("%6d %9.2f %9.3f %9.3f %9.3f\n", i, s.Heading, s.X, s.Y, s.Z)
		}
		if i < *steps {
			s.Step(model)
		}
	}

	if s.Y < 0 {
		fmt.Println("\nWarning: the path goes below the ground plane")
	}
}

// loadSettings reads the settings file named by the flag, falling back to
// FLIGHTSIM_CONFIG and then the default path, and applies environment
// overrides before validating.
func loadSettings(flagPath string, getenv func(string) string) (config.Settings, error) {
	path := config.ConfigPath(getenv)
	if flagPath != "" {
		path = flagPath
	}
	s, err := config.Load(path)
	if err != nil {
		return s, err
	}
	s.ApplyEnv(getenv)
	return s, s.Validate()
}
