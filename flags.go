package main

import (
	"flag"
	"time"
)

// Command-line flags. Zero values leave the settings file (or its
// defaults) untouched.
var (
	// configFlag names the YAML settings file, overriding FLIGHTSIM_CONFIG.
	configFlag = flag.String("config", "", "settings file (default flightsim.yaml or $FLIGHTSIM_CONFIG)")

	// envFileFlag names a dotenv file loaded before anything else.
	envFileFlag = flag.String("env-file", ".env", "dotenv file with FLIGHTSIM_* variables")

	backendFlag = flag.String("backend", "", "renderer backend: gl or raylib")
	widthFlag   = flag.Int("width", 0, "window width")
	heightFlag  = flag.Int("height", 0, "window height")

	logLevelFlag = flag.String("log-level", "", "log level: debug, info, warn or error")
	logDirFlag   = flag.String("log-dir", "", "directory for log files")

	// headlessFlag runs the flight model without opening a window.
	headlessFlag = flag.Bool("headless", false, "run without a window")
	stepsFlag    = flag.Int("steps", 0, "number of steps to run in headless mode (0 = use duration)")
	durationFlag = flag.Duration("duration", 5*time.Second, "how long to run in headless mode; ignored if steps > 0")
	upsFlag      = flag.Int("ups", 0, "updates per second in timed headless mode (0 = flight.tick_hz)")
)
