package main

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"flightsim/simulation"
)

func TestReportError(t *testing.T) {
	unknown := fmt.Errorf("%w: %q", simulation.ErrUnknownBackend, "vulkan")

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"plain", unknown, "flightsim: unknown backend: \"vulkan\"\n"},
		{"already logged", loggedError{unknown}, ""},
		{"logged and wrapped", fmt.Errorf("setup: %w", loggedError{unknown}), ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			reportError(&buf, tc.err)
			assert.Equal(t, tc.want, buf.String())
		})
	}

	assert.True(t, errors.Is(loggedError{unknown}, simulation.ErrUnknownBackend))
}
