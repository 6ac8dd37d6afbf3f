package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("HUH_TEST_STRING", "value")

	assert.Equal(t, "value", getEnv("HUH_TEST_STRING", "fallback"))
	assert.Equal(t, "fallback", getEnv("HUH_TEST_MISSING", "fallback"))
}

func TestGetEnvInt(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected int
	}{
		{name: "valid", value: "42", expected: 42},
		{name: "invalid falls back", value: "forty-two", expected: 7},
		{name: "empty falls back", value: "", expected: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("HUH_TEST_INT", tt.value)
			assert.Equal(t, tt.expected, getEnvInt("HUH_TEST_INT", 7))
		})
	}
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("HUH_TEST_DURATION", "250ms")
	assert.Equal(t, 250*time.Millisecond, getEnvDuration("HUH_TEST_DURATION", time.Second))

	t.Setenv("HUH_TEST_DURATION", "soon")
	assert.Equal(t, time.Second, getEnvDuration("HUH_TEST_DURATION", time.Second))
}
