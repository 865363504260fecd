package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGreetFormatsNameVerbatim(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple", "World", "Hello, World! You've been greeted from Rust!"},
		{"empty", "", "Hello, ! You've been greeted from Rust!"},
		{"whitespace kept", "  Ada  ", "Hello,   Ada  ! You've been greeted from Rust!"},
		{"unicode", "世界", "Hello, 世界! You've been greeted from Rust!"},
		{"format verbs not interpreted", "%s%d", "Hello, %s%d! You've been greeted from Rust!"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Greet(tc.input))
		})
	}
}

func TestRegisterGreetExposesCommand(t *testing.T) {
	registry := NewRegistry(nil)
	require.NoError(t, RegisterGreet(registry))

	result, err := registry.Invoke(GreetCommand, "World")
	require.NoError(t, err)
	assert.Equal(t, "Hello, World! You've been greeted from Rust!", result)

	assert.Equal(t, []string{GreetCommand}, registry.Names())
}
