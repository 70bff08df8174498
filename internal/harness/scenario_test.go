package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tickerdeck/internal/controller"
)

// writeScenario writes a YAML scenario to a temp file and returns its path.
func writeScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadScenario(t *testing.T) {
	path := writeScenario(t, `
name: add_one
description: "Adds a ticker"
seed:
  - symbol: AAPL
    notes: Core holding
steps:
  - key: down
  - key: enter
  - text: MSFT
expect:
  state: add-form
`)

	scenario, err := LoadScenario(path)
	require.NoError(t, err)
	assert.Equal(t, "add_one", scenario.Name)
	require.Len(t, scenario.Seed, 1)
	assert.Equal(t, "AAPL", scenario.Seed[0].Symbol)
	assert.Equal(t, "Core holding", scenario.Seed[0].Notes)
	require.Len(t, scenario.Steps, 3)
	assert.Equal(t, "down", scenario.Steps[0].Key)
	assert.Equal(t, "MSFT", scenario.Steps[2].Text)
	require.NotNil(t, scenario.Expect)
	assert.Equal(t, "add-form", scenario.Expect.State)
}

func TestLoadScenarioMissingFile(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read scenario file")
}

func TestLoadScenarioUnknownField(t *testing.T) {
	path := writeScenario(t, `
name: typo
description: "Misspells steps"
stepz:
  - key: down
`)

	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadScenarioValidation(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			"missing name",
			"description: \"d\"\nsteps:\n  - key: down\n",
			"name is required",
		},
		{
			"missing description",
			"name: n\nsteps:\n  - key: down\n",
			"description is required",
		},
		{
			"no steps",
			"name: n\ndescription: \"d\"\n",
			"steps list is required",
		},
		{
			"seed without symbol",
			"name: n\ndescription: \"d\"\nseed:\n  - notes: x\nsteps:\n  - key: down\n",
			"seed[0]: symbol is required",
		},
		{
			"step with key and text",
			"name: n\ndescription: \"d\"\nsteps:\n  - key: down\n    text: MS\n",
			"mutually exclusive",
		},
		{
			"step with neither",
			"name: n\ndescription: \"d\"\nsteps:\n  - {}\n",
			"key or text is required",
		},
		{
			"unknown key",
			"name: n\ndescription: \"d\"\nsteps:\n  - key: wobble\n",
			"unknown key",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadScenario(writeScenario(t, tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseKey(t *testing.T) {
	named := map[string]controller.Key{
		"up":        controller.Up,
		"down":      controller.Down,
		"enter":     controller.Enter,
		"backspace": controller.Backspace,
		"esc":       controller.Esc,
		"quit":      controller.Quit,
	}
	for name, want := range named {
		got, err := ParseKey(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	got, err := ParseKey("q")
	require.NoError(t, err)
	assert.Equal(t, controller.Rune('q'), got)

	_, err = ParseKey("ctrl+banana")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown key "ctrl+banana"`)
}
