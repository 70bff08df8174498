package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"tickerdeck/internal/controller"
)

// Scenario defines one scripted walk through the UI.
// A scenario seeds the store, replays a key script against the controller,
// and optionally asserts on the final state.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Seed lists records created before the first key press.
	Seed []SeedRecord `yaml:"seed,omitempty"`

	// Steps is the key script, replayed in order.
	Steps []Step `yaml:"steps"`

	// Expect validates the final state after the script ran.
	// If nil, only the golden trace comparison applies.
	Expect *ExpectClause `yaml:"expect,omitempty"`
}

// SeedRecord is one pre-existing ticker.
type SeedRecord struct {
	Symbol string `yaml:"symbol"`
	Notes  string `yaml:"notes,omitempty"`
}

// Step is one scripted input: either a named key or a run of typed text.
// Exactly one of the two fields must be set.
type Step struct {
	Key  string `yaml:"key,omitempty"`
	Text string `yaml:"text,omitempty"`
}

// ExpectClause specifies the expected final state.
// Zero-valued fields are not checked; an empty records list asserts that
// the store holds no records.
type ExpectClause struct {
	State   string         `yaml:"state,omitempty"`
	Message string         `yaml:"message,omitempty"`
	Records []ExpectRecord `yaml:"records,omitempty"`
}

// ExpectRecord is one expected stored ticker, in id order.
type ExpectRecord struct {
	Symbol string `yaml:"symbol"`
	Notes  string `yaml:"notes,omitempty"`
}

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed, contains
// unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	// Strict field validation catches typos like "step:" vs "steps:".
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Description == "" {
		return fmt.Errorf("description is required")
	}
	if len(s.Steps) == 0 {
		return fmt.Errorf("steps list is required and must be non-empty")
	}

	for i, rec := range s.Seed {
		if rec.Symbol == "" {
			return fmt.Errorf("seed[%d]: symbol is required", i)
		}
	}

	for i, step := range s.Steps {
		if step.Key == "" && step.Text == "" {
			return fmt.Errorf("steps[%d]: key or text is required", i)
		}
		if step.Key != "" && step.Text != "" {
			return fmt.Errorf("steps[%d]: key and text are mutually exclusive", i)
		}
		if step.Key != "" {
			if _, err := ParseKey(step.Key); err != nil {
				return fmt.Errorf("steps[%d]: %w", i, err)
			}
		}
	}

	return nil
}

// ParseKey maps a scenario key name onto a controller key event.
// Single-character names are typed as plain runes.
func ParseKey(name string) (controller.Key, error) {
	switch name {
	case "up":
		return controller.Up, nil
	case "down":
		return controller.Down, nil
	case "enter":
		return controller.Enter, nil
	case "backspace":
		return controller.Backspace, nil
	case "esc":
		return controller.Esc, nil
	case "quit":
		return controller.Quit, nil
	}
	if r := []rune(name); len(r) == 1 {
		return controller.Rune(r[0]), nil
	}
	return controller.Key{}, fmt.Errorf("unknown key %q", name)
}
