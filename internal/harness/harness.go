package harness

import (
	"context"
	"fmt"
	"time"

	"tickerdeck/internal/controller"
	"tickerdeck/internal/store"
	"tickerdeck/internal/testutil"
)

// Scenarios run against a fixed epoch so stored timestamps are reproducible.
var scenarioEpoch = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// Run executes a scenario and returns the result.
//
// Each scenario runs a real controller against a fresh in-memory database,
// so the full keystroke-to-store path is exercised. The stepping clock makes
// stored timestamps reproducible across runs.
//
// Execution flow:
//  1. Create fresh in-memory database with a deterministic clock
//  2. Insert seed records
//  3. Replay the key script, tracing the state after every step
//  4. Capture the final state and stored records
//  5. Evaluate the expect clause, if any
func Run(scenario *Scenario) (*Result, error) {
	clock := testutil.NewClock(scenarioEpoch, time.Second)

	st, err := store.Open(":memory:", store.WithNow(clock.Now))
	if err != nil {
		return nil, fmt.Errorf("failed to create in-memory store: %w", err)
	}
	defer st.Close()

	ctx := context.Background()

	for i, rec := range scenario.Seed {
		if _, err := st.Create(ctx, rec.Symbol, rec.Notes); err != nil {
			return nil, fmt.Errorf("seed[%d] %q: %w", i, rec.Symbol, err)
		}
	}

	ctrl := controller.New(st)
	result := NewResult()

	for i, step := range scenario.Steps {
		keys, err := stepKeys(step)
		if err != nil {
			return nil, fmt.Errorf("steps[%d]: %w", i, err)
		}
		for _, k := range keys {
			ctrl.Handle(ctx, k)
		}
		result.AddStep(stepLabel(step), ctrl.View())
	}

	final := ctrl.View()
	records, err := st.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("read final records: %w", err)
	}
	result.Final = FinalState{
		State:   string(final.State),
		Message: final.Message.Text,
		Records: recordSnapshots(records),
	}

	evaluateExpect(result, scenario.Expect)

	return result, nil
}

// stepKeys expands a step into controller key events. A text step becomes
// one rune key per character.
func stepKeys(step Step) ([]controller.Key, error) {
	if step.Text != "" {
		keys := make([]controller.Key, 0, len(step.Text))
		for _, r := range step.Text {
			keys = append(keys, controller.Rune(r))
		}
		return keys, nil
	}

	k, err := ParseKey(step.Key)
	if err != nil {
		return nil, err
	}
	return []controller.Key{k}, nil
}

// stepLabel names a step in the trace.
func stepLabel(step Step) string {
	if step.Text != "" {
		return "text:" + step.Text
	}
	return step.Key
}

func recordSnapshots(records []store.Ticker) []RecordSnapshot {
	out := make([]RecordSnapshot, len(records))
	for i, tk := range records {
		out[i] = RecordSnapshot{ID: tk.ID, Symbol: tk.Symbol, Notes: tk.Notes}
	}
	return out
}

// evaluateExpect compares the final state against the scenario's expect
// clause, collecting mismatches as errors.
func evaluateExpect(result *Result, expect *ExpectClause) {
	if expect == nil {
		return
	}

	if expect.State != "" && result.Final.State != expect.State {
		result.AddError(fmt.Sprintf("final state: got %q, want %q", result.Final.State, expect.State))
	}
	if expect.Message != "" && result.Final.Message != expect.Message {
		result.AddError(fmt.Sprintf("final message: got %q, want %q", result.Final.Message, expect.Message))
	}
	if expect.Records == nil {
		return
	}

	if len(result.Final.Records) != len(expect.Records) {
		result.AddError(fmt.Sprintf("record count: got %d, want %d", len(result.Final.Records), len(expect.Records)))
		return
	}
	for i, want := range expect.Records {
		got := result.Final.Records[i]
		if got.Symbol != want.Symbol {
			result.AddError(fmt.Sprintf("records[%d].symbol: got %q, want %q", i, got.Symbol, want.Symbol))
		}
		if want.Notes != "" && got.Notes != want.Notes {
			result.AddError(fmt.Sprintf("records[%d].notes: got %q, want %q", i, got.Notes, want.Notes))
		}
	}
}
