package harness

import (
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tickerdeck/internal/controller"
)

func TestMain(m *testing.M) {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	os.Exit(m.Run())
}

func TestRunAddFlow(t *testing.T) {
	scenario := &Scenario{
		Name:        "add_inline",
		Description: "Adds one ticker end to end",
		Steps: []Step{
			{Key: "down"},
			{Key: "enter"},
			{Text: "msft"},
			{Key: "enter"},
			{Text: "Microsoft"},
			{Key: "enter"},
		},
	}

	result, err := Run(scenario)
	require.NoError(t, err)
	assert.True(t, result.Pass)
	require.Len(t, result.Trace, 6)

	last := result.Trace[len(result.Trace)-1]
	assert.Equal(t, "enter", last.Key)
	assert.Equal(t, "main-menu", last.State)
	assert.Equal(t, `Ticker "MSFT" added.`, last.Message)

	require.Len(t, result.Final.Records, 1)
	assert.Equal(t, "MSFT", result.Final.Records[0].Symbol)
	assert.Equal(t, "Microsoft", result.Final.Records[0].Notes)
}

func TestRunSeedsRecords(t *testing.T) {
	scenario := &Scenario{
		Name:        "seeded",
		Description: "Seeded records survive an immediate quit",
		Seed: []SeedRecord{
			{Symbol: "aapl", Notes: "Core holding"},
			{Symbol: "ZM"},
		},
		Steps: []Step{{Key: "quit"}},
	}

	result, err := Run(scenario)
	require.NoError(t, err)
	assert.True(t, result.Pass)
	assert.Equal(t, "exited", result.Final.State)

	require.Len(t, result.Final.Records, 2)
	assert.Equal(t, "AAPL", result.Final.Records[0].Symbol)
	assert.Equal(t, "Core holding", result.Final.Records[0].Notes)
	assert.Equal(t, "ZM", result.Final.Records[1].Symbol)
}

func TestRunSeedFailure(t *testing.T) {
	scenario := &Scenario{
		Name:        "dup_seed",
		Description: "Duplicate seed symbols fail fast",
		Seed: []SeedRecord{
			{Symbol: "MSFT"},
			{Symbol: "msft"},
		},
		Steps: []Step{{Key: "quit"}},
	}

	_, err := Run(scenario)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `seed[1] "msft"`)
}

func TestRunExpectMismatch(t *testing.T) {
	scenario := &Scenario{
		Name:        "mismatch",
		Description: "A wrong expectation fails the result, not the run",
		Steps:       []Step{{Key: "down"}},
		Expect: &ExpectClause{
			State:   "exited",
			Records: []ExpectRecord{{Symbol: "MSFT"}},
		},
	}

	result, err := Run(scenario)
	require.NoError(t, err)
	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 2)
	assert.Contains(t, result.Errors[0], `final state: got "main-menu", want "exited"`)
	assert.Contains(t, result.Errors[1], "record count: got 0, want 1")
}

func TestRunExpectRecordFields(t *testing.T) {
	scenario := &Scenario{
		Name:        "record_mismatch",
		Description: "Record expectations compare field by field",
		Seed:        []SeedRecord{{Symbol: "MSFT", Notes: "old"}},
		Steps:       []Step{{Key: "quit"}},
		Expect: &ExpectClause{
			Records: []ExpectRecord{{Symbol: "AAPL", Notes: "new"}},
		},
	}

	result, err := Run(scenario)
	require.NoError(t, err)
	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 2)
	assert.Contains(t, result.Errors[0], `records[0].symbol: got "MSFT", want "AAPL"`)
	assert.Contains(t, result.Errors[1], `records[0].notes: got "old", want "new"`)
}

func TestStepKeys(t *testing.T) {
	keys, err := stepKeys(Step{Text: "ab"})
	require.NoError(t, err)
	require.Len(t, keys, 2)
	assert.Equal(t, controller.Rune('a'), keys[0])
	assert.Equal(t, controller.Rune('b'), keys[1])

	keys, err = stepKeys(Step{Key: "enter"})
	require.NoError(t, err)
	require.Len(t, keys, 1)
	assert.Equal(t, controller.Enter, keys[0])

	_, err = stepKeys(Step{Key: "nope"})
	require.Error(t, err)
}

func TestStepLabel(t *testing.T) {
	assert.Equal(t, "down", stepLabel(Step{Key: "down"}))
	assert.Equal(t, "text:MSFT", stepLabel(Step{Text: "MSFT"}))
}
