package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tickerdeck/internal/store"
)

func TestAddCreatesTicker(t *testing.T) {
	opts := newTestRootOpts(t)

	buf := &bytes.Buffer{}
	cmd := NewAddCommand(opts)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"msft", "--notes", "Watch earnings"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "Added MSFT (id 1).")

	tickers := readTickers(t, opts)
	require.Len(t, tickers, 1)
	assert.Equal(t, "MSFT", tickers[0].Symbol)
	assert.Equal(t, "Watch earnings", tickers[0].Notes)
}

func TestAddDuplicateSymbol(t *testing.T) {
	opts := newTestRootOpts(t)
	seedTicker(t, opts, "AAPL", "")

	buf := &bytes.Buffer{}
	cmd := NewAddCommand(opts)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"aapl"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, buf.String(), "Error [duplicate-symbol]")
}

func TestAddEmptySymbol(t *testing.T) {
	opts := newTestRootOpts(t)

	buf := &bytes.Buffer{}
	cmd := NewAddCommand(opts)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"   "})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, buf.String(), "Error [invalid-input]")
	assert.Empty(t, readTickers(t, opts))
}

func TestAddJSONOutput(t *testing.T) {
	opts := newTestRootOpts(t)
	opts.Format = "json"

	buf := &bytes.Buffer{}
	cmd := NewAddCommand(opts)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"msft", "--notes", "Watch earnings"})

	require.NoError(t, cmd.Execute())

	var resp struct {
		Status string       `json:"status"`
		Data   store.Ticker `json:"data"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "MSFT", resp.Data.Symbol)
	assert.Equal(t, "Watch earnings", resp.Data.Notes)
	assert.Equal(t, int64(1), resp.Data.ID)
}
