package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"tickerdeck/internal/controller"
	"tickerdeck/internal/tui"
)

// runUI opens the database and hands the terminal to the interactive UI.
func runUI(opts *RootOptions) error {
	logger, closeLog, err := newUILogger(opts)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open log file", err)
	}
	defer closeLog()
	slog.SetDefault(logger)

	st, err := openStore(opts)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			slog.Error("error closing database", "error", closeErr)
		}
	}()

	slog.Info("session started", "db", opts.Database)
	if err := tui.Run(controller.New(st)); err != nil {
		return WrapExitError(ExitFailure, "ui failed", err)
	}
	slog.Info("session ended")

	return nil
}

// newUILogger builds the session logger. The alternate screen owns the
// terminal while the UI runs, so logs go to a file or nowhere. Every line
// carries a fresh session id so interleaved runs stay separable.
func newUILogger(opts *RootOptions) (*slog.Logger, func(), error) {
	level := slog.LevelInfo
	if opts.Verbose {
		level = slog.LevelDebug
	}

	w := io.Writer(io.Discard)
	closeLog := func() {}
	if opts.LogFile != "" {
		f, err := os.OpenFile(opts.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeLog = func() { _ = f.Close() }
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	session := uuid.Must(uuid.NewV7()).String()

	return slog.New(handler).With("session", session), closeLog, nil
}
