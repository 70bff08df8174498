package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// EditOptions holds flags for the edit command.
type EditOptions struct {
	*RootOptions
	Symbol string
	Notes  string
}

// NewEditCommand creates the edit command.
func NewEditCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EditOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change a ticker's symbol or notes",
		Long: `Change the symbol or notes of the ticker with the given id.

Fields not named by a flag keep their current value.

Example:
  tickerdeck edit 3 --notes "Sold half"`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return editTicker(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Symbol, "symbol", "", "replacement symbol")
	cmd.Flags().StringVar(&opts.Notes, "notes", "", "replacement notes")

	return cmd
}

func editTicker(opts *EditOptions, rawID string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return WrapExitError(ExitCommandError, fmt.Sprintf("invalid id %q", rawID), err)
	}
	if !cmd.Flags().Changed("symbol") && !cmd.Flags().Changed("notes") {
		return NewExitError(ExitCommandError, "nothing to change: pass --symbol or --notes")
	}

	st, err := openStore(opts.RootOptions)
	if err != nil {
		return err
	}
	defer st.Close()

	formatter.VerboseLog("using database %s", opts.Database)

	current, err := st.Get(cmd.Context(), id)
	if err != nil {
		return reportStoreError(formatter, err)
	}

	// The store replaces both fields, so unset flags carry the current values.
	symbol, notes := current.Symbol, current.Notes
	if cmd.Flags().Changed("symbol") {
		symbol = opts.Symbol
	}
	if cmd.Flags().Changed("notes") {
		notes = opts.Notes
	}

	tk, err := st.Update(cmd.Context(), id, symbol, notes)
	if err != nil {
		return reportStoreError(formatter, err)
	}

	if formatter.Format == "json" {
		return formatter.Success(tk)
	}
	return formatter.Success(fmt.Sprintf("Updated %s (id %d).", tk.Symbol, tk.ID))
}
