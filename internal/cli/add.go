package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// AddOptions holds flags for the add command.
type AddOptions struct {
	*RootOptions
	Notes string
}

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AddOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "add <symbol>",
		Short: "Add a ticker to the list",
		Long: `Add a ticker symbol to the list.

The symbol is trimmed and uppercased before storing, so two spellings of
the same symbol count as duplicates.

Example:
  tickerdeck add msft --notes "Watch earnings"`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return addTicker(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Notes, "notes", "", "free-form notes stored with the ticker")

	return cmd
}

func addTicker(opts *AddOptions, symbol string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	st, err := openStore(opts.RootOptions)
	if err != nil {
		return err
	}
	defer st.Close()

	formatter.VerboseLog("using database %s", opts.Database)

	tk, err := st.Create(cmd.Context(), symbol, opts.Notes)
	if err != nil {
		return reportStoreError(formatter, err)
	}

	if formatter.Format == "json" {
		return formatter.Success(tk)
	}
	return formatter.Success(fmt.Sprintf("Added %s (id %d).", tk.Symbol, tk.ID))
}
