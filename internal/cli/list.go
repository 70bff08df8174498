package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all tickers",
		Long: `List every stored ticker in id order.

Text output is a fixed-width table; --format json emits the raw records.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listTickers(rootOpts, cmd)
		},
	}

	return cmd
}

func listTickers(opts *RootOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	st, err := openStore(opts)
	if err != nil {
		return err
	}
	defer st.Close()

	formatter.VerboseLog("using database %s", opts.Database)

	tickers, err := st.List(cmd.Context())
	if err != nil {
		return reportStoreError(formatter, err)
	}
	total, err := st.Count(cmd.Context())
	if err != nil {
		return reportStoreError(formatter, err)
	}

	if formatter.Format == "json" {
		return formatter.Success(tickers)
	}

	w := formatter.Writer
	if len(tickers) == 0 {
		fmt.Fprintln(w, "No tickers yet.")
	} else {
		fmt.Fprintf(w, "%-4s %-8s %-10s %s\n", "ID", "SYMBOL", "ADDED", "NOTES")
		for _, tk := range tickers {
			line := fmt.Sprintf("%-4d %-8s %-10s %s",
				tk.ID, tk.Symbol, tk.CreatedAt.Format("2006-01-02"), tk.Notes)
			fmt.Fprintln(w, strings.TrimRight(line, " "))
		}
	}
	fmt.Fprintf(w, "Total Tickers: %d\n", total)

	return nil
}
