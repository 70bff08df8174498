package cli

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// RemoveOptions holds flags for the rm command.
type RemoveOptions struct {
	*RootOptions
	Yes bool
}

// NewRemoveCommand creates the rm command.
func NewRemoveCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RemoveOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove", "delete"},
		Short:   "Delete a ticker",
		Long: `Delete the ticker with the given id.

Asks for confirmation unless --yes is set; anything but y cancels.

Example:
  tickerdeck rm 3 --yes`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return removeTicker(opts, args[0], cmd)
		},
	}

	cmd.Flags().BoolVarP(&opts.Yes, "yes", "y", false, "skip the confirmation prompt")

	return cmd
}

func removeTicker(opts *RemoveOptions, rawID string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return WrapExitError(ExitCommandError, fmt.Sprintf("invalid id %q", rawID), err)
	}

	st, err := openStore(opts.RootOptions)
	if err != nil {
		return err
	}
	defer st.Close()

	formatter.VerboseLog("using database %s", opts.Database)

	tk, err := st.Get(cmd.Context(), id)
	if err != nil {
		return reportStoreError(formatter, err)
	}

	if !opts.Yes && !confirm(cmd, fmt.Sprintf("Delete ticker %s (id %d)? [y/N]: ", tk.Symbol, tk.ID)) {
		fmt.Fprintln(cmd.OutOrStdout(), "Deletion cancelled.")
		return nil
	}

	if err := st.Delete(cmd.Context(), id); err != nil {
		return reportStoreError(formatter, err)
	}

	if formatter.Format == "json" {
		return formatter.Success(tk)
	}
	return formatter.Success(fmt.Sprintf("Deleted %s (id %d).", tk.Symbol, tk.ID))
}

// confirm prints the prompt and reads one line; only y or yes accepts.
func confirm(cmd *cobra.Command, prompt string) bool {
	fmt.Fprint(cmd.OutOrStdout(), prompt)
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}
