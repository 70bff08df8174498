package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"tickerdeck/internal/store"
)

// Version is reported by the --version flag.
const Version = "1.0.0"

const (
	// envDatabase names the environment variable overriding the database path.
	envDatabase = "TICKERDECK_DB"
	// defaultDatabase is used when neither --db nor the environment sets a path.
	defaultDatabase = "stocks.db"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose  bool
	Format   string // "json" | "text"
	Database string
	LogFile  string
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the tickerdeck CLI.
// Run without a subcommand it opens the interactive list UI; the
// subcommands cover the same operations one-shot for scripting.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "tickerdeck",
		Short: "Tickerdeck - a personal stock ticker list",
		Long: `Maintain a personal list of stock ticker symbols with notes,
stored in a local SQLite database.

Without a subcommand, tickerdeck opens the interactive terminal UI.
The database path comes from --db, then $TICKERDECK_DB (a .env file in
the working directory is honored), then "stocks.db".`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Validate format flag
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			opts.Database = resolveDatabase(opts.Database)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(opts)
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Database, "db", "", "path to SQLite database (default \"stocks.db\", or $TICKERDECK_DB)")
	cmd.Flags().StringVar(&opts.LogFile, "log-file", "", "write logs to this file while the UI runs")

	// Add subcommands
	cmd.AddCommand(NewAddCommand(opts))
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewEditCommand(opts))
	cmd.AddCommand(NewRemoveCommand(opts))

	return cmd
}

// resolveDatabase picks the database path: the flag wins, then the
// environment (a .env file in the working directory is loaded first),
// then the default.
func resolveDatabase(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	// A missing .env file is fine; the variable may be set directly.
	_ = godotenv.Load()
	if path := os.Getenv(envDatabase); path != "" {
		return path
	}
	return defaultDatabase
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// openStore opens the configured database for one command invocation.
func openStore(opts *RootOptions) (*store.Store, error) {
	st, err := store.Open(opts.Database)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to open database", err)
	}
	return st, nil
}
