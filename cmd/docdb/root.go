package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jdziat/docdb-go"
	"github.com/jdziat/docdb-go/internal/config"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath string
	profile    string
	verbose    bool
}

func newRootCommand() *cobra.Command {
	g := &globalFlags{}

	cmd := &cobra.Command{
		Use:   "docdb",
		Short: "Sign and issue requests against a DocumentDB REST endpoint",
		Long: `docdb signs one request with an account master key, sends it, and prints
the result envelope as JSON.

Connection settings come from flags, the DOCDB_* environment variables, or a
profile in .docdb.yaml (searched for from the current directory upward).`,
		Example: `  # List databases using the default profile
  docdb request --path /dbs

  # Create a document
  docdb request --verb POST --path /dbs/mydb/colls/items/docs --body '{"id":"1"}'

  # Show the token that would be sent
  docdb sign --verb GET --path /dbs/mydb --date "Tue, 01 Nov 2022 12:00:00 GMT"`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)

	cmd.PersistentFlags().StringVar(&g.configPath, "config", "", "Path to the configuration file (default: nearest .docdb.yaml)")
	cmd.PersistentFlags().StringVarP(&g.profile, "profile", "p", "", "Configuration profile to use (env: "+config.EnvProfile+")")
	cmd.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "Log request details to stderr")

	cmd.AddCommand(newRequestCommand(g))
	cmd.AddCommand(newSignCommand(g))
	cmd.AddCommand(newParseCommand())
	cmd.AddCommand(newVersionCommand())

	return cmd
}

// resolveProfile loads the configuration and selects the active profile.
func (g *globalFlags) resolveProfile() (*config.Profile, error) {
	cfg, err := config.Load(g.configPath)
	if err != nil {
		return nil, err
	}
	return cfg.Resolve(g.profile)
}

// logger returns the structured logger for the command.
func (g *globalFlags) logger(cmd *cobra.Command) docdb.StructuredLogger {
	if !g.verbose {
		return docdb.NopLogger{}
	}
	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug})
	return docdb.NewSlogAdapter(slog.New(handler)).With("component", "docdb")
}
