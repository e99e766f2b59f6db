package main

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	pkghttp "github.com/jdziat/docdb-go/pkg/http"
)

// Set with -ldflags at build time.
var (
	Version = "dev"
	Commit  = "none"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), formatVersion())
			return nil
		},
	}
}

func formatVersion() string {
	version := strings.TrimSpace(Version)
	if version == "" {
		version = "dev"
	}
	commit := strings.TrimSpace(Commit)
	if commit == "" {
		commit = "none"
	}
	return fmt.Sprintf("docdb %s (commit %s, %s, x-ms-version %s)", version, commit, runtime.Version(), pkghttp.DefaultAPIVersion)
}
