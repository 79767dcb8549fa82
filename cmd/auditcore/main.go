// Package main provides the auditcore CLI: the composition point that
// constructs the storage backend and audit store and exposes the audit
// operations on the command line.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	version  = "0.1.0-dev"
	logLevel string
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	rootCmd := &cobra.Command{
		Use:     "auditcore",
		Short:   "Track facility compliance audits and their checklists",
		Version: version,
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug|info|warn|error)")

	rootCmd.AddCommand(
		newCreateCmd(),
		newListCmd(),
		newShowCmd(),
		newToggleCmd(),
		newNoteCmd(),
		newSetStatusCmd(),
		newDeleteCmd(),
		newUpcomingCmd(),
		newReportCmd(),
		newSeedCmd(),
		newLocationsCmd(),
	)

	return rootCmd.ExecuteContext(ctx)
}
