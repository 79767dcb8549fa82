package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"auditcore/internal/core"
	"auditcore/internal/seed"
)

func newSeedCmd() *cobra.Command {
	opts := seed.DefaultOptions()

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Populate the configured backend with randomized audit history",
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			backend, err := core.OpenDataStore(logger)
			if err != nil {
				return err
			}
			defer func() { _ = backend.Close() }()

			audits, err := seed.Generate(backend, opts, time.Now().UTC())
			if err != nil {
				return err
			}

			stats := seed.Summarize(audits)
			fmt.Printf("Seeded %d audits (%d MRR, %d FSR) across %d locations\n",
				stats.TotalAudits, stats.MRRCount, stats.FSRCount, stats.UniqueLocations)
			for status, count := range stats.StatusCounts {
				fmt.Printf("  %s: %d\n", status.Display(), count)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.MonthsBack, "months", opts.MonthsBack, "Months of history to generate")
	cmd.Flags().IntVar(&opts.AuditsPerMonth, "per-month", opts.AuditsPerMonth, "Average audits per month")
	cmd.Flags().Float64Var(&opts.CompletionRate, "completion-rate", opts.CompletionRate, "Share of audits generated fully complete (0-1)")
	cmd.Flags().Int64Var(&opts.Seed, "rng-seed", 0, "Random seed (0 picks a time-based seed)")

	return cmd
}
