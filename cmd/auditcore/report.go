package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"auditcore/internal/archive"
	"auditcore/internal/core"
	"auditcore/internal/report"
)

func newReportCmd() *cobra.Command {
	var (
		year       int
		month      int
		format     string
		archiveOut bool
	)

	now := time.Now().UTC()

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate a monthly audit report",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if month < 1 || month > 12 {
				return fmt.Errorf("month %d out of range (1-12)", month)
			}
			format = strings.ToLower(format)
			if format != "text" && format != "csv" {
				return fmt.Errorf("unknown format %q (expected text or csv)", format)
			}

			return withStore(cmd.Context(), func(store *core.Store) error {
				monthly := report.Generate(store.AuditsForMonth(year, month), year, month)

				var (
					out         string
					contentType string
					ext         string
					err         error
				)
				switch format {
				case "csv":
					out, err = monthly.CSV()
					contentType, ext = "text/csv", "csv"
				default:
					out = monthly.Text(time.Now().UTC())
					contentType, ext = "text/plain", "txt"
				}
				if err != nil {
					return err
				}

				fmt.Print(out)

				if archiveOut {
					arc, err := archive.Open(cmd.Context())
					if err != nil {
						return fmt.Errorf("open report archive: %w", err)
					}
					key := fmt.Sprintf("reports/%04d-%02d.%s", year, month, ext)
					info, err := arc.Put(cmd.Context(), key, strings.NewReader(out),
						archive.PutOptions{ContentType: contentType})
					if err != nil {
						return fmt.Errorf("archive report: %w", err)
					}
					fmt.Printf("\nArchived %s (%d bytes, %s driver)\n", info.Key, info.Size, arc.Driver())
				}
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&year, "year", "y", now.Year(), "Report year")
	cmd.Flags().IntVarP(&month, "month", "m", int(now.Month()), "Report month (1-12)")
	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format: text or csv")
	cmd.Flags().BoolVar(&archiveOut, "archive", false, "Also store the report in the configured archive backend")

	return cmd
}
