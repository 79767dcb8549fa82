package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"auditcore/internal/core"
)

func newCreateCmd() *cobra.Command {
	var (
		location  string
		auditType string
		date      string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Schedule a new audit",
		Long:  "Schedules an audit against a location, expanding the checklist template for the audit type.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCreate(cmd, location, auditType, date)
		},
	}

	cmd.Flags().StringVarP(&location, "location", "l", "", "Facility location identifier (required)")
	cmd.Flags().StringVarP(&auditType, "type", "t", "", "Audit type: MRR or FSR (required)")
	cmd.Flags().StringVarP(&date, "date", "d", time.Now().UTC().Format(isoDate), "Scheduled date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("location")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}

func runCreate(cmd *cobra.Command, rawLocation, rawType, rawDate string) error {
	location, err := parseLocation(rawLocation)
	if err != nil {
		return err
	}
	auditType, err := parseAuditType(rawType)
	if err != nil {
		return err
	}
	date, err := parseDate(rawDate)
	if err != nil {
		return err
	}

	return withStore(cmd.Context(), func(store *core.Store) error {
		audit, err := store.CreateAudit(location, auditType, date)
		if err != nil {
			return err
		}
		fmt.Printf("Created %s audit %s for %s on %s (%d checklist items)\n",
			audit.AuditType, audit.ID, audit.Location.DisplayName(), audit.ScheduledDate, len(audit.ChecklistItems))
		return nil
	})
}
