package main

import (
	"github.com/spf13/cobra"

	"auditcore/internal/core"
)

func newUpcomingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "upcoming",
		Short: "List audits that are not yet complete, soonest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withStore(cmd.Context(), func(store *core.Store) error {
				printAuditTable(store.GetUpcomingAudits())
				return nil
			})
		},
	}
}
