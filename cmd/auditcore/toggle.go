package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"auditcore/internal/core"
)

func newToggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <audit-id> <item-id>",
		Short: "Toggle a checklist item and recompute the audit status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd.Context(), func(store *core.Store) error {
				auditID, itemID := args[0], args[1]
				if _, ok := store.GetAuditByID(auditID); !ok {
					return fmt.Errorf("audit %s not found", auditID)
				}
				store.ToggleChecklistItem(auditID, itemID)

				audit, ok := store.GetAuditByID(auditID)
				if !ok {
					return fmt.Errorf("audit %s not found", auditID)
				}
				fmt.Printf("Audit %s is now %s (%d/%d items complete)\n",
					audit.ID, audit.Status.Display(), audit.CompletedCount(), len(audit.ChecklistItems))
				return nil
			})
		},
	}
}
