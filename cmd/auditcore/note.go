package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"auditcore/internal/core"
)

func newNoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "note <audit-id> <item-id> <text>",
		Short: "Set the notes on a checklist item",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd.Context(), func(store *core.Store) error {
				auditID, itemID, text := args[0], args[1], args[2]
				if _, ok := store.GetAuditByID(auditID); !ok {
					return fmt.Errorf("audit %s not found", auditID)
				}
				store.UpdateChecklistItemNotes(auditID, itemID, text)
				fmt.Printf("Updated notes on item %s\n", itemID)
				return nil
			})
		},
	}
}
