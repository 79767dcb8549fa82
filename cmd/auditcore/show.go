package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"auditcore/internal/core"
)

func newShowCmd() *cobra.Command {
	var withNotes bool

	cmd := &cobra.Command{
		Use:   "show <audit-id>",
		Short: "Show one audit and its checklist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd.Context(), func(store *core.Store) error {
				audit, ok := store.GetAuditByID(args[0])
				if !ok {
					return fmt.Errorf("audit %s not found", args[0])
				}

				fmt.Printf("Audit:      %s\n", audit.ID)
				fmt.Printf("Location:   %s\n", audit.Location.DisplayName())
				fmt.Printf("Type:       %s\n", audit.AuditType)
				fmt.Printf("Scheduled:  %s\n", audit.ScheduledDate)
				fmt.Printf("Status:     %s\n", audit.Status.Display())
				fmt.Printf("Completion: %d/%d (%d%%)\n\n",
					audit.CompletedCount(), len(audit.ChecklistItems), audit.CompletionPercent())

				category := ""
				for _, item := range audit.ChecklistItems {
					if item.Category != category {
						category = item.Category
						fmt.Printf("%s\n", category)
					}
					mark := " "
					if item.Completed {
						mark = "x"
					}
					fmt.Printf("  [%s] %s  %s\n", mark, item.ID, item.Description)
					if withNotes && item.Notes != "" {
						fmt.Printf("        notes: %s\n", item.Notes)
					}
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&withNotes, "notes", false, "Include checklist item notes")

	return cmd
}
