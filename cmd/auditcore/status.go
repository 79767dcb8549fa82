package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"auditcore/internal/core"
)

func newSetStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-status <audit-id> <status>",
		Short: "Override an audit status directly",
		Long: "Sets the audit status without touching the checklist. The override " +
			"holds until the next checklist toggle recomputes the status.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := parseStatus(args[1])
			if err != nil {
				return err
			}
			return withStore(cmd.Context(), func(store *core.Store) error {
				if _, ok := store.GetAuditByID(args[0]); !ok {
					return fmt.Errorf("audit %s not found", args[0])
				}
				store.UpdateStatus(args[0], status)
				fmt.Printf("Audit %s set to %s\n", args[0], status.Display())
				return nil
			})
		},
	}
}
