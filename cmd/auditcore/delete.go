package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"auditcore/internal/core"
)

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <audit-id>",
		Short: "Delete an audit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd.Context(), func(store *core.Store) error {
				if _, ok := store.GetAuditByID(args[0]); !ok {
					return fmt.Errorf("audit %s not found", args[0])
				}
				store.DeleteAudit(args[0])
				fmt.Printf("Deleted audit %s\n", args[0])
				return nil
			})
		},
	}
}
