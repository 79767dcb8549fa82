package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"auditcore/internal/core"
	"auditcore/pkg/domain"
)

func newListCmd() *cobra.Command {
	var statusFilter string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List audits",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withStore(cmd.Context(), func(store *core.Store) error {
				var audits []domain.Audit
				if statusFilter != "" {
					status, err := parseStatus(statusFilter)
					if err != nil {
						return err
					}
					audits = store.GetAuditsByStatus(status)
				} else {
					audits = store.Audits()
				}
				printAuditTable(audits)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&statusFilter, "status", "s", "", "Only show audits with this status")

	return cmd
}

func printAuditTable(audits []domain.Audit) {
	if len(audits) == 0 {
		fmt.Println("No audits found.")
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tLOCATION\tTYPE\tSTATUS\tCOMPLETION")
	for _, audit := range audits {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d%%\n",
			audit.ID, audit.ScheduledDate, audit.Location.DisplayName(),
			audit.AuditType, audit.Status.Display(), audit.CompletionPercent())
	}
	_ = w.Flush()
}
