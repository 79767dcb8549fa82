package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"auditcore/pkg/domain"
)

func newLocationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "locations",
		Short: "List the known facility locations",
		RunE: func(*cobra.Command, []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME")
			for _, location := range domain.Locations() {
				fmt.Fprintf(w, "%s\t%s\n", location, location.DisplayName())
			}
			return w.Flush()
		},
	}
}
