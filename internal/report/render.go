package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
	"time"
)

// CSV renders the report in the spreadsheet-importable layout: a summary
// block followed by one row per visited location.
func (r MonthlyReport) CSV() (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	records := [][]string{
		{fmt.Sprintf("Monthly Audit Report - %s %d", r.Month, r.Year)},
		{},
		{"SUMMARY"},
		{"Total Audits", fmt.Sprintf("%d", r.TotalAudits)},
		{"Completed", fmt.Sprintf("%d", r.CompletedAudits)},
		{"In Progress", fmt.Sprintf("%d", r.InProgressAudits)},
		{"Pending", fmt.Sprintf("%d", r.PendingAudits)},
		{},
		{"VISITED LOCATIONS"},
		{"Date", "Location", "Type", "Status", "Completion %"},
	}
	for _, visit := range r.Visited {
		records = append(records, []string{
			visit.ScheduledDate,
			visit.LocationName,
			string(visit.AuditType),
			string(visit.Status),
			fmt.Sprintf("%d%%", visit.CompletionPercent),
		})
	}
	if err := w.WriteAll(records); err != nil {
		return "", fmt.Errorf("write csv: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flush csv: %w", err)
	}
	return buf.String(), nil
}

// Text renders the report as a human-readable plain text document.
func (r MonthlyReport) Text(generatedAt time.Time) string {
	rule := strings.Repeat("=", 60)
	thin := strings.Repeat("-", 60)

	var b strings.Builder
	fmt.Fprintf(&b, "%s\nMONTHLY AUDIT REPORT\n%s %d\n%s\n\n", rule, r.Month, r.Year, rule)
	fmt.Fprintf(&b, "SUMMARY\n%s\n", thin)
	fmt.Fprintf(&b, "Total Audits: %d\n", r.TotalAudits)
	fmt.Fprintf(&b, "  - Completed: %d\n", r.CompletedAudits)
	fmt.Fprintf(&b, "  - In Progress: %d\n", r.InProgressAudits)
	fmt.Fprintf(&b, "  - Pending: %d\n\n", r.PendingAudits)
	fmt.Fprintf(&b, "VISITED LOCATIONS\n%s\n", thin)
	if len(r.Visited) == 0 {
		b.WriteString("No audits scheduled for this month.\n")
	} else {
		for i, visit := range r.Visited {
			fmt.Fprintf(&b, "%d. %s\n", i+1, visit.LocationName)
			fmt.Fprintf(&b, "   Date: %s\n", visit.ScheduledDate)
			fmt.Fprintf(&b, "   Type: %s\n", visit.AuditType)
			fmt.Fprintf(&b, "   Status: %s\n", visit.Status.Display())
			fmt.Fprintf(&b, "   Completion: %d%%\n\n", visit.CompletionPercent)
		}
	}
	fmt.Fprintf(&b, "%s\nGenerated on %s\n", rule, generatedAt.Format("Jan 2, 2006 15:04:05"))
	return b.String()
}
