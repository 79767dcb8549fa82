package report

import (
	"strings"
	"testing"
	"time"

	"auditcore/pkg/domain"
)

func marchAudits() []domain.Audit {
	completed := make([]domain.ChecklistItem, 4)
	for i := range completed {
		completed[i].Completed = true
	}
	half := make([]domain.ChecklistItem, 4)
	half[0].Completed = true
	half[1].Completed = true

	return []domain.Audit{
		{
			ID: "a1", Location: domain.LocationGlendale, AuditType: domain.AuditTypeMRR,
			ScheduledDate: "2024-03-20", Status: domain.StatusComplete, ChecklistItems: completed,
		},
		{
			ID: "a2", Location: domain.LocationTorrance, AuditType: domain.AuditTypeFSR,
			ScheduledDate: "2024-03-05", Status: domain.StatusInProgress, ChecklistItems: half,
		},
		{
			ID: "a3", Location: domain.LocationDowney, AuditType: domain.AuditTypeMRR,
			ScheduledDate: "2024-03-12", Status: domain.StatusPending, ChecklistItems: make([]domain.ChecklistItem, 4),
		},
		// Outside the month; must be ignored.
		{
			ID: "a4", Location: domain.LocationDowney, AuditType: domain.AuditTypeMRR,
			ScheduledDate: "2024-04-01", Status: domain.StatusPending,
		},
	}
}

func TestGenerate(t *testing.T) {
	r := Generate(marchAudits(), 2024, 3)

	if r.Month != "March" || r.Year != 2024 {
		t.Fatalf("report period = %s %d", r.Month, r.Year)
	}
	if r.TotalAudits != 3 {
		t.Fatalf("total = %d, want 3", r.TotalAudits)
	}
	if r.CompletedAudits != 1 || r.InProgressAudits != 1 || r.PendingAudits != 1 {
		t.Fatalf("status counts = %d/%d/%d", r.CompletedAudits, r.InProgressAudits, r.PendingAudits)
	}
	if len(r.Visited) != 3 {
		t.Fatalf("visited = %d entries", len(r.Visited))
	}
	// Ascending by scheduled date.
	if r.Visited[0].ScheduledDate != "2024-03-05" || r.Visited[2].ScheduledDate != "2024-03-20" {
		t.Fatalf("visits not date-sorted: %s ... %s", r.Visited[0].ScheduledDate, r.Visited[2].ScheduledDate)
	}
	if r.Visited[0].LocationName != "Torrance" {
		t.Fatalf("location name = %q", r.Visited[0].LocationName)
	}
	if r.Visited[0].CompletionPercent != 50 {
		t.Fatalf("completion = %d%%, want 50", r.Visited[0].CompletionPercent)
	}
}

func TestGenerateEmptyMonth(t *testing.T) {
	r := Generate(marchAudits(), 2024, 7)
	if r.TotalAudits != 0 || len(r.Visited) != 0 {
		t.Fatalf("empty month report = %+v", r)
	}
	if r.Month != "July" {
		t.Fatalf("month = %s", r.Month)
	}
}

func TestCSV(t *testing.T) {
	out, err := Generate(marchAudits(), 2024, 3).CSV()
	if err != nil {
		t.Fatalf("CSV: %v", err)
	}
	for _, want := range []string{
		"Monthly Audit Report - March 2024",
		"Total Audits,3",
		"Date,Location,Type,Status,Completion %",
		"2024-03-20,Glendale,MRR,complete,100%",
		"2024-03-05,Torrance,FSR,in_progress,50%",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("csv missing %q:\n%s", want, out)
		}
	}
}

func TestText(t *testing.T) {
	generatedAt := time.Date(2024, 4, 1, 8, 30, 0, 0, time.UTC)
	out := Generate(marchAudits(), 2024, 3).Text(generatedAt)

	for _, want := range []string{
		"MONTHLY AUDIT REPORT",
		"March 2024",
		"Total Audits: 3",
		"1. Torrance",
		"Status: In Progress",
		"Generated on Apr 1, 2024 08:30:00",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("text missing %q:\n%s", want, out)
		}
	}

	empty := Generate(nil, 2024, 3).Text(generatedAt)
	if !strings.Contains(empty, "No audits scheduled for this month.") {
		t.Fatalf("empty report text missing placeholder:\n%s", empty)
	}
}
