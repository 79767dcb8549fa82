// Package report derives monthly summaries from the audit collection and
// renders them as CSV or plain text. The audit store places no format
// requirements on these outputs; everything here is computed from the audits
// a caller passes in.
package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"auditcore/pkg/domain"
)

// LocationVisit is one audited site inside a monthly report.
type LocationVisit struct {
	Location          domain.LocationID  `json:"location"`
	LocationName      string             `json:"locationName"`
	AuditType         domain.AuditType   `json:"auditType"`
	ScheduledDate     string             `json:"scheduledDate"`
	Status            domain.AuditStatus `json:"status"`
	CompletionPercent int                `json:"completionPercentage"`
}

// MonthlyReport aggregates one calendar month of audits.
type MonthlyReport struct {
	Month            string          `json:"month"`
	Year             int             `json:"year"`
	Visited          []LocationVisit `json:"visitedLocations"`
	TotalAudits      int             `json:"totalAudits"`
	CompletedAudits  int             `json:"completedAudits"`
	InProgressAudits int             `json:"inProgressAudits"`
	PendingAudits    int             `json:"pendingAudits"`
}

// Generate builds the monthly report for the given year and month (1-12)
// from the supplied audits. Audits outside the month are ignored, so callers
// may pass either a pre-filtered or a full collection.
func Generate(audits []domain.Audit, year, month int) MonthlyReport {
	prefix := fmt.Sprintf("%04d-%02d", year, month)

	r := MonthlyReport{
		Month: time.Month(month).String(),
		Year:  year,
	}
	for _, audit := range audits {
		if !strings.HasPrefix(audit.ScheduledDate, prefix) {
			continue
		}
		r.TotalAudits++
		switch audit.Status {
		case domain.StatusComplete:
			r.CompletedAudits++
		case domain.StatusInProgress:
			r.InProgressAudits++
		case domain.StatusPending:
			r.PendingAudits++
		}
		r.Visited = append(r.Visited, LocationVisit{
			Location:          audit.Location,
			LocationName:      audit.Location.DisplayName(),
			AuditType:         audit.AuditType,
			ScheduledDate:     audit.ScheduledDate,
			Status:            audit.Status,
			CompletionPercent: audit.CompletionPercent(),
		})
	}
	sort.SliceStable(r.Visited, func(i, j int) bool {
		return r.Visited[i].ScheduledDate < r.Visited[j].ScheduledDate
	})
	return r
}
