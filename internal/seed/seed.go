// Package seed generates randomized historical audits for development
// databases. Records are written through the storage backend contract, so any
// driver can be seeded.
package seed

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"

	"auditcore/internal/templates"
	"auditcore/pkg/domain"
)

// Options bounds the generated data set.
type Options struct {
	MonthsBack     int     // how many months of history to generate
	AuditsPerMonth int     // average audits per month (jittered by one)
	CompletionRate float64 // share of audits generated fully complete (0-1)
	Seed           int64   // rng seed; zero means time-based
}

// DefaultOptions mirrors the shape of a realistic six-month history.
func DefaultOptions() Options {
	return Options{MonthsBack: 6, AuditsPerMonth: 4, CompletionRate: 0.75}
}

// Stats summarizes a generated data set.
type Stats struct {
	TotalAudits     int
	MRRCount        int
	FSRCount        int
	StatusCounts    map[domain.AuditStatus]int
	UniqueLocations int
}

// Generate builds the audit history described by opts and saves each record
// through the backend. Generated audits are returned newest first.
func Generate(backend domain.DataStore, opts Options, now time.Time) ([]domain.Audit, error) {
	if opts.MonthsBack <= 0 {
		opts.MonthsBack = 1
	}
	if opts.AuditsPerMonth <= 0 {
		opts.AuditsPerMonth = 1
	}
	if opts.CompletionRate < 0 || opts.CompletionRate > 1 {
		return nil, fmt.Errorf("completion rate %v out of range [0,1]", opts.CompletionRate)
	}
	seedVal := opts.Seed
	if seedVal == 0 {
		seedVal = now.UnixNano()
	}
	rng := rand.New(rand.NewSource(seedVal))

	var audits []domain.Audit
	for monthOffset := 0; monthOffset < opts.MonthsBack; monthOffset++ {
		target := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -monthOffset, 0)
		count := opts.AuditsPerMonth + rng.Intn(3) - 1
		if count < 1 {
			count = 1
		}
		// Older audits are more likely to have been finished.
		rate := opts.CompletionRate
		if monthOffset > 2 {
			rate += 0.15
			if rate > 1 {
				rate = 1
			}
		}
		for i := 0; i < count; i++ {
			audit, err := generateAudit(rng, target, rng.Float64() < rate)
			if err != nil {
				return nil, err
			}
			audits = append(audits, audit)
		}
	}

	sort.SliceStable(audits, func(i, j int) bool {
		return audits[i].ScheduledDate > audits[j].ScheduledDate
	})
	for _, audit := range audits {
		backend.SaveAudit(audit)
	}
	return audits, nil
}

// generateAudit builds one audit scheduled inside the month of target.
func generateAudit(rng *rand.Rand, target time.Time, complete bool) (domain.Audit, error) {
	locations := domain.Locations()
	location := locations[rng.Intn(len(locations))]
	auditType := domain.AuditTypeMRR
	if rng.Intn(2) == 1 {
		auditType = domain.AuditTypeFSR
	}
	template, ok := templates.Get(auditType)
	if !ok {
		return domain.Audit{}, fmt.Errorf("no checklist template for audit type %q", auditType)
	}

	daysInMonth := target.AddDate(0, 1, -1).Day()
	scheduled := time.Date(target.Year(), target.Month(), 1+rng.Intn(daysInMonth), 0, 0, 0, 0, time.UTC)

	items := template.Flatten()
	for i := range items {
		// Complete audits get every item; partial ones land in an 85-95%
		// completion draw per item.
		done := complete || rng.Float64() < 0.85+rng.Float64()*0.1
		if done {
			completedAt := scheduled.Add(time.Duration(rng.Intn(8)) * time.Hour)
			items[i].Completed = true
			items[i].CompletedAt = &completedAt
		}
		if rng.Float64() < 0.1 {
			items[i].Notes = "Sample note from seeded data"
		}
	}

	completed := 0
	for _, item := range items {
		if item.Completed {
			completed++
		}
	}
	status := domain.NextStatus(completed, len(items), domain.StatusPending)

	createdAt := scheduled.AddDate(0, 0, -(1 + rng.Intn(14)))
	updatedAt := createdAt
	if status != domain.StatusPending {
		updatedAt = scheduled.AddDate(0, 0, rng.Intn(8))
	}

	return domain.Audit{
		ID:             uuid.NewString(),
		Location:       location,
		AuditType:      auditType,
		ScheduledDate:  scheduled.Format("2006-01-02"),
		Status:         status,
		ChecklistItems: items,
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}, nil
}

// Summarize derives summary statistics for a generated data set.
func Summarize(audits []domain.Audit) Stats {
	stats := Stats{
		TotalAudits:  len(audits),
		StatusCounts: make(map[domain.AuditStatus]int),
	}
	seen := make(map[domain.LocationID]struct{})
	for _, audit := range audits {
		switch audit.AuditType {
		case domain.AuditTypeMRR:
			stats.MRRCount++
		case domain.AuditTypeFSR:
			stats.FSRCount++
		}
		stats.StatusCounts[audit.Status]++
		seen[audit.Location] = struct{}{}
	}
	stats.UniqueLocations = len(seen)
	return stats
}
