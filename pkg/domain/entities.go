// Package domain defines the core audit entities, value types, and the
// persistence contract shared by every storage backend.
package domain

import "time"

// AuditType identifies which checklist template an audit is built from.
type AuditType string

// Supported audit types.
const (
	// AuditTypeMRR is a medical record review audit.
	AuditTypeMRR AuditType = "MRR"
	// AuditTypeFSR is a facility site review audit.
	AuditTypeFSR AuditType = "FSR"
)

// Valid reports whether t is a known audit type.
func (t AuditType) Valid() bool {
	return t == AuditTypeMRR || t == AuditTypeFSR
}

// AuditStatus represents the derived lifecycle stage of an audit.
type AuditStatus string

// Canonical audit statuses. Transitions are driven by checklist completion
// (see NextStatus); a direct status override may diverge until the next toggle.
const (
	StatusPending    AuditStatus = "pending"
	StatusInProgress AuditStatus = "in_progress"
	StatusComplete   AuditStatus = "complete"
)

// Valid reports whether s is a known audit status.
func (s AuditStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusComplete:
		return true
	}
	return false
}

// Display returns a human-readable rendering of the status ("In Progress").
func (s AuditStatus) Display() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusInProgress:
		return "In Progress"
	case StatusComplete:
		return "Complete"
	}
	return string(s)
}

// ChecklistItem is a single yes/no compliance question on an audit.
type ChecklistItem struct {
	ID          string     `json:"id"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	Notes       string     `json:"notes,omitempty"`
}

// Audit is one scheduled compliance review of a facility. ChecklistItems is
// fixed at creation time from the template selected by AuditType; items are
// mutated in place, never added or removed.
type Audit struct {
	ID             string          `json:"id"`
	Location       LocationID      `json:"location"`
	AuditType      AuditType       `json:"auditType"`
	ScheduledDate  string          `json:"scheduledDate"` // ISO calendar date (YYYY-MM-DD)
	Status         AuditStatus     `json:"status"`
	ChecklistItems []ChecklistItem `json:"checklistItems"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// CompletedCount returns the number of completed checklist items.
func (a Audit) CompletedCount() int {
	n := 0
	for _, item := range a.ChecklistItems {
		if item.Completed {
			n++
		}
	}
	return n
}

// CompletionPercent returns the rounded percentage of completed items.
// An audit with no items reports zero.
func (a Audit) CompletionPercent() int {
	total := len(a.ChecklistItems)
	if total == 0 {
		return 0
	}
	return int(float64(a.CompletedCount())/float64(total)*100 + 0.5)
}

// CloneAudit returns a deep copy of a. The checklist slice is copied so the
// caller can mutate the result without aliasing store-owned state.
func CloneAudit(a Audit) Audit {
	out := a
	if a.ChecklistItems != nil {
		out.ChecklistItems = make([]ChecklistItem, len(a.ChecklistItems))
		copy(out.ChecklistItems, a.ChecklistItems)
	}
	return out
}

// CloneAudits deep-copies a slice of audits.
func CloneAudits(audits []Audit) []Audit {
	out := make([]Audit, len(audits))
	for i, a := range audits {
		out[i] = CloneAudit(a)
	}
	return out
}
