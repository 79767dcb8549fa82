package domain

// AuditPatch is a partial update applied over an existing audit. Nil fields
// are left untouched; a non-nil ChecklistItems slice replaces the checklist
// wholesale (item identity is preserved by callers, which only mutate items
// in place before submitting the patch).
type AuditPatch struct {
	Location       *LocationID
	AuditType      *AuditType
	ScheduledDate  *string
	Status         *AuditStatus
	ChecklistItems []ChecklistItem
}

// IsZero reports whether the patch carries no changes.
func (p AuditPatch) IsZero() bool {
	return p.Location == nil && p.AuditType == nil && p.ScheduledDate == nil &&
		p.Status == nil && p.ChecklistItems == nil
}

// Apply merges the patch over a and returns the result. The returned audit
// owns a fresh checklist slice whenever the patch replaces it, so callers can
// detect the change by reference. UpdatedAt is refreshed by the caller, which
// owns the clock.
func (p AuditPatch) Apply(a Audit) Audit {
	out := CloneAudit(a)
	if p.Location != nil {
		out.Location = *p.Location
	}
	if p.AuditType != nil {
		out.AuditType = *p.AuditType
	}
	if p.ScheduledDate != nil {
		out.ScheduledDate = *p.ScheduledDate
	}
	if p.Status != nil {
		out.Status = *p.Status
	}
	if p.ChecklistItems != nil {
		items := make([]ChecklistItem, len(p.ChecklistItems))
		copy(items, p.ChecklistItems)
		out.ChecklistItems = items
	}
	return out
}
