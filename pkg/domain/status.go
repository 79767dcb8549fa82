package domain

// NextStatus derives the audit status that follows a checklist toggle.
//
// Zero completed items always forces pending, a full checklist always forces
// complete, and the first completed item promotes a pending audit to
// in_progress. Any other intermediate state keeps the previous status so a
// manual override survives until the checklist reaches one of the bounds.
func NextStatus(completed, total int, previous AuditStatus) AuditStatus {
	switch {
	case completed == 0:
		return StatusPending
	case completed == total:
		return StatusComplete
	case previous == StatusPending:
		return StatusInProgress
	default:
		return previous
	}
}
