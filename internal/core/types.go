package core

import "auditcore/pkg/domain"

type (
	Audit         = domain.Audit
	AuditPatch    = domain.AuditPatch
	AuditStatus   = domain.AuditStatus
	AuditType     = domain.AuditType
	ChecklistItem = domain.ChecklistItem
	DataStore     = domain.DataStore
	LocationID    = domain.LocationID
)

const (
	StatusPending    = domain.StatusPending
	StatusInProgress = domain.StatusInProgress
	StatusComplete   = domain.StatusComplete
)

const (
	AuditTypeMRR = domain.AuditTypeMRR
	AuditTypeFSR = domain.AuditTypeFSR
)
