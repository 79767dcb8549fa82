package domain

// DataStore is the uniform contract every storage backend implements. The
// audit store treats the backend as synchronously readable after every write
// even when durability underneath is asynchronous: implementations guarantee
// read-your-writes through their in-memory or cache layer, and durable
// failures are logged rather than surfaced.
type DataStore interface {
	// ListAudits returns all known audits. Asynchronous backends return the
	// current cache contents; an uninitialized cache triggers a background
	// refresh whose results become visible on a later call.
	ListAudits() []Audit

	// GetAudit returns the audit with the given id, if present.
	GetAudit(id string) (Audit, bool)

	// SaveAudit upserts by id. A subsequent GetAudit observes the saved value
	// immediately, even if the durable write is still in flight.
	SaveAudit(audit Audit)

	// DeleteAudit removes the audit from the visible collection immediately;
	// durable deletion may complete asynchronously. Unknown ids are ignored.
	DeleteAudit(id string)

	// UpdateAudit merges the patch over the stored record, refreshes
	// UpdatedAt, and saves. Unknown ids are logged and ignored.
	UpdateAudit(id string, patch AuditPatch)

	// Close flushes pending background work and releases resources.
	Close() error
}
