// Package memory provides an in-memory storage backend used for tests and
// ephemeral environments. All operations are synchronous.
package memory

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"auditcore/pkg/domain"
)

// Compile-time contract assertion ensuring the store satisfies the backend interface.
var _ domain.DataStore = (*Store)(nil)

// Store keeps the audit collection in process memory, in insertion order.
type Store struct {
	mu     sync.RWMutex
	audits []domain.Audit
	logger *zap.Logger
	nowFn  func() time.Time
}

// NewStore constructs an empty in-memory backend. A nil logger is replaced
// with a no-op logger.
func NewStore(logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		logger: logger,
		nowFn:  func() time.Time { return time.Now().UTC() },
	}
}

// SetNowFunc overrides the clock. Tests only.
func (s *Store) SetNowFunc(fn func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nowFn = fn
}

// ListAudits returns a copy of all stored audits.
func (s *Store) ListAudits() []domain.Audit {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.CloneAudits(s.audits)
}

// GetAudit returns the audit with the given id, if present.
func (s *Store) GetAudit(id string) (domain.Audit, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.audits {
		if a.ID == id {
			return domain.CloneAudit(a), true
		}
	}
	return domain.Audit{}, false
}

// SaveAudit upserts by id, preserving insertion order for existing records.
func (s *Store) SaveAudit(audit domain.Audit) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := domain.CloneAudit(audit)
	for i, a := range s.audits {
		if a.ID == audit.ID {
			s.audits[i] = stored
			return
		}
	}
	s.audits = append(s.audits, stored)
}

// DeleteAudit removes the audit with the given id. Unknown ids are ignored.
func (s *Store) DeleteAudit(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, a := range s.audits {
		if a.ID == id {
			s.audits = append(s.audits[:i], s.audits[i+1:]...)
			return
		}
	}
}

// UpdateAudit merges the patch over the stored record and refreshes
// UpdatedAt. Unknown ids are logged and ignored.
func (s *Store) UpdateAudit(id string, patch domain.AuditPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, a := range s.audits {
		if a.ID == id {
			updated := patch.Apply(a)
			updated.UpdatedAt = s.nowFn()
			s.audits[i] = updated
			return
		}
	}
	s.logger.Warn("update for unknown audit", zap.String("audit_id", id))
}

// Close is a no-op for the in-memory backend.
func (s *Store) Close() error { return nil }
