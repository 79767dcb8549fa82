// Package core implements the audit store: the component that owns the
// canonical in-memory audit collection, mediates every read and write against
// a storage backend, and derives audit status from checklist completion.
package core

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"auditcore/internal/templates"
	"auditcore/pkg/domain"
)

// Store owns the in-memory audit collection and writes through to a storage
// backend on every mutation, so a read immediately following a write observes
// the new value. The collection order is insertion/load order.
//
// Store methods expect a single logical mutating caller; the internal mutex
// only protects the collection against concurrent readers.
type Store struct {
	mu      sync.Mutex
	backend domain.DataStore
	audits  []domain.Audit
	loading bool

	logger  *zap.Logger
	metrics *Metrics
	nowFn   func() time.Time
	newID   func() string
}

// Option configures a Store.
type Option func(*Store)

// WithLogger attaches a logger for not-found warnings.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMetrics attaches an operation metrics recorder.
func WithMetrics(metrics *Metrics) Option {
	return func(s *Store) { s.metrics = metrics }
}

// WithNowFunc overrides the clock. Tests only.
func WithNowFunc(fn func() time.Time) Option {
	return func(s *Store) {
		if fn != nil {
			s.nowFn = fn
		}
	}
}

// WithIDFunc overrides audit id generation. Tests only.
func WithIDFunc(fn func() string) Option {
	return func(s *Store) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// NewStore constructs an audit store over the given backend. The collection
// starts empty; call LoadAudits to hydrate it.
func NewStore(backend domain.DataStore, opts ...Option) *Store {
	s := &Store{
		backend: backend,
		logger:  zap.NewNop(),
		nowFn:   func() time.Time { return time.Now().UTC() },
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) observe(operation string, start time.Time) {
	s.metrics.Observe(operation, time.Since(start))
}

// LoadAudits replaces the entire in-memory collection with the backend's
// current view. Not incremental; idempotent and safe to call repeatedly.
func (s *Store) LoadAudits() {
	defer s.observe("load_audits", s.nowFn())
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	audits := s.backend.ListAudits()

	s.mu.Lock()
	s.audits = audits
	s.loading = false
	s.mu.Unlock()
}

// IsLoading reports whether a LoadAudits call is in flight.
func (s *Store) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Audits returns a copy of the in-memory collection in its current order.
func (s *Store) Audits() []domain.Audit {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.CloneAudits(s.audits)
}

// CreateAudit expands the template for auditType into a fresh uncompleted
// checklist, persists the new audit, and appends it to the collection. The
// template data itself is never aliased.
func (s *Store) CreateAudit(location domain.LocationID, auditType domain.AuditType, scheduledDate string) (domain.Audit, error) {
	defer s.observe("create_audit", s.nowFn())
	template, ok := templates.Get(auditType)
	if !ok {
		return domain.Audit{}, fmt.Errorf("no checklist template for audit type %q", auditType)
	}
	now := s.nowFn()
	audit := domain.Audit{
		ID:             s.newID(),
		Location:       location,
		AuditType:      auditType,
		ScheduledDate:  scheduledDate,
		Status:         domain.StatusPending,
		ChecklistItems: template.Flatten(),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	s.backend.SaveAudit(audit)

	s.mu.Lock()
	s.audits = append(s.audits, domain.CloneAudit(audit))
	s.mu.Unlock()
	return audit, nil
}

// DeleteAudit removes the audit from the backend and the collection. Unknown
// ids are logged and ignored.
func (s *Store) DeleteAudit(id string) {
	defer s.observe("delete_audit", s.nowFn())
	s.backend.DeleteAudit(id)

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, a := range s.audits {
		if a.ID == id {
			s.audits = append(s.audits[:i], s.audits[i+1:]...)
			return
		}
	}
	s.logger.Warn("delete for unknown audit", zap.String("audit_id", id))
}

// UpdateAudit writes the patch through to the backend, then replaces the
// in-memory record with the merged result. The replaced record and its
// checklist slice are fresh values, so downstream observers can detect the
// change by reference. Unknown ids are logged and ignored.
func (s *Store) UpdateAudit(id string, patch domain.AuditPatch) {
	defer s.observe("update_audit", s.nowFn())
	s.backend.UpdateAudit(id, patch)

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

// UpdateStatus overrides the audit status directly, bypassing derivation.
// The caller-supplied status wins until the next checklist toggle recomputes it.
func (s *Store) UpdateStatus(id string, status domain.AuditStatus) {
	s.UpdateAudit(id, domain.AuditPatch{Status: &status})
}

// ToggleChecklistItem flips the completion state of one checklist item, sets
// or clears its completion timestamp, recomputes the audit status, and writes
// the result through UpdateAudit. Unknown audit or item ids are logged and
// ignored.
func (s *Store) ToggleChecklistItem(auditID, itemID string) {
	defer s.observe("toggle_item", s.nowFn())
	s.mu.Lock()
	audit, ok := s.findLocked(auditID)
	s.mu.Unlock()
	if !ok {
		s.logger.Warn("toggle for unknown audit", zap.String("audit_id", auditID))
		return
	}

	items := make([]domain.ChecklistItem, len(audit.ChecklistItems))
	copy(items, audit.ChecklistItems)
	toggled := false
	for i, item := range items {
		if item.ID != itemID {
			continue
		}
		item.Completed = !item.Completed
		if item.Completed {
			now := s.nowFn()
			item.CompletedAt = &now
		} else {
			item.CompletedAt = nil
		}
		items[i] = item
		toggled = true
		break
	}
	if !toggled {
		s.logger.Warn("toggle for unknown checklist item",
			zap.String("audit_id", auditID), zap.String("item_id", itemID))
		return
	}

	completed := 0
	for _, item := range items {
		if item.Completed {
			completed++
		}
	}
	status := domain.NextStatus(completed, len(items), audit.Status)

	s.UpdateAudit(auditID, domain.AuditPatch{ChecklistItems: items, Status: &status})
}

// UpdateChecklistItemNotes sets the notes on one checklist item, persists the
// change, and then reloads the whole collection from the backend. The full
// reload is deliberate: notes edits take the heavier synchronization path.
func (s *Store) UpdateChecklistItemNotes(auditID, itemID, notes string) {
	defer s.observe("update_notes", s.nowFn())
	s.mu.Lock()
	audit, ok := s.findLocked(auditID)
	s.mu.Unlock()
	if !ok {
		s.logger.Warn("notes update for unknown audit", zap.String("audit_id", auditID))
		return
	}

	items := make([]domain.ChecklistItem, len(audit.ChecklistItems))
	copy(items, audit.ChecklistItems)
	found := false
	for i, item := range items {
		if item.ID == itemID {
			item.Notes = notes
			items[i] = item
			found = true
			break
		}
	}
	if !found {
		s.logger.Warn("notes update for unknown checklist item",
			zap.String("audit_id", auditID), zap.String("item_id", itemID))
		return
	}

	s.backend.UpdateAudit(auditID, domain.AuditPatch{ChecklistItems: items})
	s.LoadAudits()
}

// GetAuditByID returns the audit with the given id, if present.
func (s *Store) GetAuditByID(id string) (domain.Audit, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if audit, ok := s.findLocked(id); ok {
		return domain.CloneAudit(audit), true
	}
	return domain.Audit{}, false
}

// GetUpcomingAudits returns all audits that are not complete, ascending by
// scheduled date.
func (s *Store) GetUpcomingAudits() []domain.Audit {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Audit
	for _, a := range s.audits {
		if a.Status != domain.StatusComplete {
			out = append(out, domain.CloneAudit(a))
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ScheduledDate < out[j].ScheduledDate
	})
	return out
}

// GetAuditsByStatus returns all audits with the given status in collection order.
func (s *Store) GetAuditsByStatus(status domain.AuditStatus) []domain.Audit {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Audit
	for _, a := range s.audits {
		if a.Status == status {
			out = append(out, domain.CloneAudit(a))
		}
	}
	return out
}

// AuditsForMonth returns all audits whose scheduled date falls inside the
// given calendar month (month is 1-12), in collection order. Reporting
// callers derive per-status counts and completion percentages from the result.
func (s *Store) AuditsForMonth(year, month int) []domain.Audit {
	prefix := fmt.Sprintf("%04d-%02d", year, month)
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Audit
	for _, a := range s.audits {
		if strings.HasPrefix(a.ScheduledDate, prefix) {
			out = append(out, domain.CloneAudit(a))
		}
	}
	return out
}

// findLocked locates an audit by id. Caller holds s.mu.
func (s *Store) findLocked(id string) (domain.Audit, bool) {
	for _, a := range s.audits {
		if a.ID == id {
			return a, true
		}
	}
	return domain.Audit{}, false
}
