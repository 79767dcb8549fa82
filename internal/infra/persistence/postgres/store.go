// Package postgres provides the remote asynchronous storage backend. Reads
// are served from an in-process cache; durable writes are submitted to a
// background worker and never joined back to the caller, so the visible
// collection stays responsive when the database is slow or down.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	_ "github.com/jackc/pgx/v5/stdlib" // register pgx as a database/sql driver

	"auditcore/pkg/domain"
)

// Compile-time contract assertion ensuring the store satisfies the backend interface.
var _ domain.DataStore = (*Store)(nil)

const (
	defaultDriver = "pgx"
	defaultDSN    = "postgres://localhost/auditcore?sslmode=disable"

	// queueDepth bounds outstanding fire-and-forget writes before callers
	// start blocking on submission.
	queueDepth = 64
)

var (
	sqlOpen = sql.Open
	openMu  sync.Mutex
)

// job is one durable operation awaiting execution on the worker goroutine.
type job struct {
	op  string
	run func(ctx context.Context) error
}

// Store caches the audit collection in memory and mirrors it to a Postgres
// table with snake_case columns. Cache updates are synchronous and immediate;
// durable writes are last-write-wins in submission order, and their failures
// are logged only.
type Store struct {
	mu          sync.Mutex
	db          *sql.DB
	cache       []domain.Audit
	initialized bool
	refreshing  bool

	jobs   chan job
	wg     sync.WaitGroup
	logger *zap.Logger
	nowFn  func() time.Time
}

// NewStore opens a Postgres-backed store using the provided DSN (falls back
// to defaultDSN), ensures the audits table exists, and starts the background
// write worker. The cache starts cold; the first ListAudits triggers a
// background refresh, or call Refresh for a warm start.
func NewStore(dsn string, logger *zap.Logger) (*Store, error) {
	if dsn == "" {
		dsn = defaultDSN
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	openMu.Lock()
	db, err := sqlOpen(defaultDriver, dsn)
	openMu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	ctx := context.Background()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	if err := ensureAuditsTable(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	s := &Store{
		db:     db,
		jobs:   make(chan job, queueDepth),
		logger: logger,
		nowFn:  func() time.Time { return time.Now().UTC() },
	}
	s.wg.Add(1)
	go s.worker()
	return s, nil
}

// DB exposes the underlying sql.DB for integration testing hooks.
func (s *Store) DB() *sql.DB { return s.db }

// SetNowFunc overrides the clock. Tests only.
func (s *Store) SetNowFunc(fn func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nowFn = fn
}

func ensureAuditsTable(ctx context.Context, db *sql.DB) error {
	ddl := `CREATE TABLE IF NOT EXISTS audits (
		id TEXT PRIMARY KEY,
		location TEXT NOT NULL,
		audit_type TEXT NOT NULL,
		scheduled_date TEXT NOT NULL,
		status TEXT NOT NULL,
		checklist_items JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`
	if _, err := db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("ensure audits table: %w", err)
	}
	return nil
}

// worker executes durable operations in submission order until Close.
func (s *Store) worker() {
	defer s.wg.Done()
	for j := range s.jobs {
		if err := j.run(context.Background()); err != nil {
			s.logger.Error("durable write failed", zap.String("op", j.op), zap.Error(err))
		}
	}
}

// submit hands a durable operation to the worker without waiting for it.
func (s *Store) submit(op string, run func(ctx context.Context) error) {
	s.jobs <- job{op: op, run: run}
}

// ListAudits returns the current cache contents. A cold cache triggers one
// background refresh; the first call may observe an empty collection while
// the refresh is in flight. That staleness window is accepted, not an error.
func (s *Store) ListAudits() []domain.Audit {
	s.mu.Lock()
	if !s.initialized && !s.refreshing {
		s.refreshing = true
		s.submit("refresh", func(ctx context.Context) error {
			return s.refresh(ctx)
		})
	}
	audits := domain.CloneAudits(s.cache)
	s.mu.Unlock()
	return audits
}

// Refresh synchronously replaces the cache from the database. Composition
// points that need a warm cache before first use call this explicitly.
func (s *Store) Refresh(ctx context.Context) error {
	return s.refresh(ctx)
}

func (s *Store) refresh(ctx context.Context) error {
	audits, err := s.fetchAudits(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refreshing = false
	if err != nil {
		// Leave the cache as is; the backend stays usable offline.
		return err
	}
	s.cache = audits
	s.initialized = true
	return nil
}

func (s *Store) fetchAudits(ctx context.Context) ([]domain.Audit, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, location, audit_type, scheduled_date, status, checklist_items, created_at, updated_at
		FROM audits ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("select audits: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var audits []domain.Audit
	for rows.Next() {
		audit, err := scanAudit(rows)
		if err != nil {
			return nil, err
		}
		audits = append(audits, audit)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audits: %w", err)
	}
	return audits, nil
}

// GetAudit returns the cached audit with the given id, if present.
func (s *Store) GetAudit(id string) (domain.Audit, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.cache {
		if a.ID == id {
			return domain.CloneAudit(a), true
		}
	}
	return domain.Audit{}, false
}

// SaveAudit upserts the cache immediately and submits the durable upsert.
// New records go to the front, matching the created_at descending order the
// refresh query produces.
func (s *Store) SaveAudit(audit domain.Audit) {
	stored := domain.CloneAudit(audit)
	s.mu.Lock()
	replaced := false
	for i, a := range s.cache {
		if a.ID == audit.ID {
			s.cache[i] = stored
			replaced = true
			break
		}
	}
	if !replaced {
		s.cache = append([]domain.Audit{stored}, s.cache...)
	}
	s.mu.Unlock()

	durable := domain.CloneAudit(stored)
	s.submit("save", func(ctx context.Context) error {
		return s.upsertAudit(ctx, durable)
	})
}

// DeleteAudit removes the audit from the cache immediately and submits the
// durable delete. Unknown ids are ignored.
func (s *Store) DeleteAudit(id string) {
	s.mu.Lock()
	for i, a := range s.cache {
		if a.ID == id {
			s.cache = append(s.cache[:i], s.cache[i+1:]...)
			break
		}
	}
	s.mu.Unlock()

	s.submit("delete", func(ctx context.Context) error {
		if _, err := s.db.ExecContext(ctx, `DELETE FROM audits WHERE id = $1`, id); err != nil {
			return fmt.Errorf("delete audit %s: %w", id, err)
		}
		return nil
	})
}

// UpdateAudit merges the patch over the cached record, refreshes UpdatedAt,
// and saves. Unknown ids are logged and ignored.
func (s *Store) UpdateAudit(id string, patch domain.AuditPatch) {
	s.mu.Lock()
	var updated domain.Audit
	found := false
	for _, a := range s.cache {
		if a.ID == id {
			updated = patch.Apply(a)
			updated.UpdatedAt = s.nowFn()
			found = true
			break
		}
	}
	s.mu.Unlock()

	if !found {
		s.logger.Warn("update for unknown audit", zap.String("audit_id", id))
		return
	}
	s.SaveAudit(updated)
}

// Close drains the write queue, stops the worker, and closes the database.
func (s *Store) Close() error {
	close(s.jobs)
	s.wg.Wait()
	return s.db.Close()
}

func (s *Store) upsertAudit(ctx context.Context, audit domain.Audit) error {
	items, err := json.Marshal(audit.ChecklistItems)
	if err != nil {
		return fmt.Errorf("encode checklist items: %w", err)
	}
	const upsert = `INSERT INTO audits (id, location, audit_type, scheduled_date, status, checklist_items, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			location = EXCLUDED.location,
			audit_type = EXCLUDED.audit_type,
			scheduled_date = EXCLUDED.scheduled_date,
			status = EXCLUDED.status,
			checklist_items = EXCLUDED.checklist_items,
			updated_at = EXCLUDED.updated_at`
	if _, err := s.db.ExecContext(ctx, upsert,
		audit.ID, string(audit.Location), string(audit.AuditType), audit.ScheduledDate,
		string(audit.Status), items, audit.CreatedAt, audit.UpdatedAt); err != nil {
		return fmt.Errorf("upsert audit %s: %w", audit.ID, err)
	}
	return nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanAudit reconstructs the logical audit shape from a snake_case row.
func scanAudit(row rowScanner) (domain.Audit, error) {
	var (
		audit    domain.Audit
		location string
		kind     string
		status   string
		items    []byte
	)
	if err := row.Scan(&audit.ID, &location, &kind, &audit.ScheduledDate, &status, &items, &audit.CreatedAt, &audit.UpdatedAt); err != nil {
		return domain.Audit{}, fmt.Errorf("scan audit: %w", err)
	}
	audit.Location = domain.LocationID(location)
	audit.AuditType = domain.AuditType(kind)
	audit.Status = domain.AuditStatus(status)
	if len(items) > 0 {
		if err := json.Unmarshal(items, &audit.ChecklistItems); err != nil {
			return domain.Audit{}, fmt.Errorf("decode checklist items for %s: %w", audit.ID, err)
		}
	}
	return audit, nil
}

// OverrideSQLOpen swaps the sqlOpen function for tests and returns a restore function.
func OverrideSQLOpen(fn func(driverName, dataSourceName string) (*sql.DB, error)) func() {
	openMu.Lock()
	defer openMu.Unlock()
	prev := sqlOpen
	sqlOpen = fn
	return func() {
		openMu.Lock()
		defer openMu.Unlock()
		sqlOpen = prev
	}
}
