// Package sqlite provides the local synchronous storage backend. The whole
// audit collection is persisted as a JSON payload in a single bucket table,
// alongside a metadata record refreshed on every write.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"

	_ "modernc.org/sqlite" // pure go sqlite driver

	"auditcore/pkg/domain"
)

// Compile-time contract assertion ensuring the store satisfies the backend interface.
var _ domain.DataStore = (*Store)(nil)

const (
	auditsBucket   = "audits"
	metadataBucket = "metadata"
	schemaVersion  = "1.0.0"
)

// metadata mirrors the bookkeeping record stored next to the collection.
type metadata struct {
	Version      string    `json:"version"`
	LastModified time.Time `json:"last_modified"`
}

// Store persists audits to a SQLite file and serves reads from memory. Every
// mutation rewrites the collection bucket synchronously; persistence failures
// are logged, never surfaced, so the in-memory view stays authoritative for
// callers (the file is ground truth only across restarts).
type Store struct {
	mu     sync.Mutex
	db     *sql.DB
	path   string
	audits []domain.Audit
	logger *zap.Logger
	nowFn  func() time.Time
}

// NewStore opens (creating if needed) the SQLite file at path and hydrates
// the in-memory collection from it. An unreadable or malformed payload is
// treated as an empty collection, not an error.
func NewStore(path string, logger *zap.Logger) (*Store, error) {
	if path == "" {
		path = "auditcore.db"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("create dirs: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS state (
		bucket TEXT PRIMARY KEY,
		payload BLOB NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create state table: %w", err)
	}
	s := &Store{
		db:     db,
		path:   path,
		logger: logger,
		nowFn:  func() time.Time { return time.Now().UTC() },
	}
	s.load()
	return s, nil
}

// Path returns the configured database path.
func (s *Store) Path() string { return s.path }

// DB exposes the underlying sql.DB for integration testing hooks.
func (s *Store) DB() *sql.DB { return s.db }

// SetNowFunc overrides the clock. Tests only.
func (s *Store) SetNowFunc(fn func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nowFn = fn
}

// load hydrates the collection from the audits bucket. Fail-open: any read
// or decode problem leaves the collection empty.
func (s *Store) load() {
	var payload []byte
	err := s.db.QueryRow(`SELECT payload FROM state WHERE bucket = ?`, auditsBucket).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return
	}
	if err != nil {
		s.logger.Warn("read audits bucket", zap.Error(err))
		return
	}
	var audits []domain.Audit
	if err := json.Unmarshal(payload, &audits); err != nil {
		s.logger.Warn("decode audits bucket, starting empty", zap.Error(err))
		return
	}
	s.audits = audits
}

// persist rewrites the audits bucket and refreshes the metadata record in one
// transaction. Caller holds s.mu.
func (s *Store) persist() {
	data, err := json.Marshal(s.audits)
	if err != nil {
		s.logger.Error("encode audits", zap.Error(err))
		return
	}
	meta, err := json.Marshal(metadata{Version: schemaVersion, LastModified: s.nowFn()})
	if err != nil {
		s.logger.Error("encode metadata", zap.Error(err))
		return
	}
	tx, err := s.db.Begin()
	if err != nil {
		s.logger.Error("begin persist", zap.Error(err))
		return
	}
	const upsert = `INSERT INTO state(bucket,payload) VALUES(?,?) ON CONFLICT(bucket) DO UPDATE SET payload=excluded.payload`
	for bucket, payload := range map[string][]byte{auditsBucket: data, metadataBucket: meta} {
		if _, err := tx.Exec(upsert, bucket, payload); err != nil {
			s.logger.Error("upsert bucket", zap.String("bucket", bucket), zap.Error(err))
			_ = tx.Rollback()
			return
		}
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("commit persist", zap.Error(err))
	}
}

// ListAudits returns a copy of all stored audits.
func (s *Store) ListAudits() []domain.Audit {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.CloneAudits(s.audits)
}

// GetAudit returns the audit with the given id, if present.
func (s *Store) GetAudit(id string) (domain.Audit, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.audits {
		if a.ID == id {
			return domain.CloneAudit(a), true
		}
	}
	return domain.Audit{}, false
}

// SaveAudit upserts by id and persists the collection.
func (s *Store) SaveAudit(audit domain.Audit) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := domain.CloneAudit(audit)
	replaced := false
	for i, a := range s.audits {
		if a.ID == audit.ID {
			s.audits[i] = stored
			replaced = true
			break
		}
	}
	if !replaced {
		s.audits = append(s.audits, stored)
	}
	s.persist()
}

// DeleteAudit removes the audit with the given id and persists the
// collection. Unknown ids are ignored.
func (s *Store) DeleteAudit(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, a := range s.audits {
		if a.ID == id {
			s.audits = append(s.audits[:i], s.audits[i+1:]...)
			s.persist()
			return
		}
	}
}

// UpdateAudit merges the patch over the stored record, refreshes UpdatedAt,
// and persists. Unknown ids are logged and ignored.
func (s *Store) UpdateAudit(id string, patch domain.AuditPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, a := range s.audits {
		if a.ID == id {
			updated := patch.Apply(a)
			updated.UpdatedAt = s.nowFn()
			s.audits[i] = updated
			s.persist()
			return
		}
	}
	s.logger.Warn("update for unknown audit", zap.String("audit_id", id))
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
