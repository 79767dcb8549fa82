package sqlite

import (
	"database/sql"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"auditcore/pkg/domain"
)

func sampleAudit(id string, date string) domain.Audit {
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	return domain.Audit{
		ID:            id,
		Location:      domain.LocationGlendale,
		AuditType:     domain.AuditTypeMRR,
		ScheduledDate: date,
		Status:        domain.StatusPending,
		ChecklistItems: []domain.ChecklistItem{
			{ID: "i1", Description: "first", Category: "General"},
			{ID: "i2", Description: "second", Category: "General"},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "audits.db")
	store, err := NewStore(path, nil)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store, path
}

func TestPersistAcrossReopen(t *testing.T) {
	store, path := newTestStore(t)
	store.SaveAudit(sampleAudit("a1", "2024-03-15"))
	store.SaveAudit(sampleAudit("a2", "2024-03-20"))
	store.DeleteAudit("a2")
	if err := store.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := NewStore(path, nil)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer func() { _ = reopened.Close() }()

	audits := reopened.ListAudits()
	if len(audits) != 1 || audits[0].ID != "a1" {
		t.Fatalf("reloaded collection = %+v", audits)
	}
	if len(audits[0].ChecklistItems) != 2 {
		t.Fatalf("checklist items not round-tripped: %+v", audits[0].ChecklistItems)
	}
}

func TestUpdatePersists(t *testing.T) {
	store, path := newTestStore(t)
	store.SaveAudit(sampleAudit("a1", "2024-03-15"))

	status := domain.StatusComplete
	store.UpdateAudit("a1", domain.AuditPatch{Status: &status})
	_ = store.Close()

	reopened, err := NewStore(path, nil)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer func() { _ = reopened.Close() }()

	got, ok := reopened.GetAudit("a1")
	if !ok || got.Status != domain.StatusComplete {
		t.Fatalf("patched status not persisted: %+v, %v", got, ok)
	}
}

func TestMetadataRefreshedOnWrite(t *testing.T) {
	store, _ := newTestStore(t)
	frozen := time.Date(2024, 3, 16, 10, 0, 0, 0, time.UTC)
	store.SetNowFunc(func() time.Time { return frozen })
	store.SaveAudit(sampleAudit("a1", "2024-03-15"))

	var payload []byte
	err := store.DB().QueryRow(`SELECT payload FROM state WHERE bucket = ?`, metadataBucket).Scan(&payload)
	if err != nil {
		t.Fatalf("read metadata bucket: %v", err)
	}
	var meta metadata
	if err := json.Unmarshal(payload, &meta); err != nil {
		t.Fatalf("decode metadata: %v", err)
	}
	if meta.Version != schemaVersion {
		t.Fatalf("metadata version = %q, want %q", meta.Version, schemaVersion)
	}
	if !meta.LastModified.Equal(frozen) {
		t.Fatalf("metadata last_modified = %s, want %s", meta.LastModified, frozen)
	}
}

func TestMalformedPayloadStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audits.db")

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open raw db: %v", err)
	}
	if _, err := db.Exec(`CREATE TABLE state (bucket TEXT PRIMARY KEY, payload BLOB NOT NULL)`); err != nil {
		t.Fatalf("create state table: %v", err)
	}
	if _, err := db.Exec(`INSERT INTO state(bucket,payload) VALUES(?,?)`, auditsBucket, []byte("{not json")); err != nil {
		t.Fatalf("insert garbage: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("close raw db: %v", err)
	}

	store, err := NewStore(path, nil)
	if err != nil {
		t.Fatalf("NewStore over malformed payload: %v", err)
	}
	defer func() { _ = store.Close() }()

	if audits := store.ListAudits(); len(audits) != 0 {
		t.Fatalf("malformed payload produced %d audits", len(audits))
	}

	// The store stays writable and the next persist replaces the garbage.
	store.SaveAudit(sampleAudit("a1", "2024-03-15"))
	if _, ok := store.GetAudit("a1"); !ok {
		t.Fatalf("store not writable after malformed load")
	}
}

func TestDefaultPath(t *testing.T) {
	store, err := NewStore(filepath.Join(t.TempDir(), "nested", "dir", "audits.db"), nil)
	if err != nil {
		t.Fatalf("NewStore with nested path: %v", err)
	}
	defer func() { _ = store.Close() }()
	if store.Path() == "" {
		t.Fatalf("empty path")
	}
}
