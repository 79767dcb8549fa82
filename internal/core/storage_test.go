package core

import (
	"path/filepath"
	"testing"

	"auditcore/internal/infra/persistence/memory"
	"auditcore/internal/infra/persistence/sqlite"
)

func TestOpenDataStoreMemory(t *testing.T) {
	t.Setenv("AUDITCORE_STORAGE_DRIVER", "memory")

	backend, err := OpenDataStore(nil)
	if err != nil {
		t.Fatalf("OpenDataStore: %v", err)
	}
	defer func() { _ = backend.Close() }()

	if _, ok := backend.(*memory.Store); !ok {
		t.Fatalf("driver memory produced %T", backend)
	}
}

func TestOpenDataStoreSQLiteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audits.db")
	t.Setenv("AUDITCORE_STORAGE_DRIVER", "")
	t.Setenv("AUDITCORE_SQLITE_PATH", path)

	backend, err := OpenDataStore(nil)
	if err != nil {
		t.Fatalf("OpenDataStore: %v", err)
	}
	defer func() { _ = backend.Close() }()

	store, ok := backend.(*sqlite.Store)
	if !ok {
		t.Fatalf("default driver produced %T", backend)
	}
	if store.Path() != path {
		t.Fatalf("sqlite path = %s, want %s", store.Path(), path)
	}
}

func TestOpenDataStoreUnknownDriver(t *testing.T) {
	t.Setenv("AUDITCORE_STORAGE_DRIVER", "etcd")
	if _, err := OpenDataStore(nil); err == nil {
		t.Fatalf("expected error for unknown driver")
	}
}
