package core

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"auditcore/internal/infra/persistence/memory"
	"auditcore/internal/infra/persistence/postgres"
	"auditcore/internal/infra/persistence/sqlite"
	"auditcore/pkg/domain"
)

// StorageDriver identifies a concrete storage backend implementation.
type StorageDriver string

const (
	StorageMemory   StorageDriver = "memory"   // in-memory only (tests / ephemeral)
	StorageSQLite   StorageDriver = "sqlite"   // local synchronous sqlite file
	StoragePostgres StorageDriver = "postgres" // remote asynchronous PostgreSQL + cache
)

// OpenDataStore selects a storage backend using environment variables.
// Defaults to sqlite when unset.
//
//	AUDITCORE_STORAGE_DRIVER: memory|sqlite|postgres (default sqlite)
//	AUDITCORE_SQLITE_PATH: path to sqlite file (default ./auditcore.db)
//	AUDITCORE_POSTGRES_DSN: postgres DSN when driver=postgres
func OpenDataStore(logger *zap.Logger) (domain.DataStore, error) {
	driver := os.Getenv("AUDITCORE_STORAGE_DRIVER")
	if driver == "" {
		driver = string(StorageSQLite)
	}
	switch StorageDriver(driver) {
	case StorageMemory:
		return memory.NewStore(logger), nil
	case StorageSQLite:
		path := os.Getenv("AUDITCORE_SQLITE_PATH")
		return sqlite.NewStore(path, logger)
	case StoragePostgres:
		dsn := os.Getenv("AUDITCORE_POSTGRES_DSN")
		return postgres.NewStore(dsn, logger)
	default:
		return nil, fmt.Errorf("unknown storage driver %s", driver)
	}
}
