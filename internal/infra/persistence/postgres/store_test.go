package postgres

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"go.uber.org/zap"

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

// cacheOnlyStore builds a store whose durable writes park in the queue,
// exercising the synchronous cache path without a database.
func cacheOnlyStore() *Store {
	return &Store{
		jobs:   make(chan job, queueDepth),
		logger: zap.NewNop(),
		nowFn:  func() time.Time { return time.Date(2024, 3, 16, 10, 0, 0, 0, time.UTC) },
	}
}

func TestSavePrependsNewRecords(t *testing.T) {
	store := cacheOnlyStore()
	store.SaveAudit(sampleAudit("a1", "2024-03-15"))
	store.SaveAudit(sampleAudit("a2", "2024-03-20"))

	audits := store.ListAudits()
	if len(audits) != 2 {
		t.Fatalf("expected 2 audits, got %d", len(audits))
	}
	if audits[0].ID != "a2" || audits[1].ID != "a1" {
		t.Fatalf("new records must go to the front: %s, %s", audits[0].ID, audits[1].ID)
	}
}

func TestSaveUpsertsInPlace(t *testing.T) {
	store := cacheOnlyStore()
	store.SaveAudit(sampleAudit("a1", "2024-03-15"))
	store.SaveAudit(sampleAudit("a2", "2024-03-20"))

	replacement := sampleAudit("a2", "2024-04-01")
	store.SaveAudit(replacement)

	audits := store.ListAudits()
	if len(audits) != 2 {
		t.Fatalf("upsert duplicated the record: %d audits", len(audits))
	}
	if audits[0].ID != "a2" || audits[0].ScheduledDate != "2024-04-01" {
		t.Fatalf("upsert did not replace in place: %+v", audits[0])
	}
}

func TestCacheUpdateIsImmediate(t *testing.T) {
	store := cacheOnlyStore()
	store.SaveAudit(sampleAudit("a1", "2024-03-15"))

	status := domain.StatusInProgress
	store.UpdateAudit("a1", domain.AuditPatch{Status: &status})

	// The cache reflects the patch before any durable write ran.
	got, ok := store.GetAudit("a1")
	if !ok || got.Status != domain.StatusInProgress {
		t.Fatalf("cache not updated synchronously: %+v, %v", got, ok)
	}
	if !got.UpdatedAt.Equal(store.nowFn()) {
		t.Fatalf("UpdatedAt not refreshed: %s", got.UpdatedAt)
	}
}

func TestDeleteRemovesFromCache(t *testing.T) {
	store := cacheOnlyStore()
	store.SaveAudit(sampleAudit("a1", "2024-03-15"))
	store.DeleteAudit("a1")
	if audits := store.ListAudits(); len(audits) != 0 {
		t.Fatalf("delete left %d cached audits", len(audits))
	}
	store.DeleteAudit("missing")
}

func TestUpdateUnknownIsIgnored(t *testing.T) {
	store := cacheOnlyStore()
	status := domain.StatusComplete
	store.UpdateAudit("missing", domain.AuditPatch{Status: &status})
	if audits := store.ListAudits(); len(audits) != 0 {
		t.Fatalf("update created a phantom record: %d audits", len(audits))
	}
}

func TestDurableWritesQueueInOrder(t *testing.T) {
	store := cacheOnlyStore()
	store.SaveAudit(sampleAudit("a1", "2024-03-15"))
	store.DeleteAudit("a1")

	var ops []string
	for len(store.jobs) > 0 {
		ops = append(ops, (<-store.jobs).op)
	}
	if len(ops) != 2 || ops[0] != "save" || ops[1] != "delete" {
		t.Fatalf("queued ops = %v, want [save delete]", ops)
	}
}

func TestScanAuditRejectsRowErrors(t *testing.T) {
	if _, err := scanAudit(failingScanner{}); err == nil {
		t.Fatalf("expected scan error")
	}
}

type failingScanner struct{}

func (failingScanner) Scan(...any) error { return errors.New("boom") }

// TestIntegrationRoundTrip runs against a real database when
// AUDITCORE_TEST_POSTGRES_DSN is set and is skipped otherwise.
func TestIntegrationRoundTrip(t *testing.T) {
	dsn := os.Getenv("AUDITCORE_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("AUDITCORE_TEST_POSTGRES_DSN not set")
	}

	store, err := NewStore(dsn, zap.NewNop())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	defer func() { _ = store.Close() }()

	audit := sampleAudit("it-round-trip", "2024-03-15")
	store.SaveAudit(audit)
	defer store.DeleteAudit(audit.ID)

	// Barrier: wait for the queued save to land before refreshing.
	done := make(chan struct{})
	store.submit("barrier", func(context.Context) error {
		close(done)
		return nil
	})
	<-done

	if err := store.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	got, ok := store.GetAudit(audit.ID)
	if !ok {
		t.Fatalf("audit missing after refresh")
	}
	if got.ScheduledDate != audit.ScheduledDate || len(got.ChecklistItems) != 2 {
		t.Fatalf("round-tripped audit = %+v", got)
	}
}
