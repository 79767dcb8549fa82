package fs

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"auditcore/internal/archive/core"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return store
}

func TestPutGetRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	body := "Monthly Audit Report - March 2024"
	info, err := store.Put(ctx, "reports/2024-03.txt", strings.NewReader(body), core.PutOptions{ContentType: "text/plain"})
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if info.Key != "reports/2024-03.txt" || info.Size != int64(len(body)) {
		t.Fatalf("put info = %+v", info)
	}

	got, rc, err := store.Get(ctx, "reports/2024-03.txt")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	defer func() { _ = rc.Close() }()
	data, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if string(data) != body {
		t.Fatalf("body round trip = %q", data)
	}
	if got.ContentType != "text/plain" {
		t.Fatalf("content type = %q", got.ContentType)
	}
}

func TestPutOverwrites(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if _, err := store.Put(ctx, "reports/2024-03.csv", strings.NewReader("old"), core.PutOptions{}); err != nil {
		t.Fatalf("first put: %v", err)
	}
	if _, err := store.Put(ctx, "reports/2024-03.csv", strings.NewReader("regenerated"), core.PutOptions{}); err != nil {
		t.Fatalf("second put: %v", err)
	}

	_, rc, err := store.Get(ctx, "reports/2024-03.csv")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	defer func() { _ = rc.Close() }()
	data, _ := io.ReadAll(rc)
	if string(data) != "regenerated" {
		t.Fatalf("overwrite left %q", data)
	}

	infos, err := store.List(ctx, "reports/")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(infos) != 1 {
		t.Fatalf("overwrite produced %d entries", len(infos))
	}
}

func TestTraversalKeysRejected(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, key := range []string{"", "  ", "/etc/passwd", "../escape.txt", "reports/../../escape.txt"} {
		if _, err := store.Put(ctx, key, strings.NewReader("x"), core.PutOptions{}); err == nil {
			t.Fatalf("key %q accepted", key)
		}
	}
}

func TestHeadAndDelete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if _, err := store.Head(ctx, "reports/none.txt"); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("Head missing = %v, want ErrNotFound", err)
	}

	if _, err := store.Put(ctx, "reports/2024-03.txt", strings.NewReader("x"), core.PutOptions{}); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if _, err := store.Head(ctx, "reports/2024-03.txt"); err != nil {
		t.Fatalf("Head: %v", err)
	}

	existed, err := store.Delete(ctx, "reports/2024-03.txt")
	if err != nil || !existed {
		t.Fatalf("Delete = %v, %v", existed, err)
	}
	existed, err = store.Delete(ctx, "reports/2024-03.txt")
	if err != nil || existed {
		t.Fatalf("second Delete = %v, %v", existed, err)
	}
}

func TestListFiltersAndSorts(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, key := range []string{"reports/2024-04.txt", "reports/2024-03.txt", "exports/dump.csv"} {
		if _, err := store.Put(ctx, key, strings.NewReader("x"), core.PutOptions{}); err != nil {
			t.Fatalf("Put %s: %v", key, err)
		}
	}

	infos, err := store.List(ctx, "reports/")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(infos) != 2 {
		t.Fatalf("prefix filter returned %d entries", len(infos))
	}
	if infos[0].Key != "reports/2024-03.txt" || infos[1].Key != "reports/2024-04.txt" {
		t.Fatalf("list not key-sorted: %s, %s", infos[0].Key, infos[1].Key)
	}
}
