package memory

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"auditcore/internal/archive/core"
)

func TestRoundTrip(t *testing.T) {
	store := New()
	ctx := context.Background()

	if _, _, err := store.Get(ctx, "reports/2024-03.txt"); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("Get missing = %v, want ErrNotFound", err)
	}

	body := "report body"
	info, err := store.Put(ctx, "reports/2024-03.txt", strings.NewReader(body), core.PutOptions{ContentType: "text/plain"})
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if info.Size != int64(len(body)) || info.ContentType != "text/plain" {
		t.Fatalf("put info = %+v", info)
	}

	got, rc, err := store.Get(ctx, "reports/2024-03.txt")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	data, _ := io.ReadAll(rc)
	_ = rc.Close()
	if string(data) != body || got.Key != "reports/2024-03.txt" {
		t.Fatalf("round trip = %q, %+v", data, got)
	}

	existed, err := store.Delete(ctx, "reports/2024-03.txt")
	if err != nil || !existed {
		t.Fatalf("Delete = %v, %v", existed, err)
	}
	if _, err := store.Head(ctx, "reports/2024-03.txt"); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("Head after delete = %v", err)
	}
}

func TestListPrefix(t *testing.T) {
	store := New()
	ctx := context.Background()
	for _, key := range []string{"reports/2024-04.csv", "reports/2024-03.csv", "other/x"} {
		if _, err := store.Put(ctx, key, strings.NewReader("x"), core.PutOptions{}); err != nil {
			t.Fatalf("Put %s: %v", key, err)
		}
	}
	infos, err := store.List(ctx, "reports/")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(infos) != 2 || infos[0].Key != "reports/2024-03.csv" {
		t.Fatalf("list = %+v", infos)
	}
}
