package core

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsObserve(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()
	metrics := NewMetrics(reg)

	metrics.Observe("create_audit", 5*time.Millisecond)
	metrics.Observe("create_audit", 7*time.Millisecond)
	metrics.Observe("delete_audit", time.Millisecond)

	if got := testutil.ToFloat64(metrics.operations.WithLabelValues("create_audit")); got != 2 {
		t.Fatalf("create_audit counter = %v, want 2", got)
	}
	if got := testutil.ToFloat64(metrics.operations.WithLabelValues("delete_audit")); got != 1 {
		t.Fatalf("delete_audit counter = %v, want 1", got)
	}

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	if len(families) != 2 {
		t.Fatalf("expected 2 metric families, got %d", len(families))
	}
}

func TestNilMetricsIsNoop(t *testing.T) {
	var metrics *Metrics
	metrics.Observe("create_audit", time.Millisecond)
}
