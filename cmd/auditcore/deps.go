package main

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"auditcore/internal/core"
	"auditcore/pkg/domain"
)

const isoDate = "2006-01-02"

// refresher is satisfied by backends that can warm their cache synchronously
// (the remote backend); the CLI waits for a warm cache so single-shot
// commands never observe the cold-start staleness window.
type refresher interface {
	Refresh(ctx context.Context) error
}

func newLogger() (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(logLevel)
	if err != nil {
		return nil, fmt.Errorf("unsupported log level %q: %w", logLevel, err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = level
	return cfg.Build()
}

// withStore builds the backend and audit store from the environment, hydrates
// the collection, and hands the store to fn. The backend is closed (draining
// any pending asynchronous writes) before withStore returns.
func withStore(ctx context.Context, fn func(store *core.Store) error) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	backend, err := core.OpenDataStore(logger)
	if err != nil {
		return err
	}
	defer func() { _ = backend.Close() }()

	if r, ok := backend.(refresher); ok {
		if err := r.Refresh(ctx); err != nil {
			logger.Warn("cache refresh failed, continuing with cached view", zap.Error(err))
		}
	}

	store := core.NewStore(backend,
		core.WithLogger(logger),
		core.WithMetrics(core.NewMetrics(prometheus.DefaultRegisterer)),
	)
	store.LoadAudits()
	return fn(store)
}

func parseLocation(raw string) (domain.LocationID, error) {
	location := domain.LocationID(raw)
	if !location.Valid() {
		return "", fmt.Errorf("unknown location %q (see 'auditcore locations')", raw)
	}
	return location, nil
}

func parseAuditType(raw string) (domain.AuditType, error) {
	auditType := domain.AuditType(raw)
	if !auditType.Valid() {
		return "", fmt.Errorf("unknown audit type %q (expected MRR or FSR)", raw)
	}
	return auditType, nil
}

func parseStatus(raw string) (domain.AuditStatus, error) {
	status := domain.AuditStatus(raw)
	if !status.Valid() {
		return "", fmt.Errorf("unknown status %q (expected pending, in_progress, or complete)", raw)
	}
	return status, nil
}

func parseDate(raw string) (string, error) {
	if _, err := time.Parse(isoDate, raw); err != nil {
		return "", fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", raw, err)
	}
	return raw, nil
}
