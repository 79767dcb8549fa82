// Package core defines the abstractions shared by report archive backends.
package core

import (
	"context"
	"errors"
	"io"
	"time"
)

// Driver identifies a concrete archive backend implementation.
type Driver string

const (
	// DriverFilesystem stores reports under a local directory (default).
	DriverFilesystem Driver = "fs"
	// DriverS3 stores reports in an S3-compatible bucket.
	DriverS3 Driver = "s3"
	// DriverMemory keeps reports in process memory (tests).
	DriverMemory Driver = "memory"
)

// PutOptions carries optional write parameters.
type PutOptions struct {
	ContentType string
}

// Info describes one archived report.
type Info struct {
	Key          string    `json:"key"`
	Size         int64     `json:"size_bytes"`
	ContentType  string    `json:"content_type,omitempty"`
	LastModified time.Time `json:"last_modified"`
}

// Store is the interface for report archive backends. Put overwrites: a
// regenerated report for the same period replaces the previous one.
type Store interface {
	Put(ctx context.Context, key string, r io.Reader, opts PutOptions) (Info, error)
	Get(ctx context.Context, key string) (Info, io.ReadCloser, error)
	Head(ctx context.Context, key string) (Info, error)
	Delete(ctx context.Context, key string) (bool, error)
	List(ctx context.Context, prefix string) ([]Info, error)
	Driver() Driver
}

// ErrNotFound indicates the requested report is not archived.
var ErrNotFound = errors.New("archive: report not found")
