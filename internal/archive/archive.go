// Package archive stores rendered audit reports durably so monthly output
// survives outside the audit database. Keys are slash-separated paths such as
// "reports/2024-03.csv". It re-exports the core abstractions for stable
// imports and provides the driver factory.
package archive

import "auditcore/internal/archive/core"

type (
	// Driver identifies an archive backend driver.
	Driver = core.Driver
	// PutOptions configures an archive write.
	PutOptions = core.PutOptions
	// Info describes one archived report.
	Info = core.Info
	// Store is the interface for report archive backends.
	Store = core.Store
)

const (
	// DriverFilesystem is the local filesystem driver.
	DriverFilesystem = core.DriverFilesystem
	// DriverS3 is the S3-compatible driver.
	DriverS3 = core.DriverS3
	// DriverMemory is the in-memory test driver.
	DriverMemory = core.DriverMemory
)

// ErrNotFound indicates the requested report is not archived.
var ErrNotFound = core.ErrNotFound
