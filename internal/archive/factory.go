package archive

import (
	"context"
	"fmt"
	"os"

	"auditcore/internal/infra/archive/fs"
	"auditcore/internal/infra/archive/memory"
	"auditcore/internal/infra/archive/s3"
)

// Open selects an archive backend using environment variables.
//
//	AUDITCORE_ARCHIVE_DRIVER: fs|s3|memory (default fs)
//	AUDITCORE_ARCHIVE_FS_ROOT: directory root when driver=fs (default ./reports)
//	(S3 specific variables documented in the s3 package)
func Open(ctx context.Context) (Store, error) {
	driver := os.Getenv("AUDITCORE_ARCHIVE_DRIVER")
	if driver == "" {
		driver = string(DriverFilesystem)
	}
	switch Driver(driver) {
	case DriverFilesystem:
		return fs.New(os.Getenv("AUDITCORE_ARCHIVE_FS_ROOT"))
	case DriverS3:
		return s3.OpenFromEnv(ctx)
	case DriverMemory:
		return memory.New(), nil
	default:
		return nil, fmt.Errorf("unknown archive driver %s", driver)
	}
}
