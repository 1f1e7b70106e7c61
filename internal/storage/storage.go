package storage

import (
	"context"
	"errors"
	"io"
	"time"
)

// Default expiry duration for presigned URLs
const DefaultPresignedURLExpiry = 15 * time.Minute

// FileStorage defines the interface for object storage operations. The planner
// only reads: exercise demo media and catalog import files.
type FileStorage interface {
	// GeneratePresignedDownloadURL creates a temporary URL that allows GET requests
	// for downloading/viewing an object directly from the storage provider.
	GeneratePresignedDownloadURL(ctx context.Context, objectKey string, expires time.Duration) (string, error)

	// GetObject streams an object. The caller closes the reader.
	GetObject(ctx context.Context, objectKey string) (io.ReadCloser, error)
}

// Error constants for storage layer
var (
	ErrObjectNotFound = errors.New("object not found in storage")
)
