package port

import (
	"context"
	"io"
)

// Storage defines file storage operations against the object store.
type Storage interface {
	InitBucket(bucket string) error
	FileExists(ctx context.Context, fileKey string) (bool, error)
	SaveFile(ctx context.Context, fileKey string, reader io.Reader, fileSize int64, opts map[string]string) error
	RemoveFile(ctx context.Context, fileKey string) error
	// PublicURL returns the public-read URL of a stored object. It does
	// not check that the object exists.
	PublicURL(fileKey string) string
}
