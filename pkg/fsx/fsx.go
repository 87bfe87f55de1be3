// Package fsx abstracts blob storage behind a small filesystem interface.
package fsx

import (
	"context"
	"io"
)

// FileSystem is the storage surface used for applicant documents.
type FileSystem interface {
	// WriteFile stores data under path, overwriting any existing object.
	WriteFile(ctx context.Context, path string, data []byte) error

	// ReadFileStream opens the object at path for reading.
	ReadFileStream(ctx context.Context, path string) (io.ReadCloser, error)

	// DeleteFile removes the object at path.
	DeleteFile(ctx context.Context, path string) error

	// Join composes a storage path from elements.
	Join(elem ...string) string

	// PublicURL returns the publicly reachable URL for a stored object.
	PublicURL(path string) string
}
