package interfaces

import (
	"context"
	"io"
)

//go:generate mockgen -source=blob_store_interface.go -destination=mocks/blob_store_mock.go -package=mocks

// IBlobStore abstracts object storage (S3) for uploaded file bytes.
//
// Put streams one object under key and returns the URL clients retrieve it
// from. Delete is best-effort cleanup when an attachment or its proposal goes
// away.
type IBlobStore interface {
	Put(ctx context.Context, key, contentType string, size int64, body io.Reader) (string, error)
	Delete(ctx context.Context, key string) error
}
