package storage

import "context"

// ObjectStorage defines the contract for a storage backend that hands out
// time-limited download links for stored objects.
type ObjectStorage interface {
	// SignURL requests a signed download URL for bucket/path, valid for
	// expirySeconds.
	SignURL(ctx context.Context, bucket, path string, expirySeconds int) (string, error)

	// Download fetches the object bytes behind a signed URL.
	Download(ctx context.Context, signedURL string) ([]byte, error)
}
