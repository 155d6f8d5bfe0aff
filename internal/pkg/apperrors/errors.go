package apperrors

import "fmt"

// UpstreamCompletionError wraps any failure from the completion provider
// (network, quota, malformed response). The message format matches what
// the frontend expects in the `detail` field.
type UpstreamCompletionError struct {
	Err error
}

func NewUpstreamCompletion(err error) *UpstreamCompletionError {
	return &UpstreamCompletionError{Err: err}
}

func (e *UpstreamCompletionError) Error() string {
	return fmt.Sprintf("OpenAI error: %v", e.Err)
}

func (e *UpstreamCompletionError) Unwrap() error {
	return e.Err
}

// SignedUrlError means the storage sign endpoint did not return a usable
// signed URL for the requested object.
type SignedUrlError struct {
	Bucket string
	Path   string
	Err    error
}

func (e *SignedUrlError) Error() string {
	return fmt.Sprintf("failed to sign url for %s/%s: %v", e.Bucket, e.Path, e.Err)
}

func (e *SignedUrlError) Unwrap() error {
	return e.Err
}

// DownloadError means the signed URL download returned a non-success status.
type DownloadError struct {
	Path string
	Err  error
}

func (e *DownloadError) Error() string {
	return fmt.Sprintf("failed to download %s: %v", e.Path, e.Err)
}

func (e *DownloadError) Unwrap() error {
	return e.Err
}

// StorageWriteError marks a failed durable write. Callers log it and keep
// going, the volatile copy still serves immediate reads.
type StorageWriteError struct {
	Err error
}

func (e *StorageWriteError) Error() string {
	return fmt.Sprintf("failed to persist session: %v", e.Err)
}

func (e *StorageWriteError) Unwrap() error {
	return e.Err
}

// StorageQueryError marks a failed durable lookup.
type StorageQueryError struct {
	Err error
}

func (e *StorageQueryError) Error() string {
	return fmt.Sprintf("failed to query sessions: %v", e.Err)
}

func (e *StorageQueryError) Unwrap() error {
	return e.Err
}

// NotFoundError maps to a 404 at the HTTP boundary.
type NotFoundError struct {
	Resource string
	Id       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.Id)
}
