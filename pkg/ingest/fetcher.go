package ingest

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"studybuddy-be/pkg/storage"
)

// DefaultSignedURLExpirySeconds is how long a requested download link
// stays valid unless configured otherwise.
const DefaultSignedURLExpirySeconds = 600

// Fetcher downloads stored objects and extracts their plain-text content.
// Only .txt objects are extracted; everything else yields a placeholder.
type Fetcher struct {
	storage       storage.ObjectStorage
	expirySeconds int
}

func NewFetcher(objectStorage storage.ObjectStorage, expirySeconds int) *Fetcher {
	if expirySeconds <= 0 {
		expirySeconds = DefaultSignedURLExpirySeconds
	}
	return &Fetcher{
		storage:       objectStorage,
		expirySeconds: expirySeconds,
	}
}

// FetchTexts resolves every path in order: one output string per input
// path. The first signing or download failure aborts the remaining paths.
func (f *Fetcher) FetchTexts(ctx context.Context, bucket string, paths []string) ([]string, error) {
	texts := make([]string, 0, len(paths))

	for _, path := range paths {
		signedURL, err := f.storage.SignURL(ctx, bucket, path, f.expirySeconds)
		if err != nil {
			return nil, err
		}

		body, err := f.storage.Download(ctx, signedURL)
		if err != nil {
			return nil, err
		}

		if strings.EqualFold(filepath.Ext(path), ".txt") {
			texts = append(texts, string(body))
		} else {
			texts = append(texts, unsupportedPlaceholder(path))
		}
	}

	return texts, nil
}

func unsupportedPlaceholder(path string) string {
	return fmt.Sprintf("[Could not extract text from %s: only .txt files are supported]", filepath.Base(path))
}
