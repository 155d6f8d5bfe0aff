package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"studybuddy-be/internal/pkg/apperrors"
	"studybuddy-be/pkg/storage"
)

type SupabaseStorage struct {
	BaseURL    string // e.g. https://xyz.supabase.co
	ServiceKey string
	Client     *http.Client
}

// Ensure SupabaseStorage implements ObjectStorage
var _ storage.ObjectStorage = &SupabaseStorage{}

func NewSupabaseStorage(baseURL, serviceKey string) *SupabaseStorage {
	return &SupabaseStorage{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		ServiceKey: serviceKey,
		Client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

type signRequest struct {
	ExpiresIn int `json:"expiresIn"`
}

type signResponse struct {
	SignedURL string `json:"signedURL"`
}

func (s *SupabaseStorage) SignURL(ctx context.Context, bucket, path string, expirySeconds int) (string, error) {
	payload, err := json.Marshal(signRequest{ExpiresIn: expirySeconds})
	if err != nil {
		return "", &apperrors.SignedUrlError{Bucket: bucket, Path: path, Err: err}
	}

	url := fmt.Sprintf("%s/storage/v1/object/sign/%s/%s", s.BaseURL, bucket, path)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(payload))
	if err != nil {
		return "", &apperrors.SignedUrlError{Bucket: bucket, Path: path, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.ServiceKey)
	req.Header.Set("apikey", s.ServiceKey)

	resp, err := s.Client.Do(req)
	if err != nil {
		return "", &apperrors.SignedUrlError{Bucket: bucket, Path: path, Err: err}
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &apperrors.SignedUrlError{Bucket: bucket, Path: path, Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		return "", &apperrors.SignedUrlError{
			Bucket: bucket,
			Path:   path,
			Err:    fmt.Errorf("sign endpoint returned status %d: %s", resp.StatusCode, string(bodyBytes)),
		}
	}

	var signed signResponse
	if err := json.Unmarshal(bodyBytes, &signed); err != nil {
		return "", &apperrors.SignedUrlError{Bucket: bucket, Path: path, Err: err}
	}
	if signed.SignedURL == "" {
		return "", &apperrors.SignedUrlError{
			Bucket: bucket,
			Path:   path,
			Err:    fmt.Errorf("sign endpoint response missing signedURL field"),
		}
	}

	// Supabase returns a path relative to the storage API root.
	return s.BaseURL + "/storage/v1" + signed.SignedURL, nil
}

func (s *SupabaseStorage) Download(ctx context.Context, signedURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", signedURL, nil)
	if err != nil {
		return nil, &apperrors.DownloadError{Path: signedURL, Err: err}
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, &apperrors.DownloadError{Path: signedURL, Err: err}
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &apperrors.DownloadError{Path: signedURL, Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &apperrors.DownloadError{
			Path: signedURL,
			Err:  fmt.Errorf("download returned status %d", resp.StatusCode),
		}
	}

	return bodyBytes, nil
}
