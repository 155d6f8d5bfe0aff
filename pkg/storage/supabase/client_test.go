package supabase

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"studybuddy-be/internal/pkg/apperrors"

	"github.com/stretchr/testify/assert"
)

func TestSignURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/storage/v1/object/sign/project-files/notes/a.txt", r.URL.Path)
		assert.Equal(t, "Bearer service-key", r.Header.Get("Authorization"))
		assert.Equal(t, "service-key", r.Header.Get("apikey"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"signedURL":"/object/sign/project-files/notes/a.txt?token=abc"}`))
	}))
	defer srv.Close()

	client := NewSupabaseStorage(srv.URL, "service-key")

	signed, err := client.SignURL(context.Background(), "project-files", "notes/a.txt", 600)
	assert.NoError(t, err)
	assert.Equal(t, srv.URL+"/storage/v1/object/sign/project-files/notes/a.txt?token=abc", signed)
}

func TestSignURLFailures(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
	}{
		{name: "non-success status", status: http.StatusForbidden, body: `{"message":"denied"}`},
		{name: "missing signedURL field", status: http.StatusOK, body: `{}`},
		{name: "malformed body", status: http.StatusOK, body: `not json`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client := NewSupabaseStorage(srv.URL, "service-key")

			_, err := client.SignURL(context.Background(), "project-files", "notes/a.txt", 600)
			var signErr *apperrors.SignedUrlError
			assert.True(t, errors.As(err, &signErr), "want SignedUrlError, got %v", err)
		})
	}
}

func TestDownload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte("file body"))
	}))
	defer srv.Close()

	client := NewSupabaseStorage(srv.URL, "service-key")

	body, err := client.Download(context.Background(), srv.URL+"/ok")
	assert.NoError(t, err)
	assert.Equal(t, []byte("file body"), body)

	_, err = client.Download(context.Background(), srv.URL+"/missing")
	var dlErr *apperrors.DownloadError
	assert.True(t, errors.As(err, &dlErr), "want DownloadError, got %v", err)
}
