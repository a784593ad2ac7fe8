package http

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDownloadFile(t *testing.T) {
	payload := []byte("\xff\xd8\xff\xe0 not really a jpeg")
	var userAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userAgent = r.Header.Get("User-Agent")
		_, _ = w.Write(payload)
	}))
	defer srv.Close()

	fs := afero.NewMemMapFs()
	client := NewClient(fs)

	var lastWritten int64
	err := client.DownloadFile(context.Background(), srv.URL+"/cover.jpg", "/tmp/album-X", func(written, _ int64) {
		lastWritten = written
	})
	require.NoError(t, err)

	got, err := afero.ReadFile(fs, "/tmp/album-X")
	require.NoError(t, err)
	assert.Equal(t, payload, got)
	assert.Equal(t, int64(len(payload)), lastWritten)
	assert.Equal(t, "greetcard", userAgent)
}

func TestDownloadFile_NotFoundCreatesNothing(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	fs := afero.NewMemMapFs()
	err := NewClient(fs).DownloadFile(context.Background(), srv.URL, "/tmp/album-X", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")

	exists, err := afero.Exists(fs, "/tmp/album-X")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestDownloadFile_RetriesServerErrors(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if attempts.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte("art"))
	}))
	defer srv.Close()

	fs := afero.NewMemMapFs()
	require.NoError(t, NewClient(fs).DownloadFile(context.Background(), srv.URL, "/art", nil))
	assert.Equal(t, int32(2), attempts.Load())
}

func TestDownloadFile_BadURL(t *testing.T) {
	err := NewClient(afero.NewMemMapFs()).DownloadFile(context.Background(), "://nope", "/art", nil)
	assert.Error(t, err)
}

func TestProgressWriter(t *testing.T) {
	var buf bytes.Buffer
	var updates []int64
	pw := &ProgressWriter{Writer: &buf, Total: 6, OnUpdate: func(written, total int64) {
		assert.Equal(t, int64(6), total)
		updates = append(updates, written)
	}}

	_, _ = pw.Write([]byte("abc"))
	_, _ = pw.Write([]byte("def"))

	assert.Equal(t, "abcdef", buf.String())
	assert.Equal(t, []int64{3, 6}, updates)
}
