package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/spf13/afero"
)

// Client downloads album art with retries.
//
// Client provides:
//   - A greetcard User-Agent header
//   - Retries with backoff on connection errors and 5xx responses
//   - Timeout handling
//   - File download into an afero filesystem
//
// Example usage:
//
//	client := NewClient(afero.NewOsFs())
//
//	// Download cover art
//	err := client.DownloadFile(ctx, artURL, "/tmp/album-Blue_Train")
type Client struct {
	httpClient *retryablehttp.Client
	fs         afero.Fs
	userAgent  string
}

// NewClient creates a new HTTP client that writes into fs.
//
// The client is configured with:
//   - 15 second timeout per attempt
//   - 2 retries, waiting between 200ms and 2s
//   - "greetcard" User-Agent header
func NewClient(fs afero.Fs) *Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = 2
	rc.RetryWaitMin = 200 * time.Millisecond
	rc.RetryWaitMax = 2 * time.Second
	rc.HTTPClient.Timeout = 15 * time.Second
	rc.Logger = nil

	return &Client{
		httpClient: rc,
		fs:         fs,
		userAgent:  "greetcard",
	}
}

// ProgressWriter wraps a writer to track download progress.
//
// Example:
//
//	pw := &ProgressWriter{
//	    Writer: file,
//	    Total:  contentLength,
//	    OnUpdate: func(written, total int64) {
//	        logger.Debug("art download", "written", written, "total", total)
//	    },
//	}
//	io.Copy(pw, response.Body)
type ProgressWriter struct {
	// Writer is the underlying writer to write data to.
	Writer io.Writer

	// Total is the expected total bytes (from Content-Length header).
	// It is -1 when the server did not send one.
	Total int64

	// Written is the current number of bytes written.
	Written int64

	// OnUpdate is called after each Write with current progress.
	OnUpdate func(written, total int64)
}

// Write implements io.Writer, tracking progress and calling OnUpdate.
func (pw *ProgressWriter) Write(p []byte) (int, error) {
	n, err := pw.Writer.Write(p)
	pw.Written += int64(n)
	if pw.OnUpdate != nil {
		pw.OnUpdate(pw.Written, pw.Total)
	}
	return n, err
}

func (c *Client) get(ctx context.Context, url string) (*http.Response, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("GET %s: HTTP %d: %s", url, resp.StatusCode, http.StatusText(resp.StatusCode))
	}
	return resp, nil
}

// DownloadFile downloads url to destPath.
//
// The file is created (or truncated) only after the server answered 200 OK,
// so a failed request leaves nothing behind. A failure while streaming the
// body can leave a partial file; callers that cache by path must remove it.
//
// Pass an onProgress callback to observe the transfer, or nil.
//
// Example:
//
//	err := client.DownloadFile(ctx, artURL, "/tmp/album-Blue_Train", nil)
func (c *Client) DownloadFile(ctx context.Context, url, destPath string, onProgress func(written, total int64)) error {
	resp, err := c.get(ctx, url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	file, err := c.fs.Create(destPath)
	if err != nil {
		return err
	}
	defer file.Close()

	var writer io.Writer = file
	if onProgress != nil {
		writer = &ProgressWriter{
			Writer:   file,
			Total:    resp.ContentLength,
			OnUpdate: onProgress,
		}
	}

	if _, err := io.Copy(writer, resp.Body); err != nil {
		return fmt.Errorf("write %s: %w", destPath, err)
	}
	return file.Close()
}
