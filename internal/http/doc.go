// Package http provides the built-in album art downloader.
//
// The Client in this package handles:
//   - Retries with exponential backoff (hashicorp/go-retryablehttp)
//   - User-Agent headers
//   - Writing downloads through an afero filesystem
//
// # Basic Usage
//
//	client := http.NewClient(afero.NewOsFs())
//
//	// Download art to the cache path
//	err := client.DownloadFile(ctx, artURL, "/tmp/album-Blue_Train", nil)
//
// # Progress Tracking
//
// The ProgressWriter type can be used to wrap any io.Writer for progress tracking:
//
//	pw := &http.ProgressWriter{
//	    Writer:   file,
//	    Total:    contentLength,
//	    OnUpdate: func(written, total int64) { /* log it */ },
//	}
package http
