package art

import (
	"context"
	"log/slog"

	"github.com/handiism/greetcard/internal/logging"
	"github.com/handiism/greetcard/internal/shell"
)

// Downloader fetches a remote URL into a local file.
type Downloader interface {
	Download(ctx context.Context, url, dest string) error
}

// CommandDownloader delegates to an external program invoked as
// `<command> <url> -O <dest> -q`, which is wget's syntax.
type CommandDownloader struct {
	runner  shell.Runner
	command string
}

// NewCommandDownloader creates a CommandDownloader.
func NewCommandDownloader(runner shell.Runner, command string) *CommandDownloader {
	return &CommandDownloader{runner: runner, command: command}
}

// Download implements Downloader.
func (d *CommandDownloader) Download(ctx context.Context, url, dest string) error {
	return d.runner.Run(ctx, d.command, url, "-O", dest, "-q")
}

// FileDownloader is implemented by the built-in HTTP client.
type FileDownloader interface {
	DownloadFile(ctx context.Context, url, destPath string, onProgress func(written, total int64)) error
}

// HTTPDownloader adapts the built-in HTTP client to Downloader. Transfer
// progress is logged at debug level.
type HTTPDownloader struct {
	client FileDownloader
	logger *slog.Logger
}

// NewHTTPDownloader creates an HTTPDownloader.
func NewHTTPDownloader(client FileDownloader, logger *slog.Logger) *HTTPDownloader {
	return &HTTPDownloader{client: client, logger: logging.OrNop(logger)}
}

// Download implements Downloader.
func (d *HTTPDownloader) Download(ctx context.Context, url, dest string) error {
	return d.client.DownloadFile(ctx, url, dest, func(written, total int64) {
		d.logger.Debug("art download", "written", written, "total", total)
	})
}
