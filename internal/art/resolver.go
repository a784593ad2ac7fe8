package art

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/handiism/greetcard/internal/audio"
	ioutils "github.com/handiism/greetcard/internal/io"
	"github.com/handiism/greetcard/internal/logging"
	"github.com/handiism/greetcard/internal/model"
	"github.com/handiism/greetcard/internal/player"
)

var (
	// ErrNoAlbum means no player is active or it reports no usable album.
	ErrNoAlbum = errors.New("no album playing")

	// ErrNoArtURL means the album is known but no art could be located.
	ErrNoArtURL = errors.New("no album art url")

	// ErrDownload means fetching the art failed.
	ErrDownload = errors.New("album art download failed")
)

// Options configures a Resolver.
type Options struct {
	// Prefix is prepended to the sanitized album name to form the cache path.
	Prefix string

	// MaxSize is the largest side, in pixels, a cached cover may have.
	// Zero disables normalization.
	MaxSize int
}

// Resolver maps the playing track to a local image file.
type Resolver struct {
	tracks     player.TrackSource
	downloader Downloader
	fs         afero.Fs
	covers     *audio.CoverReader
	images     *ioutils.ImageService
	opts       Options
	logger     *slog.Logger
}

// NewResolver creates a Resolver. An empty Prefix means model.DefaultArtPathPrefix.
func NewResolver(tracks player.TrackSource, downloader Downloader, fs afero.Fs, opts Options, logger *slog.Logger) *Resolver {
	if opts.Prefix == "" {
		opts.Prefix = model.DefaultArtPathPrefix
	}
	return &Resolver{
		tracks:     tracks,
		downloader: downloader,
		fs:         fs,
		covers:     audio.NewCoverReader(fs),
		images:     ioutils.NewImageService(),
		opts:       opts,
		logger:     logging.OrNop(logger),
	}
}

// Resolve returns the path of the cover of the playing album, fetching
// it into the cache when it is not there yet.
//
// Anything already at the cache path counts as a hit; it is never
// re-validated.
func (r *Resolver) Resolve(ctx context.Context) (string, error) {
	track, ok := r.tracks.CurrentTrack(ctx)
	if !ok || !track.AlbumUsable() {
		return "", ErrNoAlbum
	}

	path := model.ArtPath(r.opts.Prefix, track.Album)
	exists, err := afero.Exists(r.fs, path)
	if err != nil {
		return "", fmt.Errorf("%w: inspect %s: %w", ErrDownload, path, err)
	}
	if exists {
		r.logger.Debug("album art cache hit", "path", path)
		return path, nil
	}

	if err := r.fetch(ctx, track, path); err != nil {
		if rmErr := ioutils.RemoveIfExists(r.fs, path); rmErr != nil {
			r.logger.Debug("remove partial album art", "path", path, "error", rmErr)
		}
		return "", err
	}

	r.normalize(path)
	return path, nil
}

func (r *Resolver) fetch(ctx context.Context, track model.TrackMetadata, path string) error {
	if err := ioutils.EnsureDir(r.fs, filepath.Dir(path)); err != nil {
		return fmt.Errorf("%w: %w", ErrDownload, err)
	}

	if !track.HasArtwork() {
		return r.extractEmbedded(track, path)
	}

	if local, ok := localPath(track.ArtURL); ok {
		if err := ioutils.CopyFile(r.fs, local, path); err != nil {
			return fmt.Errorf("%w: %w", ErrDownload, err)
		}
		r.logger.Debug("album art copied", "from", local, "to", path)
		return nil
	}

	if err := r.downloader.Download(ctx, track.ArtURL, path); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrDownload, track.ArtURL, err)
	}
	r.logger.Debug("album art downloaded", "url", track.ArtURL, "to", path)
	return nil
}

func (r *Resolver) extractEmbedded(track model.TrackMetadata, path string) error {
	local, ok := localPath(track.URL)
	if !ok || !audio.Supported(local) {
		return ErrNoArtURL
	}

	data, err := r.covers.Cover(local)
	if err != nil {
		r.logger.Debug("no embedded album art", "track", local, "error", err)
		return ErrNoArtURL
	}

	if err := ioutils.WriteFile(r.fs, path, data); err != nil {
		return fmt.Errorf("%w: %w", ErrDownload, err)
	}
	r.logger.Debug("album art extracted", "track", local, "to", path)
	return nil
}

func (r *Resolver) normalize(path string) {
	if r.opts.MaxSize <= 0 {
		return
	}
	changed, err := r.images.Normalize(r.fs, path, r.opts.MaxSize)
	if err != nil {
		r.logger.Debug("album art left as fetched", "path", path, "error", err)
		return
	}
	if changed {
		r.logger.Debug("album art normalized", "path", path)
	}
}

// localPath returns the filesystem path of a file:// URL.
func localPath(raw string) (string, bool) {
	if !strings.HasPrefix(raw, "file://") {
		return "", false
	}
	u, err := url.Parse(raw)
	if err != nil || u.Path == "" {
		return "", false
	}
	return u.Path, true
}
