package greeter

import (
	"context"
	"io"
	"log/slog"

	"github.com/spf13/afero"

	"github.com/handiism/greetcard/internal/art"
	"github.com/handiism/greetcard/internal/config"
	"github.com/handiism/greetcard/internal/http"
	"github.com/handiism/greetcard/internal/info"
	"github.com/handiism/greetcard/internal/layout"
	"github.com/handiism/greetcard/internal/logging"
	"github.com/handiism/greetcard/internal/player"
	"github.com/handiism/greetcard/internal/probe"
	"github.com/handiism/greetcard/internal/render"
	"github.com/handiism/greetcard/internal/shell"
)

// ArtResolver finds the image of the playing album.
type ArtResolver interface {
	Resolve(ctx context.Context) (string, error)
}

// ImageRenderer turns an image file into terminal rows.
type ImageRenderer interface {
	Render(ctx context.Context, path string) ([]string, error)
}

// InfoBuilder produces the info column.
type InfoBuilder interface {
	Build(ctx context.Context) []string
}

// Deps are the collaborators of a Greeter.
type Deps struct {
	Art          ArtResolver
	Renderer     ImageRenderer
	Info         InfoBuilder
	DefaultImage string
	Logger       *slog.Logger
}

// Greeter prints greeting cards.
type Greeter struct {
	art          ArtResolver
	renderer     ImageRenderer
	info         InfoBuilder
	defaultImage string
	logger       *slog.Logger

	closers []io.Closer
}

// New wires a Greeter to the real system: the session bus, external
// commands, the OS filesystem and the process environment.
func New(settings *config.Settings, logger *slog.Logger) *Greeter {
	logger = logging.OrNop(logger)
	runner := shell.NewExecRunner()
	fs := afero.NewOsFs()

	bus := player.NewSessionBus()
	tracks := player.Memoize(player.NewProbe(bus, logger))

	var downloader art.Downloader
	if settings.UseBuiltinDownloader() {
		downloader = art.NewHTTPDownloader(http.NewClient(fs), logger)
	} else {
		downloader = art.NewCommandDownloader(runner, settings.Downloader)
	}

	g := NewWithDeps(Deps{
		Art: art.NewResolver(tracks, downloader, fs, art.Options{
			Prefix:  settings.ArtPathPrefix,
			MaxSize: settings.ArtMaxSize,
		}, logger),
		Renderer: render.New(runner, settings.RendererCommand, settings.ImageWidth),
		Info: info.NewBuilder(
			probe.OSEnv{},
			probe.NewClock(runner, settings.ClockCommand, logger),
			tracks,
			probe.NewQuotes(runner, settings.QuoteCommand, logger),
			info.NewStyles(),
			logger,
		),
		DefaultImage: settings.DefaultImagePath,
		Logger:       logger,
	})
	g.closers = append(g.closers, bus)
	return g
}

// NewWithDeps creates a Greeter from explicit collaborators.
func NewWithDeps(deps Deps) *Greeter {
	return &Greeter{
		art:          deps.Art,
		renderer:     deps.Renderer,
		info:         deps.Info,
		defaultImage: deps.DefaultImage,
		logger:       logging.OrNop(deps.Logger),
	}
}

// Run prints one card to w. It fails only when the image cannot be
// rendered or w cannot be written.
func (g *Greeter) Run(ctx context.Context, w io.Writer) error {
	image := g.imagePath(ctx)

	rows, err := g.renderer.Render(ctx, image)
	if err != nil {
		return err
	}

	lines := g.info.Build(ctx)
	g.logger.Debug("composing card", "image", image, "image_rows", len(rows), "info_lines", len(lines))

	return layout.Write(w, layout.Compose(rows, lines))
}

func (g *Greeter) imagePath(ctx context.Context) string {
	path, err := g.art.Resolve(ctx)
	if err != nil {
		g.logger.Debug("using default image", "path", g.defaultImage, "reason", err)
		return g.defaultImage
	}
	return path
}

// Close releases the session bus connection.
func (g *Greeter) Close() error {
	var firstErr error
	for _, c := range g.closers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
