package greeter

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/handiism/greetcard/internal/art"
	"github.com/handiism/greetcard/internal/info"
	"github.com/handiism/greetcard/internal/model"
	"github.com/handiism/greetcard/internal/probe"
	"github.com/handiism/greetcard/internal/render"
	"github.com/handiism/greetcard/internal/testsupport"
)

const defaultImage = "/home/flora/Downloads/moon.jpg"

type fakeTracks struct {
	track model.TrackMetadata
	ok    bool
}

func (f fakeTracks) CurrentTrack(context.Context) (model.TrackMetadata, bool) { return f.track, f.ok }

type harness struct {
	fs     afero.Fs
	runner *testsupport.FakeRunner
	env    probe.MapEnv
	tracks fakeTracks
}

func newHarness(imageRows int) *harness {
	catimg := strings.Repeat("▀▀▀▀\n", imageRows)
	return &harness{
		fs: afero.NewMemMapFs(),
		runner: testsupport.NewFakeRunner().
			On("catimg", testsupport.Response{Stdout: catimg}).
			On("timedatectl", testsupport.Response{Stdout: "Sat 2026-10-17 09:30:00 CEST\n"}),
		env: probe.MapEnv{"USER": "flora", "TERM": "xterm-256color", "SHELL": "/bin/zsh"},
	}
}

func (h *harness) greeter() *Greeter {
	return NewWithDeps(Deps{
		Art:      art.NewResolver(h.tracks, art.NewCommandDownloader(h.runner, "wget"), h.fs, art.Options{}, nil),
		Renderer: render.New(h.runner, "catimg", 40),
		Info: info.NewBuilder(h.env,
			probe.NewClock(h.runner, "timedatectl", nil),
			h.tracks,
			probe.NewQuotes(h.runner, "misfortune", nil),
			info.NewStyles(),
			nil,
		),
		DefaultImage: defaultImage,
	})
}

// run returns the rendered image path and the non-blank info column.
func (h *harness) run(t *testing.T) (string, []string, []string) {
	t.Helper()
	var out bytes.Buffer
	require.NoError(t, h.greeter().Run(context.Background(), &out))

	var rendered string
	for _, c := range h.runner.Calls() {
		if c.Name == "catimg" {
			rendered = c.Args[len(c.Args)-1]
		}
	}

	var all, content []string
	for _, line := range strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n") {
		_, infoCol, found := strings.Cut(line, "\t")
		require.True(t, found, "row %q has no tab", line)
		infoCol = ansi.Strip(infoCol)
		all = append(all, infoCol)
		if infoCol != "" {
			content = append(content, infoCol)
		}
	}
	return rendered, all, content
}

func TestRun_NoPlayerNoQuote(t *testing.T) {
	h := newHarness(12)

	image, all, content := h.run(t)
	assert.Equal(t, defaultImage, image)
	assert.Equal(t, []string{
		"Hello, flora",
		"It is Sat 2026-10-17 09:30:00 CEST",
		"xterm-256color | zsh",
	}, content)

	// 4 info lines against 12 image rows: 4 blanks above and below.
	require.Len(t, all, 12)
	assert.Equal(t, []string{"", "", "", "", "Hello, flora"}, all[:5])
	assert.Equal(t, "", all[6], "spacer before the session line")
}

func TestRun_CachedArt(t *testing.T) {
	h := newHarness(8)
	h.tracks = fakeTracks{ok: true, track: model.TrackMetadata{
		Title: "Clair de Lune", HasTitle: true, Album: "Suite Bergamasque", ArtURL: "https://img/cover.jpg",
	}}
	h.runner.On("misfortune", testsupport.Response{Stdout: "never shown"})
	require.NoError(t, afero.WriteFile(h.fs, "/tmp/album-Suite_Bergamasque", []byte("jpeg"), 0o644))

	image, _, content := h.run(t)
	assert.Equal(t, "/tmp/album-Suite_Bergamasque", image)
	assert.Contains(t, content, "Clair de Lune - Suite Bergamasque")
	assert.False(t, h.runner.Called("wget"))
	assert.False(t, h.runner.Called("misfortune"))
}

func TestRun_EmptyAlbumActsLikeNoPlayer(t *testing.T) {
	h := newHarness(8)
	h.tracks = fakeTracks{ok: true, track: model.TrackMetadata{
		Title: "Clair de Lune", HasTitle: true, Album: "", ArtURL: "https://img/cover.jpg",
	}}
	h.runner.On("misfortune", testsupport.Response{Stdout: "Silence is\ngolden.\n"})

	image, _, content := h.run(t)
	assert.Equal(t, defaultImage, image)
	assert.Contains(t, content, `"Silence is golden."`)
	assert.False(t, h.runner.Called("wget"))
}

func TestRun_OnlyShellSet(t *testing.T) {
	h := newHarness(2)
	h.env = probe.MapEnv{"SHELL": "/usr/bin/fish"}
	h.runner = testsupport.NewFakeRunner().On("catimg", testsupport.Response{Stdout: "a\nb\n"})

	_, all, _ := h.run(t)
	assert.Equal(t, []string{"", "fish"}, all)
}

func TestRun_OddPadding(t *testing.T) {
	h := newHarness(10)
	h.runner.On("misfortune", testsupport.Response{Stdout: "Be brief."})

	_, all, _ := h.run(t)
	require.Len(t, all, 9)
	assert.Equal(t, []string{
		"", "",
		"Hello, flora",
		"It is Sat 2026-10-17 09:30:00 CEST",
		`"Be brief."`,
		"",
		"xterm-256color | zsh",
		"", "",
	}, all)
}

func TestRun_DownloadFailureFallsBack(t *testing.T) {
	h := newHarness(8)
	h.tracks = fakeTracks{ok: true, track: model.TrackMetadata{
		Title: "Clair de Lune", HasTitle: true, Album: "Suite Bergamasque", ArtURL: "https://img/cover.jpg",
	}}
	h.runner.On("wget", testsupport.Response{Err: errors.New("exit status 4")})

	image, _, content := h.run(t)
	assert.Equal(t, defaultImage, image)
	assert.True(t, h.runner.Called("wget"))
	assert.Contains(t, content, "Clair de Lune - Suite Bergamasque")

	exists, _ := afero.Exists(h.fs, "/tmp/album-Suite_Bergamasque")
	assert.False(t, exists)
}

func TestRun_RendererFailureIsFatal(t *testing.T) {
	h := newHarness(0)
	h.runner = testsupport.NewFakeRunner()

	var out bytes.Buffer
	err := h.greeter().Run(context.Background(), &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), defaultImage)
	assert.Empty(t, out.String())
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

func TestClose(t *testing.T) {
	g := NewWithDeps(Deps{})
	require.NoError(t, g.Close())

	g.closers = append(g.closers, closerFunc(func() error { return errors.New("busy") }))
	assert.EqualError(t, g.Close(), "busy")
}
