package ioutils

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := range w {
		for y := range h {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestCopyFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/music/cover.jpg", []byte("cover"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/tmp/album-X", []byte("stale and longer"), 0o644))

	require.NoError(t, CopyFile(fs, "/music/cover.jpg", "/tmp/album-X"))

	got, err := afero.ReadFile(fs, "/tmp/album-X")
	require.NoError(t, err)
	assert.Equal(t, "cover", string(got))
}

func TestCopyFile_MissingSource(t *testing.T) {
	fs := afero.NewMemMapFs()
	assert.Error(t, CopyFile(fs, "/nope.jpg", "/tmp/album-X"))

	exists, _ := afero.Exists(fs, "/tmp/album-X")
	assert.False(t, exists)
}

func TestRemoveIfExists(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, WriteFile(fs, "/tmp/a", []byte("x")))

	require.NoError(t, RemoveIfExists(fs, "/tmp/a"))
	require.NoError(t, RemoveIfExists(fs, "/tmp/a"))

	exists, _ := afero.Exists(fs, "/tmp/a")
	assert.False(t, exists)
}

func TestEnsureDir(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, EnsureDir(fs, "/a/b/c"))
	ok, err := afero.DirExists(fs, "/a/b/c")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestNormalize_SmallPNGUntouched(t *testing.T) {
	fs := afero.NewMemMapFs()
	data := pngBytes(t, 20, 10)
	require.NoError(t, WriteFile(fs, "/art", data))

	changed, err := NewImageService().Normalize(fs, "/art", 100)
	require.NoError(t, err)
	assert.False(t, changed)

	got, _ := afero.ReadFile(fs, "/art")
	assert.Equal(t, data, got)
}

func TestNormalize_DownscalesLargeImage(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, WriteFile(fs, "/art", pngBytes(t, 300, 150)))

	changed, err := NewImageService().Normalize(fs, "/art", 100)
	require.NoError(t, err)
	assert.True(t, changed)

	got, _ := afero.ReadFile(fs, "/art")
	cfg, err := jpeg.DecodeConfig(bytes.NewReader(got))
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.Width)
	assert.Equal(t, 50, cfg.Height)
}

func TestNormalize_UnsupportedLeftAlone(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, WriteFile(fs, "/art", []byte("<html>not found</html>")))

	changed, err := NewImageService().Normalize(fs, "/art", 100)
	assert.ErrorIs(t, err, ErrUnsupportedImage)
	assert.False(t, changed)

	got, _ := afero.ReadFile(fs, "/art")
	assert.Equal(t, "<html>not found</html>", string(got))
}

func TestFitWithin(t *testing.T) {
	tests := []struct {
		w, h, maxW, maxH int
		wantW, wantH     int
	}{
		{800, 600, 1000, 1000, 800, 600},
		{1500, 1000, 1000, 1000, 1000, 666},
		{1000, 1500, 1000, 1000, 666, 1000},
		{4000, 2, 100, 100, 100, 1},
	}
	for _, tt := range tests {
		w, h := fitWithin(tt.w, tt.h, tt.maxW, tt.maxH)
		assert.Equal(t, tt.wantW, w)
		assert.Equal(t, tt.wantH, h)
	}
}
