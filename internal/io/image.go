package ioutils

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif" // GIF decoder registration
	"image/jpeg"
	_ "image/png" // PNG decoder registration

	"github.com/spf13/afero"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // WebP decoder registration
)

// ErrUnsupportedImage is returned when a file is not an image any
// registered decoder understands.
var ErrUnsupportedImage = errors.New("unsupported image format")

// ImageService prepares album art for the terminal renderer.
//
// ImageService is used to:
//   - Re-encode formats the renderer cannot read (WebP) as JPEG
//   - Scale very large covers down so rendering stays fast
//
// Example usage:
//
//	svc := NewImageService()
//	changed, err := svc.Normalize(fs, "/tmp/album-Blue_Train", 1000)
type ImageService struct{}

// NewImageService creates a new ImageService.
func NewImageService() *ImageService {
	return &ImageService{}
}

// Normalize rewrites the image at path as JPEG when it is WebP or larger
// than maxSize on either side. It reports whether the file was rewritten.
//
// Images the renderer already reads (JPEG, PNG, GIF) that fit are left
// untouched. A file no decoder recognizes yields ErrUnsupportedImage and
// is left untouched as well.
func (s *ImageService) Normalize(fs afero.Fs, path string, maxSize int) (bool, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return false, err
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return false, fmt.Errorf("%s: %w", path, ErrUnsupportedImage)
	}

	oversized := cfg.Width > maxSize || cfg.Height > maxSize
	if format != "webp" && !oversized {
		return false, nil
	}

	var out []byte
	if oversized {
		out, err = s.ResizeImage(data, maxSize, maxSize)
	} else {
		out, err = s.ConvertToJPEG(data)
	}
	if err != nil {
		return false, fmt.Errorf("%s: %w", path, err)
	}

	if err := WriteFile(fs, path, out); err != nil {
		return false, err
	}
	return true, nil
}

// ResizeImage resizes an image to fit within the specified maximum dimensions.
//
// The aspect ratio is preserved and the result is JPEG-encoded. Images
// already within bounds are only re-encoded.
//
// The Catmull-Rom algorithm is used for high-quality resizing.
//
// Example:
//
//	// A 1500x1000 image becomes 1000x666
//	resized, err := svc.ResizeImage(imageData, 1000, 1000)
func (s *ImageService) ResizeImage(data []byte, maxWidth, maxHeight int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	width, height := fitWithin(bounds.Dx(), bounds.Dy(), maxWidth, maxHeight)

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	return encodeJPEG(dst)
}

// ConvertToJPEG converts an image to JPEG format with 90% quality.
func (s *ImageService) ConvertToJPEG(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return encodeJPEG(img)
}

func fitWithin(width, height, maxWidth, maxHeight int) (int, int) {
	if width <= maxWidth && height <= maxHeight {
		return width, height
	}

	ratio := float64(width) / float64(height)
	if float64(maxWidth)/float64(maxHeight) > ratio {
		// height is the limiting side
		return max(1, int(float64(maxHeight)*ratio)), maxHeight
	}
	return maxWidth, max(1, int(float64(maxWidth)/ratio))
}

func encodeJPEG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
