package audio

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bogem/id3v2"
	"github.com/go-flac/flacpicture"
	"github.com/go-flac/go-flac"
	"github.com/spf13/afero"
)

var (
	// ErrNoPicture is returned when a track carries no embedded picture.
	ErrNoPicture = errors.New("no embedded picture")

	// ErrUnsupportedFormat is returned for files other than MP3 and FLAC.
	ErrUnsupportedFormat = errors.New("unsupported audio format")
)

// CoverReader extracts embedded cover art from local audio files.
//
// CoverReader understands:
//   - MP3 files with ID3v2 APIC frames
//   - FLAC files with PICTURE metadata blocks
//
// A front cover is preferred; otherwise the first picture is used.
//
// Example:
//
//	reader := NewCoverReader(afero.NewOsFs())
//	data, err := reader.Cover("/music/Blue Train/01 Blue Train.flac")
//	if errors.Is(err, ErrNoPicture) {
//	    // fall back to the default image
//	}
type CoverReader struct {
	fs afero.Fs
}

// NewCoverReader creates a CoverReader that opens files through fs.
func NewCoverReader(fs afero.Fs) *CoverReader {
	return &CoverReader{fs: fs}
}

// Supported reports whether path has an extension Cover understands.
func Supported(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3", ".flac":
		return true
	}
	return false
}

// Cover returns the image bytes embedded in the track at path.
func (r *CoverReader) Cover(path string) ([]byte, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		return r.mp3Cover(path)
	case ".flac":
		return r.flacCover(path)
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
}

func (r *CoverReader) mp3Cover(path string) ([]byte, error) {
	file, err := r.fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	tag, err := id3v2.ParseReader(file, id3v2.Options{Parse: true, ParseFrames: []string{"Attached picture"}})
	if err != nil {
		return nil, fmt.Errorf("parse id3 tag of %s: %w", path, err)
	}
	defer tag.Close()

	var picture []byte
	for _, frame := range tag.GetFrames(tag.CommonID("Attached picture")) {
		pic, ok := frame.(id3v2.PictureFrame)
		if !ok || len(pic.Picture) == 0 {
			continue
		}
		if pic.PictureType == id3v2.PTFrontCover {
			return pic.Picture, nil
		}
		if picture == nil {
			picture = pic.Picture
		}
	}

	if picture == nil {
		return nil, fmt.Errorf("%s: %w", path, ErrNoPicture)
	}
	return picture, nil
}

func (r *CoverReader) flacCover(path string) ([]byte, error) {
	file, err := r.fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	parsed, err := flac.ParseMetadata(file)
	if err != nil {
		return nil, fmt.Errorf("parse flac metadata of %s: %w", path, err)
	}

	var picture *flacpicture.MetadataBlockPicture
	for _, block := range parsed.Meta {
		if block.Type != flac.Picture {
			continue
		}
		parsedPicture, err := flacpicture.ParseFromMetaDataBlock(*block)
		if err != nil || len(parsedPicture.ImageData) == 0 {
			continue
		}
		if parsedPicture.PictureType == flacpicture.PictureTypeFrontCover {
			return parsedPicture.ImageData, nil
		}
		if picture == nil {
			picture = parsedPicture
		}
	}

	if picture == nil {
		return nil, fmt.Errorf("%s: %w", path, ErrNoPicture)
	}
	return picture.ImageData, nil
}
