// Package audio reads cover art embedded in local audio files.
//
// Local players often publish a file:// track URL but no art URL. The
// cover is then usually inside the track itself:
//
//	reader := audio.NewCoverReader(fs)
//	if audio.Supported(path) {
//	    data, err := reader.Cover(path)
//	}
//
// Supported formats:
//   - MP3 (ID3v2 attached pictures)
//   - FLAC (PICTURE metadata blocks)
package audio
