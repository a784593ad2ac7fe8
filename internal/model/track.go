package model

// TrackMetadata describes the track reported by the active media player.
//
// TrackMetadata contains only what the greeting card needs:
//   - Title and Album for the info column
//   - ArtURL for fetching cover art
//   - URL of the track itself, used to read embedded cover art when
//     the player publishes no ArtURL
//
// Empty strings mean the player did not report the field, except for Title,
// which tracks presence separately because an empty title is still shown.
//
// Example:
//
//	meta := TrackMetadata{Title: "Clair de Lune", HasTitle: true, Album: "Suite Bergamasque"}
//	meta.AlbumUsable() // true
type TrackMetadata struct {
	// Title is the track title.
	Title string

	// HasTitle reports whether the player published a title at all.
	HasTitle bool

	// Album is the album name. An empty album is treated as absent.
	Album string

	// ArtURL is the URL of the album art (http(s):// or file://).
	// Empty string means no art URL is available.
	ArtURL string

	// URL is the location of the playing track, typically file:// for local players.
	URL string
}

// AlbumUsable returns true if the album name is present and non-empty.
func (m TrackMetadata) AlbumUsable() bool {
	return m.Album != ""
}

// HasArtwork returns true if the player published an art URL.
func (m TrackMetadata) HasArtwork() bool {
	return m.ArtURL != ""
}

// Playing returns true if the metadata can be shown as a track line,
// which needs both a title and a usable album.
func (m TrackMetadata) Playing() bool {
	return m.HasTitle && m.AlbumUsable()
}
