// Package model defines the core data structures used throughout
// the greetcard application.
//
// # Track Metadata
//
// TrackMetadata is what the media player reports about the current track:
//
//	meta := model.TrackMetadata{Title: "Clair de Lune", HasTitle: true, Album: "Suite Bergamasque"}
//	if meta.AlbumUsable() {
//	    fmt.Println(model.ArtPath(model.DefaultArtPathPrefix, meta.Album))
//	}
//
// # Art Paths
//
// ArtPath maps an album name to its cached cover art file. Every
// non-alphanumeric code point is replaced with an underscore:
//
//	model.ArtPath("/tmp/album-", "Suite Bergamasque") // "/tmp/album-Suite_Bergamasque"
//
// # Composite Rows
//
// CompositeRow pairs an image row with an info row; String joins them with a tab.
package model
