// Package art resolves the image shown on the left of the card: the
// cover of the album that is playing, cached on disk by album name.
//
// Resolve never falls back by itself. It returns ErrNoAlbum, ErrNoArtURL
// or ErrDownload and leaves the choice of a default image to the caller.
package art
