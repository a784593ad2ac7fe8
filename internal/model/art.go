package model

import (
	"strings"
	"unicode"
)

// DefaultArtPathPrefix is prepended to the sanitized album name to form the cache path.
const DefaultArtPathPrefix = "/tmp/album-"

// ArtPath computes the local cache path for an album's cover art.
//
// The prefix is concatenated as-is, so "/tmp/album-" yields paths like
// "/tmp/album-Suite_Bergamasque". The same album name always maps to the
// same path, which lets the file act as a cache across runs.
//
// Example:
//
//	ArtPath(DefaultArtPathPrefix, "Suite Bergamasque") // "/tmp/album-Suite_Bergamasque"
func ArtPath(prefix, album string) string {
	return prefix + Sanitize(album)
}

// Sanitize replaces every non-alphanumeric code point with an underscore.
//
// Alphanumeric follows Unicode, not ASCII: letters and numbers from any
// script are kept, together with the Other_Alphabetic marks that Unicode
// counts as alphabetic.
//
// Example:
//
//	Sanitize("Song: Part 1/2") // Returns "Song__Part_1_2"
//	Sanitize("Ænima")          // Returns "Ænima"
func Sanitize(name string) string {
	return strings.Map(func(r rune) rune {
		if isAlphanumeric(r) {
			return r
		}
		return '_'
	}, name)
}

func isAlphanumeric(r rune) bool {
	return unicode.In(r, unicode.L, unicode.N, unicode.Other_Alphabetic)
}
