// Package ioutils provides the filesystem and image helpers behind the
// album art cache.
//
// Every function takes an afero.Fs so the cache can be exercised in
// memory.
//
// # File Operations
//
//	// Copy a local cover (file:// art URL) into the cache
//	err := ioutils.CopyFile(fs, "/music/cover.jpg", "/tmp/album-Blue_Train")
//
//	// Drop a partial download
//	err := ioutils.RemoveIfExists(fs, "/tmp/album-Blue_Train")
//
// # Image Processing
//
// The ImageService makes sure the renderer can read the cached cover:
//
//	svc := ioutils.NewImageService()
//	changed, err := svc.Normalize(fs, "/tmp/album-Blue_Train", 1000)
package ioutils
