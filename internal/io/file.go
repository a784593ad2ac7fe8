package ioutils

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
)

// CopyFile copies src to dst within fs.
//
// The destination file is created with mode 0644 if it doesn't exist,
// or truncated if it does.
//
// Returns an error if:
//   - Source file cannot be opened
//   - Destination file cannot be created
//   - Copy operation fails
//
// Example:
//
//	err := CopyFile(fs, "/home/flora/Music/cover.jpg", "/tmp/album-Blue_Train")
func CopyFile(fs afero.Fs, src, dst string) error {
	sourceFile, err := fs.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	destFile, err := fs.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer destFile.Close()

	if _, err := io.Copy(destFile, sourceFile); err != nil {
		return fmt.Errorf("copy %s to %s: %w", src, dst, err)
	}
	return destFile.Close()
}

// WriteFile writes data to path, creating it with mode 0644 or
// truncating it.
func WriteFile(fs afero.Fs, path string, data []byte) error {
	return afero.WriteFile(fs, path, data, 0o644)
}

// EnsureDir creates a directory and all parent directories if they don't exist.
//
// Directories are created with mode 0755 (rwxr-xr-x).
// If the directory already exists, no error is returned.
func EnsureDir(fs afero.Fs, path string) error {
	return fs.MkdirAll(path, 0o755)
}

// RemoveIfExists deletes path, ignoring a missing file.
func RemoveIfExists(fs afero.Fs, path string) error {
	err := fs.Remove(path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
