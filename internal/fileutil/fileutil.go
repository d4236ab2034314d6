// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors for file utility operations.
var (
	ErrEmptyPath  = errors.New("path cannot be empty")
	ErrPathIsDir  = errors.New("path is a directory")
	ErrCreateDir  = errors.New("failed to create directory")
	ErrWriteFile  = errors.New("failed to write file")
	ErrRemoveFile = errors.New("failed to remove file")
	ErrNotRegular = errors.New("not a regular file")
)

// Permission defaults for generated files.
const (
	DirPermissions  = 0o750 // rwxr-x---
	FilePermissions = 0o644 // rw-r--r--
)

// OverwriteFunc is called with the target path before an existing file is replaced.
type OverwriteFunc func(path string)

// WriteFile writes data to path, creating missing parent directories.
// If path already exists as a regular file, onOverwrite (when non-nil) is
// called before the file is truncated. The handle is closed before return.
func WriteFile(path string, data []byte, onOverwrite OverwriteFunc) error {
	if path == "" {
		return ErrEmptyPath
	}

	info, err := os.Stat(path)
	switch {
	case err == nil && info.IsDir():
		return fmt.Errorf("%w: %s", ErrPathIsDir, path)
	case err == nil:
		if onOverwrite != nil {
			onOverwrite(path)
		}
	case !errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("%w: %v", ErrWriteFile, err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, DirPermissions); err != nil {
			return fmt.Errorf("%w: %v", ErrCreateDir, err)
		}
	}

	if err := os.WriteFile(path, data, FilePermissions); err != nil { // #nosec G306 -- output is meant to be shared
		return fmt.Errorf("%w: %v", ErrWriteFile, err)
	}
	return nil
}

// RemoveFile deletes a regular file. Directories are refused.
func RemoveFile(path string) error {
	if path == "" {
		return ErrEmptyPath
	}
	info, err := os.Lstat(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRemoveFile, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%w: %w: %s", ErrRemoveFile, ErrNotRegular, path)
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("%w: %v", ErrRemoveFile, err)
	}
	return nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) or ending in ".xsl"/".xslt" is a path.
//
// Examples:
//   - "normalize" -> false (name)
//   - "./custom.xsl" -> true (relative path)
//   - "custom.xsl" -> true (extension)
//   - "/absolute/sheet.xslt" -> true (absolute)
//   - "C:\sheets\tei.xsl" -> true (Windows)
func IsFilePath(s string) bool {
	if strings.ContainsAny(s, "/\\") {
		return true
	}
	ext := strings.ToLower(filepath.Ext(s))
	return ext == ".xsl" || ext == ".xslt"
}
