// Package discover expands path arguments into the audio files to inspect.
package discover

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// DefaultExtensions are the file extensions looked at in directories.
// Matching is case sensitive.
var DefaultExtensions = []string{"wav", "WAV", "wave", "WAVE", "aif", "AIF", "aiff", "AIFF"}

var errNotRegular = errors.New("not a regular file or directory")

// Options control how directories are expanded.
type Options struct {
	// Recursive descends into subdirectories.
	Recursive bool
	// Extensions without the leading dot. Defaults to DefaultExtensions.
	Extensions []string
}

// Find returns the files named by paths. Files are returned as given,
// directories are expanded to the files they contain whose extension is
// in opts.Extensions, in lexical order. No paths means the current
// directory.
func Find(paths []string, opts Options) ([]string, error) {
	if len(paths) == 0 {
		paths = []string{"."}
	}

	exts := opts.Extensions
	if len(exts) == 0 {
		exts = DefaultExtensions
	}

	var files []string

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", path, err)
		}

		switch {
		case info.Mode().IsRegular():
			files = append(files, path)
		case info.IsDir():
			found, err := findInDir(path, opts.Recursive, exts)
			if err != nil {
				return nil, err
			}

			files = append(files, found...)
		default:
			return nil, fmt.Errorf("%s: %w", path, errNotRegular)
		}
	}

	return files, nil
}

func findInDir(dir string, recursive bool, exts []string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if entry.IsDir() {
			if path != dir && !recursive {
				return filepath.SkipDir
			}

			return nil
		}

		if entry.Type().IsRegular() && Matches(path, exts) {
			files = append(files, path)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", dir, err)
	}

	return files, nil
}

// Matches reports whether the extension of path, the text after its last
// dot, is one of exts.
func Matches(path string, exts []string) bool {
	ext := filepath.Ext(path)
	if ext == "" {
		return false
	}

	return slices.Contains(exts, strings.TrimPrefix(ext, "."))
}

// ParseExtensions splits a comma separated extension list, dropping blanks
// and leading dots.
func ParseExtensions(list string) []string {
	var exts []string

	for _, ext := range strings.Split(list, ",") {
		ext = strings.TrimPrefix(strings.TrimSpace(ext), ".")
		if ext != "" {
			exts = append(exts, ext)
		}
	}

	return exts
}
