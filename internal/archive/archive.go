// Package archive loads Messenger export archives from disk. An export is
// either a .zip file or an already-unpacked directory; both are flattened
// into an in-memory FileSet keyed by slash-separated relative paths.
package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FileSet maps slash-separated relative paths to file contents.
type FileSet map[string][]byte

// Open loads the export at path, dispatching on whether it is a directory
// or a zip archive.
func Open(path string) (FileSet, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("archive: stat %s: %w", path, err)
	}
	if info.IsDir() {
		return OpenDir(path)
	}
	return OpenZip(path)
}

// OpenZip reads every regular file in the zip archive at path.
func OpenZip(path string) (FileSet, error) {
	reader, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("archive: open zip %s: %w", path, err)
	}
	defer reader.Close()

	files := make(FileSet)
	for _, entry := range reader.File {
		if entry.FileInfo().IsDir() {
			continue
		}
		rc, err := entry.Open()
		if err != nil {
			return nil, fmt.Errorf("archive: open zip entry %s: %w", entry.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("archive: read zip entry %s: %w", entry.Name, err)
		}
		files[filepath.ToSlash(entry.Name)] = data
	}
	return files, nil
}

// OpenDir walks the directory at root and loads every regular file. Keys are
// relative to root so a pre-unpacked export looks identical to a zip one.
func OpenDir(root string) (FileSet, error) {
	files := make(FileSet)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		files[filepath.ToSlash(rel)] = data
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("archive: read directory %s: %w", root, err)
	}
	return files, nil
}

// hasSuffixFold reports whether path ends with ext, ignoring case.
func hasSuffixFold(path, ext string) bool {
	return strings.EqualFold(filepath.Ext(path), ext)
}
