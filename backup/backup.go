// Package backup archives the journal data and stored screenshots into
// a single zip file and restores from one.
package backup

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/xyproto/unzip"
)

// Create writes a zip archive at dst containing the given paths. Each
// path may be a file or a directory (archived recursively); entry
// names are kept relative to base. Paths that do not exist are skipped
// so a fresh journal with no images still backs up cleanly.
func Create(dst, base string, paths ...string) error {
	f, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create archive: %w", err)
	}
	zw := zip.NewWriter(f)

	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			zw.Close()
			f.Close()
			return fmt.Errorf("stat %s: %w", p, err)
		}

		if info.IsDir() {
			err = filepath.Walk(p, func(path string, fi os.FileInfo, err error) error {
				if err != nil || fi.IsDir() {
					return err
				}
				return addFile(zw, base, path)
			})
		} else {
			err = addFile(zw, base, p)
		}
		if err != nil {
			zw.Close()
			f.Close()
			return err
		}
	}

	if err := zw.Close(); err != nil {
		f.Close()
		return fmt.Errorf("close archive: %w", err)
	}
	return f.Close()
}

// Restore extracts an archive created by Create into dir.
func Restore(src, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("restore dir: %w", err)
	}
	if err := unzip.Extract(src, dir); err != nil {
		return fmt.Errorf("extract archive: %w", err)
	}
	return nil
}

func addFile(zw *zip.Writer, base, path string) error {
	rel, err := filepath.Rel(base, path)
	if err != nil {
		rel = filepath.Base(path)
	}

	w, err := zw.Create(filepath.ToSlash(rel))
	if err != nil {
		return fmt.Errorf("archive entry %s: %w", rel, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	if _, err := io.Copy(w, f); err != nil {
		return fmt.Errorf("archive %s: %w", rel, err)
	}
	return nil
}
