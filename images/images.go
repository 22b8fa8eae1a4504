// Package images stores trade screenshots on disk. Each stored file is
// owned by exactly one journal record; replacing or deleting the record
// frees the file it owned.
package images

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/mfeller/tradelog/pkg/id"
)

// ErrUnsupportedType is returned for uploads that are not PNG or JPEG.
var ErrUnsupportedType = errors.New("unsupported image type")

var allowedExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

// Store writes screenshots under root and cached thumbnails under
// thumbRoot. Stored paths keep the root prefix, so they can be handed
// straight back to the store later.
type Store struct {
	root      string
	thumbRoot string
}

func New(root, thumbRoot string) *Store {
	return &Store{root: root, thumbRoot: thumbRoot}
}

func (s *Store) Root() string { return s.root }

// Save writes the upload to a fresh ULID-named file, keeping the
// original extension, and returns the stored path.
func (s *Store) Save(srcName string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(srcName))
	if !allowedExts[ext] {
		return "", fmt.Errorf("%q: %w", srcName, ErrUnsupportedType)
	}

	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return "", fmt.Errorf("image dir: %w", err)
	}

	path := filepath.Join(s.root, id.New()+ext)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create image: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("write image: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close image: %w", err)
	}
	return path, nil
}

// Replace saves the new upload and then frees the previously owned
// file. A non-empty returned path means the save succeeded; a non-nil
// error alongside it only reports that the old file could not be
// freed, which callers should log rather than fail on.
func (s *Store) Replace(oldPath, srcName string, r io.Reader) (string, error) {
	path, err := s.Save(srcName, r)
	if err != nil {
		return "", err
	}
	if oldPath != "" && oldPath != path {
		if err := s.Remove(oldPath); err != nil {
			return path, err
		}
	}
	return path, nil
}

// Remove deletes a stored image and its cached thumbnail. A missing
// file is not an error, so Remove is idempotent.
func (s *Store) Remove(path string) error {
	if path == "" {
		return nil
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove image: %w", err)
	}
	thumb := s.thumbPath(path)
	if err := os.Remove(thumb); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove thumbnail: %w", err)
	}
	return nil
}

// Thumbnail returns the path of a cached, width-bounded copy of the
// stored image, generating it on first use. Images already narrower
// than maxWidth are copied as-is.
func (s *Store) Thumbnail(path string, maxWidth int) (string, error) {
	thumb := s.thumbPath(path)
	if _, err := os.Stat(thumb); err == nil {
		return thumb, nil
	}

	img, err := imaging.Open(path)
	if err != nil {
		return "", fmt.Errorf("open image: %w", err)
	}
	if img.Bounds().Dx() > maxWidth {
		img = imaging.Resize(img, maxWidth, 0, imaging.Lanczos)
	}

	if err := os.MkdirAll(s.thumbRoot, 0o755); err != nil {
		return "", fmt.Errorf("thumb dir: %w", err)
	}
	if err := imaging.Save(img, thumb); err != nil {
		return "", fmt.Errorf("save thumbnail: %w", err)
	}
	return thumb, nil
}

func (s *Store) thumbPath(path string) string {
	return filepath.Join(s.thumbRoot, filepath.Base(path))
}
