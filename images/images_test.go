package images

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	dir := t.TempDir()
	return New(filepath.Join(dir, "trade_images"), filepath.Join(dir, "thumbs"))
}

func TestSave(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)

	path, err := s.Save("chart.PNG", strings.NewReader("fake-png-bytes"))
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, s.Root()))
	assert.Equal(t, ".png", filepath.Ext(path))

	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, "fake-png-bytes", string(data))
}

func TestSaveUniqueNames(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)

	a, err := s.Save("chart.png", strings.NewReader("a"))
	assert.NoError(t, err)
	b, err := s.Save("chart.png", strings.NewReader("b"))
	assert.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestSaveRejectsUnsupportedType(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)

	_, err := s.Save("notes.pdf", strings.NewReader("x"))
	assert.True(t, errors.Is(err, ErrUnsupportedType))
}

func TestReplaceFreesOldFile(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)

	old, err := s.Save("a.png", strings.NewReader("old"))
	assert.NoError(t, err)

	fresh, err := s.Replace(old, "b.jpg", strings.NewReader("new"))
	assert.NoError(t, err)
	assert.NotEqual(t, old, fresh)

	_, err = os.Stat(old)
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(fresh)
	assert.NoError(t, err)
}

func TestReplaceReportsOldRemovalFailureNonFatally(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)

	// A non-empty directory cannot be os.Remove'd, standing in for an
	// old path that fails to delete.
	old := filepath.Join(t.TempDir(), "stuck")
	assert.NoError(t, os.MkdirAll(filepath.Join(old, "child"), 0o755))

	fresh, err := s.Replace(old, "b.png", strings.NewReader("new"))
	assert.Error(t, err)
	assert.NotEmpty(t, fresh, "the new save must survive a failed old-file removal")

	data, rerr := os.ReadFile(fresh)
	assert.NoError(t, rerr)
	assert.Equal(t, "new", string(data))
}

func TestRemoveIdempotent(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)

	path, err := s.Save("a.png", strings.NewReader("x"))
	assert.NoError(t, err)

	assert.NoError(t, s.Remove(path))
	assert.NoError(t, s.Remove(path))
	assert.NoError(t, s.Remove(""))
}

func TestThumbnail(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)

	// Store a real 400x200 image.
	img := imaging.New(400, 200, color.NRGBA{R: 200, A: 255})
	var buf bytes.Buffer
	assert.NoError(t, imaging.Encode(&buf, img, imaging.PNG))

	path, err := s.Save("wide.png", &buf)
	assert.NoError(t, err)

	thumb, err := s.Thumbnail(path, 100)
	assert.NoError(t, err)

	small, err := imaging.Open(thumb)
	assert.NoError(t, err)
	assert.Equal(t, 100, small.Bounds().Dx())
	assert.Equal(t, 50, small.Bounds().Dy())

	// Second call reuses the cached file.
	again, err := s.Thumbnail(path, 100)
	assert.NoError(t, err)
	assert.Equal(t, thumb, again)
}

func TestThumbnailSmallImageKeptAsIs(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)

	img := imaging.New(50, 40, color.NRGBA{G: 120, A: 255})
	var buf bytes.Buffer
	assert.NoError(t, imaging.Encode(&buf, img, imaging.PNG))

	path, err := s.Save("small.png", &buf)
	assert.NoError(t, err)

	thumb, err := s.Thumbnail(path, 100)
	assert.NoError(t, err)

	got, err := imaging.Open(thumb)
	assert.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 50, 40), got.Bounds())
}

func TestRemoveDeletesThumbnail(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)

	img := imaging.New(10, 10, color.NRGBA{B: 90, A: 255})
	var buf bytes.Buffer
	assert.NoError(t, imaging.Encode(&buf, img, imaging.PNG))

	path, err := s.Save("x.png", &buf)
	assert.NoError(t, err)

	thumb, err := s.Thumbnail(path, 100)
	assert.NoError(t, err)

	assert.NoError(t, s.Remove(path))
	_, err = os.Stat(thumb)
	assert.True(t, os.IsNotExist(err))
}
