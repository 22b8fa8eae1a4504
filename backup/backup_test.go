package backup

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateAndRestore(t *testing.T) {
	t.Parallel()

	src := t.TempDir()
	dataFile := filepath.Join(src, "journal_data.json")
	assert.NoError(t, os.WriteFile(dataFile, []byte(`[{"id":"T1"}]`), 0o644))

	imgDir := filepath.Join(src, "trade_images")
	assert.NoError(t, os.MkdirAll(imgDir, 0o755))
	imgFile := filepath.Join(imgDir, "chart.png")
	assert.NoError(t, os.WriteFile(imgFile, []byte("png-bytes"), 0o644))

	archive := filepath.Join(t.TempDir(), "backup.zip")
	assert.NoError(t, Create(archive, src, dataFile, imgDir))

	dest := t.TempDir()
	assert.NoError(t, Restore(archive, dest))

	data, err := os.ReadFile(filepath.Join(dest, "journal_data.json"))
	assert.NoError(t, err)
	assert.Equal(t, `[{"id":"T1"}]`, string(data))

	img, err := os.ReadFile(filepath.Join(dest, "trade_images", "chart.png"))
	assert.NoError(t, err)
	assert.Equal(t, "png-bytes", string(img))
}

func TestCreateSkipsMissingPaths(t *testing.T) {
	t.Parallel()

	src := t.TempDir()
	dataFile := filepath.Join(src, "journal_data.json")
	assert.NoError(t, os.WriteFile(dataFile, []byte(`[]`), 0o644))

	archive := filepath.Join(t.TempDir(), "backup.zip")
	assert.NoError(t, Create(archive, src, dataFile, filepath.Join(src, "no-images-yet")))

	dest := t.TempDir()
	assert.NoError(t, Restore(archive, dest))

	_, err := os.Stat(filepath.Join(dest, "journal_data.json"))
	assert.NoError(t, err)
}
