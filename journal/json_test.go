package journal

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/ulikunitz/xz"
)

func sampleTrade(id string) Trade {
	return Trade{
		ID:          id,
		Date:        "2026-08-14",
		Instrument:  "Micro NASDAQ Futures",
		Direction:   "Long",
		Contracts:   1,
		Entry:       "15000",
		Exit:        "15010",
		Commissions: 0.78,
		Fees:        1.12,
		PnL:         18.10,
		Setup:       "VWAP Rejection",
		Notes:       "clean entry",
		Timestamp:   time.Date(2026, 8, 14, 15, 30, 0, 0, time.UTC),
	}
}

func newTestJSON(t *testing.T) (*JSONStore, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "journal_data.json")
	s, err := NewJSON(path)
	assert.NoError(t, err)
	return s, path
}

func TestJSONStoreRoundTrip(t *testing.T) {
	t.Parallel()

	s, path := newTestJSON(t)

	rec := sampleTrade("T1")
	assert.NoError(t, s.Upsert(rec))

	// Reopen from disk and read it back.
	s2, err := NewJSON(path)
	assert.NoError(t, err)

	got, err := s2.Get("T1")
	assert.NoError(t, err)
	assert.Equal(t, rec.Instrument, got.Instrument)
	assert.Equal(t, rec.Entry, got.Entry)
	assert.InDelta(t, rec.PnL, got.PnL, 1e-9)
	assert.True(t, got.Timestamp.Equal(rec.Timestamp))
}

func TestJSONStoreUpsertReplacesByID(t *testing.T) {
	t.Parallel()

	s, _ := newTestJSON(t)

	rec := sampleTrade("T1")
	assert.NoError(t, s.Upsert(rec))

	rec.Exit = "15020"
	rec.PnL = 38.10
	assert.NoError(t, s.Upsert(rec))

	trades, err := s.List()
	assert.NoError(t, err)
	assert.Len(t, trades, 1)
	assert.Equal(t, "15020", trades[0].Exit)
}

func TestJSONStoreDelete(t *testing.T) {
	t.Parallel()

	s, _ := newTestJSON(t)

	assert.NoError(t, s.Upsert(sampleTrade("T1")))
	assert.NoError(t, s.Delete("T1"))

	trades, err := s.List()
	assert.NoError(t, err)
	assert.Empty(t, trades)

	err = s.Delete("T1")
	assert.True(t, errors.Is(err, ErrNotFound))

	_, err = s.Get("T1")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestJSONStoreCorruptFileTreatedAsEmpty(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "journal_data.json")
	assert.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	s, err := NewJSON(path)
	assert.NoError(t, err)

	trades, err := s.List()
	assert.NoError(t, err)
	assert.Empty(t, trades)
}

func TestJSONStoreMissingFileTreatedAsEmpty(t *testing.T) {
	t.Parallel()

	s, err := NewJSON(filepath.Join(t.TempDir(), "nope", "journal_data.json"))
	assert.NoError(t, err)

	trades, err := s.List()
	assert.NoError(t, err)
	assert.Empty(t, trades)
}

func TestJSONStoreKeepsPreviousGenerationSnapshot(t *testing.T) {
	t.Parallel()

	s, path := newTestJSON(t)

	assert.NoError(t, s.Upsert(sampleTrade("T1")))
	// First save: no previous file, so no snapshot yet.
	_, err := os.Stat(s.SnapshotPath())
	assert.True(t, os.IsNotExist(err))

	first, err := os.ReadFile(path)
	assert.NoError(t, err)

	assert.NoError(t, s.Upsert(sampleTrade("T2")))

	f, err := os.Open(s.SnapshotPath())
	assert.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	r, err := xz.NewReader(f)
	assert.NoError(t, err)
	prev, err := io.ReadAll(r)
	assert.NoError(t, err)

	assert.Equal(t, first, prev)
}

func TestJSONStoreListReturnsCopy(t *testing.T) {
	t.Parallel()

	s, _ := newTestJSON(t)
	assert.NoError(t, s.Upsert(sampleTrade("T1")))

	trades, err := s.List()
	assert.NoError(t, err)
	trades[0].Notes = "mutated"

	again, err := s.List()
	assert.NoError(t, err)
	assert.Equal(t, "clean entry", again[0].Notes)
}
