package journal

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/ulikunitz/xz"
)

// JSONStore keeps the whole journal in one pretty-printed JSON file,
// rewritten on every change. Before each rewrite the previous contents
// are kept as an xz-compressed snapshot next to the data file, so one
// generation of history survives a bad write.
type JSONStore struct {
	mu     sync.Mutex
	path   string
	trades []Trade
}

// NewJSON loads (or initializes) the journal at path. A missing or
// corrupt data file is treated as an empty journal, matching the
// load-all semantics the file format has always had.
func NewJSON(path string) (*JSONStore, error) {
	s := &JSONStore{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("read journal: %w", err)
	}

	if err := json.Unmarshal(data, &s.trades); err != nil {
		// Corrupt or empty file: start over rather than refuse to run.
		s.trades = nil
	}
	return s, nil
}

// SnapshotPath is where the previous generation of the data file is
// kept.
func (s *JSONStore) SnapshotPath() string {
	return s.path + ".xz"
}

func (s *JSONStore) List() ([]Trade, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Trade, len(s.trades))
	copy(out, s.trades)
	return out, nil
}

func (s *JSONStore) Get(id string) (Trade, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.trades {
		if t.ID == id {
			return t, nil
		}
	}
	return Trade{}, fmt.Errorf("trade %q: %w", id, ErrNotFound)
}

func (s *JSONStore) Upsert(t Trade) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	replaced := false
	for i := range s.trades {
		if s.trades[i].ID == t.ID {
			s.trades[i] = t
			replaced = true
			break
		}
	}
	if !replaced {
		s.trades = append(s.trades, t)
	}
	return s.saveLocked()
}

func (s *JSONStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.trades {
		if s.trades[i].ID == id {
			s.trades = append(s.trades[:i], s.trades[i+1:]...)
			return s.saveLocked()
		}
	}
	return fmt.Errorf("trade %q: %w", id, ErrNotFound)
}

func (s *JSONStore) Close() error { return nil }

func (s *JSONStore) saveLocked() error {
	if err := s.snapshotLocked(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s.trades, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal journal: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("journal dir: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write journal: %w", err)
	}
	return nil
}

func (s *JSONStore) snapshotLocked() error {
	prev, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read previous journal: %w", err)
	}

	f, err := os.Create(s.SnapshotPath())
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}

	w, err := xz.NewWriter(f)
	if err != nil {
		f.Close()
		return fmt.Errorf("snapshot writer: %w", err)
	}
	if _, err := w.Write(prev); err != nil {
		w.Close()
		f.Close()
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := w.Close(); err != nil {
		f.Close()
		return fmt.Errorf("close snapshot: %w", err)
	}
	return f.Close()
}
