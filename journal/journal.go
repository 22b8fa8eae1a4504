// Package journal stores completed futures trades.
package journal

import (
	"errors"
	"time"

	"github.com/mfeller/tradelog/pnl"
)

// ErrNotFound is returned when no trade matches the requested ID.
var ErrNotFound = errors.New("trade not found")

// Trade is a single logged round-turn. Entry and exit keep the raw
// text the user submitted; PnL is always derived from the other fields
// by the calculator and is never edited independently.
type Trade struct {
	ID          string    `json:"id"`
	Date        string    `json:"date"` // YYYY-MM-DD
	Instrument  string    `json:"instrument"`
	Direction   string    `json:"direction"`
	Contracts   int       `json:"contracts"`
	Entry       string    `json:"entry"`
	Exit        string    `json:"exit"`
	Commissions float64   `json:"commissions"`
	Fees        float64   `json:"fees"`
	PnL         float64   `json:"pnl"`
	Setup       string    `json:"setup"`
	Notes       string    `json:"notes"`
	ImagePath   string    `json:"tradeImagePath,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

// RecomputePnL rederives the net P&L from the trade's own fields.
// Call before every persist so the stored value can never drift from
// its inputs.
func (t *Trade) RecomputePnL() {
	t.PnL = pnl.Net(t.Entry, t.Exit, t.Instrument, t.Direction, t.Contracts, t.Commissions, t.Fees)
}

// Store is the journal persistence capability handed to whatever layer
// needs it. Implementations are whole-record, last-write-wins; there
// is no partial update.
type Store interface {
	List() ([]Trade, error)
	Get(id string) (Trade, error)
	Upsert(Trade) error
	Delete(id string) error
	Close() error
}
