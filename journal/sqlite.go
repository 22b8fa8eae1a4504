package journal

import (
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore persists trades in a SQLite database. Same Store
// contract as the JSON file, for journals that outgrow one flat file.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

const tradeColumns = `id, date, instrument, direction, contracts, entry, exit, commissions, fees, pnl, setup, notes, image_path, timestamp`

func (s *SQLiteStore) List() ([]Trade, error) {
	rows, err := s.db.Query(`SELECT ` + tradeColumns + ` FROM trades`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Trade
	for rows.Next() {
		t, err := scanTrade(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *SQLiteStore) Get(id string) (Trade, error) {
	row := s.db.QueryRow(`SELECT `+tradeColumns+` FROM trades WHERE id = ?`, id)

	t, err := scanTrade(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Trade{}, fmt.Errorf("trade %q: %w", id, ErrNotFound)
		}
		return Trade{}, err
	}
	return t, nil
}

func (s *SQLiteStore) Upsert(t Trade) error {
	_, err := s.db.Exec(`
		INSERT INTO trades (`+tradeColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			date = excluded.date,
			instrument = excluded.instrument,
			direction = excluded.direction,
			contracts = excluded.contracts,
			entry = excluded.entry,
			exit = excluded.exit,
			commissions = excluded.commissions,
			fees = excluded.fees,
			pnl = excluded.pnl,
			setup = excluded.setup,
			notes = excluded.notes,
			image_path = excluded.image_path,
			timestamp = excluded.timestamp`,
		t.ID, t.Date, t.Instrument, t.Direction, t.Contracts, t.Entry, t.Exit,
		t.Commissions, t.Fees, t.PnL, t.Setup, t.Notes, t.ImagePath, t.Timestamp,
	)
	return err
}

func (s *SQLiteStore) Delete(id string) error {
	res, err := s.db.Exec(`DELETE FROM trades WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("trade %q: %w", id, ErrNotFound)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func scanTrade(scan func(dest ...any) error) (Trade, error) {
	var t Trade
	err := scan(
		&t.ID,
		&t.Date,
		&t.Instrument,
		&t.Direction,
		&t.Contracts,
		&t.Entry,
		&t.Exit,
		&t.Commissions,
		&t.Fees,
		&t.PnL,
		&t.Setup,
		&t.Notes,
		&t.ImagePath,
		&t.Timestamp,
	)
	return t, err
}
