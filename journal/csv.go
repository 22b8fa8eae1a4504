package journal

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"
)

var csvHeader = []string{
	"id", "date", "instrument", "direction", "contracts",
	"entry", "exit", "commissions", "fees", "pnl",
	"setup", "notes", "image_path", "timestamp",
}

// ExportCSV writes the trades to w, most recent first.
func ExportCSV(w io.Writer, trades []Trade) error {
	sorted := make([]Trade, len(trades))
	copy(sorted, trades)
	SortByDateDesc(sorted)

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for _, t := range sorted {
		row := []string{
			t.ID,
			t.Date,
			t.Instrument,
			t.Direction,
			strconv.Itoa(t.Contracts),
			t.Entry,
			t.Exit,
			f(t.Commissions),
			f(t.Fees),
			f(t.PnL),
			t.Setup,
			t.Notes,
			t.ImagePath,
			t.Timestamp.Format(time.RFC3339),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', 2, 64)
}
