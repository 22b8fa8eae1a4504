package journal

import (
	"sort"
	"time"
)

const dateLayout = "2006-01-02"

// tradeDate parses the record's date, falling back to the epoch for
// blank or malformed dates so they sink to the bottom of the list.
func tradeDate(t Trade) time.Time {
	d, err := time.Parse(dateLayout, t.Date)
	if err != nil {
		return time.Unix(0, 0).UTC()
	}
	return d
}

// SortByDateDesc orders trades most recent first, the history-list
// order. Ties on date break by creation timestamp, newest first.
func SortByDateDesc(trades []Trade) {
	sort.SliceStable(trades, func(i, j int) bool {
		di, dj := tradeDate(trades[i]), tradeDate(trades[j])
		if !di.Equal(dj) {
			return di.After(dj)
		}
		return trades[i].Timestamp.After(trades[j].Timestamp)
	})
}

// On returns the trades dated on the given YYYY-MM-DD day.
func On(trades []Trade, day string) []Trade {
	var out []Trade
	for _, t := range trades {
		if t.Date == day {
			out = append(out, t)
		}
	}
	return out
}
