package market

import "strings"

// InstrumentMeta describes a tradable futures contract.
type InstrumentMeta struct {
	Name       string
	Exchange   string
	PointValue float64 // dollars per full point, per contract
	TickSize   float64
}

// FallbackPointValue is used for instrument names the journal does not
// recognize. Unknown instruments are never rejected, they just degrade
// to a $1/point valuation.
const FallbackPointValue = 1.00

var Instruments = map[string]InstrumentMeta{
	"Micro NASDAQ Futures": {
		Name:       "Micro NASDAQ Futures",
		Exchange:   "CME",
		PointValue: 2.00,
		TickSize:   0.25,
	},
	"Micro ES Futures": {
		Name:       "Micro ES Futures",
		Exchange:   "CME",
		PointValue: 5.00,
		TickSize:   0.25,
	},
}

// instrumentOrder fixes the dropdown order in the entry form.
var instrumentOrder = []string{
	"Micro NASDAQ Futures",
	"Micro ES Futures",
}

// Names returns the instrument names in display order.
func Names() []string {
	out := make([]string, len(instrumentOrder))
	copy(out, instrumentOrder)
	return out
}

// PointValue resolves the dollar value of one price point for the
// given instrument name. Resolution is by substring so variants like
// "Micro NASDAQ Futures (MNQ)" still match. Names matching neither
// family fall back to $1/point rather than erroring.
func PointValue(name string) float64 {
	switch {
	case strings.Contains(name, "NASDAQ"):
		return 2.00
	case strings.Contains(name, "ES Futures"):
		return 5.00
	default:
		return FallbackPointValue
	}
}

// Known reports whether name is one of the enumerated instruments.
func Known(name string) bool {
	_, ok := Instruments[name]
	return ok
}
