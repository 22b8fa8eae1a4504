package market

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		instrument string
		expected   float64
	}{
		{"micro_nasdaq", "Micro NASDAQ Futures", 2.00},
		{"micro_es", "Micro ES Futures", 5.00},
		{"nasdaq_variant", "E-mini NASDAQ 100", 2.00},
		{"unknown_falls_back", "Crude Oil Futures", 1.00},
		{"empty_falls_back", "", 1.00},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.expected, PointValue(tt.instrument), 1e-9)
		})
	}
}

func TestNamesMatchMetadata(t *testing.T) {
	t.Parallel()

	names := Names()
	assert.Len(t, names, len(Instruments))
	for _, n := range names {
		assert.True(t, Known(n), "name %q missing from Instruments", n)
		assert.InDelta(t, Instruments[n].PointValue, PointValue(n), 1e-9)
	}
}

func TestParseDirection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Direction
		ok   bool
	}{
		{"Long", Long, true},
		{"short", Short, true},
		{" SELL ", Short, true},
		{"buy", Long, true},
		{"sideways", Long, false},
		{"", Long, false},
	}

	for _, tt := range tests {
		got, ok := ParseDirection(tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
		assert.Equal(t, tt.ok, ok, "input %q", tt.in)
	}
}

func TestDirectionValid(t *testing.T) {
	t.Parallel()

	assert.True(t, Long.Valid())
	assert.True(t, Short.Valid())
	assert.False(t, Direction("Sideways").Valid())
}
