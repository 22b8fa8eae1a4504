// Package pnl computes the net dollar profit/loss of a completed
// futures round-turn.
package pnl

import (
	"math"
	"strconv"

	"github.com/mfeller/tradelog/market"
)

// Per-contract round-turn costs suggested to the user when logging a
// new trade. Taken from a retail broker statement: 0.78 commission plus
// 1.12 exchange/NFA/clearing fees, $1.90 all-in per contract.
const (
	CommissionPerContract = 0.78
	FeePerContract        = 1.12
)

// Net returns the net P&L in dollars for a round-turn trade.
//
// Entry and exit arrive as the raw text the user typed. If either
// fails to parse the function returns 0.0. That is a fail-soft policy,
// not an error signal: a 0.0 result does not mean the trade was flat,
// and callers must not treat it that way. The journal depends on
// always receiving a number here, so no error is ever surfaced.
//
// Only the exact string "Short" flips the sign; any other direction
// value is treated as long. Instrument names that match neither
// futures family are valued at the fallback $1/point rather than
// rejected.
func Net(entryText, exitText, instrument, direction string, contracts int, commissions, fees float64) float64 {
	entry, err := strconv.ParseFloat(entryText, 64)
	if err != nil || !isFinite(entry) {
		return 0.0
	}
	exit, err := strconv.ParseFloat(exitText, 64)
	if err != nil || !isFinite(exit) {
		return 0.0
	}
	// The same fail-soft policy covers inputs no real round-turn can
	// have: a contract count below one, or costs that are not finite
	// numbers. Letting those through would poison the stored P&L.
	if contracts < 1 {
		return 0.0
	}
	if !isFinite(commissions) || !isFinite(fees) {
		return 0.0
	}

	pointValue := market.PointValue(instrument)

	points := exit - entry
	if direction == "Short" {
		points = -points
	}

	gross := points * pointValue * float64(contracts)
	net := gross - commissions - fees

	return round2(net)
}

// DefaultCommissions suggests total commissions for a new trade.
func DefaultCommissions(contracts int) float64 {
	return round2(CommissionPerContract * float64(contracts))
}

// DefaultFees suggests total fees for a new trade.
func DefaultFees(contracts int) float64 {
	return round2(FeePerContract * float64(contracts))
}

// round2 rounds half away from zero to two decimal places.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
