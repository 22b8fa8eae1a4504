package journal

import "github.com/shopspring/decimal"

// Summary aggregates a set of trades for the journal overview.
type Summary struct {
	Trades       int
	Wins         int
	Losses       int
	NetTotal     decimal.Decimal
	GrossProfit  decimal.Decimal
	GrossLoss    decimal.Decimal // absolute value
	ProfitFactor decimal.Decimal // zero when there are no losses
}

// Summarize totals the net P&L of the given trades. Sums are carried
// in decimal so a long journal of two-decimal amounts never
// accumulates float drift.
func Summarize(trades []Trade) Summary {
	var s Summary
	s.Trades = len(trades)

	for _, t := range trades {
		net := decimal.NewFromFloat(t.PnL)
		s.NetTotal = s.NetTotal.Add(net)

		switch {
		case net.IsPositive():
			s.Wins++
			s.GrossProfit = s.GrossProfit.Add(net)
		case net.IsNegative():
			s.Losses++
			s.GrossLoss = s.GrossLoss.Add(net.Abs())
		}
	}

	if s.GrossLoss.IsPositive() {
		s.ProfitFactor = s.GrossProfit.DivRound(s.GrossLoss, 2)
	}
	return s
}
