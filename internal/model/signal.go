package model

// Signal classifies a coin's momentum.
type Signal string

const (
	SignalBuy     Signal = "buy"
	SignalSell    Signal = "sell"
	SignalNeutral Signal = "neutral"
)

// CoinSummary is the per-coin output row of the trending tool.
type CoinSummary struct {
	Name   string
	Symbol string
	RSI    RSI
	Signal Signal
}
