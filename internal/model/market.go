package model

import "time"

// PricePoint is a single price sample from the market-chart endpoint.
type PricePoint struct {
	Timestamp int64 // milliseconds since epoch
	Price     float64
}

// Date returns the sample's UTC calendar date as YYYY-MM-DD.
func (p PricePoint) Date() string {
	return time.UnixMilli(p.Timestamp).UTC().Format("2006-01-02")
}

// DailySeries holds deduplicated daily prices, ascending by date,
// at most one point per calendar date.
type DailySeries struct {
	CoinID    string
	Points    []PricePoint
	FetchedAt time.Time
}

// CoinDetail holds the subset of the coin-detail response we consume.
type CoinDetail struct {
	ID           string
	Name         string
	Symbol       string
	CurrentPrice float64 // USD
}

// TrendingCoin is one entry from the trending search, in source order.
type TrendingCoin struct {
	ID     string
	Name   string
	Symbol string
}
