package collector

import "CoinRadar/internal/model"

// Fetcher defines the interface for fetching market data.
type Fetcher interface {
	FetchCoinDetail(id string) (*model.CoinDetail, error)
	FetchMarketChart(id string, days int) ([]model.PricePoint, error)
	FetchTrending() ([]model.TrendingCoin, error)
	Name() string
}
