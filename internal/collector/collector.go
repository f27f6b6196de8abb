package collector

import (
	"fmt"
	"sort"
	"time"

	"CoinRadar/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Detail       *model.CoinDetail
	Charts       map[string][]model.PricePoint
	ChartErr     map[string]error
	TrendingList []model.TrendingCoin
	TrendingErr  error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchCoinDetail(id string) (*model.CoinDetail, error) {
	if m.Detail != nil {
		return m.Detail, nil
	}
	return &model.CoinDetail{ID: id, Name: id, Symbol: id, CurrentPrice: 1}, nil
}

func (m *MockFetcher) FetchMarketChart(id string, _ int) ([]model.PricePoint, error) {
	if err := m.ChartErr[id]; err != nil {
		return nil, err
	}
	return m.Charts[id], nil
}

func (m *MockFetcher) FetchTrending() ([]model.TrendingCoin, error) {
	if m.TrendingErr != nil {
		return nil, m.TrendingErr
	}
	return m.TrendingList, nil
}

// Collector orchestrates data fetching and series shaping.
type Collector struct {
	Fetcher Fetcher
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher) *Collector {
	return &Collector{Fetcher: fetcher}
}

// CollectHistory fetches the raw market chart for a coin and reduces it to
// one point per calendar date.
func (c *Collector) CollectHistory(coinID string, days int) (*model.DailySeries, error) {
	samples, err := c.Fetcher.FetchMarketChart(coinID, days)
	if err != nil {
		return nil, fmt.Errorf("fetch market chart: %w", err)
	}
	return &model.DailySeries{
		CoinID:    coinID,
		Points:    DedupDaily(samples),
		FetchedAt: time.Now(),
	}, nil
}

// DedupDaily keeps the last-seen sample for each UTC calendar date and
// returns the survivors sorted ascending by date. The source returns a
// duplicate sample for the most recent day; last write wins per date
// regardless of input order.
func DedupDaily(samples []model.PricePoint) []model.PricePoint {
	perDate := make(map[string]model.PricePoint, len(samples))
	for _, s := range samples {
		perDate[s.Date()] = s
	}
	dates := make([]string, 0, len(perDate))
	for d := range perDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	points := make([]model.PricePoint, 0, len(dates))
	for _, d := range dates {
		points = append(points, perDate[d])
	}
	return points
}
