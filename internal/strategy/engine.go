package strategy

import (
	"fmt"
	"log"

	"CoinRadar/internal/calculator"
	"CoinRadar/internal/collector"
	"CoinRadar/internal/model"
)

// Engine analyzes trending coins one at a time.
type Engine struct {
	Fetcher    collector.Fetcher
	WindowDays int
	Period     int
	TopN       int
}

// NewEngine creates a new Engine.
func NewEngine(fetcher collector.Fetcher, windowDays, period, topN int) *Engine {
	return &Engine{Fetcher: fetcher, WindowDays: windowDays, Period: period, TopN: topN}
}

// Run fetches the trending list, keeps the first TopN entries in source
// order, and computes an RSI signal for each. A failed per-coin fetch
// degrades that coin to an undefined RSI and a neutral signal instead of
// aborting the batch.
func (e *Engine) Run() ([]model.CoinSummary, error) {
	coins, err := e.Fetcher.FetchTrending()
	if err != nil {
		return nil, fmt.Errorf("fetch trending: %w", err)
	}
	coins = SelectTop(coins, e.TopN)

	summaries := make([]model.CoinSummary, 0, len(coins))
	for _, coin := range coins {
		summaries = append(summaries, e.Analyze(coin))
	}
	return summaries, nil
}

// Analyze computes the RSI signal for one coin.
func (e *Engine) Analyze(coin model.TrendingCoin) model.CoinSummary {
	var prices []float64
	samples, err := e.Fetcher.FetchMarketChart(coin.ID, e.WindowDays)
	if err != nil {
		log.Printf("[WARN] fetch prices for %s: %v, degrading to neutral", coin.ID, err)
	} else {
		prices = calculator.Closes(samples)
	}

	rsi, err := calculator.RelativeStrength(prices, e.Period)
	if err != nil {
		log.Printf("[WARN] rsi for %s: %v", coin.ID, err)
		rsi = model.UndefinedRSI()
	}

	return model.CoinSummary{
		Name:   coin.Name,
		Symbol: coin.Symbol,
		RSI:    rsi,
		Signal: Classify(rsi),
	}
}

// SelectTop returns the first n coins in source order, or all of them when
// the list is shorter.
func SelectTop(coins []model.TrendingCoin, n int) []model.TrendingCoin {
	if len(coins) > n {
		return coins[:n]
	}
	return coins
}
