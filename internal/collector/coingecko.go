package collector

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"CoinRadar/internal/model"
)

// CoinGeckoFetcher implements Fetcher using the CoinGecko public REST API.
type CoinGeckoFetcher struct {
	BaseURL string
	Client  *http.Client
}

// NewCoinGeckoFetcher creates a new fetcher with optional proxy support.
func NewCoinGeckoFetcher(baseURL, proxyURL string) *CoinGeckoFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &CoinGeckoFetcher{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout:   10 * time.Second,
			Transport: transport,
		},
	}
}

func (f *CoinGeckoFetcher) Name() string { return "coingecko" }

func (f *CoinGeckoFetcher) get(path string, params url.Values, out interface{}) error {
	endpoint := f.BaseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}
	req, err := http.NewRequest("GET", endpoint, nil)
	if err != nil {
		return err
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return fmt.Errorf("coingecko fetch: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("coingecko: status %d, body: %s", resp.StatusCode, string(body))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("coingecko decode: %w", err)
	}
	return nil
}

// FetchCoinDetail fetches name, symbol and current USD price for a coin.
func (f *CoinGeckoFetcher) FetchCoinDetail(id string) (*model.CoinDetail, error) {
	params := url.Values{}
	params.Set("localization", "false")
	params.Set("tickers", "false")
	params.Set("market_data", "true")
	params.Set("community_data", "true")
	params.Set("developer_data", "true")
	params.Set("sparkline", "false")

	var detail struct {
		ID         string `json:"id"`
		Name       string `json:"name"`
		Symbol     string `json:"symbol"`
		MarketData struct {
			CurrentPrice map[string]float64 `json:"current_price"`
		} `json:"market_data"`
	}
	if err := f.get("/coins/"+url.PathEscape(id), params, &detail); err != nil {
		return nil, err
	}
	return &model.CoinDetail{
		ID:           detail.ID,
		Name:         detail.Name,
		Symbol:       detail.Symbol,
		CurrentPrice: detail.MarketData.CurrentPrice["usd"],
	}, nil
}

// FetchMarketChart fetches daily [timestamp, price] samples for the given
// number of days. Samples are returned as-is; the source may include more
// than one sample per calendar date.
func (f *CoinGeckoFetcher) FetchMarketChart(id string, days int) ([]model.PricePoint, error) {
	params := url.Values{}
	params.Set("vs_currency", "usd")
	params.Set("days", strconv.Itoa(days))
	params.Set("interval", "daily")

	var chart struct {
		Prices [][]float64 `json:"prices"`
	}
	if err := f.get("/coins/"+url.PathEscape(id)+"/market_chart", params, &chart); err != nil {
		return nil, err
	}
	points := make([]model.PricePoint, 0, len(chart.Prices))
	for _, pair := range chart.Prices {
		if len(pair) < 2 {
			continue
		}
		points = append(points, model.PricePoint{
			Timestamp: int64(pair[0]),
			Price:     pair[1],
		})
	}
	return points, nil
}

// FetchTrending fetches the current trending-coins list in source order.
func (f *CoinGeckoFetcher) FetchTrending() ([]model.TrendingCoin, error) {
	var trending struct {
		Coins []struct {
			Item struct {
				ID     string `json:"id"`
				Name   string `json:"name"`
				Symbol string `json:"symbol"`
			} `json:"item"`
		} `json:"coins"`
	}
	if err := f.get("/search/trending", nil, &trending); err != nil {
		return nil, err
	}
	coins := make([]model.TrendingCoin, 0, len(trending.Coins))
	for _, c := range trending.Coins {
		coins = append(coins, model.TrendingCoin{
			ID:     c.Item.ID,
			Name:   c.Item.Name,
			Symbol: c.Item.Symbol,
		})
	}
	return coins, nil
}
