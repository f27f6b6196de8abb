package collector

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCoinGeckoFetcher_FetchMarketChart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/coins/blockasset/market_chart" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("vs_currency") != "usd" || q.Get("days") != "15" || q.Get("interval") != "daily" {
			t.Errorf("unexpected query %s", r.URL.RawQuery)
		}
		fmt.Fprint(w, `{"prices":[[1700000000000,1.5],[1700086400000,1.75]]}`)
	}))
	defer srv.Close()

	f := NewCoinGeckoFetcher(srv.URL, "")
	points, err := f.FetchMarketChart("blockasset", 15)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(points))
	}
	if points[0].Timestamp != 1700000000000 || points[0].Price != 1.5 {
		t.Errorf("unexpected first point: %+v", points[0])
	}
}

func TestCoinGeckoFetcher_FetchCoinDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/coins/blockasset" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("market_data") != "true" {
			t.Errorf("expected market_data=true, got %s", r.URL.RawQuery)
		}
		fmt.Fprint(w, `{"id":"blockasset","name":"Blockasset","symbol":"block",
			"market_data":{"current_price":{"usd":0.042,"eur":0.039}}}`)
	}))
	defer srv.Close()

	f := NewCoinGeckoFetcher(srv.URL, "")
	detail, err := f.FetchCoinDetail("blockasset")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if detail.Name != "Blockasset" || detail.Symbol != "block" || detail.CurrentPrice != 0.042 {
		t.Errorf("unexpected detail: %+v", detail)
	}
}

func TestCoinGeckoFetcher_FetchTrending(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search/trending" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		fmt.Fprint(w, `{"coins":[
			{"item":{"id":"bitcoin","name":"Bitcoin","symbol":"BTC"}},
			{"item":{"id":"pepe","name":"Pepe","symbol":"PEPE"}}
		]}`)
	}))
	defer srv.Close()

	f := NewCoinGeckoFetcher(srv.URL, "")
	coins, err := f.FetchTrending()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(coins) != 2 {
		t.Fatalf("expected 2 coins, got %d", len(coins))
	}
	if coins[0].ID != "bitcoin" || coins[1].Symbol != "PEPE" {
		t.Errorf("unexpected coins: %+v", coins)
	}
}

func TestCoinGeckoFetcher_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	f := NewCoinGeckoFetcher(srv.URL, "")
	if _, err := f.FetchMarketChart("blockasset", 15); err == nil {
		t.Error("expected error for non-2xx market chart")
	}
	if _, err := f.FetchTrending(); err == nil {
		t.Error("expected error for non-2xx trending")
	}
	if _, err := f.FetchCoinDetail("blockasset"); err == nil {
		t.Error("expected error for non-2xx detail")
	}
}
