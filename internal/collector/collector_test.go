package collector

import (
	"errors"
	"testing"
	"time"

	"CoinRadar/internal/model"
)

func msAt(day int, hour int) int64 {
	return time.Date(2024, 3, day, hour, 0, 0, 0, time.UTC).UnixMilli()
}

func TestDedupDaily_LastSampleWins(t *testing.T) {
	samples := []model.PricePoint{
		{Timestamp: msAt(2, 0), Price: 10},
		{Timestamp: msAt(2, 12), Price: 11}, // same date, later in input
		{Timestamp: msAt(3, 0), Price: 12},
	}
	got := DedupDaily(samples)
	if len(got) != 2 {
		t.Fatalf("expected 2 points, got %d", len(got))
	}
	if got[0].Price != 11 {
		t.Errorf("expected last-seen sample for 2024-03-02, got price %.1f", got[0].Price)
	}
}

func TestDedupDaily_LastInInputOrderNotMax(t *testing.T) {
	// The later input sample wins even when its price is lower and its
	// intra-day timestamp is earlier.
	samples := []model.PricePoint{
		{Timestamp: msAt(2, 18), Price: 99},
		{Timestamp: msAt(2, 6), Price: 1},
	}
	got := DedupDaily(samples)
	if len(got) != 1 {
		t.Fatalf("expected 1 point, got %d", len(got))
	}
	if got[0].Price != 1 {
		t.Errorf("expected price of last input sample (1), got %.1f", got[0].Price)
	}
}

func TestDedupDaily_OutOfOrderInputSorted(t *testing.T) {
	samples := []model.PricePoint{
		{Timestamp: msAt(5, 0), Price: 5},
		{Timestamp: msAt(1, 0), Price: 1},
		{Timestamp: msAt(3, 0), Price: 3},
	}
	got := DedupDaily(samples)
	if len(got) != 3 {
		t.Fatalf("expected 3 points, got %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].Date() >= got[i].Date() {
			t.Errorf("dates not strictly ascending: %s then %s", got[i-1].Date(), got[i].Date())
		}
	}
	if got[0].Price != 1 || got[1].Price != 3 || got[2].Price != 5 {
		t.Errorf("unexpected order: %v", got)
	}
}

func TestDedupDaily_Empty(t *testing.T) {
	if got := DedupDaily(nil); len(got) != 0 {
		t.Errorf("expected empty result, got %v", got)
	}
}

func TestCollectHistory_PropagatesFetchError(t *testing.T) {
	mock := &MockFetcher{ChartErr: map[string]error{"blockasset": errors.New("boom")}}
	col := NewCollector(mock)
	if _, err := col.CollectHistory("blockasset", 365); err == nil {
		t.Fatal("expected error to propagate")
	}
}

func TestCollectHistory_Dedups(t *testing.T) {
	mock := &MockFetcher{Charts: map[string][]model.PricePoint{
		"blockasset": {
			{Timestamp: msAt(1, 0), Price: 1},
			{Timestamp: msAt(2, 0), Price: 2},
			{Timestamp: msAt(2, 1), Price: 2.5},
		},
	}}
	col := NewCollector(mock)
	series, err := col.CollectHistory("blockasset", 365)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(series.Points) != 2 {
		t.Fatalf("expected 2 points after dedup, got %d", len(series.Points))
	}
	if series.Points[1].Price != 2.5 {
		t.Errorf("expected last sample for duplicated date, got %.1f", series.Points[1].Price)
	}
	if series.CoinID != "blockasset" {
		t.Errorf("unexpected coin id %q", series.CoinID)
	}
}
