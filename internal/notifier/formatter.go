package notifier

import (
	"fmt"
	"strings"

	"CoinRadar/internal/model"
)

// FormatDetailLine renders the coin-detail summary line.
func FormatDetailLine(detail *model.CoinDetail) string {
	return fmt.Sprintf("%s (%s) current price: %v USD", detail.Name, detail.Symbol, detail.CurrentPrice)
}

// FormatHistorySummary renders the fetched-series summary, including the
// covered date range when the series is non-empty.
func FormatHistorySummary(series *model.DailySeries) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Fetched %d daily prices", len(series.Points))
	if len(series.Points) > 0 {
		first := series.Points[0]
		last := series.Points[len(series.Points)-1]
		fmt.Fprintf(&b, "\nRange: %s to %s", first.Date(), last.Date())
	}
	return b.String()
}

// FormatCoinLine renders one trending result, e.g.
// "Bitcoin (BTC) - RSI 61.90 -> neutral". An undefined RSI shows as "n/a".
func FormatCoinLine(s model.CoinSummary) string {
	return fmt.Sprintf("%s (%s) - RSI %s -> %s", s.Name, s.Symbol, s.RSI, s.Signal)
}
