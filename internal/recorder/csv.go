package recorder

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"CoinRadar/internal/model"
)

// CSVRecorder writes result sets to a CSV file, truncating prior contents
// on every write.
type CSVRecorder struct {
	Path string
}

// NewCSVRecorder creates a CSV recorder for the given path.
func NewCSVRecorder(path string) *CSVRecorder {
	return &CSVRecorder{Path: path}
}

// ReplacePrices writes a date,price_usd table with one row per point.
func (r *CSVRecorder) ReplacePrices(points []model.PricePoint) error {
	records := make([][]string, 0, len(points)+1)
	records = append(records, []string{"date", "price_usd"})
	for _, p := range points {
		records = append(records, []string{
			p.Date(),
			strconv.FormatFloat(p.Price, 'f', -1, 64),
		})
	}
	return r.write(records)
}

// ReplaceTrending writes a name,symbol,rsi,signal table. An undefined RSI
// renders as an empty field.
func (r *CSVRecorder) ReplaceTrending(rows []model.CoinSummary) error {
	records := make([][]string, 0, len(rows)+1)
	records = append(records, []string{"name", "symbol", "rsi", "signal"})
	for _, row := range rows {
		rsi := ""
		if row.RSI.Valid {
			rsi = fmt.Sprintf("%.2f", row.RSI.Value)
		}
		records = append(records, []string{row.Name, row.Symbol, rsi, string(row.Signal)})
	}
	return r.write(records)
}

func (r *CSVRecorder) write(records [][]string) error {
	f, err := os.Create(r.Path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(records); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return f.Close()
}

func (r *CSVRecorder) Close() error { return nil }
