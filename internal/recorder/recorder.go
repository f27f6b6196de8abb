package recorder

import (
	"log"

	"CoinRadar/internal/model"
)

// Recorder persists a run's full result set, replacing prior contents.
// Each Replace call is idempotent: re-running with a different result set
// leaves only the latest rows.
type Recorder interface {
	ReplacePrices(points []model.PricePoint) error
	ReplaceTrending(rows []model.CoinSummary) error
	Close() error
}

// OpenAll builds the configured sinks. When neither path is set a noop
// recorder is returned so callers always have at least one sink to write to.
func OpenAll(csvPath, sqlitePath string) ([]Recorder, error) {
	var recs []Recorder
	if csvPath != "" {
		recs = append(recs, NewCSVRecorder(csvPath))
	}
	if sqlitePath != "" {
		sr, err := NewSQLiteRecorder(sqlitePath)
		if err != nil {
			CloseAll(recs)
			return nil, err
		}
		recs = append(recs, sr)
	}
	if len(recs) == 0 {
		recs = append(recs, NewNoopRecorder())
	}
	return recs, nil
}

// CloseAll closes every sink, logging rather than returning close errors.
func CloseAll(recs []Recorder) {
	for _, r := range recs {
		if err := r.Close(); err != nil {
			log.Printf("[WARN] close recorder: %v", err)
		}
	}
}
