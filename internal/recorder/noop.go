package recorder

import "CoinRadar/internal/model"

// NoopRecorder is a no-op implementation used when no sink is configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) ReplacePrices(_ []model.PricePoint) error    { return nil }
func (n *NoopRecorder) ReplaceTrending(_ []model.CoinSummary) error { return nil }
func (n *NoopRecorder) Close() error                                { return nil }
