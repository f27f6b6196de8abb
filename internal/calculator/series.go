package calculator

import "CoinRadar/internal/model"

// Closes extracts the price column from a sample series.
func Closes(points []model.PricePoint) []float64 {
	closes := make([]float64, len(points))
	for i, p := range points {
		closes[i] = p.Price
	}
	return closes
}
