package calculator

import (
	"errors"

	"CoinRadar/internal/model"
)

// RelativeStrength computes the RSI over the leading window of the series:
// only prices[0..period] are ever inspected, so a longer series does not
// shift the window. This matches the upstream behavior and is intentional.
// Returns an undefined RSI when the series has period or fewer prices.
func RelativeStrength(prices []float64, period int) (model.RSI, error) {
	if period <= 0 {
		return model.RSI{}, errors.New("period must be positive")
	}
	if len(prices) <= period {
		return model.UndefinedRSI(), nil
	}

	var avgGain, avgLoss float64
	for i := 1; i <= period; i++ {
		delta := prices[i] - prices[i-1]
		if delta > 0 {
			avgGain += delta
		} else {
			avgLoss -= delta // make positive
		}
	}
	avgGain /= float64(period)
	avgLoss /= float64(period)

	if avgLoss == 0 {
		return model.DefinedRSI(100.0), nil
	}
	rs := avgGain / avgLoss
	return model.DefinedRSI(100.0 - 100.0/(1.0+rs)), nil
}
