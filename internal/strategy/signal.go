package strategy

import "CoinRadar/internal/model"

// Classify maps an RSI value to a trade signal. The boundaries are strict:
// exactly 30 or 70 stays neutral, and an undefined RSI is always neutral.
func Classify(rsi model.RSI) model.Signal {
	switch {
	case !rsi.Valid:
		return model.SignalNeutral
	case rsi.Value < 30:
		return model.SignalBuy
	case rsi.Value > 70:
		return model.SignalSell
	default:
		return model.SignalNeutral
	}
}
