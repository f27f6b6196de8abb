package model

import "fmt"

// RSI is a relative-strength value that may be undefined when there is
// not enough price history to compute it.
type RSI struct {
	Value float64
	Valid bool
}

// DefinedRSI wraps a computed value.
func DefinedRSI(v float64) RSI { return RSI{Value: v, Valid: true} }

// UndefinedRSI marks insufficient history.
func UndefinedRSI() RSI { return RSI{} }

// String renders the value with two decimals, or "n/a" when undefined.
func (r RSI) String() string {
	if !r.Valid {
		return "n/a"
	}
	return fmt.Sprintf("%.2f", r.Value)
}
