package response

import "math"

// roundMoney applies the two-decimal display rounding. Internal computation
// keeps full precision; this is the only place amounts are rounded.
func roundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}
