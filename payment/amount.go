package payment

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// AmountInMinorUnits converts a decimal price into the integer amount the
// processor charges: price × 100, rounded to two decimals, then truncated.
func AmountInMinorUnits(price float64) int64 {
	return decimal.NewFromFloat(price).Mul(hundred).Round(2).IntPart()
}
