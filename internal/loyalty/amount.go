package loyalty

import "github.com/shopspring/decimal"

// MaxAmount is the largest value the NUMERIC(10,2) amount columns hold.
var MaxAmount = decimal.RequireFromString("99999999.99")

// StoresExactly reports whether d fits an amount column without rounding or
// overflow. Sign is not checked.
func StoresExactly(d decimal.Decimal) bool {
	return d.Equal(d.Round(2)) && d.Abs().LessThanOrEqual(MaxAmount)
}
