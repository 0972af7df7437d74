package validate

import (
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/taskearn/internal/domain"
)

func parseMoney(s string) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(s)
	if err != nil || !domain.FitsMoneyScale(d) {
		return decimal.Zero, false
	}
	return d, true
}

func isPositiveDecimal(s string) bool {
	d, ok := parseMoney(s)
	return ok && d.IsPositive()
}

func isNonNegativeDecimal(s string) bool {
	d, ok := parseMoney(s)
	return ok && !d.IsNegative()
}
