package output

import (
	"strconv"

	"github.com/shopspring/decimal"

	money "github.com/rpgo/buyout-calculator/pkg/decimal"
)

var decimalHundred = decimal.NewFromInt(100)

// FormatCurrency formats a decimal as USD with thousands separators and 2 decimals.
func FormatCurrency(amount decimal.Decimal) string {
	return money.NewMoneyFromDecimal(amount).Format()
}

// FormatPercentage formats a decimal as a percentage with 2 decimals.
// The value is expected in percentage units, not as a 0-1 fraction.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

// FormatProbability formats a 0-1 fraction as a percentage.
func FormatProbability(p decimal.Decimal) string { return FormatPercentage(p.Mul(decimalHundred)) }

func intToString(v int) string { return strconv.Itoa(v) }
