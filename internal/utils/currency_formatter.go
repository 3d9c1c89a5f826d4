package utils

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/hance08/pesa/internal/constants"
	"github.com/shopspring/decimal"
)

// maxAmountPlaces is the precision of shilling amounts (cents).
const maxAmountPlaces = 2

// ParseAmount converts a notification amount ("1,200.00", "300.", "5 000") to a decimal.
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	cleaned := strings.NewReplacer(",", "", " ", "").Replace(strings.TrimSpace(amountStr))
	cleaned = strings.TrimRight(cleaned, ".")

	if cleaned == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}

	if i := strings.IndexByte(cleaned, '.'); i >= 0 && len(cleaned)-i-1 > maxAmountPlaces {
		return decimal.Zero, fmt.Errorf("invalid amount %q: more than %d decimal places", amountStr, maxAmountPlaces)
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q", amountStr)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("negative amount %q", amountStr)
	}
	return d, nil
}

// FormatAmount renders a value with thousands separators and two decimals, e.g. "Ksh1,200.00".
func FormatAmount(d decimal.Decimal) string {
	r := d.Round(2)
	sign := ""
	if r.IsNegative() {
		sign = "-"
		r = r.Abs()
	}
	whole := r.Truncate(0)
	frac := r.Sub(whole).StringFixed(2)[1:] // ".00"
	return constants.CurrencySymbol + sign + humanize.Comma(whole.IntPart()) + frac
}

// FormatOptional renders nil as "-".
func FormatOptional(d *decimal.Decimal) string {
	if d == nil {
		return "-"
	}
	return FormatAmount(*d)
}
