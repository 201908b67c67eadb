// Package format converts catalog values into display strings.
package format

import (
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// USDToCLP is the fixed display conversion rate. It is not a live exchange rate.
const USDToCLP = 950

// es-CL grouping: dot for thousands, no decimals
const clpPattern = "#.###,"

// ToDisplayCurrency converts a USD price to whole display-currency units
func ToDisplayCurrency(usd float64) int64 {
	return int64(math.Round(usd * USDToCLP))
}

// ApplyDiscount converts a USD price and takes percent off, rounding to whole units
func ApplyDiscount(usd, percent float64) int64 {
	return int64(math.Round(float64(ToDisplayCurrency(usd)) * (1 - percent/100)))
}

// Amount formats an amount already in display currency, e.g. 95000 -> "$95.000"
func Amount(clp int64) string {
	if clp < 0 {
		return "-$" + humanize.FormatInteger(clpPattern, int(-clp))
	}
	return "$" + humanize.FormatInteger(clpPattern, int(clp))
}

// Price formats a USD price in display currency
func Price(usd float64) string {
	return Amount(ToDisplayCurrency(usd))
}

// DiscountPrice formats a USD price after a percentage discount
func DiscountPrice(usd, percent float64) string {
	return Amount(ApplyDiscount(usd, percent))
}

// Rating renders a rate with one decimal and a star, e.g. "4.5 ★"
func Rating(rate float64) string {
	return strconv.FormatFloat(rate, 'f', 1, 64) + " ★"
}

// Percent renders a 0-100 value rounded to a whole percent, e.g. "25 %"
func Percent(value float64) string {
	return strconv.FormatFloat(math.Round(value), 'f', 0, 64) + " %"
}

// Compact renders large counts in short notation, e.g. 1500000 -> "1,5 M"
func Compact(n int64) string {
	if n > -1000 && n < 1000 {
		return strconv.FormatInt(n, 10)
	}
	s := strings.TrimSpace(humanize.SIWithDigits(float64(n), 1, ""))
	return strings.Replace(s, ".", ",", 1)
}

// Star kinds returned by Stars
const (
	StarFull  = "full"
	StarHalf  = "half"
	StarEmpty = "empty"
)

// Stars breaks a 0-5 rate into five star kinds. A fractional part of .5 or more
// yields one half star.
func Stars(rate float64) []string {
	full := int(math.Floor(rate))
	half := rate-math.Floor(rate) >= 0.5
	stars := make([]string, 5)
	for i := range stars {
		switch {
		case i < full:
			stars[i] = StarFull
		case i == full && half:
			stars[i] = StarHalf
		default:
			stars[i] = StarEmpty
		}
	}
	return stars
}
