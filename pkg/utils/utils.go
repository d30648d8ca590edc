package utils

import (
	"fmt"
	"log"
	"strings"

	"github.com/shopspring/decimal"
)

// GoSafe runs the given function in a new goroutine and recovers from any panic.
func GoSafe(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("[Panic Recovered] %v", r)
			}
		}()
		fn()
	}()
}

func FormatPercentage(value float64) string {
	return fmt.Sprintf("%+.1f%%", value)
}

// FormatMoney renders v with two decimals and comma thousand separators,
// e.g. -12345.678 as "-12,345.68".
func FormatMoney(v float64) string {
	fixed := decimal.NewFromFloat(v).Round(2)
	sign := ""
	if fixed.IsNegative() {
		sign = "-"
		fixed = fixed.Abs()
	}

	s := fixed.StringFixed(2)
	intPart, frac := s[:len(s)-3], s[len(s)-3:]

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return sign + b.String() + frac
}

// FormatSignedMoney is FormatMoney with an explicit plus sign for gains.
func FormatSignedMoney(v float64) string {
	if decimal.NewFromFloat(v).Round(2).IsPositive() {
		return "+" + FormatMoney(v)
	}
	return FormatMoney(v)
}
