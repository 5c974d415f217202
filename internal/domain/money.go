package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Amounts are held in minor units (cents). Decimal strings only appear at
// the edges: admin input, display prices, and provider payloads.

func ParseAmount(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty amount")
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse amount %q: %w", s, err)
	}

	// math.Round is round-half-away-from-zero, which is what currency
	// rounding needs here.
	return int64(math.Round(v * 100)), nil
}

func FormatAmount(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
