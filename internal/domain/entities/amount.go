package entities

import (
	"math"
	"strconv"
	"strings"
)

// RoundAmount rounds v half away from zero to two decimal places. Rounding
// starts from the shortest decimal text of v, so 1.005 rounds to 1.01.
func RoundAmount(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) >= 1e15 {
		return math.Round(v*100) / 100
	}

	s := strconv.FormatFloat(math.Abs(v), 'f', -1, 64)
	whole, frac, _ := strings.Cut(s, ".")
	frac += "000"
	cents, err := strconv.ParseInt(whole+frac[:2], 10, 64)
	if err != nil {
		return math.Round(v*100) / 100
	}
	if frac[2] >= '5' {
		cents++
	}

	r := float64(cents) / 100
	if v < 0 {
		r = -r
	}
	if r == 0 {
		return 0
	}
	return r
}

// FormatAmount renders an amount rounded to two decimal places, without
// thousands separator. Negative zero renders as "0.00".
func FormatAmount(v float64) string {
	return strconv.FormatFloat(RoundAmount(v), 'f', 2, 64)
}

// AmountsMatch compares two amounts after rounding both to two decimal places.
func AmountsMatch(a, b float64) bool {
	return FormatAmount(a) == FormatAmount(b)
}
