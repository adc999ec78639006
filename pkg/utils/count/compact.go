// ABOUTME: Compact number formatting for scores and subscriber counts
// ABOUTME: 1234 becomes "1.2k", 2500000 becomes "2.5m"

package count

import (
	"math"

	"github.com/dustin/go-humanize"
)

// suffixes maps SI prefixes onto the lowercase listing suffixes
var suffixes = map[string]string{
	"":  "",
	"k": "k",
	"M": "m",
	"G": "b",
}

// Compact formats n with a k, m or b suffix once it reaches a thousand.
// The mantissa is truncated to one decimal place, never rounded up.
func Compact(n int64) string {
	sign := ""
	f := float64(n)
	if n < 0 {
		sign = "-"
		f = -f
	}

	value, prefix := humanize.ComputeSI(f)
	suffix, ok := suffixes[prefix]
	if !ok {
		return sign + humanize.Comma(int64(f))
	}

	// the epsilon keeps 2.3 from landing on 2.2999
	truncated := math.Trunc(value*10+1e-9) / 10
	return sign + humanize.FtoaWithDigits(truncated, 1) + suffix
}
