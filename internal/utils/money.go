package utils

import (
	"strconv"
	"strings"
)

// FormatDollars renders a whole-dollar amount with thousand separators, e.g. $1,200.
func FormatDollars(amount int64) string {
	if amount < 0 {
		return "-$" + formatThousand(absUint64(amount))
	}
	return "$" + formatThousand(uint64(amount))
}

// FormatThousand renders n with comma thousand separators.
func FormatThousand(n int64) string {
	if n < 0 {
		return "-" + formatThousand(absUint64(n))
	}
	return formatThousand(uint64(n))
}

// absUint64 is |n| for the whole int64 range, MinInt64 included.
func absUint64(n int64) uint64 {
	if n < 0 {
		return uint64(^n) + 1
	}
	return uint64(n)
}

func formatThousand(n uint64) string {
	str := strconv.FormatUint(n, 10)
	var out strings.Builder
	for i, c := range str {
		if i != 0 && (len(str)-i)%3 == 0 {
			out.WriteByte(',')
		}
		out.WriteRune(c)
	}
	return out.String()
}
