package table

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var currencyReplacer = strings.NewReplacer(
	",", "",
	"$", "",
	"£", "",
	"€", "",
	" ", " ", // non-breaking space
	"−", "-", // unicode minus
)

// ParseAmount parses one raw money cell into a float64. It tolerates the
// formats statements actually use: "(1,234.56)" for negatives, currency
// symbols, thousands separators, non-breaking spaces and the unicode minus.
// The second return is false for empty or non-numeric cells.
func ParseAmount(cell string) (float64, bool) {
	s := strings.TrimSpace(cell)

	// "(X)" means a negative amount on card statements.
	if len(s) >= 2 && strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		s = "-" + s[1:len(s)-1]
	}

	s = currencyReplacer.Replace(s)
	s = collapseSpace(s)
	// Digit grouping with plain spaces, e.g. "1 234.56".
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return 0, false
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, false
	}
	f, _ := d.Float64()
	return f, true
}

// FormatAmount renders a cleaned amount back into its cell. The canonical
// strconv form round-trips through ParseAmount, so the final sanitizer's
// numeric coercion never drops a row the cleaner produced.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
