package table

import (
	"regexp"
	"strings"
)

// Canonical column names every raw header is mapped onto.
const (
	ColDate        = "date"
	ColDescription = "description"
	ColAmount      = "amount"
	ColDebit       = "debit"
	ColCredit      = "credit"
	ColCardholder  = "cardholder"
	ColCardLast4   = "card_last4"
)

// columnRules maps header keywords onto canonical columns. Rules are checked
// top to bottom and the first containing keyword wins, so "transaction date"
// resolves to date before description's "transaction" can claim it. Order is
// load-bearing; do not sort.
var columnRules = []struct {
	canonical string
	keywords  []string
}{
	{ColDate, []string{"post date", "transaction date", "date"}},
	{ColDescription, []string{"description", "desc", "merchant", "details", "transaction"}},
	{ColAmount, []string{"amount", "amt", "value"}},
	{ColDebit, []string{"debit", "withdrawal", "charge", "dr"}},
	{ColCredit, []string{"credit", "payment", "deposit", "cr"}},
	{ColCardholder, []string{"cardholder", "card holder", "member", "employee", "user"}},
	{ColCardLast4, []string{"last4", "last 4", "card no", "card #", "card ending"}},
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// collapseSpace lower-cases a header and squeezes internal whitespace.
func collapseSpace(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

// CanonicalColumn maps one raw header label onto a canonical column name.
// The second return is false when no keyword group matches; the caller keeps
// the (lower-cased, whitespace-collapsed) label untouched in that case so no
// source column is silently lost.
func CanonicalColumn(label string) (string, bool) {
	l := strings.ToLower(collapseSpace(label))
	for _, rule := range columnRules {
		for _, kw := range rule.keywords {
			if strings.Contains(l, kw) {
				return rule.canonical, true
			}
		}
	}
	return l, false
}

// NormalizeColumns maps every header onto the canonical schema where
// possible. Unmatched labels pass through lower-cased. Idempotent: canonical
// names contain their own keyword and re-map to themselves.
func NormalizeColumns(cols []string) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		name, _ := CanonicalColumn(c)
		out[i] = name
	}
	return out
}
