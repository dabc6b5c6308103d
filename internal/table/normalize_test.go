package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalColumn(t *testing.T) {
	tests := []struct {
		label string
		want  string
		match bool
	}{
		{"Date", "date", true},
		{"Post Date", "date", true},
		{"  Transaction   Date ", "date", true},
		// "transaction date" must win for date before the description
		// group can claim "transaction".
		{"Transaction", "description", true},
		{"Description", "description", true},
		{"Merchant Details", "description", true},
		{"Amount", "amount", true},
		{"AMT ($)", "amount", true},
		{"Debit", "debit", true},
		{"Withdrawal", "debit", true},
		{"Credit", "credit", true},
		{"Deposit", "credit", true},
		{"Cardholder Name", "cardholder", true},
		{"Card Holder", "cardholder", true},
		{"Card Ending", "card_last4", true},
		{"Last 4", "card_last4", true},
		{"Running Balance", "running balance", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, ok := CanonicalColumn(tt.label)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.match, ok)
		})
	}
}

func TestNormalizeColumnsIdempotent(t *testing.T) {
	raw := []string{"Post Date", "Merchant", "Amount ($)", "Card Holder", "Notes"}
	once := NormalizeColumns(raw)
	twice := NormalizeColumns(once)
	assert.Equal(t, []string{"date", "description", "amount", "cardholder", "notes"}, once)
	assert.Equal(t, once, twice)
}

func TestNormalizeColumnsFirstMatchWins(t *testing.T) {
	// "transaction amount" contains keywords from both the description and
	// amount groups; the description group is checked first.
	got := NormalizeColumns([]string{"transaction amount"})
	assert.Equal(t, []string{"description"}, got)
}
