package warehouse

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerline/ledgerline/internal/table"
)

func TestRowsFromLedger(t *testing.T) {
	ledger := table.Table{
		Columns: []string{"date", "description", "amount", "cardholder", "card_last4"},
		Rows: [][]string{
			{"2024-01-05", "COFFEE SHOP", "-4.5", "ALICE SMITH", "1234"},
			{"not a date", "GROCERY", "10", "", ""},
		},
	}

	rows := RowsFromLedger(ledger, "run-1")
	require.Len(t, rows, 2)

	first := rows[0]
	assert.Equal(t, "run-1", first.RunID)
	assert.NotEmpty(t, first.TransactionID)
	assert.Equal(t, "COFFEE SHOP", first.Description)
	assert.True(t, first.TransactionDate.Valid)
	assert.Equal(t, "2024-01-05", first.TransactionDate.Date.String())
	assert.Zero(t, new(big.Rat).SetFloat64(-4.5).Cmp(first.Amount))
	assert.True(t, first.Cardholder.Valid)
	assert.Equal(t, "ALICE SMITH", first.Cardholder.StringVal)
	assert.True(t, first.CardLast4.Valid)

	second := rows[1]
	assert.False(t, second.TransactionDate.Valid)
	assert.False(t, second.Cardholder.Valid)
	assert.False(t, second.CardLast4.Valid)
}

func TestRowsFromLedgerSkipsUnparsableAmounts(t *testing.T) {
	ledger := table.Table{
		Columns: []string{"description", "amount"},
		Rows: [][]string{
			{"GOOD", "1.25"},
			{"BAD", "n/a"},
		},
	}
	rows := RowsFromLedger(ledger, "run-2")
	require.Len(t, rows, 1)
	assert.Equal(t, "GOOD", rows[0].Description)
}

func TestDistinctTransactionIDs(t *testing.T) {
	ledger := table.Table{
		Columns: []string{"description", "amount"},
		Rows:    [][]string{{"A", "1"}, {"B", "2"}},
	}
	rows := RowsFromLedger(ledger, "run-3")
	require.Len(t, rows, 2)
	assert.NotEqual(t, rows[0].TransactionID, rows[1].TransactionID)
}
