package docai

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var coalesceNow = time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

func TestCoalescePicksPopulatedSide(t *testing.T) {
	st := Statement{
		BankName: "First National",
		Records: []Record{
			{
				"cardholder":                         "ALICE SMITH",
				"transaction_withdrawal":             "-$20.00",
				"transaction_withdrawal_description": "COFFEE SHOP",
				"transaction_withdrawal_date":        "01/02/2024",
			},
			{
				"cardholder":                      "ALICE SMITH",
				"transaction_deposit":             "$500.00",
				"transaction_deposit_description": "PAYROLL",
				"transaction_deposit_date":        "2024-01-15",
			},
		},
	}

	out := Coalesce(st, coalesceNow)
	require.Equal(t, OutputColumns, out.Columns)
	require.Len(t, out.Rows, 2)

	assert.Equal(t, []string{"First National", "ALICE SMITH", "2024-01-02", "COFFEE SHOP", "-$20.00"}, out.Rows[0])
	assert.Equal(t, []string{"First National", "ALICE SMITH", "2024-01-15", "PAYROLL", "$500.00"}, out.Rows[1])
}

func TestCoalesceDropsZeroAmountRows(t *testing.T) {
	st := Statement{BankName: "B", Records: []Record{
		{"cardholder": "X", "transaction_withdrawal": "$0.00", "transaction_withdrawal_date": "01/02/2024"},
		{"cardholder": "X", "transaction_deposit": "+$0.00", "transaction_deposit_date": "01/02/2024"},
		{"cardholder": "X"},
	}}
	out := Coalesce(st, coalesceNow)
	assert.Empty(t, out.Rows)
}

func TestCoalesceDropsUnparsableDates(t *testing.T) {
	st := Statement{BankName: "B", Records: []Record{
		{"cardholder": "X", "transaction_withdrawal": "$5.00", "transaction_withdrawal_date": "BALANCE FWD"},
		{"cardholder": "X", "transaction_withdrawal": "$6.00", "transaction_withdrawal_date": "02/03/2024"},
	}}
	out := Coalesce(st, coalesceNow)
	require.Len(t, out.Rows, 1)
	assert.Equal(t, "2024-02-03", out.Rows[0][2])
}

func TestCoalesceKeepsRawAmountText(t *testing.T) {
	st := Statement{BankName: "B", Records: []Record{
		{"cardholder": "X", "transaction_withdrawal": "-$1,234.56", "transaction_withdrawal_date": "2024-02-03"},
	}}
	out := Coalesce(st, coalesceNow)
	require.Len(t, out.Rows, 1)
	assert.Equal(t, "-$1,234.56", out.Rows[0][4])
}

func TestCoalesceYearlessDateGetsCurrentYear(t *testing.T) {
	st := Statement{BankName: "B", Records: []Record{
		{"cardholder": "X", "transaction_withdrawal": "$2.00", "transaction_withdrawal_date": "06/07"},
	}}
	out := Coalesce(st, coalesceNow)
	require.Len(t, out.Rows, 1)
	assert.Equal(t, "2024-06-07", out.Rows[0][2])
}
