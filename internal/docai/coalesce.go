package docai

import (
	"time"

	"github.com/ledgerline/ledgerline/internal/table"
)

// Structured field names carried on transaction line items. Withdrawal and
// deposit variants arrive as separate column pairs; exactly one side of each
// pair is populated per row.
const (
	keyWithdrawal     = "transaction_withdrawal"
	keyWithdrawalDesc = "transaction_withdrawal_description"
	keyWithdrawalDate = "transaction_withdrawal_date"
	keyDeposit        = "transaction_deposit"
	keyDepositDesc    = "transaction_deposit_description"
	keyDepositDate    = "transaction_deposit_date"
)

// OutputColumns is the five-column contract the categorization collaborator
// reads, in exactly this order.
var OutputColumns = []string{"bank_name", "cardholder", "transaction_date", "description", "amount"}

// zero-amount placeholders some processors emit for empty cells.
func isZeroAmount(s string) bool {
	return s == "" || s == "$0.00" || s == "+$0.00"
}

func coalesce(rec Record, withdrawal, deposit string) string {
	if v := rec[withdrawal]; v != "" {
		return v
	}
	return rec[deposit]
}

// Coalesce projects a parsed statement onto the five-column schema, picking
// whichever of each withdrawal/deposit pair is populated, dropping
// zero-amount rows, and normalizing dates to ISO. This path drops rows whose
// date cannot be parsed: the structured processor's dates are reliable
// enough that an unparseable one signals a non-transaction artifact.
func Coalesce(st Statement, now time.Time) table.Table {
	out := table.Table{Columns: append([]string(nil), OutputColumns...)}
	for _, rec := range st.Records {
		amount := coalesce(rec, keyWithdrawal, keyDeposit)
		if isZeroAmount(amount) {
			continue
		}
		date, ok := table.NormalizeDate(coalesce(rec, keyWithdrawalDate, keyDepositDate), now)
		if !ok {
			continue
		}
		out.Rows = append(out.Rows, []string{
			st.BankName,
			rec["cardholder"],
			date,
			coalesce(rec, keyWithdrawalDesc, keyDepositDesc),
			amount,
		})
	}
	return out
}
