package docai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func lineItem(mention string, props map[string]string) Entity {
	e := Entity{Type: "table_item", MentionText: mention}
	for k, v := range props {
		e.Properties = append(e.Properties, Entity{Type: k, MentionText: v})
	}
	return e
}

func TestParseStatementBankName(t *testing.T) {
	st := ParseStatement([]Entity{{Type: "bank_name", MentionText: " First National "}}, nil)
	assert.Equal(t, "First National", st.BankName)
	assert.Empty(t, st.Records)
}

func TestParseStatementBankNameMissing(t *testing.T) {
	st := ParseStatement(nil, nil)
	assert.Equal(t, "Unknown", st.BankName)
}

func TestParseStatementStickyCardholder(t *testing.T) {
	entities := []Entity{
		lineItem("OPENING BALANCE", map[string]string{
			"transaction_deposit": "$100.00",
		}),
		lineItem("CARD 1234 ALICE SMITH PURCHASE", map[string]string{
			"transaction_withdrawal": "$20.00",
		}),
		lineItem("COFFEE SHOP", map[string]string{
			"transaction_withdrawal": "$4.50",
		}),
		lineItem("CARD 5678 BOB JONES PURCHASE", map[string]string{
			"transaction_withdrawal": "$12.00",
		}),
	}
	st := ParseStatement(entities, []string{"ALICE SMITH", "BOB JONES"})

	assert.Len(t, st.Records, 4)
	assert.Equal(t, "Unknown", st.Records[0]["cardholder"])
	assert.Equal(t, "ALICE SMITH", st.Records[1]["cardholder"])
	// No name in the text keeps the previous assignment.
	assert.Equal(t, "ALICE SMITH", st.Records[2]["cardholder"])
	assert.Equal(t, "BOB JONES", st.Records[3]["cardholder"])
}

func TestParseStatementStripsPropertyPrefix(t *testing.T) {
	entities := []Entity{
		lineItem("GROCERY", map[string]string{
			"table_item/transaction_withdrawal":      "$9.99",
			"table_item/transaction_withdrawal_date": "01/02/2024",
		}),
	}
	st := ParseStatement(entities, nil)

	assert.Len(t, st.Records, 1)
	assert.Equal(t, "$9.99", st.Records[0]["transaction_withdrawal"])
	assert.Equal(t, "01/02/2024", st.Records[0]["transaction_withdrawal_date"])
}

func TestParseStatementIgnoresUnknownEntityTypes(t *testing.T) {
	entities := []Entity{
		{Type: "account_number", MentionText: "000111222"},
		lineItem("FEE", map[string]string{"transaction_withdrawal": "$1.00"}),
	}
	st := ParseStatement(entities, nil)
	assert.Len(t, st.Records, 1)
}
