// Package docai implements the structured-document ingestion mode: instead
// of geometric table detection, a document-understanding model returns typed
// entities for each statement, and this package turns the transaction line
// items among them into the five-column ledger contract.
package docai

import (
	"context"
	"strings"
)

// Entity is one typed span returned by the document-understanding model.
// Line items carry their cell values as nested properties whose types are
// the structured field names ("transaction_withdrawal_date", ...), not
// free-text headers.
type Entity struct {
	Type        string   `json:"type"`
	MentionText string   `json:"mention_text"`
	Properties  []Entity `json:"properties,omitempty"`
}

// EntityExtractor abstracts the remote document-understanding call.
type EntityExtractor interface {
	ExtractEntities(ctx context.Context, pdfBytes []byte) ([]Entity, error)
}

// Entity types this pipeline consumes.
const (
	entityBankName  = "bank_name"
	entityTableItem = "table_item"

	// Some processors prefix nested property types with the parent type.
	tableItemPrefix = "table_item/"
)

// Record is one line item's raw key/value columns plus the cardholder label
// assigned while scanning.
type Record map[string]string

// Statement is the structured parse of one document.
type Statement struct {
	BankName string
	Records  []Record
}

// ParseStatement groups entities by type, reads the bank name and walks the
// transaction line items in order. Cardholder assignment is sticky: the last
// configured name seen in a line item's full text labels that item and every
// following one until a different name matches. The accumulator is local to
// this document.
func ParseStatement(entities []Entity, cardholders []string) Statement {
	byType := make(map[string][]Entity)
	for _, e := range entities {
		byType[e.Type] = append(byType[e.Type], e)
	}

	st := Statement{BankName: "Unknown"}
	if banks := byType[entityBankName]; len(banks) > 0 {
		if name := strings.TrimSpace(banks[0].MentionText); name != "" {
			st.BankName = name
		}
	}

	current := "Unknown"
	for _, item := range byType[entityTableItem] {
		for _, name := range cardholders {
			if name != "" && strings.Contains(item.MentionText, name) {
				current = name
				break
			}
		}
		rec := Record{"cardholder": current}
		for _, prop := range item.Properties {
			key := strings.TrimPrefix(prop.Type, tableItemPrefix)
			rec[key] = strings.TrimSpace(prop.MentionText)
		}
		st.Records = append(st.Records, rec)
	}
	return st
}
