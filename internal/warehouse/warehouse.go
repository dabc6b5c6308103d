// Package warehouse streams the sanitized ledger into a BigQuery
// transactions table. The sink is optional: it engages only when a project
// and dataset are configured, and failures never affect the file outputs.
package warehouse

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"cloud.google.com/go/bigquery"
	"cloud.google.com/go/civil"
	"github.com/google/uuid"

	"github.com/ledgerline/ledgerline/internal/table"
)

const transactionsTable = "transactions"

// TransactionRow is one ledger row in the warehouse schema.
type TransactionRow struct {
	TransactionID string `bigquery:"transaction_id"`
	RunID         string `bigquery:"run_id"`

	TransactionDate bigquery.NullDate `bigquery:"transaction_date"`
	Description     string            `bigquery:"description"`
	Amount          *big.Rat          `bigquery:"amount"`

	Cardholder bigquery.NullString `bigquery:"cardholder"`
	CardLast4  bigquery.NullString `bigquery:"card_last4"`

	CreatedTS time.Time `bigquery:"created_ts"`
}

// RowsFromLedger converts the sanitized combined ledger into warehouse rows.
// Rows whose amount fails to parse are skipped; the sanitizer has already
// dropped them, so in practice every row converts.
func RowsFromLedger(t table.Table, runID string) []*TransactionRow {
	now := time.Now()
	rows := make([]*TransactionRow, 0, len(t.Rows))
	for i := range t.Rows {
		amt, ok := table.ParseAmount(t.Cell(i, table.ColAmount))
		if !ok {
			continue
		}
		row := &TransactionRow{
			TransactionID: uuid.NewString(),
			RunID:         runID,
			Description:   t.Cell(i, table.ColDescription),
			Amount:        new(big.Rat).SetFloat64(amt),
			CreatedTS:     now,
		}
		if d, err := civil.ParseDate(t.Cell(i, table.ColDate)); err == nil {
			row.TransactionDate = bigquery.NullDate{Date: d, Valid: true}
		}
		if ch := t.Cell(i, table.ColCardholder); ch != "" {
			row.Cardholder = bigquery.NullString{StringVal: ch, Valid: true}
		}
		if l4 := t.Cell(i, table.ColCardLast4); l4 != "" {
			row.CardLast4 = bigquery.NullString{StringVal: l4, Valid: true}
		}
		rows = append(rows, row)
	}
	return rows
}

// Inserter writes ledger rows into one project/dataset.
type Inserter struct {
	ProjectID string
	DatasetID string
}

// InsertLedger streams the rows into the transactions table.
func (ins *Inserter) InsertLedger(ctx context.Context, rows []*TransactionRow) error {
	if len(rows) == 0 {
		return nil
	}
	client, err := bigquery.NewClient(ctx, ins.ProjectID)
	if err != nil {
		return fmt.Errorf("warehouse: bigquery client: %w", err)
	}
	defer client.Close()

	inserter := client.Dataset(ins.DatasetID).Table(transactionsTable).Inserter()
	if err := inserter.Put(ctx, rows); err != nil {
		return fmt.Errorf("warehouse: inserting %d rows: %w", len(rows), err)
	}
	return nil
}
