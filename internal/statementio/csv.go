// Package statementio exports monthly statements as CSV for downstream
// reporting. It writes derived views only; ledger state never round-trips
// through these files.
package statementio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/awesomegic/gicbank/internal/dateutil"
	"github.com/awesomegic/gicbank/internal/model"
)

// Header is the CSV header for an exported statement.
const Header = "date,txn_id,type,amount,balance"

const (
	numFields  = 5
	colDate    = 0
	colTxnID   = 1
	colType    = 2
	colAmount  = 3
	colBalance = 4
)

// WriteStatement writes a statement to w as CSV, header included.
func WriteStatement(w io.Writer, st model.Statement) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, t := range st.Transactions {
		if err := cw.Write(MarshalRow(t)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalRow converts a Transaction to a CSV row.
func MarshalRow(t model.Transaction) []string {
	row := make([]string, numFields)
	row[colDate] = dateutil.FormatDay(t.Date)
	row[colTxnID] = t.ID
	row[colType] = string(t.Kind)
	row[colAmount] = t.Amount.StringFixed(2)
	row[colBalance] = t.Balance.StringFixed(2)
	return row
}

// UnmarshalRow converts a CSV row back to a Transaction.
func UnmarshalRow(record []string) (model.Transaction, error) {
	if len(record) != numFields {
		return model.Transaction{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	day, err := time.Parse(dateutil.DayFormat, record[colDate])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing date %q: %w", record[colDate], err)
	}

	amount, err := decimal.NewFromString(record[colAmount])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
	}

	balance, err := decimal.NewFromString(record[colBalance])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing balance %q: %w", record[colBalance], err)
	}

	return model.Transaction{
		Date:    day,
		ID:      record[colTxnID],
		Kind:    model.TxnKind(record[colType]),
		Amount:  amount,
		Balance: balance,
	}, nil
}

// ReadStatement reads statement rows back from a CSV reader.
func ReadStatement(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading statement CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	var txns []model.Transaction
	for i, rec := range records[1:] {
		t, err := UnmarshalRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txns = append(txns, t)
	}
	return txns, nil
}
