package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TxnKind classifies ledger transactions.
type TxnKind string

const (
	KindDeposit    TxnKind = "D"
	KindWithdrawal TxnKind = "W"
	// KindInterest marks the synthetic end-of-month interest line on a
	// statement. It is never stored in a ledger.
	KindInterest TxnKind = "I"
)

// Transaction is one applied ledger entry. Immutable once created.
type Transaction struct {
	Date    time.Time
	Seq     int    // insertion order within the account, tiebreak for same-day entries
	ID      string // "YYYYMMDD-n"; empty for synthetic interest lines
	Kind    TxnKind
	Amount  decimal.Decimal
	Balance decimal.Decimal // account balance after this transaction
}
