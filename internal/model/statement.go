package model

import "time"

// Statement is the derived monthly view of an account: the month's
// transactions in order, plus a synthetic interest line when interest
// accrued. It is computed on demand and never persisted.
type Statement struct {
	Account      string
	Year         int
	Month        time.Month
	Transactions []Transaction
}
