// Package ledger owns per-account balances, transaction histories, and the
// derived day-by-day balance timelines. All mutation goes through validated
// transaction application; accounts come into existence on first deposit.
package ledger

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/awesomegic/gicbank/internal/dateutil"
	"github.com/awesomegic/gicbank/internal/id"
	"github.com/awesomegic/gicbank/internal/model"
)

// Service is the account ledger.
type Service struct {
	accounts map[string]*account
}

type account struct {
	id       string
	balance  decimal.Decimal
	txns     []model.Transaction
	daySeq   map[string]int // YYYYMMDD -> transactions created that day, feeds txn IDs
	timeline *timeline
}

// NewService creates an empty ledger.
func NewService() *Service {
	return &Service{accounts: make(map[string]*account)}
}

// Apply validates "<Date> <Account> <Type> <Amount>", applies the deposit or
// withdrawal, and returns the account's new balance. The first failed check
// wins; a failed transaction leaves all state untouched.
func (s *Service) Apply(input string) (decimal.Decimal, error) {
	fields := strings.Fields(input)
	if len(fields) != 4 {
		return decimal.Zero, fmt.Errorf("%w: transaction must be <Date> <Account> <Type> <Amount>", model.ErrFormat)
	}

	day, err := dateutil.ParseDay(fields[0])
	if err != nil {
		return decimal.Zero, err
	}

	accountID := fields[1]

	var kind model.TxnKind
	switch strings.ToLower(fields[2]) {
	case "d":
		kind = model.KindDeposit
	case "w":
		kind = model.KindWithdrawal
	default:
		return decimal.Zero, fmt.Errorf("%w: transaction type can only either be w or d", model.ErrValidation)
	}

	amount, err := decimal.NewFromString(fields[3])
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: parsing amount %q", model.ErrFormat, fields[3])
	}

	return s.apply(day, accountID, kind, amount)
}

func (s *Service) apply(day time.Time, accountID string, kind model.TxnKind, amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: amount must be greater than 0", model.ErrValidation)
	}
	if !amount.Equal(amount.Round(2)) {
		return decimal.Zero, fmt.Errorf("%w: amount must be at most 2 decimal places", model.ErrValidation)
	}

	acct, exists := s.accounts[accountID]
	if kind == model.KindWithdrawal {
		if !exists {
			return decimal.Zero, fmt.Errorf("%w: provided account %s does not exist", model.ErrNotFound, accountID)
		}
		if acct.balance.LessThan(amount) {
			return decimal.Zero, fmt.Errorf("%w: balance %s is less than %s",
				model.ErrInsufficientFunds, acct.balance.StringFixed(2), amount.StringFixed(2))
		}
	}
	if !exists {
		acct = &account{
			id:       accountID,
			daySeq:   make(map[string]int),
			timeline: newTimeline(),
		}
		s.accounts[accountID] = acct
	}

	if kind == model.KindWithdrawal {
		acct.balance = acct.balance.Sub(amount)
	} else {
		acct.balance = acct.balance.Add(amount)
	}

	key := dateutil.FormatDay(day)
	acct.daySeq[key]++

	acct.txns = append(acct.txns, model.Transaction{
		Date:    day,
		Seq:     len(acct.txns) + 1,
		ID:      id.FormatTxnID(day, acct.daySeq[key]),
		Kind:    kind,
		Amount:  amount,
		Balance: acct.balance,
	})
	acct.timeline.record(day, acct.balance)

	return acct.balance, nil
}

// Exists reports whether an account has been created.
func (s *Service) Exists(accountID string) bool {
	_, ok := s.accounts[accountID]
	return ok
}

// Balance returns the account's current balance.
func (s *Service) Balance(accountID string) (decimal.Decimal, error) {
	acct, ok := s.accounts[accountID]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: provided account %s does not exist", model.ErrNotFound, accountID)
	}
	return acct.balance, nil
}

// Statement returns the account's transactions ordered by date, with
// insertion order as the tiebreak for same-day entries.
func (s *Service) Statement(accountID string) ([]model.Transaction, error) {
	acct, ok := s.accounts[accountID]
	if !ok {
		return nil, fmt.Errorf("%w: provided account %s does not exist", model.ErrNotFound, accountID)
	}

	out := make([]model.Transaction, len(acct.txns))
	copy(out, acct.txns)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out, nil
}

// BalanceOn returns the timeline's closing balance for day; ok is false
// for unknown accounts and days outside the recorded range.
func (s *Service) BalanceOn(accountID string, day time.Time) (decimal.Decimal, bool) {
	acct, ok := s.accounts[accountID]
	if !ok {
		return decimal.Zero, false
	}
	return acct.timeline.balanceOn(day)
}

// TimelineRange returns the first and last recorded timeline days. ok is
// false when the account is unknown or has no transactions.
func (s *Service) TimelineRange(accountID string) (first, last time.Time, ok bool) {
	acct, found := s.accounts[accountID]
	if !found || len(acct.txns) == 0 {
		return time.Time{}, time.Time{}, false
	}
	return acct.timeline.first, acct.timeline.last, true
}
