// Package interest computes end-of-month accrued interest by walking an
// account's day-by-day balance timeline against the versioned rule table.
// The calculator owns no state: it reads views lent by the ledger and the
// rule table and mutates nothing.
package interest

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/awesomegic/gicbank/internal/dateutil"
	"github.com/awesomegic/gicbank/internal/ledger"
	"github.com/awesomegic/gicbank/internal/model"
	"github.com/awesomegic/gicbank/internal/rules"
)

var (
	hundred     = decimal.NewFromInt(100)
	daysPerYear = decimal.NewFromInt(365)
)

// Calculator combines a ledger and a rule table.
type Calculator struct {
	ledger *ledger.Service
	rules  *rules.Service
	now    func() time.Time
}

// NewCalculator creates a Calculator over the given services.
func NewCalculator(l *ledger.Service, r *rules.Service) *Calculator {
	return &Calculator{ledger: l, rules: r, now: time.Now}
}

// AccruedInterest computes the interest accrued by an account over a YYYYMM
// month: for each day the balance times the annual rate in force that day,
// summed, divided by 365, rounded half-up to 2 decimal places.
//
// Days before the first-ever rule accrue nothing. Days past the last
// transaction carry the last known balance and rule through month end.
func (c *Calculator) AccruedInterest(accountID, yearMonth string) (decimal.Decimal, error) {
	month, err := dateutil.ParseMonth(yearMonth)
	if err != nil {
		return decimal.Zero, err
	}

	first, last, ok := c.ledger.TimelineRange(accountID)
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: provided account %s does not exist", model.ErrNotFound, accountID)
	}

	monthEnd := dateutil.MonthEnd(month)
	recordedEnd := last
	if monthEnd.Before(recordedEnd) {
		recordedEnd = monthEnd
	}

	total := decimal.Zero

	// Recorded days through the end of the month. Days before the month
	// contribute nothing but establish the last known state.
	var lastKnownDay time.Time
	var lastKnownDaily decimal.Decimal
	haveLastKnown := false
	for d := first; !d.After(recordedEnd); d = d.AddDate(0, 0, 1) {
		rule, inForce := c.rules.EffectiveOnOrBefore(d)
		if !inForce {
			continue
		}
		balance, _ := c.ledger.BalanceOn(accountID, d)
		daily := balance.Mul(rule.Rate).Div(hundred)
		if dateutil.SameMonth(d, month) {
			total = total.Add(daily)
		}
		lastKnownDay, lastKnownDaily, haveLastKnown = d, daily, true
	}

	// Extrapolate past the last recorded day: the balance cannot change
	// without a transaction, and the rule in force then stays applied.
	if haveLastKnown {
		start := lastKnownDay.AddDate(0, 0, 1)
		if start.Before(month) {
			start = month
		}
		for d := start; !d.After(monthEnd); d = d.AddDate(0, 0, 1) {
			total = total.Add(lastKnownDaily)
		}
	}

	if total.IsZero() {
		return decimal.Zero, nil
	}
	return total.Div(daysPerYear).Round(2), nil
}

// MonthlyStatement parses "<Account> <YYYYMM>" and returns the account's
// transactions for that month. When interest accrued, a synthetic interest
// line dated now is appended for display; it is never written back to the
// ledger and has no effect on later calculations.
func (c *Calculator) MonthlyStatement(input string) (model.Statement, error) {
	fields := strings.Fields(input)
	if len(fields) != 2 {
		return model.Statement{}, fmt.Errorf("%w: statement request must be <Account> <YearMonth>", model.ErrFormat)
	}
	accountID, yearMonth := fields[0], fields[1]

	month, err := dateutil.ParseMonth(yearMonth)
	if err != nil {
		return model.Statement{}, err
	}

	interest, err := c.AccruedInterest(accountID, yearMonth)
	if err != nil {
		return model.Statement{}, err
	}

	txns, err := c.ledger.Statement(accountID)
	if err != nil {
		return model.Statement{}, err
	}

	st := model.Statement{Account: accountID, Year: month.Year(), Month: month.Month()}
	for _, t := range txns {
		if dateutil.SameMonth(t.Date, month) {
			st.Transactions = append(st.Transactions, t)
		}
	}

	if interest.IsPositive() {
		balance, err := c.ledger.Balance(accountID)
		if err != nil {
			return model.Statement{}, err
		}
		st.Transactions = append(st.Transactions, model.Transaction{
			Date:    c.now(),
			Kind:    model.KindInterest,
			Amount:  interest,
			Balance: balance.Add(interest),
		})
	}
	return st, nil
}
