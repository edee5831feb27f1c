package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/awesomegic/gicbank/internal/dateutil"
)

// timeline is a dense day-by-day record of an account's closing balance,
// covering every calendar day from the first transaction through the latest.
// Days with no transaction carry the previous day's closing balance forward.
type timeline struct {
	balances    map[string]decimal.Decimal // keyed by YYYYMMDD
	first, last time.Time
}

func newTimeline() *timeline {
	return &timeline{balances: make(map[string]decimal.Decimal)}
}

// record stores day's closing balance. When day lands past the latest
// recorded day, every gap day in between is back-filled with the previous
// closing balance first, so the range stays contiguous.
func (t *timeline) record(day time.Time, balance decimal.Decimal) {
	if t.first.IsZero() {
		t.first, t.last = day, day
		t.balances[dateutil.FormatDay(day)] = balance
		return
	}

	if day.After(t.last) {
		carry := t.balances[dateutil.FormatDay(t.last)]
		for d := t.last.AddDate(0, 0, 1); d.Before(day); d = d.AddDate(0, 0, 1) {
			t.balances[dateutil.FormatDay(d)] = carry
		}
		t.last = day
	}
	if day.Before(t.first) {
		t.first = day
	}
	t.balances[dateutil.FormatDay(day)] = balance
}

// balanceOn returns the recorded balance for day; ok is false outside the
// recorded range.
func (t *timeline) balanceOn(day time.Time) (decimal.Decimal, bool) {
	bal, ok := t.balances[dateutil.FormatDay(day)]
	return bal, ok
}
