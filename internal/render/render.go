// Package render produces the fixed-width, pipe-delimited tables shown by
// the interactive shell. Every cell is padded to a common column width.
package render

import (
	"strings"

	"github.com/awesomegic/gicbank/internal/dateutil"
	"github.com/awesomegic/gicbank/internal/model"
)

const colWidth = 20

func pad(v string) string {
	if len(v) >= colWidth {
		return v
	}
	return v + strings.Repeat(" ", colWidth-len(v))
}

func row(b *strings.Builder, cells ...string) {
	b.WriteByte('|')
	for _, c := range cells {
		b.WriteString(pad(c))
		b.WriteByte('|')
	}
	b.WriteByte('\n')
}

// TransactionTable renders an account's transaction history.
func TransactionTable(txns []model.Transaction) string {
	var b strings.Builder
	row(&b, "Date", "Txn Id", "Type", "Amount")
	for _, t := range txns {
		row(&b, dateutil.FormatDay(t.Date), t.ID, string(t.Kind), t.Amount.StringFixed(2))
	}
	return b.String()
}

// RuleTable renders the interest rule table.
func RuleTable(rules []model.InterestRule) string {
	var b strings.Builder
	row(&b, "Date", "RuleId", "Rate (%)")
	for _, r := range rules {
		row(&b, dateutil.FormatDay(r.EffectiveDate), r.RuleID, r.Rate.String())
	}
	return b.String()
}

// StatementTable renders a monthly statement, including any synthetic
// interest line.
func StatementTable(st model.Statement) string {
	var b strings.Builder
	row(&b, "Date", "Txn Id", "Type", "Amount", "Balance")
	for _, t := range st.Transactions {
		row(&b, dateutil.FormatDay(t.Date), t.ID, string(t.Kind), t.Amount.StringFixed(2), t.Balance.StringFixed(2))
	}
	return b.String()
}
