package render

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/awesomegic/gicbank/internal/model"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestTransactionTable(t *testing.T) {
	out := TransactionTable([]model.Transaction{
		{Date: date(2024, 1, 1), ID: "20240101-1", Kind: model.KindDeposit, Amount: dec("1000.00"), Balance: dec("1000.00")},
	})

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "|Date ")
	assert.Contains(t, lines[0], "|Txn Id ")
	assert.Contains(t, lines[1], "|20240101 ")
	assert.Contains(t, lines[1], "|1000.00 ")

	// Every cell is padded to a fixed width.
	for _, line := range lines {
		assert.Equal(t, len(lines[0]), len(line))
	}
}

func TestRuleTable(t *testing.T) {
	out := RuleTable([]model.InterestRule{
		{EffectiveDate: date(2024, 1, 5), RuleID: "RULE01", Rate: dec("2.00")},
		{EffectiveDate: date(2024, 1, 15), RuleID: "RULE02", Rate: dec("3.00")},
	})

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Rate (%)")
	assert.Contains(t, lines[1], "RULE01")
	assert.Contains(t, lines[2], "RULE02")
}

func TestStatementTable_InterestLine(t *testing.T) {
	st := model.Statement{
		Account: "AC001",
		Transactions: []model.Transaction{
			{Date: date(2024, 1, 1), ID: "20240101-1", Kind: model.KindDeposit, Amount: dec("1000.00"), Balance: dec("1000.00")},
			{Date: date(2024, 2, 1), Kind: model.KindInterest, Amount: dec("2.10"), Balance: dec("1002.10")},
		},
	}

	out := StatementTable(st)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Balance")
	assert.Contains(t, lines[2], "|I ")
	assert.Contains(t, lines[2], "|2.10 ")
	assert.Contains(t, lines[2], "|1002.10 ")
}

func TestTables_HeaderOnlyWhenEmpty(t *testing.T) {
	assert.Equal(t, 1, strings.Count(TransactionTable(nil), "\n"))
	assert.Equal(t, 1, strings.Count(RuleTable(nil), "\n"))
	assert.Equal(t, 1, strings.Count(StatementTable(model.Statement{}), "\n"))
}
