package id

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const dayFormat = "20060102"

// FormatTxnID returns a transaction ID like "20240101-1". seq is the 1-based
// count of transactions the account has made on that calendar day.
func FormatTxnID(day time.Time, seq int) string {
	return fmt.Sprintf("%s-%d", day.Format(dayFormat), seq)
}

// ParseTxnID parses "20240101-1" into its day and sequence number.
func ParseTxnID(txnID string) (day time.Time, seq int, err error) {
	parts := strings.SplitN(txnID, "-", 2)
	if len(parts) != 2 {
		return time.Time{}, 0, fmt.Errorf("invalid transaction ID format: %q", txnID)
	}

	day, err = time.Parse(dayFormat, parts[0])
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("invalid day in transaction ID %q: %w", txnID, err)
	}

	seq, err = strconv.Atoi(parts[1])
	if err != nil || seq < 1 {
		return time.Time{}, 0, fmt.Errorf("invalid sequence in transaction ID %q", txnID)
	}

	return day, seq, nil
}
