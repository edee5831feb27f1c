package id

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestFormatTxnID(t *testing.T) {
	assert.Equal(t, "20240101-1", FormatTxnID(date(2024, 1, 1), 1))
	assert.Equal(t, "20241231-12", FormatTxnID(date(2024, 12, 31), 12))
}

func TestParseTxnID(t *testing.T) {
	day, seq, err := ParseTxnID("20240101-3")
	require.NoError(t, err)
	assert.True(t, day.Equal(date(2024, 1, 1)))
	assert.Equal(t, 3, seq)
}

func TestParseTxnID_Invalid(t *testing.T) {
	for _, input := range []string{"", "20240101", "INVALID-1", "20240101-x", "20240101-0"} {
		_, _, err := ParseTxnID(input)
		require.Error(t, err, input)
	}
}

func TestRoundTrip(t *testing.T) {
	id := FormatTxnID(date(2024, 6, 30), 7)
	day, seq, err := ParseTxnID(id)
	require.NoError(t, err)
	assert.True(t, day.Equal(date(2024, 6, 30)))
	assert.Equal(t, 7, seq)
}
