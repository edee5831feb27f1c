package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name string, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644)
	require.NoError(t, err)
	return path
}

func TestRunImport(t *testing.T) {
	txns := writeFile(t, "txns.txt",
		"# January activity",
		"20240101 AC001 d 1000.00",
		"",
		"20240110 AC001 w 200.00",
		"20240103 AC002 d 50.00",
	)

	var out bytes.Buffer
	require.NoError(t, runImport(&out, txns, ""))

	got := out.String()
	assert.Contains(t, got, "Account: AC001")
	assert.Contains(t, got, "Account: AC002")
	assert.Contains(t, got, "|20240101-1 ")
	assert.Contains(t, got, "|20240110-1 ")
	assert.True(t, strings.Index(got, "AC001") < strings.Index(got, "AC002"), "accounts print in first-seen order")
}

func TestRunImport_WithRules(t *testing.T) {
	txns := writeFile(t, "txns.txt", "20240101 AC001 d 1000.00")
	rules := writeFile(t, "rules.txt", "20240101 RULE01 2.00")

	var out bytes.Buffer
	require.NoError(t, runImport(&out, txns, rules))
	assert.Contains(t, out.String(), "|RULE01 ")
}

func TestRunImport_LineError(t *testing.T) {
	txns := writeFile(t, "txns.txt",
		"20240101 AC001 d 1000.00",
		"20240102 AC001 w 5000.00",
	)

	var out bytes.Buffer
	err := runImport(&out, txns, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
	assert.Contains(t, err.Error(), "insufficient balance")
}

func TestRunImport_MissingFile(t *testing.T) {
	var out bytes.Buffer
	err := runImport(&out, filepath.Join(t.TempDir(), "nope.txt"), "")
	require.Error(t, err)
}

func TestRunExport(t *testing.T) {
	txns := writeFile(t, "txns.txt",
		"20240101 AC001 d 1000.00",
		"20240110 AC001 w 200.00",
		"20240120 AC001 d 500.00",
	)
	rules := writeFile(t, "rules.txt",
		"20240105 RULE01 2.00",
		"20240115 RULE02 3.00",
	)

	var out bytes.Buffer
	require.NoError(t, runExport(&out, txns, rules, "AC001", "202401"))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 5, "header, three transactions, interest line")
	assert.Equal(t, "date,txn_id,type,amount,balance", lines[0])
	assert.Equal(t, "20240101,20240101-1,D,1000.00,1000.00", lines[1])
	assert.Equal(t, "20240110,20240110-1,W,200.00,800.00", lines[2])
	assert.Equal(t, "20240120,20240120-1,D,500.00,1300.00", lines[3])
	assert.True(t, strings.HasSuffix(lines[4], ",I,2.10,1302.10"), "got %s", lines[4])
}

func TestRunExport_UnknownAccount(t *testing.T) {
	txns := writeFile(t, "txns.txt", "20240101 AC001 d 1000.00")

	var out bytes.Buffer
	err := runExport(&out, txns, "", "AC999", "202401")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}
