package commands

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/awesomegic/gicbank/internal/ledger"
	"github.com/awesomegic/gicbank/internal/render"
	"github.com/awesomegic/gicbank/internal/rules"
)

func newImportCommand() *cobra.Command {
	var rulesPath string

	cmd := &cobra.Command{
		Use:   "import <transactions-file>",
		Short: "Apply a file of transaction lines and print the resulting statements",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd.OutOrStdout(), args[0], rulesPath)
		},
	}

	cmd.Flags().StringVar(&rulesPath, "rules", "", "interest rule file applied before the transactions")

	return cmd
}

func runImport(out io.Writer, txnsPath, rulesPath string) error {
	l := ledger.NewService()
	r := rules.NewService()

	if rulesPath != "" {
		if err := applyRulesFile(r, rulesPath); err != nil {
			return err
		}
		fmt.Fprint(out, render.RuleTable(r.All()))
	}

	accounts, err := applyTxnFile(l, txnsPath)
	if err != nil {
		return err
	}

	for _, account := range accounts {
		txns, err := l.Statement(account)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Account: %s\n%s", account, render.TransactionTable(txns))
	}
	return nil
}

// applyTxnFile applies every non-blank, non-comment line of a
// "<Date> <Account> <Type> <Amount>" file through the ledger. It returns the
// accounts touched, in first-seen order.
func applyTxnFile(l *ledger.Service, path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening transactions file: %w", err)
	}
	defer f.Close()

	var accounts []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if _, err := l.Apply(line); err != nil {
			return nil, fmt.Errorf("%s: line %d: %w", path, lineNo, err)
		}
		account := strings.Fields(line)[1]
		if !seen[account] {
			seen[account] = true
			accounts = append(accounts, account)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading transactions file: %w", err)
	}
	return accounts, nil
}

// applyRulesFile upserts every non-blank, non-comment line of a
// "<Date> <RuleId> <Rate>" file into the rule table.
func applyRulesFile(r *rules.Service, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening rules file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := r.Upsert(line); err != nil {
			return fmt.Errorf("%s: line %d: %w", path, lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading rules file: %w", err)
	}
	return nil
}
