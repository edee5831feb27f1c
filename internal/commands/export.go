package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/awesomegic/gicbank/internal/interest"
	"github.com/awesomegic/gicbank/internal/ledger"
	"github.com/awesomegic/gicbank/internal/rules"
	"github.com/awesomegic/gicbank/internal/statementio"
)

func newExportCommand() *cobra.Command {
	var rulesPath string
	var outPath string

	cmd := &cobra.Command{
		Use:   "export <transactions-file> <account> <yearmonth>",
		Short: "Compute a monthly statement from a transactions file and write it as CSV",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return fmt.Errorf("creating output file: %w", err)
				}
				defer f.Close()
				out = f
			}
			return runExport(out, args[0], rulesPath, args[1], args[2])
		},
	}

	cmd.Flags().StringVar(&rulesPath, "rules", "", "interest rule file applied before the transactions")
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "output file (default stdout)")

	return cmd
}

func runExport(out io.Writer, txnsPath, rulesPath, account, yearMonth string) error {
	l := ledger.NewService()
	r := rules.NewService()

	if rulesPath != "" {
		if err := applyRulesFile(r, rulesPath); err != nil {
			return err
		}
	}
	if _, err := applyTxnFile(l, txnsPath); err != nil {
		return err
	}

	calc := interest.NewCalculator(l, r)
	st, err := calc.MonthlyStatement(account + " " + yearMonth)
	if err != nil {
		return err
	}

	return statementio.WriteStatement(out, st)
}
