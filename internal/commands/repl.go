package commands

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/awesomegic/gicbank/internal/auditlog"
	"github.com/awesomegic/gicbank/internal/config"
	"github.com/awesomegic/gicbank/internal/interest"
	"github.com/awesomegic/gicbank/internal/ledger"
	"github.com/awesomegic/gicbank/internal/render"
	"github.com/awesomegic/gicbank/internal/rules"
)

const (
	msgWelcome = "Welcome to %s! What would you like to do?\n"
	msgAgain   = "\nIs there anything else you'd like to do?\n"
	msgMenu    = "[T] Input transactions\n[I] Define interest rules\n[P] Print statement\n[Q] Quit\n> "
	msgQuit    = "Thank you for banking with %s.\nHave a nice day!\n"

	promptTxn = "Please enter transaction details in <Date> <Account> <Type> <Amount> format\n" +
		"(or enter blank to go back to main menu):\n> "
	promptRule = "Please enter interest rules details in <Date> <RuleId> <Rate in %> format\n" +
		"(or enter blank to go back to main menu):\n> "
	promptStatement = "Please enter account and month to generate the statement <Account> <Year><Month>\n" +
		"(or enter blank to go back to main menu):\n> "
)

func newReplCommand() *cobra.Command {
	var cfgPath string

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive banking session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cfgPath)
			if err != nil {
				return err
			}
			return runRepl(cmd.InOrStdin(), cmd.OutOrStdout(), cfg)
		},
	}

	cmd.Flags().StringVar(&cfgPath, "config", "gicbank.yaml", "config file")

	return cmd
}

// session wires the core services behind the interactive menu.
type session struct {
	cfg    *config.Config
	out    io.Writer
	ledger *ledger.Service
	rules  *rules.Service
	calc   *interest.Calculator
}

func newSession(cfg *config.Config, out io.Writer) (*session, error) {
	l := ledger.NewService()
	r := rules.NewService()

	for i, seed := range cfg.SeedRules {
		line := fmt.Sprintf("%s %s %s", seed.Date, seed.RuleID, seed.Rate)
		if err := r.Upsert(line); err != nil {
			return nil, fmt.Errorf("seed rule %d: %w", i+1, err)
		}
	}

	return &session{
		cfg:    cfg,
		out:    out,
		ledger: l,
		rules:  r,
		calc:   interest.NewCalculator(l, r),
	}, nil
}

func runRepl(in io.Reader, out io.Writer, cfg *config.Config) error {
	s, err := newSession(cfg, out)
	if err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	fmt.Fprintf(out, msgWelcome, cfg.Bank.Name)

	first := true
	for {
		if !first {
			fmt.Fprint(out, msgAgain)
		}
		first = false
		fmt.Fprint(out, msgMenu)

		if !scanner.Scan() {
			return scanner.Err()
		}

		switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
		case "t":
			s.prompt(scanner, promptTxn, "transaction", s.handleTransaction)
		case "i":
			s.prompt(scanner, promptRule, "rule", s.handleRule)
		case "p":
			s.prompt(scanner, promptStatement, "statement", s.handleStatement)
		case "q":
			fmt.Fprintf(out, msgQuit, cfg.Bank.Name)
			return nil
		}
	}
}

// prompt asks for one input line and dispatches it. A blank line returns to
// the menu; errors are shown and the session continues.
func (s *session) prompt(scanner *bufio.Scanner, text, op string, handle func(string) error) {
	fmt.Fprint(s.out, text)
	if !scanner.Scan() {
		return
	}
	line := strings.TrimSpace(scanner.Text())
	if line == "" {
		return
	}

	err := handle(line)
	if err != nil {
		fmt.Fprintln(s.out, err)
	}
	s.audit(op, line, err)
}

func (s *session) handleTransaction(line string) error {
	if _, err := s.ledger.Apply(line); err != nil {
		return err
	}

	// Apply validated the shape, so the account token is field 1.
	account := strings.Fields(line)[1]
	txns, err := s.ledger.Statement(account)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Account: %s\n%s", account, render.TransactionTable(txns))
	return nil
}

func (s *session) handleRule(line string) error {
	if err := s.rules.Upsert(line); err != nil {
		return err
	}
	fmt.Fprint(s.out, render.RuleTable(s.rules.All()))
	return nil
}

func (s *session) handleStatement(line string) error {
	st, err := s.calc.MonthlyStatement(line)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Account: %s\n%s", st.Account, render.StatementTable(st))
	return nil
}

func (s *session) audit(op, input string, opErr error) {
	if !s.cfg.Audit.Enabled {
		return
	}
	outcome := "ok"
	if opErr != nil {
		outcome = opErr.Error()
	}
	entry := auditlog.Entry{Timestamp: time.Now(), Op: op, Input: input, Outcome: outcome}
	if err := auditlog.Append(s.cfg.Audit.Path, entry); err != nil {
		fmt.Fprintf(s.out, "audit log: %v\n", err)
	}
}
