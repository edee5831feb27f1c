// Package rules stores the time-versioned interest rule table. At most one
// rule exists per effective date; a later upsert for the same date replaces
// the earlier rule, and the table stays sorted ascending by date.
package rules

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/awesomegic/gicbank/internal/dateutil"
	"github.com/awesomegic/gicbank/internal/model"
)

var hundred = decimal.NewFromInt(100)

// Service owns the rule collection.
type Service struct {
	rules []model.InterestRule
}

// NewService creates an empty rule table.
func NewService() *Service {
	return &Service{}
}

// Upsert parses "<Date> <RuleId> <Rate>" and inserts or replaces the rule
// for that effective date.
func (s *Service) Upsert(input string) error {
	fields := strings.Fields(input)
	if len(fields) != 3 {
		return fmt.Errorf("%w: interest rule must be <Date> <RuleId> <Rate>", model.ErrFormat)
	}

	day, err := dateutil.ParseDay(fields[0])
	if err != nil {
		return err
	}

	rate, err := decimal.NewFromString(fields[2])
	if err != nil {
		return fmt.Errorf("%w: parsing rate %q", model.ErrFormat, fields[2])
	}

	return s.UpsertRule(day, fields[1], rate)
}

// UpsertRule is the typed form of Upsert.
func (s *Service) UpsertRule(day time.Time, ruleID string, rate decimal.Decimal) error {
	if !rate.IsPositive() || rate.GreaterThanOrEqual(hundred) {
		return fmt.Errorf("%w: interest rate must be greater than 0 and less than 100", model.ErrValidation)
	}

	kept := s.rules[:0]
	for _, r := range s.rules {
		if !r.EffectiveDate.Equal(day) {
			kept = append(kept, r)
		}
	}
	s.rules = append(kept, model.InterestRule{EffectiveDate: day, RuleID: ruleID, Rate: rate})

	sort.Slice(s.rules, func(i, j int) bool {
		return s.rules[i].EffectiveDate.Before(s.rules[j].EffectiveDate)
	})
	return nil
}

// EffectiveOnOrBefore returns the rule with the largest effective date <= day.
// ok is false when no rule was in force yet; such days accrue no interest.
func (s *Service) EffectiveOnOrBefore(day time.Time) (rule model.InterestRule, ok bool) {
	for i := len(s.rules) - 1; i >= 0; i-- {
		if !s.rules[i].EffectiveDate.After(day) {
			return s.rules[i], true
		}
	}
	return model.InterestRule{}, false
}

// All returns the rules in ascending effective-date order.
func (s *Service) All() []model.InterestRule {
	out := make([]model.InterestRule, len(s.rules))
	copy(out, s.rules)
	return out
}
