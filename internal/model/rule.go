package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// InterestRule is one versioned entry in the interest rule table. A rule
// applies from its effective date until superseded by a later rule.
type InterestRule struct {
	EffectiveDate time.Time
	RuleID        string
	Rate          decimal.Decimal // annual rate in percent, open interval (0,100)
}
