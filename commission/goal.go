/*
goal.go - Monthly goal definitions

PURPOSE:
  Defines the team-level and per-user goal sets for a calendar month.
  A Goal record is created or replaced wholesale per month; there is at
  most one Goal per month key.

GOAL SET SHAPES:
  TeamGoalSet:    superset, store-wide targets for every metric
  SellerGoalSet:  everything except socks
  CashierGoalSet: strict subset - credit targets and socks only

  The per-user set is a role-tagged union (UserGoal): a cashier goal
  cannot carry footwear targets, a seller goal cannot carry sock targets.
  Illegal combinations are unrepresentable rather than merely unused.

LIFECYCLE:
  Committing goals for month M overwrites any previous Goal for M.
  A month with no Goal is a recoverable "no goal defined" state
  (ErrNoGoalDefined), never an error while scoring.

SEE ALSO:
  - distribute.go: builds the per-user sets from the team set
  - score.go:      consumes Target() lookups during composition
*/
package commission

import (
	"encoding/json"
	"fmt"
)

// =============================================================================
// TEAM GOAL SET - store-wide targets
// =============================================================================

// TeamGoalSet holds store-wide monthly targets. All fields are optional
// and default to 0 when absent.
type TeamGoalSet struct {
	Pesos       float64 `json:"pesos,omitempty" yaml:"pesos"`
	Tickets     float64 `json:"tickets,omitempty" yaml:"tickets"`
	Units       float64 `json:"units,omitempty" yaml:"units"`
	CreditPesos float64 `json:"credit_pesos,omitempty" yaml:"credit_pesos"`
	CreditUnits float64 `json:"credit_units,omitempty" yaml:"credit_units"`
	Footwear    float64 `json:"footwear,omitempty" yaml:"footwear"`
	Apparel     float64 `json:"apparel,omitempty" yaml:"apparel"`
	Shirts      float64 `json:"shirts,omitempty" yaml:"shirts"`
	Accessories float64 `json:"accessories,omitempty" yaml:"accessories"`
	Socks       float64 `json:"socks,omitempty" yaml:"socks"`
}

// Target returns the team target for m, 0 for metrics outside the set.
func (g TeamGoalSet) Target(m Metric) float64 {
	switch m {
	case MetricPesos:
		return g.Pesos
	case MetricTickets:
		return g.Tickets
	case MetricUnits:
		return g.Units
	case MetricCreditPesos:
		return g.CreditPesos
	case MetricCreditUnits:
		return g.CreditUnits
	case MetricFootwear:
		return g.Footwear
	case MetricApparel:
		return g.Apparel
	case MetricShirts:
		return g.Shirts
	case MetricAccessories:
		return g.Accessories
	case MetricSocks:
		return g.Socks
	}
	return 0
}

// =============================================================================
// SELLER / CASHIER GOAL SETS
// =============================================================================

// SellerGoalSet holds the per-seller monthly targets.
type SellerGoalSet struct {
	Pesos       float64 `json:"pesos,omitempty"`
	Tickets     float64 `json:"tickets,omitempty"`
	Units       float64 `json:"units,omitempty"`
	CreditPesos float64 `json:"credit_pesos,omitempty"`
	CreditUnits float64 `json:"credit_units,omitempty"`
	Footwear    float64 `json:"footwear,omitempty"`
	Apparel     float64 `json:"apparel,omitempty"`
	Shirts      float64 `json:"shirts,omitempty"`
	Accessories float64 `json:"accessories,omitempty"`
}

// Target returns the seller target for m, 0 for metrics outside the set.
func (g SellerGoalSet) Target(m Metric) float64 {
	switch m {
	case MetricPesos:
		return g.Pesos
	case MetricTickets:
		return g.Tickets
	case MetricUnits:
		return g.Units
	case MetricCreditPesos:
		return g.CreditPesos
	case MetricCreditUnits:
		return g.CreditUnits
	case MetricFootwear:
		return g.Footwear
	case MetricApparel:
		return g.Apparel
	case MetricShirts:
		return g.Shirts
	case MetricAccessories:
		return g.Accessories
	}
	return 0
}

// CashierGoalSet holds the per-cashier monthly targets: credit program
// money and units, plus sock units. Nothing else.
type CashierGoalSet struct {
	CreditPesos float64 `json:"credit_pesos,omitempty"`
	CreditUnits float64 `json:"credit_units,omitempty"`
	Socks       float64 `json:"socks,omitempty"`
}

// Target returns the cashier target for m, 0 for metrics outside the set.
func (g CashierGoalSet) Target(m Metric) float64 {
	switch m {
	case MetricCreditPesos:
		return g.CreditPesos
	case MetricCreditUnits:
		return g.CreditUnits
	case MetricSocks:
		return g.Socks
	}
	return 0
}

// =============================================================================
// USER GOAL - role-tagged union
// =============================================================================

// UserGoal is the per-user goal set, tagged by the owning user's role.
// Exactly one of Seller/Cashier is non-nil.
type UserGoal struct {
	Role    Role            `json:"role"`
	Seller  *SellerGoalSet  `json:"seller,omitempty"`
	Cashier *CashierGoalSet `json:"cashier,omitempty"`
}

// NewSellerGoal wraps a seller goal set.
func NewSellerGoal(set SellerGoalSet) UserGoal {
	return UserGoal{Role: RoleSeller, Seller: &set}
}

// NewCashierGoal wraps a cashier goal set.
func NewCashierGoal(set CashierGoalSet) UserGoal {
	return UserGoal{Role: RoleCashier, Cashier: &set}
}

// Target dispatches to the underlying role-shaped set.
func (g UserGoal) Target(m Metric) float64 {
	switch {
	case g.Role == RoleSeller && g.Seller != nil:
		return g.Seller.Target(m)
	case g.Role == RoleCashier && g.Cashier != nil:
		return g.Cashier.Target(m)
	}
	return 0
}

// Validate checks the tag matches the populated variant.
func (g UserGoal) Validate() error {
	switch g.Role {
	case RoleSeller:
		if g.Seller == nil || g.Cashier != nil {
			return fmt.Errorf("seller goal: %w", ErrRoleMismatch)
		}
	case RoleCashier:
		if g.Cashier == nil || g.Seller != nil {
			return fmt.Errorf("cashier goal: %w", ErrRoleMismatch)
		}
	default:
		return fmt.Errorf("goal role %q: %w", g.Role, ErrRoleMismatch)
	}
	return nil
}

// UnmarshalJSON keeps the tag and variant consistent when loading stored
// goals: a missing role tag is inferred from whichever variant is present.
func (g *UserGoal) UnmarshalJSON(data []byte) error {
	type alias UserGoal
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*g = UserGoal(a)
	if g.Role == "" {
		switch {
		case g.Seller != nil:
			g.Role = RoleSeller
		case g.Cashier != nil:
			g.Role = RoleCashier
		}
	}
	return nil
}

// =============================================================================
// GOAL - one record per calendar month
// =============================================================================

// Goal is the complete goal definition for one month: the store-wide
// team targets plus the distributed per-user sets.
type Goal struct {
	Month     Month               `json:"month"`
	TeamGoal  TeamGoalSet         `json:"team_goal"`
	UserGoals map[string]UserGoal `json:"user_goals"`
}

// UserGoalFor returns the goal set for userID, or a NoUserGoalError.
func (g Goal) UserGoalFor(userID string) (UserGoal, error) {
	ug, ok := g.UserGoals[userID]
	if !ok {
		return UserGoal{}, &NoUserGoalError{UserID: userID, Month: g.Month}
	}
	return ug, nil
}
