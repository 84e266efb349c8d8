/*
Package commission provides the core commission and goal-attainment engine.

PURPOSE:
  This package contains the deterministic pipeline that turns raw progress
  records into weighted achievement scores per role, and maps a composite
  score to a monetary payout via a piecewise-linear tier schedule.

KEY CONCEPTS IN THIS FILE (types.go):
  - Role: Manager, Seller, Cashier - drives which rules apply
  - User: a staff member; AssignedHours feeds goal distribution and
    tier selection, nothing else
  - Metric: the shared metric vocabulary (money, tickets, units,
    per-category units, credit money/units)
  - MetricSet: a flat metric -> value mapping used by aggregation and
    weighted scoring
  - Month / DateKey: calendar keys ("2006-01" / "2006-01-02"); month
    membership is a prefix match of the day key

DESIGN PRINCIPLES:
  1. Purity: scoring never reads the wall clock; the target month is
     always an explicit parameter
  2. Precision: currency payouts use decimal.Decimal (see tiers.go);
     achievement ratios are plain float64
  3. Zero defaults: a metric absent from a record or goal set counts as 0

SEE ALSO:
  - goal.go:        goal sets and the per-role union
  - progress.go:    progress records and monthly aggregation
  - score.go:       weighted composition per role
  - tiers.go:       score -> payout mapping
*/
package commission

import (
	"fmt"
	"time"
)

// =============================================================================
// ROLES
// =============================================================================

type Role string

const (
	RoleManager Role = "manager"
	RoleSeller  Role = "seller"
	RoleCashier Role = "cashier"
)

// Valid reports whether r is one of the three known roles.
func (r Role) Valid() bool {
	return r == RoleManager || r == RoleSeller || r == RoleCashier
}

// =============================================================================
// USER - roster entry
// =============================================================================

// DefaultAssignedHours is assumed when a user has no hours set.
const DefaultAssignedHours = 40

// User is a member of the store staff. AssignedHours is weekly contract
// hours; it is used only as a goal-distribution weight and for seller
// tier selection.
type User struct {
	ID            string
	Name          string
	Role          Role
	AvatarURL     string
	AssignedHours float64
}

// Hours returns the assigned hours, falling back to DefaultAssignedHours
// when unset.
func (u User) Hours() float64 {
	if u.AssignedHours <= 0 {
		return DefaultAssignedHours
	}
	return u.AssignedHours
}

// =============================================================================
// METRICS - shared vocabulary across goals and progress
// =============================================================================

type Metric string

const (
	MetricPesos       Metric = "pesos"        // gross sales money
	MetricTickets     Metric = "tickets"      // ticket count
	MetricUnits       Metric = "units"        // total units
	MetricFootwear    Metric = "footwear"     // category units
	MetricApparel     Metric = "apparel"      // category units
	MetricShirts      Metric = "shirts"       // category units
	MetricAccessories Metric = "accessories"  // category units
	MetricSocks       Metric = "socks"        // category units
	MetricCreditPesos Metric = "credit_pesos" // credit-program money
	MetricCreditUnits Metric = "credit_units" // credit-program units
)

// MetricSet is a flat metric -> value mapping. A missing key reads as 0,
// which is exactly the semantics goals and progress records need.
type MetricSet map[Metric]float64

// Get returns the value for m, 0 when absent.
func (s MetricSet) Get(m Metric) float64 {
	if s == nil {
		return 0
	}
	return s[m]
}

// Add accumulates every metric of other into s.
func (s MetricSet) Add(other MetricSet) {
	for m, v := range other {
		s[m] += v
	}
}

// Clone returns an independent copy of s.
func (s MetricSet) Clone() MetricSet {
	out := make(MetricSet, len(s))
	for m, v := range s {
		out[m] = v
	}
	return out
}

// =============================================================================
// CALENDAR KEYS
// =============================================================================

// Month is a calendar month key in "2006-01" form.
type Month string

// DateKey is a calendar day key in "2006-01-02" form.
type DateKey string

// ParseMonth validates and returns a Month.
func ParseMonth(s string) (Month, error) {
	if _, err := time.Parse("2006-01", s); err != nil {
		return "", fmt.Errorf("invalid month %q: %w", s, err)
	}
	return Month(s), nil
}

// MonthOf returns the Month containing t.
func MonthOf(t time.Time) Month {
	return Month(t.Format("2006-01"))
}

// DateKeyOf returns the DateKey for t.
func DateKeyOf(t time.Time) DateKey {
	return DateKey(t.Format("2006-01-02"))
}

// Contains reports whether the given day falls in the month. Membership is
// a prefix match of the day key against the month key.
func (m Month) Contains(d DateKey) bool {
	return len(d) >= len(m) && string(d[:len(m)]) == string(m) &&
		(len(d) == len(m) || d[len(m)] == '-')
}

// Days returns the number of calendar days in the month. Returns 0 for a
// malformed month key.
func (m Month) Days() int {
	t, err := time.Parse("2006-01", string(m))
	if err != nil {
		return 0
	}
	return t.AddDate(0, 1, -1).Day()
}

func (m Month) String() string { return string(m) }

// =============================================================================
// SALE - single transaction record (ranking/reporting views)
// =============================================================================

type SaleCategory string

const (
	CategoryFootwear    SaleCategory = "footwear"
	CategoryApparel     SaleCategory = "apparel"
	CategoryShirts      SaleCategory = "shirts"
	CategoryAccessories SaleCategory = "accessories"
	CategorySocks       SaleCategory = "socks"
)

type PaymentType string

const (
	PaymentCash   PaymentType = "cash"
	PaymentCredit PaymentType = "credit"
	PaymentCard   PaymentType = "card"
)

// Sale is a single recorded transaction. Sales feed the ranking and
// reporting views; the commission pipeline itself scores progress records.
type Sale struct {
	ID         string
	SellerID   string
	SellerName string
	Amount     float64
	Units      int
	Category   SaleCategory
	Payment    PaymentType
	Date       DateKey
}

// =============================================================================
// MESSAGE - manager notice board entry
// =============================================================================

type Message struct {
	ID      string
	Content string
	Date    time.Time
}
