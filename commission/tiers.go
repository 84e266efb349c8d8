/*
tiers.go - Score to payout mapping

PURPOSE:
  Maps a final composite score to a currency amount via a per-role (and,
  for sellers, per-hours) schedule of three anchor points:

    min  - paid at score 0.8 (and below: the floor never reduces further)
    theo - the theoretical/target payout, paid at score 1.0
    max  - paid at score 1.2 and above

PIECEWISE RULE:
    score <  0.8          -> min
    0.8 <= score < 1.0    -> min  + (score-0.8)/0.2 * (theo - min)
    1.0 <= score < 1.2    -> theo + (score-1.0)/0.2 * (max - min)
    score >= 1.2          -> max

  The upper segment interpolates over (max - min), NOT (max - theo), so
  the curve overshoots max as the score approaches 1.2 and snaps down to
  max at exactly 1.2. The span choice is kept verbatim from the source
  rules; do not "fix" it to (max - theo).

PRECISION:
  Anchors and payouts are decimal.Decimal. Scores are float64 ratios and
  are converted at the boundary.
*/
package commission

import "github.com/shopspring/decimal"

// =============================================================================
// TIER SCHEDULE
// =============================================================================

// TierKey selects a payout schedule.
type TierKey string

const (
	TierManager       TierKey = "manager"
	TierSeller        TierKey = "seller"
	TierSellerReduced TierKey = "seller_reduced" // <= ReducedHoursThreshold assigned hours
	TierCashier       TierKey = "cashier"
)

// ReducedHoursThreshold is the assigned-hours cutoff at or below which a
// seller is paid on the reduced schedule.
const ReducedHoursThreshold = 20

// TierSchedule holds the three payout anchors for one role/tier.
type TierSchedule struct {
	Min  decimal.Decimal `json:"min" yaml:"min"`
	Theo decimal.Decimal `json:"theo" yaml:"theo"`
	Max  decimal.Decimal `json:"max" yaml:"max"`
}

// Interpolation breakpoints.
var (
	floorScore   = decimal.NewFromFloat(0.8)
	targetScore  = decimal.NewFromFloat(1.0)
	ceilingScore = decimal.NewFromFloat(1.2)
	segmentSpan  = decimal.NewFromFloat(0.2)
)

// Commission maps a final composite score to the payout for this schedule.
func (t TierSchedule) Commission(score float64) decimal.Decimal {
	s := decimal.NewFromFloat(score)

	if s.LessThan(floorScore) {
		return t.Min
	}
	if s.GreaterThanOrEqual(ceilingScore) {
		return t.Max
	}
	if s.LessThan(targetScore) {
		frac := s.Sub(floorScore).Div(segmentSpan)
		return t.Min.Add(frac.Mul(t.Theo.Sub(t.Min)))
	}
	frac := s.Sub(targetScore).Div(segmentSpan)
	return t.Theo.Add(frac.Mul(t.Max.Sub(t.Min)))
}

// =============================================================================
// DEFAULT SCHEDULES
// =============================================================================

func anchors(min, theo, max int64) TierSchedule {
	return TierSchedule{
		Min:  decimal.NewFromInt(min),
		Theo: decimal.NewFromInt(theo),
		Max:  decimal.NewFromInt(max),
	}
}

// DefaultTiers returns the shipped payout schedules, in currency units.
func DefaultTiers() map[TierKey]TierSchedule {
	return map[TierKey]TierSchedule{
		TierManager:       anchors(170000, 280000, 384000),
		TierSeller:        anchors(40000, 140000, 192000),
		TierSellerReduced: anchors(20000, 70000, 96000),
		TierCashier:       anchors(40000, 80000, 96000),
	}
}

// TierFor selects the schedule key for a user. Sellers at or below the
// reduced-hours threshold get the reduced schedule; unset hours default
// to DefaultAssignedHours.
func TierFor(u User) TierKey {
	switch u.Role {
	case RoleManager:
		return TierManager
	case RoleCashier:
		return TierCashier
	default:
		if u.Hours() <= ReducedHoursThreshold {
			return TierSellerReduced
		}
		return TierSeller
	}
}

// =============================================================================
// PLAN - composition tables + schedules as one configurable unit
// =============================================================================

// Plan bundles the manager weight table with the tier schedules. The
// seller/cashier group weights are structural and not part of the plan.
type Plan struct {
	ManagerWeights WeightTable              `json:"manager_weights" yaml:"manager_weights"`
	Tiers          map[TierKey]TierSchedule `json:"tiers" yaml:"tiers"`
}

// DefaultPlan returns the shipped plan.
func DefaultPlan() Plan {
	return Plan{
		ManagerWeights: ManagerWeights(),
		Tiers:          DefaultTiers(),
	}
}

// ScheduleFor returns the payout schedule for a user under this plan.
func (p Plan) ScheduleFor(u User) TierSchedule {
	return p.Tiers[TierFor(u)]
}
