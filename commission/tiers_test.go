package commission_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mcbanda/commission-engine/commission"
)

func sellerSchedule() commission.TierSchedule {
	return commission.DefaultTiers()[commission.TierSeller]
}

func TestTierSchedule_FloorAndCeiling(t *testing.T) {
	s := sellerSchedule()

	// Below 0.8 the payout floors at min, all the way to zero.
	assert.Equal(t, "40000", s.Commission(0).String())
	assert.Equal(t, "40000", s.Commission(0.5).String())
	assert.Equal(t, "40000", s.Commission(0.7999).String())

	// At and above 1.2 the payout is max.
	assert.Equal(t, "192000", s.Commission(1.2).String())
	assert.Equal(t, "192000", s.Commission(2.0).String())
}

func TestTierSchedule_LowerSegment(t *testing.T) {
	// GIVEN: Seller anchors 40000/140000/192000
	// WHEN: Scoring inside [0.8, 1.0)
	// THEN: Linear from min to theo over the segment

	s := sellerSchedule()

	assert.Equal(t, "40000", s.Commission(0.8).String())
	assert.Equal(t, "90000", s.Commission(0.9).String())
	assert.Equal(t, "140000", s.Commission(1.0).String())
}

func TestTierSchedule_UpperSegmentUsesFullSpan(t *testing.T) {
	// The upper segment interpolates over (max - min), not (max - theo),
	// so it overshoots max just below 1.2 and snaps to max at 1.2. The
	// span is verbatim from the source rules.

	s := sellerSchedule()

	// 1.1: theo + 0.5 * (192000 - 40000) = 216000
	assert.Equal(t, "216000", s.Commission(1.1).String())

	// Just below the ceiling the payout exceeds max...
	assert.True(t, s.Commission(1.19).GreaterThan(s.Max))
	// ...and at the ceiling it is exactly max.
	assert.True(t, s.Commission(1.2).Equal(s.Max))
}

func TestTierSchedule_AllRoles(t *testing.T) {
	tiers := commission.DefaultTiers()

	assert.Equal(t, "225000", tiers[commission.TierManager].Commission(0.9).String())
	assert.Equal(t, "280000", tiers[commission.TierManager].Commission(1.0).String())
	assert.Equal(t, "70000", tiers[commission.TierSellerReduced].Commission(1.0).String())
	assert.Equal(t, "60000", tiers[commission.TierCashier].Commission(0.9).String())
	assert.Equal(t, "96000", tiers[commission.TierCashier].Commission(1.2).String())
}

func TestTierFor_SellerHoursCutoff(t *testing.T) {
	seller := func(hours float64) commission.User {
		return commission.User{ID: "s", Role: commission.RoleSeller, AssignedHours: hours}
	}

	assert.Equal(t, commission.TierSeller, commission.TierFor(seller(35)))
	assert.Equal(t, commission.TierSeller, commission.TierFor(seller(21)))
	assert.Equal(t, commission.TierSellerReduced, commission.TierFor(seller(20)))
	assert.Equal(t, commission.TierSellerReduced, commission.TierFor(seller(4)))

	// Unset hours fall back to the 40-hour default, i.e. the full tier.
	assert.Equal(t, commission.TierSeller, commission.TierFor(seller(0)))
}

func TestTierFor_OtherRoles(t *testing.T) {
	assert.Equal(t, commission.TierManager,
		commission.TierFor(commission.User{Role: commission.RoleManager}))
	assert.Equal(t, commission.TierCashier,
		commission.TierFor(commission.User{Role: commission.RoleCashier}))
}

func TestPlan_ScheduleFor(t *testing.T) {
	plan := commission.DefaultPlan()

	reduced := commission.User{Role: commission.RoleSeller, AssignedHours: 16}
	assert.Equal(t, "20000", plan.ScheduleFor(reduced).Min.String())

	manager := commission.User{Role: commission.RoleManager}
	assert.Equal(t, "384000", plan.ScheduleFor(manager).Max.String())
}
