package commission_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcbanda/commission-engine/commission"
)

func roster() []commission.User {
	return []commission.User{
		{ID: "mgr", Name: "Admin", Role: commission.RoleManager, AssignedHours: 40},
		{ID: "ana", Name: "Ana", Role: commission.RoleSeller, AssignedHours: 35},
		{ID: "juan", Name: "Juan", Role: commission.RoleSeller, AssignedHours: 20},
		{ID: "luis", Name: "Luis", Role: commission.RoleCashier, AssignedHours: 30},
	}
}

func TestSellerParticipation_HourProportional(t *testing.T) {
	// Only sellers participate: 35 + 20 = 55 hours total.
	weights := commission.SellerParticipation(roster())

	require.Len(t, weights, 2)
	assert.InDelta(t, 35.0/55.0, weights["ana"], 1e-9)
	assert.InDelta(t, 20.0/55.0, weights["juan"], 1e-9)
}

func TestSellerParticipation_ZeroHourSum(t *testing.T) {
	users := []commission.User{
		{ID: "a", Role: commission.RoleSeller},
		{ID: "b", Role: commission.RoleSeller},
	}
	weights := commission.SellerParticipation(users)
	assert.Equal(t, 0.0, weights["a"])
	assert.Equal(t, 0.0, weights["b"])
}

func TestDistribute_SellerTargetsRounded(t *testing.T) {
	// GIVEN: Team money goal 150000 over sellers with 35 and 20 hours
	// WHEN: Distributing
	// THEN: 150000*35/55 rounds to 95455, 150000*20/55 to 54545

	team := commission.TeamGoalSet{Pesos: 150000, Footwear: 100, Tickets: 55}
	goals := commission.Distribute(team, roster())

	ana := goals["ana"]
	require.NotNil(t, ana.Seller)
	assert.Equal(t, commission.RoleSeller, ana.Role)
	assert.Equal(t, 95455.0, ana.Seller.Pesos)
	assert.Equal(t, 64.0, ana.Seller.Footwear)
	assert.Equal(t, 35.0, ana.Seller.Tickets)

	juan := goals["juan"]
	require.NotNil(t, juan.Seller)
	assert.Equal(t, 54545.0, juan.Seller.Pesos)
	assert.Equal(t, 36.0, juan.Seller.Footwear)
	assert.Equal(t, 20.0, juan.Seller.Tickets)
}

func TestDistribute_CashierGetsTeamTargetsVerbatim(t *testing.T) {
	// Cashiers are not hour-weighted: every cashier receives the team
	// credit and sock targets as-is.

	team := commission.TeamGoalSet{CreditPesos: 500000, CreditUnits: 200, Socks: 50, Pesos: 3000000}
	goals := commission.Distribute(team, roster())

	luis := goals["luis"]
	require.NotNil(t, luis.Cashier)
	assert.Equal(t, commission.RoleCashier, luis.Role)
	assert.Equal(t, 500000.0, luis.Cashier.CreditPesos)
	assert.Equal(t, 200.0, luis.Cashier.CreditUnits)
	assert.Equal(t, 50.0, luis.Cashier.Socks)
}

func TestDistribute_ManagerGetsNoGoalSet(t *testing.T) {
	goals := commission.Distribute(commission.TeamGoalSet{Pesos: 100}, roster())
	_, ok := goals["mgr"]
	assert.False(t, ok, "managers are scored store-wide, no personal set")
}

func TestBuildGoal_AssemblesMonthRecord(t *testing.T) {
	team := commission.TeamGoalSet{Pesos: 150000}
	goal := commission.BuildGoal("2025-03", team, roster())

	assert.Equal(t, commission.Month("2025-03"), goal.Month)
	assert.Equal(t, team, goal.TeamGoal)
	assert.Len(t, goal.UserGoals, 3)
}

func TestPreviewUserGoal_MatchesDistribute(t *testing.T) {
	team := commission.TeamGoalSet{Pesos: 150000, Footwear: 100}
	users := roster()

	preview, ok := commission.PreviewUserGoal(team, users, "ana")
	require.True(t, ok)
	assert.Equal(t, commission.Distribute(team, users)["ana"], preview)

	cashier, ok := commission.PreviewUserGoal(team, users, "luis")
	require.True(t, ok)
	assert.Equal(t, commission.Distribute(team, users)["luis"], cashier)
}

func TestPreviewUserGoal_UnknownOrManager(t *testing.T) {
	team := commission.TeamGoalSet{Pesos: 150000}

	_, ok := commission.PreviewUserGoal(team, roster(), "ghost")
	assert.False(t, ok)

	_, ok = commission.PreviewUserGoal(team, roster(), "mgr")
	assert.False(t, ok)
}

func TestUserGoal_Validate(t *testing.T) {
	valid := commission.NewSellerGoal(commission.SellerGoalSet{Pesos: 100})
	assert.NoError(t, valid.Validate())

	assert.Error(t, commission.UserGoal{Role: commission.RoleSeller}.Validate())
	assert.Error(t, commission.UserGoal{
		Role:    commission.RoleCashier,
		Seller:  &commission.SellerGoalSet{},
		Cashier: &commission.CashierGoalSet{},
	}.Validate())
	assert.Error(t, commission.UserGoal{Role: commission.RoleManager}.Validate())
}
