package commission_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcbanda/commission-engine/commission"
	"github.com/mcbanda/commission-engine/commission/store"
)

// =============================================================================
// TEST SETUP
// =============================================================================

// teamGoal uses targets divisible by the 55-hour seller sum so the
// distributed per-seller goals come out as exact integers.
func teamGoal() commission.TeamGoalSet {
	return commission.TeamGoalSet{
		Pesos:       110000,
		Tickets:     110,
		Units:       220,
		CreditPesos: 5500,
		CreditUnits: 55,
		Footwear:    55,
		Apparel:     110,
		Shirts:      55,
		Accessories: 55,
		Socks:       20,
	}
}

func newTestEngine(t *testing.T) (*commission.Engine, *store.Memory) {
	t.Helper()
	mem := store.NewMemory()
	engine := commission.NewEngine(mem, commission.Plan{})

	ctx := context.Background()
	for _, u := range roster() {
		require.NoError(t, mem.CreateUser(ctx, u))
	}
	return engine, mem
}

// fullStoreDay writes one store record hitting every team target.
func fullStoreDay(t *testing.T, mem *store.Memory, date commission.DateKey) {
	t.Helper()
	team := teamGoal()
	require.NoError(t, mem.CreateStoreProgress(context.Background(), commission.StoreProgress{
		ID:          "sp-" + string(date),
		Date:        date,
		Pesos:       team.Pesos,
		Tickets:     team.Tickets,
		Units:       team.Units,
		Footwear:    team.Footwear,
		Apparel:     team.Apparel,
		Shirts:      team.Shirts,
		Accessories: team.Accessories,
		Socks:       team.Socks,
		CreditPesos: team.CreditPesos,
		CreditUnits: team.CreditUnits,
	}))
}

// =============================================================================
// MISSING GOAL STATES
// =============================================================================

func TestEngine_NoGoalDefined(t *testing.T) {
	// GIVEN: A month with no committed goal
	// WHEN: Asking for any statement
	// THEN: ErrNoGoalDefined, which reads as guidance, not a fault

	engine, _ := newTestEngine(t)
	ctx := context.Background()

	_, err := engine.ManagerStatement(ctx, "2025-03")
	assert.ErrorIs(t, err, commission.ErrNoGoalDefined)
	assert.True(t, commission.IsGuidance(err))

	_, err = engine.UserStatement(ctx, "ana", "2025-03")
	assert.ErrorIs(t, err, commission.ErrNoGoalDefined)

	_, err = engine.TeamCommissions(ctx, "2025-03")
	assert.ErrorIs(t, err, commission.ErrNoGoalDefined)
}

func TestEngine_NoUserGoal(t *testing.T) {
	// A user hired after the month's goal was committed has no goal set.

	engine, mem := newTestEngine(t)
	ctx := context.Background()

	_, err := engine.CommitTeamGoal(ctx, "2025-03", teamGoal())
	require.NoError(t, err)

	late := commission.User{ID: "late", Name: "Pedro", Role: commission.RoleSeller, AssignedHours: 30}
	require.NoError(t, mem.CreateUser(ctx, late))

	_, err = engine.UserStatement(ctx, "late", "2025-03")
	assert.ErrorIs(t, err, commission.ErrNoUserGoal)
	assert.True(t, commission.IsGuidance(err))

	var noGoal *commission.NoUserGoalError
	require.ErrorAs(t, err, &noGoal)
	assert.Equal(t, "late", noGoal.UserID)
	assert.Equal(t, commission.Month("2025-03"), noGoal.Month)
}

// =============================================================================
// GOAL COMMIT
// =============================================================================

func TestEngine_CommitTeamGoal_DistributesAndStores(t *testing.T) {
	engine, mem := newTestEngine(t)
	ctx := context.Background()

	goal, err := engine.CommitTeamGoal(ctx, "2025-03", teamGoal())
	require.NoError(t, err)

	// 110000 * 35/55 = 70000 and * 20/55 = 40000, exactly.
	require.NotNil(t, goal.UserGoals["ana"].Seller)
	assert.Equal(t, 70000.0, goal.UserGoals["ana"].Seller.Pesos)
	require.NotNil(t, goal.UserGoals["juan"].Seller)
	assert.Equal(t, 40000.0, goal.UserGoals["juan"].Seller.Pesos)

	stored, err := mem.GetGoal(ctx, "2025-03")
	require.NoError(t, err)
	assert.Equal(t, goal, stored)

	// Recommitting replaces the record wholesale.
	smaller := commission.TeamGoalSet{Pesos: 55000}
	_, err = engine.CommitTeamGoal(ctx, "2025-03", smaller)
	require.NoError(t, err)

	stored, err = mem.GetGoal(ctx, "2025-03")
	require.NoError(t, err)
	assert.Equal(t, 35000.0, stored.UserGoals["ana"].Seller.Pesos)
	assert.Equal(t, 0.0, stored.UserGoals["ana"].Seller.Footwear)
}

// =============================================================================
// MANAGER STATEMENT
// =============================================================================

func TestEngine_ManagerStatement_FullAttainment(t *testing.T) {
	// GIVEN: A store that hit every team target exactly
	// WHEN: Building the manager statement
	// THEN: Final score 1.0 and the theoretical payout 280000

	engine, mem := newTestEngine(t)
	ctx := context.Background()

	_, err := engine.CommitTeamGoal(ctx, "2025-03", teamGoal())
	require.NoError(t, err)
	fullStoreDay(t, mem, "2025-03-10")

	stmt, err := engine.ManagerStatement(ctx, "2025-03")
	require.NoError(t, err)

	assert.Equal(t, "mgr", stmt.User.ID)
	assert.InDelta(t, 1.0, stmt.Score.Final, 1e-9)
	assert.InDelta(t, 280000, stmt.Commission.InexactFloat64(), 1)
}

func TestEngine_ManagerStatement_NoManagerOnRoster(t *testing.T) {
	mem := store.NewMemory()
	engine := commission.NewEngine(mem, commission.Plan{})
	ctx := context.Background()

	require.NoError(t, mem.CreateUser(ctx, commission.User{
		ID: "ana", Name: "Ana", Role: commission.RoleSeller, AssignedHours: 35,
	}))
	_, err := engine.CommitTeamGoal(ctx, "2025-03", teamGoal())
	require.NoError(t, err)

	_, err = engine.ManagerStatement(ctx, "2025-03")
	assert.ErrorIs(t, err, commission.ErrUserNotFound)
}

// =============================================================================
// STAFF STATEMENTS
// =============================================================================

// sellerAtGoal writes one progress entry hitting ana's distributed
// targets exactly.
func sellerAtGoal(t *testing.T, mem *store.Memory, userID string, goals commission.SellerGoalSet, date commission.DateKey) {
	t.Helper()
	require.NoError(t, mem.CreateIndividualProgress(context.Background(), commission.IndividualProgress{
		ID:          "ip-" + userID + "-" + string(date),
		UserID:      userID,
		Date:        date,
		Pesos:       goals.Pesos,
		Footwear:    goals.Footwear,
		Apparel:     goals.Apparel,
		Shirts:      goals.Shirts,
		Accessories: goals.Accessories,
		CreditPesos: goals.CreditPesos,
		CreditUnits: goals.CreditUnits,
	}))
}

func TestEngine_UserStatement_SellerFullAttainment(t *testing.T) {
	// Seller at 100% of every own target in a store at 100% of the money
	// goal: final 1.0, paid the theoretical 140000.

	engine, mem := newTestEngine(t)
	ctx := context.Background()

	goal, err := engine.CommitTeamGoal(ctx, "2025-03", teamGoal())
	require.NoError(t, err)
	fullStoreDay(t, mem, "2025-03-10")
	sellerAtGoal(t, mem, "ana", *goal.UserGoals["ana"].Seller, "2025-03-12")

	stmt, err := engine.UserStatement(ctx, "ana", "2025-03")
	require.NoError(t, err)

	require.NotNil(t, stmt.Seller)
	assert.Nil(t, stmt.Cashier)
	assert.InDelta(t, 1.0, stmt.Seller.Own, 1e-9)
	assert.InDelta(t, 1.0, stmt.Seller.Store, 1e-9)
	assert.InDelta(t, 1.0, stmt.Final, 1e-9)
	assert.InDelta(t, 140000, stmt.Commission.InexactFloat64(), 1)
}

func TestEngine_UserStatement_ReducedHoursSeller(t *testing.T) {
	// Juan has 20 assigned hours, at the reduced-schedule cutoff: the same
	// 100% attainment pays the reduced theoretical 70000.

	engine, mem := newTestEngine(t)
	ctx := context.Background()

	goal, err := engine.CommitTeamGoal(ctx, "2025-03", teamGoal())
	require.NoError(t, err)
	fullStoreDay(t, mem, "2025-03-10")
	sellerAtGoal(t, mem, "juan", *goal.UserGoals["juan"].Seller, "2025-03-12")

	stmt, err := engine.UserStatement(ctx, "juan", "2025-03")
	require.NoError(t, err)

	assert.InDelta(t, 1.0, stmt.Final, 1e-9)
	assert.InDelta(t, 70000, stmt.Commission.InexactFloat64(), 1)
}

func TestEngine_UserStatement_SellerNoProgress_PaysFloor(t *testing.T) {
	engine, _ := newTestEngine(t)
	ctx := context.Background()

	_, err := engine.CommitTeamGoal(ctx, "2025-03", teamGoal())
	require.NoError(t, err)

	stmt, err := engine.UserStatement(ctx, "ana", "2025-03")
	require.NoError(t, err)

	assert.Equal(t, 0.0, stmt.Final)
	assert.Equal(t, "40000", stmt.Commission.String())
}

func TestEngine_UserStatement_CashierFullAttainment(t *testing.T) {
	// Cashier own weights sum to 0.75: with the store at 100%, a cashier
	// hitting every own target lands at 0.825 and is paid on the lower
	// tier segment: 40000 + 0.125 * 40000 = 45000.

	engine, mem := newTestEngine(t)
	ctx := context.Background()

	_, err := engine.CommitTeamGoal(ctx, "2025-03", teamGoal())
	require.NoError(t, err)
	fullStoreDay(t, mem, "2025-03-10")

	team := teamGoal()
	require.NoError(t, mem.CreateIndividualProgress(ctx, commission.IndividualProgress{
		ID:          "ip-luis",
		UserID:      "luis",
		Date:        "2025-03-12",
		Socks:       team.Socks,
		CreditPesos: team.CreditPesos,
		CreditUnits: team.CreditUnits,
	}))

	stmt, err := engine.UserStatement(ctx, "luis", "2025-03")
	require.NoError(t, err)

	require.NotNil(t, stmt.Cashier)
	assert.Nil(t, stmt.Seller)
	assert.InDelta(t, 0.75, stmt.Cashier.Own, 1e-9)
	assert.InDelta(t, 0.825, stmt.Final, 1e-9)
	assert.InDelta(t, 45000, stmt.Commission.InexactFloat64(), 1)
}

func TestEngine_UserStatement_ManagerRejected(t *testing.T) {
	engine, _ := newTestEngine(t)
	ctx := context.Background()

	_, err := engine.CommitTeamGoal(ctx, "2025-03", teamGoal())
	require.NoError(t, err)

	_, err = engine.UserStatement(ctx, "mgr", "2025-03")
	assert.ErrorIs(t, err, commission.ErrRoleMismatch)
	assert.True(t, commission.IsClientError(err))
}

// =============================================================================
// TEAM VIEW
// =============================================================================

func TestEngine_TeamCommissions(t *testing.T) {
	// GIVEN: A committed goal, plus one seller hired afterwards
	// WHEN: Building the team view
	// THEN: Manager present, staff sorted sellers-first alphabetically,
	//       the late hire listed under missing goal sets

	engine, mem := newTestEngine(t)
	ctx := context.Background()

	_, err := engine.CommitTeamGoal(ctx, "2025-03", teamGoal())
	require.NoError(t, err)
	fullStoreDay(t, mem, "2025-03-10")

	late := commission.User{ID: "late", Name: "Pedro", Role: commission.RoleSeller, AssignedHours: 30}
	require.NoError(t, mem.CreateUser(ctx, late))

	view, err := engine.TeamCommissions(ctx, "2025-03")
	require.NoError(t, err)

	require.NotNil(t, view.Manager)
	assert.Equal(t, "mgr", view.Manager.User.ID)

	require.Len(t, view.Staff, 3)
	assert.Equal(t, "ana", view.Staff[0].User.ID)
	assert.Equal(t, "juan", view.Staff[1].User.ID)
	assert.Equal(t, "luis", view.Staff[2].User.ID, "cashiers after sellers")

	require.Len(t, view.MissingGoalSets, 1)
	assert.Equal(t, "late", view.MissingGoalSets[0].ID)
}

// =============================================================================
// ROSTER OPERATIONS
// =============================================================================

func TestEngine_RemoveUser_BlockedBySalesHistory(t *testing.T) {
	engine, mem := newTestEngine(t)
	ctx := context.Background()

	require.NoError(t, mem.CreateSale(ctx, commission.Sale{
		ID: "s1", SellerID: "ana", SellerName: "Ana",
		Amount: 5000, Units: 2, Date: "2025-03-01",
	}))

	err := engine.RemoveUser(ctx, "ana")
	assert.ErrorIs(t, err, commission.ErrUserHasSales)
	assert.True(t, commission.IsClientError(err))

	// Ana stays on the roster.
	_, err = mem.GetUser(ctx, "ana")
	assert.NoError(t, err)
}

func TestEngine_RemoveUser_CleanHistory(t *testing.T) {
	engine, mem := newTestEngine(t)
	ctx := context.Background()

	require.NoError(t, engine.RemoveUser(ctx, "juan"))

	_, err := mem.GetUser(ctx, "juan")
	assert.ErrorIs(t, err, commission.ErrUserNotFound)
}

func TestEngine_RemoveUser_Unknown(t *testing.T) {
	engine, _ := newTestEngine(t)
	err := engine.RemoveUser(context.Background(), "ghost")
	assert.ErrorIs(t, err, commission.ErrUserNotFound)
}
