/*
engine.go - The scoring facade

PURPOSE:
  Ties the stores, the weighted composition and the tier mapping into the
  operations the views need: commit-and-distribute a team goal, and build
  commission statements per role for a given month.

DETERMINISM:
  Every operation takes the target month as an explicit parameter. The
  engine never reads the wall clock, so a statement for 2025-03 computed
  today equals the one computed next year from the same records.

MISSING GOALS:
  A month without a Goal yields ErrNoGoalDefined from every scoring
  operation. A staff member without a goal set in an otherwise defined
  month is reported in the statement's MissingGoalSets, or as a
  NoUserGoalError from the single-user operation. Neither is a fault.

SEE ALSO:
  - score.go, tiers.go: the arithmetic this facade orchestrates
  - distribute.go:      runs on CommitTeamGoal
*/
package commission

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// Engine computes commission statements over a Store under a Plan.
type Engine struct {
	store Store
	plan  Plan
}

// NewEngine creates an engine. A zero-value plan falls back to the
// shipped defaults.
func NewEngine(store Store, plan Plan) *Engine {
	if plan.ManagerWeights == nil {
		plan.ManagerWeights = ManagerWeights()
	}
	if plan.Tiers == nil {
		plan.Tiers = DefaultTiers()
	}
	return &Engine{store: store, plan: plan}
}

// Store exposes the underlying store bundle.
func (e *Engine) Store() Store { return e.store }

// Plan exposes the active plan.
func (e *Engine) Plan() Plan { return e.plan }

// =============================================================================
// GOAL OPERATIONS
// =============================================================================

// CommitTeamGoal distributes the team goal across the current roster and
// stores the resulting Goal, replacing any previous record for the month.
func (e *Engine) CommitTeamGoal(ctx context.Context, month Month, team TeamGoalSet) (Goal, error) {
	users, err := e.store.ListUsers(ctx)
	if err != nil {
		return Goal{}, fmt.Errorf("list users: %w", err)
	}
	goal := BuildGoal(month, team, users)
	if err := e.store.SetGoal(ctx, goal); err != nil {
		return Goal{}, fmt.Errorf("set goal: %w", err)
	}
	return goal, nil
}

// UserGoal returns the stored goal set for one user in a month.
func (e *Engine) UserGoal(ctx context.Context, userID string, month Month) (UserGoal, error) {
	goal, err := e.store.GetGoal(ctx, month)
	if err != nil {
		return UserGoal{}, err
	}
	return goal.UserGoalFor(userID)
}

// =============================================================================
// STATEMENTS
// =============================================================================

// ManagerStatement is the manager's monthly commission breakdown.
type ManagerStatement struct {
	User       User            `json:"user"`
	Score      ManagerScore    `json:"score"`
	Commission decimal.Decimal `json:"commission"`
}

// StaffStatement is a seller's or cashier's monthly commission breakdown.
// Exactly one of Seller/Cashier is non-nil, matching User.Role.
type StaffStatement struct {
	User       User            `json:"user"`
	Seller     *SellerScore    `json:"seller,omitempty"`
	Cashier    *CashierScore   `json:"cashier,omitempty"`
	Final      float64         `json:"final"`
	Commission decimal.Decimal `json:"commission"`
}

// TeamCommissions is the full commissions view for a month.
type TeamCommissions struct {
	Month   Month             `json:"month"`
	Manager *ManagerStatement `json:"manager,omitempty"`
	Staff   []StaffStatement  `json:"staff"`

	// MissingGoalSets lists sellers/cashiers present on the roster but
	// absent from the month's distributed goals. Callers render guidance
	// for them instead of a score.
	MissingGoalSets []User `json:"missing_goal_sets,omitempty"`
}

// ManagerStatement scores the store aggregate against the team goal for
// the roster's manager. Returns ErrNoGoalDefined when the month has no
// goal and ErrUserNotFound when the roster has no manager.
func (e *Engine) ManagerStatement(ctx context.Context, month Month) (*ManagerStatement, error) {
	goal, err := e.store.GetGoal(ctx, month)
	if err != nil {
		return nil, err
	}
	users, err := e.store.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	var manager *User
	for i := range users {
		if users[i].Role == RoleManager {
			manager = &users[i]
			break
		}
	}
	if manager == nil {
		return nil, fmt.Errorf("roster has no manager: %w", ErrUserNotFound)
	}

	storeAgg, err := e.storeAggregate(ctx, month)
	if err != nil {
		return nil, err
	}
	score := ComposeManager(storeAgg, goal.TeamGoal, e.plan.ManagerWeights)
	return &ManagerStatement{
		User:       *manager,
		Score:      score,
		Commission: e.plan.ScheduleFor(*manager).Commission(score.Final),
	}, nil
}

// UserStatement scores one seller or cashier for a month. Managers are
// scored store-wide, not individually; asking for a manager statement
// here returns ErrRoleMismatch.
func (e *Engine) UserStatement(ctx context.Context, userID string, month Month) (*StaffStatement, error) {
	user, err := e.store.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Role == RoleManager {
		return nil, fmt.Errorf("manager is scored store-wide: %w", ErrRoleMismatch)
	}
	goal, err := e.store.GetGoal(ctx, month)
	if err != nil {
		return nil, err
	}
	userGoal, err := goal.UserGoalFor(userID)
	if err != nil {
		return nil, err
	}
	storeAgg, err := e.storeAggregate(ctx, month)
	if err != nil {
		return nil, err
	}
	records, err := e.store.ListIndividualProgressByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list progress: %w", err)
	}
	ownAgg := AggregateIndividual(records, userID, month)
	return e.composeStaff(user, userGoal, ownAgg, storeAgg, goal.TeamGoal)
}

// TeamCommissions builds the whole month's commissions view: the manager
// plus every seller and cashier with a distributed goal set.
func (e *Engine) TeamCommissions(ctx context.Context, month Month) (*TeamCommissions, error) {
	goal, err := e.store.GetGoal(ctx, month)
	if err != nil {
		return nil, err
	}
	users, err := e.store.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	storeAgg, err := e.storeAggregate(ctx, month)
	if err != nil {
		return nil, err
	}
	records, err := e.store.ListIndividualProgress(ctx)
	if err != nil {
		return nil, fmt.Errorf("list progress: %w", err)
	}

	out := &TeamCommissions{Month: month}
	for _, u := range users {
		switch u.Role {
		case RoleManager:
			if out.Manager == nil {
				score := ComposeManager(storeAgg, goal.TeamGoal, e.plan.ManagerWeights)
				out.Manager = &ManagerStatement{
					User:       u,
					Score:      score,
					Commission: e.plan.ScheduleFor(u).Commission(score.Final),
				}
			}
		case RoleSeller, RoleCashier:
			userGoal, goalErr := goal.UserGoalFor(u.ID)
			if goalErr != nil {
				out.MissingGoalSets = append(out.MissingGoalSets, u)
				continue
			}
			ownAgg := AggregateIndividual(records, u.ID, month)
			stmt, composeErr := e.composeStaff(u, userGoal, ownAgg, storeAgg, goal.TeamGoal)
			if composeErr != nil {
				return nil, composeErr
			}
			out.Staff = append(out.Staff, *stmt)
		}
	}

	// Sellers first, then cashiers, each alphabetically - matches how the
	// commissions view lists the team.
	sort.SliceStable(out.Staff, func(i, j int) bool {
		a, b := out.Staff[i].User, out.Staff[j].User
		if a.Role != b.Role {
			return a.Role == RoleSeller
		}
		return a.Name < b.Name
	})
	return out, nil
}

// =============================================================================
// ROSTER OPERATIONS
// =============================================================================

// RemoveUser deletes a user from the roster after checking the
// data-integrity precondition: users referenced by historical sales are
// never removed while that history exists.
func (e *Engine) RemoveUser(ctx context.Context, userID string) error {
	if _, err := e.store.GetUser(ctx, userID); err != nil {
		return err
	}
	sales, err := e.store.ListSalesBySeller(ctx, userID)
	if err != nil {
		return fmt.Errorf("list sales: %w", err)
	}
	if len(sales) > 0 {
		return fmt.Errorf("user %s: %w", userID, ErrUserHasSales)
	}
	return e.store.DeleteUser(ctx, userID)
}

// =============================================================================
// INTERNAL
// =============================================================================

func (e *Engine) storeAggregate(ctx context.Context, month Month) (MetricSet, error) {
	records, err := e.store.ListStoreProgress(ctx)
	if err != nil {
		return nil, fmt.Errorf("list store progress: %w", err)
	}
	return AggregateStore(records, month), nil
}

func (e *Engine) composeStaff(u User, ug UserGoal, ownAgg, storeAgg MetricSet, team TeamGoalSet) (*StaffStatement, error) {
	schedule := e.plan.ScheduleFor(u)
	switch u.Role {
	case RoleSeller:
		if ug.Seller == nil {
			return nil, fmt.Errorf("user %s: stored goal is not a seller goal: %w", u.ID, ErrRoleMismatch)
		}
		score := ComposeSeller(ownAgg, *ug.Seller, storeAgg, team)
		return &StaffStatement{
			User:       u,
			Seller:     &score,
			Final:      score.Final,
			Commission: schedule.Commission(score.Final),
		}, nil
	case RoleCashier:
		if ug.Cashier == nil {
			return nil, fmt.Errorf("user %s: stored goal is not a cashier goal: %w", u.ID, ErrRoleMismatch)
		}
		score := ComposeCashier(ownAgg, *ug.Cashier, storeAgg, team)
		return &StaffStatement{
			User:       u,
			Cashier:    &score,
			Final:      score.Final,
			Commission: schedule.Commission(score.Final),
		}, nil
	}
	return nil, fmt.Errorf("user %s role %q: %w", u.ID, u.Role, ErrRoleMismatch)
}
