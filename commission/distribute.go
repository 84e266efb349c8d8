/*
distribute.go - Team goal distribution

PURPOSE:
  Runs once when a manager commits a team goal for a month. Splits the
  team targets into per-user goal sets:

  Sellers:  participation = assignedHours / sum(assignedHours over sellers)
            (0 if the sum is 0); every seller metric is
            round(teamMetric * participation). Tickets and units are
            distributed too even though they do not enter scoring.
  Cashiers: receive the team credit-money, credit-units and sock targets
            directly - unweighted, identical across all cashiers.

  The output fully replaces any previously stored per-user goal sets for
  the month: committing is a wholesale overwrite of the month's Goal.

NOTE:
  Distribution happens at goal-definition time, not scoring time. Later
  roster or hours changes do not retroactively reshape stored goals.
*/
package commission

import "math"

// SellerParticipation returns each seller's hour-proportional weight.
// Only sellers participate; a zero hour sum yields zero weights. Unset
// hours count as 0 here, the 40-hour fallback applies to tier selection
// only.
func SellerParticipation(users []User) map[string]float64 {
	var total float64
	for _, u := range users {
		if u.Role == RoleSeller {
			total += u.AssignedHours
		}
	}
	weights := make(map[string]float64)
	for _, u := range users {
		if u.Role != RoleSeller {
			continue
		}
		if total > 0 {
			weights[u.ID] = u.AssignedHours / total
		} else {
			weights[u.ID] = 0
		}
	}
	return weights
}

// distributeSeller scales every seller metric of the team goal by the
// participation weight, rounding to the nearest whole target.
func distributeSeller(team TeamGoalSet, participation float64) SellerGoalSet {
	share := func(v float64) float64 { return math.Round(v * participation) }
	return SellerGoalSet{
		Pesos:       share(team.Pesos),
		Tickets:     share(team.Tickets),
		Units:       share(team.Units),
		CreditPesos: share(team.CreditPesos),
		CreditUnits: share(team.CreditUnits),
		Footwear:    share(team.Footwear),
		Apparel:     share(team.Apparel),
		Shirts:      share(team.Shirts),
		Accessories: share(team.Accessories),
	}
}

// distributeCashier copies the cashier-relevant team targets verbatim.
func distributeCashier(team TeamGoalSet) CashierGoalSet {
	return CashierGoalSet{
		CreditPesos: team.CreditPesos,
		CreditUnits: team.CreditUnits,
		Socks:       team.Socks,
	}
}

// Distribute splits a team goal into per-user goal sets for every seller
// and cashier on the roster. Managers receive no personal goal set.
func Distribute(team TeamGoalSet, users []User) map[string]UserGoal {
	participation := SellerParticipation(users)
	out := make(map[string]UserGoal)
	for _, u := range users {
		switch u.Role {
		case RoleSeller:
			out[u.ID] = NewSellerGoal(distributeSeller(team, participation[u.ID]))
		case RoleCashier:
			out[u.ID] = NewCashierGoal(distributeCashier(team))
		}
	}
	return out
}

// BuildGoal assembles the complete Goal record for a month from a team
// goal and the current roster.
func BuildGoal(month Month, team TeamGoalSet, users []User) Goal {
	return Goal{
		Month:     month,
		TeamGoal:  team,
		UserGoals: Distribute(team, users),
	}
}

// PreviewUserGoal computes the goal set one user would receive from a
// draft team goal, without committing anything.
func PreviewUserGoal(team TeamGoalSet, users []User, userID string) (UserGoal, bool) {
	for _, u := range users {
		if u.ID != userID {
			continue
		}
		switch u.Role {
		case RoleSeller:
			return NewSellerGoal(distributeSeller(team, SellerParticipation(users)[u.ID])), true
		case RoleCashier:
			return NewCashierGoal(distributeCashier(team)), true
		}
		return UserGoal{}, false
	}
	return UserGoal{}, false
}
