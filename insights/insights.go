/*
Package insights builds the ranking, dashboard and monthly-report views.

PURPOSE:
  Everything here is presentation-side aggregation over the same records
  the commission engine scores: seller rankings from the sale log, store
  dashboard stats, daily pace, and the structured monthly report that
  feeds the coaching text service.

  All computation is pure over already-loaded slices; the Service wrapper
  only resolves the store reads. Like the scoring engine, nothing here
  reads the wall clock - "now" inputs (month, day, hour) are parameters.

SEE ALSO:
  - commission/progress.go: the monthly aggregation these views reuse
  - coach/:                 consumes MonthlyReport as its input summary
*/
package insights

import (
	"context"
	"fmt"
	"sort"

	"github.com/mcbanda/commission-engine/commission"
)

// =============================================================================
// SELLER RANKING - from the sale log
// =============================================================================

// SellerRank is one row of the monthly ranking.
type SellerRank struct {
	SellerID string  `json:"seller_id"`
	Name     string  `json:"name"`
	Total    float64 `json:"total"`
	Units    int     `json:"units"`
}

// Ranking sums each seller's sales for the month and orders the result
// by total, highest first.
func Ranking(sales []commission.Sale, month commission.Month) []SellerRank {
	byID := make(map[string]*SellerRank)
	var order []string
	for _, s := range sales {
		if !month.Contains(s.Date) {
			continue
		}
		r, ok := byID[s.SellerID]
		if !ok {
			r = &SellerRank{SellerID: s.SellerID, Name: s.SellerName}
			byID[s.SellerID] = r
			order = append(order, s.SellerID)
		}
		r.Total += s.Amount
		r.Units += s.Units
	}
	out := make([]SellerRank, 0, len(order))
	for _, id := range order {
		out = append(out, *byID[id])
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Total > out[j].Total })
	return out
}

// =============================================================================
// STORE SUMMARY - monthly dashboard stats
// =============================================================================

// StoreSummary holds the store-wide dashboard numbers for one month.
type StoreSummary struct {
	Month          commission.Month `json:"month"`
	TotalRevenue   float64          `json:"total_revenue"`
	TotalUnits     float64          `json:"total_units"`
	TotalTickets   float64          `json:"total_tickets"`
	AvgTicket      float64          `json:"avg_ticket"`       // revenue / tickets
	UnitsPerTicket float64          `json:"units_per_ticket"` // units / tickets
}

// Summarize derives the dashboard stats from the month's store aggregate.
func Summarize(progress []commission.StoreProgress, month commission.Month) StoreSummary {
	agg := commission.AggregateStore(progress, month)
	sum := StoreSummary{
		Month:        month,
		TotalRevenue: agg.Get(commission.MetricPesos),
		TotalUnits:   agg.Get(commission.MetricUnits),
		TotalTickets: agg.Get(commission.MetricTickets),
	}
	if sum.TotalTickets > 0 {
		sum.AvgTicket = sum.TotalRevenue / sum.TotalTickets
		sum.UnitsPerTicket = sum.TotalUnits / sum.TotalTickets
	}
	return sum
}

// =============================================================================
// DAILY PACE - "what do we still need to sell today"
// =============================================================================

// Store workday bounds for the hourly-rate projection.
const (
	WorkdayStartHour = 9
	WorkdayEndHour   = 18
)

// DailyPace projects the day's remaining target from the monthly goal.
type DailyPace struct {
	DailyGoal        float64 `json:"daily_goal"`         // monthly goal / days in month
	RemainingForDay  float64 `json:"remaining_for_day"`  // daily goal - today's revenue
	HourlyRateNeeded float64 `json:"hourly_rate_needed"` // remaining / workday hours left
}

// Pace computes the day's pace. today's revenue is the pesos recorded for
// the given day; hour is the current local hour (24h clock).
func Pace(monthlyGoalPesos float64, month commission.Month, todayPesos float64, hour int) DailyPace {
	var pace DailyPace
	if days := month.Days(); monthlyGoalPesos > 0 && days > 0 {
		pace.DailyGoal = monthlyGoalPesos / float64(days)
	}
	if pace.DailyGoal > 0 {
		pace.RemainingForDay = pace.DailyGoal - todayPesos
	}
	remainingHours := WorkdayEndHour - hour
	if remainingHours < 0 {
		remainingHours = 0
	}
	if pace.RemainingForDay > 0 && remainingHours > 0 {
		pace.HourlyRateNeeded = pace.RemainingForDay / float64(remainingHours)
	}
	return pace
}

// RevenueOn sums the store pesos recorded for one day.
func RevenueOn(progress []commission.StoreProgress, day commission.DateKey) float64 {
	var total float64
	for _, p := range progress {
		if p.Date == day {
			total += p.Pesos
		}
	}
	return total
}

// =============================================================================
// MEMBER PROGRESS - per-user rows of the monthly report
// =============================================================================

// MemberProgress is one roster member's report row. Sellers track sale
// money against their money goal; cashiers list their credit and sock
// targets (their progress lives in individual progress records, which
// the commissions view scores in full).
type MemberProgress struct {
	UserID    string          `json:"user_id"`
	Name      string          `json:"name"`
	Role      commission.Role `json:"role"`
	Total     float64         `json:"total,omitempty"`
	MoneyGoal float64         `json:"money_goal,omitempty"`
	BarWidth  float64         `json:"bar_width,omitempty"` // display clamp, not the scoring cap

	CreditPesosGoal float64 `json:"credit_pesos_goal,omitempty"`
	CreditUnitsGoal float64 `json:"credit_units_goal,omitempty"`
	SocksGoal       float64 `json:"socks_goal,omitempty"`
}

// MemberRows builds the per-member report rows for a month.
func MemberRows(users []commission.User, sales []commission.Sale, goal commission.Goal, month commission.Month) []MemberProgress {
	var rows []MemberProgress
	for _, u := range users {
		switch u.Role {
		case commission.RoleSeller:
			var total float64
			for _, s := range sales {
				if s.SellerID == u.ID && month.Contains(s.Date) {
					total += s.Amount
				}
			}
			row := MemberProgress{UserID: u.ID, Name: u.Name, Role: u.Role, Total: total}
			if ug, err := goal.UserGoalFor(u.ID); err == nil && ug.Seller != nil {
				row.MoneyGoal = ug.Seller.Pesos
			}
			row.BarWidth = commission.DisplayBarWidth(commission.Achievement(total, row.MoneyGoal))
			rows = append(rows, row)
		case commission.RoleCashier:
			row := MemberProgress{UserID: u.ID, Name: u.Name, Role: u.Role}
			if ug, err := goal.UserGoalFor(u.ID); err == nil && ug.Cashier != nil {
				row.CreditPesosGoal = ug.Cashier.CreditPesos
				row.CreditUnitsGoal = ug.Cashier.CreditUnits
				row.SocksGoal = ug.Cashier.Socks
			}
			rows = append(rows, row)
		}
	}
	return rows
}

// =============================================================================
// MONTHLY REPORT - the structured summary fed to the coach service
// =============================================================================

// MonthlyReport is the full structured monthly summary: store totals,
// team goal, member rows and the sale ranking. Serialized as JSON, it is
// the input to the coaching text service.
type MonthlyReport struct {
	Month    commission.Month       `json:"month"`
	Summary  StoreSummary           `json:"summary"`
	TeamGoal commission.TeamGoalSet `json:"team_goal"`
	Members  []MemberProgress       `json:"members"`
	Ranking  []SellerRank           `json:"ranking"`
}

// =============================================================================
// SERVICE - resolves store reads for the pure builders above
// =============================================================================

// Service loads records and builds the views.
type Service struct {
	store commission.Store
}

func NewService(store commission.Store) *Service {
	return &Service{store: store}
}

// MonthlyRanking builds the seller ranking for a month.
func (s *Service) MonthlyRanking(ctx context.Context, month commission.Month) ([]SellerRank, error) {
	sales, err := s.store.ListSales(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	return Ranking(sales, month), nil
}

// StoreSummary builds the dashboard summary for a month.
func (s *Service) StoreSummary(ctx context.Context, month commission.Month) (StoreSummary, error) {
	progress, err := s.store.ListStoreProgress(ctx)
	if err != nil {
		return StoreSummary{}, fmt.Errorf("list store progress: %w", err)
	}
	return Summarize(progress, month), nil
}

// DailyPace builds the day's pace view. Returns a zero pace when the
// month has no goal: pace is guidance, not scoring, so the missing-goal
// state degrades to zeros here instead of an error.
func (s *Service) DailyPace(ctx context.Context, month commission.Month, day commission.DateKey, hour int) (DailyPace, error) {
	progress, err := s.store.ListStoreProgress(ctx)
	if err != nil {
		return DailyPace{}, fmt.Errorf("list store progress: %w", err)
	}
	goal, err := s.store.GetGoal(ctx, month)
	if err != nil {
		if commission.IsGuidance(err) {
			return DailyPace{}, nil
		}
		return DailyPace{}, err
	}
	return Pace(goal.TeamGoal.Pesos, month, RevenueOn(progress, day), hour), nil
}

// Report assembles the full monthly report. Requires the month's goal.
func (s *Service) Report(ctx context.Context, month commission.Month) (*MonthlyReport, error) {
	goal, err := s.store.GetGoal(ctx, month)
	if err != nil {
		return nil, err
	}
	users, err := s.store.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	sales, err := s.store.ListSales(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	progress, err := s.store.ListStoreProgress(ctx)
	if err != nil {
		return nil, fmt.Errorf("list store progress: %w", err)
	}

	return &MonthlyReport{
		Month:    month,
		Summary:  Summarize(progress, month),
		TeamGoal: goal.TeamGoal,
		Members:  MemberRows(users, sales, goal, month),
		Ranking:  Ranking(sales, month),
	}, nil
}
