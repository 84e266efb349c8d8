/*
seed.go - Demo data loader

PURPOSE:
  Loads a small deterministic data set so a fresh instance has something
  to show: a four-person roster, a committed team goal for the target
  month, two weeks of store and individual progress, a sale log and one
  notice. Intended for development and demos, not production.

IDEMPOTENCY:
  Record ids are fixed strings, so reseeding against a store that
  upserts by id (both shipped stores do) converges instead of piling
  up duplicates.
*/
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/mcbanda/commission-engine/commission"
)

var seedUsers = []commission.User{
	{ID: "user-1", Name: "Admin", Role: commission.RoleManager, AvatarURL: "https://i.pravatar.cc/150?u=admin", AssignedHours: 40},
	{ID: "user-2", Name: "Ana", Role: commission.RoleSeller, AvatarURL: "https://i.pravatar.cc/150?u=ana", AssignedHours: 35},
	{ID: "user-3", Name: "Juan", Role: commission.RoleSeller, AvatarURL: "https://i.pravatar.cc/150?u=juan", AssignedHours: 20},
	{ID: "user-4", Name: "Luis", Role: commission.RoleCashier, AvatarURL: "https://i.pravatar.cc/150?u=luis", AssignedHours: 30},
}

var seedTeamGoal = commission.TeamGoalSet{
	Pesos:       3000000,
	Tickets:     350,
	Units:       1200,
	CreditPesos: 500000,
	CreditUnits: 200,
	Footwear:    500,
	Apparel:     350,
	Shirts:      150,
	Accessories: 150,
	Socks:       50,
}

// SeedDemo loads the demo data set. An optional {"month": "YYYY-MM"}
// body picks the month; the current month otherwise.
func (h *Handler) SeedDemo(w http.ResponseWriter, r *http.Request) {
	month := commission.MonthOf(time.Now())
	var req struct {
		Month string `json:"month"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err == nil && req.Month != "" {
		parsed, err := commission.ParseMonth(req.Month)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid month (use YYYY-MM)", err)
			return
		}
		month = parsed
	}

	if err := h.seed(r.Context(), month); err != nil {
		h.writeDomainError(w, "Failed to seed demo data", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "seeded",
		"month":  string(month),
	})
}

func (h *Handler) seed(ctx context.Context, month commission.Month) error {
	s := h.Engine.Store()

	for _, u := range seedUsers {
		if err := s.CreateUser(ctx, u); err != nil {
			return fmt.Errorf("seed user %s: %w", u.ID, err)
		}
	}

	if _, err := h.Engine.CommitTeamGoal(ctx, month, seedTeamGoal); err != nil {
		return fmt.Errorf("seed goal: %w", err)
	}

	categories := []commission.SaleCategory{
		commission.CategoryFootwear,
		commission.CategoryApparel,
		commission.CategoryAccessories,
		commission.CategoryShirts,
		commission.CategorySocks,
	}
	payments := []commission.PaymentType{commission.PaymentCash, commission.PaymentCard}

	// 14 days of store progress plus sales and per-user entries, all
	// derived from the day index so reseeding is reproducible.
	for day := 1; day <= 14; day++ {
		date := commission.DateKey(fmt.Sprintf("%s-%02d", month, day))

		err := s.CreateStoreProgress(ctx, commission.StoreProgress{
			ID:          fmt.Sprintf("seed-sp-%02d", day),
			Date:        date,
			Pesos:       90000 + float64(day%5)*12000,
			Tickets:     10 + float64(day%4),
			Units:       38 + float64(day%7)*3,
			Footwear:    14 + float64(day%3)*2,
			Apparel:     10 + float64(day%4),
			Shirts:      4 + float64(day%3),
			Accessories: 5 + float64(day%2),
			Socks:       1 + float64(day%2),
			CreditPesos: 14000 + float64(day%5)*2500,
			CreditUnits: 5 + float64(day%3),
		})
		if err != nil {
			return fmt.Errorf("seed store progress: %w", err)
		}

		for i, sellerID := range []string{"user-2", "user-3"} {
			err := s.CreateSale(ctx, commission.Sale{
				ID:         fmt.Sprintf("seed-sale-%02d-%d", day, i),
				SellerID:   sellerID,
				SellerName: seedUsers[i+1].Name,
				Amount:     4500 + float64((day+i)%6)*2200,
				Units:      1 + (day+i)%4,
				Category:   categories[(day+i)%len(categories)],
				Payment:    payments[(day+i)%len(payments)],
				Date:       date,
			})
			if err != nil {
				return fmt.Errorf("seed sale: %w", err)
			}

			err = s.CreateIndividualProgress(ctx, commission.IndividualProgress{
				ID:          fmt.Sprintf("seed-ip-%02d-%d", day, i),
				UserID:      sellerID,
				Date:        date,
				Pesos:       4500 + float64((day+i)%6)*2200,
				Footwear:    float64((day + i) % 3),
				Apparel:     float64((day + i) % 2),
				Shirts:      float64(day % 2),
				Accessories: float64((day + i) % 2),
				CreditPesos: 1200 + float64(day%4)*600,
				CreditUnits: float64(day % 2),
			})
			if err != nil {
				return fmt.Errorf("seed seller progress: %w", err)
			}
		}

		err = s.CreateIndividualProgress(ctx, commission.IndividualProgress{
			ID:          fmt.Sprintf("seed-ip-%02d-c", day),
			UserID:      "user-4",
			Date:        date,
			Socks:       float64(day % 3),
			CreditPesos: 1800 + float64(day%5)*700,
			CreditUnits: 1 + float64(day%2),
		})
		if err != nil {
			return fmt.Errorf("seed cashier progress: %w", err)
		}
	}

	err := s.CreateMessage(ctx, commission.Message{
		ID:      "seed-msg-1",
		Content: "Recuerden registrar el avance del programa de crédito todos los días.",
		Date:    time.Now(),
	})
	if err != nil {
		return fmt.Errorf("seed message: %w", err)
	}
	return nil
}
