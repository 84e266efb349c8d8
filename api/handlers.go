/*
handlers.go - HTTP API handlers for the commission engine

PURPOSE:
  Exposes the commission engine via REST API. Handles HTTP
  request/response, JSON serialization, and delegates to domain logic.

ENDPOINTS:
  Roster:
    GET    /api/users                  List roster
    POST   /api/users                  Add member
    GET    /api/users/{id}             Get member
    PUT    /api/users/{id}             Update member
    DELETE /api/users/{id}             Remove member (blocked by sales history)

  Goals:
    PUT    /api/goals/{month}           Commit and distribute team goal
    GET    /api/goals/{month}           Get the month's goal record
    GET    /api/goals/{month}/users/{id} Get one user's distributed set
    POST   /api/goals/preview           Preview distribution for a draft goal

  Progress:
    GET/POST /api/progress/store        Store-wide daily records
    PUT/DELETE /api/progress/store/{id}
    GET/POST /api/progress/individual   Per-user entries (?user_id= filter)
    PUT/DELETE /api/progress/individual/{id}

  Sales / Messages:
    GET/POST /api/sales (?seller_id=), DELETE /api/sales/{id}
    GET/POST /api/messages, DELETE /api/messages/{id}

  Commissions:
    GET    /api/commissions/{month}           Full team view
    GET    /api/commissions/{month}/manager   Manager statement
    GET    /api/commissions/{month}/users/{id} One staff statement

  Dashboard / Reports:
    GET    /api/dashboard/{month}/summary
    GET    /api/dashboard/{month}/ranking
    GET    /api/dashboard/{month}/pace (?day=&hour=)
    GET    /api/reports/{month}
    POST   /api/reports/{month}/coach

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Validation errors, invalid input, role mismatches
  - 404: Unknown user/record, and the "no goal defined" guidance states
         (code "no_goal" so clients can render guidance, not a failure)
  - 409: Delete blocked by sales history
  - 500: Internal errors

SECURITY NOTE:
  Currently NO authentication or authorization. All endpoints are public.

SEE ALSO:
  - dto.go: Request/response data structures
  - seed.go: Demo data loader
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/mcbanda/commission-engine/coach"
	"github.com/mcbanda/commission-engine/commission"
	"github.com/mcbanda/commission-engine/insights"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Engine   *commission.Engine
	Insights *insights.Service
	Coach    *coach.Client
	Log      *zap.Logger
}

// NewHandler creates a handler around the engine. A nil logger falls
// back to zap.NewNop.
func NewHandler(engine *commission.Engine, coachClient *coach.Client, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{
		Engine:   engine,
		Insights: insights.NewService(engine.Store()),
		Coach:    coachClient,
		Log:      log,
	}
}

// =============================================================================
// ROSTER HANDLERS
// =============================================================================

// ListUsers returns the full roster.
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Engine.Store().ListUsers(r.Context())
	if err != nil {
		h.writeDomainError(w, "Failed to list users", err)
		return
	}
	writeJSON(w, http.StatusOK, toUserDTOs(users))
}

// GetUser returns a single roster member.
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.Engine.Store().GetUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeDomainError(w, "Failed to get user", err)
		return
	}
	writeJSON(w, http.StatusOK, toUserDTO(user))
}

// CreateUser adds a roster member.
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "Name is required", nil)
		return
	}
	role := commission.Role(req.Role)
	if !role.Valid() {
		writeError(w, http.StatusBadRequest, "Invalid role (use manager, seller or cashier)", nil)
		return
	}

	user := commission.User{
		ID:            req.ID,
		Name:          req.Name,
		Role:          role,
		AvatarURL:     req.AvatarURL,
		AssignedHours: req.AssignedHours,
	}
	if user.ID == "" {
		user.ID = newID("user")
	}

	if err := h.Engine.Store().CreateUser(r.Context(), user); err != nil {
		h.writeDomainError(w, "Failed to create user", err)
		return
	}
	writeJSON(w, http.StatusCreated, toUserDTO(user))
}

// UpdateUser updates a roster member's name, avatar or hours. The role
// is fixed at creation.
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	user, err := h.Engine.Store().GetUser(r.Context(), id)
	if err != nil {
		h.writeDomainError(w, "Failed to get user", err)
		return
	}
	if req.Name != "" {
		user.Name = req.Name
	}
	if req.AvatarURL != "" {
		user.AvatarURL = req.AvatarURL
	}
	if req.AssignedHours > 0 {
		user.AssignedHours = req.AssignedHours
	}

	if err := h.Engine.Store().UpdateUser(r.Context(), user); err != nil {
		h.writeDomainError(w, "Failed to update user", err)
		return
	}
	writeJSON(w, http.StatusOK, toUserDTO(user))
}

// DeleteUser removes a roster member. Members referenced by historical
// sales are never removed; clients get a 409 with the reason.
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := h.Engine.RemoveUser(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeDomainError(w, "Failed to delete user", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// =============================================================================
// GOAL HANDLERS
// =============================================================================

// CommitGoal distributes the posted team goal across the roster and
// stores it, replacing any previous goal for the month.
func (h *Handler) CommitGoal(w http.ResponseWriter, r *http.Request) {
	month, ok := h.month(w, r)
	if !ok {
		return
	}
	var req CommitGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	goal, err := h.Engine.CommitTeamGoal(r.Context(), month, req.Team)
	if err != nil {
		h.writeDomainError(w, "Failed to commit goal", err)
		return
	}
	writeJSON(w, http.StatusOK, toGoalDTO(goal))
}

// GetGoal returns the month's goal record.
func (h *Handler) GetGoal(w http.ResponseWriter, r *http.Request) {
	month, ok := h.month(w, r)
	if !ok {
		return
	}
	goal, err := h.Engine.Store().GetGoal(r.Context(), month)
	if err != nil {
		h.writeDomainError(w, "Failed to get goal", err)
		return
	}
	writeJSON(w, http.StatusOK, toGoalDTO(goal))
}

// GetUserGoal returns one user's distributed goal set for the month.
func (h *Handler) GetUserGoal(w http.ResponseWriter, r *http.Request) {
	month, ok := h.month(w, r)
	if !ok {
		return
	}
	ug, err := h.Engine.UserGoal(r.Context(), chi.URLParam(r, "id"), month)
	if err != nil {
		h.writeDomainError(w, "Failed to get user goal", err)
		return
	}
	writeJSON(w, http.StatusOK, ug)
}

// PreviewGoal computes the goal set one user would receive from a draft
// team goal, without committing anything.
func (h *Handler) PreviewGoal(w http.ResponseWriter, r *http.Request) {
	var req PreviewGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.UserID == "" {
		writeError(w, http.StatusBadRequest, "user_id is required", nil)
		return
	}

	users, err := h.Engine.Store().ListUsers(r.Context())
	if err != nil {
		h.writeDomainError(w, "Failed to list users", err)
		return
	}
	ug, ok := commission.PreviewUserGoal(req.Team, users, req.UserID)
	if !ok {
		writeError(w, http.StatusNotFound, "User not on the roster or has no distributable goal", nil)
		return
	}
	writeJSON(w, http.StatusOK, ug)
}

// =============================================================================
// STORE PROGRESS HANDLERS
// =============================================================================

// ListStoreProgress returns all store-wide daily records.
func (h *Handler) ListStoreProgress(w http.ResponseWriter, r *http.Request) {
	records, err := h.Engine.Store().ListStoreProgress(r.Context())
	if err != nil {
		h.writeDomainError(w, "Failed to list store progress", err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

// CreateStoreProgress logs a store-wide daily record.
func (h *Handler) CreateStoreProgress(w http.ResponseWriter, r *http.Request) {
	var rec commission.StoreProgress
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if !validDate(rec.Date) {
		writeError(w, http.StatusBadRequest, "Invalid date (use YYYY-MM-DD)", nil)
		return
	}
	if !nonNegative(rec.Metrics()) {
		writeError(w, http.StatusBadRequest, "Metric values must be non-negative", nil)
		return
	}
	if rec.ID == "" {
		rec.ID = newID("sp")
	}

	if err := h.Engine.Store().CreateStoreProgress(r.Context(), rec); err != nil {
		h.writeDomainError(w, "Failed to create store progress", err)
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

// UpdateStoreProgress replaces a store-wide record by id.
func (h *Handler) UpdateStoreProgress(w http.ResponseWriter, r *http.Request) {
	var rec commission.StoreProgress
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	rec.ID = chi.URLParam(r, "id")
	if !validDate(rec.Date) {
		writeError(w, http.StatusBadRequest, "Invalid date (use YYYY-MM-DD)", nil)
		return
	}
	if !nonNegative(rec.Metrics()) {
		writeError(w, http.StatusBadRequest, "Metric values must be non-negative", nil)
		return
	}

	if err := h.Engine.Store().UpdateStoreProgress(r.Context(), rec); err != nil {
		h.writeDomainError(w, "Failed to update store progress", err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// DeleteStoreProgress deletes a store-wide record by id.
func (h *Handler) DeleteStoreProgress(w http.ResponseWriter, r *http.Request) {
	if err := h.Engine.Store().DeleteStoreProgress(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeDomainError(w, "Failed to delete store progress", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// =============================================================================
// INDIVIDUAL PROGRESS HANDLERS
// =============================================================================

// ListIndividualProgress returns per-user entries, optionally filtered
// by ?user_id=.
func (h *Handler) ListIndividualProgress(w http.ResponseWriter, r *http.Request) {
	var (
		records []commission.IndividualProgress
		err     error
	)
	if userID := r.URL.Query().Get("user_id"); userID != "" {
		records, err = h.Engine.Store().ListIndividualProgressByUser(r.Context(), userID)
	} else {
		records, err = h.Engine.Store().ListIndividualProgress(r.Context())
	}
	if err != nil {
		h.writeDomainError(w, "Failed to list progress", err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

// CreateIndividualProgress logs a per-user entry. The owner must exist.
func (h *Handler) CreateIndividualProgress(w http.ResponseWriter, r *http.Request) {
	var rec commission.IndividualProgress
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if !validDate(rec.Date) {
		writeError(w, http.StatusBadRequest, "Invalid date (use YYYY-MM-DD)", nil)
		return
	}
	if !nonNegative(rec.Metrics()) {
		writeError(w, http.StatusBadRequest, "Metric values must be non-negative", nil)
		return
	}
	if _, err := h.Engine.Store().GetUser(r.Context(), rec.UserID); err != nil {
		h.writeDomainError(w, "Unknown progress owner", err)
		return
	}
	if rec.ID == "" {
		rec.ID = newID("ip")
	}

	if err := h.Engine.Store().CreateIndividualProgress(r.Context(), rec); err != nil {
		h.writeDomainError(w, "Failed to create progress", err)
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

// UpdateIndividualProgress replaces a per-user entry by id. The stored
// owner wins over whatever the body claims.
func (h *Handler) UpdateIndividualProgress(w http.ResponseWriter, r *http.Request) {
	var rec commission.IndividualProgress
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	rec.ID = chi.URLParam(r, "id")
	if !validDate(rec.Date) {
		writeError(w, http.StatusBadRequest, "Invalid date (use YYYY-MM-DD)", nil)
		return
	}
	if !nonNegative(rec.Metrics()) {
		writeError(w, http.StatusBadRequest, "Metric values must be non-negative", nil)
		return
	}

	if err := h.Engine.Store().UpdateIndividualProgress(r.Context(), rec); err != nil {
		h.writeDomainError(w, "Failed to update progress", err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// DeleteIndividualProgress deletes a per-user entry by id.
func (h *Handler) DeleteIndividualProgress(w http.ResponseWriter, r *http.Request) {
	if err := h.Engine.Store().DeleteIndividualProgress(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeDomainError(w, "Failed to delete progress", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// =============================================================================
// SALE HANDLERS
// =============================================================================

// ListSales returns the sale log, optionally filtered by ?seller_id=.
func (h *Handler) ListSales(w http.ResponseWriter, r *http.Request) {
	var (
		sales []commission.Sale
		err   error
	)
	if sellerID := r.URL.Query().Get("seller_id"); sellerID != "" {
		sales, err = h.Engine.Store().ListSalesBySeller(r.Context(), sellerID)
	} else {
		sales, err = h.Engine.Store().ListSales(r.Context())
	}
	if err != nil {
		h.writeDomainError(w, "Failed to list sales", err)
		return
	}
	writeJSON(w, http.StatusOK, toSaleDTOs(sales))
}

// CreateSale logs a sale against a roster seller. The seller name is
// denormalized onto the record so the ranking survives roster edits.
func (h *Handler) CreateSale(w http.ResponseWriter, r *http.Request) {
	var req CreateSaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.Amount <= 0 {
		writeError(w, http.StatusBadRequest, "Amount must be positive", nil)
		return
	}
	if !validDate(commission.DateKey(req.Date)) {
		writeError(w, http.StatusBadRequest, "Invalid date (use YYYY-MM-DD)", nil)
		return
	}

	seller, err := h.Engine.Store().GetUser(r.Context(), req.SellerID)
	if err != nil {
		h.writeDomainError(w, "Unknown seller", err)
		return
	}

	sale := commission.Sale{
		ID:         newID("sale"),
		SellerID:   seller.ID,
		SellerName: seller.Name,
		Amount:     req.Amount,
		Units:      req.Units,
		Category:   commission.SaleCategory(req.Category),
		Payment:    commission.PaymentType(req.Payment),
		Date:       commission.DateKey(req.Date),
	}
	if err := h.Engine.Store().CreateSale(r.Context(), sale); err != nil {
		h.writeDomainError(w, "Failed to create sale", err)
		return
	}
	writeJSON(w, http.StatusCreated, toSaleDTO(sale))
}

// DeleteSale deletes a sale by id.
func (h *Handler) DeleteSale(w http.ResponseWriter, r *http.Request) {
	if err := h.Engine.Store().DeleteSale(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeDomainError(w, "Failed to delete sale", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// =============================================================================
// MESSAGE HANDLERS
// =============================================================================

// ListMessages returns the notice board, newest first.
func (h *Handler) ListMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.Engine.Store().ListMessages(r.Context())
	if err != nil {
		h.writeDomainError(w, "Failed to list messages", err)
		return
	}
	dtos := make([]MessageDTO, len(messages))
	for i, m := range messages {
		dtos[i] = toMessageDTO(m)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// CreateMessage posts a notice.
func (h *Handler) CreateMessage(w http.ResponseWriter, r *http.Request) {
	var req CreateMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.Content == "" {
		writeError(w, http.StatusBadRequest, "Content is required", nil)
		return
	}

	msg := commission.Message{
		ID:      newID("msg"),
		Content: req.Content,
		Date:    time.Now(),
	}
	if err := h.Engine.Store().CreateMessage(r.Context(), msg); err != nil {
		h.writeDomainError(w, "Failed to create message", err)
		return
	}
	writeJSON(w, http.StatusCreated, toMessageDTO(msg))
}

// DeleteMessage deletes a notice by id.
func (h *Handler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	if err := h.Engine.Store().DeleteMessage(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeDomainError(w, "Failed to delete message", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// =============================================================================
// COMMISSION HANDLERS
// =============================================================================

// TeamCommissions returns the full commissions view for a month.
func (h *Handler) TeamCommissions(w http.ResponseWriter, r *http.Request) {
	month, ok := h.month(w, r)
	if !ok {
		return
	}
	view, err := h.Engine.TeamCommissions(r.Context(), month)
	if err != nil {
		h.writeDomainError(w, "Failed to build commissions", err)
		return
	}
	writeJSON(w, http.StatusOK, toTeamCommissionsDTO(view))
}

// ManagerStatement returns the manager's statement for a month.
func (h *Handler) ManagerStatement(w http.ResponseWriter, r *http.Request) {
	month, ok := h.month(w, r)
	if !ok {
		return
	}
	stmt, err := h.Engine.ManagerStatement(r.Context(), month)
	if err != nil {
		h.writeDomainError(w, "Failed to build manager statement", err)
		return
	}
	writeJSON(w, http.StatusOK, toManagerStatementDTO(stmt))
}

// UserStatement returns one seller's or cashier's statement for a month.
func (h *Handler) UserStatement(w http.ResponseWriter, r *http.Request) {
	month, ok := h.month(w, r)
	if !ok {
		return
	}
	stmt, err := h.Engine.UserStatement(r.Context(), chi.URLParam(r, "id"), month)
	if err != nil {
		h.writeDomainError(w, "Failed to build statement", err)
		return
	}
	writeJSON(w, http.StatusOK, toStaffStatementDTO(*stmt))
}

// =============================================================================
// DASHBOARD HANDLERS
// =============================================================================

// StoreSummary returns the month's dashboard stats.
func (h *Handler) StoreSummary(w http.ResponseWriter, r *http.Request) {
	month, ok := h.month(w, r)
	if !ok {
		return
	}
	sum, err := h.Insights.StoreSummary(r.Context(), month)
	if err != nil {
		h.writeDomainError(w, "Failed to build summary", err)
		return
	}
	writeJSON(w, http.StatusOK, sum)
}

// MonthlyRanking returns the month's seller ranking.
func (h *Handler) MonthlyRanking(w http.ResponseWriter, r *http.Request) {
	month, ok := h.month(w, r)
	if !ok {
		return
	}
	ranking, err := h.Insights.MonthlyRanking(r.Context(), month)
	if err != nil {
		h.writeDomainError(w, "Failed to build ranking", err)
		return
	}
	writeJSON(w, http.StatusOK, ranking)
}

// DailyPace returns today's remaining-target projection. ?day= and
// ?hour= override the wall clock for deterministic queries.
func (h *Handler) DailyPace(w http.ResponseWriter, r *http.Request) {
	month, ok := h.month(w, r)
	if !ok {
		return
	}

	now := time.Now()
	day := commission.DateKeyOf(now)
	hour := now.Hour()
	if q := r.URL.Query().Get("day"); q != "" {
		if !validDate(commission.DateKey(q)) {
			writeError(w, http.StatusBadRequest, "Invalid day (use YYYY-MM-DD)", nil)
			return
		}
		day = commission.DateKey(q)
	}
	if q := r.URL.Query().Get("hour"); q != "" {
		parsed, err := strconv.Atoi(q)
		if err != nil || parsed < 0 || parsed > 23 {
			writeError(w, http.StatusBadRequest, "Invalid hour (0-23)", nil)
			return
		}
		hour = parsed
	}

	pace, err := h.Insights.DailyPace(r.Context(), month, day, hour)
	if err != nil {
		h.writeDomainError(w, "Failed to build pace", err)
		return
	}
	writeJSON(w, http.StatusOK, pace)
}

// =============================================================================
// REPORT HANDLERS
// =============================================================================

// MonthlyReport returns the structured monthly report.
func (h *Handler) MonthlyReport(w http.ResponseWriter, r *http.Request) {
	month, ok := h.month(w, r)
	if !ok {
		return
	}
	report, err := h.Insights.Report(r.Context(), month)
	if err != nil {
		h.writeDomainError(w, "Failed to build report", err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// CoachPlan feeds the month's report plus the manager's objective to the
// coaching service. The coach fails soft, so this never 500s on the
// coach itself; only report assembly can fail.
func (h *Handler) CoachPlan(w http.ResponseWriter, r *http.Request) {
	month, ok := h.month(w, r)
	if !ok {
		return
	}
	var req CoachRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	report, err := h.Insights.Report(r.Context(), month)
	if err != nil {
		h.writeDomainError(w, "Failed to build report", err)
		return
	}
	writeJSON(w, http.StatusOK, CoachResponse{
		Text: h.Coach.Plan(r.Context(), req.Prompt, report),
	})
}

// =============================================================================
// HELPERS
// =============================================================================

// month parses the {month} URL parameter, writing a 400 on failure.
func (h *Handler) month(w http.ResponseWriter, r *http.Request) (commission.Month, bool) {
	month, err := commission.ParseMonth(chi.URLParam(r, "month"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid month (use YYYY-MM)", err)
		return "", false
	}
	return month, true
}

// writeDomainError maps a domain error onto the HTTP taxonomy. The
// "no goal" guidance states come back as 404 with code no_goal so
// clients render guidance rather than a failure.
func (h *Handler) writeDomainError(w http.ResponseWriter, message string, err error) {
	switch {
	case commission.IsGuidance(err):
		writeJSON(w, http.StatusNotFound, ErrorResponse{
			Error: message, Code: "no_goal", Details: err.Error(),
		})
	case commission.IsNotFound(err):
		writeError(w, http.StatusNotFound, message, err)
	case commission.IsClientError(err):
		status := http.StatusBadRequest
		if errors.Is(err, commission.ErrUserHasSales) {
			status = http.StatusConflict
		}
		writeError(w, status, message, err)
	default:
		h.Log.Error("request failed", zap.String("message", message), zap.Error(err))
		writeError(w, http.StatusInternalServerError, message, err)
	}
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}

func validDate(d commission.DateKey) bool {
	_, err := time.Parse("2006-01-02", string(d))
	return err == nil
}

// Progress records log attained amounts; negative values are data-entry
// errors and never accepted.
func nonNegative(metrics commission.MetricSet) bool {
	for _, v := range metrics {
		if v < 0 {
			return false
		}
	}
	return true
}

func newID(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}
