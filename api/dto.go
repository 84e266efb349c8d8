/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the internal domain model from the external API contract, allowing:
  - Field renaming without breaking clients
  - API-specific validation
  - Version evolution

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

TYPES:
  Roster:
    UserDTO, CreateUserRequest, UpdateUserRequest

  Goals:
    CommitGoalRequest, GoalDTO, PreviewGoalRequest

  Sales / Messages:
    SaleDTO, CreateSaleRequest, MessageDTO, CreateMessageRequest

  Statements:
    ManagerStatementDTO, StaffStatementDTO, TeamCommissionsDTO
    (commission amounts render as decimal strings)

  Progress records reuse the domain structs directly; they already carry
  the wire tags and no internal representation leaks through them.

SEE ALSO:
  - handlers.go: Uses these types
  - commission/engine.go: the statement types these wrap
*/
package api

import (
	"time"

	"github.com/mcbanda/commission-engine/commission"
)

// =============================================================================
// ROSTER TYPES
// =============================================================================

// UserDTO represents a roster member in API responses.
type UserDTO struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Role          string  `json:"role"`
	AvatarURL     string  `json:"avatar_url,omitempty"`
	AssignedHours float64 `json:"assigned_hours"`
}

// CreateUserRequest is the request to add a roster member.
type CreateUserRequest struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Role          string  `json:"role"`
	AvatarURL     string  `json:"avatar_url,omitempty"`
	AssignedHours float64 `json:"assigned_hours,omitempty"`
}

// UpdateUserRequest is the request to update a roster member. The role
// is fixed at creation and not updatable.
type UpdateUserRequest struct {
	Name          string  `json:"name"`
	AvatarURL     string  `json:"avatar_url,omitempty"`
	AssignedHours float64 `json:"assigned_hours,omitempty"`
}

// =============================================================================
// GOAL TYPES
// =============================================================================

// CommitGoalRequest carries the team goal to distribute for a month.
type CommitGoalRequest struct {
	Team commission.TeamGoalSet `json:"team"`
}

// PreviewGoalRequest asks what goal set one user would receive from a
// draft team goal, without committing anything.
type PreviewGoalRequest struct {
	UserID string                 `json:"user_id"`
	Team   commission.TeamGoalSet `json:"team"`
}

// GoalDTO represents a month's goal definition.
type GoalDTO struct {
	Month     string                         `json:"month"`
	TeamGoal  commission.TeamGoalSet         `json:"team_goal"`
	UserGoals map[string]commission.UserGoal `json:"user_goals"`
}

func toGoalDTO(g commission.Goal) GoalDTO {
	return GoalDTO{
		Month:     string(g.Month),
		TeamGoal:  g.TeamGoal,
		UserGoals: g.UserGoals,
	}
}

// =============================================================================
// SALE / MESSAGE TYPES
// =============================================================================

// SaleDTO represents a logged sale.
type SaleDTO struct {
	ID         string  `json:"id"`
	SellerID   string  `json:"seller_id"`
	SellerName string  `json:"seller_name"`
	Amount     float64 `json:"amount"`
	Units      int     `json:"units"`
	Category   string  `json:"category"`
	Payment    string  `json:"payment"`
	Date       string  `json:"date"`
}

// CreateSaleRequest is the request to log a sale.
type CreateSaleRequest struct {
	SellerID string  `json:"seller_id"`
	Amount   float64 `json:"amount"`
	Units    int     `json:"units"`
	Category string  `json:"category"`
	Payment  string  `json:"payment"`
	Date     string  `json:"date"`
}

// MessageDTO represents a notice board entry.
type MessageDTO struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	Date    string `json:"date"`
}

// CreateMessageRequest is the request to post a notice.
type CreateMessageRequest struct {
	Content string `json:"content"`
}

// =============================================================================
// STATEMENT TYPES
// =============================================================================

// ManagerStatementDTO is the manager's monthly breakdown.
type ManagerStatementDTO struct {
	User       UserDTO                 `json:"user"`
	Score      commission.ManagerScore `json:"score"`
	Commission string                  `json:"commission"`
}

// StaffStatementDTO is a seller's or cashier's monthly breakdown.
type StaffStatementDTO struct {
	User       UserDTO                  `json:"user"`
	Seller     *commission.SellerScore  `json:"seller,omitempty"`
	Cashier    *commission.CashierScore `json:"cashier,omitempty"`
	Final      float64                  `json:"final"`
	Commission string                   `json:"commission"`
}

// TeamCommissionsDTO is the full commissions view for a month.
type TeamCommissionsDTO struct {
	Month           string               `json:"month"`
	Manager         *ManagerStatementDTO `json:"manager,omitempty"`
	Staff           []StaffStatementDTO  `json:"staff"`
	MissingGoalSets []UserDTO            `json:"missing_goal_sets,omitempty"`
}

// =============================================================================
// COACH TYPES
// =============================================================================

// CoachRequest carries the manager's objective for the coaching plan.
type CoachRequest struct {
	Prompt string `json:"prompt"`
}

// CoachResponse wraps the coaching text.
type CoachResponse struct {
	Text string `json:"text"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}

// =============================================================================
// CONVERSION HELPERS
// =============================================================================

func toUserDTO(u commission.User) UserDTO {
	return UserDTO{
		ID:            u.ID,
		Name:          u.Name,
		Role:          string(u.Role),
		AvatarURL:     u.AvatarURL,
		AssignedHours: u.Hours(),
	}
}

func toUserDTOs(users []commission.User) []UserDTO {
	dtos := make([]UserDTO, len(users))
	for i, u := range users {
		dtos[i] = toUserDTO(u)
	}
	return dtos
}

func toSaleDTO(s commission.Sale) SaleDTO {
	return SaleDTO{
		ID:         s.ID,
		SellerID:   s.SellerID,
		SellerName: s.SellerName,
		Amount:     s.Amount,
		Units:      s.Units,
		Category:   string(s.Category),
		Payment:    string(s.Payment),
		Date:       string(s.Date),
	}
}

func toSaleDTOs(sales []commission.Sale) []SaleDTO {
	dtos := make([]SaleDTO, len(sales))
	for i, s := range sales {
		dtos[i] = toSaleDTO(s)
	}
	return dtos
}

func toMessageDTO(m commission.Message) MessageDTO {
	return MessageDTO{
		ID:      m.ID,
		Content: m.Content,
		Date:    m.Date.Format(time.RFC3339),
	}
}

func toManagerStatementDTO(s *commission.ManagerStatement) *ManagerStatementDTO {
	if s == nil {
		return nil
	}
	return &ManagerStatementDTO{
		User:       toUserDTO(s.User),
		Score:      s.Score,
		Commission: s.Commission.StringFixed(2),
	}
}

func toStaffStatementDTO(s commission.StaffStatement) StaffStatementDTO {
	return StaffStatementDTO{
		User:       toUserDTO(s.User),
		Seller:     s.Seller,
		Cashier:    s.Cashier,
		Final:      s.Final,
		Commission: s.Commission.StringFixed(2),
	}
}

func toTeamCommissionsDTO(tc *commission.TeamCommissions) TeamCommissionsDTO {
	dto := TeamCommissionsDTO{
		Month:   string(tc.Month),
		Manager: toManagerStatementDTO(tc.Manager),
		Staff:   make([]StaffStatementDTO, len(tc.Staff)),
	}
	for i, s := range tc.Staff {
		dto.Staff[i] = toStaffStatementDTO(s)
	}
	if len(tc.MissingGoalSets) > 0 {
		dto.MissingGoalSets = toUserDTOs(tc.MissingGoalSets)
	}
	return dto
}
