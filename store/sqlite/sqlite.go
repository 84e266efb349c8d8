/*
Package sqlite provides a SQLite-backed implementation of commission.Store.

PURPOSE:
  Persists the roster, monthly goals, progress logs, sales and messages.
  In production the same patterns apply to PostgreSQL - only minor SQL
  dialect differences.

KEY TABLES:
  users:               roster (role, assigned hours)
  goals:               one row per month; team and per-user goal sets are
                       stored as JSON documents (goal sets are replaced
                       wholesale per month, never patched)
  store_progress:      store-level daily progress log
  individual_progress: per-user progress log
  sales:               transaction log for ranking/reporting
  messages:            manager notice board

CONCURRENCY:
  Uses sync.RWMutex for thread-safety. Writes are last-writer-wins, per
  the store contract; there is no optimistic locking.

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging): multiple readers do
  not block and crash recovery is better behaved.

MIGRATION:
  Schema is auto-migrated on New(). Use ":memory:" for an in-memory
  database.

SEE ALSO:
  - commission/store.go:        interface definitions
  - commission/store/memory.go: in-memory implementation for testing
*/
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/mcbanda/commission-engine/commission"
)

// Store implements commission.Store using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a SQLite store at the given path. Use ":memory:" for an
// in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		role TEXT NOT NULL,
		avatar_url TEXT,
		assigned_hours REAL NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS goals (
		month TEXT PRIMARY KEY,
		team_json TEXT NOT NULL,
		user_goals_json TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS store_progress (
		id TEXT PRIMARY KEY,
		date TEXT NOT NULL,
		pesos REAL NOT NULL DEFAULT 0,
		tickets REAL NOT NULL DEFAULT 0,
		units REAL NOT NULL DEFAULT 0,
		footwear REAL NOT NULL DEFAULT 0,
		apparel REAL NOT NULL DEFAULT 0,
		shirts REAL NOT NULL DEFAULT 0,
		accessories REAL NOT NULL DEFAULT 0,
		socks REAL NOT NULL DEFAULT 0,
		credit_pesos REAL NOT NULL DEFAULT 0,
		credit_units REAL NOT NULL DEFAULT 0
	);

	CREATE INDEX IF NOT EXISTS idx_store_progress_date
		ON store_progress(date);

	CREATE TABLE IF NOT EXISTS individual_progress (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		date TEXT NOT NULL,
		pesos REAL NOT NULL DEFAULT 0,
		tickets REAL NOT NULL DEFAULT 0,
		units REAL NOT NULL DEFAULT 0,
		footwear REAL NOT NULL DEFAULT 0,
		apparel REAL NOT NULL DEFAULT 0,
		shirts REAL NOT NULL DEFAULT 0,
		accessories REAL NOT NULL DEFAULT 0,
		socks REAL NOT NULL DEFAULT 0,
		credit_pesos REAL NOT NULL DEFAULT 0,
		credit_units REAL NOT NULL DEFAULT 0
	);

	-- Hot path: monthly aggregation per user
	CREATE INDEX IF NOT EXISTS idx_individual_progress_user_date
		ON individual_progress(user_id, date);

	CREATE TABLE IF NOT EXISTS sales (
		id TEXT PRIMARY KEY,
		seller_id TEXT NOT NULL,
		seller_name TEXT NOT NULL,
		amount REAL NOT NULL,
		units INTEGER NOT NULL,
		category TEXT NOT NULL,
		payment TEXT NOT NULL,
		date TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_sales_seller_date
		ON sales(seller_id, date);

	CREATE TABLE IF NOT EXISTS messages (
		id TEXT PRIMARY KEY,
		content TEXT NOT NULL,
		date TEXT NOT NULL
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// USERS
// =============================================================================

func (s *Store) ListUsers(ctx context.Context) ([]commission.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, role, avatar_url, assigned_hours
		FROM users ORDER BY created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var users []commission.User
	for rows.Next() {
		var u commission.User
		var avatar sql.NullString
		if err := rows.Scan(&u.ID, &u.Name, &u.Role, &avatar, &u.AssignedHours); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		u.AvatarURL = avatar.String
		users = append(users, u)
	}
	return users, rows.Err()
}

func (s *Store) GetUser(ctx context.Context, id string) (commission.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var u commission.User
	var avatar sql.NullString
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, role, avatar_url, assigned_hours
		FROM users WHERE id = ?`, id).
		Scan(&u.ID, &u.Name, &u.Role, &avatar, &u.AssignedHours)
	if err == sql.ErrNoRows {
		return commission.User{}, commission.ErrUserNotFound
	}
	if err != nil {
		return commission.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	u.AvatarURL = avatar.String
	return u, nil
}

func (s *Store) CreateUser(ctx context.Context, u commission.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Create is an upsert by id, matching the memory store's
	// last-writer-wins contract.
	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO users (id, name, role, avatar_url, assigned_hours, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		u.ID, u.Name, u.Role, u.AvatarURL, u.AssignedHours,
		time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (s *Store) UpdateUser(ctx context.Context, u commission.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, `
		UPDATE users SET name = ?, role = ?, avatar_url = ?, assigned_hours = ?
		WHERE id = ?`,
		u.Name, u.Role, u.AvatarURL, u.AssignedHours, u.ID)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	return affectedOr(res, commission.ErrUserNotFound)
}

func (s *Store) DeleteUser(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return affectedOr(res, commission.ErrUserNotFound)
}

// =============================================================================
// GOALS - replace-by-month
// =============================================================================

func (s *Store) GetGoal(ctx context.Context, month commission.Month) (commission.Goal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var teamJSON, userGoalsJSON string
	err := s.db.QueryRowContext(ctx, `
		SELECT team_json, user_goals_json FROM goals WHERE month = ?`, month).
		Scan(&teamJSON, &userGoalsJSON)
	if err == sql.ErrNoRows {
		return commission.Goal{}, commission.ErrNoGoalDefined
	}
	if err != nil {
		return commission.Goal{}, fmt.Errorf("failed to get goal: %w", err)
	}

	g := commission.Goal{Month: month}
	if err := json.Unmarshal([]byte(teamJSON), &g.TeamGoal); err != nil {
		return commission.Goal{}, fmt.Errorf("failed to decode team goal: %w", err)
	}
	if err := json.Unmarshal([]byte(userGoalsJSON), &g.UserGoals); err != nil {
		return commission.Goal{}, fmt.Errorf("failed to decode user goals: %w", err)
	}
	return g, nil
}

func (s *Store) SetGoal(ctx context.Context, g commission.Goal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	teamJSON, err := json.Marshal(g.TeamGoal)
	if err != nil {
		return fmt.Errorf("failed to encode team goal: %w", err)
	}
	userGoalsJSON, err := json.Marshal(g.UserGoals)
	if err != nil {
		return fmt.Errorf("failed to encode user goals: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO goals (month, team_json, user_goals_json, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(month) DO UPDATE SET
			team_json = excluded.team_json,
			user_goals_json = excluded.user_goals_json,
			updated_at = excluded.updated_at`,
		g.Month, string(teamJSON), string(userGoalsJSON),
		time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to set goal: %w", err)
	}
	return nil
}

// =============================================================================
// STORE PROGRESS
// =============================================================================

const storeProgressCols = `id, date, pesos, tickets, units, footwear, apparel,
	shirts, accessories, socks, credit_pesos, credit_units`

func (s *Store) ListStoreProgress(ctx context.Context) ([]commission.StoreProgress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+storeProgressCols+` FROM store_progress ORDER BY date ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query store progress: %w", err)
	}
	defer rows.Close()

	var out []commission.StoreProgress
	for rows.Next() {
		var p commission.StoreProgress
		if err := rows.Scan(&p.ID, &p.Date, &p.Pesos, &p.Tickets, &p.Units,
			&p.Footwear, &p.Apparel, &p.Shirts, &p.Accessories, &p.Socks,
			&p.CreditPesos, &p.CreditUnits); err != nil {
			return nil, fmt.Errorf("failed to scan store progress: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *Store) CreateStoreProgress(ctx context.Context, p commission.StoreProgress) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO store_progress (`+storeProgressCols+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Date, p.Pesos, p.Tickets, p.Units, p.Footwear, p.Apparel,
		p.Shirts, p.Accessories, p.Socks, p.CreditPesos, p.CreditUnits)
	if err != nil {
		return fmt.Errorf("failed to create store progress: %w", err)
	}
	return nil
}

func (s *Store) UpdateStoreProgress(ctx context.Context, p commission.StoreProgress) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, `
		UPDATE store_progress SET date = ?, pesos = ?, tickets = ?, units = ?,
			footwear = ?, apparel = ?, shirts = ?, accessories = ?, socks = ?,
			credit_pesos = ?, credit_units = ?
		WHERE id = ?`,
		p.Date, p.Pesos, p.Tickets, p.Units, p.Footwear, p.Apparel, p.Shirts,
		p.Accessories, p.Socks, p.CreditPesos, p.CreditUnits, p.ID)
	if err != nil {
		return fmt.Errorf("failed to update store progress: %w", err)
	}
	return affectedOr(res, commission.ErrRecordNotFound)
}

func (s *Store) DeleteStoreProgress(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, `DELETE FROM store_progress WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete store progress: %w", err)
	}
	return affectedOr(res, commission.ErrRecordNotFound)
}

// =============================================================================
// INDIVIDUAL PROGRESS
// =============================================================================

const individualProgressCols = `id, user_id, date, pesos, tickets, units,
	footwear, apparel, shirts, accessories, socks, credit_pesos, credit_units`

func (s *Store) ListIndividualProgress(ctx context.Context) ([]commission.IndividualProgress, error) {
	return s.queryIndividualProgress(ctx,
		`SELECT `+individualProgressCols+` FROM individual_progress ORDER BY date ASC`)
}

func (s *Store) ListIndividualProgressByUser(ctx context.Context, userID string) ([]commission.IndividualProgress, error) {
	return s.queryIndividualProgress(ctx,
		`SELECT `+individualProgressCols+` FROM individual_progress
		 WHERE user_id = ? ORDER BY date ASC`, userID)
}

func (s *Store) queryIndividualProgress(ctx context.Context, query string, args ...any) ([]commission.IndividualProgress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query individual progress: %w", err)
	}
	defer rows.Close()

	var out []commission.IndividualProgress
	for rows.Next() {
		var p commission.IndividualProgress
		if err := rows.Scan(&p.ID, &p.UserID, &p.Date, &p.Pesos, &p.Tickets,
			&p.Units, &p.Footwear, &p.Apparel, &p.Shirts, &p.Accessories,
			&p.Socks, &p.CreditPesos, &p.CreditUnits); err != nil {
			return nil, fmt.Errorf("failed to scan individual progress: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *Store) CreateIndividualProgress(ctx context.Context, p commission.IndividualProgress) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO individual_progress (`+individualProgressCols+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.UserID, p.Date, p.Pesos, p.Tickets, p.Units, p.Footwear,
		p.Apparel, p.Shirts, p.Accessories, p.Socks, p.CreditPesos, p.CreditUnits)
	if err != nil {
		return fmt.Errorf("failed to create individual progress: %w", err)
	}
	return nil
}

func (s *Store) UpdateIndividualProgress(ctx context.Context, p commission.IndividualProgress) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// user_id is deliberately not updatable: ownership never changes.
	res, err := s.db.ExecContext(ctx, `
		UPDATE individual_progress SET date = ?, pesos = ?, tickets = ?,
			units = ?, footwear = ?, apparel = ?, shirts = ?, accessories = ?,
			socks = ?, credit_pesos = ?, credit_units = ?
		WHERE id = ?`,
		p.Date, p.Pesos, p.Tickets, p.Units, p.Footwear, p.Apparel, p.Shirts,
		p.Accessories, p.Socks, p.CreditPesos, p.CreditUnits, p.ID)
	if err != nil {
		return fmt.Errorf("failed to update individual progress: %w", err)
	}
	return affectedOr(res, commission.ErrRecordNotFound)
}

func (s *Store) DeleteIndividualProgress(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, `DELETE FROM individual_progress WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete individual progress: %w", err)
	}
	return affectedOr(res, commission.ErrRecordNotFound)
}

// =============================================================================
// SALES
// =============================================================================

func (s *Store) ListSales(ctx context.Context) ([]commission.Sale, error) {
	return s.querySales(ctx, `
		SELECT id, seller_id, seller_name, amount, units, category, payment, date
		FROM sales ORDER BY date ASC`)
}

func (s *Store) ListSalesBySeller(ctx context.Context, sellerID string) ([]commission.Sale, error) {
	return s.querySales(ctx, `
		SELECT id, seller_id, seller_name, amount, units, category, payment, date
		FROM sales WHERE seller_id = ? ORDER BY date ASC`, sellerID)
}

func (s *Store) querySales(ctx context.Context, query string, args ...any) ([]commission.Sale, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query sales: %w", err)
	}
	defer rows.Close()

	var out []commission.Sale
	for rows.Next() {
		var sale commission.Sale
		if err := rows.Scan(&sale.ID, &sale.SellerID, &sale.SellerName,
			&sale.Amount, &sale.Units, &sale.Category, &sale.Payment, &sale.Date); err != nil {
			return nil, fmt.Errorf("failed to scan sale: %w", err)
		}
		out = append(out, sale)
	}
	return out, rows.Err()
}

func (s *Store) CreateSale(ctx context.Context, sale commission.Sale) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO sales (id, seller_id, seller_name, amount, units, category, payment, date)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		sale.ID, sale.SellerID, sale.SellerName, sale.Amount, sale.Units,
		sale.Category, sale.Payment, sale.Date)
	if err != nil {
		return fmt.Errorf("failed to create sale: %w", err)
	}
	return nil
}

func (s *Store) DeleteSale(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, `DELETE FROM sales WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete sale: %w", err)
	}
	return affectedOr(res, commission.ErrRecordNotFound)
}

// =============================================================================
// MESSAGES
// =============================================================================

func (s *Store) ListMessages(ctx context.Context) ([]commission.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, content, date FROM messages ORDER BY date DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query messages: %w", err)
	}
	defer rows.Close()

	var out []commission.Message
	for rows.Next() {
		var m commission.Message
		var date string
		if err := rows.Scan(&m.ID, &m.Content, &date); err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		m.Date, _ = time.Parse(time.RFC3339, date)
		out = append(out, m)
	}
	return out, rows.Err()
}

func (s *Store) CreateMessage(ctx context.Context, m commission.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO messages (id, content, date) VALUES (?, ?, ?)`,
		m.ID, m.Content, m.Date.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}
	return nil
}

func (s *Store) DeleteMessage(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, `DELETE FROM messages WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}
	return affectedOr(res, commission.ErrRecordNotFound)
}

// =============================================================================
// HELPERS
// =============================================================================

func affectedOr(res sql.Result, missing error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return missing
	}
	return nil
}
