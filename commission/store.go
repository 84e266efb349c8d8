/*
store.go - Persistence interfaces for roster, goals and progress logs

PURPOSE:
  Defines the interface between the engine and storage. The engine never
  holds direct references to stored records; it resolves ids through
  these stores on every read and re-derives all aggregates from the full
  progress logs.

KEY INTERFACES:
  UserStore:               roster CRUD
  GoalStore:               one Goal per month, replace-by-month writes
  StoreProgressStore:      store-level progress log
  IndividualProgressStore: per-user progress log
  SaleStore:               transaction log for ranking/reporting views
  MessageStore:            manager notice board

SEMANTICS:
  - Progress and sale records are created singly, mutable in place by id,
    deletable by id. Stores serialize writes with last-writer-wins; there
    are no optimistic-concurrency checks.
  - GoalStore.Set replaces the whole Goal for its month. Get returns
    ErrNoGoalDefined for a month with no record.
  - Missing ids surface ErrRecordNotFound (ErrUserNotFound for users).

IMPLEMENTATIONS:
  - commission/store: in-memory, for tests and dev
  - store/sqlite:     SQLite-backed, for production
*/
package commission

import "context"

// UserStore manages the staff roster.
type UserStore interface {
	ListUsers(ctx context.Context) ([]User, error)
	GetUser(ctx context.Context, id string) (User, error)
	CreateUser(ctx context.Context, u User) error
	UpdateUser(ctx context.Context, u User) error
	DeleteUser(ctx context.Context, id string) error
}

// GoalStore manages monthly goal records, keyed by month.
type GoalStore interface {
	// GetGoal returns the Goal for the month, or ErrNoGoalDefined.
	GetGoal(ctx context.Context, month Month) (Goal, error)

	// SetGoal stores the Goal, replacing any existing record for its month.
	SetGoal(ctx context.Context, g Goal) error
}

// StoreProgressStore manages the store-level progress log.
type StoreProgressStore interface {
	ListStoreProgress(ctx context.Context) ([]StoreProgress, error)
	CreateStoreProgress(ctx context.Context, p StoreProgress) error
	UpdateStoreProgress(ctx context.Context, p StoreProgress) error
	DeleteStoreProgress(ctx context.Context, id string) error
}

// IndividualProgressStore manages per-user progress logs.
type IndividualProgressStore interface {
	ListIndividualProgress(ctx context.Context) ([]IndividualProgress, error)
	ListIndividualProgressByUser(ctx context.Context, userID string) ([]IndividualProgress, error)
	CreateIndividualProgress(ctx context.Context, p IndividualProgress) error
	UpdateIndividualProgress(ctx context.Context, p IndividualProgress) error
	DeleteIndividualProgress(ctx context.Context, id string) error
}

// SaleStore manages the sale transaction log.
type SaleStore interface {
	ListSales(ctx context.Context) ([]Sale, error)
	ListSalesBySeller(ctx context.Context, sellerID string) ([]Sale, error)
	CreateSale(ctx context.Context, s Sale) error
	DeleteSale(ctx context.Context, id string) error
}

// MessageStore manages notice board messages.
type MessageStore interface {
	ListMessages(ctx context.Context) ([]Message, error)
	CreateMessage(ctx context.Context, m Message) error
	DeleteMessage(ctx context.Context, id string) error
}

// Store bundles every collection the engine reads and writes.
type Store interface {
	UserStore
	GoalStore
	StoreProgressStore
	IndividualProgressStore
	SaleStore
	MessageStore
}
