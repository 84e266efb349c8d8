// Package store provides commission.Store implementations.
package store

import (
	"context"
	"sort"
	"sync"

	"github.com/mcbanda/commission-engine/commission"
)

// =============================================================================
// MEMORY STORE - In-memory implementation (for testing/dev)
// =============================================================================

// Memory implements commission.Store with plain maps. Writes are
// serialized under one mutex with last-writer-wins semantics, matching
// the store contract.
type Memory struct {
	mu         sync.RWMutex
	users      map[string]commission.User
	userOrder  []string
	goals      map[commission.Month]commission.Goal
	storeProg  map[string]commission.StoreProgress
	indivProg  map[string]commission.IndividualProgress
	sales      map[string]commission.Sale
	messages   map[string]commission.Message
}

func NewMemory() *Memory {
	return &Memory{
		users:     make(map[string]commission.User),
		goals:     make(map[commission.Month]commission.Goal),
		storeProg: make(map[string]commission.StoreProgress),
		indivProg: make(map[string]commission.IndividualProgress),
		sales:     make(map[string]commission.Sale),
		messages:  make(map[string]commission.Message),
	}
}

// =============================================================================
// USERS
// =============================================================================

func (m *Memory) ListUsers(_ context.Context) ([]commission.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]commission.User, 0, len(m.users))
	for _, id := range m.userOrder {
		if u, ok := m.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (m *Memory) GetUser(_ context.Context, id string) (commission.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.users[id]
	if !ok {
		return commission.User{}, commission.ErrUserNotFound
	}
	return u, nil
}

func (m *Memory) CreateUser(_ context.Context, u commission.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.users[u.ID]; !exists {
		m.userOrder = append(m.userOrder, u.ID)
	}
	m.users[u.ID] = u
	return nil
}

func (m *Memory) UpdateUser(_ context.Context, u commission.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[u.ID]; !ok {
		return commission.ErrUserNotFound
	}
	m.users[u.ID] = u
	return nil
}

func (m *Memory) DeleteUser(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[id]; !ok {
		return commission.ErrUserNotFound
	}
	delete(m.users, id)
	for i, ordered := range m.userOrder {
		if ordered == id {
			m.userOrder = append(m.userOrder[:i], m.userOrder[i+1:]...)
			break
		}
	}
	return nil
}

// =============================================================================
// GOALS - replace-by-month
// =============================================================================

func (m *Memory) GetGoal(_ context.Context, month commission.Month) (commission.Goal, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.goals[month]
	if !ok {
		return commission.Goal{}, commission.ErrNoGoalDefined
	}
	return g, nil
}

func (m *Memory) SetGoal(_ context.Context, g commission.Goal) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.goals[g.Month] = g
	return nil
}

// =============================================================================
// STORE PROGRESS
// =============================================================================

func (m *Memory) ListStoreProgress(_ context.Context) ([]commission.StoreProgress, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]commission.StoreProgress, 0, len(m.storeProg))
	for _, p := range m.storeProg {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (m *Memory) CreateStoreProgress(_ context.Context, p commission.StoreProgress) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.storeProg[p.ID] = p
	return nil
}

func (m *Memory) UpdateStoreProgress(_ context.Context, p commission.StoreProgress) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.storeProg[p.ID]; !ok {
		return commission.ErrRecordNotFound
	}
	m.storeProg[p.ID] = p
	return nil
}

func (m *Memory) DeleteStoreProgress(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.storeProg[id]; !ok {
		return commission.ErrRecordNotFound
	}
	delete(m.storeProg, id)
	return nil
}

// =============================================================================
// INDIVIDUAL PROGRESS
// =============================================================================

func (m *Memory) ListIndividualProgress(_ context.Context) ([]commission.IndividualProgress, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]commission.IndividualProgress, 0, len(m.indivProg))
	for _, p := range m.indivProg {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (m *Memory) ListIndividualProgressByUser(_ context.Context, userID string) ([]commission.IndividualProgress, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []commission.IndividualProgress
	for _, p := range m.indivProg {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (m *Memory) CreateIndividualProgress(_ context.Context, p commission.IndividualProgress) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.indivProg[p.ID] = p
	return nil
}

func (m *Memory) UpdateIndividualProgress(_ context.Context, p commission.IndividualProgress) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.indivProg[p.ID]
	if !ok {
		return commission.ErrRecordNotFound
	}
	// Ownership never changes on update.
	p.UserID = existing.UserID
	m.indivProg[p.ID] = p
	return nil
}

func (m *Memory) DeleteIndividualProgress(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.indivProg[id]; !ok {
		return commission.ErrRecordNotFound
	}
	delete(m.indivProg, id)
	return nil
}

// =============================================================================
// SALES
// =============================================================================

func (m *Memory) ListSales(_ context.Context) ([]commission.Sale, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]commission.Sale, 0, len(m.sales))
	for _, s := range m.sales {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (m *Memory) ListSalesBySeller(_ context.Context, sellerID string) ([]commission.Sale, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []commission.Sale
	for _, s := range m.sales {
		if s.SellerID == sellerID {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (m *Memory) CreateSale(_ context.Context, s commission.Sale) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sales[s.ID] = s
	return nil
}

func (m *Memory) DeleteSale(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sales[id]; !ok {
		return commission.ErrRecordNotFound
	}
	delete(m.sales, id)
	return nil
}

// =============================================================================
// MESSAGES
// =============================================================================

func (m *Memory) ListMessages(_ context.Context) ([]commission.Message, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]commission.Message, 0, len(m.messages))
	for _, msg := range m.messages {
		out = append(out, msg)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (m *Memory) CreateMessage(_ context.Context, msg commission.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages[msg.ID] = msg
	return nil
}

func (m *Memory) DeleteMessage(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.messages[id]; !ok {
		return commission.ErrRecordNotFound
	}
	delete(m.messages, id)
	return nil
}
