// Package memstore provides an in-memory account store. It backs the
// session and engine tests, where its failure hooks simulate a bank that
// goes away mid-operation, and can serve as a throwaway backend for local
// experiments.
package memstore

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/atmcore/internal/money"
	"github.com/dmitrijs2005/atmcore/internal/store"
)

// MemStore keeps account records in a map. The exported *Err fields inject
// failures into the corresponding operations; AdjustErr receives the call
// arguments so tests can fail e.g. only the credit leg of a transfer.
type MemStore struct {
	mu       sync.Mutex
	open     bool
	accounts map[string]*store.Account

	OpenErr      error
	FindErr      error
	SetActiveErr error
	ExistsErr    error
	AdjustErr    func(cardNumber string, delta money.Amount) error
}

func New() *MemStore {
	return &MemStore{accounts: make(map[string]*store.Account)}
}

// Put stores a copy of the account, overwriting any previous record.
func (m *MemStore) Put(acc store.Account) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts[acc.CardNumber] = &acc
}

// IsOpen reports whether the store connection is currently open.
func (m *MemStore) IsOpen() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.open
}

func (m *MemStore) Open(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.OpenErr != nil {
		return m.OpenErr
	}
	m.open = true
	return nil
}

func (m *MemStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.open = false
	return nil
}

func (m *MemStore) FindAccount(ctx context.Context, cardNumber string) (*store.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.open {
		return nil, store.ErrNotConnected
	}
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	acc, ok := m.accounts[cardNumber]
	if !ok {
		return nil, store.ErrNotFound
	}
	snapshot := *acc
	return &snapshot, nil
}

func (m *MemStore) SetActive(ctx context.Context, cardNumber string, active bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.open {
		return store.ErrNotConnected
	}
	if m.SetActiveErr != nil {
		return m.SetActiveErr
	}
	acc, ok := m.accounts[cardNumber]
	if !ok {
		return store.ErrNotFound
	}
	acc.Active = active
	return nil
}

func (m *MemStore) AdjustBalance(ctx context.Context, cardNumber string, delta money.Amount) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.open {
		return store.ErrNotConnected
	}
	if m.AdjustErr != nil {
		if err := m.AdjustErr(cardNumber, delta); err != nil {
			return err
		}
	}
	acc, ok := m.accounts[cardNumber]
	if !ok {
		return store.ErrNotFound
	}
	next := acc.Balance.Add(delta)
	if next.IsNegative() {
		return store.ErrNegativeBalance
	}
	acc.Balance = next
	return nil
}

func (m *MemStore) Exists(ctx context.Context, cardNumber string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.open {
		return false, store.ErrNotConnected
	}
	if m.ExistsErr != nil {
		return false, m.ExistsErr
	}
	_, ok := m.accounts[cardNumber]
	return ok, nil
}

// Balance returns the current balance of a card, bypassing the open check.
// Test helper.
func (m *MemStore) Balance(cardNumber string) money.Amount {
	m.mu.Lock()
	defer m.mu.Unlock()
	if acc, ok := m.accounts[cardNumber]; ok {
		return acc.Balance
	}
	return money.Zero
}

// Active returns the active flag of a card, bypassing the open check.
// Test helper.
func (m *MemStore) Active(cardNumber string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if acc, ok := m.accounts[cardNumber]; ok {
		return acc.Active
	}
	return false
}
