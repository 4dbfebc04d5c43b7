package ledger

import (
	"context"
	"sync"

	"github.com/nft-now/sovereignty/internal/model"
)

type holding struct {
	tokenID int64
	owner   model.Address
}

// Memory is an in-process Ledger used by tests and local development.
type Memory struct {
	mu       sync.Mutex
	balances map[holding]int64
	supply   map[int64]int64
}

// NewMemory constructs an empty in-memory ledger.
func NewMemory() *Memory {
	return &Memory{
		balances: make(map[holding]int64),
		supply:   make(map[int64]int64),
	}
}

// Mint credits owner and grows supply.
func (m *Memory) Mint(_ context.Context, owner model.Address, tokenID, amount int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.balances[holding{tokenID, owner}] += amount
	m.supply[tokenID] += amount
	return nil
}

// BalanceOf returns owner's balance for tokenID.
func (m *Memory) BalanceOf(_ context.Context, owner model.Address, tokenID int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.balances[holding{tokenID, owner}], nil
}

// TotalSupply returns the total supply for tokenID.
func (m *Memory) TotalSupply(_ context.Context, tokenID int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.supply[tokenID], nil
}
