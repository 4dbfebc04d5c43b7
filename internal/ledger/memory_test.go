package ledger

import (
	"context"
	"sync"
	"testing"

	"github.com/nft-now/sovereignty/internal/model"
)

func TestMemory_MintAndRead(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	m := NewMemory()
	a := model.Address{1}
	b := model.Address{2}

	if err := m.Mint(ctx, a, 1, 3); err != nil {
		t.Fatalf("mint: %v", err)
	}
	if err := m.Mint(ctx, b, 1, 2); err != nil {
		t.Fatalf("mint: %v", err)
	}
	if err := m.Mint(ctx, a, 2, 7); err != nil {
		t.Fatalf("mint: %v", err)
	}

	if n, _ := m.BalanceOf(ctx, a, 1); n != 3 {
		t.Fatalf("balance a/1: want 3, got %d", n)
	}
	if n, _ := m.BalanceOf(ctx, b, 1); n != 2 {
		t.Fatalf("balance b/1: want 2, got %d", n)
	}
	if n, _ := m.TotalSupply(ctx, 1); n != 5 {
		t.Fatalf("supply 1: want 5, got %d", n)
	}
	if n, _ := m.TotalSupply(ctx, 2); n != 7 {
		t.Fatalf("supply 2: want 7, got %d", n)
	}
	if n, _ := m.BalanceOf(ctx, b, 9); n != 0 {
		t.Fatalf("unknown token balance: want 0, got %d", n)
	}
}

func TestMemory_ConcurrentMint(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	m := NewMemory()
	a := model.Address{3}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = m.Mint(ctx, a, 1, 1)
		}()
	}
	wg.Wait()

	if n, _ := m.BalanceOf(ctx, a, 1); n != 50 {
		t.Fatalf("concurrent mints lost: want 50, got %d", n)
	}
	if n, _ := m.TotalSupply(ctx, 1); n != 50 {
		t.Fatalf("supply mismatch: want 50, got %d", n)
	}
}
