// Package ledger defines the multi-token ledger primitive the registry
// depends on. The registry trusts it for balance tracking and supply
// accounting; transfer semantics beyond minting are outside the registry.
package ledger

import (
	"context"

	"github.com/nft-now/sovereignty/internal/model"
)

// Ledger is the trusted balance/supply collaborator.
type Ledger interface {
	// Mint credits amount units of tokenID to owner and grows total supply.
	Mint(ctx context.Context, owner model.Address, tokenID, amount int64) error
	// BalanceOf returns owner's live balance for tokenID.
	BalanceOf(ctx context.Context, owner model.Address, tokenID int64) (int64, error)
	// TotalSupply returns the live total supply for tokenID.
	TotalSupply(ctx context.Context, tokenID int64) (int64, error)
}
