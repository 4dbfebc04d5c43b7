package repository

import (
	"context"

	"github.com/nft-now/sovereignty/internal/model"
)

// MintTx describes one mint attempt. Check is composed by the service from
// the pure gate functions and runs against the snapshot read under lock
// inside the transaction; any error rolls the whole attempt back.
type MintTx struct {
	TokenID     int64
	Wallet      model.Address
	Amount      int64
	Payment     int64
	MarkClaimed bool // allowlist path: record the claimed flag (write-only)
	Check       func(model.MintSnapshot) error
}

// MintRepository applies mint state transitions atomically: gate evaluation,
// counter increment, ledger credit, treasury credit, and event record commit
// or roll back together.
type MintRepository interface {
	// Mint runs one public or allowlist mint attempt.
	Mint(ctx context.Context, tx MintTx) error

	// BulkDrop mints one unit to each recipient in list order, bumping each
	// recipient's cumulative counter, and records a single airdrop event for
	// the batch. All-or-nothing: a failed check mints nothing.
	BulkDrop(ctx context.Context, tokenID int64, actor model.Address, recipients []model.Address, check func(model.DropSnapshot) error) error

	// MintedCount returns the wallet's cumulative minted counter for a token.
	MintedCount(ctx context.Context, tokenID int64, wallet model.Address) (int64, error)

	// HasClaimed reports whether the wallet has used the allowlist mint for a
	// token. Recorded but not consulted as a gate.
	HasClaimed(ctx context.Context, tokenID int64, wallet model.Address) (bool, error)
}
