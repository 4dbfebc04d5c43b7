package repository

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/nft-now/sovereignty/internal/model"
)

// StateRepository stores the registry-wide singleton state: owner address,
// pause flag, and the accumulated treasury of mint payments.
type StateRepository interface {
	// Bootstrap creates the singleton state row with the given owner and
	// grants the owner Admin. A no-op when state already exists.
	Bootstrap(ctx context.Context, owner model.Address) error

	// Owner returns the designated owner identity.
	Owner(ctx context.Context) (model.Address, error)

	// IsPaused reports the global pause flag.
	IsPaused(ctx context.Context) (bool, error)

	// SetPaused sets the global pause flag.
	SetPaused(ctx context.Context, v bool) error

	// TreasuryBalance returns the current treasury balance.
	TreasuryBalance(ctx context.Context) (int64, error)

	// Withdraw zeroes the treasury and records a withdrawal event for the
	// recipient, returning the amount paid out. The payout record is written
	// last inside the transaction.
	Withdraw(ctx context.Context, to model.Address) (int64, error)
}

// ChallengeRepository stores single-use login challenges.
type ChallengeRepository interface {
	// Create stores a fresh challenge.
	Create(ctx context.Context, c model.Challenge) error

	// Consume atomically marks the challenge used and returns it.
	// ErrNotFound for unknown, expired, or already-used challenges.
	Consume(ctx context.Context, id uuid.UUID) (*model.Challenge, error)
}
