// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import (
	"errors"
	"fmt"
)

// Mint gate sentinels, one per gate in the eligibility sequence.
var (
	// ErrPaused indicates the registry-wide pause flag is set.
	ErrPaused = errors.New("paused")

	// ErrNonExistentID indicates the token id has no configuration.
	ErrNonExistentID = errors.New("non existent id")

	// ErrNonMintable indicates the token's mintable flag is off.
	ErrNonMintable = errors.New("non mintable")

	// ErrLowSupply indicates the request would push supply past max_amount.
	ErrLowSupply = errors.New("low supply")

	// ErrMaxPerWallet indicates the requester's live balance would exceed max_per_user.
	ErrMaxPerWallet = errors.New("max per wallet")

	// ErrExceedsBalance indicates the requester's cumulative minted counter
	// would exceed max_per_user.
	ErrExceedsBalance = errors.New("exceeds balance")
)

// Path and payment sentinels.
var (
	// ErrAllowlistOnly indicates the wrong mint path for the token's allowlist
	// flag (public mint on an allowlist token, allowlist mint on a public one).
	ErrAllowlistOnly = errors.New("allowlist only")

	// ErrNotEnoughPayment indicates attached payment below cost*amount.
	ErrNotEnoughPayment = errors.New("not enough payment")

	// ErrNotVerified indicates the allowlist signature did not recover to the
	// token's validator.
	ErrNotVerified = errors.New("not verified")

	// ErrCannotMint is the generic wrapper for any shared-gate failure.
	ErrCannotMint = errors.New("cannot mint")
)

// Registry and access sentinels.
var (
	// ErrAlreadyExists indicates a token configuration already exists for the id.
	ErrAlreadyExists = errors.New("already exists")

	// ErrIndexOutOfRange indicates an article lookup past the end of the log.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrUnauthorized indicates a failed role or ownership check.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrRateLimited indicates temporary login lock due to rate limiting.
	ErrRateLimited = errors.New("rate limited")
)

// CannotMint wraps a failed shared-gate error so callers can match both the
// specific gate and the generic failure with errors.Is.
func CannotMint(gate error) error {
	return fmt.Errorf("%w: %w", ErrCannotMint, gate)
}
