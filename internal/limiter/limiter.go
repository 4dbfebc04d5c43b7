// Package limiter defines interfaces and implementations for login rate limiting.
// Failed challenge signatures count as failures; enough of them in a window
// place a temporary block on the (wallet, ip) pair.
package limiter

import (
	"context"
	"time"

	"github.com/nft-now/sovereignty/internal/model"
)

// Limiter controls login attempts and temporary lockouts.
type Limiter interface {
	// Allow reports whether login is currently allowed and optional retry-after.
	Allow(ctx context.Context, wallet model.Address, ipHash []byte) (bool, time.Duration, error)
	// Success resets counters after a successful login.
	Success(ctx context.Context, wallet model.Address, ipHash []byte) error
	// Failure records a failed attempt; may place a temporary block.
	Failure(ctx context.Context, wallet model.Address, ipHash []byte) (bool, time.Duration, error)
}
