// Package registry implements the mint-eligibility state machine as pure
// functions over state snapshots, so the gates can be tested without a
// database and composed into transactional checks by the service layer.
package registry

import (
	"math"

	"github.com/nft-now/sovereignty/internal/errs"
	"github.com/nft-now/sovereignty/internal/model"
)

// totalCost multiplies a per-unit price by amount, reporting overflow. A
// wrapped product would read as a tiny total and let underpayment through,
// so callers must fail the payment gate when ok is false.
func totalCost(cost, amount int64) (total int64, ok bool) {
	if cost > 0 && amount > math.MaxInt64/cost {
		return 0, false
	}
	return cost * amount, true
}

// MintCheck runs the shared eligibility gate sequence in order, failing fast
// with the first gate's sentinel. The per-wallet gates are deliberately two
// independent checks: live balance and the monotonically increasing minted
// counter can diverge once tokens are transferred or burned, and the counter
// gate stays binding either way.
func MintCheck(snap model.MintSnapshot, amount int64) error {
	if snap.Paused {
		return errs.ErrPaused
	}
	if snap.Config == nil {
		return errs.ErrNonExistentID
	}
	if !snap.Config.Mintable {
		return errs.ErrNonMintable
	}
	// Subtraction form keeps the comparisons exact for amounts near the
	// int64 ceiling; sum-form checks would wrap.
	if amount > snap.Config.MaxAmount-snap.Supply {
		return errs.ErrLowSupply
	}
	if amount > snap.Config.MaxPerUser-snap.Balance {
		return errs.ErrMaxPerWallet
	}
	if amount > snap.Config.MaxPerUser-snap.Counter {
		return errs.ErrExceedsBalance
	}
	return nil
}

// PublicCheck is the full public-path check: shared gates (wrapped in the
// generic cannot-mint error), the allowlist exclusivity gate, and payment.
func PublicCheck(snap model.MintSnapshot, amount, payment int64) error {
	if err := MintCheck(snap, amount); err != nil {
		return errs.CannotMint(err)
	}
	if snap.Config.HasAllowlist {
		return errs.ErrAllowlistOnly
	}
	total, ok := totalCost(snap.Config.PublicCost, amount)
	if !ok || payment < total {
		return errs.ErrNotEnoughPayment
	}
	return nil
}

// AllowlistCheck is the allowlist-path counterpart of PublicCheck. The
// inverse allowlist gate makes the two paths mutually exclusive per token.
// Signature verification happens before this, in the service layer.
func AllowlistCheck(snap model.MintSnapshot, amount, payment int64) error {
	if err := MintCheck(snap, amount); err != nil {
		return errs.CannotMint(err)
	}
	if !snap.Config.HasAllowlist {
		return errs.ErrAllowlistOnly
	}
	total, ok := totalCost(snap.Config.AllowlistCost, amount)
	if !ok || payment < total {
		return errs.ErrNotEnoughPayment
	}
	return nil
}

// DropCheck gates the admin bulk airdrop: pause, existence, and the supply
// ceiling against the recipient count. Per-wallet caps and payment are
// skipped here, a documented privileged bypass.
func DropCheck(snap model.DropSnapshot, recipients int64) error {
	if snap.Paused {
		return errs.ErrPaused
	}
	if snap.Config == nil {
		return errs.ErrNonExistentID
	}
	if recipients > snap.Config.MaxAmount-snap.Supply {
		return errs.ErrLowSupply
	}
	return nil
}
