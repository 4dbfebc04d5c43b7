package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/nft-now/sovereignty/internal/errs"
	"github.com/nft-now/sovereignty/internal/ledger"
	"github.com/nft-now/sovereignty/internal/model"
	"github.com/nft-now/sovereignty/internal/registry"
	"github.com/nft-now/sovereignty/internal/repository"
	"github.com/nft-now/sovereignty/internal/sigver"
)

// MintService defines the three mint entry points plus ledger read-throughs.
type MintService interface {
	// Mint runs a public mint with attached payment.
	Mint(ctx context.Context, caller model.Address, tokenID, amount, payment int64) error
	// AllowlistMint runs a signature-gated mint with attached payment.
	AllowlistMint(ctx context.Context, caller model.Address, tokenID, amount, payment, nonce int64, wallet model.Address, sig []byte) error
	// BulkDrop mints one unit to each recipient; Admin only.
	BulkDrop(ctx context.Context, caller model.Address, tokenID int64, recipients []model.Address) error
	// BalanceOf returns a wallet's live balance for a token.
	BalanceOf(ctx context.Context, owner model.Address, tokenID int64) (int64, error)
	// TotalSupply returns a token's live supply.
	TotalSupply(ctx context.Context, tokenID int64) (int64, error)
	// MintedCount returns a wallet's cumulative minted counter for a token.
	MintedCount(ctx context.Context, wallet model.Address, tokenID int64) (int64, error)
	// HasClaimed reports whether a wallet has used the allowlist path for a
	// token. Informational; never consulted as a gate.
	HasClaimed(ctx context.Context, wallet model.Address, tokenID int64) (bool, error)
}

type MintServiceImpl struct {
	mints    repository.MintRepository
	configs  repository.RegistryRepository
	roles    repository.RoleRepository
	verifier *sigver.Verifier
	book     ledger.Ledger
	maxDrop  int
}

// NewMintService constructs MintService with required dependencies. maxDrop
// bounds the bulk airdrop recipient list; per-call cost is the one place
// that scales with caller input.
func NewMintService(
	mints repository.MintRepository,
	configs repository.RegistryRepository,
	roles repository.RoleRepository,
	verifier *sigver.Verifier,
	book ledger.Ledger,
	maxDrop int,
) *MintServiceImpl {
	if maxDrop <= 0 {
		maxDrop = 500
	}
	return &MintServiceImpl{mints: mints, configs: configs, roles: roles, verifier: verifier, book: book, maxDrop: maxDrop}
}

// Mint runs the public path: shared gates, allowlist exclusivity, payment.
func (s *MintServiceImpl) Mint(ctx context.Context, caller model.Address, tokenID, amount, payment int64) error {
	if amount <= 0 {
		return errors.New("validation: non-positive amount")
	}
	if payment < 0 {
		return errors.New("validation: negative payment")
	}
	return s.mints.Mint(ctx, repository.MintTx{
		TokenID: tokenID,
		Wallet:  caller,
		Amount:  amount,
		Payment: payment,
		Check: func(snap model.MintSnapshot) error {
			return registry.PublicCheck(snap, amount, payment)
		},
	})
}

// AllowlistMint verifies the detached signature against the token's
// validator first, then runs the allowlist path. The nonce is caller-supplied
// and not tracked; the claimed flag is recorded but not read back as a gate,
// so wallet caps are the only bound on repeat claims.
func (s *MintServiceImpl) AllowlistMint(
	ctx context.Context, caller model.Address, tokenID, amount, payment, nonce int64, wallet model.Address, sig []byte,
) error {
	if amount <= 0 {
		return errors.New("validation: non-positive amount")
	}
	if payment < 0 {
		return errors.New("validation: negative payment")
	}

	cfg, err := s.configs.GetTokenConfig(ctx, tokenID)
	if err != nil {
		return err
	}
	if cfg == nil {
		return errs.CannotMint(errs.ErrNonExistentID)
	}
	signer, err := s.verifier.RecoverMintSigner(tokenID, nonce, wallet, sig)
	if err != nil {
		return fmt.Errorf("%w: %w", errs.ErrNotVerified, err)
	}
	if signer != cfg.Validator {
		return errs.ErrNotVerified
	}

	return s.mints.Mint(ctx, repository.MintTx{
		TokenID:     tokenID,
		Wallet:      caller,
		Amount:      amount,
		Payment:     payment,
		MarkClaimed: true,
		Check: func(snap model.MintSnapshot) error {
			return registry.AllowlistCheck(snap, amount, payment)
		},
	})
}

// BulkDrop mints one unit per recipient, skipping wallet caps and payment.
func (s *MintServiceImpl) BulkDrop(ctx context.Context, caller model.Address, tokenID int64, recipients []model.Address) error {
	if len(recipients) == 0 {
		return errors.New("validation: empty recipients")
	}
	if len(recipients) > s.maxDrop {
		return fmt.Errorf("validation: recipients list too large (%d > %d)", len(recipients), s.maxDrop)
	}
	admin, err := s.roles.IsAdmin(ctx, caller)
	if err != nil {
		return err
	}
	if !admin {
		return errs.ErrUnauthorized
	}
	n := int64(len(recipients))
	return s.mints.BulkDrop(ctx, tokenID, caller, recipients, func(snap model.DropSnapshot) error {
		return registry.DropCheck(snap, n)
	})
}

// BalanceOf reads through to the ledger primitive.
func (s *MintServiceImpl) BalanceOf(ctx context.Context, owner model.Address, tokenID int64) (int64, error) {
	return s.book.BalanceOf(ctx, owner, tokenID)
}

// TotalSupply reads through to the ledger primitive.
func (s *MintServiceImpl) TotalSupply(ctx context.Context, tokenID int64) (int64, error) {
	return s.book.TotalSupply(ctx, tokenID)
}

// MintedCount reads the cumulative counter, which keeps growing even after
// tokens are transferred or burned.
func (s *MintServiceImpl) MintedCount(ctx context.Context, wallet model.Address, tokenID int64) (int64, error) {
	return s.mints.MintedCount(ctx, tokenID, wallet)
}

// HasClaimed reads the recorded allowlist claim flag.
func (s *MintServiceImpl) HasClaimed(ctx context.Context, wallet model.Address, tokenID int64) (bool, error) {
	return s.mints.HasClaimed(ctx, tokenID, wallet)
}
