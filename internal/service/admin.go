package service

import (
	"context"
	"errors"

	"github.com/nft-now/sovereignty/internal/errs"
	"github.com/nft-now/sovereignty/internal/model"
	"github.com/nft-now/sovereignty/internal/repository"
)

// AdminService defines the administrative control surface: pause, treasury
// withdrawal, per-token flag mutation, and role management.
type AdminService interface {
	// Pause sets the registry-wide pause flag; Admin only.
	Pause(ctx context.Context, caller model.Address, v bool) error
	// IsPaused reports the pause flag; open read.
	IsPaused(ctx context.Context) (bool, error)
	// Withdraw pays the full treasury balance to the caller; Admin only.
	Withdraw(ctx context.Context, caller model.Address) (int64, error)
	// SetMintable flips a token's mintable flag; Admin only.
	SetMintable(ctx context.Context, caller model.Address, tokenID int64, v bool) error
	// SetAllowlist flips a token's allowlist flag; Admin only.
	SetAllowlist(ctx context.Context, caller model.Address, tokenID int64, v bool) error
	// SetAllowlistCost updates a token's allowlist price; Admin only.
	SetAllowlistCost(ctx context.Context, caller model.Address, tokenID int64, cost int64) error
	// AddAuthor grants Author; Admin only.
	AddAuthor(ctx context.Context, caller, target model.Address) error
	// RemoveAuthor revokes Author; Admin only.
	RemoveAuthor(ctx context.Context, caller, target model.Address) error
	// AddAdmin grants Admin; restricted to the designated owner identity,
	// a stricter capability than generic Admin.
	AddAdmin(ctx context.Context, caller, target model.Address) error
	// RenounceAdmin drops the caller's own Admin bit unconditionally.
	RenounceAdmin(ctx context.Context, caller model.Address) error
	// IsAdmin reports the live Admin bit; open read.
	IsAdmin(ctx context.Context, account model.Address) (bool, error)
	// IsAuthor reports the live Author bit; open read.
	IsAuthor(ctx context.Context, account model.Address) (bool, error)
	// RoleGrants returns the append-only grant history.
	RoleGrants(ctx context.Context) ([]model.RoleGrant, error)
}

type AdminServiceImpl struct {
	roles repository.RoleRepository
	state repository.StateRepository
	cfgs  repository.RegistryRepository
}

// NewAdminService constructs AdminService with required dependencies.
func NewAdminService(roles repository.RoleRepository, state repository.StateRepository, cfgs repository.RegistryRepository) *AdminServiceImpl {
	return &AdminServiceImpl{roles: roles, state: state, cfgs: cfgs}
}

// requireAdmin rejects callers without the Admin capability.
func (s *AdminServiceImpl) requireAdmin(ctx context.Context, caller model.Address) error {
	ok, err := s.roles.IsAdmin(ctx, caller)
	if err != nil {
		return err
	}
	if !ok {
		return errs.ErrUnauthorized
	}
	return nil
}

// requireOwner rejects callers other than the designated owner. Admin is not
// sufficient here.
func (s *AdminServiceImpl) requireOwner(ctx context.Context, caller model.Address) error {
	owner, err := s.state.Owner(ctx)
	if err != nil {
		return err
	}
	if caller != owner {
		return errs.ErrUnauthorized
	}
	return nil
}

// Pause sets the registry-wide pause flag.
func (s *AdminServiceImpl) Pause(ctx context.Context, caller model.Address, v bool) error {
	if err := s.requireAdmin(ctx, caller); err != nil {
		return err
	}
	return s.state.SetPaused(ctx, v)
}

// IsPaused reports the pause flag.
func (s *AdminServiceImpl) IsPaused(ctx context.Context) (bool, error) {
	return s.state.IsPaused(ctx)
}

// Withdraw pays the full treasury balance out to the caller.
func (s *AdminServiceImpl) Withdraw(ctx context.Context, caller model.Address) (int64, error) {
	if err := s.requireAdmin(ctx, caller); err != nil {
		return 0, err
	}
	return s.state.Withdraw(ctx, caller)
}

// SetMintable flips a token's mintable flag.
func (s *AdminServiceImpl) SetMintable(ctx context.Context, caller model.Address, tokenID int64, v bool) error {
	if err := s.requireAdmin(ctx, caller); err != nil {
		return err
	}
	return s.cfgs.SetMintable(ctx, tokenID, v)
}

// SetAllowlist flips a token's allowlist flag.
func (s *AdminServiceImpl) SetAllowlist(ctx context.Context, caller model.Address, tokenID int64, v bool) error {
	if err := s.requireAdmin(ctx, caller); err != nil {
		return err
	}
	return s.cfgs.SetAllowlist(ctx, tokenID, v)
}

// SetAllowlistCost updates a token's allowlist price.
func (s *AdminServiceImpl) SetAllowlistCost(ctx context.Context, caller model.Address, tokenID int64, cost int64) error {
	if err := s.requireAdmin(ctx, caller); err != nil {
		return err
	}
	if cost < 0 {
		return errors.New("validation: negative cost")
	}
	return s.cfgs.SetAllowlistCost(ctx, tokenID, cost)
}

// AddAuthor grants the Author capability.
func (s *AdminServiceImpl) AddAuthor(ctx context.Context, caller, target model.Address) error {
	if err := s.requireAdmin(ctx, caller); err != nil {
		return err
	}
	return s.roles.GrantAuthor(ctx, target)
}

// RemoveAuthor revokes the Author capability; history is retained.
func (s *AdminServiceImpl) RemoveAuthor(ctx context.Context, caller, target model.Address) error {
	if err := s.requireAdmin(ctx, caller); err != nil {
		return err
	}
	return s.roles.RevokeAuthor(ctx, target)
}

// AddAdmin grants Admin. Owner-only: this asymmetry against the Admin-gated
// author operations is intentional privilege separation.
func (s *AdminServiceImpl) AddAdmin(ctx context.Context, caller, target model.Address) error {
	if err := s.requireOwner(ctx, caller); err != nil {
		return err
	}
	return s.roles.GrantAdmin(ctx, target)
}

// RenounceAdmin drops the caller's own Admin bit. Unconditional: renouncing
// the last Admin permanently bricks administrative functions.
func (s *AdminServiceImpl) RenounceAdmin(ctx context.Context, caller model.Address) error {
	if err := s.requireAdmin(ctx, caller); err != nil {
		return err
	}
	return s.roles.RenounceAdmin(ctx, caller)
}

// IsAdmin reports the live Admin bit.
func (s *AdminServiceImpl) IsAdmin(ctx context.Context, account model.Address) (bool, error) {
	return s.roles.IsAdmin(ctx, account)
}

// IsAuthor reports the live Author bit.
func (s *AdminServiceImpl) IsAuthor(ctx context.Context, account model.Address) (bool, error) {
	return s.roles.IsAuthor(ctx, account)
}

// RoleGrants returns the grant history.
func (s *AdminServiceImpl) RoleGrants(ctx context.Context) ([]model.RoleGrant, error) {
	return s.roles.ListRoleGrants(ctx)
}
