package service

import (
	"context"
	"errors"
	"testing"

	"github.com/nft-now/sovereignty/internal/errs"
	"github.com/nft-now/sovereignty/internal/model"
	"github.com/nft-now/sovereignty/internal/repository"
)

type fakeStateRepo struct {
	owner  model.Address
	paused bool

	setPausedIn  bool
	setPausedErr error

	withdrawIn  model.Address
	withdrawOut int64
	withdrawErr error
}

var _ repository.StateRepository = (*fakeStateRepo)(nil)

func (f *fakeStateRepo) Bootstrap(_ context.Context, owner model.Address) error { return nil }
func (f *fakeStateRepo) Owner(_ context.Context) (model.Address, error)         { return f.owner, nil }
func (f *fakeStateRepo) IsPaused(_ context.Context) (bool, error)               { return f.paused, nil }
func (f *fakeStateRepo) SetPaused(_ context.Context, v bool) error {
	f.setPausedIn = v
	return f.setPausedErr
}
func (f *fakeStateRepo) TreasuryBalance(_ context.Context) (int64, error) { return f.withdrawOut, nil }
func (f *fakeStateRepo) Withdraw(_ context.Context, to model.Address) (int64, error) {
	f.withdrawIn = to
	return f.withdrawOut, f.withdrawErr
}

func newAdminService(owner, admin model.Address) (*AdminServiceImpl, *fakeRoleRepo, *fakeStateRepo, *fakeRegistryRepo) {
	roles := &fakeRoleRepo{admins: map[model.Address]bool{admin: true}}
	state := &fakeStateRepo{owner: owner}
	cfgs := &fakeRegistryRepo{}
	return NewAdminService(roles, state, cfgs), roles, state, cfgs
}

func TestAdminService_Pause(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	admin := model.Address{1}
	s, _, state, _ := newAdminService(model.Address{9}, admin)

	if err := s.Pause(ctx, admin, true); err != nil {
		t.Fatalf("Pause: %v", err)
	}
	if !state.setPausedIn {
		t.Fatalf("pause flag not forwarded")
	}
	if err := s.Pause(ctx, model.Address{5}, true); !errors.Is(err, errs.ErrUnauthorized) {
		t.Fatalf("non-admin pause: want ErrUnauthorized, got %v", err)
	}

	state.paused = true
	if p, err := s.IsPaused(ctx); err != nil || !p {
		t.Fatalf("IsPaused: p=%v err=%v", p, err)
	}
}

func TestAdminService_Withdraw(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	admin := model.Address{1}
	s, _, state, _ := newAdminService(model.Address{9}, admin)
	state.withdrawOut = 120

	n, err := s.Withdraw(ctx, admin)
	if err != nil || n != 120 {
		t.Fatalf("Withdraw: n=%d err=%v", n, err)
	}
	if state.withdrawIn != admin {
		t.Fatalf("payout must go to the caller, got %s", state.withdrawIn)
	}
	if _, err := s.Withdraw(ctx, model.Address{5}); !errors.Is(err, errs.ErrUnauthorized) {
		t.Fatalf("non-admin withdraw: want ErrUnauthorized, got %v", err)
	}
}

func TestAdminService_TokenFlags(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	admin := model.Address{1}
	s, _, _, cfgs := newAdminService(model.Address{9}, admin)

	if err := s.SetMintable(ctx, admin, 0, true); err != nil {
		t.Fatalf("SetMintable: %v", err)
	}
	if err := s.SetAllowlist(ctx, admin, 0, true); err != nil {
		t.Fatalf("SetAllowlist: %v", err)
	}
	if err := s.SetAllowlistCost(ctx, admin, 0, 7); err != nil {
		t.Fatalf("SetAllowlistCost: %v", err)
	}
	if err := s.SetAllowlistCost(ctx, admin, 0, -1); err == nil {
		t.Fatalf("want validation error on negative cost")
	}

	for _, err := range []error{
		s.SetMintable(ctx, model.Address{5}, 0, true),
		s.SetAllowlist(ctx, model.Address{5}, 0, true),
		s.SetAllowlistCost(ctx, model.Address{5}, 0, 7),
	} {
		if !errors.Is(err, errs.ErrUnauthorized) {
			t.Fatalf("non-admin flag mutation: want ErrUnauthorized, got %v", err)
		}
	}

	cfgs.flagErr = errs.ErrNotFound
	if err := s.SetMintable(ctx, admin, 42, true); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("unknown token: want ErrNotFound, got %v", err)
	}
}

func TestAdminService_AuthorRoles(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	admin := model.Address{1}
	target := model.Address{2}
	s, roles, _, _ := newAdminService(model.Address{9}, admin)

	if err := s.AddAuthor(ctx, admin, target); err != nil {
		t.Fatalf("AddAuthor: %v", err)
	}
	if roles.grantAuthorIn != target {
		t.Fatalf("grant target not forwarded")
	}
	if err := s.RemoveAuthor(ctx, admin, target); err != nil {
		t.Fatalf("RemoveAuthor: %v", err)
	}
	if roles.revokeAuthorIn != target {
		t.Fatalf("revoke target not forwarded")
	}

	if err := s.AddAuthor(ctx, model.Address{5}, target); !errors.Is(err, errs.ErrUnauthorized) {
		t.Fatalf("non-admin AddAuthor: want ErrUnauthorized, got %v", err)
	}
}

func TestAdminService_AddAdmin_OwnerOnly(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	owner := model.Address{9}
	admin := model.Address{1} // admin but not owner
	target := model.Address{2}
	s, roles, _, _ := newAdminService(owner, admin)

	// Admin alone is not enough.
	if err := s.AddAdmin(ctx, admin, target); !errors.Is(err, errs.ErrUnauthorized) {
		t.Fatalf("admin AddAdmin: want ErrUnauthorized, got %v", err)
	}
	if err := s.AddAdmin(ctx, owner, target); err != nil {
		t.Fatalf("owner AddAdmin: %v", err)
	}
	if roles.grantAdminIn != target {
		t.Fatalf("grant target not forwarded")
	}
}

func TestAdminService_RenounceAdmin_Unconditional(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	admin := model.Address{1}
	s, roles, _, _ := newAdminService(model.Address{9}, admin)

	// The sole admin may renounce; no floor check applies.
	if err := s.RenounceAdmin(ctx, admin); err != nil {
		t.Fatalf("RenounceAdmin: %v", err)
	}
	if roles.renounceIn != admin {
		t.Fatalf("renounce must target the caller")
	}
	if err := s.RenounceAdmin(ctx, model.Address{5}); !errors.Is(err, errs.ErrUnauthorized) {
		t.Fatalf("non-admin renounce: want ErrUnauthorized, got %v", err)
	}
}

func TestAdminService_OpenReads(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	admin := model.Address{1}
	s, roles, _, _ := newAdminService(model.Address{9}, admin)
	roles.authors = map[model.Address]bool{{2}: true}
	roles.grantsOut = []model.RoleGrant{{ID: 1, Account: model.Address{2}}}

	if ok, _ := s.IsAdmin(ctx, admin); !ok {
		t.Fatalf("IsAdmin: want true")
	}
	if ok, _ := s.IsAuthor(ctx, model.Address{2}); !ok {
		t.Fatalf("IsAuthor: want true")
	}
	gs, err := s.RoleGrants(ctx)
	if err != nil || len(gs) != 1 || gs[0].Account != (model.Address{2}) {
		t.Fatalf("RoleGrants: %+v err=%v", gs, err)
	}
}
