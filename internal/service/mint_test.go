package service

import (
	"context"
	"errors"
	"testing"

	"github.com/nft-now/sovereignty/internal/errs"
	"github.com/nft-now/sovereignty/internal/ledger"
	"github.com/nft-now/sovereignty/internal/model"
	"github.com/nft-now/sovereignty/internal/repository"
	"github.com/nft-now/sovereignty/internal/sigver"
)

type fakeMintRepo struct {
	// snap is handed to the composed Check, standing in for the state the
	// real repo reads under lock.
	snap     model.MintSnapshot
	dropSnap model.DropSnapshot

	mintIn  repository.MintTx
	mintRan bool
	mintErr error

	dropInToken int64
	dropInActor model.Address
	dropInRecs  []model.Address
	dropRan     bool
	dropErr     error

	readInToken  int64
	readInWallet model.Address
	claimed      bool
}

var _ repository.MintRepository = (*fakeMintRepo)(nil)

func (f *fakeMintRepo) Mint(_ context.Context, mt repository.MintTx) error {
	f.mintIn = mt
	if err := mt.Check(f.snap); err != nil {
		return err
	}
	f.mintRan = true
	return f.mintErr
}
func (f *fakeMintRepo) BulkDrop(_ context.Context, tokenID int64, actor model.Address, recipients []model.Address, check func(model.DropSnapshot) error) error {
	f.dropInToken, f.dropInActor = tokenID, actor
	f.dropInRecs = append([]model.Address(nil), recipients...)
	if err := check(f.dropSnap); err != nil {
		return err
	}
	f.dropRan = true
	return f.dropErr
}
func (f *fakeMintRepo) MintedCount(_ context.Context, tokenID int64, w model.Address) (int64, error) {
	f.readInToken, f.readInWallet = tokenID, w
	return f.snap.Counter, nil
}
func (f *fakeMintRepo) HasClaimed(_ context.Context, tokenID int64, w model.Address) (bool, error) {
	f.readInToken, f.readInWallet = tokenID, w
	return f.claimed, nil
}

// fakeRecoverer returns a fixed signer for any well-formed signature.
type fakeRecoverer struct {
	signer model.Address
	err    error
}

func (f fakeRecoverer) Recover(_ [32]byte, _ []byte) (model.Address, error) {
	return f.signer, f.err
}

func fakeVerifier(signer model.Address, err error) *sigver.Verifier {
	return &sigver.Verifier{
		Domain: sigver.Domain{Name: "Sovereignty", Version: "1"},
		Rec:    fakeRecoverer{signer: signer, err: err},
	}
}

func mintableConfig() *model.TokenConfig {
	return &model.TokenConfig{
		Mintable:      true,
		PublicCost:    10,
		AllowlistCost: 5,
		MaxAmount:     100,
		MaxPerUser:    3,
		Validator:     model.Address{8},
	}
}

func TestMintService_Mint_OK(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	caller := model.Address{1}
	mints := &fakeMintRepo{snap: model.MintSnapshot{Config: mintableConfig()}}
	book := ledger.NewMemory()
	s := NewMintService(mints, &fakeRegistryRepo{}, &fakeRoleRepo{}, fakeVerifier(model.Address{}, nil), book, 0)

	if err := s.Mint(ctx, caller, 0, 2, 20); err != nil {
		t.Fatalf("Mint: %v", err)
	}
	if !mints.mintRan {
		t.Fatalf("mint tx did not run")
	}
	mt := mints.mintIn
	if mt.Wallet != caller || mt.Amount != 2 || mt.Payment != 20 || mt.MarkClaimed {
		t.Fatalf("mint tx args: %+v", mt)
	}
}

func TestMintService_Mint_Validation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	mints := &fakeMintRepo{snap: model.MintSnapshot{Config: mintableConfig()}}
	s := NewMintService(mints, &fakeRegistryRepo{}, &fakeRoleRepo{}, fakeVerifier(model.Address{}, nil), ledger.NewMemory(), 0)

	if err := s.Mint(ctx, model.Address{1}, 0, 0, 0); err == nil {
		t.Fatalf("want validation error on zero amount")
	}
	if err := s.Mint(ctx, model.Address{1}, 0, 1, -1); err == nil {
		t.Fatalf("want validation error on negative payment")
	}
	if mints.mintRan {
		t.Fatalf("repo must not be called on invalid input")
	}
}

func TestMintService_Mint_GateFailureRollsBack(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	mints := &fakeMintRepo{snap: model.MintSnapshot{Paused: true, Config: mintableConfig()}}
	s := NewMintService(mints, &fakeRegistryRepo{}, &fakeRoleRepo{}, fakeVerifier(model.Address{}, nil), ledger.NewMemory(), 0)

	err := s.Mint(ctx, model.Address{1}, 0, 1, 10)
	if !errors.Is(err, errs.ErrCannotMint) || !errors.Is(err, errs.ErrPaused) {
		t.Fatalf("want wrapped ErrPaused, got %v", err)
	}
	if mints.mintRan {
		t.Fatalf("failed gate must abort the mint")
	}
}

func TestMintService_AllowlistMint_OK(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	caller := model.Address{1}
	validator := model.Address{8}
	cfg := mintableConfig()
	cfg.HasAllowlist = true
	cfg.Validator = validator

	mints := &fakeMintRepo{snap: model.MintSnapshot{Config: cfg}}
	configs := &fakeRegistryRepo{cfgOut: cfg}
	s := NewMintService(mints, configs, &fakeRoleRepo{}, fakeVerifier(validator, nil), ledger.NewMemory(), 0)

	sig := make([]byte, sigver.SignatureLen)
	if err := s.AllowlistMint(ctx, caller, 0, 1, 5, 42, caller, sig); err != nil {
		t.Fatalf("AllowlistMint: %v", err)
	}
	if !mints.mintRan || !mints.mintIn.MarkClaimed {
		t.Fatalf("allowlist mint must run and mark the claim: %+v", mints.mintIn)
	}
}

func TestMintService_AllowlistMint_WrongSigner(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	cfg := mintableConfig()
	cfg.HasAllowlist = true
	cfg.Validator = model.Address{8}

	mints := &fakeMintRepo{snap: model.MintSnapshot{Config: cfg}}
	configs := &fakeRegistryRepo{cfgOut: cfg}
	// Recovery succeeds but to a different address.
	s := NewMintService(mints, configs, &fakeRoleRepo{}, fakeVerifier(model.Address{9}, nil), ledger.NewMemory(), 0)

	err := s.AllowlistMint(ctx, model.Address{1}, 0, 1, 5, 42, model.Address{1}, make([]byte, sigver.SignatureLen))
	if !errors.Is(err, errs.ErrNotVerified) {
		t.Fatalf("want ErrNotVerified, got %v", err)
	}
	if mints.mintRan {
		t.Fatalf("unverified signature must not mint")
	}
}

func TestMintService_AllowlistMint_BadSignature(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	cfg := mintableConfig()
	cfg.HasAllowlist = true

	configs := &fakeRegistryRepo{cfgOut: cfg}
	s := NewMintService(&fakeMintRepo{}, configs, &fakeRoleRepo{}, fakeVerifier(model.Address{}, sigver.ErrBadSignature), ledger.NewMemory(), 0)

	err := s.AllowlistMint(ctx, model.Address{1}, 0, 1, 5, 42, model.Address{1}, []byte{1})
	if !errors.Is(err, errs.ErrNotVerified) {
		t.Fatalf("want ErrNotVerified, got %v", err)
	}
}

func TestMintService_AllowlistMint_UnknownToken(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	configs := &fakeRegistryRepo{cfgOut: nil}
	s := NewMintService(&fakeMintRepo{}, configs, &fakeRoleRepo{}, fakeVerifier(model.Address{}, nil), ledger.NewMemory(), 0)

	err := s.AllowlistMint(ctx, model.Address{1}, 42, 1, 5, 1, model.Address{1}, make([]byte, sigver.SignatureLen))
	if !errors.Is(err, errs.ErrCannotMint) || !errors.Is(err, errs.ErrNonExistentID) {
		t.Fatalf("want wrapped ErrNonExistentID, got %v", err)
	}
}

func TestMintService_BulkDrop(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	admin := model.Address{1}
	cfg := mintableConfig()
	mints := &fakeMintRepo{dropSnap: model.DropSnapshot{Config: cfg}}
	roles := &fakeRoleRepo{admins: map[model.Address]bool{admin: true}}
	s := NewMintService(mints, &fakeRegistryRepo{}, roles, fakeVerifier(model.Address{}, nil), ledger.NewMemory(), 3)

	recs := []model.Address{{2}, {3}}
	if err := s.BulkDrop(ctx, admin, 0, recs); err != nil {
		t.Fatalf("BulkDrop: %v", err)
	}
	if !mints.dropRan || len(mints.dropInRecs) != 2 || mints.dropInActor != admin {
		t.Fatalf("drop args: %+v", mints)
	}

	// Not an admin.
	if err := s.BulkDrop(ctx, model.Address{9}, 0, recs); !errors.Is(err, errs.ErrUnauthorized) {
		t.Fatalf("want ErrUnauthorized, got %v", err)
	}

	// Size bounds.
	if err := s.BulkDrop(ctx, admin, 0, nil); err == nil {
		t.Fatalf("want validation error on empty recipients")
	}
	if err := s.BulkDrop(ctx, admin, 0, []model.Address{{1}, {2}, {3}, {4}}); err == nil {
		t.Fatalf("want validation error past maxDrop")
	}
}

func TestMintService_BulkDrop_AllOrNothing(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	admin := model.Address{1}
	cfg := mintableConfig()
	cfg.MaxAmount = 5
	mints := &fakeMintRepo{dropSnap: model.DropSnapshot{Config: cfg, Supply: 4}}
	roles := &fakeRoleRepo{admins: map[model.Address]bool{admin: true}}
	s := NewMintService(mints, &fakeRegistryRepo{}, roles, fakeVerifier(model.Address{}, nil), ledger.NewMemory(), 0)

	// Two recipients against one remaining unit: nothing mints.
	err := s.BulkDrop(ctx, admin, 0, []model.Address{{2}, {3}})
	if !errors.Is(err, errs.ErrLowSupply) {
		t.Fatalf("want ErrLowSupply, got %v", err)
	}
	if mints.dropRan {
		t.Fatalf("failed drop check must mint nothing")
	}
}

func TestMintService_Reads(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	book := ledger.NewMemory()
	owner := model.Address{4}
	_ = book.Mint(ctx, owner, 1, 6)
	repo := &fakeMintRepo{snap: model.MintSnapshot{Counter: 6}, claimed: true}
	s := NewMintService(repo, &fakeRegistryRepo{}, &fakeRoleRepo{}, fakeVerifier(model.Address{}, nil), book, 0)

	if n, err := s.BalanceOf(ctx, owner, 1); err != nil || n != 6 {
		t.Fatalf("BalanceOf: n=%d err=%v", n, err)
	}
	if n, err := s.TotalSupply(ctx, 1); err != nil || n != 6 {
		t.Fatalf("TotalSupply: n=%d err=%v", n, err)
	}
	if n, err := s.MintedCount(ctx, owner, 1); err != nil || n != 6 {
		t.Fatalf("MintedCount: n=%d err=%v", n, err)
	}
	if repo.readInToken != 1 || repo.readInWallet != owner {
		t.Fatalf("MintedCount args not forwarded: token=%d wallet=%s", repo.readInToken, repo.readInWallet)
	}
	if ok, err := s.HasClaimed(ctx, owner, 1); err != nil || !ok {
		t.Fatalf("HasClaimed: ok=%v err=%v", ok, err)
	}
}
