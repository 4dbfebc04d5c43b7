package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"

	"github.com/nft-now/sovereignty/internal/errs"
	"github.com/nft-now/sovereignty/internal/model"
	"github.com/nft-now/sovereignty/internal/repository"
)

type fakeChallengeRepo struct {
	created    []model.Challenge
	createErr  error
	consumeIn  uuid.UUID
	consumeOut *model.Challenge
	consumeErr error
}

var _ repository.ChallengeRepository = (*fakeChallengeRepo)(nil)

func (f *fakeChallengeRepo) Create(_ context.Context, c model.Challenge) error {
	f.created = append(f.created, c)
	return f.createErr
}
func (f *fakeChallengeRepo) Consume(_ context.Context, id uuid.UUID) (*model.Challenge, error) {
	f.consumeIn = id
	return f.consumeOut, f.consumeErr
}

type fakeLimiter struct {
	allowOK     bool
	allowErr    error
	successRan  bool
	failureRan  bool
	blockOnFail bool
}

func (f *fakeLimiter) Allow(_ context.Context, _ model.Address, _ []byte) (bool, time.Duration, error) {
	return f.allowOK, 0, f.allowErr
}
func (f *fakeLimiter) Success(_ context.Context, _ model.Address, _ []byte) error {
	f.successRan = true
	return nil
}
func (f *fakeLimiter) Failure(_ context.Context, _ model.Address, _ []byte) (bool, time.Duration, error) {
	f.failureRan = true
	return f.blockOnFail, 0, nil
}

func TestAuthService_Challenge(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := &fakeChallengeRepo{}
	s := NewAuthService(repo, fakeVerifier(model.Address{}, nil), []byte("key"), time.Minute, 5*time.Minute, &fakeLimiter{allowOK: true})

	c1, err := s.Challenge(ctx)
	if err != nil {
		t.Fatalf("Challenge: %v", err)
	}
	c2, err := s.Challenge(ctx)
	if err != nil {
		t.Fatalf("Challenge: %v", err)
	}
	if len(c1.Nonce) != 32 || string(c1.Nonce) == string(c2.Nonce) {
		t.Fatalf("nonces must be 32 random bytes")
	}
	if !c1.ExpiresAt.After(time.Now()) {
		t.Fatalf("challenge must expire in the future")
	}
	if len(repo.created) != 2 {
		t.Fatalf("challenges not stored: %d", len(repo.created))
	}
}

func TestAuthService_Login_OK(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	wallet := model.Address{1}
	chID := uuid.Must(uuid.NewV4())
	repo := &fakeChallengeRepo{consumeOut: &model.Challenge{ID: chID, Nonce: []byte("nonce")}}
	lim := &fakeLimiter{allowOK: true}
	key := []byte("secret")
	s := NewAuthService(repo, fakeVerifier(wallet, nil), key, time.Minute, 5*time.Minute, lim)

	toks, err := s.LoginWithIP(ctx, wallet, chID, []byte("sig"), "1.2.3.4:5")
	if err != nil {
		t.Fatalf("LoginWithIP: %v", err)
	}
	if repo.consumeIn != chID {
		t.Fatalf("challenge id not forwarded")
	}
	if !lim.successRan {
		t.Fatalf("limiter success not recorded")
	}

	// The token's subject is the wallet address.
	parsed, err := jwt.ParseWithClaims(toks.AccessToken, &jwt.RegisteredClaims{}, func(tk *jwt.Token) (any, error) {
		return key, nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token parse: %v", err)
	}
	sub, _ := parsed.Claims.GetSubject()
	if sub != wallet.String() {
		t.Fatalf("subject %q, want %q", sub, wallet.String())
	}
}

func TestAuthService_Login_RateLimited(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	wallet := model.Address{1}
	repo := &fakeChallengeRepo{}
	s := NewAuthService(repo, fakeVerifier(wallet, nil), []byte("k"), time.Minute, time.Minute, &fakeLimiter{allowOK: false})

	_, err := s.LoginWithIP(ctx, wallet, uuid.Must(uuid.NewV4()), []byte("sig"), "ip")
	if !errors.Is(err, errs.ErrRateLimited) {
		t.Fatalf("want ErrRateLimited, got %v", err)
	}
	if repo.consumeIn != uuid.Nil {
		t.Fatalf("blocked login must not touch the challenge")
	}
}

func TestAuthService_Login_BadChallenge(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	wallet := model.Address{1}
	repo := &fakeChallengeRepo{consumeErr: errs.ErrNotFound}
	s := NewAuthService(repo, fakeVerifier(wallet, nil), []byte("k"), time.Minute, time.Minute, &fakeLimiter{allowOK: true})

	_, err := s.LoginWithIP(ctx, wallet, uuid.Must(uuid.NewV4()), []byte("sig"), "ip")
	if !errors.Is(err, errs.ErrUnauthorized) {
		t.Fatalf("expired or reused challenge: want ErrUnauthorized, got %v", err)
	}
}

func TestAuthService_Login_WrongSigner(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	wallet := model.Address{1}
	chID := uuid.Must(uuid.NewV4())
	repo := &fakeChallengeRepo{consumeOut: &model.Challenge{ID: chID, Nonce: []byte("n")}}
	lim := &fakeLimiter{allowOK: true}
	// Signature recovers to somebody else.
	s := NewAuthService(repo, fakeVerifier(model.Address{2}, nil), []byte("k"), time.Minute, time.Minute, lim)

	_, err := s.LoginWithIP(ctx, wallet, chID, []byte("sig"), "ip")
	if !errors.Is(err, errs.ErrUnauthorized) {
		t.Fatalf("want ErrUnauthorized, got %v", err)
	}
	if !lim.failureRan {
		t.Fatalf("failed signature must count against the limiter")
	}
	// The nonce is burned regardless.
	if repo.consumeIn != chID {
		t.Fatalf("challenge must be consumed even on a bad signature")
	}
}

func TestAuthService_Login_FailureBlocks(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	wallet := model.Address{1}
	chID := uuid.Must(uuid.NewV4())
	repo := &fakeChallengeRepo{consumeOut: &model.Challenge{ID: chID, Nonce: []byte("n")}}
	lim := &fakeLimiter{allowOK: true, blockOnFail: true}
	s := NewAuthService(repo, fakeVerifier(model.Address{2}, nil), []byte("k"), time.Minute, time.Minute, lim)

	_, err := s.LoginWithIP(ctx, wallet, chID, []byte("sig"), "ip")
	if !errors.Is(err, errs.ErrRateLimited) {
		t.Fatalf("threshold failure: want ErrRateLimited, got %v", err)
	}
}

func TestAuthService_Login_ZeroWallet(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewAuthService(&fakeChallengeRepo{}, fakeVerifier(model.Address{}, nil), []byte("k"), time.Minute, time.Minute, &fakeLimiter{allowOK: true})

	if _, err := s.LoginWithIP(ctx, model.Address{}, uuid.Must(uuid.NewV4()), []byte("s"), "ip"); err == nil {
		t.Fatalf("want validation error on zero wallet")
	}
}
