package service

import (
	"context"
	"crypto/rand"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"

	"github.com/nft-now/sovereignty/internal/errs"
	"github.com/nft-now/sovereignty/internal/limiter"
	"github.com/nft-now/sovereignty/internal/model"
	"github.com/nft-now/sovereignty/internal/repository"
	"github.com/nft-now/sovereignty/internal/sigver"
)

// AuthService authenticates wallets against the gRPC surface: a wallet
// requests a challenge, signs it with its key, and trades the signature for
// a short-lived bearer token whose subject is the wallet address.
type AuthService interface {
	// Challenge issues a fresh single-use login challenge.
	Challenge(ctx context.Context) (model.Challenge, error)
	// LoginWithIP applies rate limiting, verifies the challenge signature,
	// and issues an access token.
	LoginWithIP(ctx context.Context, wallet model.Address, challengeID uuid.UUID, sig []byte, ip string) (model.Tokens, error)
}

type AuthServiceImpl struct {
	challenges   repository.ChallengeRepository
	verifier     *sigver.Verifier
	signKey      []byte
	accessTTL    time.Duration
	challengeTTL time.Duration
	lim          limiter.Limiter
}

// NewAuthService constructs AuthService with required dependencies.
func NewAuthService(
	challenges repository.ChallengeRepository,
	verifier *sigver.Verifier,
	signKey []byte,
	accessTTL, challengeTTL time.Duration,
	lim limiter.Limiter,
) *AuthServiceImpl {
	return &AuthServiceImpl{
		challenges:   challenges,
		verifier:     verifier,
		signKey:      signKey,
		accessTTL:    accessTTL,
		challengeTTL: challengeTTL,
		lim:          lim,
	}
}

// Challenge issues a random single-use nonce with an expiry.
func (s *AuthServiceImpl) Challenge(ctx context.Context) (model.Challenge, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return model.Challenge{}, err
	}
	nonce := make([]byte, 32)
	if _, err := rand.Read(nonce); err != nil {
		return model.Challenge{}, err
	}
	c := model.Challenge{ID: id, Nonce: nonce, ExpiresAt: time.Now().Add(s.challengeTTL)}
	if err := s.challenges.Create(ctx, c); err != nil {
		return model.Challenge{}, err
	}
	return c, nil
}

// LoginWithIP authenticates with rate limiting by (wallet, ip). The
// challenge is consumed before verification, so a bad signature still burns
// the nonce.
func (s *AuthServiceImpl) LoginWithIP(
	ctx context.Context, wallet model.Address, challengeID uuid.UUID, sig []byte, ip string,
) (model.Tokens, error) {
	if wallet.IsZero() {
		return model.Tokens{}, errors.New("validation: zero wallet")
	}
	ipHash := limiter.HashIP(ip)

	allowed, _, err := s.lim.Allow(ctx, wallet, ipHash)
	if err != nil {
		return model.Tokens{}, err
	}
	if !allowed {
		return model.Tokens{}, errs.ErrRateLimited
	}

	c, err := s.challenges.Consume(ctx, challengeID)
	if err != nil {
		return model.Tokens{}, errs.ErrUnauthorized
	}

	signer, rerr := s.verifier.RecoverLoginSigner(c.Nonce, wallet, sig)
	if rerr != nil || signer != wallet {
		if blocked, _, ferr := s.lim.Failure(ctx, wallet, ipHash); ferr == nil && blocked {
			return model.Tokens{}, errs.ErrRateLimited
		}
		return model.Tokens{}, errs.ErrUnauthorized
	}

	_ = s.lim.Success(ctx, wallet, ipHash)

	access, exp, err := s.issueAccessToken(wallet)
	if err != nil {
		return model.Tokens{}, err
	}
	return model.Tokens{AccessToken: access, ExpiresAt: exp}, nil
}

// issueAccessToken creates a signed HS256 JWT with the wallet as subject.
func (s *AuthServiceImpl) issueAccessToken(wallet model.Address) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(s.accessTTL)
	claims := jwt.RegisteredClaims{
		Subject:   wallet.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(s.signKey)
	return signed, exp, err
}
