package postgres

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/nft-now/sovereignty/internal/errs"
	"github.com/nft-now/sovereignty/internal/model"
)

// StateRepo implements StateRepository using PostgreSQL. Registry-wide state
// lives in a single-row table.
type StateRepo struct{ db *DB }

// NewStateRepo constructs a state repository.
func NewStateRepo(db *DB) *StateRepo { return &StateRepo{db: db} }

// Bootstrap seeds the singleton state row and grants the owner Admin.
// A no-op when the row already exists, so restarts are safe.
func (r *StateRepo) Bootstrap(ctx context.Context, owner model.Address) (err error) {
	tx, err := r.db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer finishTx(ctx, tx, &err)

	const ins = `
INSERT INTO registry_state (id, owner, paused, treasury)
VALUES (1, $1, false, 0)
ON CONFLICT (id) DO NOTHING`
	tag, err := tx.Exec(ctx, ins, owner.Bytes())
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return nil
	}
	const grant = `INSERT INTO admins (account) VALUES ($1) ON CONFLICT (account) DO NOTHING`
	_, err = tx.Exec(ctx, grant, owner.Bytes())
	return err
}

// Owner returns the designated owner identity.
func (r *StateRepo) Owner(ctx context.Context) (model.Address, error) {
	var b []byte
	if err := r.db.Pool.QueryRow(ctx, `SELECT owner FROM registry_state WHERE id = 1`).Scan(&b); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Address{}, errs.ErrNotFound
		}
		return model.Address{}, err
	}
	return model.AddressFromBytes(b)
}

// IsPaused reports the global pause flag.
func (r *StateRepo) IsPaused(ctx context.Context) (bool, error) {
	var p bool
	if err := r.db.Pool.QueryRow(ctx, `SELECT paused FROM registry_state WHERE id = 1`).Scan(&p); err != nil {
		return false, err
	}
	return p, nil
}

// SetPaused sets the global pause flag.
func (r *StateRepo) SetPaused(ctx context.Context, v bool) error {
	tag, err := r.db.Pool.Exec(ctx, `UPDATE registry_state SET paused=$1 WHERE id = 1`, v)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// TreasuryBalance returns the accumulated mint payments.
func (r *StateRepo) TreasuryBalance(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.Pool.QueryRow(ctx, `SELECT treasury FROM registry_state WHERE id = 1`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// Withdraw zeroes the treasury and records the payout, returning the amount.
// The payout record goes in last; a failure anywhere unwinds the zeroing.
func (r *StateRepo) Withdraw(ctx context.Context, to model.Address) (amount int64, err error) {
	tx, err := r.db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, err
	}
	defer finishTx(ctx, tx, &err)

	const sel = `SELECT treasury FROM registry_state WHERE id = 1 FOR UPDATE`
	if err = tx.QueryRow(ctx, sel).Scan(&amount); err != nil {
		return 0, err
	}
	const drain = `UPDATE registry_state SET treasury = 0 WHERE id = 1`
	if _, err = tx.Exec(ctx, drain); err != nil {
		return 0, err
	}

	var evID uuid.UUID
	if evID, err = uuid.NewV4(); err != nil {
		return 0, err
	}
	const insEvent = `
INSERT INTO registry_events (id, kind, token_id, actor, amount)
VALUES ($1, $2, 0, $3, $4)`
	if _, err = tx.Exec(ctx, insEvent, evID, model.EventTreasuryWithdraw, to.Bytes(), amount); err != nil {
		return 0, err
	}
	return amount, nil
}

// ChallengeRepo implements ChallengeRepository using PostgreSQL.
type ChallengeRepo struct{ db *DB }

// NewChallengeRepo constructs a login-challenge repository.
func NewChallengeRepo(db *DB) *ChallengeRepo { return &ChallengeRepo{db: db} }

// Create stores a fresh single-use challenge.
func (r *ChallengeRepo) Create(ctx context.Context, c model.Challenge) error {
	const q = `INSERT INTO login_challenges (id, nonce, expires_at) VALUES ($1, $2, $3)`
	_, err := r.db.Pool.Exec(ctx, q, c.ID, c.Nonce, c.ExpiresAt)
	return err
}

// Consume marks the challenge used and returns it; expired or already-used
// challenges read as ErrNotFound.
func (r *ChallengeRepo) Consume(ctx context.Context, id uuid.UUID) (*model.Challenge, error) {
	const q = `
UPDATE login_challenges SET used = true
WHERE id=$1 AND NOT used AND expires_at > now()
RETURNING id, nonce, expires_at`
	var c model.Challenge
	if err := r.db.Pool.QueryRow(ctx, q, id).Scan(&c.ID, &c.Nonce, &c.ExpiresAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}
