package postgres

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/nft-now/sovereignty/internal/model"
	"github.com/nft-now/sovereignty/internal/repository"
)

// MintRepo implements MintRepository using PostgreSQL. Every mint attempt is
// one transaction: the eligibility snapshot is read with the config row
// locked, the composed check runs against it, and all writes (counter,
// ledger, treasury, claim flag, event) commit or roll back together.
type MintRepo struct{ db *DB }

// NewMintRepo constructs a mint repository.
func NewMintRepo(db *DB) *MintRepo { return &MintRepo{db: db} }

// Mint applies one public or allowlist mint attempt.
func (r *MintRepo) Mint(ctx context.Context, mt repository.MintTx) (err error) {
	tx, err := r.db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer finishTx(ctx, tx, &err)

	snap, err := readMintSnapshot(ctx, tx, mt.TokenID, mt.Wallet)
	if err != nil {
		return err
	}
	if err = mt.Check(snap); err != nil {
		return err
	}

	const bumpCounter = `
INSERT INTO minted_counters (token_id, wallet, amount)
VALUES ($1, $2, $3)
ON CONFLICT (token_id, wallet) DO UPDATE SET amount = minted_counters.amount + EXCLUDED.amount`
	if _, err = tx.Exec(ctx, bumpCounter, mt.TokenID, mt.Wallet.Bytes(), mt.Amount); err != nil {
		return err
	}

	if mt.MarkClaimed {
		// Recorded but never read back as a gate.
		const claim = `
INSERT INTO allowlist_claims (token_id, wallet) VALUES ($1, $2)
ON CONFLICT (token_id, wallet) DO NOTHING`
		if _, err = tx.Exec(ctx, claim, mt.TokenID, mt.Wallet.Bytes()); err != nil {
			return err
		}
	}

	if err = mintUnits(ctx, tx, mt.TokenID, mt.Wallet, mt.Amount); err != nil {
		return err
	}

	if mt.Payment > 0 {
		const credit = `UPDATE registry_state SET treasury = treasury + $1 WHERE id = 1`
		if _, err = tx.Exec(ctx, credit, mt.Payment); err != nil {
			return err
		}
	}

	var evID uuid.UUID
	if evID, err = uuid.NewV4(); err != nil {
		return err
	}
	const insEvent = `
INSERT INTO registry_events (id, kind, token_id, actor, amount)
VALUES ($1, $2, $3, $4, $5)`
	_, err = tx.Exec(ctx, insEvent, evID, model.EventArticleMinted, mt.TokenID, mt.Wallet.Bytes(), mt.Amount)
	return err
}

// BulkDrop mints one unit to each recipient, all-or-nothing, with a single
// airdrop event for the whole batch.
func (r *MintRepo) BulkDrop(
	ctx context.Context, tokenID int64, actor model.Address, recipients []model.Address, check func(model.DropSnapshot) error,
) (err error) {
	tx, err := r.db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer finishTx(ctx, tx, &err)

	snap, err := readDropSnapshot(ctx, tx, tokenID)
	if err != nil {
		return err
	}
	if err = check(snap); err != nil {
		return err
	}

	const bumpCounter = `
INSERT INTO minted_counters (token_id, wallet, amount)
VALUES ($1, $2, 1)
ON CONFLICT (token_id, wallet) DO UPDATE SET amount = minted_counters.amount + 1`
	for _, rc := range recipients {
		if _, err = tx.Exec(ctx, bumpCounter, tokenID, rc.Bytes()); err != nil {
			return err
		}
		if err = mintUnits(ctx, tx, tokenID, rc, 1); err != nil {
			return err
		}
	}

	var evID uuid.UUID
	if evID, err = uuid.NewV4(); err != nil {
		return err
	}
	const insEvent = `
INSERT INTO registry_events (id, kind, token_id, actor, amount, recipients)
VALUES ($1, $2, $3, $4, $5, $6)`
	_, err = tx.Exec(ctx, insEvent, evID, model.EventArticleAirdrop, tokenID, actor.Bytes(), int64(len(recipients)), int32(len(recipients)))
	return err
}

// MintedCount returns the wallet's cumulative minted counter.
func (r *MintRepo) MintedCount(ctx context.Context, tokenID int64, wallet model.Address) (int64, error) {
	const q = `SELECT COALESCE(SUM(amount), 0) FROM minted_counters WHERE token_id=$1 AND wallet=$2`
	var n int64
	if err := r.db.Pool.QueryRow(ctx, q, tokenID, wallet.Bytes()).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// HasClaimed reports whether the wallet ever used the allowlist mint.
func (r *MintRepo) HasClaimed(ctx context.Context, tokenID int64, wallet model.Address) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM allowlist_claims WHERE token_id=$1 AND wallet=$2)`
	var ok bool
	if err := r.db.Pool.QueryRow(ctx, q, tokenID, wallet.Bytes()).Scan(&ok); err != nil {
		return false, err
	}
	return ok, nil
}

// readMintSnapshot reads the eligibility snapshot with the config row locked
// so concurrent mints on the same token serialize.
func readMintSnapshot(ctx context.Context, tx pgx.Tx, tokenID int64, wallet model.Address) (model.MintSnapshot, error) {
	var snap model.MintSnapshot

	if err := tx.QueryRow(ctx, `SELECT paused FROM registry_state WHERE id = 1`).Scan(&snap.Paused); err != nil {
		return snap, err
	}

	const cfgQ = `
SELECT id, mintable, has_allowlist, public_cost, allowlist_cost, max_amount, max_per_user, metadata_url, author, validator, created_at
FROM token_configs WHERE id=$1 FOR UPDATE`
	cfg, err := scanTokenConfig(tx.QueryRow(ctx, cfgQ, tokenID))
	switch {
	case err == nil:
		snap.Config = cfg
	case errors.Is(err, pgx.ErrNoRows):
		// Leave Config nil; the existence gate rejects it.
	default:
		return snap, err
	}

	if err := tx.QueryRow(ctx, `SELECT COALESCE(SUM(amount),0) FROM token_supply WHERE token_id=$1`, tokenID).Scan(&snap.Supply); err != nil {
		return snap, err
	}
	if err := tx.QueryRow(ctx, `SELECT COALESCE(SUM(amount),0) FROM balances WHERE token_id=$1 AND owner=$2`, tokenID, wallet.Bytes()).Scan(&snap.Balance); err != nil {
		return snap, err
	}
	if err := tx.QueryRow(ctx, `SELECT COALESCE(SUM(amount),0) FROM minted_counters WHERE token_id=$1 AND wallet=$2`, tokenID, wallet.Bytes()).Scan(&snap.Counter); err != nil {
		return snap, err
	}
	return snap, nil
}

// readDropSnapshot reads the reduced airdrop snapshot under the same lock.
func readDropSnapshot(ctx context.Context, tx pgx.Tx, tokenID int64) (model.DropSnapshot, error) {
	var snap model.DropSnapshot

	if err := tx.QueryRow(ctx, `SELECT paused FROM registry_state WHERE id = 1`).Scan(&snap.Paused); err != nil {
		return snap, err
	}

	const cfgQ = `
SELECT id, mintable, has_allowlist, public_cost, allowlist_cost, max_amount, max_per_user, metadata_url, author, validator, created_at
FROM token_configs WHERE id=$1 FOR UPDATE`
	cfg, err := scanTokenConfig(tx.QueryRow(ctx, cfgQ, tokenID))
	switch {
	case err == nil:
		snap.Config = cfg
	case errors.Is(err, pgx.ErrNoRows):
	default:
		return snap, err
	}

	if err := tx.QueryRow(ctx, `SELECT COALESCE(SUM(amount),0) FROM token_supply WHERE token_id=$1`, tokenID).Scan(&snap.Supply); err != nil {
		return snap, err
	}
	return snap, nil
}

// mintUnits credits the ledger tables: recipient balance and total supply.
func mintUnits(ctx context.Context, tx pgx.Tx, tokenID int64, to model.Address, amount int64) error {
	const credit = `
INSERT INTO balances (token_id, owner, amount)
VALUES ($1, $2, $3)
ON CONFLICT (token_id, owner) DO UPDATE SET amount = balances.amount + EXCLUDED.amount`
	if _, err := tx.Exec(ctx, credit, tokenID, to.Bytes(), amount); err != nil {
		return err
	}
	const grow = `
INSERT INTO token_supply (token_id, amount)
VALUES ($1, $2)
ON CONFLICT (token_id) DO UPDATE SET amount = token_supply.amount + EXCLUDED.amount`
	_, err := tx.Exec(ctx, grow, tokenID, amount)
	return err
}
