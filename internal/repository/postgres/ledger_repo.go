package postgres

import (
	"context"

	"github.com/nft-now/sovereignty/internal/model"
)

// LedgerRepo implements ledger.Ledger over the balances and token_supply
// tables. Mint attempts go through MintRepo so they stay inside the mint
// transaction; this standalone Mint exists for operational tooling and
// shares the same upsert semantics.
type LedgerRepo struct{ db *DB }

// NewLedgerRepo constructs a ledger view over the registry's balance tables.
func NewLedgerRepo(db *DB) *LedgerRepo { return &LedgerRepo{db: db} }

// Mint credits owner and grows supply in one statement pair.
func (r *LedgerRepo) Mint(ctx context.Context, owner model.Address, tokenID, amount int64) error {
	const credit = `
INSERT INTO balances (token_id, owner, amount)
VALUES ($1, $2, $3)
ON CONFLICT (token_id, owner) DO UPDATE SET amount = balances.amount + EXCLUDED.amount`
	if _, err := r.db.Pool.Exec(ctx, credit, tokenID, owner.Bytes(), amount); err != nil {
		return err
	}
	const grow = `
INSERT INTO token_supply (token_id, amount)
VALUES ($1, $2)
ON CONFLICT (token_id) DO UPDATE SET amount = token_supply.amount + EXCLUDED.amount`
	_, err := r.db.Pool.Exec(ctx, grow, tokenID, amount)
	return err
}

// BalanceOf returns owner's live balance for tokenID.
func (r *LedgerRepo) BalanceOf(ctx context.Context, owner model.Address, tokenID int64) (int64, error) {
	const q = `SELECT COALESCE(SUM(amount),0) FROM balances WHERE token_id=$1 AND owner=$2`
	var n int64
	if err := r.db.Pool.QueryRow(ctx, q, tokenID, owner.Bytes()).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// TotalSupply returns the live total supply for tokenID.
func (r *LedgerRepo) TotalSupply(ctx context.Context, tokenID int64) (int64, error) {
	const q = `SELECT COALESCE(SUM(amount),0) FROM token_supply WHERE token_id=$1`
	var n int64
	if err := r.db.Pool.QueryRow(ctx, q, tokenID).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
