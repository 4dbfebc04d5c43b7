package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/nft-now/sovereignty/internal/model"
)

// RoleRepo implements RoleRepository using PostgreSQL. The admins and
// authors tables are the live capability bitmaps; role_grants is the
// append-only audit log and is never consulted for authorization.
type RoleRepo struct{ db *DB }

// NewRoleRepo constructs a role repository.
func NewRoleRepo(db *DB) *RoleRepo { return &RoleRepo{db: db} }

// IsAdmin reports whether the account holds Admin.
func (r *RoleRepo) IsAdmin(ctx context.Context, account model.Address) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM admins WHERE account=$1)`
	var ok bool
	if err := r.db.Pool.QueryRow(ctx, q, account.Bytes()).Scan(&ok); err != nil {
		return false, err
	}
	return ok, nil
}

// IsAuthor reports whether the account holds Author.
func (r *RoleRepo) IsAuthor(ctx context.Context, account model.Address) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM authors WHERE account=$1)`
	var ok bool
	if err := r.db.Pool.QueryRow(ctx, q, account.Bytes()).Scan(&ok); err != nil {
		return false, err
	}
	return ok, nil
}

// GrantAuthor sets the Author bit and appends the audit record atomically.
func (r *RoleRepo) GrantAuthor(ctx context.Context, target model.Address) (err error) {
	tx, err := r.db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer finishTx(ctx, tx, &err)

	const ins = `INSERT INTO authors (account) VALUES ($1) ON CONFLICT (account) DO NOTHING`
	if _, err = tx.Exec(ctx, ins, target.Bytes()); err != nil {
		return err
	}
	const hist = `INSERT INTO role_grants (account) VALUES ($1)`
	_, err = tx.Exec(ctx, hist, target.Bytes())
	return err
}

// RevokeAuthor clears the Author bit; the audit log keeps its records.
func (r *RoleRepo) RevokeAuthor(ctx context.Context, target model.Address) error {
	_, err := r.db.Pool.Exec(ctx, `DELETE FROM authors WHERE account=$1`, target.Bytes())
	return err
}

// GrantAdmin sets the Admin bit.
func (r *RoleRepo) GrantAdmin(ctx context.Context, target model.Address) error {
	const q = `INSERT INTO admins (account) VALUES ($1) ON CONFLICT (account) DO NOTHING`
	_, err := r.db.Pool.Exec(ctx, q, target.Bytes())
	return err
}

// RenounceAdmin clears the account's own Admin bit. No floor check: the last
// Admin can renounce and brick administration.
func (r *RoleRepo) RenounceAdmin(ctx context.Context, account model.Address) error {
	_, err := r.db.Pool.Exec(ctx, `DELETE FROM admins WHERE account=$1`, account.Bytes())
	return err
}

// ListRoleGrants returns the grant history in insertion order.
func (r *RoleRepo) ListRoleGrants(ctx context.Context) ([]model.RoleGrant, error) {
	const q = `SELECT id, account, created_at FROM role_grants ORDER BY id ASC`
	rows, err := r.db.Pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.RoleGrant
	for rows.Next() {
		var (
			g   model.RoleGrant
			acc []byte
		)
		if err = rows.Scan(&g.ID, &acc, &g.CreatedAt); err != nil {
			return nil, err
		}
		if g.Account, err = model.AddressFromBytes(acc); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}
