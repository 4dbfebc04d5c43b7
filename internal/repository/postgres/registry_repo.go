package postgres

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/nft-now/sovereignty/internal/errs"
	"github.com/nft-now/sovereignty/internal/model"
)

// RegistryRepo implements RegistryRepository using PostgreSQL.
type RegistryRepo struct{ db *DB }

// NewRegistryRepo constructs an article/config repository.
func NewRegistryRepo(db *DB) *RegistryRepo { return &RegistryRepo{db: db} }

// CreateArticle appends the article and its token configuration in one
// transaction. The id is the article count read at the start of the
// transaction; the configs table's primary key turns a racing duplicate into
// ErrAlreadyExists and unwinds everything, including the reserve pre-mint.
func (r *RegistryRepo) CreateArticle(
	ctx context.Context, a model.Article, cfg model.TokenConfig, reserveTo model.Address, reserveAmount int64,
) (out model.Article, err error) {
	tx, err := r.db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return model.Article{}, err
	}
	defer finishTx(ctx, tx, &err)

	var id int64
	if err = tx.QueryRow(ctx, `SELECT COUNT(*) FROM articles`).Scan(&id); err != nil {
		return model.Article{}, err
	}

	const insArticle = `
INSERT INTO articles (id, publisher, category, title, author)
VALUES ($1, $2, $3, $4, $5)
RETURNING created_at`
	if err = tx.QueryRow(ctx, insArticle, id, a.Publisher, a.Category, a.Title, a.Author).Scan(&a.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			err = errs.ErrAlreadyExists
		}
		return model.Article{}, err
	}
	a.ID = id

	const insConfig = `
INSERT INTO token_configs
  (id, mintable, has_allowlist, public_cost, allowlist_cost, max_amount, max_per_user, metadata_url, author, validator)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	if _, err = tx.Exec(ctx, insConfig,
		id, cfg.Mintable, cfg.HasAllowlist, cfg.PublicCost, cfg.AllowlistCost,
		cfg.MaxAmount, cfg.MaxPerUser, cfg.MetadataURL, cfg.Author.Bytes(), cfg.Validator.Bytes()); err != nil {
		if isUniqueViolation(err) {
			err = errs.ErrAlreadyExists
		}
		return model.Article{}, err
	}

	const insKnown = `
INSERT INTO known_authors (account) VALUES ($1)
ON CONFLICT (account) DO NOTHING`
	if _, err = tx.Exec(ctx, insKnown, cfg.Author.Bytes()); err != nil {
		return model.Article{}, err
	}

	// Privileged pre-mint: no gate, cap, or price enforcement.
	if reserveAmount > 0 {
		if err = mintUnits(ctx, tx, id, reserveTo, reserveAmount); err != nil {
			return model.Article{}, err
		}
	}

	var evID uuid.UUID
	if evID, err = uuid.NewV4(); err != nil {
		return model.Article{}, err
	}
	const insEvent = `
INSERT INTO registry_events (id, kind, token_id, actor, amount)
VALUES ($1, $2, $3, $4, $5)`
	if _, err = tx.Exec(ctx, insEvent, evID, model.EventArticleCreated, id, cfg.Author.Bytes(), reserveAmount); err != nil {
		return model.Article{}, err
	}

	return a, nil
}

// GetArticle loads a single article by id.
func (r *RegistryRepo) GetArticle(ctx context.Context, id int64) (*model.Article, error) {
	const q = `
SELECT id, publisher, category, title, author, created_at
FROM articles WHERE id=$1`
	row := r.db.Pool.QueryRow(ctx, q, id)
	var a model.Article
	if err := row.Scan(&a.ID, &a.Publisher, &a.Category, &a.Title, &a.Author, &a.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrIndexOutOfRange
		}
		return nil, err
	}
	return &a, nil
}

// ListArticles returns the full article log in creation order.
func (r *RegistryRepo) ListArticles(ctx context.Context) ([]model.Article, error) {
	const q = `
SELECT id, publisher, category, title, author, created_at
FROM articles ORDER BY id ASC`
	rows, err := r.db.Pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Article
	for rows.Next() {
		var a model.Article
		if err = rows.Scan(&a.ID, &a.Publisher, &a.Category, &a.Title, &a.Author, &a.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// GetTokenConfig loads a token configuration; nil when the id is unconfigured.
func (r *RegistryRepo) GetTokenConfig(ctx context.Context, id int64) (*model.TokenConfig, error) {
	const q = `
SELECT id, mintable, has_allowlist, public_cost, allowlist_cost, max_amount, max_per_user, metadata_url, author, validator, created_at
FROM token_configs WHERE id=$1`
	row := r.db.Pool.QueryRow(ctx, q, id)
	cfg, err := scanTokenConfig(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return cfg, nil
}

// scanTokenConfig scans one token_configs row, decoding address columns.
func scanTokenConfig(row pgx.Row) (*model.TokenConfig, error) {
	var (
		cfg               model.TokenConfig
		author, validator []byte
	)
	if err := row.Scan(&cfg.ID, &cfg.Mintable, &cfg.HasAllowlist, &cfg.PublicCost, &cfg.AllowlistCost,
		&cfg.MaxAmount, &cfg.MaxPerUser, &cfg.MetadataURL, &author, &validator, &cfg.CreatedAt); err != nil {
		return nil, err
	}
	var err error
	if cfg.Author, err = model.AddressFromBytes(author); err != nil {
		return nil, err
	}
	if cfg.Validator, err = model.AddressFromBytes(validator); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SetMintable flips the mintable flag.
func (r *RegistryRepo) SetMintable(ctx context.Context, id int64, v bool) error {
	return r.setFlag(ctx, `UPDATE token_configs SET mintable=$2 WHERE id=$1`, id, v)
}

// SetAllowlist flips the allowlist flag.
func (r *RegistryRepo) SetAllowlist(ctx context.Context, id int64, v bool) error {
	return r.setFlag(ctx, `UPDATE token_configs SET has_allowlist=$2 WHERE id=$1`, id, v)
}

// SetAllowlistCost updates the allowlist price.
func (r *RegistryRepo) SetAllowlistCost(ctx context.Context, id int64, cost int64) error {
	return r.setFlag(ctx, `UPDATE token_configs SET allowlist_cost=$2 WHERE id=$1`, id, cost)
}

// SetMetadataURL updates the metadata URL.
func (r *RegistryRepo) SetMetadataURL(ctx context.Context, id int64, url string) error {
	return r.setFlag(ctx, `UPDATE token_configs SET metadata_url=$2 WHERE id=$1`, id, url)
}

func (r *RegistryRepo) setFlag(ctx context.Context, q string, id int64, v any) error {
	tag, err := r.db.Pool.Exec(ctx, q, id, v)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}
