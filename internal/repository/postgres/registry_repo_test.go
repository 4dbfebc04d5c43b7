package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"

	"github.com/nft-now/sovereignty/internal/errs"
	"github.com/nft-now/sovereignty/internal/model"
)

func newDB(t *testing.T) (*DB, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	return &DB{Pool: mock}, mock
}

func testAddr(b byte) model.Address {
	var a model.Address
	a[0] = b
	return a
}

var tokenConfigCols = []string{
	"id", "mintable", "has_allowlist", "public_cost", "allowlist_cost",
	"max_amount", "max_per_user", "metadata_url", "author", "validator", "created_at",
}

func tokenConfigRow(id int64, mintable, allowlist bool, author, validator model.Address) *pgxmock.Rows {
	return pgxmock.NewRows(tokenConfigCols).AddRow(
		id, mintable, allowlist, int64(10), int64(5), int64(100), int64(3),
		"ipfs://meta", author.Bytes(), validator.Bytes(), time.Now(),
	)
}

func TestRegistryRepo_CreateArticle_OK(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewRegistryRepo(db)
	ctx := context.Background()

	author := testAddr(1)
	a := model.Article{Publisher: author.String(), Category: "essay", Title: "t", Author: "A."}
	cfg := model.TokenConfig{PublicCost: 10, AllowlistCost: 5, MaxAmount: 100, MaxPerUser: 3, MetadataURL: "u", Author: author, Validator: testAddr(2)}

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM articles`).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(3)))
	mock.ExpectQuery(`INSERT INTO articles`).
		WithArgs(int64(3), a.Publisher, a.Category, a.Title, a.Author).
		WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(time.Now()))
	mock.ExpectExec(`INSERT INTO token_configs`).
		WithArgs(int64(3), cfg.Mintable, cfg.HasAllowlist, cfg.PublicCost, cfg.AllowlistCost,
			cfg.MaxAmount, cfg.MaxPerUser, cfg.MetadataURL, cfg.Author.Bytes(), cfg.Validator.Bytes()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec(`INSERT INTO known_authors`).
		WithArgs(author.Bytes()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec(`INSERT INTO registry_events`).
		WithArgs(pgxmock.AnyArg(), model.EventArticleCreated, int64(3), author.Bytes(), int64(0)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	out, err := r.CreateArticle(ctx, a, cfg, model.ZeroAddress, 0)
	require.NoError(t, err)
	require.Equal(t, int64(3), out.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRegistryRepo_CreateArticle_WithReserve(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewRegistryRepo(db)
	ctx := context.Background()

	author := testAddr(1)
	reserveTo := testAddr(7)
	a := model.Article{Publisher: author.String(), Title: "t"}
	cfg := model.TokenConfig{Author: author, Validator: testAddr(2)}

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM articles`).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(0)))
	mock.ExpectQuery(`INSERT INTO articles`).
		WithArgs(int64(0), a.Publisher, a.Category, a.Title, a.Author).
		WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(time.Now()))
	mock.ExpectExec(`INSERT INTO token_configs`).
		WithArgs(int64(0), cfg.Mintable, cfg.HasAllowlist, cfg.PublicCost, cfg.AllowlistCost,
			cfg.MaxAmount, cfg.MaxPerUser, cfg.MetadataURL, cfg.Author.Bytes(), cfg.Validator.Bytes()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec(`INSERT INTO known_authors`).
		WithArgs(author.Bytes()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	// Reserve pre-mint bypasses the gates.
	mock.ExpectExec(`INSERT INTO balances`).
		WithArgs(int64(0), reserveTo.Bytes(), int64(5)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec(`INSERT INTO token_supply`).
		WithArgs(int64(0), int64(5)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec(`INSERT INTO registry_events`).
		WithArgs(pgxmock.AnyArg(), model.EventArticleCreated, int64(0), author.Bytes(), int64(5)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	_, err := r.CreateArticle(ctx, a, cfg, reserveTo, 5)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRegistryRepo_CreateArticle_Duplicate(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewRegistryRepo(db)
	ctx := context.Background()

	a := model.Article{Publisher: testAddr(1).String(), Title: "t"}
	cfg := model.TokenConfig{Author: testAddr(1), Validator: testAddr(2)}

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM articles`).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(1)))
	mock.ExpectQuery(`INSERT INTO articles`).
		WithArgs(int64(1), a.Publisher, a.Category, a.Title, a.Author).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	mock.ExpectRollback()

	_, err := r.CreateArticle(ctx, a, cfg, model.ZeroAddress, 0)
	require.ErrorIs(t, err, errs.ErrAlreadyExists)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRegistryRepo_GetArticle(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewRegistryRepo(db)
	ctx := context.Background()

	mock.ExpectQuery(`FROM articles WHERE id=\$1`).
		WithArgs(int64(2)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "publisher", "category", "title", "author", "created_at"}).
			AddRow(int64(2), testAddr(1).String(), "essay", "t", "A.", time.Now()))
	a, err := r.GetArticle(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, int64(2), a.ID)

	mock.ExpectQuery(`FROM articles WHERE id=\$1`).
		WithArgs(int64(9)).
		WillReturnError(pgx.ErrNoRows)
	_, err = r.GetArticle(ctx, 9)
	require.ErrorIs(t, err, errs.ErrIndexOutOfRange)
}

func TestRegistryRepo_GetTokenConfig(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewRegistryRepo(db)
	ctx := context.Background()
	author := testAddr(1)

	mock.ExpectQuery(`FROM token_configs WHERE id=\$1`).
		WithArgs(int64(0)).
		WillReturnRows(tokenConfigRow(0, true, false, author, testAddr(2)))
	cfg, err := r.GetTokenConfig(ctx, 0)
	require.NoError(t, err)
	require.True(t, cfg.Mintable)
	require.Equal(t, author, cfg.Author)

	// Unconfigured id reads as nil, not an error.
	mock.ExpectQuery(`FROM token_configs WHERE id=\$1`).
		WithArgs(int64(9)).
		WillReturnError(pgx.ErrNoRows)
	cfg, err = r.GetTokenConfig(ctx, 9)
	require.NoError(t, err)
	require.Nil(t, cfg)
}

func TestRegistryRepo_SetFlags(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewRegistryRepo(db)
	ctx := context.Background()

	mock.ExpectExec(`UPDATE token_configs SET mintable=\$2 WHERE id=\$1`).
		WithArgs(int64(0), true).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	require.NoError(t, r.SetMintable(ctx, 0, true))

	mock.ExpectExec(`UPDATE token_configs SET has_allowlist=\$2 WHERE id=\$1`).
		WithArgs(int64(0), true).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	require.NoError(t, r.SetAllowlist(ctx, 0, true))

	mock.ExpectExec(`UPDATE token_configs SET allowlist_cost=\$2 WHERE id=\$1`).
		WithArgs(int64(0), int64(7)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	require.NoError(t, r.SetAllowlistCost(ctx, 0, 7))

	mock.ExpectExec(`UPDATE token_configs SET metadata_url=\$2 WHERE id=\$1`).
		WithArgs(int64(0), "ipfs://new").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	require.NoError(t, r.SetMetadataURL(ctx, 0, "ipfs://new"))

	// Unconfigured id.
	mock.ExpectExec(`UPDATE token_configs SET mintable=\$2 WHERE id=\$1`).
		WithArgs(int64(9), true).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	require.ErrorIs(t, r.SetMintable(ctx, 9, true), errs.ErrNotFound)
}
