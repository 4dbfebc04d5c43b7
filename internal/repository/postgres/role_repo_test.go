package postgres

import (
	"context"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"
)

func TestRoleRepo_Bits(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewRoleRepo(db)
	ctx := context.Background()
	acc := testAddr(1)

	mock.ExpectQuery(`SELECT 1 FROM admins WHERE account=\$1`).
		WithArgs(acc.Bytes()).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
	ok, err := r.IsAdmin(ctx, acc)
	require.NoError(t, err)
	require.True(t, ok)

	mock.ExpectQuery(`SELECT 1 FROM authors WHERE account=\$1`).
		WithArgs(acc.Bytes()).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
	ok, err = r.IsAuthor(ctx, acc)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestRoleRepo_GrantAuthor_WritesHistory(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewRoleRepo(db)
	ctx := context.Background()
	target := testAddr(2)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO authors`).
		WithArgs(target.Bytes()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec(`INSERT INTO role_grants`).
		WithArgs(target.Bytes()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	require.NoError(t, r.GrantAuthor(ctx, target))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRoleRepo_GrantAuthor_Repeat_AppendsHistoryAgain(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewRoleRepo(db)
	ctx := context.Background()
	target := testAddr(2)

	// The bit insert is a no-op; the history record still lands.
	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO authors`).
		WithArgs(target.Bytes()).
		WillReturnResult(pgxmock.NewResult("INSERT", 0))
	mock.ExpectExec(`INSERT INTO role_grants`).
		WithArgs(target.Bytes()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	require.NoError(t, r.GrantAuthor(ctx, target))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRoleRepo_RevokeAndRenounce(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewRoleRepo(db)
	ctx := context.Background()
	acc := testAddr(2)

	mock.ExpectExec(`DELETE FROM authors WHERE account=\$1`).
		WithArgs(acc.Bytes()).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	require.NoError(t, r.RevokeAuthor(ctx, acc))

	// Unconditional: succeeds even when the row is the last admin.
	mock.ExpectExec(`DELETE FROM admins WHERE account=\$1`).
		WithArgs(acc.Bytes()).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	require.NoError(t, r.RenounceAdmin(ctx, acc))
}

func TestRoleRepo_GrantAdmin(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewRoleRepo(db)
	ctx := context.Background()
	target := testAddr(4)

	mock.ExpectExec(`INSERT INTO admins`).
		WithArgs(target.Bytes()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	require.NoError(t, r.GrantAdmin(ctx, target))
}

func TestRoleRepo_ListRoleGrants(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewRoleRepo(db)
	ctx := context.Background()
	a, b := testAddr(1), testAddr(2)

	mock.ExpectQuery(`FROM role_grants ORDER BY id ASC`).
		WillReturnRows(pgxmock.NewRows([]string{"id", "account", "created_at"}).
			AddRow(int64(1), a.Bytes(), time.Now()).
			AddRow(int64(2), b.Bytes(), time.Now()))

	gs, err := r.ListRoleGrants(ctx)
	require.NoError(t, err)
	require.Len(t, gs, 2)
	require.Equal(t, a, gs[0].Account)
	require.Equal(t, b, gs[1].Account)
}
