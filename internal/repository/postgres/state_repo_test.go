package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"

	"github.com/nft-now/sovereignty/internal/errs"
	"github.com/nft-now/sovereignty/internal/model"
)

func TestStateRepo_Bootstrap_FirstRun(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewStateRepo(db)
	ctx := context.Background()
	owner := testAddr(9)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO registry_state`).
		WithArgs(owner.Bytes()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec(`INSERT INTO admins`).
		WithArgs(owner.Bytes()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	require.NoError(t, r.Bootstrap(ctx, owner))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStateRepo_Bootstrap_AlreadySeeded(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewStateRepo(db)
	ctx := context.Background()
	owner := testAddr(9)

	// Existing state: no admin grant, the original owner stands.
	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO registry_state`).
		WithArgs(owner.Bytes()).
		WillReturnResult(pgxmock.NewResult("INSERT", 0))
	mock.ExpectCommit()

	require.NoError(t, r.Bootstrap(ctx, owner))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStateRepo_OwnerAndPause(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewStateRepo(db)
	ctx := context.Background()
	owner := testAddr(9)

	mock.ExpectQuery(`SELECT owner FROM registry_state`).
		WillReturnRows(pgxmock.NewRows([]string{"owner"}).AddRow(owner.Bytes()))
	got, err := r.Owner(ctx)
	require.NoError(t, err)
	require.Equal(t, owner, got)

	mock.ExpectQuery(`SELECT owner FROM registry_state`).
		WillReturnError(pgx.ErrNoRows)
	_, err = r.Owner(ctx)
	require.ErrorIs(t, err, errs.ErrNotFound)

	mock.ExpectQuery(`SELECT paused FROM registry_state`).
		WillReturnRows(pgxmock.NewRows([]string{"paused"}).AddRow(true))
	p, err := r.IsPaused(ctx)
	require.NoError(t, err)
	require.True(t, p)

	mock.ExpectExec(`UPDATE registry_state SET paused=\$1`).
		WithArgs(false).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	require.NoError(t, r.SetPaused(ctx, false))
}

func TestStateRepo_Withdraw(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewStateRepo(db)
	ctx := context.Background()
	to := testAddr(1)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT treasury FROM registry_state WHERE id = 1 FOR UPDATE`).
		WillReturnRows(pgxmock.NewRows([]string{"treasury"}).AddRow(int64(250)))
	mock.ExpectExec(`UPDATE registry_state SET treasury = 0`).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	// The payout record goes in last.
	mock.ExpectExec(`INSERT INTO registry_events`).
		WithArgs(pgxmock.AnyArg(), model.EventTreasuryWithdraw, to.Bytes(), int64(250)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	n, err := r.Withdraw(ctx, to)
	require.NoError(t, err)
	require.Equal(t, int64(250), n)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStateRepo_Withdraw_EventFailureUnwinds(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewStateRepo(db)
	ctx := context.Background()
	to := testAddr(1)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT treasury FROM registry_state WHERE id = 1 FOR UPDATE`).
		WillReturnRows(pgxmock.NewRows([]string{"treasury"}).AddRow(int64(250)))
	mock.ExpectExec(`UPDATE registry_state SET treasury = 0`).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(`INSERT INTO registry_events`).
		WithArgs(pgxmock.AnyArg(), model.EventTreasuryWithdraw, to.Bytes(), int64(250)).
		WillReturnError(pgx.ErrTxClosed)
	mock.ExpectRollback()

	_, err := r.Withdraw(ctx, to)
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestChallengeRepo_CreateAndConsume(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewChallengeRepo(db)
	ctx := context.Background()

	id := uuid.Must(uuid.NewV4())
	nonce := []byte("nonce")
	exp := time.Now().Add(5 * time.Minute)

	mock.ExpectExec(`INSERT INTO login_challenges`).
		WithArgs(id, nonce, exp).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	require.NoError(t, r.Create(ctx, model.Challenge{ID: id, Nonce: nonce, ExpiresAt: exp}))

	mock.ExpectQuery(`UPDATE login_challenges SET used = true`).
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows([]string{"id", "nonce", "expires_at"}).AddRow(id, nonce, exp))
	c, err := r.Consume(ctx, id)
	require.NoError(t, err)
	require.Equal(t, nonce, c.Nonce)

	// Second consume finds nothing: single use.
	mock.ExpectQuery(`UPDATE login_challenges SET used = true`).
		WithArgs(id).
		WillReturnError(pgx.ErrNoRows)
	_, err = r.Consume(ctx, id)
	require.ErrorIs(t, err, errs.ErrNotFound)
}
