package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"autoinsight/yardhub/internal/model"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)
	return gormDB, mock
}

func TestInviteRepoFindByToken(t *testing.T) {
	gormDB, mock := newMockDB(t)
	repo := NewPGInviteRepository(gormDB)

	id := uuid.New()
	yardID := uuid.New()
	rows := sqlmock.NewRows([]string{"id", "email", "name", "role", "status", "token", "yard_id"}).
		AddRow(id, "ana@example.com", "Ana", "MEMBER", "PENDING", "tok123", yardID)

	mock.ExpectQuery(`SELECT \* FROM "employee_invites" WHERE token = \$1`).
		WithArgs("tok123", 1).
		WillReturnRows(rows)

	invite, err := repo.FindByToken(context.Background(), "tok123")
	require.NoError(t, err)
	assert.Equal(t, id, invite.ID)
	assert.Equal(t, model.InvitePending, invite.Status)
	assert.Equal(t, "tok123", invite.Token)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInviteRepoFindByTokenNotFound(t *testing.T) {
	gormDB, mock := newMockDB(t)
	repo := NewPGInviteRepository(gormDB)

	mock.ExpectQuery(`SELECT \* FROM "employee_invites" WHERE token = \$1`).
		WithArgs("missing", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindByToken(context.Background(), "missing")
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestInviteRepoFindPendingByEmailAndYard(t *testing.T) {
	gormDB, mock := newMockDB(t)
	repo := NewPGInviteRepository(gormDB)

	yardID := uuid.New()
	mock.ExpectQuery(`SELECT \* FROM "employee_invites" WHERE email = \$1 AND yard_id = \$2 AND status = \$3`).
		WithArgs("ana@example.com", yardID, "PENDING", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "status", "yard_id"}).
			AddRow(uuid.New(), "ana@example.com", "PENDING", yardID))

	invite, err := repo.FindPendingByEmailAndYard(context.Background(), "ana@example.com", yardID)
	require.NoError(t, err)
	assert.Equal(t, model.InvitePending, invite.Status)
}

func TestInviteRepoListByYardOrdersNewestFirst(t *testing.T) {
	gormDB, mock := newMockDB(t)
	repo := NewPGInviteRepository(gormDB)

	yardID := uuid.New()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "employee_invites" WHERE yard_id = \$1`).
		WithArgs(yardID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

	mock.ExpectQuery(`SELECT \* FROM "employee_invites" WHERE yard_id = \$1 ORDER BY created_at desc LIMIT \$2`).
		WithArgs(yardID, 5).
		WillReturnRows(sqlmock.NewRows([]string{"id", "yard_id"}).
			AddRow(uuid.New(), yardID).
			AddRow(uuid.New(), yardID))

	page, err := repo.ListByYard(context.Background(), PageRequest{Number: 1, Size: 5}, yardID)
	require.NoError(t, err)
	assert.Len(t, page.Data, 2)
	assert.Equal(t, int64(12), page.TotalRecords)
	assert.Equal(t, 3, page.TotalPages)
	assert.NoError(t, mock.ExpectationsWereMet())
}
