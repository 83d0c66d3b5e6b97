package repositories

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 conn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

// Delete dan insert grant harus jalan di dalam satu transaksi yang sama.
func TestReplaceRoleMenusRunsInTransaction(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewMenuRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "roles"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "kode", "nama", "is_active"}).
			AddRow(7, "ADMIN", "Administrator", true))

	mock.ExpectQuery(`SELECT count\(\*\) FROM "menus"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "role_menus" WHERE role_id = \$1`).
		WithArgs(uint(7)).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`INSERT INTO "role_menus"`).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	mock.ExpectQuery(`SELECT DISTINCT "menu_id" FROM "role_menus"`).
		WillReturnRows(sqlmock.NewRows([]string{"menu_id"}).AddRow(2).AddRow(5))

	checked, err := repo.ReplaceRoleMenus(7, []uint{5, 2})
	require.NoError(t, err)
	assert.Equal(t, []uint{2, 5}, checked)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Insert yang gagal harus membatalkan delete, grant lama tidak boleh hilang.
func TestReplaceRoleMenusRollsBackOnInsertFailure(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewMenuRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "roles"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "kode", "nama", "is_active"}).
			AddRow(7, "ADMIN", "Administrator", true))

	mock.ExpectQuery(`SELECT count\(\*\) FROM "menus"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "role_menus" WHERE role_id = \$1`).
		WithArgs(uint(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO "role_menus"`).
		WillReturnError(errors.New("insert failed"))
	mock.ExpectRollback()

	_, err := repo.ReplaceRoleMenus(7, []uint{5})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
