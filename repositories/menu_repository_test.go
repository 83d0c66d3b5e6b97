package repositories

import (
	"testing"

	"backend-master/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Role{},
		&models.UserRole{},
		&models.Menu{},
		&models.RoleMenu{},
	))
	return db
}

func seedRole(t *testing.T, db *gorm.DB, kode string) models.Role {
	t.Helper()
	role := models.Role{Kode: kode, Nama: kode, IsActive: true}
	require.NoError(t, db.Create(&role).Error)
	return role
}

func seedMenu(t *testing.T, db *gorm.DB, name string, parentID *uint, orderNo int, active bool) models.Menu {
	t.Helper()
	menu := models.Menu{Name: name, ParentID: parentID, OrderNo: orderNo, IsActive: active}
	require.NoError(t, db.Create(&menu).Error)
	return menu
}

func TestRolesOfUserEmpty(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMenuRepository(db)

	roleIDs, err := repo.RolesOfUser(42)
	require.NoError(t, err)
	assert.Empty(t, roleIDs)
}

func TestMenusOfRolesShortCircuitsOnEmptyInput(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMenuRepository(db)

	menuIDs, err := repo.MenusOfRoles(nil)
	require.NoError(t, err)
	assert.Equal(t, []uint{}, menuIDs)
}

func TestMenusOfRolesUnionWithoutDuplicates(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMenuRepository(db)

	r1 := seedRole(t, db, "ADMIN")
	r2 := seedRole(t, db, "BM")
	m1 := seedMenu(t, db, "Dashboard", nil, 1, true)
	m2 := seedMenu(t, db, "Master", nil, 2, true)

	require.NoError(t, db.Create(&[]models.RoleMenu{
		{RoleID: r1.ID, MenuID: m1.ID},
		{RoleID: r1.ID, MenuID: m2.ID},
		{RoleID: r2.ID, MenuID: m2.ID},
	}).Error)

	menuIDs, err := repo.MenusOfRoles([]uint{r1.ID, r2.ID})
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{m1.ID, m2.ID}, menuIDs)
}

func TestActiveMenusByIDsFiltersInactive(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMenuRepository(db)

	aktif := seedMenu(t, db, "Aktif", nil, 1, true)
	mati := seedMenu(t, db, "Mati", nil, 2, false)

	rows, err := repo.ActiveMenusByIDs([]uint{aktif.ID, mati.ID})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Aktif", rows[0].Name)
}

func TestActiveMenusByIDsOrdering(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMenuRepository(db)

	parent := seedMenu(t, db, "Parent", nil, 5, true)
	child2 := seedMenu(t, db, "Child2", &parent.ID, 2, true)
	child1 := seedMenu(t, db, "Child1", &parent.ID, 1, true)

	rows, err := repo.ActiveMenusByIDs([]uint{child2.ID, parent.ID, child1.ID})
	require.NoError(t, err)
	require.Len(t, rows, 3)
	// root dulu (parent_id NULL dihitung 0), lalu anak urut order_no
	assert.Equal(t, "Parent", rows[0].Name)
	assert.Equal(t, "Child1", rows[1].Name)
	assert.Equal(t, "Child2", rows[2].Name)
}

func TestReplaceRoleMenusRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMenuRepository(db)

	role := seedRole(t, db, "ADMIN")
	m1 := seedMenu(t, db, "Dashboard", nil, 1, true)
	m2 := seedMenu(t, db, "Master", nil, 2, true)
	m3 := seedMenu(t, db, "Auth", nil, 3, true)

	checked, err := repo.ReplaceRoleMenus(role.ID, []uint{m3.ID, m1.ID})
	require.NoError(t, err)
	assert.Equal(t, []uint{m1.ID, m3.ID}, checked)

	// kiriman kedua mengganti total, bukan menambah
	checked, err = repo.ReplaceRoleMenus(role.ID, []uint{m2.ID})
	require.NoError(t, err)
	assert.Equal(t, []uint{m2.ID}, checked)
}

func TestReplaceRoleMenusIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMenuRepository(db)

	role := seedRole(t, db, "ADMIN")
	m1 := seedMenu(t, db, "Dashboard", nil, 1, true)

	first, err := repo.ReplaceRoleMenus(role.ID, []uint{m1.ID})
	require.NoError(t, err)
	second, err := repo.ReplaceRoleMenus(role.ID, []uint{m1.ID})
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestReplaceRoleMenusDedupesInput(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMenuRepository(db)

	role := seedRole(t, db, "ADMIN")
	m1 := seedMenu(t, db, "Dashboard", nil, 1, true)

	checked, err := repo.ReplaceRoleMenus(role.ID, []uint{m1.ID, m1.ID, m1.ID})
	require.NoError(t, err)
	assert.Equal(t, []uint{m1.ID}, checked)

	var count int64
	db.Model(&models.RoleMenu{}).Where("role_id = ?", role.ID).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestReplaceRoleMenusEmptyClearsAll(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMenuRepository(db)

	role := seedRole(t, db, "ADMIN")
	m1 := seedMenu(t, db, "Dashboard", nil, 1, true)
	_, err := repo.ReplaceRoleMenus(role.ID, []uint{m1.ID})
	require.NoError(t, err)

	checked, err := repo.ReplaceRoleMenus(role.ID, nil)
	require.NoError(t, err)
	assert.Empty(t, checked)

	var count int64
	db.Model(&models.RoleMenu{}).Where("role_id = ?", role.ID).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestReplaceRoleMenusUnknownRole(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMenuRepository(db)

	_, err := repo.ReplaceRoleMenus(999, nil)
	assert.ErrorIs(t, err, ErrRoleNotFound)
}

func TestReplaceRoleMenusUnknownMenuLeavesGrantsUntouched(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMenuRepository(db)

	role := seedRole(t, db, "ADMIN")
	m1 := seedMenu(t, db, "Dashboard", nil, 1, true)
	_, err := repo.ReplaceRoleMenus(role.ID, []uint{m1.ID})
	require.NoError(t, err)

	_, err = repo.ReplaceRoleMenus(role.ID, []uint{m1.ID, 999})
	assert.ErrorIs(t, err, ErrMenuNotFound)

	// grant lama tidak boleh hilang karena kiriman ditolak
	checked, err := repo.MenusOfRoles([]uint{role.ID})
	require.NoError(t, err)
	assert.Equal(t, []uint{m1.ID}, checked)
}

func TestUserMenuFlowAcrossRoles(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMenuRepository(db)

	user := models.User{Name: "Budi", Email: "budi@example.com", Password: "x", IsActive: true}
	require.NoError(t, db.Create(&user).Error)

	r1 := seedRole(t, db, "BM")
	r2 := seedRole(t, db, "OM")
	require.NoError(t, db.Create(&[]models.UserRole{
		{UserID: user.ID, RoleID: r1.ID},
		{UserID: user.ID, RoleID: r2.ID},
	}).Error)

	m1 := seedMenu(t, db, "Dashboard", nil, 1, true)
	m2 := seedMenu(t, db, "Master", nil, 2, true)
	mati := seedMenu(t, db, "Mati", nil, 3, false)

	_, err := repo.ReplaceRoleMenus(r1.ID, []uint{m1.ID, mati.ID})
	require.NoError(t, err)
	_, err = repo.ReplaceRoleMenus(r2.ID, []uint{m1.ID, m2.ID})
	require.NoError(t, err)

	roleIDs, err := repo.RolesOfUser(user.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{r1.ID, r2.ID}, roleIDs)

	menuIDs, err := repo.MenusOfRoles(roleIDs)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{m1.ID, m2.ID, mati.ID}, menuIDs)

	rows, err := repo.ActiveMenusByIDs(menuIDs)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Dashboard", rows[0].Name)
	assert.Equal(t, "Master", rows[1].Name)
}
