package controllers

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"backend-master/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeAuth meniru middleware auth: isi Locals userID seperti klaim JWT
func fakeAuth(userID uint) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		ctx.Locals("userID", float64(userID))
		return ctx.Next()
	}
}

func setupMyMenusApp(db *gorm.DB, userID uint) *fiber.App {
	app := fiber.New()
	controller := NewMenuController(db)
	app.Get("/auth/my-menus", fakeAuth(userID), controller.MyMenus)
	return app
}

func fetchMyMenus(t *testing.T, app *fiber.App) (int, []interface{}) {
	t.Helper()
	req := httptest.NewRequest("GET", "/auth/my-menus", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out []interface{}
	require.NoError(t, json.Unmarshal(data, &out))
	return resp.StatusCode, out
}

func TestMyMenusUserWithoutRoles(t *testing.T) {
	db := setupTestDB(t)

	user := models.User{Name: "Budi", Email: "budi@example.com", Password: "x", IsActive: true}
	require.NoError(t, db.Create(&user).Error)

	app := setupMyMenusApp(db, user.ID)
	status, tree := fetchMyMenus(t, app)
	require.Equal(t, fiber.StatusOK, status)
	// array kosong, bukan null dan bukan error
	assert.NotNil(t, tree)
	assert.Empty(t, tree)
}

func TestMyMenusBuildsShapedTree(t *testing.T) {
	db := setupTestDB(t)

	user := models.User{Name: "Budi", Email: "budi@example.com", Password: "x", IsActive: true}
	require.NoError(t, db.Create(&user).Error)
	role := models.Role{Kode: "ADMIN", Nama: "Administrator", IsActive: true}
	require.NoError(t, db.Create(&role).Error)
	require.NoError(t, db.Create(&models.UserRole{UserID: user.ID, RoleID: role.ID}).Error)

	dashboard := models.Menu{Name: "Dashboard", Path: "/dashboard", Icon: "tabler-smart-home", OrderNo: 1, IsActive: true}
	require.NoError(t, db.Create(&dashboard).Error)
	master := models.Menu{Name: "Master", Icon: "tabler-settings", OrderNo: 2, IsActive: true}
	require.NoError(t, db.Create(&master).Error)
	cabang := models.Menu{Name: "Cabang", ParentID: &master.ID, Path: "/master/cabang", OrderNo: 1, IsActive: true}
	require.NoError(t, db.Create(&cabang).Error)
	mati := models.Menu{Name: "Mati", OrderNo: 3, IsActive: false}
	require.NoError(t, db.Create(&mati).Error)

	require.NoError(t, db.Create(&[]models.RoleMenu{
		{RoleID: role.ID, MenuID: dashboard.ID},
		{RoleID: role.ID, MenuID: master.ID},
		{RoleID: role.ID, MenuID: cabang.ID},
		{RoleID: role.ID, MenuID: mati.ID},
	}).Error)

	app := setupMyMenusApp(db, user.ID)
	status, tree := fetchMyMenus(t, app)
	require.Equal(t, fiber.StatusOK, status)
	require.Len(t, tree, 2)

	first := tree[0].(map[string]interface{})
	assert.Equal(t, "Dashboard", first["title"])
	to := first["to"].(map[string]interface{})
	assert.Equal(t, "/dashboard", to["path"])
	_, hasChildren := first["children"]
	assert.False(t, hasChildren)

	second := tree[1].(map[string]interface{})
	assert.Equal(t, "Master", second["title"])
	// group tidak membawa target navigasi
	_, hasTo := second["to"]
	assert.False(t, hasTo)
	children := second["children"].([]interface{})
	require.Len(t, children, 1)
	assert.Equal(t, "Cabang", children[0].(map[string]interface{})["title"])
}

func TestMyMenusGrantedMenuWithUngrantedParentBecomesRoot(t *testing.T) {
	db := setupTestDB(t)

	user := models.User{Name: "Budi", Email: "budi@example.com", Password: "x", IsActive: true}
	require.NoError(t, db.Create(&user).Error)
	role := models.Role{Kode: "BM", Nama: "Branch Manager", IsActive: true}
	require.NoError(t, db.Create(&role).Error)
	require.NoError(t, db.Create(&models.UserRole{UserID: user.ID, RoleID: role.ID}).Error)

	master := models.Menu{Name: "Master", OrderNo: 1, IsActive: true}
	require.NoError(t, db.Create(&master).Error)
	cabang := models.Menu{Name: "Cabang", ParentID: &master.ID, Path: "/master/cabang", OrderNo: 1, IsActive: true}
	require.NoError(t, db.Create(&cabang).Error)

	// hanya anaknya yang digrant, parent tidak
	require.NoError(t, db.Create(&models.RoleMenu{RoleID: role.ID, MenuID: cabang.ID}).Error)

	app := setupMyMenusApp(db, user.ID)
	status, tree := fetchMyMenus(t, app)
	require.Equal(t, fiber.StatusOK, status)
	require.Len(t, tree, 1)
	assert.Equal(t, "Cabang", tree[0].(map[string]interface{})["title"])
}
