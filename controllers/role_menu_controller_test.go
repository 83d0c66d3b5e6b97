package controllers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"backend-master/models"

	"github.com/gofiber/fiber/v2"
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

func setupRoleMenuApp(db *gorm.DB) *fiber.App {
	app := fiber.New()
	controller := NewRoleMenuController(db)
	app.Get("/master/role-menus", controller.Index)
	app.Post("/master/role-menus", controller.Store)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body interface{}) (int, map[string]interface{}) {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &out))
	return resp.StatusCode, out
}

func getJSON(t *testing.T, app *fiber.App, path string) (int, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &out))
	return resp.StatusCode, out
}

func TestRoleMenuStoreAndIndex(t *testing.T) {
	db := setupTestDB(t)
	app := setupRoleMenuApp(db)

	role := models.Role{Kode: "ADMIN", Nama: "Administrator", IsActive: true}
	require.NoError(t, db.Create(&role).Error)
	m1 := models.Menu{Name: "Dashboard", OrderNo: 1, IsActive: true}
	m2 := models.Menu{Name: "Master", OrderNo: 2, IsActive: true}
	require.NoError(t, db.Create(&m1).Error)
	require.NoError(t, db.Create(&m2).Error)

	status, body := postJSON(t, app, "/master/role-menus", fiber.Map{
		"role_id":  role.ID,
		"menu_ids": []uint{m2.ID, m1.ID},
	})
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Role menus saved", body["message"])
	assert.Len(t, body["checked"], 2)

	status, body = getJSON(t, app, "/master/role-menus?role_id=1")
	require.Equal(t, fiber.StatusOK, status)
	assert.Len(t, body["roles"], 1)
	assert.Len(t, body["menus"], 2)
	assert.Len(t, body["checked"], 2)
}

func TestRoleMenuIndexWithoutRoleID(t *testing.T) {
	db := setupTestDB(t)
	app := setupRoleMenuApp(db)

	status, body := getJSON(t, app, "/master/role-menus")
	require.Equal(t, fiber.StatusOK, status)
	// tanpa role_id, checked harus array kosong, bukan null
	checked, ok := body["checked"].([]interface{})
	require.True(t, ok)
	assert.Empty(t, checked)
}

func TestRoleMenuStoreEmptyClearsAll(t *testing.T) {
	db := setupTestDB(t)
	app := setupRoleMenuApp(db)

	role := models.Role{Kode: "ADMIN", Nama: "Administrator", IsActive: true}
	require.NoError(t, db.Create(&role).Error)
	m1 := models.Menu{Name: "Dashboard", OrderNo: 1, IsActive: true}
	require.NoError(t, db.Create(&m1).Error)

	status, _ := postJSON(t, app, "/master/role-menus", fiber.Map{
		"role_id":  role.ID,
		"menu_ids": []uint{m1.ID},
	})
	require.Equal(t, fiber.StatusOK, status)

	status, body := postJSON(t, app, "/master/role-menus", fiber.Map{
		"role_id":  role.ID,
		"menu_ids": []uint{},
	})
	require.Equal(t, fiber.StatusOK, status)
	assert.Empty(t, body["checked"])

	var count int64
	db.Model(&models.RoleMenu{}).Where("role_id = ?", role.ID).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestRoleMenuStoreValidation(t *testing.T) {
	db := setupTestDB(t)
	app := setupRoleMenuApp(db)

	// role_id wajib ada
	status, _ := postJSON(t, app, "/master/role-menus", fiber.Map{"menu_ids": []uint{1}})
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)

	// role tidak dikenal
	status, _ = postJSON(t, app, "/master/role-menus", fiber.Map{"role_id": 999})
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)

	// menu tidak dikenal
	role := models.Role{Kode: "ADMIN", Nama: "Administrator", IsActive: true}
	require.NoError(t, db.Create(&role).Error)
	status, _ = postJSON(t, app, "/master/role-menus", fiber.Map{
		"role_id":  role.ID,
		"menu_ids": []uint{999},
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
}
