package services

import (
	"testing"

	"debt_flow_app_go/models"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestRoleLookup(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err)
	db.AutoMigrate(&models.User{})

	admin := &models.User{Name: "Admin", Email: "admin@example.com", Password: "hash", Role: models.RoleAdmin}
	assert.NoError(t, db.Create(admin).Error)

	t.Run("GetUserRole", func(t *testing.T) {
		role, err := GetUserRole(db, admin.ID)
		assert.NoError(t, err)
		assert.Equal(t, models.RoleAdmin, role)

		_, err = GetUserRole(db, "missing")
		assert.Error(t, err)
	})

	t.Run("HasRole", func(t *testing.T) {
		ok, err := HasRole(db, admin.ID, models.RoleAdmin)
		assert.NoError(t, err)
		assert.True(t, ok)

		ok, err = HasRole(db, admin.ID, models.RoleDCAUser)
		assert.NoError(t, err)
		assert.False(t, ok)

		// Unknown users hold no roles
		ok, err = HasRole(db, "missing", models.RoleAdmin)
		assert.NoError(t, err)
		assert.False(t, ok)

		// Unknown roles are an error, not a silent false
		_, err = HasRole(db, admin.ID, "superuser")
		assert.Error(t, err)
	})
}
