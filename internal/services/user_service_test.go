package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itc-media/cms-backend/internal/apperrors"
	"github.com/itc-media/cms-backend/internal/models"
)

func TestGetAllUsers(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	createTestUser(t, db, "alice@example.com", models.RoleUser)
	createTestUser(t, db, "bob@example.com", models.RoleAdmin)
	createTestUser(t, db, "carol@other.org", models.RoleUser)

	t.Run("lists everyone without a search term", func(t *testing.T) {
		users, err := svc.GetAllUsers("")
		require.NoError(t, err)
		assert.Len(t, users, 3)
	})

	t.Run("search matches email case-insensitively", func(t *testing.T) {
		users, err := svc.GetAllUsers("EXAMPLE.COM")
		require.NoError(t, err)
		assert.Len(t, users, 2)
	})

	t.Run("search matches names", func(t *testing.T) {
		users, err := svc.GetAllUsers("test")
		require.NoError(t, err)
		assert.Len(t, users, 3)
	})
}

func TestUpdateUserRole(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	t.Run("promotes USER to ADMIN", func(t *testing.T) {
		user := createTestUser(t, db, "promote@example.com", models.RoleUser)

		updated, err := svc.UpdateUserRole(user.ID, models.RoleAdmin)
		require.NoError(t, err)
		assert.Equal(t, models.RoleAdmin, updated.Role)

		var persisted models.User
		require.NoError(t, db.First(&persisted, "id = ?", user.ID).Error)
		assert.Equal(t, models.RoleAdmin, persisted.Role)
	})

	t.Run("rejects a no-op transition", func(t *testing.T) {
		user := createTestUser(t, db, "noop@example.com", models.RoleAdmin)

		_, err := svc.UpdateUserRole(user.ID, models.RoleAdmin)
		require.Error(t, err)
		appErr, ok := apperrors.As(err)
		require.True(t, ok)
		assert.Equal(t, "ROLE_UNCHANGED", appErr.Code)
	})

	t.Run("never touches the SUPER_ADMIN account", func(t *testing.T) {
		admin := createTestUser(t, db, "root@example.com", models.RoleSuperAdmin)

		_, err := svc.UpdateUserRole(admin.ID, models.RoleUser)
		require.Error(t, err)
		appErr, ok := apperrors.As(err)
		require.True(t, ok)
		assert.Equal(t, "SUPER_ADMIN_ROLE_PROTECTED", appErr.Code)
		assert.Equal(t, 403, appErr.Status())
	})

	t.Run("unknown target yields USER_NOT_FOUND", func(t *testing.T) {
		_, err := svc.UpdateUserRole(uuid.New(), models.RoleAdmin)
		require.Error(t, err)
		appErr, ok := apperrors.As(err)
		require.True(t, ok)
		assert.Equal(t, "USER_NOT_FOUND", appErr.Code)
		assert.Equal(t, 404, appErr.Status())
	})
}

func TestDeleteUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	t.Run("deletes a regular account", func(t *testing.T) {
		user := createTestUser(t, db, "gone@example.com", models.RoleUser)
		require.NoError(t, svc.DeleteUser(user.ID))

		_, err := svc.GetUserByID(user.ID)
		require.Error(t, err)
	})

	t.Run("refuses to delete the SUPER_ADMIN account", func(t *testing.T) {
		admin := createTestUser(t, db, "root2@example.com", models.RoleSuperAdmin)

		err := svc.DeleteUser(admin.ID)
		require.Error(t, err)
		appErr, ok := apperrors.As(err)
		require.True(t, ok)
		assert.Equal(t, "SUPER_ADMIN_DELETE_PROTECTED", appErr.Code)

		_, err = svc.GetUserByID(admin.ID)
		require.NoError(t, err)
	})
}

func TestGetUserStats(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	createTestUser(t, db, "u1@example.com", models.RoleUser)
	createTestUser(t, db, "u2@example.com", models.RoleUser)
	createTestUser(t, db, "a1@example.com", models.RoleAdmin)
	createTestUser(t, db, "s1@example.com", models.RoleSuperAdmin)

	stats, err := svc.GetUserStats()
	require.NoError(t, err)
	assert.EqualValues(t, 4, stats.TotalUsers)
	assert.EqualValues(t, 2, stats.TotalRegularUsers)
	assert.EqualValues(t, 1, stats.TotalAdmins)
	assert.EqualValues(t, 1, stats.TotalSuperAdmins)
}
