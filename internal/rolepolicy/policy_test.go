package rolepolicy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itc-media/cms-backend/internal/apperrors"
	"github.com/itc-media/cms-backend/internal/models"
)

func TestCanAccess(t *testing.T) {
	tests := []struct {
		name  string
		op    Operation
		actor models.UserRole
		want  bool
	}{
		{"USER cannot list users", OpListUsers, models.RoleUser, false},
		{"ADMIN can list users", OpListUsers, models.RoleAdmin, true},
		{"SUPER_ADMIN can list users", OpListUsers, models.RoleSuperAdmin, true},
		{"ADMIN can view stats", OpViewUserStats, models.RoleAdmin, true},
		{"ADMIN cannot change roles", OpChangeUserRole, models.RoleAdmin, false},
		{"SUPER_ADMIN can change roles", OpChangeUserRole, models.RoleSuperAdmin, true},
		{"ADMIN cannot delete users", OpDeleteUser, models.RoleAdmin, false},
		{"SUPER_ADMIN can delete users", OpDeleteUser, models.RoleSuperAdmin, true},
		{"USER can manage content", OpManageContent, models.RoleUser, true},
		{"unknown role is denied everything", OpManageContent, models.UserRole("GUEST"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanAccess(tt.op, tt.actor))
		})
	}
}

func TestCheckRoleChange(t *testing.T) {
	t.Run("allows USER to ADMIN and back", func(t *testing.T) {
		assert.NoError(t, CheckRoleChange(models.RoleUser, models.RoleAdmin))
		assert.NoError(t, CheckRoleChange(models.RoleAdmin, models.RoleUser))
	})

	t.Run("protects the SUPER_ADMIN role", func(t *testing.T) {
		err := CheckRoleChange(models.RoleSuperAdmin, models.RoleUser)
		require.Error(t, err)
		appErr, ok := apperrors.As(err)
		require.True(t, ok)
		assert.Equal(t, "SUPER_ADMIN_ROLE_PROTECTED", appErr.Code)
	})

	t.Run("rejects no-op transitions", func(t *testing.T) {
		err := CheckRoleChange(models.RoleAdmin, models.RoleAdmin)
		require.Error(t, err)
		appErr, ok := apperrors.As(err)
		require.True(t, ok)
		assert.Equal(t, "ROLE_UNCHANGED", appErr.Code)
	})
}

func TestCheckUserDelete(t *testing.T) {
	assert.NoError(t, CheckUserDelete(models.RoleUser))
	assert.NoError(t, CheckUserDelete(models.RoleAdmin))

	err := CheckUserDelete(models.RoleSuperAdmin)
	require.Error(t, err)
	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, "SUPER_ADMIN_DELETE_PROTECTED", appErr.Code)
}
