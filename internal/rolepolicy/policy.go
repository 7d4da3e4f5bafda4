package rolepolicy

import (
	"github.com/itc-media/cms-backend/internal/apperrors"
	"github.com/itc-media/cms-backend/internal/models"
)

// Operation enumerates every authorization-gated action in the system.
type Operation int

const (
	OpListUsers Operation = iota
	OpGetUser
	OpViewUserStats
	OpChangeUserRole
	OpDeleteUser
	OpManageContent
)

// rank orders the three roles. Unknown roles rank below USER and are denied
// everything role-gated.
func rank(role models.UserRole) int {
	switch role {
	case models.RoleUser:
		return 1
	case models.RoleAdmin:
		return 2
	case models.RoleSuperAdmin:
		return 3
	default:
		return 0
	}
}

// CanAccess is the single decision table for role-gated operations.
func CanAccess(op Operation, actor models.UserRole) bool {
	switch op {
	case OpListUsers, OpGetUser, OpViewUserStats:
		return rank(actor) >= rank(models.RoleAdmin)
	case OpChangeUserRole, OpDeleteUser:
		return actor == models.RoleSuperAdmin
	case OpManageContent:
		return rank(actor) >= rank(models.RoleUser)
	default:
		return false
	}
}

// CheckRoleChange validates a role transition on a target user. The
// SUPER_ADMIN protection overrides everything: nobody may reassign that role.
// A no-op transition is rejected rather than silently succeeding.
func CheckRoleChange(current, next models.UserRole) error {
	if current == models.RoleSuperAdmin {
		return apperrors.Forbidden("SUPER_ADMIN_ROLE_PROTECTED", "Cannot change SUPER_ADMIN role")
	}
	if current == next {
		return apperrors.Validation("ROLE_UNCHANGED", "User is already a "+string(next))
	}
	return nil
}

// CheckUserDelete validates deleting a target user. The SUPER_ADMIN account
// can never be deleted through the API, regardless of the actor.
func CheckUserDelete(current models.UserRole) error {
	if current == models.RoleSuperAdmin {
		return apperrors.Forbidden("SUPER_ADMIN_DELETE_PROTECTED", "Cannot delete SUPER_ADMIN user")
	}
	return nil
}
