package services

import (
	"errors"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/itc-media/cms-backend/internal/apperrors"
	"github.com/itc-media/cms-backend/internal/models"
	"github.com/itc-media/cms-backend/internal/rolepolicy"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// GetAllUsers lists users newest-first, optionally filtered by a search term
// over name and email.
func (s *UserService) GetAllUsers(search string) ([]*models.User, error) {
	var users []*models.User

	query := s.db.Model(&models.User{}).Order("created_at DESC")
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where(
			"LOWER(first_name) LIKE LOWER(?) OR LOWER(last_name) LIKE LOWER(?) OR LOWER(email) LIKE LOWER(?)",
			pattern, pattern, pattern,
		)
	}

	if err := query.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// GetUserByID retrieves a user by ID
func (s *UserService) GetUserByID(userID uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("USER_NOT_FOUND", "User not found")
		}
		return nil, err
	}
	return &user, nil
}

// UpdateUserRole reassigns a user's role after the role policy approves the
// transition. The SUPER_ADMIN account and no-op transitions are rejected.
func (s *UserService) UpdateUserRole(userID uuid.UUID, newRole models.UserRole) (*models.User, error) {
	user, err := s.GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	if err := rolepolicy.CheckRoleChange(user.Role, newRole); err != nil {
		return nil, err
	}

	oldRole := user.Role
	user.Role = newRole
	if err := s.db.Model(user).Update("role", newRole).Error; err != nil {
		return nil, err
	}

	log.Printf("User role updated: %s %s -> %s", user.ID, oldRole, newRole)
	return user, nil
}

// DeleteUser removes a user account. The SUPER_ADMIN account is protected.
func (s *UserService) DeleteUser(userID uuid.UUID) error {
	user, err := s.GetUserByID(userID)
	if err != nil {
		return err
	}

	if err := rolepolicy.CheckUserDelete(user.Role); err != nil {
		return err
	}

	if err := s.db.Delete(user).Error; err != nil {
		return err
	}

	log.Printf("User deleted: %s (%s, %s)", user.ID, user.Email, user.Role)
	return nil
}

// UserStats is the per-role account breakdown.
type UserStats struct {
	TotalUsers        int64 `json:"totalUsers"`
	TotalAdmins       int64 `json:"totalAdmins"`
	TotalRegularUsers int64 `json:"totalRegularUsers"`
	TotalSuperAdmins  int64 `json:"totalSuperAdmins"`
}

// GetUserStats counts accounts by role.
func (s *UserService) GetUserStats() (*UserStats, error) {
	countByRole := func(role models.UserRole) (int64, error) {
		var count int64
		err := s.db.Model(&models.User{}).Where("role = ?", role).Count(&count).Error
		return count, err
	}

	admins, err := countByRole(models.RoleAdmin)
	if err != nil {
		return nil, err
	}
	regular, err := countByRole(models.RoleUser)
	if err != nil {
		return nil, err
	}
	superAdmins, err := countByRole(models.RoleSuperAdmin)
	if err != nil {
		return nil, err
	}

	return &UserStats{
		TotalUsers:        admins + regular + superAdmins,
		TotalAdmins:       admins,
		TotalRegularUsers: regular,
		TotalSuperAdmins:  superAdmins,
	}, nil
}
