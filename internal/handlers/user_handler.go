package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/itc-media/cms-backend/internal/apperrors"
	"github.com/itc-media/cms-backend/internal/models"
	"github.com/itc-media/cms-backend/internal/services"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// GetAllUsers lists accounts, optionally filtered by ?search= over names and
// email. Admin and above.
// GET /users
func (h *UserHandler) GetAllUsers(c *gin.Context) {
	users, err := h.userService.GetAllUsers(c.Query("search"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, users)
}

// GetUserStats returns the per-role account breakdown. Admin and above.
// GET /users/stats
func (h *UserHandler) GetUserStats(c *gin.Context) {
	stats, err := h.userService.GetUserStats()
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, stats)
}

// GetUserByID returns one account. Admin and above.
// GET /users/:id
func (h *UserHandler) GetUserByID(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, apperrors.NotFound("USER_NOT_FOUND", "User not found"))
		return
	}

	user, err := h.userService.GetUserByID(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, user)
}

// UpdateUserRole reassigns a user's role. SUPER_ADMIN only; the target may
// only become USER or ADMIN.
// PATCH /users/:id/role
func (h *UserHandler) UpdateUserRole(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, apperrors.NotFound("USER_NOT_FOUND", "User not found"))
		return
	}

	var req UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadBody(c)
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		respondValidationErrors(c, errs)
		return
	}

	user, err := h.userService.UpdateUserRole(userID, models.UserRole(req.Role))
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, user)
}

// DeleteUser removes an account. SUPER_ADMIN only; the SUPER_ADMIN account
// itself is protected.
// DELETE /users/:id
func (h *UserHandler) DeleteUser(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, apperrors.NotFound("USER_NOT_FOUND", "User not found"))
		return
	}

	if err := h.userService.DeleteUser(userID); err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"message": "User deleted successfully"})
}
