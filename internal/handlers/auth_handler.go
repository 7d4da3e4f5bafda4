package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/itc-media/cms-backend/internal/apperrors"
	"github.com/itc-media/cms-backend/internal/middleware"
	"github.com/itc-media/cms-backend/internal/services"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Signup handles user registration
// POST /auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadBody(c)
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		respondValidationErrors(c, errs)
		return
	}

	user, err := h.authService.Signup(services.SignupInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Password:    req.Password,
		Country:     req.Country,
		CountryCode: req.CountryCode,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, gin.H{
		"id":        user.ID,
		"firstName": user.FirstName,
		"lastName":  user.LastName,
		"email":     user.Email,
		"role":      user.Role,
	})
}

// Login handles user login
// POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadBody(c)
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		respondValidationErrors(c, errs)
		return
	}

	user, token, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, gin.H{
		"user":  user,
		"token": token,
	})
}

// Me returns the authenticated caller's profile
// GET /auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		respondError(c, apperrors.Unauthorized("NO_TOKEN", "Unauthorized"))
		return
	}

	user, err := h.authService.GetUserByID(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, user)
}

// CountryCodes serves the static country -> dialing code table
// GET /auth/country-codes
func (h *AuthHandler) CountryCodes(c *gin.Context) {
	respondSuccess(c, http.StatusOK, countryCodes)
}
