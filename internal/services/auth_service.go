package services

import (
	"errors"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/itc-media/cms-backend/internal/apperrors"
	"github.com/itc-media/cms-backend/internal/config"
	"github.com/itc-media/cms-backend/internal/models"
	"github.com/itc-media/cms-backend/pkg/crypto"
	jwtpkg "github.com/itc-media/cms-backend/pkg/jwt"
	"github.com/itc-media/cms-backend/pkg/validation"
)

type AuthService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewAuthService(db *gorm.DB, cfg *config.Config) *AuthService {
	return &AuthService{db: db, cfg: cfg}
}

// SignupInput carries an already shape-validated signup payload.
type SignupInput struct {
	FirstName   string
	LastName    string
	Email       string
	Password    string
	Country     string
	CountryCode string
	PhoneNumber string
}

// Signup registers a new USER account. The email is stored normalized; the
// database unique index arbitrates concurrent signups with the same address.
func (s *AuthService) Signup(input SignupInput) (*models.User, error) {
	email := validation.NormalizeEmail(input.Email)

	var count int64
	if err := s.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		log.Printf("Signup attempt with existing email: %s", email)
		return nil, apperrors.Conflict("EMAIL_ALREADY_EXISTS", "Email already registered")
	}

	hash, err := crypto.HashPassword(input.Password, s.cfg.BcryptCost)
	if err != nil {
		var weak *crypto.WeakPasswordError
		if errors.As(err, &weak) {
			return nil, apperrors.Validation("INVALID_PASSWORD", weak.Error())
		}
		return nil, err
	}

	user := &models.User{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        email,
		PasswordHash: hash,
		Country:      input.Country,
		CountryCode:  input.CountryCode,
		PhoneNumber:  input.PhoneNumber,
		Role:         models.RoleUser,
	}

	if err := s.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Conflict("EMAIL_ALREADY_EXISTS", "Email already registered")
		}
		return nil, err
	}

	log.Printf("User registered: %s (%s)", user.Email, user.ID)
	return user, nil
}

// Login verifies credentials and issues a bearer token. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *AuthService) Login(email, password string) (*models.User, string, error) {
	email = validation.NormalizeEmail(email)

	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", apperrors.Unauthorized("INVALID_CREDENTIALS", "Invalid email or password")
		}
		return nil, "", err
	}

	if !crypto.CheckPassword(password, user.PasswordHash) {
		return nil, "", apperrors.Unauthorized("INVALID_CREDENTIALS", "Invalid email or password")
	}

	token, err := jwtpkg.GenerateToken(user.ID.String(), user.Email, string(user.Role), s.cfg.JWTSecret, s.cfg.JWTDuration)
	if err != nil {
		return nil, "", err
	}

	return &user, token, nil
}

// GetUserByID retrieves a user by ID
func (s *AuthService) GetUserByID(userID uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("USER_NOT_FOUND", "User not found")
		}
		return nil, err
	}
	return &user, nil
}

// EnsureSuperAdmin creates the bootstrap SUPER_ADMIN account if no user with
// that role exists yet. Exactly one such account is expected.
func (s *AuthService) EnsureSuperAdmin() error {
	var count int64
	if err := s.db.Model(&models.User{}).Where("role = ?", models.RoleSuperAdmin).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := crypto.HashPassword(s.cfg.SuperAdminPassword, s.cfg.BcryptCost)
	if err != nil {
		return err
	}

	admin := &models.User{
		FirstName:    s.cfg.SuperAdminFirstName,
		LastName:     s.cfg.SuperAdminLastName,
		Email:        validation.NormalizeEmail(s.cfg.SuperAdminEmail),
		PasswordHash: hash,
		Country:      "United States",
		CountryCode:  "+1",
		PhoneNumber:  "0000000000",
		Role:         models.RoleSuperAdmin,
	}

	if err := s.db.Create(admin).Error; err != nil {
		return err
	}

	log.Printf("SUPER_ADMIN account created: %s", admin.Email)
	return nil
}
