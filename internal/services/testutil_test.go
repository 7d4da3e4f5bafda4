package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/itc-media/cms-backend/internal/config"
	"github.com/itc-media/cms-backend/internal/models"
)

// pngBytes is a minimal payload carrying the PNG magic so content sniffing
// accepts it as an image.
var pngBytes = []byte("\x89PNG\r\n\x1a\n0123456789abcdef")

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, models.Migrate(db))
	return db
}

func newTestConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		JWTSecret:           "test-secret",
		JWTDuration:         time.Hour,
		BcryptCost:          bcrypt.MinCost,
		UploadsPath:         t.TempDir(),
		UploadMaxImageSize:  1 << 20,
		UploadMaxFiles:      10,
		UploadDailyLimit:    200,
		SuperAdminEmail:     "superadmin@itc.com",
		SuperAdminPassword:  "SuperAdmin123!@#",
		SuperAdminFirstName: "Super",
		SuperAdminLastName:  "Admin",
	}
}

func newTestStorage(t *testing.T, cfg *config.Config) *StorageService {
	t.Helper()
	mirror, err := NewS3Service(cfg)
	require.NoError(t, err)
	return NewStorageService(cfg, mirror)
}

func createTestUser(t *testing.T, db *gorm.DB, email string, role models.UserRole) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("ValidPassword1!aa"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{
		FirstName:    "Test",
		LastName:     "User",
		Email:        email,
		PasswordHash: string(hash),
		Country:      "United States",
		CountryCode:  "+1",
		PhoneNumber:  "5551234567",
		Role:         role,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}
