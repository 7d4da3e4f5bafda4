package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/itc-media/cms-backend/internal/config"
	"github.com/itc-media/cms-backend/internal/middleware"
	"github.com/itc-media/cms-backend/internal/models"
	"github.com/itc-media/cms-backend/internal/rolepolicy"
	"github.com/itc-media/cms-backend/internal/services"
	jwtpkg "github.com/itc-media/cms-backend/pkg/jwt"
)

// pngBytes carries the PNG magic so content sniffing accepts it as an image.
var pngBytes = []byte("\x89PNG\r\n\x1a\n0123456789abcdef")

type testApp struct {
	router *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, models.Migrate(db))

	cfg := &config.Config{
		JWTSecret:          "handler-test-secret",
		JWTDuration:        time.Hour,
		BcryptCost:         bcrypt.MinCost,
		UploadsPath:        t.TempDir(),
		UploadMaxImageSize: 1 << 20,
		UploadMaxFiles:     10,
	}

	mirror, err := services.NewS3Service(cfg)
	require.NoError(t, err)
	storage := services.NewStorageService(cfg, mirror)

	authHandler := NewAuthHandler(services.NewAuthService(db, cfg))
	userHandler := NewUserHandler(services.NewUserService(db))
	galleryHandler := NewGalleryHandler(services.NewGalleryService(db, storage), cfg)
	videoHandler := NewVideoHandler(services.NewVideoService(db))
	photoHandler := NewPhotoHandler(services.NewPhotoService(db, storage), cfg)

	router := gin.New()
	api := router.Group("/api/v1")

	auth := api.Group("/auth")
	auth.POST("/signup", authHandler.Signup)
	auth.POST("/login", authHandler.Login)
	auth.GET("/country-codes", authHandler.CountryCodes)
	auth.GET("/me", middleware.Auth(cfg), authHandler.Me)

	galleries := api.Group("/cms/galleries")
	galleries.GET("", galleryHandler.GetAllGalleries)
	galleries.GET("/:id", galleryHandler.GetGalleryByID)
	galleriesAuth := galleries.Group("", middleware.Auth(cfg), middleware.Authorize(rolepolicy.OpManageContent))
	galleriesAuth.POST("", galleryHandler.CreateGallery)
	galleriesAuth.PUT("/:id", galleryHandler.UpdateGallery)
	galleriesAuth.DELETE("/:id", galleryHandler.DeleteGallery)
	galleriesAuth.DELETE("/:id/images/:imageId", galleryHandler.DeleteImage)

	videos := api.Group("/cms/videos")
	videos.GET("", videoHandler.GetAllVideos)
	videos.GET("/:id", videoHandler.GetVideoByID)
	videosAuth := videos.Group("", middleware.Auth(cfg), middleware.Authorize(rolepolicy.OpManageContent))
	videosAuth.POST("", videoHandler.CreateVideo)
	videosAuth.PUT("/:id", videoHandler.UpdateVideo)
	videosAuth.DELETE("/:id", videoHandler.DeleteVideo)

	photos := api.Group("/photos")
	photos.GET("", photoHandler.GetAllPhotos)
	photos.GET("/:id", photoHandler.GetPhotoByID)
	photosAuth := photos.Group("", middleware.Auth(cfg), middleware.Authorize(rolepolicy.OpManageContent))
	photosAuth.POST("", photoHandler.UploadPhotos)
	photosAuth.GET("/my-photos", photoHandler.GetMyPhotos)
	photosAuth.PUT("/:id", photoHandler.UpdatePhoto)
	photosAuth.DELETE("/:id", photoHandler.DeletePhoto)
	photosAuth.POST("/delete-multiple", photoHandler.DeleteMultiplePhotos)

	users := api.Group("/users", middleware.Auth(cfg))
	users.GET("", middleware.Authorize(rolepolicy.OpListUsers), userHandler.GetAllUsers)
	users.GET("/stats", middleware.Authorize(rolepolicy.OpViewUserStats), userHandler.GetUserStats)
	users.GET("/:id", middleware.Authorize(rolepolicy.OpGetUser), userHandler.GetUserByID)
	users.PATCH("/:id/role", middleware.Authorize(rolepolicy.OpChangeUserRole), userHandler.UpdateUserRole)
	users.DELETE("/:id", middleware.Authorize(rolepolicy.OpDeleteUser), userHandler.DeleteUser)

	return &testApp{router: router, db: db, cfg: cfg}
}

func (a *testApp) createUser(t *testing.T, email string, role models.UserRole) *models.User {
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
	require.NoError(t, a.db.Create(user).Error)
	return user
}

func (a *testApp) tokenFor(t *testing.T, user *models.User) string {
	t.Helper()
	token, err := jwtpkg.GenerateToken(user.ID.String(), user.Email, string(user.Role),
		a.cfg.JWTSecret, a.cfg.JWTDuration)
	require.NoError(t, err)
	return token
}

func (a *testApp) request(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func (a *testApp) multipartRequest(t *testing.T, method, path, token string, fields map[string]string, files map[string][]byte) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	for name, data := range files {
		part, err := writer.CreateFormFile("images", name)
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	env := decodeEnvelope(t, rec)
	require.True(t, env.Success, "expected success envelope, got %s", rec.Body.String())
	require.NoError(t, json.Unmarshal(env.Data, out))
}

func requireErrorCode(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) {
	t.Helper()
	require.Equal(t, status, rec.Code, rec.Body.String())
	env := decodeEnvelope(t, rec)
	require.False(t, env.Success)
	require.NotNil(t, env.Error)
	require.Equal(t, code, env.Error.Code)
}
