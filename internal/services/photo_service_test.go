package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itc-media/cms-backend/internal/apperrors"
	"github.com/itc-media/cms-backend/internal/models"
)

func TestUploadPhotos(t *testing.T) {
	db := newTestDB(t)
	cfg := newTestConfig(t)
	svc := NewPhotoService(db, newTestStorage(t, cfg))
	uploader := createTestUser(t, db, "uploader@example.com", models.RoleUser)
	ctx := context.Background()

	t.Run("no files is a validation error", func(t *testing.T) {
		_, err := svc.UploadPhotos(ctx, uploader.ID, nil, "", "")
		require.Error(t, err)
		appErr, ok := apperrors.As(err)
		require.True(t, ok)
		assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	})

	t.Run("title defaults to the original file name", func(t *testing.T) {
		photos, err := svc.UploadPhotos(ctx, uploader.ID,
			[]Upload{{OriginalName: "sunset.png", Data: pngBytes}}, "", "")
		require.NoError(t, err)
		require.Len(t, photos, 1)
		assert.Equal(t, "sunset.png", photos[0].Title)
		assert.NotEqual(t, "sunset.png", photos[0].FileName)
		require.NotNil(t, photos[0].Uploader, "created photos carry the uploader summary")
		assert.Equal(t, uploader.Email, photos[0].Uploader.Email)
	})

	t.Run("explicit title applies to every file", func(t *testing.T) {
		photos, err := svc.UploadPhotos(ctx, uploader.ID, []Upload{
			{OriginalName: "a.png", Data: pngBytes},
			{OriginalName: "b.png", Data: pngBytes},
		}, "Vacation", "Day one")
		require.NoError(t, err)
		require.Len(t, photos, 2)
		for _, p := range photos {
			assert.Equal(t, "Vacation", p.Title)
			assert.Equal(t, "Day one", p.Description)
		}
	})

	t.Run("invalid files are skipped, valid ones still land", func(t *testing.T) {
		photos, err := svc.UploadPhotos(ctx, uploader.ID, []Upload{
			{OriginalName: "ok.png", Data: pngBytes},
			{OriginalName: "nope.txt", Data: []byte("plain text")},
		}, "", "")
		require.NoError(t, err)
		assert.Len(t, photos, 1)
	})

	t.Run("all files invalid is a validation error", func(t *testing.T) {
		_, err := svc.UploadPhotos(ctx, uploader.ID,
			[]Upload{{OriginalName: "nope.txt", Data: []byte("plain text")}}, "", "")
		require.Error(t, err)
		appErr, ok := apperrors.As(err)
		require.True(t, ok)
		assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	})
}

func TestGetPhotosByUploader(t *testing.T) {
	db := newTestDB(t)
	cfg := newTestConfig(t)
	svc := NewPhotoService(db, newTestStorage(t, cfg))
	ctx := context.Background()

	alice := createTestUser(t, db, "alice@example.com", models.RoleUser)
	bob := createTestUser(t, db, "bob@example.com", models.RoleUser)

	_, err := svc.UploadPhotos(ctx, alice.ID, []Upload{
		{OriginalName: "a1.png", Data: pngBytes},
		{OriginalName: "a2.png", Data: pngBytes},
	}, "", "")
	require.NoError(t, err)
	_, err = svc.UploadPhotos(ctx, bob.ID,
		[]Upload{{OriginalName: "b1.png", Data: pngBytes}}, "", "")
	require.NoError(t, err)

	mine, err := svc.GetPhotosByUploader(alice.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	all, err := svc.GetAllPhotos()
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestUpdatePhoto(t *testing.T) {
	db := newTestDB(t)
	cfg := newTestConfig(t)
	svc := NewPhotoService(db, newTestStorage(t, cfg))
	uploader := createTestUser(t, db, "uploader@example.com", models.RoleUser)

	photos, err := svc.UploadPhotos(context.Background(), uploader.ID,
		[]Upload{{OriginalName: "orig.png", Data: pngBytes}}, "Original", "desc")
	require.NoError(t, err)
	photo := photos[0]

	title := "Renamed"
	updated, err := svc.UpdatePhoto(photo.ID, UpdatePhotoInput{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, "desc", updated.Description)
	assert.Equal(t, photo.FileName, updated.FileName)
}

func TestDeleteMultiplePhotos(t *testing.T) {
	db := newTestDB(t)
	cfg := newTestConfig(t)
	svc := NewPhotoService(db, newTestStorage(t, cfg))
	uploader := createTestUser(t, db, "uploader@example.com", models.RoleUser)
	ctx := context.Background()

	photos, err := svc.UploadPhotos(ctx, uploader.ID, []Upload{
		{OriginalName: "a.png", Data: pngBytes},
		{OriginalName: "b.png", Data: pngBytes},
	}, "", "")
	require.NoError(t, err)
	require.Len(t, photos, 2)

	ids := []string{
		photos[0].ID.String(),
		"not-a-uuid",
		uuid.New().String(), // unknown photo
		photos[1].ID.String(),
	}

	deleted := svc.DeleteMultiplePhotos(ctx, ids)
	assert.ElementsMatch(t, []string{photos[0].ID.String(), photos[1].ID.String()}, deleted)

	remaining, err := svc.GetAllPhotos()
	require.NoError(t, err)
	assert.Empty(t, remaining)

	for _, p := range photos {
		_, err := os.Stat(filepath.Join(cfg.UploadsPath, "images", p.FileName))
		assert.True(t, os.IsNotExist(err))
	}
}
