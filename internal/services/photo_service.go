package services

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/itc-media/cms-backend/internal/apperrors"
	"github.com/itc-media/cms-backend/internal/models"
)

type PhotoService struct {
	db      *gorm.DB
	storage *StorageService
}

func NewPhotoService(db *gorm.DB, storage *StorageService) *PhotoService {
	return &PhotoService{db: db, storage: storage}
}

// UpdatePhotoInput carries optional metadata changes; nil means unchanged.
type UpdatePhotoInput struct {
	Title       *string
	Description *string
}

// UploadPhotos stores each file and creates one photo row per file. Items are
// processed sequentially and independently; a failing item is logged and the
// rest still land. Titles default to the original file name.
func (s *PhotoService) UploadPhotos(ctx context.Context, uploadedBy uuid.UUID, files []Upload, defaultTitle, defaultDescription string) ([]*models.Photo, error) {
	if len(files) == 0 {
		return nil, apperrors.Validation("VALIDATION_ERROR", "No files provided")
	}

	var created []*models.Photo
	for _, f := range files {
		stored, err := s.storage.SaveImage(ctx, f.OriginalName, f.Data)
		if err != nil {
			log.Printf("WARN: failed to store photo %s: %v", f.OriginalName, err)
			continue
		}

		title := defaultTitle
		if title == "" {
			title = f.OriginalName
		}

		photo := &models.Photo{
			Title:       title,
			Description: defaultDescription,
			FileName:    stored.FileName,
			FilePath:    stored.FilePath,
			FileSize:    stored.FileSize,
			MimeType:    stored.MimeType,
			UploadedBy:  uploadedBy,
		}
		if err := s.db.Create(photo).Error; err != nil {
			log.Printf("WARN: failed to record photo %s: %v", stored.FileName, err)
			if derr := s.storage.DeleteImage(ctx, stored.FileName); derr != nil {
				log.Printf("WARN: failed to clean up stored file %s: %v", stored.FileName, derr)
			}
			continue
		}
		created = append(created, photo)
	}

	if len(created) == 0 {
		return nil, apperrors.Validation("VALIDATION_ERROR", "No files could be stored")
	}

	// Return fully hydrated records, uploader joined.
	hydrated := make([]*models.Photo, 0, len(created))
	for _, p := range created {
		photo, err := s.GetPhotoByID(p.ID)
		if err != nil {
			return nil, err
		}
		hydrated = append(hydrated, photo)
	}
	return hydrated, nil
}

func (s *PhotoService) GetAllPhotos() ([]*models.Photo, error) {
	var photos []*models.Photo
	if err := s.db.Preload("Uploader").Order("created_at DESC").Find(&photos).Error; err != nil {
		return nil, err
	}
	return photos, nil
}

func (s *PhotoService) GetPhotosByUploader(uploadedBy uuid.UUID) ([]*models.Photo, error) {
	var photos []*models.Photo
	err := s.db.Preload("Uploader").Where("uploaded_by = ?", uploadedBy).
		Order("created_at DESC").Find(&photos).Error
	if err != nil {
		return nil, err
	}
	return photos, nil
}

func (s *PhotoService) GetPhotoByID(photoID uuid.UUID) (*models.Photo, error) {
	var photo models.Photo
	if err := s.db.Preload("Uploader").First(&photo, "id = ?", photoID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("NOT_FOUND", "Photo not found")
		}
		return nil, err
	}
	return &photo, nil
}

// UpdatePhoto changes metadata only; the stored file is immutable.
func (s *PhotoService) UpdatePhoto(photoID uuid.UUID, input UpdatePhotoInput) (*models.Photo, error) {
	if _, err := s.GetPhotoByID(photoID); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if len(updates) > 0 {
		if err := s.db.Model(&models.Photo{}).Where("id = ?", photoID).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	return s.GetPhotoByID(photoID)
}

// DeletePhoto removes the backing file (best-effort) then the row.
func (s *PhotoService) DeletePhoto(ctx context.Context, photoID uuid.UUID) error {
	photo, err := s.GetPhotoByID(photoID)
	if err != nil {
		return err
	}

	if err := s.storage.DeleteImage(ctx, photo.FileName); err != nil {
		log.Printf("WARN: failed to delete file %s: %v", photo.FileName, err)
	}

	return s.db.Delete(photo).Error
}

// DeleteMultiplePhotos deletes each id independently and reports which ids
// actually succeeded. One failing id never fails the batch.
func (s *PhotoService) DeleteMultiplePhotos(ctx context.Context, ids []string) []string {
	deleted := make([]string, 0, len(ids))
	for _, id := range ids {
		photoID, err := uuid.Parse(id)
		if err != nil {
			log.Printf("WARN: skipping invalid photo id %q: %v", id, err)
			continue
		}
		if err := s.DeletePhoto(ctx, photoID); err != nil {
			log.Printf("WARN: failed to delete photo %s: %v", id, err)
			continue
		}
		deleted = append(deleted, id)
	}
	return deleted
}
