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

type GalleryService struct {
	db      *gorm.DB
	storage *StorageService
}

func NewGalleryService(db *gorm.DB, storage *StorageService) *GalleryService {
	return &GalleryService{db: db, storage: storage}
}

// CreateGalleryInput carries validated gallery metadata.
type CreateGalleryInput struct {
	Title       string
	Description string
}

// UpdateGalleryInput carries optional metadata changes; nil means unchanged.
type UpdateGalleryInput struct {
	Title       *string
	Description *string
}

// CreateGallery persists a new gallery and stores any accompanying images.
// Files are processed sequentially; a failing file is logged and skipped, the
// rest still land (uploads are not atomic across items).
func (s *GalleryService) CreateGallery(ctx context.Context, input CreateGalleryInput, uploadedBy uuid.UUID, files []Upload) (*models.Gallery, error) {
	gallery := &models.Gallery{
		Title:       input.Title,
		Description: input.Description,
		UploadedBy:  uploadedBy,
	}
	if err := s.db.Create(gallery).Error; err != nil {
		return nil, err
	}

	s.attachImages(ctx, gallery.ID, files)

	return s.GetGalleryByID(gallery.ID)
}

func (s *GalleryService) attachImages(ctx context.Context, galleryID uuid.UUID, files []Upload) {
	for _, f := range files {
		stored, err := s.storage.SaveImage(ctx, f.OriginalName, f.Data)
		if err != nil {
			log.Printf("WARN: failed to store gallery image %s: %v", f.OriginalName, err)
			continue
		}
		image := &models.Image{
			GalleryID: galleryID,
			FileName:  stored.FileName,
			FilePath:  stored.FilePath,
			FileSize:  stored.FileSize,
			MimeType:  stored.MimeType,
		}
		if err := s.db.Create(image).Error; err != nil {
			log.Printf("WARN: failed to record gallery image %s: %v", stored.FileName, err)
			if derr := s.storage.DeleteImage(ctx, stored.FileName); derr != nil {
				log.Printf("WARN: failed to clean up stored file %s: %v", stored.FileName, derr)
			}
		}
	}
}

// GetAllGalleries lists galleries newest-first with images and uploader joined.
func (s *GalleryService) GetAllGalleries() ([]*models.Gallery, error) {
	var galleries []*models.Gallery
	err := s.db.Preload("Images").Preload("Uploader").
		Order("created_at DESC").Find(&galleries).Error
	if err != nil {
		return nil, err
	}
	return galleries, nil
}

// GetGalleryByID returns one fully hydrated gallery.
func (s *GalleryService) GetGalleryByID(galleryID uuid.UUID) (*models.Gallery, error) {
	var gallery models.Gallery
	err := s.db.Preload("Images").Preload("Uploader").
		First(&gallery, "id = ?", galleryID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("NOT_FOUND", "Gallery not found")
		}
		return nil, err
	}
	return &gallery, nil
}

// UpdateGallery re-fetches the gallery, applies metadata changes, and appends
// (never replaces) newly supplied images.
func (s *GalleryService) UpdateGallery(ctx context.Context, galleryID uuid.UUID, input UpdateGalleryInput, files []Upload) (*models.Gallery, error) {
	if _, err := s.GetGalleryByID(galleryID); err != nil {
		return nil, err
	}

	s.attachImages(ctx, galleryID, files)

	updates := map[string]interface{}{}
	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if len(updates) > 0 {
		if err := s.db.Model(&models.Gallery{}).Where("id = ?", galleryID).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	return s.GetGalleryByID(galleryID)
}

// DeleteGallery removes the gallery, its image rows, and their backing files.
// File removal is best-effort: failures are logged and row deletion proceeds.
func (s *GalleryService) DeleteGallery(ctx context.Context, galleryID uuid.UUID) error {
	gallery, err := s.GetGalleryByID(galleryID)
	if err != nil {
		return err
	}

	for _, image := range gallery.Images {
		if err := s.storage.DeleteImage(ctx, image.FileName); err != nil {
			log.Printf("WARN: failed to delete file %s: %v", image.FileName, err)
		}
	}

	if err := s.db.Where("gallery_id = ?", galleryID).Delete(&models.Image{}).Error; err != nil {
		return err
	}
	return s.db.Delete(&models.Gallery{}, "id = ?", galleryID).Error
}

// DeleteImage removes a single image from a gallery, file first (best-effort).
func (s *GalleryService) DeleteImage(ctx context.Context, galleryID, imageID uuid.UUID) error {
	if _, err := s.GetGalleryByID(galleryID); err != nil {
		return err
	}

	var image models.Image
	if err := s.db.First(&image, "id = ?", imageID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("NOT_FOUND", "Image not found in this gallery")
		}
		return err
	}
	if image.GalleryID != galleryID {
		return apperrors.NotFound("NOT_FOUND", "Image not found in this gallery")
	}

	if err := s.storage.DeleteImage(ctx, image.FileName); err != nil {
		log.Printf("WARN: failed to delete file %s: %v", image.FileName, err)
	}

	return s.db.Delete(&image).Error
}
