package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/itc-media/cms-backend/internal/apperrors"
	"github.com/itc-media/cms-backend/internal/models"
)

type VideoService struct {
	db *gorm.DB
}

func NewVideoService(db *gorm.DB) *VideoService {
	return &VideoService{db: db}
}

// CreateVideoInput carries validated video metadata. The URL shape (known
// video host) is enforced by the validation pipeline before this runs.
type CreateVideoInput struct {
	Title        string
	Description  string
	YoutubeURL   string
	ThumbnailURL string
}

// UpdateVideoInput carries optional changes; nil means unchanged.
type UpdateVideoInput struct {
	Title        *string
	Description  *string
	YoutubeURL   *string
	ThumbnailURL *string
}

func (s *VideoService) CreateVideo(input CreateVideoInput, uploadedBy uuid.UUID) (*models.Video, error) {
	video := &models.Video{
		Title:        input.Title,
		Description:  input.Description,
		YoutubeURL:   input.YoutubeURL,
		ThumbnailURL: input.ThumbnailURL,
		UploadedBy:   uploadedBy,
	}
	if err := s.db.Create(video).Error; err != nil {
		return nil, err
	}
	return s.GetVideoByID(video.ID)
}

func (s *VideoService) GetAllVideos() ([]*models.Video, error) {
	var videos []*models.Video
	if err := s.db.Preload("Uploader").Order("created_at DESC").Find(&videos).Error; err != nil {
		return nil, err
	}
	return videos, nil
}

func (s *VideoService) GetVideoByID(videoID uuid.UUID) (*models.Video, error) {
	var video models.Video
	if err := s.db.Preload("Uploader").First(&video, "id = ?", videoID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("NOT_FOUND", "Video not found")
		}
		return nil, err
	}
	return &video, nil
}

// UpdateVideo re-fetches the record before mutating it.
func (s *VideoService) UpdateVideo(videoID uuid.UUID, input UpdateVideoInput) (*models.Video, error) {
	if _, err := s.GetVideoByID(videoID); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.YoutubeURL != nil {
		updates["youtube_url"] = *input.YoutubeURL
	}
	if input.ThumbnailURL != nil {
		updates["thumbnail_url"] = *input.ThumbnailURL
	}
	if len(updates) > 0 {
		if err := s.db.Model(&models.Video{}).Where("id = ?", videoID).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	return s.GetVideoByID(videoID)
}

func (s *VideoService) DeleteVideo(videoID uuid.UUID) error {
	video, err := s.GetVideoByID(videoID)
	if err != nil {
		return err
	}
	return s.db.Delete(video).Error
}
