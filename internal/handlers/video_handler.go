package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/itc-media/cms-backend/internal/apperrors"
	"github.com/itc-media/cms-backend/internal/middleware"
	"github.com/itc-media/cms-backend/internal/models"
	"github.com/itc-media/cms-backend/internal/services"
)

type VideoHandler struct {
	videoService *services.VideoService
}

func NewVideoHandler(videoService *services.VideoService) *VideoHandler {
	return &VideoHandler{videoService: videoService}
}

type videoResponse struct {
	ID           uuid.UUID           `json:"id"`
	Title        string              `json:"title"`
	Description  string              `json:"description,omitempty"`
	YoutubeURL   string              `json:"youtubeUrl"`
	ThumbnailURL string              `json:"thumbnailUrl,omitempty"`
	UploadedBy   uuid.UUID           `json:"uploadedBy"`
	Uploader     *models.UserSummary `json:"uploader,omitempty"`
	CreatedAt    time.Time           `json:"createdAt"`
	UpdatedAt    time.Time           `json:"updatedAt"`
}

func newVideoResponse(v *models.Video) videoResponse {
	resp := videoResponse{
		ID:           v.ID,
		Title:        v.Title,
		Description:  v.Description,
		YoutubeURL:   v.YoutubeURL,
		ThumbnailURL: v.ThumbnailURL,
		UploadedBy:   v.UploadedBy,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
	if v.Uploader != nil {
		summary := v.Uploader.Summary()
		resp.Uploader = &summary
	}
	return resp
}

// CreateVideo registers a YouTube video link
// POST /cms/videos
func (h *VideoHandler) CreateVideo(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		respondError(c, apperrors.Unauthorized("NO_TOKEN", "Unauthorized"))
		return
	}

	var req CreateVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadBody(c)
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		respondValidationErrors(c, errs)
		return
	}

	video, err := h.videoService.CreateVideo(services.CreateVideoInput{
		Title:        req.Title,
		Description:  req.Description,
		YoutubeURL:   req.YoutubeURL,
		ThumbnailURL: req.ThumbnailURL,
	}, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, newVideoResponse(video))
}

// GetAllVideos lists all videos (public)
// GET /cms/videos
func (h *VideoHandler) GetAllVideos(c *gin.Context) {
	videos, err := h.videoService.GetAllVideos()
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, lo.Map(videos, func(v *models.Video, _ int) videoResponse {
		return newVideoResponse(v)
	}))
}

// GetVideoByID returns one video (public)
// GET /cms/videos/:id
func (h *VideoHandler) GetVideoByID(c *gin.Context) {
	videoID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, apperrors.Validation("VALIDATION_ERROR", "Invalid video id"))
		return
	}

	video, err := h.videoService.GetVideoByID(videoID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, newVideoResponse(video))
}

// UpdateVideo updates video metadata
// PUT /cms/videos/:id
func (h *VideoHandler) UpdateVideo(c *gin.Context) {
	videoID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, apperrors.Validation("VALIDATION_ERROR", "Invalid video id"))
		return
	}

	var req UpdateVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadBody(c)
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		respondValidationErrors(c, errs)
		return
	}

	video, err := h.videoService.UpdateVideo(videoID, services.UpdateVideoInput{
		Title:        req.Title,
		Description:  req.Description,
		YoutubeURL:   req.YoutubeURL,
		ThumbnailURL: req.ThumbnailURL,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, newVideoResponse(video))
}

// DeleteVideo removes a video record
// DELETE /cms/videos/:id
func (h *VideoHandler) DeleteVideo(c *gin.Context) {
	videoID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, apperrors.Validation("VALIDATION_ERROR", "Invalid video id"))
		return
	}

	if err := h.videoService.DeleteVideo(videoID); err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, gin.H{"message": "Video deleted successfully"})
}
