package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/itc-media/cms-backend/internal/apperrors"
	"github.com/itc-media/cms-backend/internal/config"
	"github.com/itc-media/cms-backend/internal/middleware"
	"github.com/itc-media/cms-backend/internal/models"
	"github.com/itc-media/cms-backend/internal/services"
)

type PhotoHandler struct {
	photoService *services.PhotoService
	cfg          *config.Config
}

func NewPhotoHandler(photoService *services.PhotoService, cfg *config.Config) *PhotoHandler {
	return &PhotoHandler{photoService: photoService, cfg: cfg}
}

type photoResponse struct {
	ID          uuid.UUID           `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description,omitempty"`
	FileName    string              `json:"fileName"`
	FilePath    string              `json:"filePath"`
	FileSize    int64               `json:"fileSize"`
	MimeType    string              `json:"mimeType"`
	UploadedBy  uuid.UUID           `json:"uploadedBy"`
	Uploader    *models.UserSummary `json:"uploader,omitempty"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
}

func newPhotoResponse(p *models.Photo) photoResponse {
	resp := photoResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		FileName:    p.FileName,
		FilePath:    p.FilePath,
		FileSize:    p.FileSize,
		MimeType:    p.MimeType,
		UploadedBy:  p.UploadedBy,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if p.Uploader != nil {
		summary := p.Uploader.Summary()
		resp.Uploader = &summary
	}
	return resp
}

func photoResponses(photos []*models.Photo) []photoResponse {
	return lo.Map(photos, func(p *models.Photo, _ int) photoResponse {
		return newPhotoResponse(p)
	})
}

// UploadPhotos handles standalone photo uploads
// POST /photos (multipart: title?, description?, images[])
func (h *PhotoHandler) UploadPhotos(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		respondError(c, apperrors.Unauthorized("NO_TOKEN", "Unauthorized"))
		return
	}

	files, err := readUploads(c, h.cfg.UploadMaxFiles)
	if err != nil {
		respondError(c, err)
		return
	}

	photos, err := h.photoService.UploadPhotos(c.Request.Context(), userID, files,
		c.PostForm("title"), c.PostForm("description"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, photoResponses(photos))
}

// GetAllPhotos lists every photo (public)
// GET /photos
func (h *PhotoHandler) GetAllPhotos(c *gin.Context) {
	photos, err := h.photoService.GetAllPhotos()
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, photoResponses(photos))
}

// GetMyPhotos lists the caller's own uploads
// GET /photos/my-photos
func (h *PhotoHandler) GetMyPhotos(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		respondError(c, apperrors.Unauthorized("NO_TOKEN", "Unauthorized"))
		return
	}

	photos, err := h.photoService.GetPhotosByUploader(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, photoResponses(photos))
}

// GetPhotoByID returns one photo (public)
// GET /photos/:id
func (h *PhotoHandler) GetPhotoByID(c *gin.Context) {
	photoID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, apperrors.Validation("VALIDATION_ERROR", "Invalid photo id"))
		return
	}

	photo, err := h.photoService.GetPhotoByID(photoID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, newPhotoResponse(photo))
}

// UpdatePhoto updates photo metadata
// PUT /photos/:id
func (h *PhotoHandler) UpdatePhoto(c *gin.Context) {
	photoID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, apperrors.Validation("VALIDATION_ERROR", "Invalid photo id"))
		return
	}

	var req UpdatePhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadBody(c)
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		respondValidationErrors(c, errs)
		return
	}

	photo, err := h.photoService.UpdatePhoto(photoID, services.UpdatePhotoInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, newPhotoResponse(photo))
}

// DeletePhoto removes one photo and its stored file
// DELETE /photos/:id
func (h *PhotoHandler) DeletePhoto(c *gin.Context) {
	photoID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, apperrors.Validation("VALIDATION_ERROR", "Invalid photo id"))
		return
	}

	if err := h.photoService.DeletePhoto(c.Request.Context(), photoID); err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"message": "Photo deleted successfully"})
}

// DeleteMultiplePhotos deletes a batch of photos, reporting which ids landed.
// Failures on individual ids do not fail the request.
// POST /photos/delete-multiple (body: {"ids": [...]})
func (h *PhotoHandler) DeleteMultiplePhotos(c *gin.Context) {
	var req DeleteMultipleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadBody(c)
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		respondValidationErrors(c, errs)
		return
	}

	deleted := h.photoService.DeleteMultiplePhotos(c.Request.Context(), req.IDs)
	respondSuccess(c, http.StatusOK, gin.H{
		"message":       "Photos deleted",
		"deletedPhotos": deleted,
	})
}
