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
	"github.com/itc-media/cms-backend/pkg/validation"
)

type GalleryHandler struct {
	galleryService *services.GalleryService
	cfg            *config.Config
}

func NewGalleryHandler(galleryService *services.GalleryService, cfg *config.Config) *GalleryHandler {
	return &GalleryHandler{galleryService: galleryService, cfg: cfg}
}

type galleryResponse struct {
	ID          uuid.UUID           `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description,omitempty"`
	UploadedBy  uuid.UUID           `json:"uploadedBy"`
	Images      []models.Image      `json:"images"`
	Uploader    *models.UserSummary `json:"uploader,omitempty"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
}

func newGalleryResponse(g *models.Gallery) galleryResponse {
	resp := galleryResponse{
		ID:          g.ID,
		Title:       g.Title,
		Description: g.Description,
		UploadedBy:  g.UploadedBy,
		Images:      g.Images,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
	if resp.Images == nil {
		resp.Images = []models.Image{}
	}
	if g.Uploader != nil {
		summary := g.Uploader.Summary()
		resp.Uploader = &summary
	}
	return resp
}

// CreateGallery handles gallery creation with optional image uploads
// POST /cms/galleries (multipart: title, description, images[])
func (h *GalleryHandler) CreateGallery(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		respondError(c, apperrors.Unauthorized("NO_TOKEN", "Unauthorized"))
		return
	}

	title := c.PostForm("title")
	description := c.PostForm("description")

	var errs validation.Collector
	validateTitle(&errs, title)
	if errs.HasErrors() {
		respondValidationErrors(c, errs.Errors())
		return
	}

	files, err := readUploads(c, h.cfg.UploadMaxFiles)
	if err != nil {
		respondError(c, err)
		return
	}

	gallery, err := h.galleryService.CreateGallery(c.Request.Context(), services.CreateGalleryInput{
		Title:       title,
		Description: description,
	}, userID, files)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, newGalleryResponse(gallery))
}

// GetAllGalleries lists all galleries (public)
// GET /cms/galleries
func (h *GalleryHandler) GetAllGalleries(c *gin.Context) {
	galleries, err := h.galleryService.GetAllGalleries()
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, lo.Map(galleries, func(g *models.Gallery, _ int) galleryResponse {
		return newGalleryResponse(g)
	}))
}

// GetGalleryByID returns one gallery (public)
// GET /cms/galleries/:id
func (h *GalleryHandler) GetGalleryByID(c *gin.Context) {
	galleryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, apperrors.Validation("VALIDATION_ERROR", "Invalid gallery id"))
		return
	}

	gallery, err := h.galleryService.GetGalleryByID(galleryID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, newGalleryResponse(gallery))
}

// UpdateGallery updates metadata and appends newly uploaded images
// PUT /cms/galleries/:id (multipart: title?, description?, images[])
func (h *GalleryHandler) UpdateGallery(c *gin.Context) {
	galleryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, apperrors.Validation("VALIDATION_ERROR", "Invalid gallery id"))
		return
	}

	input := services.UpdateGalleryInput{}
	if title, ok := c.GetPostForm("title"); ok {
		var errs validation.Collector
		validateTitle(&errs, title)
		if errs.HasErrors() {
			respondValidationErrors(c, errs.Errors())
			return
		}
		input.Title = &title
	}
	if description, ok := c.GetPostForm("description"); ok {
		input.Description = &description
	}

	files, err := readUploads(c, h.cfg.UploadMaxFiles)
	if err != nil {
		respondError(c, err)
		return
	}

	gallery, err := h.galleryService.UpdateGallery(c.Request.Context(), galleryID, input, files)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, newGalleryResponse(gallery))
}

// DeleteGallery removes a gallery, its images, and their files
// DELETE /cms/galleries/:id
func (h *GalleryHandler) DeleteGallery(c *gin.Context) {
	galleryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, apperrors.Validation("VALIDATION_ERROR", "Invalid gallery id"))
		return
	}

	if err := h.galleryService.DeleteGallery(c.Request.Context(), galleryID); err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, gin.H{"message": "Gallery deleted successfully"})
}

// DeleteImage removes one image from a gallery
// DELETE /cms/galleries/:id/images/:imageId
func (h *GalleryHandler) DeleteImage(c *gin.Context) {
	galleryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, apperrors.Validation("VALIDATION_ERROR", "Invalid gallery id"))
		return
	}
	imageID, err := uuid.Parse(c.Param("imageId"))
	if err != nil {
		respondError(c, apperrors.Validation("VALIDATION_ERROR", "Invalid image id"))
		return
	}

	if err := h.galleryService.DeleteImage(c.Request.Context(), galleryID, imageID); err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, gin.H{"message": "Image deleted successfully"})
}
