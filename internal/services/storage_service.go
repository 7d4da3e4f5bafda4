package services

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/itc-media/cms-backend/internal/apperrors"
	"github.com/itc-media/cms-backend/internal/config"
)

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".gif":  true,
}

// StoredFile describes a file saved under the uploads directory. FilePath is
// the public path the file is served under.
type StoredFile struct {
	FileName string
	FilePath string
	FileSize int64
	MimeType string
}

// StorageService writes uploaded images to local disk and optionally mirrors
// them to S3.
type StorageService struct {
	cfg    *config.Config
	mirror *S3Service
}

func NewStorageService(cfg *config.Config, mirror *S3Service) *StorageService {
	_ = os.MkdirAll(filepath.Join(cfg.UploadsPath, "images"), 0o755)
	return &StorageService{cfg: cfg, mirror: mirror}
}

// SaveImage validates and persists one uploaded image. The stored name is a
// fresh UUID keeping the original extension; writes are atomic (tmp + rename).
func (s *StorageService) SaveImage(ctx context.Context, originalName string, data []byte) (*StoredFile, error) {
	mimeType := http.DetectContentType(data)
	if !strings.HasPrefix(mimeType, "image/") {
		return nil, apperrors.Validation("INVALID_FILE_TYPE", fmt.Sprintf("expected image, got %s", mimeType))
	}

	ext := strings.ToLower(filepath.Ext(originalName))
	if !allowedImageExts[ext] {
		return nil, apperrors.Validation("INVALID_FILE_TYPE", fmt.Sprintf("unsupported image extension: %s", ext))
	}

	if int64(len(data)) > s.cfg.UploadMaxImageSize {
		return nil, apperrors.Validation("FILE_TOO_LARGE",
			fmt.Sprintf("image too large: %d bytes (max: %d)", len(data), s.cfg.UploadMaxImageSize))
	}

	fileName := uuid.New().String() + ext
	absPath := filepath.Join(s.cfg.UploadsPath, "images", fileName)

	tmp := absPath + ".part"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write upload: %w", err)
	}
	if err := os.Rename(tmp, absPath); err != nil {
		_ = os.Remove(tmp)
		return nil, fmt.Errorf("failed to finalize upload: %w", err)
	}

	if s.mirror.Enabled() {
		if err := s.mirror.Upload(ctx, "images/"+fileName, data, mimeType); err != nil {
			log.Printf("WARN: S3 mirror upload failed for %s: %v", fileName, err)
		}
	}

	return &StoredFile{
		FileName: fileName,
		FilePath: "/uploads/images/" + fileName,
		FileSize: int64(len(data)),
		MimeType: mimeType,
	}, nil
}

// DeleteImage removes a stored file from disk and the mirror. Callers treat
// failures as non-fatal; the database row is deleted regardless.
func (s *StorageService) DeleteImage(ctx context.Context, fileName string) error {
	absPath := filepath.Join(s.cfg.UploadsPath, "images", fileName)
	err := os.Remove(absPath)

	if s.mirror.Enabled() {
		if merr := s.mirror.Delete(ctx, "images/"+fileName); merr != nil {
			log.Printf("WARN: S3 mirror delete failed for %s: %v", fileName, merr)
		}
	}

	return err
}

// Upload is one incoming multipart file read into memory by a handler.
type Upload struct {
	OriginalName string
	Data         []byte
}
