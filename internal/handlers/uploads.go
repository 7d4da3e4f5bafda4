package handlers

import (
	"fmt"
	"io"
	"mime/multipart"

	"github.com/gin-gonic/gin"

	"github.com/itc-media/cms-backend/internal/apperrors"
	"github.com/itc-media/cms-backend/internal/services"
)

const uploadFormField = "images"

// readUploads pulls the uploaded files out of a multipart form and reads them
// into memory. Content validation (MIME, size) happens in the storage service.
func readUploads(c *gin.Context, maxFiles int) ([]services.Upload, error) {
	form, err := c.MultipartForm()
	if err != nil {
		// No multipart body at all is fine; some requests carry metadata only.
		return nil, nil
	}

	files := form.File[uploadFormField]
	if len(files) == 0 {
		return nil, nil
	}
	if len(files) > maxFiles {
		return nil, apperrors.Validation("VALIDATION_ERROR",
			fmt.Sprintf("maximum %d files per request", maxFiles))
	}

	uploads := make([]services.Upload, 0, len(files))
	for _, fh := range files {
		data, err := readFileHeader(fh)
		if err != nil {
			return nil, apperrors.Validation("VALIDATION_ERROR",
				fmt.Sprintf("failed to read uploaded file %s", fh.Filename))
		}
		uploads = append(uploads, services.Upload{OriginalName: fh.Filename, Data: data})
	}
	return uploads, nil
}

func readFileHeader(fh *multipart.FileHeader) ([]byte, error) {
	file, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return io.ReadAll(file)
}
