package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/itc-media/cms-backend/internal/apperrors"
	"github.com/itc-media/cms-backend/pkg/validation"
)

// respondSuccess writes the uniform success envelope.
func respondSuccess(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{
		"success": true,
		"data":    data,
		"error":   nil,
	})
}

// respondError writes the uniform error envelope. Operational errors surface
// their code and message verbatim; anything else is logged server-side and
// replaced with a generic 500.
func respondError(c *gin.Context, err error) {
	if appErr, ok := apperrors.As(err); ok && appErr.Kind != apperrors.KindInternal {
		log.Printf("Operational error: %s %s -> %d %s", c.Request.Method, c.Request.URL.Path, appErr.Status(), appErr.Code)
		c.JSON(appErr.Status(), gin.H{
			"success": false,
			"data":    nil,
			"error":   gin.H{"code": appErr.Code, "message": appErr.Message},
		})
		return
	}

	log.Printf("ERROR: unexpected error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"data":    nil,
		"error":   gin.H{"code": "INTERNAL_SERVER_ERROR", "message": "An unexpected error occurred"},
	})
}

// respondValidationErrors rejects the request with every collected field error.
func respondValidationErrors(c *gin.Context, errs validation.Errors) {
	respondError(c, apperrors.Validation("VALIDATION_ERROR", errs.Error()))
}

// respondBadBody covers unparseable request bodies.
func respondBadBody(c *gin.Context) {
	respondError(c, apperrors.Validation("VALIDATION_ERROR", "Invalid request body"))
}
