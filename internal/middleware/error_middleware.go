package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/selin/studyhub/internal/app/models/dto"
	"github.com/selin/studyhub/internal/pkg/apperrors"
	"github.com/selin/studyhub/internal/pkg/logger"
)

// HandleAPIError maps service and repository errors onto the HTTP error
// contract: 404 for missing resources, 400 for rejected input, 500 for
// collaborator and unexpected failures.
func HandleAPIError(c *gin.Context, err error) {
	var customErr *apperrors.CustomError

	switch {
	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(errorMessage(err, "Resource not found")))
	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		resp := dto.NewErrorResponse(errorMessage(err, "Invalid request"))
		if errors.As(err, &customErr) && customErr.Details != nil {
			resp = resp.WithDetails(customErr.Details)
		}
		c.JSON(http.StatusBadRequest, resp)
	case errors.Is(err, apperrors.ErrCollaborator):
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(errorMessage(err, "Failed to reach the AI collaborator")))
	default:
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled error at route boundary")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error"))
	}
}

// HandleBindingError turns a gin binding failure into a 400 with the
// machine-readable detail list. Validation failures never reach storage.
func HandleBindingError(c *gin.Context, err error, message string) {
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(message).WithDetails(dto.BindingErrorDetails(err)))
}

func errorMessage(err error, fallback string) string {
	var customErr *apperrors.CustomError
	if errors.As(err, &customErr) && customErr.Message != "" {
		return customErr.Message
	}
	return fallback
}
