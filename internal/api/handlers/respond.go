package handlers

import (
	"errors"
	"net/http"

	apperrors "fund-reporting-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
}

// respondError maps domain errors onto HTTP status codes. Validation detail
// keeps its structure; everything unexpected collapses to a 500 without
// leaking internals.
func respondError(c *gin.Context, err error) {
	var batchErr *apperrors.BatchValidationError
	if errors.As(err, &batchErr) {
		c.JSON(http.StatusBadRequest, gin.H{"errors": batchErr.Items})
		return
	}

	var submissionErr *apperrors.SubmissionValidationError
	if errors.As(err, &submissionErr) {
		c.JSON(http.StatusBadRequest, gin.H{"errors": submissionErr.Errors})
		return
	}

	var transitionErr *apperrors.TransitionError
	if errors.As(err, &transitionErr) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: transitionErr.Message})
		return
	}

	var validationErr *apperrors.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: validationErr.Error()})
		return
	}

	if apperrors.IsNotFound(err) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrProjectArchived),
		errors.Is(err, apperrors.ErrProjectNotDeletable):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrSubstanceBlendConflict),
		errors.Is(err, apperrors.ErrNoProjectsSelected),
		errors.Is(err, apperrors.ErrInvalidPaginationParams):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
}

// actingUser resolves the acting user recorded on history rows and version
// snapshots. Authentication is out of scope; the identity travels as a plain
// header from the gateway.
func actingUser(c *gin.Context) string {
	return c.GetHeader("X-User")
}
