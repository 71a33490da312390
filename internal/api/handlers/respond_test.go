package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "fund-reporting-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func respond(err error) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
	respondError(c, err)
	return w
}

func TestRespondErrorStatusCodes(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", apperrors.ErrProjectNotFound, http.StatusNotFound},
		{"archived", apperrors.ErrProjectArchived, http.StatusConflict},
		{"not deletable", apperrors.ErrProjectNotDeletable, http.StatusConflict},
		{"substance blend conflict", apperrors.ErrSubstanceBlendConflict, http.StatusBadRequest},
		{"no projects selected", apperrors.ErrNoProjectsSelected, http.StatusBadRequest},
		{"bad pagination", apperrors.ErrInvalidPaginationParams, http.StatusBadRequest},
		{"transition refused", apperrors.NewTransitionError("cannot submit"), http.StatusBadRequest},
		{"field validation", apperrors.NewValidationError("title", "too long"), http.StatusBadRequest},
		{"unexpected", errors.New("pq: connection refused"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := respond(tc.err)
			assert.Equal(t, tc.status, w.Code)
		})
	}
}

func TestRespondErrorHidesInternalDetail(t *testing.T) {
	w := respond(errors.New("pq: connection refused"))

	var body ErrorResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Internal server error", body.Error)
}

func TestRespondErrorKeepsBatchValidationStructure(t *testing.T) {
	id := uuid.New()
	batchErr := &apperrors.BatchValidationError{
		Items: []apperrors.ProjectValidationErrors{{
			ID:    id,
			Title: "Sector plan",
			Errors: apperrors.SubmissionErrors{
				"files": {"At least one file must be attached before submission."},
			},
		}},
	}

	w := respond(batchErr)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body struct {
		Errors []apperrors.ProjectValidationErrors `json:"errors"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Errors, 1)
	assert.Equal(t, id, body.Errors[0].ID)
	assert.Equal(t,
		[]string{"At least one file must be attached before submission."},
		body.Errors[0].Errors["files"])
}

func TestActingUser(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
	c.Request.Header.Set("X-User", "secretariat")

	assert.Equal(t, "secretariat", actingUser(c))
}
