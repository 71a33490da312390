package handlers

import (
	"net/http"
	"strconv"

	"fund-reporting-backend/internal/database/models"
	"fund-reporting-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MetaProjectHandler handles HTTP requests for meta project operations
type MetaProjectHandler struct {
	metaProjectService *service.MetaProjectService
	associationService *service.AssociationService
}

// NewMetaProjectHandler creates a new meta project handler
func NewMetaProjectHandler(metaProjectService *service.MetaProjectService, associationService *service.AssociationService) *MetaProjectHandler {
	return &MetaProjectHandler{
		metaProjectService: metaProjectService,
		associationService: associationService,
	}
}

// MetaProjectListResponse is the paginated meta project listing
type MetaProjectListResponse struct {
	MetaProjects []models.MetaProject `json:"meta_projects"`
	Total        int64                `json:"total"`
	Page         int                  `json:"page"`
	PageSize     int                  `json:"page_size"`
}

// ListMetaProjects handles GET /meta_projects
// @Summary List meta projects
// @Description Get meta projects with pagination
// @Tags meta-projects
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} MetaProjectListResponse "Successfully retrieved meta projects"
// @Router /meta_projects [get]
func (h *MetaProjectHandler) ListMetaProjects(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	metas, total, err := h.metaProjectService.List(c.Request.Context(), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, MetaProjectListResponse{
		MetaProjects: metas,
		Total:        total,
		Page:         page,
		PageSize:     pageSize,
	})
}

// GetMetaProject handles GET /meta_projects/:id
// @Summary Get a meta project
// @Description Get a meta project with its live member projects
// @Tags meta-projects
// @Accept json
// @Produce json
// @Param id path string true "Meta project ID"
// @Success 200 {object} models.MetaProject "Successfully retrieved meta project"
// @Failure 404 {object} ErrorResponse "Meta project not found"
// @Router /meta_projects/{id} [get]
func (h *MetaProjectHandler) GetMetaProject(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid meta project id"})
		return
	}
	meta, err := h.metaProjectService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, meta)
}

// AssociateProjects handles POST /projects/associate_projects
// @Summary Associate projects
// @Description Place the given projects under one shared meta project. An existing meta project among the targets is reused (first found, with a warning when the targets span several); otherwise a fresh one is created. The aggregate code is recomputed from the resulting membership.
// @Tags meta-projects
// @Accept json
// @Produce json
// @Param request body service.AssociateRequest true "Projects to associate"
// @Success 200 {object} service.AssociateResult "Association result with warnings"
// @Failure 400 {object} ErrorResponse "No projects selected"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Router /projects/associate_projects [post]
func (h *MetaProjectHandler) AssociateProjects(c *gin.Context) {
	var req service.AssociateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	req.User = actingUser(c)

	result, err := h.associationService.Associate(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
