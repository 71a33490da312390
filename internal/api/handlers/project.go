package handlers

import (
	"net/http"
	"strconv"

	"fund-reporting-backend/internal/database/models"
	"fund-reporting-backend/internal/repository"
	"fund-reporting-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ProjectHandler handles HTTP requests for project operations
type ProjectHandler struct {
	projectService    *service.ProjectService
	transitionService *service.TransitionService
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projectService *service.ProjectService, transitionService *service.TransitionService) *ProjectHandler {
	return &ProjectHandler{
		projectService:    projectService,
		transitionService: transitionService,
	}
}

// ProjectListResponse is the paginated project listing
type ProjectListResponse struct {
	Projects []models.Project `json:"projects"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// CreateProject handles POST /projects
// @Summary Create a project
// @Description Create a new draft project at version 1. The project code is derived from its catalog references; a fresh meta project is created unless associate_project_id points at a sibling to join.
// @Tags projects
// @Accept json
// @Produce json
// @Param project body service.CreateProjectRequest true "Project to create"
// @Success 201 {object} models.Project "Project created"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Router /projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req service.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	req.User = actingUser(c)

	project, err := h.projectService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, project)
}

// ListProjects handles GET /projects
// @Summary List projects
// @Description Get live (non-archived) projects with pagination and filters
// @Tags projects
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Param country_id query string false "Filter by country"
// @Param agency_id query string false "Filter by agency"
// @Param cluster_id query string false "Filter by cluster"
// @Param submission_status query string false "Filter by submission status"
// @Param search query string false "Search in title and code"
// @Success 200 {object} ProjectListResponse "Successfully retrieved projects"
// @Failure 400 {object} ErrorResponse "Invalid filter parameters"
// @Router /projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	var filters repository.ProjectFilters
	if v := c.Query("country_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid country_id"})
			return
		}
		filters.CountryID = &id
	}
	if v := c.Query("agency_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid agency_id"})
			return
		}
		filters.AgencyID = &id
	}
	if v := c.Query("cluster_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid cluster_id"})
			return
		}
		filters.ClusterID = &id
	}
	filters.SubmissionStatus = models.SubmissionStatus(c.Query("submission_status"))
	filters.Search = c.Query("search")

	projects, total, err := h.projectService.List(c.Request.Context(), filters, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ProjectListResponse{
		Projects: projects,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}

// GetProject handles GET /projects/:id
// @Summary Get a project
// @Description Get a project with its catalog relations and child collections
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} models.Project "Successfully retrieved project"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Router /projects/{id} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	project, err := h.projectService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// UpdateProject handles PUT /projects/:id
// @Summary Update a project
// @Description Update a live project. Archived snapshots reject edits; the code is re-derived when a contributing field changed.
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param project body service.UpdateProjectRequest true "Fields to update"
// @Success 200 {object} models.Project "Project updated"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Failure 409 {object} ErrorResponse "Project version is archived"
// @Router /projects/{id} [put]
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req service.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	req.User = actingUser(c)

	project, err := h.projectService.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// DeleteProject handles DELETE /projects/:id
// @Summary Delete a project
// @Description Delete a project. Only draft version 1 projects may be deleted.
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Success 204 "Project deleted"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Failure 409 {object} ErrorResponse "Project has entered the workflow"
// @Router /projects/{id} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.projectService.Delete(c.Request.Context(), id, actingUser(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListVersions handles GET /projects/:id/versions
// @Summary List project versions
// @Description Get the archived snapshots of a project lineage, oldest first, with the live head last
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {array} models.Project "Version history"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Router /projects/{id}/versions [get]
func (h *ProjectHandler) ListVersions(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	versions, err := h.projectService.ListVersions(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, versions)
}

// transition runs one workflow action and writes the shared response shape
func (h *ProjectHandler) transition(c *gin.Context, action service.TransitionAction) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	req := &service.TransitionRequest{
		ProjectID: id,
		Action:    action,
		User:      actingUser(c),
	}

	if action == service.ActionApprove {
		var payload service.ApprovalPayload
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		req.Approval = &payload
	}

	result, err := h.transitionService.Execute(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// SubmitProject handles POST /projects/:id/submit
// @Summary Submit a project
// @Description Submit a draft project (and its component siblings) for review. Version 1 projects are archived and advanced to version 2. All members must pass the submission validator or nothing changes.
// @Tags transitions
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} service.TransitionResult "Projects submitted"
// @Failure 400 {object} map[string]interface{} "Validation or precondition failure"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Router /projects/{id}/submit [post]
func (h *ProjectHandler) SubmitProject(c *gin.Context) {
	h.transition(c, service.ActionSubmit)
}

// RecommendProject handles POST /projects/:id/recommend
// @Summary Recommend a project
// @Description Recommend a submitted version 2 project (and siblings) for approval, archiving to version 3
// @Tags transitions
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} service.TransitionResult "Projects recommended"
// @Failure 400 {object} map[string]interface{} "Validation or precondition failure"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Router /projects/{id}/recommend [post]
func (h *ProjectHandler) RecommendProject(c *gin.Context) {
	h.transition(c, service.ActionRecommend)
}

// ApproveProject handles POST /projects/:id/approve
// @Summary Approve a project
// @Description Approve a recommended version 3 project (and siblings), recording meeting, decision, excom provision and planned completion date. The operational status moves to ongoing.
// @Tags transitions
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param payload body service.ApprovalPayload true "Approval decision attributes"
// @Success 200 {object} service.TransitionResult "Projects approved"
// @Failure 400 {object} map[string]interface{} "Validation or precondition failure"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Router /projects/{id}/approve [post]
func (h *ProjectHandler) ApproveProject(c *gin.Context) {
	h.transition(c, service.ActionApprove)
}

// RejectProject handles POST /projects/:id/reject
// @Summary Reject a project
// @Description Mark a recommended version 3 project (and siblings) as not approved
// @Tags transitions
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} service.TransitionResult "Projects rejected"
// @Failure 400 {object} map[string]interface{} "Precondition failure"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Router /projects/{id}/reject [post]
func (h *ProjectHandler) RejectProject(c *gin.Context) {
	h.transition(c, service.ActionReject)
}

// WithdrawProject handles POST /projects/:id/withdraw
// @Summary Withdraw a project
// @Description Withdraw a submitted version 2 project (and siblings) and detach them from their component group
// @Tags transitions
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} service.TransitionResult "Projects withdrawn"
// @Failure 400 {object} map[string]interface{} "Precondition failure"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Router /projects/{id}/withdraw [post]
func (h *ProjectHandler) WithdrawProject(c *gin.Context) {
	h.transition(c, service.ActionWithdraw)
}

// SendBackToDraft handles POST /projects/:id/send_back_to_draft
// @Summary Send a project back to draft
// @Description Return a submitted version 2 project (and siblings) to draft for corrections. The version is not reset.
// @Tags transitions
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} service.TransitionResult "Projects sent back to draft"
// @Failure 400 {object} map[string]interface{} "Precondition failure"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Router /projects/{id}/send_back_to_draft [post]
func (h *ProjectHandler) SendBackToDraft(c *gin.Context) {
	h.transition(c, service.ActionSendBackToDraft)
}

// PreviousTranches handles GET /projects/:id/previous_tranches
// @Summary List previous tranches
// @Description Get the approved previous-tranche siblings of a project under the same meta project, with soft warnings for unfilled actual indicators
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} service.PreviousTranchesResult "Previous tranches"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Router /projects/{id}/previous_tranches [get]
func (h *ProjectHandler) PreviousTranches(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	result, err := h.projectService.PreviousTranches(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetHistory handles GET /projects/:id/history
// @Summary Get project history
// @Description Get the append-only action log of a project, newest first
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {array} models.ProjectHistory "History entries"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Router /projects/{id}/history [get]
func (h *ProjectHandler) GetHistory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	entries, err := h.projectService.History(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// AddOdsOdp handles POST /projects/:id/ods_odp
// @Summary Add an ods/odp entry
// @Description Append a substance or blend phase-out line to a live project. A row may reference a substance or a blend, not both.
// @Tags ods-odp
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param entry body service.OdsOdpRequest true "Entry to add"
// @Success 201 {object} models.ProjectOdsOdp "Entry created"
// @Failure 400 {object} ErrorResponse "Substance and blend both set"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Router /projects/{id}/ods_odp [post]
func (h *ProjectHandler) AddOdsOdp(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req service.OdsOdpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	row, err := h.projectService.AddOdsOdp(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, row)
}

// ListOdsOdp handles GET /projects/:id/ods_odp
// @Summary List ods/odp entries
// @Tags ods-odp
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {array} models.ProjectOdsOdp "Entries"
// @Router /projects/{id}/ods_odp [get]
func (h *ProjectHandler) ListOdsOdp(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	rows, err := h.projectService.ListOdsOdp(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// UpdateOdsOdp handles PUT /projects/:id/ods_odp/:rowId
// @Summary Update an ods/odp entry
// @Tags ods-odp
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param rowId path string true "Entry ID"
// @Param entry body service.OdsOdpRequest true "New entry values"
// @Success 200 {object} models.ProjectOdsOdp "Entry updated"
// @Failure 400 {object} ErrorResponse "Substance and blend both set"
// @Failure 404 {object} ErrorResponse "Entry not found"
// @Router /projects/{id}/ods_odp/{rowId} [put]
func (h *ProjectHandler) UpdateOdsOdp(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	rowID, err := uuid.Parse(c.Param("rowId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid entry id"})
		return
	}
	var req service.OdsOdpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	row, err := h.projectService.UpdateOdsOdp(c.Request.Context(), id, rowID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

// DeleteOdsOdp handles DELETE /projects/:id/ods_odp/:rowId
// @Summary Delete an ods/odp entry
// @Tags ods-odp
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param rowId path string true "Entry ID"
// @Success 204 "Entry deleted"
// @Failure 404 {object} ErrorResponse "Entry not found"
// @Router /projects/{id}/ods_odp/{rowId} [delete]
func (h *ProjectHandler) DeleteOdsOdp(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	rowID, err := uuid.Parse(c.Param("rowId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid entry id"})
		return
	}
	if err := h.projectService.DeleteOdsOdp(c.Request.Context(), id, rowID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AddComment handles POST /projects/:id/comments
// @Summary Add a comment
// @Tags comments
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param comment body service.CommentRequest true "Comment to add"
// @Success 201 {object} models.ProjectComment "Comment created"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Router /projects/{id}/comments [post]
func (h *ProjectHandler) AddComment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req service.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	comment, err := h.projectService.AddComment(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

// ListComments handles GET /projects/:id/comments
// @Summary List comments
// @Tags comments
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {array} models.ProjectComment "Comments"
// @Router /projects/{id}/comments [get]
func (h *ProjectHandler) ListComments(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	comments, err := h.projectService.ListComments(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

// AttachFile handles POST /projects/:id/files
// @Summary Register a file
// @Description Register the metadata of an uploaded supporting document. At least one file must be attached before submission.
// @Tags files
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param file body service.FileRequest true "File metadata"
// @Success 201 {object} models.ProjectFile "File registered"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Router /projects/{id}/files [post]
func (h *ProjectHandler) AttachFile(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req service.FileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	file, err := h.projectService.AttachFile(c.Request.Context(), id, &req, actingUser(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, file)
}

// ListFiles handles GET /projects/:id/files
// @Summary List files
// @Tags files
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {array} models.ProjectFile "Files"
// @Router /projects/{id}/files [get]
func (h *ProjectHandler) ListFiles(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	files, err := h.projectService.ListFiles(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, files)
}

// DeleteFile handles DELETE /projects/:id/files/:fileId
// @Summary Delete a file record
// @Tags files
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param fileId path string true "File ID"
// @Success 204 "File record deleted"
// @Failure 404 {object} ErrorResponse "File not found"
// @Router /projects/{id}/files/{fileId} [delete]
func (h *ProjectHandler) DeleteFile(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	fileID, err := uuid.Parse(c.Param("fileId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid file id"})
		return
	}
	if err := h.projectService.DeleteFile(c.Request.Context(), id, fileID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// parseID reads the :id path parameter as a uuid, writing a 400 on failure
func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid project id"})
		return uuid.Nil, false
	}
	return id, true
}
