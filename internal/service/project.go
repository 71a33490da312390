package service

import (
	"context"
	"errors"
	"time"

	"fund-reporting-backend/internal/database/models"
	apperrors "fund-reporting-backend/internal/errors"
	"fund-reporting-backend/internal/logger"
	"fund-reporting-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectService handles the project CRUD surface: creation with code
// derivation and meta-project bootstrapping, updates on live rows, child-row
// management, and the read endpoints.
type ProjectService struct {
	db          *gorm.DB
	projectRepo *repository.ProjectRepository
	historyRepo *repository.ProjectHistoryRepository
	fieldsRepo  *repository.ProjectFieldsRepository
	odsOdpRepo  *repository.ProjectOdsOdpRepository
	fileRepo    *repository.ProjectFileRepository
	commentRepo *repository.ProjectCommentRepository
	validator   *validator.Validate
	log         *logger.Logger
}

// NewProjectService creates a new project service
func NewProjectService(db *gorm.DB, validate *validator.Validate) *ProjectService {
	return &ProjectService{
		db:          db,
		projectRepo: repository.NewProjectRepository(db),
		historyRepo: repository.NewProjectHistoryRepository(db),
		fieldsRepo:  repository.NewProjectFieldsRepository(db),
		odsOdpRepo:  repository.NewProjectOdsOdpRepository(db),
		fileRepo:    repository.NewProjectFileRepository(db),
		commentRepo: repository.NewProjectCommentRepository(db),
		validator:   validate,
		log:         logger.New(),
	}
}

// CreateProjectRequest carries the writable fields of a new project
type CreateProjectRequest struct {
	Title       string `json:"title" binding:"required,max=250" validate:"required,max=250"`
	Description string `json:"description"`

	CountryID     *uuid.UUID `json:"country_id" binding:"required" validate:"required"`
	AgencyID      *uuid.UUID `json:"agency_id" binding:"required" validate:"required"`
	ClusterID     *uuid.UUID `json:"cluster_id"`
	ProjectTypeID *uuid.UUID `json:"project_type_id"`
	SectorID      *uuid.UUID `json:"sector_id"`
	SubSectorIDs  []uuid.UUID `json:"subsector_ids"`

	MeetingID         *uuid.UUID `json:"meeting_id"`
	TransferMeetingID *uuid.UUID `json:"transfer_meeting_id"`

	Tranche *int  `json:"tranche"`
	IsLVC   *bool `json:"is_lvc"`

	ProjectStartDate *time.Time `json:"project_start_date"`
	ProjectEndDate   *time.Time `json:"project_end_date"`

	TotalFund      *float64 `json:"total_fund"`
	SupportCostPSC *float64 `json:"support_cost_psc"`

	// When set, the new project inherits this project's meta project and
	// joins (or creates) its component group.
	AssociateProjectID *uuid.UUID `json:"associate_project_id"`

	User string `json:"-"`
}

// UpdateProjectRequest carries the writable fields of a project update.
// Pointer fields distinguish "not sent" from "set to empty".
type UpdateProjectRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=250" validate:"omitempty,max=250"`
	Description *string `json:"description"`

	CountryID     *uuid.UUID  `json:"country_id"`
	AgencyID      *uuid.UUID  `json:"agency_id"`
	ClusterID     *uuid.UUID  `json:"cluster_id"`
	ProjectTypeID *uuid.UUID  `json:"project_type_id"`
	SectorID      *uuid.UUID  `json:"sector_id"`
	SubSectorIDs  []uuid.UUID `json:"subsector_ids"`

	MeetingID         *uuid.UUID `json:"meeting_id"`
	TransferMeetingID *uuid.UUID `json:"transfer_meeting_id"`

	Tranche *int  `json:"tranche"`
	IsLVC   *bool `json:"is_lvc"`

	ProjectStartDate *time.Time `json:"project_start_date"`
	ProjectEndDate   *time.Time `json:"project_end_date"`

	TotalFund      *float64 `json:"total_fund"`
	SupportCostPSC *float64 `json:"support_cost_psc"`

	User string `json:"-"`
}

// Create creates a new draft project at version 1, derives its code, and
// places it under a meta project
func (s *ProjectService) Create(ctx context.Context, req *CreateProjectRequest) (*models.Project, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("request", err.Error())
	}

	var created *models.Project

	err := s.db.Transaction(func(tx *gorm.DB) error {
		projects := repository.NewProjectRepository(tx)
		metas := repository.NewMetaProjectRepository(tx)
		groups := repository.NewComponentGroupRepository(tx)
		history := repository.NewProjectHistoryRepository(tx)

		serial, err := projects.NextSerialNumber(*req.CountryID)
		if err != nil {
			return err
		}

		project := &models.Project{
			Title:            req.Title,
			Description:      req.Description,
			SerialNumber:     serial,
			CountryID:        req.CountryID,
			AgencyID:         req.AgencyID,
			ClusterID:        req.ClusterID,
			ProjectTypeID:    req.ProjectTypeID,
			SectorID:         req.SectorID,
			MeetingID:        req.MeetingID,
			TransferMeetingID: req.TransferMeetingID,
			Tranche:          req.Tranche,
			IsLVC:            req.IsLVC,
			ProjectStartDate: req.ProjectStartDate,
			ProjectEndDate:   req.ProjectEndDate,
			TotalFund:        req.TotalFund,
			SupportCostPSC:   req.SupportCostPSC,
			SubmissionStatus: models.SubmissionStatusDraft,
			Status:           models.ProjectStatusNewSubmission,
			Version:          1,
		}

		code, err := s.deriveCode(tx, project)
		if err != nil {
			return err
		}
		project.Code = code

		if req.AssociateProjectID != nil {
			if err := s.attachToSibling(tx, project, *req.AssociateProjectID, projects, groups); err != nil {
				return err
			}
		}

		if err := projects.Create(project); err != nil {
			return err
		}

		if err := s.linkSubSectors(tx, project.ID, req.SubSectorIDs); err != nil {
			return err
		}

		if project.MetaProjectID == nil {
			if err := s.bootstrapMetaProject(tx, project, metas, projects); err != nil {
				return err
			}
		} else {
			if err := s.refreshMetaProjectNewCode(tx, *project.MetaProjectID, metas, projects); err != nil {
				return err
			}
		}

		if err := history.Create(&models.ProjectHistory{
			ProjectID:   project.ID,
			Description: "Project created",
			UserID:      req.User,
		}); err != nil {
			return err
		}

		created = project
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// attachToSibling inherits the sibling's meta project and joins its component
// group, creating the group if the sibling has none yet
func (s *ProjectService) attachToSibling(tx *gorm.DB, project *models.Project, siblingID uuid.UUID,
	projects *repository.ProjectRepository, groups *repository.ComponentGroupRepository) error {

	sibling, err := projects.GetByID(siblingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrProjectNotFound
		}
		return err
	}
	if sibling.IsArchived() {
		return apperrors.ErrProjectArchived
	}

	project.MetaProjectID = sibling.MetaProjectID

	if sibling.ComponentID == nil {
		group := &models.ComponentGroup{}
		if err := groups.Create(group); err != nil {
			return err
		}
		sibling.ComponentID = &group.ID
		if err := projects.Update(sibling); err != nil {
			return err
		}
	}
	project.ComponentID = sibling.ComponentID
	return nil
}

// bootstrapMetaProject creates the fresh meta project a standalone new
// project starts under
func (s *ProjectService) bootstrapMetaProject(tx *gorm.DB, project *models.Project,
	metas *repository.MetaProjectRepository, projects *repository.ProjectRepository) error {

	catalogs := repository.NewCatalogRepository(tx)

	var country *models.Country
	var cluster *models.ProjectCluster
	var err error
	if project.CountryID != nil {
		if country, err = catalogs.GetCountry(*project.CountryID); err != nil {
			return err
		}
	}
	if project.ClusterID != nil {
		if cluster, err = catalogs.GetCluster(*project.ClusterID); err != nil {
			return err
		}
	}

	metaType := models.MetaProjectTypeIndividual
	if project.Tranche != nil {
		metaType = models.MetaProjectTypeMYA
	}

	meta := &models.MetaProject{
		Code:         GetMetaProjectCode(country, cluster, project.SerialNumber),
		NewCode:      project.Code,
		Type:         metaType,
		LeadAgencyID: project.AgencyID,
	}
	if err := metas.Create(meta); err != nil {
		return err
	}

	project.MetaProjectID = &meta.ID
	return projects.Update(project)
}

// refreshMetaProjectNewCode recomputes the aggregate code after a membership
// change
func (s *ProjectService) refreshMetaProjectNewCode(tx *gorm.DB, metaID uuid.UUID,
	metas *repository.MetaProjectRepository, projects *repository.ProjectRepository) error {

	members, err := projects.ListByMetaProject(metaID)
	if err != nil {
		return err
	}
	meta, err := metas.GetByID(metaID)
	if err != nil {
		return err
	}
	meta.NewCode = GetMetaProjectNewCode(members)
	return metas.Update(meta)
}

// deriveCode recomputes the project code from its current catalog references
func (s *ProjectService) deriveCode(tx *gorm.DB, project *models.Project) (string, error) {
	catalogs := repository.NewCatalogRepository(tx)

	var country *models.Country
	var cluster *models.ProjectCluster
	var agency *models.Agency
	var projectType *models.ProjectType
	var sector *models.ProjectSector
	var meeting, transferMeeting *models.Meeting
	var err error

	if project.CountryID != nil {
		if country, err = catalogs.GetCountry(*project.CountryID); err != nil {
			return "", err
		}
	}
	if project.ClusterID != nil {
		if cluster, err = catalogs.GetCluster(*project.ClusterID); err != nil {
			return "", err
		}
	}
	if project.AgencyID != nil {
		if agency, err = catalogs.GetAgency(*project.AgencyID); err != nil {
			return "", err
		}
	}
	if project.ProjectTypeID != nil {
		if projectType, err = catalogs.GetProjectType(*project.ProjectTypeID); err != nil {
			return "", err
		}
	}
	if project.SectorID != nil {
		if sector, err = catalogs.GetSector(*project.SectorID); err != nil {
			return "", err
		}
	}
	if project.MeetingID != nil {
		if meeting, err = catalogs.GetMeeting(*project.MeetingID); err != nil {
			return "", err
		}
	}
	if project.TransferMeetingID != nil {
		if transferMeeting, err = catalogs.GetMeeting(*project.TransferMeetingID); err != nil {
			return "", err
		}
	}

	return GetProjectSubCode(country, cluster, agency, projectType, sector,
		meeting, transferMeeting, project.SerialNumber), nil
}

// linkSubSectors replaces the project's subsector links
func (s *ProjectService) linkSubSectors(tx *gorm.DB, projectID uuid.UUID, subSectorIDs []uuid.UUID) error {
	if err := tx.Exec("DELETE FROM project_project_subsectors WHERE project_id = ?", projectID).Error; err != nil {
		return err
	}
	for _, id := range subSectorIDs {
		if err := tx.Exec(
			"INSERT INTO project_project_subsectors (project_id, project_sub_sector_id) VALUES (?, ?)",
			projectID, id).Error; err != nil {
			return err
		}
	}
	return nil
}

// Get retrieves a project with its relations and children
func (s *ProjectService) Get(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	project, err := s.projectRepo.GetWithDetails(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, err
	}
	return project, nil
}

// List retrieves live projects with filters and pagination
func (s *ProjectService) List(ctx context.Context, filters repository.ProjectFilters, page, pageSize int) ([]models.Project, int64, error) {
	if page < 1 || pageSize < 1 || pageSize > 100 {
		return nil, 0, apperrors.ErrInvalidPaginationParams
	}
	return s.projectRepo.List(filters, pageSize, (page-1)*pageSize)
}

// ListVersions returns the archived snapshots of a lineage, oldest first,
// with the live head appended
func (s *ProjectService) ListVersions(ctx context.Context, id uuid.UUID) ([]models.Project, error) {
	head, err := s.projectRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, err
	}
	versions, err := s.projectRepo.ListVersions(head.ID)
	if err != nil {
		return nil, err
	}
	return append(versions, *head), nil
}

// Update edits a live project. Archived snapshots reject edits. The code is
// re-derived when any contributing field changed.
func (s *ProjectService) Update(ctx context.Context, id uuid.UUID, req *UpdateProjectRequest) (*models.Project, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("request", err.Error())
	}

	var updated *models.Project

	err := s.db.Transaction(func(tx *gorm.DB) error {
		projects := repository.NewProjectRepository(tx)
		history := repository.NewProjectHistoryRepository(tx)

		project, err := projects.GetForUpdate(id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrProjectNotFound
			}
			return err
		}
		if project.IsArchived() {
			return apperrors.ErrProjectArchived
		}

		codeInputsChanged := applyUpdate(project, req)

		if req.SubSectorIDs != nil {
			if err := s.linkSubSectors(tx, project.ID, req.SubSectorIDs); err != nil {
				return err
			}
		}

		if codeInputsChanged {
			code, err := s.deriveCode(tx, project)
			if err != nil {
				return err
			}
			project.Code = code
		}

		if err := projects.Update(project); err != nil {
			return err
		}

		if err := history.Create(&models.ProjectHistory{
			ProjectID:   project.ID,
			Description: "Project updated",
			UserID:      req.User,
		}); err != nil {
			return err
		}

		updated = project
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// applyUpdate copies the sent fields onto the project and reports whether any
// code-contributing field changed
func applyUpdate(project *models.Project, req *UpdateProjectRequest) bool {
	codeInputsChanged := false

	if req.Title != nil {
		project.Title = *req.Title
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.CountryID != nil {
		project.CountryID = req.CountryID
		codeInputsChanged = true
	}
	if req.AgencyID != nil {
		project.AgencyID = req.AgencyID
		codeInputsChanged = true
	}
	if req.ClusterID != nil {
		project.ClusterID = req.ClusterID
		codeInputsChanged = true
	}
	if req.ProjectTypeID != nil {
		project.ProjectTypeID = req.ProjectTypeID
		codeInputsChanged = true
	}
	if req.SectorID != nil {
		project.SectorID = req.SectorID
		codeInputsChanged = true
	}
	if req.MeetingID != nil {
		project.MeetingID = req.MeetingID
		codeInputsChanged = true
	}
	if req.TransferMeetingID != nil {
		project.TransferMeetingID = req.TransferMeetingID
		codeInputsChanged = true
	}
	if req.Tranche != nil {
		project.Tranche = req.Tranche
	}
	if req.IsLVC != nil {
		project.IsLVC = req.IsLVC
	}
	if req.ProjectStartDate != nil {
		project.ProjectStartDate = req.ProjectStartDate
	}
	if req.ProjectEndDate != nil {
		project.ProjectEndDate = req.ProjectEndDate
	}
	if req.TotalFund != nil {
		project.TotalFund = req.TotalFund
	}
	if req.SupportCostPSC != nil {
		project.SupportCostPSC = req.SupportCostPSC
	}

	return codeInputsChanged
}

// Delete removes a project. Only draft version 1 projects may be deleted;
// anything that has entered the workflow is preserved.
func (s *ProjectService) Delete(ctx context.Context, id uuid.UUID, user string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		projects := repository.NewProjectRepository(tx)

		project, err := projects.GetForUpdate(id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrProjectNotFound
			}
			return err
		}
		if project.SubmissionStatus != models.SubmissionStatusDraft || project.Version != 1 {
			return apperrors.ErrProjectNotDeletable
		}

		metaID := project.MetaProjectID
		if err := projects.Delete(project.ID); err != nil {
			return err
		}

		if metaID != nil {
			metas := repository.NewMetaProjectRepository(tx)
			if err := s.refreshMetaProjectNewCode(tx, *metaID, metas, projects); err != nil {
				return err
			}
		}
		return nil
	})
}

// PreviousTranchesResult pairs the approved previous-tranche siblings with
// per-unfilled-field soft warnings
type PreviousTranchesResult struct {
	Projects []models.Project `json:"projects"`
	Warnings []string         `json:"warnings,omitempty"`
}

// PreviousTranches lists the approved (tranche-1) siblings of a project under
// the same meta project, with warnings for every unfilled actual indicator
func (s *ProjectService) PreviousTranches(ctx context.Context, id uuid.UUID) (*PreviousTranchesResult, error) {
	project, err := s.projectRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, err
	}

	result := &PreviousTranchesResult{Projects: []models.Project{}}
	if project.Tranche == nil || *project.Tranche <= 1 || project.MetaProjectID == nil {
		return result, nil
	}

	siblings, err := s.projectRepo.PreviousTranches(*project.MetaProjectID, *project.Tranche-1)
	if err != nil {
		return nil, err
	}
	result.Projects = siblings

	entries := make([]TrancheEntry, 0, len(siblings))
	for _, sib := range siblings {
		entry := TrancheEntry{Project: sib}
		if sib.ClusterID != nil && sib.ProjectTypeID != nil && sib.SectorID != nil {
			cfg, err := s.fieldsRepo.GetForProject(*sib.ClusterID, *sib.ProjectTypeID, *sib.SectorID)
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
			if cfg != nil {
				entry.ActualFields = cfg.ActualFields()
			}
		}
		entries = append(entries, entry)
	}

	_, warnings := CheckPreviousTranches(project.Tranche, entries)
	result.Warnings = warnings
	return result, nil
}

// History returns the append-only action log of a project, newest first
func (s *ProjectService) History(ctx context.Context, id uuid.UUID) ([]models.ProjectHistory, error) {
	if _, err := s.projectRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, err
	}
	return s.historyRepo.ListForProject(id)
}

// OdsOdpRequest carries one writable ods/odp row
type OdsOdpRequest struct {
	OdsSubstanceID *uuid.UUID `json:"ods_substance_id"`
	OdsBlendID     *uuid.UUID `json:"ods_blend_id"`
	OdsDisplayName *string    `json:"ods_display_name"`
	OdpAmount      *float64   `json:"odp_amount"`
	CO2MT          *float64   `json:"co2_mt"`
	PhaseOutMT     *float64   `json:"phase_out_mt"`
	SortOrder      int        `json:"sort_order"`
}

// AddOdsOdp appends an ods/odp row to a live project
func (s *ProjectService) AddOdsOdp(ctx context.Context, projectID uuid.UUID, req *OdsOdpRequest) (*models.ProjectOdsOdp, error) {
	project, err := s.projectRepo.GetByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, err
	}
	if project.IsArchived() {
		return nil, apperrors.ErrProjectArchived
	}

	row := &models.ProjectOdsOdp{
		ProjectID:      projectID,
		OdsSubstanceID: req.OdsSubstanceID,
		OdsBlendID:     req.OdsBlendID,
		OdsDisplayName: req.OdsDisplayName,
		OdpAmount:      req.OdpAmount,
		CO2MT:          req.CO2MT,
		PhaseOutMT:     req.PhaseOutMT,
		SortOrder:      req.SortOrder,
	}
	if err := ValidateOdsOdpExclusivity(row); err != nil {
		return nil, err
	}
	if err := s.odsOdpRepo.Create(row); err != nil {
		return nil, err
	}
	return row, nil
}

// UpdateOdsOdp edits an ods/odp row
func (s *ProjectService) UpdateOdsOdp(ctx context.Context, projectID, rowID uuid.UUID, req *OdsOdpRequest) (*models.ProjectOdsOdp, error) {
	row, err := s.odsOdpRepo.GetByID(rowID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOdsOdpNotFound
		}
		return nil, err
	}
	if row.ProjectID != projectID {
		return nil, apperrors.ErrOdsOdpNotFound
	}

	row.OdsSubstanceID = req.OdsSubstanceID
	row.OdsBlendID = req.OdsBlendID
	row.OdsDisplayName = req.OdsDisplayName
	row.OdpAmount = req.OdpAmount
	row.CO2MT = req.CO2MT
	row.PhaseOutMT = req.PhaseOutMT
	row.SortOrder = req.SortOrder

	if err := ValidateOdsOdpExclusivity(row); err != nil {
		return nil, err
	}
	if err := s.odsOdpRepo.Update(row); err != nil {
		return nil, err
	}
	return row, nil
}

// ListOdsOdp lists the ods/odp rows of a project
func (s *ProjectService) ListOdsOdp(ctx context.Context, projectID uuid.UUID) ([]models.ProjectOdsOdp, error) {
	return s.odsOdpRepo.ListForProject(projectID)
}

// DeleteOdsOdp removes an ods/odp row
func (s *ProjectService) DeleteOdsOdp(ctx context.Context, projectID, rowID uuid.UUID) error {
	row, err := s.odsOdpRepo.GetByID(rowID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrOdsOdpNotFound
		}
		return err
	}
	if row.ProjectID != projectID {
		return apperrors.ErrOdsOdpNotFound
	}
	return s.odsOdpRepo.Delete(rowID)
}

// CommentRequest carries one writable project comment
type CommentRequest struct {
	MeetingOfReportID  *uuid.UUID `json:"meeting_of_report_id"`
	SecretariatComment string     `json:"secretariat_comment"`
	AgencyResponse     string     `json:"agency_response"`
}

// AddComment appends a comment to a project
func (s *ProjectService) AddComment(ctx context.Context, projectID uuid.UUID, req *CommentRequest) (*models.ProjectComment, error) {
	if _, err := s.projectRepo.GetByID(projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, err
	}

	comment := &models.ProjectComment{
		ProjectID:          projectID,
		MeetingOfReportID:  req.MeetingOfReportID,
		SecretariatComment: req.SecretariatComment,
		AgencyResponse:     req.AgencyResponse,
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// ListComments lists the comments of a project
func (s *ProjectService) ListComments(ctx context.Context, projectID uuid.UUID) ([]models.ProjectComment, error) {
	return s.commentRepo.ListForProject(projectID)
}

// FileRequest registers an uploaded file's metadata
type FileRequest struct {
	Filename string `json:"filename" binding:"required,max=250"`
	Path     string `json:"path"`
}

// AttachFile registers a supporting document on a live project
func (s *ProjectService) AttachFile(ctx context.Context, projectID uuid.UUID, req *FileRequest, user string) (*models.ProjectFile, error) {
	project, err := s.projectRepo.GetByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, err
	}
	if project.IsArchived() {
		return nil, apperrors.ErrProjectArchived
	}

	file := &models.ProjectFile{
		ProjectID:  projectID,
		Filename:   req.Filename,
		Path:       req.Path,
		UploadedBy: user,
		UploadedAt: time.Now().UTC(),
	}
	if err := s.fileRepo.Create(file); err != nil {
		return nil, err
	}
	return file, nil
}

// ListFiles lists the files attached to a project
func (s *ProjectService) ListFiles(ctx context.Context, projectID uuid.UUID) ([]models.ProjectFile, error) {
	return s.fileRepo.ListForProject(projectID)
}

// DeleteFile removes a file metadata record
func (s *ProjectService) DeleteFile(ctx context.Context, projectID, fileID uuid.UUID) error {
	files, err := s.fileRepo.ListForProject(projectID)
	if err != nil {
		return err
	}
	for _, f := range files {
		if f.ID == fileID {
			return s.fileRepo.Delete(fileID)
		}
	}
	return apperrors.ErrProjectFileNotFound
}
