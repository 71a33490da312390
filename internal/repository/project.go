package repository

import (
	"fund-reporting-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProjectRepository handles database operations for projects
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *ProjectRepository) WithTx(tx *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: tx}
}

// Create creates a new project
func (r *ProjectRepository) Create(project *models.Project) error {
	return r.db.Create(project).Error
}

// GetByID retrieves a project by ID
func (r *ProjectRepository) GetByID(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// GetWithDetails retrieves a project with its catalog relations and children
func (r *ProjectRepository) GetWithDetails(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.
		Preload("Country").
		Preload("Agency").
		Preload("Cluster").
		Preload("ProjectType").
		Preload("Sector").
		Preload("SubSectors").
		Preload("Meeting").
		Preload("Decision").
		Preload("MetaProject").
		Preload("OdsOdp").
		Preload("Funds").
		Preload("RBMMeasures").
		Preload("SubmissionAmounts").
		Preload("Comments").
		Preload("Files").
		First(&project, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// GetForUpdate retrieves a project with a row-level lock. Must run inside a
// transaction; the lock prevents concurrent transitions from re-reading stale
// submission status or version.
func (r *ProjectRepository) GetForUpdate(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&project, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// ComponentMembersForUpdate locks and returns every live project of a
// component group currently at the given submission status, excluding the
// given project id (the caller already holds its lock).
func (r *ProjectRepository) ComponentMembersForUpdate(componentID uuid.UUID, status models.SubmissionStatus, version int, exclude uuid.UUID) ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("component_id = ? AND submission_status = ? AND version = ? AND latest_project_id IS NULL AND id != ?",
			componentID, status, version, exclude).
		Order("created_at").
		Find(&projects).Error
	return projects, err
}

// List retrieves live (non-archived) projects with optional filters
func (r *ProjectRepository) List(filters ProjectFilters, limit, offset int) ([]models.Project, int64, error) {
	var projects []models.Project
	var total int64

	query := r.db.Model(&models.Project{}).Where("latest_project_id IS NULL")
	if filters.CountryID != nil {
		query = query.Where("country_id = ?", *filters.CountryID)
	}
	if filters.AgencyID != nil {
		query = query.Where("agency_id = ?", *filters.AgencyID)
	}
	if filters.ClusterID != nil {
		query = query.Where("cluster_id = ?", *filters.ClusterID)
	}
	if filters.SubmissionStatus != "" {
		query = query.Where("submission_status = ?", filters.SubmissionStatus)
	}
	if filters.Search != "" {
		query = query.Where("title ILIKE ? OR code ILIKE ?", "%"+filters.Search+"%", "%"+filters.Search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&projects).Error
	if err != nil {
		return nil, 0, err
	}
	return projects, total, nil
}

// ProjectFilters narrows the project listing
type ProjectFilters struct {
	CountryID        *uuid.UUID
	AgencyID         *uuid.UUID
	ClusterID        *uuid.UUID
	SubmissionStatus models.SubmissionStatus
	Search           string
}

// Update updates a project
func (r *ProjectRepository) Update(project *models.Project) error {
	return r.db.Save(project).Error
}

// Delete hard-deletes a project (service layer restricts this to draft v1)
func (r *ProjectRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Project{}, "id = ?", id).Error
}

// ListVersions retrieves the archived snapshots of a lineage, oldest first
func (r *ProjectRepository) ListVersions(liveID uuid.UUID) ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Where("latest_project_id = ?", liveID).Order("version").Find(&projects).Error
	return projects, err
}

// CreateArchive inserts an archived snapshot row
func (r *ProjectRepository) CreateArchive(archive *models.Project) error {
	return r.db.Create(archive).Error
}

// CloneChildren duplicates every child collection of fromID onto toID. The
// copies get fresh primary keys so live and archived views stay independent.
func (r *ProjectRepository) CloneChildren(fromID, toID uuid.UUID) error {
	if err := cloneRows(r.db, fromID, func(row *models.ProjectOdsOdp) {
		row.BaseModel = models.BaseModel{}
		row.ProjectID = toID
	}); err != nil {
		return err
	}
	if err := cloneRows(r.db, fromID, func(row *models.ProjectFund) {
		row.BaseModel = models.BaseModel{}
		row.ProjectID = toID
	}); err != nil {
		return err
	}
	if err := cloneRows(r.db, fromID, func(row *models.ProjectRBMMeasure) {
		row.BaseModel = models.BaseModel{}
		row.ProjectID = toID
	}); err != nil {
		return err
	}
	if err := cloneRows(r.db, fromID, func(row *models.SubmissionAmount) {
		row.BaseModel = models.BaseModel{}
		row.ProjectID = toID
	}); err != nil {
		return err
	}
	if err := cloneRows(r.db, fromID, func(row *models.ProjectComment) {
		row.BaseModel = models.BaseModel{}
		row.ProjectID = toID
	}); err != nil {
		return err
	}
	return cloneRows(r.db, fromID, func(row *models.ProjectFile) {
		row.BaseModel = models.BaseModel{}
		row.ProjectID = toID
	})
}

func cloneRows[T any](db *gorm.DB, fromID uuid.UUID, rebind func(*T)) error {
	var rows []T
	if err := db.Where("project_id = ?", fromID).Find(&rows).Error; err != nil {
		return err
	}
	for i := range rows {
		rebind(&rows[i])
		if err := db.Create(&rows[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

// PreviousTranches returns the approved siblings of a meta project at the
// given tranche number
func (r *ProjectRepository) PreviousTranches(metaProjectID uuid.UUID, tranche int) ([]models.Project, error) {
	var projects []models.Project
	err := r.db.
		Where("meta_project_id = ? AND tranche = ? AND submission_status = ? AND latest_project_id IS NULL",
			metaProjectID, tranche, models.SubmissionStatusApproved).
		Order("created_at").
		Find(&projects).Error
	return projects, err
}

// CountByMetaProject returns the number of live member projects
func (r *ProjectRepository) CountByMetaProject(metaProjectID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Project{}).
		Where("meta_project_id = ? AND latest_project_id IS NULL", metaProjectID).
		Count(&count).Error
	return count, err
}

// ListByMetaProject retrieves the live member projects of a meta project
func (r *ProjectRepository) ListByMetaProject(metaProjectID uuid.UUID) ([]models.Project, error) {
	var projects []models.Project
	err := r.db.
		Where("meta_project_id = ? AND latest_project_id IS NULL", metaProjectID).
		Order("serial_number").
		Find(&projects).Error
	return projects, err
}

// ListByIDs retrieves projects by id set
func (r *ProjectRepository) ListByIDs(ids []uuid.UUID) ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Where("id IN ?", ids).Find(&projects).Error
	return projects, err
}

// NextSerialNumber allocates the next per-country serial number
func (r *ProjectRepository) NextSerialNumber(countryID uuid.UUID) (int, error) {
	var max *int
	err := r.db.Model(&models.Project{}).
		Where("country_id = ?", countryID).
		Select("MAX(serial_number)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	if max == nil {
		return 1, nil
	}
	return *max + 1, nil
}
