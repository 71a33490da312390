package repository

import (
	"fund-reporting-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectOdsOdpRepository handles database operations for ods/odp entries
type ProjectOdsOdpRepository struct {
	db *gorm.DB
}

// NewProjectOdsOdpRepository creates a new ods/odp repository
func NewProjectOdsOdpRepository(db *gorm.DB) *ProjectOdsOdpRepository {
	return &ProjectOdsOdpRepository{db: db}
}

// Create creates a new ods/odp entry
func (r *ProjectOdsOdpRepository) Create(row *models.ProjectOdsOdp) error {
	return r.db.Create(row).Error
}

// GetByID retrieves an ods/odp entry by ID
func (r *ProjectOdsOdpRepository) GetByID(id uuid.UUID) (*models.ProjectOdsOdp, error) {
	var row models.ProjectOdsOdp
	err := r.db.First(&row, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// ListForProject returns the ods/odp entries of a project
func (r *ProjectOdsOdpRepository) ListForProject(projectID uuid.UUID) ([]models.ProjectOdsOdp, error) {
	var rows []models.ProjectOdsOdp
	err := r.db.Where("project_id = ?", projectID).Order("sort_order").Find(&rows).Error
	return rows, err
}

// Update updates an ods/odp entry
func (r *ProjectOdsOdpRepository) Update(row *models.ProjectOdsOdp) error {
	return r.db.Save(row).Error
}

// Delete deletes an ods/odp entry
func (r *ProjectOdsOdpRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.ProjectOdsOdp{}, "id = ?", id).Error
}

// ProjectFileRepository handles database operations for project file metadata
type ProjectFileRepository struct {
	db *gorm.DB
}

// NewProjectFileRepository creates a new project file repository
func NewProjectFileRepository(db *gorm.DB) *ProjectFileRepository {
	return &ProjectFileRepository{db: db}
}

// Create registers a file's metadata
func (r *ProjectFileRepository) Create(file *models.ProjectFile) error {
	return r.db.Create(file).Error
}

// ListForProject returns the files attached to a project
func (r *ProjectFileRepository) ListForProject(projectID uuid.UUID) ([]models.ProjectFile, error) {
	var files []models.ProjectFile
	err := r.db.Where("project_id = ?", projectID).Order("uploaded_at").Find(&files).Error
	return files, err
}

// CountForProject returns the number of files attached to a project
func (r *ProjectFileRepository) CountForProject(projectID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.ProjectFile{}).Where("project_id = ?", projectID).Count(&count).Error
	return count, err
}

// Delete removes a file metadata record
func (r *ProjectFileRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.ProjectFile{}, "id = ?", id).Error
}

// ProjectCommentRepository handles database operations for project comments
type ProjectCommentRepository struct {
	db *gorm.DB
}

// NewProjectCommentRepository creates a new project comment repository
func NewProjectCommentRepository(db *gorm.DB) *ProjectCommentRepository {
	return &ProjectCommentRepository{db: db}
}

// Create creates a comment
func (r *ProjectCommentRepository) Create(comment *models.ProjectComment) error {
	return r.db.Create(comment).Error
}

// ListForProject returns the comments of a project
func (r *ProjectCommentRepository) ListForProject(projectID uuid.UUID) ([]models.ProjectComment, error) {
	var comments []models.ProjectComment
	err := r.db.Where("project_id = ?", projectID).Order("created_at").Find(&comments).Error
	return comments, err
}
