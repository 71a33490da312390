package repository

import (
	"fund-reporting-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CatalogRepository reads the reference tables (countries, agencies,
// clusters, types, sectors, meetings). Catalogs are imported once and
// consulted read-only by the workflow core.
type CatalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository creates a new catalog repository
func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// GetCountry retrieves a country by ID
func (r *CatalogRepository) GetCountry(id uuid.UUID) (*models.Country, error) {
	var c models.Country
	if err := r.db.First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// GetAgency retrieves an agency by ID
func (r *CatalogRepository) GetAgency(id uuid.UUID) (*models.Agency, error) {
	var a models.Agency
	if err := r.db.First(&a, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// GetCluster retrieves a project cluster by ID
func (r *CatalogRepository) GetCluster(id uuid.UUID) (*models.ProjectCluster, error) {
	var c models.ProjectCluster
	if err := r.db.First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// GetProjectType retrieves a project type by ID
func (r *CatalogRepository) GetProjectType(id uuid.UUID) (*models.ProjectType, error) {
	var t models.ProjectType
	if err := r.db.First(&t, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// GetSector retrieves a project sector by ID
func (r *CatalogRepository) GetSector(id uuid.UUID) (*models.ProjectSector, error) {
	var s models.ProjectSector
	if err := r.db.First(&s, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// GetSubSectors retrieves subsectors by id set
func (r *CatalogRepository) GetSubSectors(ids []uuid.UUID) ([]models.ProjectSubSector, error) {
	var subs []models.ProjectSubSector
	err := r.db.Where("id IN ?", ids).Find(&subs).Error
	return subs, err
}

// GetMeeting retrieves a meeting by ID
func (r *CatalogRepository) GetMeeting(id uuid.UUID) (*models.Meeting, error) {
	var m models.Meeting
	if err := r.db.First(&m, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// GetDecision retrieves a decision by ID
func (r *CatalogRepository) GetDecision(id uuid.UUID) (*models.Decision, error) {
	var d models.Decision
	if err := r.db.First(&d, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

// ListCountries retrieves all active countries
func (r *CatalogRepository) ListCountries() ([]models.Country, error) {
	var cs []models.Country
	err := r.db.Where("is_active = true").Order("name").Find(&cs).Error
	return cs, err
}

// ListAgencies retrieves all agencies
func (r *CatalogRepository) ListAgencies() ([]models.Agency, error) {
	var as []models.Agency
	err := r.db.Order("name").Find(&as).Error
	return as, err
}
