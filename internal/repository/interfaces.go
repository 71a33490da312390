package repository

import (
	"fund-reporting-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// ProjectRepositoryInterface defines the interface for project repository operations
type ProjectRepositoryInterface interface {
	Create(project *models.Project) error
	GetByID(id uuid.UUID) (*models.Project, error)
	GetWithDetails(id uuid.UUID) (*models.Project, error)
	GetForUpdate(id uuid.UUID) (*models.Project, error)
	ComponentMembersForUpdate(componentID uuid.UUID, status models.SubmissionStatus, version int, exclude uuid.UUID) ([]models.Project, error)
	List(filters ProjectFilters, limit, offset int) ([]models.Project, int64, error)
	Update(project *models.Project) error
	Delete(id uuid.UUID) error
	ListVersions(liveID uuid.UUID) ([]models.Project, error)
	CreateArchive(archive *models.Project) error
	CloneChildren(fromID, toID uuid.UUID) error
	PreviousTranches(metaProjectID uuid.UUID, tranche int) ([]models.Project, error)
	ListByMetaProject(metaProjectID uuid.UUID) ([]models.Project, error)
	ListByIDs(ids []uuid.UUID) ([]models.Project, error)
	NextSerialNumber(countryID uuid.UUID) (int, error)
}

// MetaProjectRepositoryInterface defines the interface for meta project repository operations
type MetaProjectRepositoryInterface interface {
	Create(mp *models.MetaProject) error
	GetByID(id uuid.UUID) (*models.MetaProject, error)
	GetWithProjects(id uuid.UUID) (*models.MetaProject, error)
	GetAll(limit, offset int) ([]models.MetaProject, int64, error)
	CountByCode(code string) (int64, error)
	Update(mp *models.MetaProject) error
	Delete(id uuid.UUID) error
}

// ComponentGroupRepositoryInterface defines the interface for component group lookups
type ComponentGroupRepositoryInterface interface {
	Create(group *models.ComponentGroup) error
	Members(componentID uuid.UUID) ([]models.Project, error)
	Detach(projectID uuid.UUID) error
}

// ProjectHistoryRepositoryInterface defines the interface for the history log
type ProjectHistoryRepositoryInterface interface {
	Create(entry *models.ProjectHistory) error
	ListForProject(projectID uuid.UUID) ([]models.ProjectHistory, error)
	CountForProject(projectID uuid.UUID) (int64, error)
}

// ProjectFieldsRepositoryInterface defines the interface for field configuration lookups
type ProjectFieldsRepositoryInterface interface {
	GetForProject(clusterID, projectTypeID, sectorID uuid.UUID) (*models.ProjectSpecificFields, error)
	Create(cfg *models.ProjectSpecificFields) error
}
