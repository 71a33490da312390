package testutils

import (
	"fmt"
	"sync/atomic"
	"time"

	"fund-reporting-backend/internal/database/models"

	"github.com/google/uuid"
)

var serialCounter int64

func nextSerial() int {
	return int(atomic.AddInt64(&serialCounter, 1))
}

// CountryFactory provides methods to create test Country data
type CountryFactory struct{}

// NewCountryFactory creates a new CountryFactory
func NewCountryFactory() *CountryFactory {
	return &CountryFactory{}
}

// Create creates a test Country with default values
func (f *CountryFactory) Create() *models.Country {
	n := nextSerial()
	return &models.Country{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:     fmt.Sprintf("Testland %d", n),
		Abbr:     fmt.Sprintf("TL%d", n),
		ISO3:     "TST",
		IsLVC:    false,
		IsActive: true,
	}
}

// WithAbbr sets a custom code segment for the country
func (f *CountryFactory) WithAbbr(abbr string) *models.Country {
	country := f.Create()
	country.Abbr = abbr
	return country
}

// AgencyFactory provides methods to create test Agency data
type AgencyFactory struct{}

// NewAgencyFactory creates a new AgencyFactory
func NewAgencyFactory() *AgencyFactory {
	return &AgencyFactory{}
}

// Create creates a test Agency with default values
func (f *AgencyFactory) Create() *models.Agency {
	n := nextSerial()
	return &models.Agency{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:    fmt.Sprintf("Test Agency %d", n),
		Acronym: fmt.Sprintf("AG%d", n),
	}
}

// WithAcronym sets a custom acronym for the agency
func (f *AgencyFactory) WithAcronym(acronym string) *models.Agency {
	agency := f.Create()
	agency.Acronym = acronym
	return agency
}

// ClusterFactory provides methods to create test ProjectCluster data
type ClusterFactory struct{}

// NewClusterFactory creates a new ClusterFactory
func NewClusterFactory() *ClusterFactory {
	return &ClusterFactory{}
}

// Create creates a test ProjectCluster with default values
func (f *ClusterFactory) Create() *models.ProjectCluster {
	n := nextSerial()
	return &models.ProjectCluster{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name: fmt.Sprintf("Test Cluster %d", n),
		Code: fmt.Sprintf("CL%d", n),
	}
}

// WithCode sets a custom code for the cluster
func (f *ClusterFactory) WithCode(code string) *models.ProjectCluster {
	cluster := f.Create()
	cluster.Code = code
	return cluster
}

// ProjectTypeFactory provides methods to create test ProjectType data
type ProjectTypeFactory struct{}

// NewProjectTypeFactory creates a new ProjectTypeFactory
func NewProjectTypeFactory() *ProjectTypeFactory {
	return &ProjectTypeFactory{}
}

// Create creates a test ProjectType with default values
func (f *ProjectTypeFactory) Create() *models.ProjectType {
	n := nextSerial()
	return &models.ProjectType{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name: fmt.Sprintf("Test Type %d", n),
		Code: fmt.Sprintf("TY%d", n),
	}
}

// SectorFactory provides methods to create test ProjectSector data
type SectorFactory struct{}

// NewSectorFactory creates a new SectorFactory
func NewSectorFactory() *SectorFactory {
	return &SectorFactory{}
}

// Create creates a test ProjectSector with default values
func (f *SectorFactory) Create() *models.ProjectSector {
	n := nextSerial()
	return &models.ProjectSector{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name: fmt.Sprintf("Test Sector %d", n),
		Code: fmt.Sprintf("SC%d", n),
	}
}

// SubSectorFactory provides methods to create test ProjectSubSector data
type SubSectorFactory struct{}

// NewSubSectorFactory creates a new SubSectorFactory
func NewSubSectorFactory() *SubSectorFactory {
	return &SubSectorFactory{}
}

// Create creates a test ProjectSubSector with default values
func (f *SubSectorFactory) Create() *models.ProjectSubSector {
	n := nextSerial()
	return &models.ProjectSubSector{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name: fmt.Sprintf("Test Subsector %d", n),
		Code: fmt.Sprintf("SS%d", n),
	}
}

// WithSector sets the parent sector for the subsector
func (f *SubSectorFactory) WithSector(sectorID uuid.UUID) *models.ProjectSubSector {
	sub := f.Create()
	sub.SectorID = &sectorID
	return sub
}

// MeetingFactory provides methods to create test Meeting data
type MeetingFactory struct{}

// NewMeetingFactory creates a new MeetingFactory
func NewMeetingFactory() *MeetingFactory {
	return &MeetingFactory{}
}

// Create creates a test Meeting with a unique number
func (f *MeetingFactory) Create() *models.Meeting {
	n := nextSerial()
	return &models.Meeting{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Number: 90 + n,
		Title:  fmt.Sprintf("Meeting %d", 90+n),
	}
}

// WithNumber sets a custom meeting number
func (f *MeetingFactory) WithNumber(number int) *models.Meeting {
	meeting := f.Create()
	meeting.Number = number
	meeting.Title = fmt.Sprintf("Meeting %d", number)
	return meeting
}

// DecisionFactory provides methods to create test Decision data
type DecisionFactory struct{}

// NewDecisionFactory creates a new DecisionFactory
func NewDecisionFactory() *DecisionFactory {
	return &DecisionFactory{}
}

// Create creates a test Decision with default values
func (f *DecisionFactory) Create() *models.Decision {
	n := nextSerial()
	return &models.Decision{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Number: fmt.Sprintf("91/%d", n),
		Title:  "Test decision",
	}
}

// MetaProjectFactory provides methods to create test MetaProject data
type MetaProjectFactory struct{}

// NewMetaProjectFactory creates a new MetaProjectFactory
func NewMetaProjectFactory() *MetaProjectFactory {
	return &MetaProjectFactory{}
}

// Create creates a test MetaProject with default values
func (f *MetaProjectFactory) Create() *models.MetaProject {
	n := nextSerial()
	return &models.MetaProject{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Code: fmt.Sprintf("TST/CL/%02d", n),
		Type: models.MetaProjectTypeIndividual,
	}
}

// WithType sets a custom type for the meta project
func (f *MetaProjectFactory) WithType(t models.MetaProjectType) *models.MetaProject {
	meta := f.Create()
	meta.Type = t
	return meta
}

// ProjectFactory provides methods to create test Project data
type ProjectFactory struct{}

// NewProjectFactory creates a new ProjectFactory
func NewProjectFactory() *ProjectFactory {
	return &ProjectFactory{}
}

// Create creates a draft version 1 test Project with default values
func (f *ProjectFactory) Create() *models.Project {
	n := nextSerial()
	isLVC := false
	start := time.Now()
	end := start.AddDate(2, 0, 0)
	totalFund := 500000.0
	psc := 35000.0

	return &models.Project{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Code:             fmt.Sprintf("TST/CL/AG/TY/SC/91/-/%02d", n),
		SerialNumber:     n,
		Title:            fmt.Sprintf("Test Project %d", n),
		Description:      "A test project",
		SubmissionStatus: models.SubmissionStatusDraft,
		Status:           models.ProjectStatusNewSubmission,
		Version:          1,
		IsLVC:            &isLVC,
		ProjectStartDate: &start,
		ProjectEndDate:   &end,
		TotalFund:        &totalFund,
		SupportCostPSC:   &psc,
	}
}

// WithCatalogRefs sets the catalog references of the project
func (f *ProjectFactory) WithCatalogRefs(country *models.Country, agency *models.Agency,
	cluster *models.ProjectCluster, projectType *models.ProjectType, sector *models.ProjectSector,
	meeting *models.Meeting) *models.Project {

	project := f.Create()
	project.CountryID = &country.ID
	project.AgencyID = &agency.ID
	project.ClusterID = &cluster.ID
	project.ProjectTypeID = &projectType.ID
	project.SectorID = &sector.ID
	project.MeetingID = &meeting.ID
	return project
}

// WithStatus sets the submission status and version of the project
func (f *ProjectFactory) WithStatus(status models.SubmissionStatus, version int) *models.Project {
	project := f.Create()
	project.SubmissionStatus = status
	project.Version = version
	return project
}

// WithMetaProject places the project under a meta project
func (f *ProjectFactory) WithMetaProject(metaID uuid.UUID) *models.Project {
	project := f.Create()
	project.MetaProjectID = &metaID
	return project
}

// WithTranche sets the tranche number of the project
func (f *ProjectFactory) WithTranche(tranche int) *models.Project {
	project := f.Create()
	project.Tranche = &tranche
	return project
}

// OdsOdpFactory provides methods to create test ProjectOdsOdp data
type OdsOdpFactory struct{}

// NewOdsOdpFactory creates a new OdsOdpFactory
func NewOdsOdpFactory() *OdsOdpFactory {
	return &OdsOdpFactory{}
}

// Create creates a test ods/odp row for the given project
func (f *OdsOdpFactory) Create(projectID uuid.UUID) *models.ProjectOdsOdp {
	odp := 1.5
	name := "HCFC-22"
	return &models.ProjectOdsOdp{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ProjectID:      projectID,
		OdsDisplayName: &name,
		OdpAmount:      &odp,
	}
}

// ProjectFileFactory provides methods to create test ProjectFile data
type ProjectFileFactory struct{}

// NewProjectFileFactory creates a new ProjectFileFactory
func NewProjectFileFactory() *ProjectFileFactory {
	return &ProjectFileFactory{}
}

// Create creates a test file metadata record for the given project
func (f *ProjectFileFactory) Create(projectID uuid.UUID) *models.ProjectFile {
	n := nextSerial()
	return &models.ProjectFile{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ProjectID:  projectID,
		Filename:   fmt.Sprintf("proposal-%d.pdf", n),
		Path:       fmt.Sprintf("/uploads/proposal-%d.pdf", n),
		UploadedBy: "tester",
		UploadedAt: time.Now(),
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	Country     *CountryFactory
	Agency      *AgencyFactory
	Cluster     *ClusterFactory
	ProjectType *ProjectTypeFactory
	Sector      *SectorFactory
	SubSector   *SubSectorFactory
	Meeting     *MeetingFactory
	Decision    *DecisionFactory
	MetaProject *MetaProjectFactory
	Project     *ProjectFactory
	OdsOdp      *OdsOdpFactory
	ProjectFile *ProjectFileFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Country:     NewCountryFactory(),
		Agency:      NewAgencyFactory(),
		Cluster:     NewClusterFactory(),
		ProjectType: NewProjectTypeFactory(),
		Sector:      NewSectorFactory(),
		SubSector:   NewSubSectorFactory(),
		Meeting:     NewMeetingFactory(),
		Decision:    NewDecisionFactory(),
		MetaProject: NewMetaProjectFactory(),
		Project:     NewProjectFactory(),
		OdsOdp:      NewOdsOdpFactory(),
		ProjectFile: NewProjectFileFactory(),
	}
}

// CreateCatalogSet creates one row of every catalog a project references
func (fs *FactorySet) CreateCatalogSet() (*models.Country, *models.Agency, *models.ProjectCluster,
	*models.ProjectType, *models.ProjectSector, *models.Meeting) {

	return fs.Country.Create(), fs.Agency.Create(), fs.Cluster.Create(),
		fs.ProjectType.Create(), fs.Sector.Create(), fs.Meeting.Create()
}
