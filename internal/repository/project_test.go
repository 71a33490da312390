package repository

import (
	"testing"

	"fund-reporting-backend/internal/database/models"
	"fund-reporting-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ProjectRepositoryTestSuite tests the ProjectRepository
type ProjectRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ProjectRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *ProjectRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewProjectRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *ProjectRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ProjectRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *ProjectRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// createCatalogSet persists one row of every catalog a project references
func (suite *ProjectRepositoryTestSuite) createCatalogSet() (*models.Country, *models.Agency,
	*models.ProjectCluster, *models.ProjectType, *models.ProjectSector, *models.Meeting) {

	country, agency, cluster, projectType, sector, meeting := suite.factories.CreateCatalogSet()
	for _, row := range []interface{}{country, agency, cluster, projectType, sector, meeting} {
		suite.Require().NoError(suite.baseTestSuite.DB.Create(row).Error)
	}
	return country, agency, cluster, projectType, sector, meeting
}

// createProject persists a draft v1 project referencing a fresh catalog set
func (suite *ProjectRepositoryTestSuite) createProject() *models.Project {
	country, agency, cluster, projectType, sector, meeting := suite.createCatalogSet()
	project := suite.factories.Project.WithCatalogRefs(country, agency, cluster, projectType, sector, meeting)
	suite.Require().NoError(suite.repo.Create(project))
	return project
}

func (suite *ProjectRepositoryTestSuite) TestCreateAndGetByID() {
	project := suite.createProject()

	found, err := suite.repo.GetByID(project.ID)
	suite.Require().NoError(err)
	suite.Equal(project.Title, found.Title)
	suite.Equal(models.SubmissionStatusDraft, found.SubmissionStatus)
	suite.Equal(1, found.Version)
	suite.False(found.IsArchived())
}

func (suite *ProjectRepositoryTestSuite) TestGetByIDNotFound() {
	_, err := suite.repo.GetByID(uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *ProjectRepositoryTestSuite) TestNextSerialNumber() {
	country := suite.factories.Country.Create()
	otherCountry := suite.factories.Country.Create()
	suite.Require().NoError(suite.baseTestSuite.DB.Create(country).Error)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(otherCountry).Error)

	serial, err := suite.repo.NextSerialNumber(country.ID)
	suite.Require().NoError(err)
	suite.Equal(1, serial)

	project := suite.factories.Project.Create()
	project.CountryID = &country.ID
	project.SerialNumber = 7
	suite.Require().NoError(suite.repo.Create(project))

	serial, err = suite.repo.NextSerialNumber(country.ID)
	suite.Require().NoError(err)
	suite.Equal(8, serial)

	// Serials count per country
	serial, err = suite.repo.NextSerialNumber(otherCountry.ID)
	suite.Require().NoError(err)
	suite.Equal(1, serial)
}

func (suite *ProjectRepositoryTestSuite) TestListExcludesArchivedRows() {
	live := suite.createProject()

	archived := suite.factories.Project.Create()
	archived.LatestProjectID = &live.ID
	suite.Require().NoError(suite.repo.CreateArchive(archived))

	projects, total, err := suite.repo.List(ProjectFilters{}, 50, 0)
	suite.Require().NoError(err)
	suite.Equal(int64(1), total)
	suite.Require().Len(projects, 1)
	suite.Equal(live.ID, projects[0].ID)
}

func (suite *ProjectRepositoryTestSuite) TestListFilters() {
	first := suite.createProject()
	second := suite.createProject()

	second.SubmissionStatus = models.SubmissionStatusSubmitted
	second.Version = 2
	suite.Require().NoError(suite.repo.Update(second))

	byCountry, total, err := suite.repo.List(ProjectFilters{CountryID: first.CountryID}, 50, 0)
	suite.Require().NoError(err)
	suite.Equal(int64(1), total)
	suite.Require().Len(byCountry, 1)
	suite.Equal(first.ID, byCountry[0].ID)

	byStatus, total, err := suite.repo.List(
		ProjectFilters{SubmissionStatus: models.SubmissionStatusSubmitted}, 50, 0)
	suite.Require().NoError(err)
	suite.Equal(int64(1), total)
	suite.Require().Len(byStatus, 1)
	suite.Equal(second.ID, byStatus[0].ID)

	bySearch, _, err := suite.repo.List(ProjectFilters{Search: first.Title}, 50, 0)
	suite.Require().NoError(err)
	suite.Require().Len(bySearch, 1)
	suite.Equal(first.ID, bySearch[0].ID)
}

func (suite *ProjectRepositoryTestSuite) TestListVersionsOrderedOldestFirst() {
	live := suite.createProject()

	for version := 2; version >= 1; version-- {
		archive := suite.factories.Project.Create()
		archive.Version = version
		archive.LatestProjectID = &live.ID
		suite.Require().NoError(suite.repo.CreateArchive(archive))
	}

	versions, err := suite.repo.ListVersions(live.ID)
	suite.Require().NoError(err)
	suite.Require().Len(versions, 2)
	suite.Equal(1, versions[0].Version)
	suite.Equal(2, versions[1].Version)
	for i := range versions {
		suite.True(versions[i].IsArchived())
	}
}

func (suite *ProjectRepositoryTestSuite) TestCloneChildrenCopiesAreIndependent() {
	live := suite.createProject()

	odsRow := suite.factories.OdsOdp.Create(live.ID)
	file := suite.factories.ProjectFile.Create(live.ID)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(odsRow).Error)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(file).Error)

	archive := suite.factories.Project.Create()
	archive.LatestProjectID = &live.ID
	suite.Require().NoError(suite.repo.CreateArchive(archive))
	suite.Require().NoError(suite.repo.CloneChildren(live.ID, archive.ID))

	var archivedOds []models.ProjectOdsOdp
	suite.Require().NoError(suite.baseTestSuite.DB.
		Where("project_id = ?", archive.ID).Find(&archivedOds).Error)
	suite.Require().Len(archivedOds, 1)
	suite.NotEqual(odsRow.ID, archivedOds[0].ID)
	suite.Equal(*odsRow.OdpAmount, *archivedOds[0].OdpAmount)

	var archivedFiles []models.ProjectFile
	suite.Require().NoError(suite.baseTestSuite.DB.
		Where("project_id = ?", archive.ID).Find(&archivedFiles).Error)
	suite.Require().Len(archivedFiles, 1)
	suite.Equal(file.Filename, archivedFiles[0].Filename)

	// Editing the live row's children must not touch the snapshot
	newAmount := 9.9
	odsRow.OdpAmount = &newAmount
	suite.Require().NoError(suite.baseTestSuite.DB.Save(odsRow).Error)

	var frozen models.ProjectOdsOdp
	suite.Require().NoError(suite.baseTestSuite.DB.
		First(&frozen, "id = ?", archivedOds[0].ID).Error)
	suite.Equal(1.5, *frozen.OdpAmount)
}

func (suite *ProjectRepositoryTestSuite) TestComponentMembersForUpdate() {
	group := &models.ComponentGroup{}
	suite.Require().NoError(suite.baseTestSuite.DB.Create(group).Error)

	head := suite.createProject()
	sibling := suite.createProject()
	lagging := suite.createProject()

	for _, p := range []*models.Project{head, sibling, lagging} {
		p.ComponentID = &group.ID
		p.SubmissionStatus = models.SubmissionStatusSubmitted
		p.Version = 2
	}
	lagging.SubmissionStatus = models.SubmissionStatusDraft
	for _, p := range []*models.Project{head, sibling, lagging} {
		suite.Require().NoError(suite.repo.Update(p))
	}

	archivedSibling := suite.factories.Project.WithStatus(models.SubmissionStatusSubmitted, 2)
	archivedSibling.ComponentID = &group.ID
	archivedSibling.LatestProjectID = &head.ID
	suite.Require().NoError(suite.repo.CreateArchive(archivedSibling))

	err := suite.baseTestSuite.DB.Transaction(func(tx *gorm.DB) error {
		members, err := suite.repo.WithTx(tx).ComponentMembersForUpdate(
			group.ID, models.SubmissionStatusSubmitted, 2, head.ID)
		suite.Require().NoError(err)
		suite.Require().Len(members, 1)
		suite.Equal(sibling.ID, members[0].ID)
		return nil
	})
	suite.Require().NoError(err)
}

func (suite *ProjectRepositoryTestSuite) TestPreviousTranchesReturnsApprovedLiveSiblings() {
	meta := suite.factories.MetaProject.WithType(models.MetaProjectTypeMYA)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(meta).Error)

	tranche := 1
	approved := suite.factories.Project.WithStatus(models.SubmissionStatusApproved, 3)
	approved.MetaProjectID = &meta.ID
	approved.Tranche = &tranche
	suite.Require().NoError(suite.repo.Create(approved))

	stillDraft := suite.factories.Project.Create()
	stillDraft.MetaProjectID = &meta.ID
	stillDraft.Tranche = &tranche
	suite.Require().NoError(suite.repo.Create(stillDraft))

	archivedApproved := suite.factories.Project.WithStatus(models.SubmissionStatusApproved, 3)
	archivedApproved.MetaProjectID = &meta.ID
	archivedApproved.Tranche = &tranche
	archivedApproved.LatestProjectID = &approved.ID
	suite.Require().NoError(suite.repo.CreateArchive(archivedApproved))

	siblings, err := suite.repo.PreviousTranches(meta.ID, 1)
	suite.Require().NoError(err)
	suite.Require().Len(siblings, 1)
	suite.Equal(approved.ID, siblings[0].ID)
}

func (suite *ProjectRepositoryTestSuite) TestListByMetaProject() {
	meta := suite.factories.MetaProject.Create()
	suite.Require().NoError(suite.baseTestSuite.DB.Create(meta).Error)

	first := suite.factories.Project.WithMetaProject(meta.ID)
	second := suite.factories.Project.WithMetaProject(meta.ID)
	outsider := suite.factories.Project.Create()
	for _, p := range []*models.Project{first, second, outsider} {
		suite.Require().NoError(suite.repo.Create(p))
	}

	members, err := suite.repo.ListByMetaProject(meta.ID)
	suite.Require().NoError(err)
	suite.Len(members, 2)

	count, err := suite.repo.CountByMetaProject(meta.ID)
	suite.Require().NoError(err)
	suite.Equal(int64(2), count)
}

func (suite *ProjectRepositoryTestSuite) TestDelete() {
	project := suite.createProject()

	suite.Require().NoError(suite.repo.Delete(project.ID))

	_, err := suite.repo.GetByID(project.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestProjectRepositoryTestSuite runs the test suite
func TestProjectRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectRepositoryTestSuite))
}
