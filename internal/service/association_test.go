package service

import (
	"context"
	"testing"

	"fund-reporting-backend/internal/database/models"
	apperrors "fund-reporting-backend/internal/errors"
	"fund-reporting-backend/internal/repository"
	"fund-reporting-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// AssociationServiceTestSuite tests meta project association
type AssociationServiceTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	svc           *AssociationService
	projectRepo   *repository.ProjectRepository
	metaRepo      *repository.MetaProjectRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *AssociationServiceTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.svc = NewAssociationService(suite.baseTestSuite.DB, validator.New())
	suite.projectRepo = repository.NewProjectRepository(suite.baseTestSuite.DB)
	suite.metaRepo = repository.NewMetaProjectRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *AssociationServiceTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *AssociationServiceTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *AssociationServiceTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// createProject persists a draft project with a country and cluster so the
// meta project code derivation has its inputs
func (suite *AssociationServiceTestSuite) createProject(abbr, clusterCode string, serial int) *models.Project {
	country := suite.factories.Country.WithAbbr(abbr)
	cluster := suite.factories.Cluster.WithCode(clusterCode)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(country).Error)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(cluster).Error)

	project := suite.factories.Project.Create()
	project.CountryID = &country.ID
	project.ClusterID = &cluster.ID
	project.SerialNumber = serial
	suite.Require().NoError(suite.projectRepo.Create(project))
	return project
}

func (suite *AssociationServiceTestSuite) associate(ids ...uuid.UUID) (*AssociateResult, error) {
	return suite.svc.Associate(context.Background(), &AssociateRequest{
		ProjectIDs: ids,
		User:       "tester",
	})
}

func (suite *AssociationServiceTestSuite) TestAssociateCreatesMetaProject() {
	first := suite.createProject("ARG", "HPP", 4)
	second := suite.createProject("ARG", "KIP", 5)

	result, err := suite.associate(first.ID, second.ID)
	suite.Require().NoError(err)
	suite.Require().NotNil(result.MetaProject)
	suite.Empty(result.Warnings)

	// Code derives from the first target's country, cluster and serial
	suite.Equal("ARG/HPP/04", result.MetaProject.Code)
	suite.Equal(models.MetaProjectTypeIndividual, result.MetaProject.Type)

	for _, id := range []uuid.UUID{first.ID, second.ID} {
		live, err := suite.projectRepo.GetByID(id)
		suite.Require().NoError(err)
		suite.Require().NotNil(live.MetaProjectID)
		suite.Equal(result.MetaProject.ID, *live.MetaProjectID)
	}
}

func (suite *AssociationServiceTestSuite) TestAssociateTranchedProjectCreatesMYA() {
	project := suite.createProject("BRA", "HPP", 9)
	tranche := 1
	project.Tranche = &tranche
	suite.Require().NoError(suite.projectRepo.Update(project))

	result, err := suite.associate(project.ID)
	suite.Require().NoError(err)
	suite.Equal(models.MetaProjectTypeMYA, result.MetaProject.Type)
}

func (suite *AssociationServiceTestSuite) TestAssociateReusesExistingMetaProject() {
	meta := suite.factories.MetaProject.Create()
	suite.Require().NoError(suite.baseTestSuite.DB.Create(meta).Error)

	member := suite.createProject("ARG", "HPP", 4)
	member.MetaProjectID = &meta.ID
	suite.Require().NoError(suite.projectRepo.Update(member))

	newcomer := suite.createProject("ARG", "HPP", 5)

	result, err := suite.associate(member.ID, newcomer.ID)
	suite.Require().NoError(err)
	suite.Equal(meta.ID, result.MetaProject.ID)
	suite.Empty(result.Warnings)

	live, err := suite.projectRepo.GetByID(newcomer.ID)
	suite.Require().NoError(err)
	suite.Equal(meta.ID, *live.MetaProjectID)
}

func (suite *AssociationServiceTestSuite) TestAssociateWarnsOnMultipleMetaProjects() {
	firstMeta := suite.factories.MetaProject.Create()
	secondMeta := suite.factories.MetaProject.Create()
	suite.Require().NoError(suite.baseTestSuite.DB.Create(firstMeta).Error)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(secondMeta).Error)

	first := suite.createProject("ARG", "HPP", 4)
	first.MetaProjectID = &firstMeta.ID
	suite.Require().NoError(suite.projectRepo.Update(first))

	second := suite.createProject("ARG", "HPP", 5)
	second.MetaProjectID = &secondMeta.ID
	suite.Require().NoError(suite.projectRepo.Update(second))

	result, err := suite.associate(first.ID, second.ID)
	suite.Require().NoError(err)
	suite.Equal(firstMeta.ID, result.MetaProject.ID, "the first target's meta project wins")
	suite.Contains(result.Warnings, apperrors.WarnMultipleMetaProjects)

	// The loser's member moved over
	live, err := suite.projectRepo.GetByID(second.ID)
	suite.Require().NoError(err)
	suite.Equal(firstMeta.ID, *live.MetaProjectID)
}

func (suite *AssociationServiceTestSuite) TestAssociateWarnsOnDuplicateCode() {
	existing := suite.factories.MetaProject.Create()
	existing.Code = "ARG/HPP/04"
	suite.Require().NoError(suite.baseTestSuite.DB.Create(existing).Error)

	project := suite.createProject("ARG", "HPP", 4)

	result, err := suite.associate(project.ID)
	suite.Require().NoError(err)
	suite.NotEqual(existing.ID, result.MetaProject.ID)
	suite.Contains(result.Warnings, "Meta project code ARG/HPP/04 already exists.")
}

func (suite *AssociationServiceTestSuite) TestAssociateRecomputesAggregateCode() {
	first := suite.createProject("ARG", "HPP", 4)
	first.Code = "ARG/HPP/UNDP/INV/REF/91/-/07"
	second := suite.createProject("ARG", "HPP", 5)
	second.Code = "ARG/HPP/UNEP/TAS/REF/91/-/08"
	suite.Require().NoError(suite.projectRepo.Update(first))
	suite.Require().NoError(suite.projectRepo.Update(second))

	result, err := suite.associate(first.ID)
	suite.Require().NoError(err)
	suite.Equal("ARG/HPP/UNDP/INV/REF/91/-/07", result.MetaProject.NewCode)

	// Adding a member reduces the aggregate to min-code plus member count
	result, err = suite.associate(first.ID, second.ID)
	suite.Require().NoError(err)
	suite.Equal("ARG/HPP/UNDP/INV/REF/91/-/07+1", result.MetaProject.NewCode)

	stored, err := suite.metaRepo.GetByID(result.MetaProject.ID)
	suite.Require().NoError(err)
	suite.Equal("ARG/HPP/UNDP/INV/REF/91/-/07+1", stored.NewCode)
}

func (suite *AssociationServiceTestSuite) TestAssociateSetsLeadAgency() {
	agency := suite.factories.Agency.Create()
	suite.Require().NoError(suite.baseTestSuite.DB.Create(agency).Error)

	project := suite.createProject("ARG", "HPP", 4)

	result, err := suite.svc.Associate(context.Background(), &AssociateRequest{
		ProjectIDs:   []uuid.UUID{project.ID},
		LeadAgencyID: &agency.ID,
		User:         "tester",
	})
	suite.Require().NoError(err)
	suite.Require().NotNil(result.MetaProject.LeadAgencyID)
	suite.Equal(agency.ID, *result.MetaProject.LeadAgencyID)
}

func (suite *AssociationServiceTestSuite) TestAssociateUnknownProjectRefused() {
	project := suite.createProject("ARG", "HPP", 4)

	_, err := suite.associate(project.ID, uuid.New())
	suite.Require().Error(err)
	suite.True(apperrors.IsNotFound(err))

	live, err := suite.projectRepo.GetByID(project.ID)
	suite.Require().NoError(err)
	suite.Nil(live.MetaProjectID)
}

func (suite *AssociationServiceTestSuite) TestAssociateArchivedProjectRefused() {
	live := suite.createProject("ARG", "HPP", 4)

	archive := suite.factories.Project.Create()
	archive.LatestProjectID = &live.ID
	suite.Require().NoError(suite.projectRepo.CreateArchive(archive))

	_, err := suite.associate(archive.ID)
	suite.Require().ErrorIs(err, apperrors.ErrProjectArchived)
}

// TestAssociationServiceTestSuite runs the test suite
func TestAssociationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AssociationServiceTestSuite))
}
