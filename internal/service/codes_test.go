package service

import (
	"testing"

	"fund-reporting-backend/internal/database/models"

	"github.com/stretchr/testify/assert"
)

func sampleCodeInputs() (*models.Country, *models.ProjectCluster, *models.Agency, *models.ProjectType, *models.ProjectSector, *models.Meeting) {
	country := &models.Country{Name: "Argentina", Abbr: "ARG"}
	cluster := &models.ProjectCluster{Name: "HCFC Phase-out Plan", Code: "HPP"}
	agency := &models.Agency{Name: "UNDP", Acronym: "UNDP"}
	projectType := &models.ProjectType{Name: "Investment", Code: "INV"}
	sector := &models.ProjectSector{Name: "Refrigeration", Code: "REF"}
	meeting := &models.Meeting{Number: 91}
	return country, cluster, agency, projectType, sector, meeting
}

func TestGetProjectSubCode(t *testing.T) {
	country, cluster, agency, projectType, sector, meeting := sampleCodeInputs()

	code := GetProjectSubCode(country, cluster, agency, projectType, sector, meeting, nil, 7)
	assert.Equal(t, "ARG/HPP/UNDP/INV/REF/91/-/07", code)
}

func TestGetProjectSubCodeIsDeterministic(t *testing.T) {
	country, cluster, agency, projectType, sector, meeting := sampleCodeInputs()

	first := GetProjectSubCode(country, cluster, agency, projectType, sector, meeting, nil, 7)
	second := GetProjectSubCode(country, cluster, agency, projectType, sector, meeting, nil, 7)
	assert.Equal(t, first, second)
}

func TestGetProjectSubCodeSensitivity(t *testing.T) {
	country, cluster, agency, projectType, sector, meeting := sampleCodeInputs()
	base := GetProjectSubCode(country, cluster, agency, projectType, sector, meeting, nil, 7)

	otherAgency := &models.Agency{Name: "UNIDO", Acronym: "UNIDO"}
	assert.NotEqual(t, base,
		GetProjectSubCode(country, cluster, otherAgency, projectType, sector, meeting, nil, 7))

	assert.NotEqual(t, base,
		GetProjectSubCode(country, cluster, agency, projectType, sector, meeting, nil, 8))

	otherMeeting := &models.Meeting{Number: 92}
	assert.NotEqual(t, base,
		GetProjectSubCode(country, cluster, agency, projectType, sector, otherMeeting, nil, 7))
}

func TestGetProjectSubCodeMissingSegments(t *testing.T) {
	country, _, agency, _, _, _ := sampleCodeInputs()

	code := GetProjectSubCode(country, nil, agency, nil, nil, nil, nil, 3)
	assert.Equal(t, "ARG/-/UNDP/-/-/-/-/03", code)
}

func TestGetProjectSubCodeTransferMeeting(t *testing.T) {
	country, cluster, agency, projectType, sector, meeting := sampleCodeInputs()
	transfer := &models.Meeting{Number: 93}

	code := GetProjectSubCode(country, cluster, agency, projectType, sector, meeting, transfer, 7)
	assert.Equal(t, "ARG/HPP/UNDP/INV/REF/91/93/07", code)
}

func TestGetMetaProjectCode(t *testing.T) {
	country, cluster, _, _, _, _ := sampleCodeInputs()

	assert.Equal(t, "ARG/HPP/04", GetMetaProjectCode(country, cluster, 4))
	assert.Equal(t, "-/-/04", GetMetaProjectCode(nil, nil, 4))
}

func TestGetMetaProjectNewCode(t *testing.T) {
	assert.Equal(t, "", GetMetaProjectNewCode(nil))

	single := []models.Project{{Code: "ARG/HPP/UNDP/INV/REF/91/-/07"}}
	assert.Equal(t, "ARG/HPP/UNDP/INV/REF/91/-/07", GetMetaProjectNewCode(single))

	several := []models.Project{
		{Code: "ARG/HPP/UNIDO/INV/REF/91/-/09"},
		{Code: "ARG/HPP/UNDP/INV/REF/91/-/07"},
		{Code: "ARG/HPP/UNEP/TAS/REF/91/-/08"},
	}
	assert.Equal(t, "ARG/HPP/UNDP/INV/REF/91/-/07+2", GetMetaProjectNewCode(several))
}
