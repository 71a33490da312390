package service

import (
	"fmt"
	"strconv"

	"fund-reporting-backend/internal/database/models"
)

// Code derivation. These functions are pure: they compose human-readable
// codes from relational attributes and never touch the database, so they are
// recomputed (and persisted by the caller) whenever a contributing field
// changes.

const codePlaceholder = "-"

// GetProjectSubCode composes the slash-delimited project code. Missing
// optional segments render as "-".
func GetProjectSubCode(country *models.Country, cluster *models.ProjectCluster, agency *models.Agency,
	projectType *models.ProjectType, sector *models.ProjectSector,
	meeting *models.Meeting, transferMeeting *models.Meeting, serialNumber int) string {

	segments := []string{
		countrySegment(country),
		clusterSegment(cluster),
		agencySegment(agency),
		typeSegment(projectType),
		sectorSegment(sector),
		meetingSegment(meeting),
		meetingSegment(transferMeeting),
		fmt.Sprintf("%02d", serialNumber),
	}

	code := segments[0]
	for _, s := range segments[1:] {
		code += "/" + s
	}
	return code
}

// GetMetaProjectCode composes the legacy-style 3-segment meta project code
func GetMetaProjectCode(country *models.Country, cluster *models.ProjectCluster, serialNumber int) string {
	return fmt.Sprintf("%s/%s/%02d", countrySegment(country), clusterSegment(cluster), serialNumber)
}

// GetMetaProjectNewCode reduces a membership list to the meta project's
// aggregate code: the lexicographically smallest member code is the
// representative, suffixed with the number of additional members.
func GetMetaProjectNewCode(projects []models.Project) string {
	if len(projects) == 0 {
		return ""
	}
	min := projects[0].Code
	for _, p := range projects[1:] {
		if p.Code < min {
			min = p.Code
		}
	}
	if len(projects) == 1 {
		return min
	}
	return min + "+" + strconv.Itoa(len(projects)-1)
}

func countrySegment(c *models.Country) string {
	if c == nil || c.Abbr == "" {
		return codePlaceholder
	}
	return c.Abbr
}

func clusterSegment(c *models.ProjectCluster) string {
	if c == nil || c.Code == "" {
		return codePlaceholder
	}
	return c.Code
}

func agencySegment(a *models.Agency) string {
	if a == nil || a.Acronym == "" {
		return codePlaceholder
	}
	return a.Acronym
}

func typeSegment(t *models.ProjectType) string {
	if t == nil || t.Code == "" {
		return codePlaceholder
	}
	return t.Code
}

func sectorSegment(s *models.ProjectSector) string {
	if s == nil || s.Code == "" {
		return codePlaceholder
	}
	return s.Code
}

func meetingSegment(m *models.Meeting) string {
	if m == nil {
		return codePlaceholder
	}
	return strconv.Itoa(m.Number)
}
