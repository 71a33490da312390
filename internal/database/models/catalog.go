package models

import "github.com/google/uuid"

// Catalog entities are reference data imported from the legacy system and
// consulted read-only by the workflow core.

// Country represents an Article 5 (or non-A5) party
type Country struct {
	BaseModel
	Name     string `json:"name" gorm:"not null;size:100;uniqueIndex"`
	Abbr     string `json:"abbr" gorm:"not null;size:10"` // code segment, e.g. "ARG"
	ISO3     string `json:"iso3" gorm:"size:3"`
	IsLVC    bool   `json:"is_lvc"`
	IsActive bool   `json:"is_active" gorm:"default:true"`
}

func (Country) TableName() string { return "countries" }

// Agency represents an implementing or bilateral agency
type Agency struct {
	BaseModel
	Name    string `json:"name" gorm:"not null;size:100;uniqueIndex"`
	Acronym string `json:"acronym" gorm:"not null;size:20"`
}

func (Agency) TableName() string { return "agencies" }

// ProjectCluster groups projects by phase-out programme (e.g. HCFC, HFC)
type ProjectCluster struct {
	BaseModel
	Name      string `json:"name" gorm:"not null;size:100"`
	Code      string `json:"code" gorm:"not null;size:20;uniqueIndex"`
	Category  string `json:"category" gorm:"size:50"`
	SortOrder int    `json:"sort_order" gorm:"default:0"`
}

func (ProjectCluster) TableName() string { return "project_clusters" }

// ProjectType classifies the intervention (INV, PRP, TAS, ...)
type ProjectType struct {
	BaseModel
	Name      string `json:"name" gorm:"not null;size:100"`
	Code      string `json:"code" gorm:"not null;size:20;uniqueIndex"`
	SortOrder int    `json:"sort_order" gorm:"default:0"`
}

func (ProjectType) TableName() string { return "project_types" }

// ProjectSector is the consumption/production sector of an intervention
type ProjectSector struct {
	BaseModel
	Name      string `json:"name" gorm:"not null;size:100"`
	Code      string `json:"code" gorm:"not null;size:20;uniqueIndex"`
	SortOrder int    `json:"sort_order" gorm:"default:0"`
}

func (ProjectSector) TableName() string { return "project_sectors" }

// ProjectSubSector refines a sector
type ProjectSubSector struct {
	BaseModel
	SectorID  *uuid.UUID `json:"sector_id" gorm:"type:uuid;index"`
	Name      string     `json:"name" gorm:"not null;size:100"`
	Code      string     `json:"code" gorm:"not null;size:20"`
	SortOrder int        `json:"sort_order" gorm:"default:0"`

	Sector *ProjectSector `json:"sector,omitempty" gorm:"foreignKey:SectorID"`
}

func (ProjectSubSector) TableName() string { return "project_subsectors" }

// Meeting represents an Executive Committee meeting
type Meeting struct {
	BaseModel
	Number int    `json:"number" gorm:"not null;uniqueIndex"`
	Title  string `json:"title" gorm:"size:200"`
}

func (Meeting) TableName() string { return "meetings" }

// Decision represents an Executive Committee decision taken at a meeting
type Decision struct {
	BaseModel
	MeetingID *uuid.UUID `json:"meeting_id" gorm:"type:uuid;index"`
	Number    string     `json:"number" gorm:"not null;size:30"`
	Title     string     `json:"title" gorm:"size:250"`

	Meeting *Meeting `json:"meeting,omitempty" gorm:"foreignKey:MeetingID"`
}

func (Decision) TableName() string { return "decisions" }

// OdsSubstance is a controlled ozone-depleting substance
type OdsSubstance struct {
	BaseModel
	Name    string  `json:"name" gorm:"not null;size:100;uniqueIndex"`
	OdpRate float64 `json:"odp_rate"`
	GwpRate float64 `json:"gwp_rate"`
}

func (OdsSubstance) TableName() string { return "ods_substances" }

// OdsBlend is a commercial blend of controlled substances
type OdsBlend struct {
	BaseModel
	Name        string `json:"name" gorm:"not null;size:100;uniqueIndex"`
	Composition string `json:"composition" gorm:"size:250"`
}

func (OdsBlend) TableName() string { return "ods_blends" }
