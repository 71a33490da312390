package models

import "github.com/google/uuid"

// MetaProject groups related projects sharing a country/cluster lineage,
// e.g. the phases and tranches of a multi-year agreement. Code uniqueness is
// soft: duplicates produce a warning, never an error.
type MetaProject struct {
	BaseModel
	Code         string          `json:"code" gorm:"size:64;index"`
	NewCode      string          `json:"new_code" gorm:"size:128"`
	Type         MetaProjectType `json:"type" gorm:"type:varchar(20);default:'individual'"`
	LeadAgencyID *uuid.UUID      `json:"lead_agency_id" gorm:"type:uuid"`

	LeadAgency *Agency   `json:"lead_agency,omitempty" gorm:"foreignKey:LeadAgencyID"`
	Projects   []Project `json:"projects,omitempty" gorm:"foreignKey:MetaProjectID"`
}

// TableName returns the table name for MetaProject
func (MetaProject) TableName() string {
	return "meta_projects"
}

// ComponentGroup marks a set of sibling projects submitted together (e.g. a
// multi-agency split). State-changing actions on one member propagate to all.
type ComponentGroup struct {
	BaseModel
	Projects []Project `json:"projects,omitempty" gorm:"foreignKey:ComponentID"`
}

// TableName returns the table name for ComponentGroup
func (ComponentGroup) TableName() string {
	return "component_groups"
}
