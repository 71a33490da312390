package models

import "github.com/google/uuid"

// ProjectField describes one configurable reporting field. WriteFieldName is
// the key looked up in the accessor registry at validation time; Table says
// whether the field lives on the project row or on its ods_odp rows.
type ProjectField struct {
	BaseModel
	Name           string       `json:"name" gorm:"not null;size:100"`
	Label          string       `json:"label" gorm:"size:150"`
	Table          string       `json:"table" gorm:"column:table_name;not null;size:30"`
	Section        FieldSection `json:"section" gorm:"type:varchar(30)"`
	WriteFieldName string       `json:"write_field_name" gorm:"not null;size:100"`
	ReadFieldName  string       `json:"read_field_name" gorm:"size:100"`
	DataType       string       `json:"data_type" gorm:"size:30"`
	IsActual       bool         `json:"is_actual" gorm:"default:false"`
	SortOrder      int          `json:"sort_order" gorm:"default:0"`
}

// TableName returns the table name for ProjectField
func (ProjectField) TableName() string {
	return "project_fields"
}

// ProjectSpecificFields maps a (cluster, project type, sector) combination to
// the set of fields reported for projects of that shape. Configuration data
// only; never mutated by the workflow.
type ProjectSpecificFields struct {
	BaseModel
	ClusterID     uuid.UUID `json:"cluster_id" gorm:"type:uuid;not null;index:idx_psf_key,unique"`
	ProjectTypeID uuid.UUID `json:"project_type_id" gorm:"type:uuid;not null;index:idx_psf_key,unique"`
	SectorID      uuid.UUID `json:"sector_id" gorm:"type:uuid;not null;index:idx_psf_key,unique"`

	Fields []ProjectField `json:"fields,omitempty" gorm:"many2many:project_specific_fields_fields"`
}

// TableName returns the table name for ProjectSpecificFields
func (ProjectSpecificFields) TableName() string {
	return "project_specific_fields"
}

// ActualFields returns the subset of fields flagged as post-approval indicators
func (c *ProjectSpecificFields) ActualFields() []ProjectField {
	var out []ProjectField
	for _, f := range c.Fields {
		if f.IsActual {
			out = append(out, f)
		}
	}
	return out
}

// SubmissionFields returns the non-actual fields of the sections checked at
// submission time (Header, Substance Details, Impact)
func (c *ProjectSpecificFields) SubmissionFields() []ProjectField {
	var out []ProjectField
	for _, f := range c.Fields {
		if f.IsActual {
			continue
		}
		switch f.Section {
		case FieldSectionHeader, FieldSectionSubstanceDetails, FieldSectionImpact:
			out = append(out, f)
		}
	}
	return out
}
