package main

import (
	"fmt"
	"log"

	"fund-reporting-backend/internal/config"
	"fund-reporting-backend/internal/database"
	"fund-reporting-backend/internal/database/models"
	"fund-reporting-backend/internal/service"

	"gorm.io/gorm"
)

// Seeds the catalog tables and a demo field configuration. Idempotent:
// existing rows (matched on their natural keys) are left alone, so the script
// can run against a database that already carries data.

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	if err := seedCountries(db); err != nil {
		log.Fatalf("seeding countries: %v", err)
	}
	if err := seedAgencies(db); err != nil {
		log.Fatalf("seeding agencies: %v", err)
	}
	if err := seedClusters(db); err != nil {
		log.Fatalf("seeding clusters: %v", err)
	}
	if err := seedTypes(db); err != nil {
		log.Fatalf("seeding project types: %v", err)
	}
	if err := seedSectors(db); err != nil {
		log.Fatalf("seeding sectors: %v", err)
	}
	if err := seedMeetings(db); err != nil {
		log.Fatalf("seeding meetings: %v", err)
	}
	if err := seedSubstances(db); err != nil {
		log.Fatalf("seeding substances: %v", err)
	}
	if err := seedFieldConfiguration(db); err != nil {
		log.Fatalf("seeding field configuration: %v", err)
	}

	log.Println("Reference data loaded")
}

func seedCountries(db *gorm.DB) error {
	countries := []models.Country{
		{Name: "Argentina", Abbr: "ARG", ISO3: "ARG"},
		{Name: "Brazil", Abbr: "BRA", ISO3: "BRA"},
		{Name: "China", Abbr: "CPR", ISO3: "CHN"},
		{Name: "India", Abbr: "IND", ISO3: "IND"},
		{Name: "Kenya", Abbr: "KEN", ISO3: "KEN", IsLVC: true},
		{Name: "Maldives", Abbr: "MDV", ISO3: "MDV", IsLVC: true},
	}
	for i := range countries {
		countries[i].IsActive = true
		if err := db.Where("name = ?", countries[i].Name).
			FirstOrCreate(&countries[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedAgencies(db *gorm.DB) error {
	agencies := []models.Agency{
		{Name: "United Nations Development Programme", Acronym: "UNDP"},
		{Name: "United Nations Environment Programme", Acronym: "UNEP"},
		{Name: "United Nations Industrial Development Organization", Acronym: "UNIDO"},
		{Name: "World Bank", Acronym: "IBRD"},
	}
	for i := range agencies {
		if err := db.Where("name = ?", agencies[i].Name).
			FirstOrCreate(&agencies[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedClusters(db *gorm.DB) error {
	clusters := []models.ProjectCluster{
		{Name: "HCFC Phase-out Plan", Code: "HPP", Category: "HCFC"},
		{Name: "Kigali HFC Implementation Plan", Code: "KIP", Category: "HFC"},
		{Name: "Institutional Strengthening", Code: "INS", Category: "Other"},
	}
	for i := range clusters {
		if err := db.Where("code = ?", clusters[i].Code).
			FirstOrCreate(&clusters[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedTypes(db *gorm.DB) error {
	types := []models.ProjectType{
		{Name: "Investment", Code: "INV"},
		{Name: "Project Preparation", Code: "PRP"},
		{Name: "Technical Assistance", Code: "TAS"},
	}
	for i := range types {
		if err := db.Where("code = ?", types[i].Code).
			FirstOrCreate(&types[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedSectors(db *gorm.DB) error {
	sectors := []models.ProjectSector{
		{Name: "Refrigeration", Code: "REF"},
		{Name: "Foam", Code: "FOA"},
		{Name: "Solvent", Code: "SOL"},
	}
	for i := range sectors {
		if err := db.Where("code = ?", sectors[i].Code).
			FirstOrCreate(&sectors[i]).Error; err != nil {
			return err
		}
		subs := []models.ProjectSubSector{
			{SectorID: &sectors[i].ID, Name: sectors[i].Name + " - Manufacturing", Code: sectors[i].Code + "M"},
			{SectorID: &sectors[i].ID, Name: sectors[i].Name + " - Servicing", Code: sectors[i].Code + "S"},
		}
		for j := range subs {
			if err := db.Where("code = ?", subs[j].Code).
				FirstOrCreate(&subs[j]).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

func seedMeetings(db *gorm.DB) error {
	for number := 90; number <= 94; number++ {
		meeting := models.Meeting{Number: number, Title: fmt.Sprintf("%dth Meeting of the Executive Committee", number)}
		if err := db.Where("number = ?", number).
			FirstOrCreate(&meeting).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedSubstances(db *gorm.DB) error {
	substances := []models.OdsSubstance{
		{Name: "HCFC-22", OdpRate: 0.055, GwpRate: 1810},
		{Name: "HCFC-141b", OdpRate: 0.11, GwpRate: 725},
		{Name: "HFC-134a", OdpRate: 0, GwpRate: 1430},
	}
	for i := range substances {
		if err := db.Where("name = ?", substances[i].Name).
			FirstOrCreate(&substances[i]).Error; err != nil {
			return err
		}
	}
	blend := models.OdsBlend{Name: "R-410A", Composition: "HFC-32 (50%), HFC-125 (50%)"}
	return db.Where("name = ?", blend.Name).FirstOrCreate(&blend).Error
}

// seedFieldConfiguration creates a demo per-shape field configuration for
// (HPP, INV, REF) so the submission validator has something to consult
func seedFieldConfiguration(db *gorm.DB) error {
	var cluster models.ProjectCluster
	if err := db.First(&cluster, "code = ?", "HPP").Error; err != nil {
		return err
	}
	var projectType models.ProjectType
	if err := db.First(&projectType, "code = ?", "INV").Error; err != nil {
		return err
	}
	var sector models.ProjectSector
	if err := db.First(&sector, "code = ?", "REF").Error; err != nil {
		return err
	}

	var existing models.ProjectSpecificFields
	err := db.First(&existing, "cluster_id = ? AND project_type_id = ? AND sector_id = ?",
		cluster.ID, projectType.ID, sector.ID).Error
	if err == nil {
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}

	fields := []models.ProjectField{
		{Name: "Tranche", Label: "Tranche", Table: models.FieldTableProject,
			Section: models.FieldSectionHeader, WriteFieldName: "tranche",
			ReadFieldName: "tranche", DataType: "int", SortOrder: 1},
		{Name: "Substance name", Label: "Substance", Table: models.FieldTableOdsOdp,
			Section: models.FieldSectionSubstanceDetails, WriteFieldName: "ods_display_name",
			ReadFieldName: "ods_display_name", DataType: "string", SortOrder: 2},
		{Name: "ODP amount", Label: "ODP tonnes", Table: models.FieldTableOdsOdp,
			Section: models.FieldSectionSubstanceDetails, WriteFieldName: "odp_amount",
			ReadFieldName: "odp_amount", DataType: "float", SortOrder: 3},
		{Name: "Planned completion", Label: "Date of completion", Table: models.FieldTableProject,
			Section: models.FieldSectionImpact, WriteFieldName: "date_completion",
			ReadFieldName: "date_completion", DataType: "date", SortOrder: 4},
		{Name: "Funds disbursed", Label: "Funds disbursed", Table: models.FieldTableProject,
			Section: models.FieldSectionImpactActual, WriteFieldName: "funds_disbursed",
			ReadFieldName: "funds_disbursed", DataType: "float", IsActual: true, SortOrder: 5},
		{Name: "Actual phase out", Label: "Phase out (actual)", Table: models.FieldTableProject,
			Section: models.FieldSectionImpactActual, WriteFieldName: "phase_out_actual",
			ReadFieldName: "phase_out_actual", DataType: "float", IsActual: true, SortOrder: 6},
	}

	for _, field := range fields {
		if field.Table == models.FieldTableProject && !service.KnownProjectField(field.WriteFieldName) {
			return fmt.Errorf("field %q does not resolve on the project table", field.WriteFieldName)
		}
	}

	cfg := models.ProjectSpecificFields{
		ClusterID:     cluster.ID,
		ProjectTypeID: projectType.ID,
		SectorID:      sector.ID,
		Fields:        fields,
	}
	return db.Create(&cfg).Error
}
