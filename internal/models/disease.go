package models

import "time"

// DiseaseCategory classifies a disease for record filtering.
type DiseaseCategory string

// Known disease categories.
const (
	DiseaseCategoryChronic    DiseaseCategory = "chronic"
	DiseaseCategoryInfectious DiseaseCategory = "infectious"
	DiseaseCategoryCommon     DiseaseCategory = "common"
)

// Valid reports whether the category is one of the known values.
func (c DiseaseCategory) Valid() bool {
	switch c {
	case DiseaseCategoryChronic, DiseaseCategoryInfectious, DiseaseCategoryCommon:
		return true
	}
	return false
}

// Disease is reference data describing an illness tracked by the school.
// DoseQuantity is the threshold used by campaign eligibility.
type Disease struct {
	ID            string           `db:"id" json:"id"`
	Category      *DiseaseCategory `db:"category" json:"category,omitempty"`
	Name          string           `db:"name" json:"name"`
	Description   *string          `db:"description" json:"description,omitempty"`
	VaccineNeeded bool             `db:"vaccine_needed" json:"vaccine_needed"`
	DoseQuantity  int              `db:"dose_quantity" json:"dose_quantity"`
}

// DiseaseRecord captures an illness episode of a student.
type DiseaseRecord struct {
	ID            string     `db:"id" json:"id"`
	StudentID     string     `db:"student_id" json:"student_id"`
	DiseaseID     string     `db:"disease_id" json:"disease_id"`
	DetectDate    time.Time  `db:"detect_date" json:"detect_date"`
	CureDate      *time.Time `db:"cure_date" json:"cure_date,omitempty"`
	LocationCure  *string    `db:"location_cure" json:"location_cure,omitempty"`
	Prescription  *string    `db:"prescription" json:"prescription,omitempty"`
	Diagnosis     *string    `db:"diagnosis" json:"diagnosis,omitempty"`
	AdmissionDate *time.Time `db:"admission_date" json:"admission_date,omitempty"`
	DischargeDate *time.Time `db:"discharge_date" json:"discharge_date,omitempty"`
	CurStatus     *string    `db:"cur_status" json:"cur_status,omitempty"`
	AtSchool      bool       `db:"at_school" json:"at_school"`
}

// DiseaseRecordDetail enriches DiseaseRecord with the disease name.
type DiseaseRecordDetail struct {
	DiseaseRecord
	DiseaseName string `db:"disease_name" json:"disease_name"`
}
