package models

// Vaccine is reference data linking a product to the disease it targets.
// DiseaseID is derived from the description text, never supplied directly.
type Vaccine struct {
	ID          string `db:"id" json:"id"`
	Name        string `db:"name" json:"name"`
	Description string `db:"description" json:"description"`
	DiseaseID   string `db:"disease_id" json:"disease_id"`
}
