package models

import "time"

// PreVaccinationStatus is the state of a staged clinical record.
type PreVaccinationStatus string

// Possible pre-vaccination statuses.
const (
	PreVaccinationStatusPending   PreVaccinationStatus = "pending"
	PreVaccinationStatusCompleted PreVaccinationStatus = "completed"
)

// PreVaccinationRecord is a staged, pending clinical record created from a
// confirmed registration prior to dose administration. At most one exists
// per (student, campaign).
type PreVaccinationRecord struct {
	StudentID  string               `db:"student_id" json:"student_id"`
	CampaignID string               `db:"campaign_id" json:"campaign_id"`
	Status     PreVaccinationStatus `db:"status" json:"status"`
}

// VaccinationRecord is the durable record of an administered dose.
// Eligibility counts these rows by Name against the disease name.
type VaccinationRecord struct {
	ID              string    `db:"id" json:"id"`
	StudentID       string    `db:"student_id" json:"student_id"`
	RegistrationID  *string   `db:"registration_id" json:"registration_id,omitempty"`
	Description     *string   `db:"description" json:"description,omitempty"`
	Name            string    `db:"name" json:"name"`
	Location        *string   `db:"location" json:"location,omitempty"`
	VaccinationDate time.Time `db:"vaccination_date" json:"vaccination_date"`
	Status          string    `db:"status" json:"status"`
	CampaignID      *string   `db:"campaign_id" json:"campaign_id,omitempty"`
}

// VaccinationRecordPatch carries a partial update. Nil fields leave the
// stored values unchanged.
type VaccinationRecordPatch struct {
	RegistrationID  *string    `json:"registration_id"`
	Description     *string    `json:"description"`
	Name            *string    `json:"name"`
	Location        *string    `json:"location"`
	VaccinationDate *time.Time `json:"vaccination_date"`
	Status          *string    `json:"status"`
	CampaignID      *string    `json:"campaign_id"`
}
