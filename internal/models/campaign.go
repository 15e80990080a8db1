package models

import "time"

// CampaignStatus represents the lifecycle of a vaccination campaign.
// Transitions happen outside this service; creation always starts upcoming.
type CampaignStatus string

// Possible campaign statuses.
const (
	CampaignStatusUpcoming  CampaignStatus = "upcoming"
	CampaignStatusActive    CampaignStatus = "active"
	CampaignStatusCompleted CampaignStatus = "completed"
)

// Campaign is a vaccination drive for one vaccine within a date window.
// Consent updates are only permitted inside [StartDate, EndDate].
type Campaign struct {
	ID          string         `db:"id" json:"id"`
	VaccineID   string         `db:"vaccine_id" json:"vaccine_id"`
	Description *string        `db:"description" json:"description,omitempty"`
	Location    *string        `db:"location" json:"location,omitempty"`
	StartDate   time.Time      `db:"start_date" json:"start_date"`
	EndDate     time.Time      `db:"end_date" json:"end_date"`
	Status      CampaignStatus `db:"status" json:"status"`
}
