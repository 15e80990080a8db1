package models

// Registration is one eligible student's slot in a campaign. Created by the
// fan-out, mutated only by the consent flip.
type Registration struct {
	ID         string `db:"id" json:"id"`
	CampaignID string `db:"campaign_id" json:"campaign_id"`
	StudentID  string `db:"student_id" json:"student_id"`
	Reason     string `db:"reason" json:"reason"`
	Confirmed  bool   `db:"confirmed" json:"confirmed"`
}

// EligibleStudent is one row of the eligibility computation: a student whose
// received dose count is below the disease's required quantity.
type EligibleStudent struct {
	StudentID    string `db:"student_id" json:"student_id"`
	DoseReceived int    `db:"dose_received" json:"dose_received"`
}
