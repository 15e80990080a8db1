package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/shm-health-api/internal/models"
)

// CampaignRepository handles persistence of vaccination campaigns.
type CampaignRepository struct {
	db *sqlx.DB
}

// NewCampaignRepository constructs the repository.
func NewCampaignRepository(db *sqlx.DB) *CampaignRepository {
	return &CampaignRepository{db: db}
}

// FindByID returns a campaign by its ID.
func (r *CampaignRepository) FindByID(ctx context.Context, id string) (*models.Campaign, error) {
	const query = `SELECT id, vaccine_id, description, location, start_date, end_date, status FROM campaigns WHERE id = $1`
	var campaign models.Campaign
	if err := r.db.GetContext(ctx, &campaign, query, id); err != nil {
		return nil, err
	}
	return &campaign, nil
}

// List returns all campaigns ordered by start date.
func (r *CampaignRepository) List(ctx context.Context) ([]models.Campaign, error) {
	const query = `SELECT id, vaccine_id, description, location, start_date, end_date, status FROM campaigns ORDER BY start_date`
	var campaigns []models.Campaign
	if err := r.db.SelectContext(ctx, &campaigns, query); err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	return campaigns, nil
}

// ExistsOverlapping checks for a campaign of the same vaccine whose date
// range intersects [start, end], bounds inclusive.
func (r *CampaignRepository) ExistsOverlapping(ctx context.Context, vaccineID string, start, end time.Time) (bool, error) {
	const query = `SELECT 1 FROM campaigns WHERE vaccine_id = $1 AND start_date <= $3 AND end_date >= $2 LIMIT 1`
	var exists int
	if err := r.db.GetContext(ctx, &exists, query, vaccineID, start, end); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check campaign overlap: %w", err)
	}
	return true, nil
}

// Create persists a new campaign.
func (r *CampaignRepository) Create(ctx context.Context, campaign *models.Campaign) error {
	if campaign.ID == "" {
		campaign.ID = uuid.NewString()
	}
	if campaign.Status == "" {
		campaign.Status = models.CampaignStatusUpcoming
	}
	const query = `INSERT INTO campaigns (id, vaccine_id, description, location, start_date, end_date, status)
        VALUES (:id, :vaccine_id, :description, :location, :start_date, :end_date, :status)`
	if _, err := r.db.NamedExecContext(ctx, query, campaign); err != nil {
		return fmt.Errorf("create campaign: %w", err)
	}
	return nil
}
