package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/shm-health-api/internal/models"
)

// RegistrationRepository handles persistence of campaign registrations.
type RegistrationRepository struct {
	db *sqlx.DB
}

// NewRegistrationRepository constructs the repository.
func NewRegistrationRepository(db *sqlx.DB) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

// CreateBatch inserts the registrations inside one transaction. Rows that
// collide on (campaign_id, student_id) are skipped, so re-running the
// fan-out for a campaign never duplicates. Returns the rows actually
// inserted.
func (r *RegistrationRepository) CreateBatch(ctx context.Context, registrations []models.Registration) ([]models.Registration, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin registrations: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	const query = `INSERT INTO registrations (id, campaign_id, student_id, reason, confirmed)
        VALUES ($1, $2, $3, $4, $5)
        ON CONFLICT (campaign_id, student_id) DO NOTHING
        RETURNING id, campaign_id, student_id, reason, confirmed`
	created := make([]models.Registration, 0, len(registrations))
	for _, registration := range registrations {
		if registration.ID == "" {
			registration.ID = uuid.NewString()
		}
		var inserted models.Registration
		err := tx.GetContext(ctx, &inserted, query, registration.ID, registration.CampaignID, registration.StudentID, registration.Reason, registration.Confirmed)
		if err == sql.ErrNoRows {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("insert registration: %w", err)
		}
		created = append(created, inserted)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit registrations: %w", err)
	}
	return created, nil
}

// FindByID returns a registration by its ID.
func (r *RegistrationRepository) FindByID(ctx context.Context, id string) (*models.Registration, error) {
	const query = `SELECT id, campaign_id, student_id, reason, confirmed FROM registrations WHERE id = $1`
	var registration models.Registration
	if err := r.db.GetContext(ctx, &registration, query, id); err != nil {
		return nil, err
	}
	return &registration, nil
}

// UpdateConfirmed persists the consent flag and returns the updated row.
func (r *RegistrationRepository) UpdateConfirmed(ctx context.Context, id string, confirmed bool) (*models.Registration, error) {
	const query = `UPDATE registrations SET confirmed = $2 WHERE id = $1
        RETURNING id, campaign_id, student_id, reason, confirmed`
	var registration models.Registration
	if err := r.db.GetContext(ctx, &registration, query, id, confirmed); err != nil {
		return nil, err
	}
	return &registration, nil
}

// ListConfirmedByCampaign returns the confirmed registrations of a campaign.
func (r *RegistrationRepository) ListConfirmedByCampaign(ctx context.Context, campaignID string) ([]models.Registration, error) {
	const query = `SELECT id, campaign_id, student_id, reason, confirmed FROM registrations WHERE campaign_id = $1 AND confirmed = true`
	var registrations []models.Registration
	if err := r.db.SelectContext(ctx, &registrations, query, campaignID); err != nil {
		return nil, fmt.Errorf("list confirmed registrations: %w", err)
	}
	return registrations, nil
}
