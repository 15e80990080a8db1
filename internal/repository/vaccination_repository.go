package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/shm-health-api/internal/models"
)

// VaccinationRepository handles pre-vaccination staging and vaccination
// records.
type VaccinationRepository struct {
	db *sqlx.DB
}

// NewVaccinationRepository constructs the repository.
func NewVaccinationRepository(db *sqlx.DB) *VaccinationRepository {
	return &VaccinationRepository{db: db}
}

// StageBatch inserts pending pre-vaccination records inside one transaction.
// Rows colliding on (student_id, campaign_id) are skipped. Returns the rows
// actually inserted.
func (r *VaccinationRepository) StageBatch(ctx context.Context, records []models.PreVaccinationRecord) ([]models.PreVaccinationRecord, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin staging: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	const query = `INSERT INTO pre_vaccination_records (student_id, campaign_id, status)
        VALUES ($1, $2, $3)
        ON CONFLICT (student_id, campaign_id) DO NOTHING
        RETURNING student_id, campaign_id, status`
	staged := make([]models.PreVaccinationRecord, 0, len(records))
	for _, record := range records {
		var inserted models.PreVaccinationRecord
		err := tx.GetContext(ctx, &inserted, query, record.StudentID, record.CampaignID, record.Status)
		if err == sql.ErrNoRows {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("insert pre-vaccination record: %w", err)
		}
		staged = append(staged, inserted)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit staging: %w", err)
	}
	return staged, nil
}

// CreateRecord persists a new vaccination record.
func (r *VaccinationRepository) CreateRecord(ctx context.Context, record *models.VaccinationRecord) error {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	const query = `INSERT INTO vaccination_records (id, student_id, registration_id, description, name, location,
        vaccination_date, status, campaign_id)
        VALUES (:id, :student_id, :registration_id, :description, :name, :location,
        :vaccination_date, :status, :campaign_id)`
	if _, err := r.db.NamedExecContext(ctx, query, record); err != nil {
		return fmt.Errorf("create vaccination record: %w", err)
	}
	return nil
}

// FindRecordByID returns a vaccination record by its ID.
func (r *VaccinationRepository) FindRecordByID(ctx context.Context, id string) (*models.VaccinationRecord, error) {
	const query = `SELECT id, student_id, registration_id, description, name, location, vaccination_date, status, campaign_id
        FROM vaccination_records WHERE id = $1`
	var record models.VaccinationRecord
	if err := r.db.GetContext(ctx, &record, query, id); err != nil {
		return nil, err
	}
	return &record, nil
}

// UpdateRecord applies a partial update: nil patch fields keep the stored
// values (COALESCE merge). Returns the updated row.
func (r *VaccinationRepository) UpdateRecord(ctx context.Context, id string, patch models.VaccinationRecordPatch) (*models.VaccinationRecord, error) {
	const query = `UPDATE vaccination_records
        SET registration_id = COALESCE($2, registration_id),
            description = COALESCE($3, description),
            name = COALESCE($4, name),
            location = COALESCE($5, location),
            vaccination_date = COALESCE($6, vaccination_date),
            status = COALESCE($7, status),
            campaign_id = COALESCE($8, campaign_id)
        WHERE id = $1
        RETURNING id, student_id, registration_id, description, name, location, vaccination_date, status, campaign_id`
	var record models.VaccinationRecord
	if err := r.db.GetContext(ctx, &record, query, id, patch.RegistrationID, patch.Description, patch.Name,
		patch.Location, patch.VaccinationDate, patch.Status, patch.CampaignID); err != nil {
		return nil, err
	}
	return &record, nil
}

// ListRecordsByStudent returns all vaccination records of a student.
func (r *VaccinationRepository) ListRecordsByStudent(ctx context.Context, studentID string) ([]models.VaccinationRecord, error) {
	const query = `SELECT id, student_id, registration_id, description, name, location, vaccination_date, status, campaign_id
        FROM vaccination_records WHERE student_id = $1 ORDER BY vaccination_date`
	var records []models.VaccinationRecord
	if err := r.db.SelectContext(ctx, &records, query, studentID); err != nil {
		return nil, fmt.Errorf("list vaccination records: %w", err)
	}
	return records, nil
}
