package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/shm-health-api/internal/models"
)

// VaccineRepository handles persistence of vaccines.
type VaccineRepository struct {
	db *sqlx.DB
}

// NewVaccineRepository constructs the repository.
func NewVaccineRepository(db *sqlx.DB) *VaccineRepository {
	return &VaccineRepository{db: db}
}

// FindByID returns a vaccine by its ID.
func (r *VaccineRepository) FindByID(ctx context.Context, id string) (*models.Vaccine, error) {
	const query = `SELECT id, name, description, disease_id FROM vaccines WHERE id = $1`
	var vaccine models.Vaccine
	if err := r.db.GetContext(ctx, &vaccine, query, id); err != nil {
		return nil, err
	}
	return &vaccine, nil
}

// ExistsByName checks whether a vaccine with the exact name exists.
func (r *VaccineRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	const query = `SELECT 1 FROM vaccines WHERE name = $1 LIMIT 1`
	var exists int
	if err := r.db.GetContext(ctx, &exists, query, name); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check vaccine name: %w", err)
	}
	return true, nil
}

// Create persists a new vaccine.
func (r *VaccineRepository) Create(ctx context.Context, vaccine *models.Vaccine) error {
	if vaccine.ID == "" {
		vaccine.ID = uuid.NewString()
	}
	const query = `INSERT INTO vaccines (id, name, description, disease_id)
        VALUES (:id, :name, :description, :disease_id)`
	if _, err := r.db.NamedExecContext(ctx, query, vaccine); err != nil {
		return fmt.Errorf("create vaccine: %w", err)
	}
	return nil
}
