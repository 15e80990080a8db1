package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/shm-health-api/internal/models"
)

// DiseaseRepository handles persistence of diseases.
type DiseaseRepository struct {
	db *sqlx.DB
}

// NewDiseaseRepository constructs the repository.
func NewDiseaseRepository(db *sqlx.DB) *DiseaseRepository {
	return &DiseaseRepository{db: db}
}

// Create persists a new disease.
func (r *DiseaseRepository) Create(ctx context.Context, disease *models.Disease) error {
	if disease.ID == "" {
		disease.ID = uuid.NewString()
	}
	const query = `INSERT INTO diseases (id, category, name, description, vaccine_needed, dose_quantity)
        VALUES (:id, :category, :name, :description, :vaccine_needed, :dose_quantity)`
	if _, err := r.db.NamedExecContext(ctx, query, disease); err != nil {
		return fmt.Errorf("create disease: %w", err)
	}
	return nil
}

// List returns all diseases ordered by id.
func (r *DiseaseRepository) List(ctx context.Context) ([]models.Disease, error) {
	const query = `SELECT id, category, name, description, vaccine_needed, dose_quantity FROM diseases ORDER BY id`
	var diseases []models.Disease
	if err := r.db.SelectContext(ctx, &diseases, query); err != nil {
		return nil, fmt.Errorf("list diseases: %w", err)
	}
	return diseases, nil
}

// FindByID returns a disease by its ID.
func (r *DiseaseRepository) FindByID(ctx context.Context, id string) (*models.Disease, error) {
	const query = `SELECT id, category, name, description, vaccine_needed, dose_quantity FROM diseases WHERE id = $1`
	var disease models.Disease
	if err := r.db.GetContext(ctx, &disease, query, id); err != nil {
		return nil, err
	}
	return &disease, nil
}

// FindByName returns a disease matching the exact name.
func (r *DiseaseRepository) FindByName(ctx context.Context, name string) (*models.Disease, error) {
	const query = `SELECT id, category, name, description, vaccine_needed, dose_quantity FROM diseases WHERE name = $1`
	var disease models.Disease
	if err := r.db.GetContext(ctx, &disease, query, name); err != nil {
		return nil, err
	}
	return &disease, nil
}

// Update replaces all mutable fields and returns the stored row.
func (r *DiseaseRepository) Update(ctx context.Context, disease *models.Disease) (*models.Disease, error) {
	const query = `UPDATE diseases
        SET category = $2, name = $3, description = $4, vaccine_needed = $5, dose_quantity = $6
        WHERE id = $1
        RETURNING id, category, name, description, vaccine_needed, dose_quantity`
	var updated models.Disease
	if err := r.db.GetContext(ctx, &updated, query, disease.ID, disease.Category, disease.Name, disease.Description, disease.VaccineNeeded, disease.DoseQuantity); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a disease and returns the deleted row.
func (r *DiseaseRepository) Delete(ctx context.Context, id string) (*models.Disease, error) {
	const query = `DELETE FROM diseases WHERE id = $1
        RETURNING id, category, name, description, vaccine_needed, dose_quantity`
	var deleted models.Disease
	if err := r.db.GetContext(ctx, &deleted, query, id); err != nil {
		return nil, err
	}
	return &deleted, nil
}
