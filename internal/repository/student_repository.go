package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/shm-health-api/internal/models"
)

// StudentRepository reads student reference data.
type StudentRepository struct {
	db *sqlx.DB
}

// NewStudentRepository constructs the repository.
func NewStudentRepository(db *sqlx.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// FindByID returns a student by its ID.
func (r *StudentRepository) FindByID(ctx context.Context, id string) (*models.Student, error) {
	const query = `SELECT id, nis, full_name, gender, birth_date, active FROM students WHERE id = $1`
	var student models.Student
	if err := r.db.GetContext(ctx, &student, query, id); err != nil {
		return nil, err
	}
	return &student, nil
}

// ListEligibleByDiseaseName returns students whose count of vaccination
// records matching the disease name is below the required dose quantity.
// The join is by record name, not disease id, matching the stored contract.
func (r *StudentRepository) ListEligibleByDiseaseName(ctx context.Context, diseaseName string, doseQuantity int) ([]models.EligibleStudent, error) {
	const query = `SELECT s.id AS student_id, COUNT(vr.id) AS dose_received
        FROM students s
        LEFT JOIN vaccination_records vr ON vr.student_id = s.id AND vr.name = $1
        GROUP BY s.id
        HAVING COUNT(vr.id) < $2
        ORDER BY s.id`
	var students []models.EligibleStudent
	if err := r.db.SelectContext(ctx, &students, query, diseaseName, doseQuantity); err != nil {
		return nil, fmt.Errorf("list eligible students: %w", err)
	}
	return students, nil
}
