package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/shm-health-api/internal/models"
)

// DiseaseRecordRepository handles persistence of student illness records.
type DiseaseRecordRepository struct {
	db *sqlx.DB
}

// NewDiseaseRecordRepository constructs the repository.
func NewDiseaseRecordRepository(db *sqlx.DB) *DiseaseRecordRepository {
	return &DiseaseRecordRepository{db: db}
}

// Create persists a new disease record.
func (r *DiseaseRecordRepository) Create(ctx context.Context, record *models.DiseaseRecord) error {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	const query = `INSERT INTO disease_records (id, student_id, disease_id, detect_date, cure_date, location_cure,
        prescription, diagnosis, admission_date, discharge_date, cur_status, at_school)
        VALUES (:id, :student_id, :disease_id, :detect_date, :cure_date, :location_cure,
        :prescription, :diagnosis, :admission_date, :discharge_date, :cur_status, :at_school)`
	if _, err := r.db.NamedExecContext(ctx, query, record); err != nil {
		return fmt.Errorf("create disease record: %w", err)
	}
	return nil
}

// Update replaces the clinical fields of a record and returns the stored row.
// Absent fields overwrite with NULL, matching the replace semantics of the
// corresponding PUT endpoint.
func (r *DiseaseRecordRepository) Update(ctx context.Context, record *models.DiseaseRecord) (*models.DiseaseRecord, error) {
	const query = `UPDATE disease_records
        SET detect_date = $2, cure_date = $3, location_cure = $4, prescription = $5, diagnosis = $6,
            admission_date = $7, discharge_date = $8, cur_status = $9, at_school = $10
        WHERE id = $1
        RETURNING id, student_id, disease_id, detect_date, cure_date, location_cure,
            prescription, diagnosis, admission_date, discharge_date, cur_status, at_school`
	var updated models.DiseaseRecord
	if err := r.db.GetContext(ctx, &updated, query, record.ID, record.DetectDate, record.CureDate, record.LocationCure,
		record.Prescription, record.Diagnosis, record.AdmissionDate, record.DischargeDate, record.CurStatus, record.AtSchool); err != nil {
		return nil, err
	}
	return &updated, nil
}

// ListByStudent returns all disease records of a student.
func (r *DiseaseRecordRepository) ListByStudent(ctx context.Context, studentID string) ([]models.DiseaseRecord, error) {
	const query = `SELECT id, student_id, disease_id, detect_date, cure_date, location_cure,
        prescription, diagnosis, admission_date, discharge_date, cur_status, at_school
        FROM disease_records WHERE student_id = $1`
	var records []models.DiseaseRecord
	if err := r.db.SelectContext(ctx, &records, query, studentID); err != nil {
		return nil, fmt.Errorf("list disease records: %w", err)
	}
	return records, nil
}

// ListByStudentAndCategory returns a student's records joined with disease
// names, filtered by disease category.
func (r *DiseaseRecordRepository) ListByStudentAndCategory(ctx context.Context, studentID string, category models.DiseaseCategory) ([]models.DiseaseRecordDetail, error) {
	const query = `SELECT dr.id, dr.student_id, dr.disease_id, dr.detect_date, dr.cure_date, dr.location_cure,
        dr.prescription, dr.diagnosis, dr.admission_date, dr.discharge_date, dr.cur_status, dr.at_school,
        d.name AS disease_name
        FROM disease_records dr
        JOIN diseases d ON dr.disease_id = d.id
        WHERE dr.student_id = $1 AND d.category = $2`
	var records []models.DiseaseRecordDetail
	if err := r.db.SelectContext(ctx, &records, query, studentID, category); err != nil {
		return nil, fmt.Errorf("list disease records by category: %w", err)
	}
	return records, nil
}

// Delete removes a disease record and returns the deleted row.
func (r *DiseaseRecordRepository) Delete(ctx context.Context, id string) (*models.DiseaseRecord, error) {
	const query = `DELETE FROM disease_records WHERE id = $1
        RETURNING id, student_id, disease_id, detect_date, cure_date, location_cure,
            prescription, diagnosis, admission_date, discharge_date, cur_status, at_school`
	var deleted models.DiseaseRecord
	if err := r.db.GetContext(ctx, &deleted, query, id); err != nil {
		return nil, err
	}
	return &deleted, nil
}
