package service

import (
	"context"
	"database/sql"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/shm-health-api/internal/models"
	appErrors "github.com/noah-isme/shm-health-api/pkg/errors"
)

type diseaseRepository interface {
	Create(ctx context.Context, disease *models.Disease) error
	List(ctx context.Context) ([]models.Disease, error)
	FindByID(ctx context.Context, id string) (*models.Disease, error)
	Update(ctx context.Context, disease *models.Disease) (*models.Disease, error)
	Delete(ctx context.Context, id string) (*models.Disease, error)
}

type diseaseRecordRepository interface {
	Create(ctx context.Context, record *models.DiseaseRecord) error
	Update(ctx context.Context, record *models.DiseaseRecord) (*models.DiseaseRecord, error)
	ListByStudent(ctx context.Context, studentID string) ([]models.DiseaseRecord, error)
	ListByStudentAndCategory(ctx context.Context, studentID string, category models.DiseaseCategory) ([]models.DiseaseRecordDetail, error)
	Delete(ctx context.Context, id string) (*models.DiseaseRecord, error)
}

// DiseaseRequest describes disease create and update payloads.
type DiseaseRequest struct {
	Category      *models.DiseaseCategory `json:"category"`
	Name          string                  `json:"name" validate:"required"`
	Description   *string                 `json:"description"`
	VaccineNeeded *bool                   `json:"vaccineNeeded" validate:"required"`
	DoseQuantity  *int                    `json:"doseQuantity" validate:"required,gte=0"`
}

// DiseaseRecordRequest describes disease-record create and update payloads.
type DiseaseRecordRequest struct {
	StudentID     string  `json:"studentId" validate:"required"`
	DiseaseID     string  `json:"diseaseId" validate:"required"`
	DetectDate    string  `json:"detectDate" validate:"required"`
	CureDate      *string `json:"cureDate"`
	LocationCure  *string `json:"locationCure"`
	Prescription  *string `json:"prescription"`
	Diagnosis     *string `json:"diagnosis"`
	AdmissionDate *string `json:"admissionDate"`
	DischargeDate *string `json:"dischargeDate"`
	CurStatus     *string `json:"curStatus"`
	AtSchool      bool    `json:"atSchool"`
}

// DiseaseService owns disease reference data and student illness records.
type DiseaseService struct {
	diseases  diseaseRepository
	records   diseaseRecordRepository
	students  studentReader
	validator *validator.Validate
	logger    *zap.Logger
}

// NewDiseaseService constructs DiseaseService.
func NewDiseaseService(diseases diseaseRepository, records diseaseRecordRepository, students studentReader,
	validate *validator.Validate, logger *zap.Logger) *DiseaseService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DiseaseService{diseases: diseases, records: records, students: students, validator: validate, logger: logger}
}

// CreateDisease persists a new disease.
func (s *DiseaseService) CreateDisease(ctx context.Context, req DiseaseRequest) (*models.Disease, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "missing required fields")
	}
	if req.Category != nil && !req.Category.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid disease category")
	}
	disease := &models.Disease{
		Category:      req.Category,
		Name:          req.Name,
		Description:   req.Description,
		VaccineNeeded: *req.VaccineNeeded,
		DoseQuantity:  *req.DoseQuantity,
	}
	if err := s.diseases.Create(ctx, disease); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create disease")
	}
	s.logger.Sugar().Infow("disease created", "disease_id", disease.ID, "name", disease.Name)
	return disease, nil
}

// ListDiseases returns all diseases.
func (s *DiseaseService) ListDiseases(ctx context.Context) ([]models.Disease, error) {
	diseases, err := s.diseases.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list diseases")
	}
	return diseases, nil
}

// UpdateDisease replaces all mutable fields of a disease.
func (s *DiseaseService) UpdateDisease(ctx context.Context, id string, req DiseaseRequest) (*models.Disease, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "missing required fields")
	}
	if req.Category != nil && !req.Category.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid disease category")
	}
	updated, err := s.diseases.Update(ctx, &models.Disease{
		ID:            id,
		Category:      req.Category,
		Name:          req.Name,
		Description:   req.Description,
		VaccineNeeded: *req.VaccineNeeded,
		DoseQuantity:  *req.DoseQuantity,
	})
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "disease not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update disease")
	}
	return updated, nil
}

// DeleteDisease removes a disease.
func (s *DiseaseService) DeleteDisease(ctx context.Context, id string) (*models.Disease, error) {
	deleted, err := s.diseases.Delete(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "disease not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete disease")
	}
	return deleted, nil
}

// CreateDiseaseRecord persists an illness record for an existing student and
// disease.
func (s *DiseaseService) CreateDiseaseRecord(ctx context.Context, req DiseaseRecordRequest) (*models.DiseaseRecord, error) {
	record, err := s.buildRecord(req)
	if err != nil {
		return nil, err
	}
	if _, err := s.students.FindByID(ctx, req.StudentID); err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load student")
	}
	if _, err := s.diseases.FindByID(ctx, req.DiseaseID); err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "disease not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load disease")
	}
	if err := s.records.Create(ctx, record); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create disease record")
	}
	s.logger.Sugar().Infow("disease record created", "record_id", record.ID, "student_id", record.StudentID)
	return record, nil
}

// UpdateDiseaseRecord replaces the clinical fields of a record. Absent
// optional fields clear the stored values.
func (s *DiseaseService) UpdateDiseaseRecord(ctx context.Context, id string, req DiseaseRecordRequest) (*models.DiseaseRecord, error) {
	record, err := s.buildRecord(req)
	if err != nil {
		return nil, err
	}
	record.ID = id
	updated, err := s.records.Update(ctx, record)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "disease record not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update disease record")
	}
	return updated, nil
}

// ListDiseaseRecords returns all illness records of a student.
func (s *DiseaseService) ListDiseaseRecords(ctx context.Context, studentID string) ([]models.DiseaseRecord, error) {
	records, err := s.records.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list disease records")
	}
	return records, nil
}

// ListDiseaseRecordsByCategory filters a student's records by disease
// category.
func (s *DiseaseService) ListDiseaseRecordsByCategory(ctx context.Context, studentID, category string) ([]models.DiseaseRecordDetail, error) {
	cat := models.DiseaseCategory(category)
	if !cat.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid disease category")
	}
	records, err := s.records.ListByStudentAndCategory(ctx, studentID, cat)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list disease records")
	}
	return records, nil
}

// DeleteDiseaseRecord removes an illness record.
func (s *DiseaseService) DeleteDiseaseRecord(ctx context.Context, id string) (*models.DiseaseRecord, error) {
	deleted, err := s.records.Delete(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "disease record not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete disease record")
	}
	return deleted, nil
}

func (s *DiseaseService) buildRecord(req DiseaseRecordRequest) (*models.DiseaseRecord, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "missing required fields")
	}
	detectDate, err := parseDate(req.DetectDate)
	if err != nil {
		return nil, err
	}
	cureDate, err := parseOptionalDate(req.CureDate)
	if err != nil {
		return nil, err
	}
	admissionDate, err := parseOptionalDate(req.AdmissionDate)
	if err != nil {
		return nil, err
	}
	dischargeDate, err := parseOptionalDate(req.DischargeDate)
	if err != nil {
		return nil, err
	}
	return &models.DiseaseRecord{
		StudentID:     req.StudentID,
		DiseaseID:     req.DiseaseID,
		DetectDate:    detectDate,
		CureDate:      cureDate,
		LocationCure:  req.LocationCure,
		Prescription:  req.Prescription,
		Diagnosis:     req.Diagnosis,
		AdmissionDate: admissionDate,
		DischargeDate: dischargeDate,
		CurStatus:     req.CurStatus,
		AtSchool:      req.AtSchool,
	}, nil
}
