package service

import (
	"context"
	"database/sql"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/shm-health-api/internal/models"
	appErrors "github.com/noah-isme/shm-health-api/pkg/errors"
)

type vaccinationRepository interface {
	CreateRecord(ctx context.Context, record *models.VaccinationRecord) error
	FindRecordByID(ctx context.Context, id string) (*models.VaccinationRecord, error)
	UpdateRecord(ctx context.Context, id string, patch models.VaccinationRecordPatch) (*models.VaccinationRecord, error)
	ListRecordsByStudent(ctx context.Context, studentID string) ([]models.VaccinationRecord, error)
}

type studentReader interface {
	FindByID(ctx context.Context, id string) (*models.Student, error)
}

type eligibilityInvalidator interface {
	InvalidateEligibility(ctx context.Context, campaignID string)
}

// CreateVaccinationRecordRequest describes the creation payload. Dates are
// accepted as plain dates or RFC3339 timestamps.
type CreateVaccinationRecordRequest struct {
	StudentID       string  `json:"studentId" validate:"required"`
	RegistrationID  *string `json:"registrationId"`
	Description     *string `json:"description"`
	Name            string  `json:"name" validate:"required"`
	Location        *string `json:"location"`
	VaccinationDate string  `json:"vaccinationDate" validate:"required"`
	Status          string  `json:"status" validate:"required"`
	CampaignID      *string `json:"campaignId"`
}

// UpdateVaccinationRecordRequest carries a partial update. Absent fields
// leave the stored values unchanged.
type UpdateVaccinationRecordRequest struct {
	RegistrationID  *string `json:"registrationId"`
	Description     *string `json:"description"`
	Name            *string `json:"name"`
	Location        *string `json:"location"`
	VaccinationDate *string `json:"vaccinationDate"`
	Status          *string `json:"status"`
	CampaignID      *string `json:"campaignId"`
}

// VaccinationService manages vaccination records.
type VaccinationService struct {
	repo        vaccinationRepository
	students    studentReader
	eligibility eligibilityInvalidator
	validator   *validator.Validate
	logger      *zap.Logger
}

// NewVaccinationService constructs VaccinationService. The eligibility
// invalidator may be nil when no cache is configured.
func NewVaccinationService(repo vaccinationRepository, students studentReader, eligibility eligibilityInvalidator,
	validate *validator.Validate, logger *zap.Logger) *VaccinationService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &VaccinationService{repo: repo, students: students, eligibility: eligibility, validator: validate, logger: logger}
}

// Create persists a new vaccination record for an existing student.
func (s *VaccinationService) Create(ctx context.Context, req CreateVaccinationRecordRequest) (*models.VaccinationRecord, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "missing required fields")
	}
	vaccinationDate, err := parseDate(req.VaccinationDate)
	if err != nil {
		return nil, err
	}
	if _, err := s.students.FindByID(ctx, req.StudentID); err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load student")
	}
	record := &models.VaccinationRecord{
		StudentID:       req.StudentID,
		RegistrationID:  req.RegistrationID,
		Description:     req.Description,
		Name:            req.Name,
		Location:        req.Location,
		VaccinationDate: vaccinationDate,
		Status:          req.Status,
		CampaignID:      req.CampaignID,
	}
	if err := s.repo.CreateRecord(ctx, record); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create vaccination record")
	}
	if s.eligibility != nil && record.CampaignID != nil {
		s.eligibility.InvalidateEligibility(ctx, *record.CampaignID)
	}
	s.logger.Sugar().Infow("vaccination record created", "record_id", record.ID, "student_id", record.StudentID)
	return record, nil
}

// Update applies a partial update to an existing record. Fields absent from
// the request keep their stored values.
func (s *VaccinationService) Update(ctx context.Context, id string, req UpdateVaccinationRecordRequest) (*models.VaccinationRecord, error) {
	vaccinationDate, err := parseOptionalDate(req.VaccinationDate)
	if err != nil {
		return nil, err
	}
	patch := models.VaccinationRecordPatch{
		RegistrationID:  req.RegistrationID,
		Description:     req.Description,
		Name:            req.Name,
		Location:        req.Location,
		VaccinationDate: vaccinationDate,
		Status:          req.Status,
		CampaignID:      req.CampaignID,
	}
	record, err := s.repo.UpdateRecord(ctx, id, patch)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "vaccination record not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update vaccination record")
	}
	if s.eligibility != nil && record.CampaignID != nil {
		s.eligibility.InvalidateEligibility(ctx, *record.CampaignID)
	}
	return record, nil
}

// Get returns a vaccination record by id.
func (s *VaccinationService) Get(ctx context.Context, id string) (*models.VaccinationRecord, error) {
	record, err := s.repo.FindRecordByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "vaccination record not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load vaccination record")
	}
	return record, nil
}

// ListByStudent returns all vaccination records of a student ordered by
// vaccination date.
func (s *VaccinationService) ListByStudent(ctx context.Context, studentID string) ([]models.VaccinationRecord, error) {
	records, err := s.repo.ListRecordsByStudent(ctx, studentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list vaccination records")
	}
	return records, nil
}
