package service

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/shm-health-api/internal/models"
	appErrors "github.com/noah-isme/shm-health-api/pkg/errors"
)

type registrationRepository interface {
	CreateBatch(ctx context.Context, registrations []models.Registration) ([]models.Registration, error)
	FindByID(ctx context.Context, id string) (*models.Registration, error)
	UpdateConfirmed(ctx context.Context, id string, confirmed bool) (*models.Registration, error)
	ListConfirmedByCampaign(ctx context.Context, campaignID string) ([]models.Registration, error)
}

type campaignReader interface {
	FindByID(ctx context.Context, id string) (*models.Campaign, error)
}

type eligibilityResolver interface {
	ResolveEligible(ctx context.Context, campaignID string) ([]models.EligibleStudent, error)
}

type preVaccinationStager interface {
	StageBatch(ctx context.Context, records []models.PreVaccinationRecord) ([]models.PreVaccinationRecord, error)
}

// SetConsentRequest carries the consent flag for a registration.
type SetConsentRequest struct {
	Confirmed *bool `json:"confirmed" validate:"required"`
}

// RegistrationService runs the campaign registration workflow: fan-out,
// consent and pre-vaccination staging.
type RegistrationService struct {
	repo        registrationRepository
	campaigns   campaignReader
	eligibility eligibilityResolver
	staging     preVaccinationStager
	validator   *validator.Validate
	logger      *zap.Logger
}

// NewRegistrationService constructs RegistrationService.
func NewRegistrationService(repo registrationRepository, campaigns campaignReader, eligibility eligibilityResolver,
	staging preVaccinationStager, validate *validator.Validate, logger *zap.Logger) *RegistrationService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RegistrationService{
		repo:        repo,
		campaigns:   campaigns,
		eligibility: eligibility,
		staging:     staging,
		validator:   validate,
		logger:      logger,
	}
}

// CreateRegistrations fans one unconfirmed registration out to every
// eligible student of the campaign. Students already registered are
// skipped; only the newly created rows come back.
func (s *RegistrationService) CreateRegistrations(ctx context.Context, campaignID string) ([]models.Registration, error) {
	if campaignID == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "campaign id is required")
	}
	eligible, err := s.eligibility.ResolveEligible(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	registrations := make([]models.Registration, 0, len(eligible))
	for _, student := range eligible {
		registrations = append(registrations, models.Registration{
			CampaignID: campaignID,
			StudentID:  student.StudentID,
			Reason:     fmt.Sprintf("auto-registered for campaign %s", campaignID),
			Confirmed:  false,
		})
	}
	created, err := s.repo.CreateBatch(ctx, registrations)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create registrations")
	}
	s.logger.Sugar().Infow("registrations created", "campaign_id", campaignID,
		"eligible", len(eligible), "created", len(created))
	return created, nil
}

// SetConsent flips the confirmed flag of a registration. Consent is only
// accepted while the parent campaign window is open, both bounds inclusive.
func (s *RegistrationService) SetConsent(ctx context.Context, registrationID string, req SetConsentRequest) (*models.Registration, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "confirmed is required")
	}
	registration, err := s.repo.FindByID(ctx, registrationID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "registration not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load registration")
	}
	campaign, err := s.campaigns.FindByID(ctx, registration.CampaignID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "campaign not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load campaign")
	}
	now := time.Now()
	if now.Before(campaign.StartDate) || !now.Before(campaign.EndDate.AddDate(0, 0, 1)) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "outside campaign window")
	}
	updated, err := s.repo.UpdateConfirmed(ctx, registrationID, *req.Confirmed)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "registration not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update registration")
	}
	s.logger.Sugar().Infow("consent updated", "registration_id", registrationID, "confirmed", *req.Confirmed)
	return updated, nil
}

// StagePreVaccination creates one pending pre-vaccination record per
// confirmed registration of the campaign. Already staged students are
// skipped.
func (s *RegistrationService) StagePreVaccination(ctx context.Context, campaignID string) ([]models.PreVaccinationRecord, error) {
	if campaignID == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "campaign id is required")
	}
	confirmed, err := s.repo.ListConfirmedByCampaign(ctx, campaignID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list confirmed registrations")
	}
	if len(confirmed) == 0 {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "no confirmed registrations")
	}
	records := make([]models.PreVaccinationRecord, 0, len(confirmed))
	for _, registration := range confirmed {
		records = append(records, models.PreVaccinationRecord{
			StudentID:  registration.StudentID,
			CampaignID: registration.CampaignID,
			Status:     models.PreVaccinationStatusPending,
		})
	}
	staged, err := s.staging.StageBatch(ctx, records)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to stage pre-vaccination records")
	}
	s.logger.Sugar().Infow("pre-vaccination records staged", "campaign_id", campaignID, "staged", len(staged))
	return staged, nil
}
