package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/noah-isme/shm-health-api/internal/models"
	"github.com/noah-isme/shm-health-api/pkg/config"
	appErrors "github.com/noah-isme/shm-health-api/pkg/errors"
)

type campaignRepository interface {
	FindByID(ctx context.Context, id string) (*models.Campaign, error)
	List(ctx context.Context) ([]models.Campaign, error)
	ExistsOverlapping(ctx context.Context, vaccineID string, start, end time.Time) (bool, error)
	Create(ctx context.Context, campaign *models.Campaign) error
}

type vaccineReader interface {
	FindByID(ctx context.Context, id string) (*models.Vaccine, error)
}

type diseaseReader interface {
	FindByID(ctx context.Context, id string) (*models.Disease, error)
}

type eligibilityLister interface {
	ListEligibleByDiseaseName(ctx context.Context, diseaseName string, doseQuantity int) ([]models.EligibleStudent, error)
}

// CreateCampaignRequest describes campaign creation payload.
type CreateCampaignRequest struct {
	VaccineID   string  `json:"vaccineId" validate:"required"`
	Description *string `json:"description"`
	Location    *string `json:"location"`
	StartDate   string  `json:"startDate" validate:"required"`
	EndDate     string  `json:"endDate" validate:"required"`
}

// CampaignService creates campaigns and resolves student eligibility.
type CampaignService struct {
	repo      campaignRepository
	vaccines  vaccineReader
	diseases  diseaseReader
	students  eligibilityLister
	cache     *redis.Client
	cacheCfg  config.EligibilityConfig
	metrics   *MetricsService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewCampaignService constructs CampaignService. The cache client may be nil.
func NewCampaignService(repo campaignRepository, vaccines vaccineReader, diseases diseaseReader, students eligibilityLister,
	cache *redis.Client, cacheCfg config.EligibilityConfig, metrics *MetricsService, validate *validator.Validate, logger *zap.Logger) *CampaignService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CampaignService{
		repo:      repo,
		vaccines:  vaccines,
		diseases:  diseases,
		students:  students,
		cache:     cache,
		cacheCfg:  cacheCfg,
		metrics:   metrics,
		validator: validate,
		logger:    logger,
	}
}

// Create registers a campaign. Campaigns of the same vaccine must not
// overlap in time, bounds inclusive. Status always starts upcoming.
func (s *CampaignService) Create(ctx context.Context, req CreateCampaignRequest) (*models.Campaign, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "missing required fields")
	}
	start, err := parseDate(req.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "end date before start date")
	}
	if _, err := s.vaccines.FindByID(ctx, req.VaccineID); err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "vaccine not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load vaccine")
	}
	overlaps, err := s.repo.ExistsOverlapping(ctx, req.VaccineID, start, end)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check campaign overlap")
	}
	if overlaps {
		return nil, appErrors.Clone(appErrors.ErrConflict, "campaign overlaps an existing campaign for this vaccine")
	}
	campaign := &models.Campaign{
		VaccineID:   req.VaccineID,
		Description: req.Description,
		Location:    req.Location,
		StartDate:   start,
		EndDate:     end,
		Status:      models.CampaignStatusUpcoming,
	}
	if err := s.repo.Create(ctx, campaign); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create campaign")
	}
	s.logger.Sugar().Infow("campaign created", "campaign_id", campaign.ID, "vaccine_id", campaign.VaccineID)
	return campaign, nil
}

// List returns all campaigns.
func (s *CampaignService) List(ctx context.Context) ([]models.Campaign, error) {
	campaigns, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list campaigns")
	}
	return campaigns, nil
}

// ResolveEligible returns the students still below the required dose count
// for the campaign's disease. Dose counting joins vaccination records by
// record name against the disease name.
func (s *CampaignService) ResolveEligible(ctx context.Context, campaignID string) ([]models.EligibleStudent, error) {
	campaign, err := s.repo.FindByID(ctx, campaignID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "campaign not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load campaign")
	}
	vaccine, err := s.vaccines.FindByID(ctx, campaign.VaccineID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "vaccine not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load vaccine")
	}
	disease, err := s.diseases.FindByID(ctx, vaccine.DiseaseID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "disease not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load disease")
	}

	if cached, ok := s.cachedEligibility(ctx, campaignID); ok {
		return cached, nil
	}

	start := time.Now()
	eligible, err := s.students.ListEligibleByDiseaseName(ctx, disease.Name, disease.DoseQuantity)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to resolve eligible students")
	}
	s.metrics.ObserveDBQuery("eligibility", time.Since(start))
	if len(eligible) == 0 {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "no eligible students")
	}
	s.storeEligibility(ctx, campaignID, eligible)
	return eligible, nil
}

// InvalidateEligibility drops the cached eligible set of a campaign. Called
// when a new vaccination record changes dose counts.
func (s *CampaignService) InvalidateEligibility(ctx context.Context, campaignID string) {
	if s.cache == nil || !s.cacheCfg.CacheEnabled || campaignID == "" {
		return
	}
	if err := s.cache.Del(ctx, eligibilityCacheKey(campaignID)).Err(); err != nil {
		s.logger.Sugar().Warnw("failed to invalidate eligibility cache", "campaign_id", campaignID, "error", err)
	}
}

func (s *CampaignService) cachedEligibility(ctx context.Context, campaignID string) ([]models.EligibleStudent, bool) {
	if s.cache == nil || !s.cacheCfg.CacheEnabled {
		return nil, false
	}
	start := time.Now()
	raw, err := s.cache.Get(ctx, eligibilityCacheKey(campaignID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.logger.Sugar().Warnw("eligibility cache read failed", "campaign_id", campaignID, "error", err)
		}
		s.metrics.RecordCacheOperation(false, time.Since(start))
		return nil, false
	}
	var eligible []models.EligibleStudent
	if err := json.Unmarshal(raw, &eligible); err != nil {
		s.logger.Sugar().Warnw("eligibility cache decode failed", "campaign_id", campaignID, "error", err)
		return nil, false
	}
	s.metrics.RecordCacheOperation(true, time.Since(start))
	return eligible, true
}

func (s *CampaignService) storeEligibility(ctx context.Context, campaignID string, eligible []models.EligibleStudent) {
	if s.cache == nil || !s.cacheCfg.CacheEnabled {
		return
	}
	raw, err := json.Marshal(eligible)
	if err != nil {
		return
	}
	start := time.Now()
	if err := s.cache.Set(ctx, eligibilityCacheKey(campaignID), raw, s.cacheCfg.CacheTTL).Err(); err != nil {
		s.logger.Sugar().Warnw("eligibility cache write failed", "campaign_id", campaignID, "error", err)
		return
	}
	s.metrics.ObserveCacheWrite(time.Since(start))
}

func eligibilityCacheKey(campaignID string) string {
	return fmt.Sprintf("eligibility:campaign:%s", campaignID)
}
