package service

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/shm-health-api/internal/models"
	appErrors "github.com/noah-isme/shm-health-api/pkg/errors"
)

// diseaseNamePattern extracts the disease name from a vaccine description:
// the text following the word "disease" up to the next " -" separator.
// The description is the only place the disease link is expressed, so the
// pattern is part of the API contract.
var diseaseNamePattern = regexp.MustCompile(`(?i)disease\s+(.+?)\s+-`)

// ExtractDiseaseName applies the description pattern and returns the
// trimmed disease name. The second return is false when the pattern does
// not match.
func ExtractDiseaseName(description string) (string, bool) {
	match := diseaseNamePattern.FindStringSubmatch(description)
	if len(match) < 2 {
		return "", false
	}
	name := strings.TrimSpace(match[1])
	if name == "" {
		return "", false
	}
	return name, true
}

type vaccineRepository interface {
	ExistsByName(ctx context.Context, name string) (bool, error)
	Create(ctx context.Context, vaccine *models.Vaccine) error
}

type diseaseByNameReader interface {
	FindByName(ctx context.Context, name string) (*models.Disease, error)
}

// CreateVaccineRequest describes vaccine creation payload.
type CreateVaccineRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
}

// VaccineService registers vaccines, deriving the target disease from the
// description text.
type VaccineService struct {
	repo      vaccineRepository
	diseases  diseaseByNameReader
	validator *validator.Validate
	logger    *zap.Logger
}

// NewVaccineService constructs VaccineService.
func NewVaccineService(repo vaccineRepository, diseases diseaseByNameReader, validate *validator.Validate, logger *zap.Logger) *VaccineService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &VaccineService{repo: repo, diseases: diseases, validator: validate, logger: logger}
}

// Create registers a new vaccine. The disease reference is resolved by
// extracting the disease name from the description and matching it exactly
// against existing diseases.
func (s *VaccineService) Create(ctx context.Context, req CreateVaccineRequest) (*models.Vaccine, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "missing required fields")
	}
	exists, err := s.repo.ExistsByName(ctx, req.Name)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check vaccine name")
	}
	if exists {
		return nil, appErrors.Clone(appErrors.ErrConflict, fmt.Sprintf("vaccine %s already exists", req.Name))
	}
	diseaseName, ok := ExtractDiseaseName(req.Description)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrValidation, "cannot extract disease name from description")
	}
	disease, err := s.diseases.FindByName(ctx, diseaseName)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("disease %s not found", diseaseName))
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load disease")
	}
	vaccine := &models.Vaccine{Name: req.Name, Description: req.Description, DiseaseID: disease.ID}
	if err := s.repo.Create(ctx, vaccine); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create vaccine")
	}
	s.logger.Sugar().Infow("vaccine created", "vaccine_id", vaccine.ID, "disease", diseaseName)
	return vaccine, nil
}
