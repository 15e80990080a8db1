package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/shm-health-api/internal/models"
	"github.com/noah-isme/shm-health-api/pkg/config"
	appErrors "github.com/noah-isme/shm-health-api/pkg/errors"
)

type campaignRepoMock struct {
	findByID          func(ctx context.Context, id string) (*models.Campaign, error)
	list              func(ctx context.Context) ([]models.Campaign, error)
	existsOverlapping func(ctx context.Context, vaccineID string, start, end time.Time) (bool, error)
	create            func(ctx context.Context, campaign *models.Campaign) error
}

func (m *campaignRepoMock) FindByID(ctx context.Context, id string) (*models.Campaign, error) {
	return m.findByID(ctx, id)
}

func (m *campaignRepoMock) List(ctx context.Context) ([]models.Campaign, error) {
	return m.list(ctx)
}

func (m *campaignRepoMock) ExistsOverlapping(ctx context.Context, vaccineID string, start, end time.Time) (bool, error) {
	return m.existsOverlapping(ctx, vaccineID, start, end)
}

func (m *campaignRepoMock) Create(ctx context.Context, campaign *models.Campaign) error {
	return m.create(ctx, campaign)
}

type vaccineReaderMock struct {
	findByID func(ctx context.Context, id string) (*models.Vaccine, error)
}

func (m *vaccineReaderMock) FindByID(ctx context.Context, id string) (*models.Vaccine, error) {
	return m.findByID(ctx, id)
}

type diseaseReaderMock struct {
	findByID func(ctx context.Context, id string) (*models.Disease, error)
}

func (m *diseaseReaderMock) FindByID(ctx context.Context, id string) (*models.Disease, error) {
	return m.findByID(ctx, id)
}

type eligibilityListerMock struct {
	list func(ctx context.Context, diseaseName string, doseQuantity int) ([]models.EligibleStudent, error)
}

func (m *eligibilityListerMock) ListEligibleByDiseaseName(ctx context.Context, diseaseName string, doseQuantity int) ([]models.EligibleStudent, error) {
	return m.list(ctx, diseaseName, doseQuantity)
}

func newCampaignService(repo *campaignRepoMock, vaccines *vaccineReaderMock, diseases *diseaseReaderMock, students *eligibilityListerMock) *CampaignService {
	return NewCampaignService(repo, vaccines, diseases, students, nil, config.EligibilityConfig{}, nil, nil, nil)
}

func TestCampaignServiceCreate(t *testing.T) {
	repo := &campaignRepoMock{
		existsOverlapping: func(context.Context, string, time.Time, time.Time) (bool, error) { return false, nil },
		create: func(_ context.Context, campaign *models.Campaign) error {
			campaign.ID = "cam-1"
			return nil
		},
	}
	vaccines := &vaccineReaderMock{
		findByID: func(context.Context, string) (*models.Vaccine, error) {
			return &models.Vaccine{ID: "vac-1"}, nil
		},
	}
	svc := newCampaignService(repo, vaccines, &diseaseReaderMock{}, &eligibilityListerMock{})

	campaign, err := svc.Create(context.Background(), CreateCampaignRequest{
		VaccineID: "vac-1",
		StartDate: "2026-09-01",
		EndDate:   "2026-09-10",
	})
	require.NoError(t, err)
	require.Equal(t, models.CampaignStatusUpcoming, campaign.Status)
}

func TestCampaignServiceCreateOverlap(t *testing.T) {
	repo := &campaignRepoMock{
		existsOverlapping: func(context.Context, string, time.Time, time.Time) (bool, error) { return true, nil },
	}
	vaccines := &vaccineReaderMock{
		findByID: func(context.Context, string) (*models.Vaccine, error) {
			return &models.Vaccine{ID: "vac-1"}, nil
		},
	}
	svc := newCampaignService(repo, vaccines, &diseaseReaderMock{}, &eligibilityListerMock{})

	_, err := svc.Create(context.Background(), CreateCampaignRequest{
		VaccineID: "vac-1",
		StartDate: "2026-09-10",
		EndDate:   "2026-09-20",
	})
	require.Error(t, err)
	require.Equal(t, appErrors.ErrConflict.Status, appErrors.FromError(err).Status)
}

func TestCampaignServiceCreateVaccineMissing(t *testing.T) {
	vaccines := &vaccineReaderMock{
		findByID: func(context.Context, string) (*models.Vaccine, error) { return nil, sql.ErrNoRows },
	}
	svc := newCampaignService(&campaignRepoMock{}, vaccines, &diseaseReaderMock{}, &eligibilityListerMock{})

	_, err := svc.Create(context.Background(), CreateCampaignRequest{
		VaccineID: "missing",
		StartDate: "2026-09-01",
		EndDate:   "2026-09-10",
	})
	require.Error(t, err)
	require.Equal(t, appErrors.ErrNotFound.Status, appErrors.FromError(err).Status)
}

func TestCampaignServiceCreateEndBeforeStart(t *testing.T) {
	svc := newCampaignService(&campaignRepoMock{}, &vaccineReaderMock{}, &diseaseReaderMock{}, &eligibilityListerMock{})

	_, err := svc.Create(context.Background(), CreateCampaignRequest{
		VaccineID: "vac-1",
		StartDate: "2026-09-10",
		EndDate:   "2026-09-01",
	})
	require.Error(t, err)
	require.Equal(t, appErrors.ErrValidation.Status, appErrors.FromError(err).Status)
}

func TestCampaignServiceResolveEligible(t *testing.T) {
	repo := &campaignRepoMock{
		findByID: func(context.Context, string) (*models.Campaign, error) {
			return &models.Campaign{ID: "cam-1", VaccineID: "vac-1"}, nil
		},
	}
	vaccines := &vaccineReaderMock{
		findByID: func(context.Context, string) (*models.Vaccine, error) {
			return &models.Vaccine{ID: "vac-1", DiseaseID: "dis-1"}, nil
		},
	}
	diseases := &diseaseReaderMock{
		findByID: func(context.Context, string) (*models.Disease, error) {
			return &models.Disease{ID: "dis-1", Name: "Measles", DoseQuantity: 2}, nil
		},
	}
	students := &eligibilityListerMock{
		list: func(_ context.Context, diseaseName string, doseQuantity int) ([]models.EligibleStudent, error) {
			require.Equal(t, "Measles", diseaseName)
			require.Equal(t, 2, doseQuantity)
			return []models.EligibleStudent{
				{StudentID: "stu-1", DoseReceived: 0},
				{StudentID: "stu-2", DoseReceived: 1},
			}, nil
		},
	}
	svc := newCampaignService(repo, vaccines, diseases, students)

	eligible, err := svc.ResolveEligible(context.Background(), "cam-1")
	require.NoError(t, err)
	require.Len(t, eligible, 2)
}

func TestCampaignServiceResolveEligibleEmpty(t *testing.T) {
	repo := &campaignRepoMock{
		findByID: func(context.Context, string) (*models.Campaign, error) {
			return &models.Campaign{ID: "cam-1", VaccineID: "vac-1"}, nil
		},
	}
	vaccines := &vaccineReaderMock{
		findByID: func(context.Context, string) (*models.Vaccine, error) {
			return &models.Vaccine{ID: "vac-1", DiseaseID: "dis-1"}, nil
		},
	}
	diseases := &diseaseReaderMock{
		findByID: func(context.Context, string) (*models.Disease, error) {
			return &models.Disease{ID: "dis-1", Name: "Measles", DoseQuantity: 2}, nil
		},
	}
	students := &eligibilityListerMock{
		list: func(context.Context, string, int) ([]models.EligibleStudent, error) {
			return nil, nil
		},
	}
	svc := newCampaignService(repo, vaccines, diseases, students)

	_, err := svc.ResolveEligible(context.Background(), "cam-1")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	require.Equal(t, appErrors.ErrNotFound.Status, appErr.Status)
	require.Equal(t, "no eligible students", appErr.Message)
}

func TestCampaignServiceResolveEligibleCampaignMissing(t *testing.T) {
	repo := &campaignRepoMock{
		findByID: func(context.Context, string) (*models.Campaign, error) { return nil, sql.ErrNoRows },
	}
	svc := newCampaignService(repo, &vaccineReaderMock{}, &diseaseReaderMock{}, &eligibilityListerMock{})

	_, err := svc.ResolveEligible(context.Background(), "missing")
	require.Error(t, err)
	require.Equal(t, appErrors.ErrNotFound.Status, appErrors.FromError(err).Status)
}
