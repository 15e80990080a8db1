package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/shm-health-api/internal/models"
	appErrors "github.com/noah-isme/shm-health-api/pkg/errors"
)

type diseaseRepoMock struct {
	create   func(ctx context.Context, disease *models.Disease) error
	list     func(ctx context.Context) ([]models.Disease, error)
	findByID func(ctx context.Context, id string) (*models.Disease, error)
	update   func(ctx context.Context, disease *models.Disease) (*models.Disease, error)
	delete   func(ctx context.Context, id string) (*models.Disease, error)
}

func (m *diseaseRepoMock) Create(ctx context.Context, disease *models.Disease) error {
	return m.create(ctx, disease)
}

func (m *diseaseRepoMock) List(ctx context.Context) ([]models.Disease, error) {
	return m.list(ctx)
}

func (m *diseaseRepoMock) FindByID(ctx context.Context, id string) (*models.Disease, error) {
	return m.findByID(ctx, id)
}

func (m *diseaseRepoMock) Update(ctx context.Context, disease *models.Disease) (*models.Disease, error) {
	return m.update(ctx, disease)
}

func (m *diseaseRepoMock) Delete(ctx context.Context, id string) (*models.Disease, error) {
	return m.delete(ctx, id)
}

type diseaseRecordRepoMock struct {
	create                   func(ctx context.Context, record *models.DiseaseRecord) error
	update                   func(ctx context.Context, record *models.DiseaseRecord) (*models.DiseaseRecord, error)
	listByStudent            func(ctx context.Context, studentID string) ([]models.DiseaseRecord, error)
	listByStudentAndCategory func(ctx context.Context, studentID string, category models.DiseaseCategory) ([]models.DiseaseRecordDetail, error)
	delete                   func(ctx context.Context, id string) (*models.DiseaseRecord, error)
}

func (m *diseaseRecordRepoMock) Create(ctx context.Context, record *models.DiseaseRecord) error {
	return m.create(ctx, record)
}

func (m *diseaseRecordRepoMock) Update(ctx context.Context, record *models.DiseaseRecord) (*models.DiseaseRecord, error) {
	return m.update(ctx, record)
}

func (m *diseaseRecordRepoMock) ListByStudent(ctx context.Context, studentID string) ([]models.DiseaseRecord, error) {
	return m.listByStudent(ctx, studentID)
}

func (m *diseaseRecordRepoMock) ListByStudentAndCategory(ctx context.Context, studentID string, category models.DiseaseCategory) ([]models.DiseaseRecordDetail, error) {
	return m.listByStudentAndCategory(ctx, studentID, category)
}

func (m *diseaseRecordRepoMock) Delete(ctx context.Context, id string) (*models.DiseaseRecord, error) {
	return m.delete(ctx, id)
}

func intPtr(n int) *int { return &n }

func categoryPtr(c models.DiseaseCategory) *models.DiseaseCategory { return &c }

func TestDiseaseServiceCreateDisease(t *testing.T) {
	repo := &diseaseRepoMock{
		create: func(_ context.Context, disease *models.Disease) error {
			disease.ID = "dis-1"
			return nil
		},
	}
	svc := NewDiseaseService(repo, &diseaseRecordRepoMock{}, existingStudent(), nil, nil)

	disease, err := svc.CreateDisease(context.Background(), DiseaseRequest{
		Category:      categoryPtr(models.DiseaseCategoryInfectious),
		Name:          "Measles",
		VaccineNeeded: boolPtr(true),
		DoseQuantity:  intPtr(2),
	})
	require.NoError(t, err)
	require.Equal(t, "dis-1", disease.ID)
	require.Equal(t, 2, disease.DoseQuantity)
}

func TestDiseaseServiceCreateDiseaseInvalidCategory(t *testing.T) {
	svc := NewDiseaseService(&diseaseRepoMock{}, &diseaseRecordRepoMock{}, existingStudent(), nil, nil)

	_, err := svc.CreateDisease(context.Background(), DiseaseRequest{
		Category:      categoryPtr("seasonal"),
		Name:          "Measles",
		VaccineNeeded: boolPtr(true),
		DoseQuantity:  intPtr(2),
	})
	require.Error(t, err)
	require.Equal(t, appErrors.ErrValidation.Status, appErrors.FromError(err).Status)
}

func TestDiseaseServiceUpdateDiseaseMissing(t *testing.T) {
	repo := &diseaseRepoMock{
		update: func(context.Context, *models.Disease) (*models.Disease, error) { return nil, sql.ErrNoRows },
	}
	svc := NewDiseaseService(repo, &diseaseRecordRepoMock{}, existingStudent(), nil, nil)

	_, err := svc.UpdateDisease(context.Background(), "missing", DiseaseRequest{
		Name:          "Measles",
		VaccineNeeded: boolPtr(true),
		DoseQuantity:  intPtr(2),
	})
	require.Error(t, err)
	require.Equal(t, appErrors.ErrNotFound.Status, appErrors.FromError(err).Status)
}

func TestDiseaseServiceCreateDiseaseRecord(t *testing.T) {
	diseases := &diseaseRepoMock{
		findByID: func(_ context.Context, id string) (*models.Disease, error) {
			return &models.Disease{ID: id, Name: "Measles"}, nil
		},
	}
	records := &diseaseRecordRepoMock{
		create: func(_ context.Context, record *models.DiseaseRecord) error {
			record.ID = "rec-1"
			return nil
		},
	}
	svc := NewDiseaseService(diseases, records, existingStudent(), nil, nil)

	record, err := svc.CreateDiseaseRecord(context.Background(), DiseaseRecordRequest{
		StudentID:  "stu-1",
		DiseaseID:  "dis-1",
		DetectDate: "2026-03-01",
	})
	require.NoError(t, err)
	require.Equal(t, "rec-1", record.ID)
}

func TestDiseaseServiceCreateDiseaseRecordStudentMissing(t *testing.T) {
	students := &studentReaderMock{
		findByID: func(context.Context, string) (*models.Student, error) { return nil, sql.ErrNoRows },
	}
	svc := NewDiseaseService(&diseaseRepoMock{}, &diseaseRecordRepoMock{}, students, nil, nil)

	_, err := svc.CreateDiseaseRecord(context.Background(), DiseaseRecordRequest{
		StudentID:  "missing",
		DiseaseID:  "dis-1",
		DetectDate: "2026-03-01",
	})
	require.Error(t, err)
	require.Equal(t, appErrors.ErrNotFound.Status, appErrors.FromError(err).Status)
}

func TestDiseaseServiceListRecordsByCategory(t *testing.T) {
	records := &diseaseRecordRepoMock{
		listByStudentAndCategory: func(_ context.Context, studentID string, category models.DiseaseCategory) ([]models.DiseaseRecordDetail, error) {
			require.Equal(t, models.DiseaseCategoryChronic, category)
			return []models.DiseaseRecordDetail{{DiseaseName: "Asthma"}}, nil
		},
	}
	svc := NewDiseaseService(&diseaseRepoMock{}, records, existingStudent(), nil, nil)

	details, err := svc.ListDiseaseRecordsByCategory(context.Background(), "stu-1", "chronic")
	require.NoError(t, err)
	require.Len(t, details, 1)
	require.Equal(t, "Asthma", details[0].DiseaseName)
}

func TestDiseaseServiceListRecordsByCategoryInvalid(t *testing.T) {
	svc := NewDiseaseService(&diseaseRepoMock{}, &diseaseRecordRepoMock{}, existingStudent(), nil, nil)

	_, err := svc.ListDiseaseRecordsByCategory(context.Background(), "stu-1", "seasonal")
	require.Error(t, err)
	require.Equal(t, appErrors.ErrValidation.Status, appErrors.FromError(err).Status)
}

func TestDiseaseServiceDeleteDiseaseMissing(t *testing.T) {
	repo := &diseaseRepoMock{
		delete: func(context.Context, string) (*models.Disease, error) { return nil, sql.ErrNoRows },
	}
	svc := NewDiseaseService(repo, &diseaseRecordRepoMock{}, existingStudent(), nil, nil)

	_, err := svc.DeleteDisease(context.Background(), "missing")
	require.Error(t, err)
	require.Equal(t, appErrors.ErrNotFound.Status, appErrors.FromError(err).Status)
}
