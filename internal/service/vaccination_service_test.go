package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/shm-health-api/internal/models"
	appErrors "github.com/noah-isme/shm-health-api/pkg/errors"
)

type vaccinationRepoMock struct {
	createRecord         func(ctx context.Context, record *models.VaccinationRecord) error
	findRecordByID       func(ctx context.Context, id string) (*models.VaccinationRecord, error)
	updateRecord         func(ctx context.Context, id string, patch models.VaccinationRecordPatch) (*models.VaccinationRecord, error)
	listRecordsByStudent func(ctx context.Context, studentID string) ([]models.VaccinationRecord, error)
}

func (m *vaccinationRepoMock) CreateRecord(ctx context.Context, record *models.VaccinationRecord) error {
	return m.createRecord(ctx, record)
}

func (m *vaccinationRepoMock) FindRecordByID(ctx context.Context, id string) (*models.VaccinationRecord, error) {
	return m.findRecordByID(ctx, id)
}

func (m *vaccinationRepoMock) UpdateRecord(ctx context.Context, id string, patch models.VaccinationRecordPatch) (*models.VaccinationRecord, error) {
	return m.updateRecord(ctx, id, patch)
}

func (m *vaccinationRepoMock) ListRecordsByStudent(ctx context.Context, studentID string) ([]models.VaccinationRecord, error) {
	return m.listRecordsByStudent(ctx, studentID)
}

type studentReaderMock struct {
	findByID func(ctx context.Context, id string) (*models.Student, error)
}

func (m *studentReaderMock) FindByID(ctx context.Context, id string) (*models.Student, error) {
	return m.findByID(ctx, id)
}

type invalidatorMock struct {
	invalidated []string
}

func (m *invalidatorMock) InvalidateEligibility(_ context.Context, campaignID string) {
	m.invalidated = append(m.invalidated, campaignID)
}

func strPtr(s string) *string { return &s }

func existingStudent() *studentReaderMock {
	return &studentReaderMock{
		findByID: func(_ context.Context, id string) (*models.Student, error) {
			return &models.Student{ID: id}, nil
		},
	}
}

func TestVaccinationServiceCreate(t *testing.T) {
	repo := &vaccinationRepoMock{
		createRecord: func(_ context.Context, record *models.VaccinationRecord) error {
			record.ID = "rec-1"
			return nil
		},
	}
	invalidator := &invalidatorMock{}
	svc := NewVaccinationService(repo, existingStudent(), invalidator, nil, nil)

	record, err := svc.Create(context.Background(), CreateVaccinationRecordRequest{
		StudentID:       "stu-1",
		Name:            "Measles",
		VaccinationDate: "2026-09-05",
		Status:          "done",
		CampaignID:      strPtr("cam-1"),
	})
	require.NoError(t, err)
	require.Equal(t, "rec-1", record.ID)
	require.Equal(t, []string{"cam-1"}, invalidator.invalidated)
}

func TestVaccinationServiceCreateMissingFields(t *testing.T) {
	svc := NewVaccinationService(&vaccinationRepoMock{}, existingStudent(), nil, nil, nil)

	_, err := svc.Create(context.Background(), CreateVaccinationRecordRequest{StudentID: "stu-1"})
	require.Error(t, err)
	require.Equal(t, appErrors.ErrValidation.Status, appErrors.FromError(err).Status)
}

func TestVaccinationServiceCreateStudentMissing(t *testing.T) {
	students := &studentReaderMock{
		findByID: func(context.Context, string) (*models.Student, error) { return nil, sql.ErrNoRows },
	}
	svc := NewVaccinationService(&vaccinationRepoMock{}, students, nil, nil, nil)

	_, err := svc.Create(context.Background(), CreateVaccinationRecordRequest{
		StudentID:       "missing",
		Name:            "Measles",
		VaccinationDate: "2026-09-05",
		Status:          "done",
	})
	require.Error(t, err)
	require.Equal(t, appErrors.ErrNotFound.Status, appErrors.FromError(err).Status)
}

func TestVaccinationServiceUpdatePartial(t *testing.T) {
	repo := &vaccinationRepoMock{
		updateRecord: func(_ context.Context, id string, patch models.VaccinationRecordPatch) (*models.VaccinationRecord, error) {
			// Only the provided fields travel; absent ones stay nil so the
			// stored values survive the merge.
			require.NotNil(t, patch.Status)
			require.Equal(t, "done", *patch.Status)
			require.Nil(t, patch.Name)
			require.Nil(t, patch.Description)
			require.Nil(t, patch.VaccinationDate)
			return &models.VaccinationRecord{ID: id, Name: "Measles", Status: *patch.Status,
				VaccinationDate: time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)}, nil
		},
	}
	svc := NewVaccinationService(repo, existingStudent(), nil, nil, nil)

	record, err := svc.Update(context.Background(), "rec-1", UpdateVaccinationRecordRequest{Status: strPtr("done")})
	require.NoError(t, err)
	require.Equal(t, "Measles", record.Name)
	require.Equal(t, "done", record.Status)
}

func TestVaccinationServiceUpdateMissing(t *testing.T) {
	repo := &vaccinationRepoMock{
		updateRecord: func(context.Context, string, models.VaccinationRecordPatch) (*models.VaccinationRecord, error) {
			return nil, sql.ErrNoRows
		},
	}
	svc := NewVaccinationService(repo, existingStudent(), nil, nil, nil)

	_, err := svc.Update(context.Background(), "missing", UpdateVaccinationRecordRequest{Status: strPtr("done")})
	require.Error(t, err)
	require.Equal(t, appErrors.ErrNotFound.Status, appErrors.FromError(err).Status)
}

func TestVaccinationServiceUpdateBadDate(t *testing.T) {
	svc := NewVaccinationService(&vaccinationRepoMock{}, existingStudent(), nil, nil, nil)

	_, err := svc.Update(context.Background(), "rec-1", UpdateVaccinationRecordRequest{VaccinationDate: strPtr("not-a-date")})
	require.Error(t, err)
	require.Equal(t, appErrors.ErrValidation.Status, appErrors.FromError(err).Status)
}

func TestVaccinationServiceGet(t *testing.T) {
	repo := &vaccinationRepoMock{
		findRecordByID: func(_ context.Context, id string) (*models.VaccinationRecord, error) {
			return &models.VaccinationRecord{ID: id, Name: "Measles"}, nil
		},
	}
	svc := NewVaccinationService(repo, existingStudent(), nil, nil, nil)

	record, err := svc.Get(context.Background(), "rec-1")
	require.NoError(t, err)
	require.Equal(t, "Measles", record.Name)
}

func TestVaccinationServiceGetMissing(t *testing.T) {
	repo := &vaccinationRepoMock{
		findRecordByID: func(context.Context, string) (*models.VaccinationRecord, error) { return nil, sql.ErrNoRows },
	}
	svc := NewVaccinationService(repo, existingStudent(), nil, nil, nil)

	_, err := svc.Get(context.Background(), "missing")
	require.Error(t, err)
	require.Equal(t, appErrors.ErrNotFound.Status, appErrors.FromError(err).Status)
}
