package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/shm-health-api/internal/models"
)

func newVaccinationRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestVaccinationRepositoryStageBatchSkipsConflicts(t *testing.T) {
	db, mock, cleanup := newVaccinationRepoMock(t)
	defer cleanup()
	repo := NewVaccinationRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO pre_vaccination_records")).
		WithArgs("stu-1", "cam-1", models.PreVaccinationStatusPending).
		WillReturnRows(sqlmock.NewRows([]string{"student_id", "campaign_id", "status"}).
			AddRow("stu-1", "cam-1", models.PreVaccinationStatusPending))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO pre_vaccination_records")).
		WithArgs("stu-2", "cam-1", models.PreVaccinationStatusPending).
		WillReturnRows(sqlmock.NewRows([]string{"student_id", "campaign_id", "status"}))
	mock.ExpectCommit()

	staged, err := repo.StageBatch(context.Background(), []models.PreVaccinationRecord{
		{StudentID: "stu-1", CampaignID: "cam-1", Status: models.PreVaccinationStatusPending},
		{StudentID: "stu-2", CampaignID: "cam-1", Status: models.PreVaccinationStatusPending},
	})
	require.NoError(t, err)
	require.Len(t, staged, 1)
	require.Equal(t, "stu-1", staged[0].StudentID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVaccinationRepositoryCreateRecord(t *testing.T) {
	db, mock, cleanup := newVaccinationRepoMock(t)
	defer cleanup()
	repo := NewVaccinationRepository(db)

	mock.ExpectExec("INSERT INTO vaccination_records").
		WillReturnResult(sqlmock.NewResult(1, 1))

	record := &models.VaccinationRecord{
		StudentID:       "stu-1",
		Name:            "Measles",
		VaccinationDate: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		Status:          "administered",
	}
	err := repo.CreateRecord(context.Background(), record)
	require.NoError(t, err)
	require.NotEmpty(t, record.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVaccinationRepositoryUpdateRecordCoalesces(t *testing.T) {
	db, mock, cleanup := newVaccinationRepoMock(t)
	defer cleanup()
	repo := NewVaccinationRepository(db)

	date := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	name := "Dose2"
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE vaccination_records")).
		WithArgs("rec-1", nil, nil, &name, nil, nil, nil, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "student_id", "registration_id", "description", "name", "location", "vaccination_date", "status", "campaign_id"}).
			AddRow("rec-1", "stu-1", nil, nil, "Dose2", "clinic", date, "administered", nil))

	record, err := repo.UpdateRecord(context.Background(), "rec-1", models.VaccinationRecordPatch{Name: &name})
	require.NoError(t, err)
	require.Equal(t, "Dose2", record.Name)
	require.NotNil(t, record.Location)
	require.Equal(t, "clinic", *record.Location)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVaccinationRepositoryListRecordsByStudent(t *testing.T) {
	db, mock, cleanup := newVaccinationRepoMock(t)
	defer cleanup()
	repo := NewVaccinationRepository(db)

	date := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "student_id", "registration_id", "description", "name", "location", "vaccination_date", "status", "campaign_id"}).
		AddRow("rec-1", "stu-1", nil, nil, "Measles", nil, date, "administered", nil)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, student_id, registration_id, description, name, location, vaccination_date, status, campaign_id")).
		WithArgs("stu-1").
		WillReturnRows(rows)

	records, err := repo.ListRecordsByStudent(context.Background(), "stu-1")
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.NoError(t, mock.ExpectationsWereMet())
}
