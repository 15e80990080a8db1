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

func newDiseaseRecordRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestDiseaseRecordRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newDiseaseRecordRepoMock(t)
	defer cleanup()
	repo := NewDiseaseRecordRepository(db)

	mock.ExpectExec("INSERT INTO disease_records").
		WillReturnResult(sqlmock.NewResult(1, 1))

	record := &models.DiseaseRecord{
		StudentID:  "stu-1",
		DiseaseID:  "dis-1",
		DetectDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	}
	err := repo.Create(context.Background(), record)
	require.NoError(t, err)
	require.NotEmpty(t, record.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDiseaseRecordRepositoryListByStudentAndCategory(t *testing.T) {
	db, mock, cleanup := newDiseaseRecordRepoMock(t)
	defer cleanup()
	repo := NewDiseaseRecordRepository(db)

	detect := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "student_id", "disease_id", "detect_date", "cure_date", "location_cure",
		"prescription", "diagnosis", "admission_date", "discharge_date", "cur_status", "at_school", "disease_name"}).
		AddRow("rec-1", "stu-1", "dis-1", detect, nil, nil, nil, nil, nil, nil, nil, false, "Measles")
	mock.ExpectQuery(regexp.QuoteMeta("JOIN diseases d ON dr.disease_id = d.id")).
		WithArgs("stu-1", models.DiseaseCategoryInfectious).
		WillReturnRows(rows)

	records, err := repo.ListByStudentAndCategory(context.Background(), "stu-1", models.DiseaseCategoryInfectious)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, "Measles", records[0].DiseaseName)
	require.NoError(t, mock.ExpectationsWereMet())
}
