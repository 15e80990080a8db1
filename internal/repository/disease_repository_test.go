package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/shm-health-api/internal/models"
)

func newDiseaseRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestDiseaseRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newDiseaseRepoMock(t)
	defer cleanup()
	repo := NewDiseaseRepository(db)

	mock.ExpectExec("INSERT INTO diseases").
		WillReturnResult(sqlmock.NewResult(1, 1))

	disease := &models.Disease{Name: "Measles", VaccineNeeded: true, DoseQuantity: 2}
	err := repo.Create(context.Background(), disease)
	require.NoError(t, err)
	require.NotEmpty(t, disease.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDiseaseRepositoryFindByName(t *testing.T) {
	db, mock, cleanup := newDiseaseRepoMock(t)
	defer cleanup()
	repo := NewDiseaseRepository(db)

	rows := sqlmock.NewRows([]string{"id", "category", "name", "description", "vaccine_needed", "dose_quantity"}).
		AddRow("dis-1", models.DiseaseCategoryInfectious, "Measles", nil, true, 2)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, category, name, description, vaccine_needed, dose_quantity FROM diseases WHERE name = $1")).
		WithArgs("Measles").
		WillReturnRows(rows)

	disease, err := repo.FindByName(context.Background(), "Measles")
	require.NoError(t, err)
	require.Equal(t, 2, disease.DoseQuantity)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDiseaseRepositoryUpdateMissing(t *testing.T) {
	db, mock, cleanup := newDiseaseRepoMock(t)
	defer cleanup()
	repo := NewDiseaseRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE diseases")).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Update(context.Background(), &models.Disease{ID: "missing", Name: "Measles"})
	require.ErrorIs(t, err, sql.ErrNoRows)
	require.NoError(t, mock.ExpectationsWereMet())
}
