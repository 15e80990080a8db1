package repository

import (
	"context"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func newStudentRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestStudentRepositoryListEligibleByDiseaseName(t *testing.T) {
	db, mock, cleanup := newStudentRepoMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	rows := sqlmock.NewRows([]string{"student_id", "dose_received"}).
		AddRow("stu-1", 0).
		AddRow("stu-2", 1)
	mock.ExpectQuery(regexp.QuoteMeta("HAVING COUNT(vr.id) < $2")).
		WithArgs("Measles", 2).
		WillReturnRows(rows)

	students, err := repo.ListEligibleByDiseaseName(context.Background(), "Measles", 2)
	require.NoError(t, err)
	require.Len(t, students, 2)
	require.Equal(t, 1, students[1].DoseReceived)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepositoryListEligibleEmpty(t *testing.T) {
	db, mock, cleanup := newStudentRepoMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("HAVING COUNT(vr.id) < $2")).
		WithArgs("Measles", 2).
		WillReturnRows(sqlmock.NewRows([]string{"student_id", "dose_received"}))

	students, err := repo.ListEligibleByDiseaseName(context.Background(), "Measles", 2)
	require.NoError(t, err)
	require.Empty(t, students)
	require.NoError(t, mock.ExpectationsWereMet())
}
