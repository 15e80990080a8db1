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

func newCampaignRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestCampaignRepositoryFindByID(t *testing.T) {
	db, mock, cleanup := newCampaignRepoMock(t)
	defer cleanup()
	repo := NewCampaignRepository(db)

	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "vaccine_id", "description", "location", "start_date", "end_date", "status"}).
		AddRow("cam-1", "vac-1", nil, nil, start, end, models.CampaignStatusUpcoming)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, vaccine_id, description, location, start_date, end_date, status FROM campaigns WHERE id = $1")).
		WithArgs("cam-1").
		WillReturnRows(rows)

	campaign, err := repo.FindByID(context.Background(), "cam-1")
	require.NoError(t, err)
	require.Equal(t, "vac-1", campaign.VaccineID)
	require.Equal(t, models.CampaignStatusUpcoming, campaign.Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCampaignRepositoryExistsOverlapping(t *testing.T) {
	db, mock, cleanup := newCampaignRepoMock(t)
	defer cleanup()
	repo := NewCampaignRepository(db)

	start := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM campaigns WHERE vaccine_id = $1 AND start_date <= $3 AND end_date >= $2 LIMIT 1")).
		WithArgs("vac-1", start, end).
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))

	exists, err := repo.ExistsOverlapping(context.Background(), "vac-1", start, end)
	require.NoError(t, err)
	require.True(t, exists)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCampaignRepositoryExistsOverlappingNoRows(t *testing.T) {
	db, mock, cleanup := newCampaignRepoMock(t)
	defer cleanup()
	repo := NewCampaignRepository(db)

	start := time.Date(2026, 1, 11, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM campaigns")).
		WithArgs("vac-1", start, end).
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}))

	exists, err := repo.ExistsOverlapping(context.Background(), "vac-1", start, end)
	require.NoError(t, err)
	require.False(t, exists)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCampaignRepositoryCreateDefaultsStatus(t *testing.T) {
	db, mock, cleanup := newCampaignRepoMock(t)
	defer cleanup()
	repo := NewCampaignRepository(db)

	mock.ExpectExec("INSERT INTO campaigns").
		WillReturnResult(sqlmock.NewResult(1, 1))

	campaign := &models.Campaign{
		VaccineID: "vac-1",
		StartDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
	}
	err := repo.Create(context.Background(), campaign)
	require.NoError(t, err)
	require.NotEmpty(t, campaign.ID)
	require.Equal(t, models.CampaignStatusUpcoming, campaign.Status)
	require.NoError(t, mock.ExpectationsWereMet())
}
