package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"

	"github.com/quotelane/quotelane-backend/models"
)

func TestGetLatestRuleVersion(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	carrierId := uuid.New()
	mockPool.ExpectQuery(`SELECT coalesce\(max\(version\), 0\) FROM appetite_rules`).
		WithArgs("org-1", carrierId, "general_liability").
		WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(3))

	repo := NewQuotelaneDbRepository()
	version, err := repo.GetLatestRuleVersion(context.Background(), mockPool,
		"org-1", carrierId, "general_liability")

	require.NoError(t, err)
	require.Equal(t, 3, version)
	require.NoError(t, mockPool.ExpectationsWereMet())
}

func TestCreateAppetiteRule_duplicateVersionIsConflict(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	input := models.CreateAppetiteRuleInput{
		OrganizationId: "org-1",
		CarrierId:      uuid.New(),
		LineOfBusiness: "general_liability",
	}

	mockPool.ExpectExec("INSERT INTO appetite_rules").
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

	repo := NewQuotelaneDbRepository()
	err = repo.CreateAppetiteRule(context.Background(), mockPool, input, uuid.New(), 2)

	require.ErrorIs(t, err, models.ConflictError)
}
