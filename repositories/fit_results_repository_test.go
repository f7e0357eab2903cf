package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"

	"github.com/quotelane/quotelane-backend/models"
)

func TestUpsertCarrierFitResult_insertsWithConflictClause(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	leadId := uuid.New()
	carrierId := uuid.New()
	ruleId := uuid.New()
	ruleVersion := 2
	result := models.CarrierFitResult{
		LeadId:    leadId,
		CarrierId: carrierId,
		Eligible:  true,
		Tier:      models.GoodFit,
		Score:     85,
		Reasons: []models.Reason{
			{Code: "state_allowed", Kind: models.ReasonInclusion, Message: "All operating regions are in appetite"},
		},
		HasRule:     true,
		RuleId:      &ruleId,
		RuleVersion: &ruleVersion,
	}

	mockPool.ExpectExec("INSERT INTO carrier_fit_results .* ON CONFLICT \\(lead_id, carrier_id\\) DO UPDATE SET").
		WithArgs(pgxmock.AnyArg(), leadId, carrierId, true, "GOOD_FIT", 85,
			pgxmock.AnyArg(), true, &ruleId, &ruleVersion).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	repo := NewQuotelaneDbRepository()
	err = repo.UpsertCarrierFitResult(context.Background(), mockPool, result)

	require.NoError(t, err)
	require.NoError(t, mockPool.ExpectationsWereMet())
}

func TestUpsertMarketClassification_insertsWithConflictClause(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	leadId := uuid.New()
	classification := models.MarketClassification{
		LeadId:         leadId,
		Classification: models.MarketStandard,
		Confidence:     0.75,
		ReasonCodes:    []string{"standard_market_viable"},
	}

	mockPool.ExpectExec("INSERT INTO market_classifications .* ON CONFLICT \\(lead_id\\) DO UPDATE SET").
		WithArgs(pgxmock.AnyArg(), leadId, "STANDARD", 0.75,
			[]string{"standard_market_viable"}).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	repo := NewQuotelaneDbRepository()
	err = repo.UpsertMarketClassification(context.Background(), mockPool, classification)

	require.NoError(t, err)
	require.NoError(t, mockPool.ExpectationsWereMet())
}

func TestLockLead_missingLeadIsNotFound(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	leadId := uuid.New()
	mockPool.ExpectBegin()
	mockPool.ExpectExec("SELECT id FROM leads WHERE id = \\$1 FOR UPDATE").
		WithArgs(leadId).
		WillReturnResult(pgxmock.NewResult("SELECT", 0))
	mockPool.ExpectRollback()

	tx, err := mockPool.Begin(context.Background())
	require.NoError(t, err)
	defer tx.Rollback(context.Background())

	repo := NewQuotelaneDbRepository()
	err = repo.LockLead(context.Background(), PgTx{tx: tx}, leadId)

	require.ErrorIs(t, err, models.NotFoundError)
}
