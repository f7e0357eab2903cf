package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/quotelane/quotelane-backend/models"
	"github.com/quotelane/quotelane-backend/repositories/dbmodels"
)

// UpsertMarketClassification overwrites the lead-level classification. Only
// the market aggregator writes through this method.
func (repo *QuotelaneDbRepository) UpsertMarketClassification(ctx context.Context, exec Executor,
	classification models.MarketClassification,
) error {
	reasonCodes := classification.ReasonCodes
	if reasonCodes == nil {
		reasonCodes = []string{}
	}

	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Insert(dbmodels.TABLE_MARKET_CLASSIFICATIONS).
			Columns("id", "lead_id", "classification", "confidence", "reason_codes").
			Values(
				uuid.New(),
				classification.LeadId,
				string(classification.Classification),
				classification.Confidence,
				reasonCodes,
			).
			Suffix("ON CONFLICT (lead_id) DO UPDATE SET "+
				"classification = EXCLUDED.classification, "+
				"confidence = EXCLUDED.confidence, "+
				"reason_codes = EXCLUDED.reason_codes, "+
				"evaluated_at = CURRENT_TIMESTAMP",
			),
	)
}

func (repo *QuotelaneDbRepository) GetMarketClassification(ctx context.Context, exec Executor,
	leadId uuid.UUID,
) (models.MarketClassification, error) {
	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectMarketClassificationColumn...).
			From(dbmodels.TABLE_MARKET_CLASSIFICATIONS).
			Where(squirrel.Eq{"lead_id": leadId}),
		dbmodels.AdaptMarketClassification,
	)
}
