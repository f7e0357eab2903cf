package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/quotelane/quotelane-backend/models"
	"github.com/quotelane/quotelane-backend/repositories/dbmodels"
)

// UpsertCarrierFitResult writes one evaluation outcome, keyed by (lead,
// carrier): re-running an evaluation replaces the previous row instead of
// accumulating duplicates.
func (repo *QuotelaneDbRepository) UpsertCarrierFitResult(ctx context.Context, exec Executor,
	result models.CarrierFitResult,
) error {
	reasons, err := dbmodels.SerializeReasons(result.Reasons)
	if err != nil {
		return err
	}

	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Insert(dbmodels.TABLE_CARRIER_FIT_RESULTS).
			Columns(
				"id",
				"lead_id",
				"carrier_id",
				"eligible",
				"tier",
				"score",
				"reasons",
				"has_rule",
				"rule_id",
				"rule_version",
			).
			Values(
				uuid.New(),
				result.LeadId,
				result.CarrierId,
				result.Eligible,
				string(result.Tier),
				result.Score,
				reasons,
				result.HasRule,
				result.RuleId,
				result.RuleVersion,
			).
			Suffix("ON CONFLICT (lead_id, carrier_id) DO UPDATE SET " +
				"eligible = EXCLUDED.eligible, " +
				"tier = EXCLUDED.tier, " +
				"score = EXCLUDED.score, " +
				"reasons = EXCLUDED.reasons, " +
				"has_rule = EXCLUDED.has_rule, " +
				"rule_id = EXCLUDED.rule_id, " +
				"rule_version = EXCLUDED.rule_version, " +
				"evaluated_at = CURRENT_TIMESTAMP",
			),
	)
}

func (repo *QuotelaneDbRepository) ListFitResultsForLead(ctx context.Context, exec Executor,
	leadId uuid.UUID,
) ([]models.CarrierFitResult, error) {
	return SqlToListOfModelsAdapterWithErr(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectCarrierFitResultColumn...).
			From(dbmodels.TABLE_CARRIER_FIT_RESULTS).
			Where(squirrel.Eq{"lead_id": leadId}).
			OrderBy("carrier_id"),
		dbmodels.AdaptCarrierFitResult,
	)
}
