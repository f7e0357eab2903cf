package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/quotelane/quotelane-backend/models"
	"github.com/quotelane/quotelane-backend/repositories/dbmodels"
)

func selectAppetiteRules() squirrel.SelectBuilder {
	return NewQueryBuilder().
		Select(dbmodels.SelectAppetiteRuleColumn...).
		From(dbmodels.TABLE_APPETITE_RULES)
}

func (repo *QuotelaneDbRepository) GetAppetiteRuleById(ctx context.Context, exec Executor,
	ruleId uuid.UUID,
) (models.AppetiteRule, error) {
	return SqlToModel(
		ctx,
		exec,
		selectAppetiteRules().Where(squirrel.Eq{"id": ruleId}),
		dbmodels.AdaptAppetiteRule,
	)
}

func (repo *QuotelaneDbRepository) ListAppetiteRules(ctx context.Context, exec Executor,
	organizationId string, filters models.ListAppetiteRulesFilters,
) ([]models.AppetiteRule, error) {
	query := selectAppetiteRules().
		Where(squirrel.Eq{"org_id": organizationId}).
		OrderBy("carrier_id", "line_of_business", "version DESC")

	if filters.CarrierId != nil {
		query = query.Where(squirrel.Eq{"carrier_id": *filters.CarrierId})
	}
	if filters.LineOfBusiness != "" {
		query = query.Where(squirrel.Eq{"line_of_business": filters.LineOfBusiness})
	}
	if filters.ActiveOnly {
		query = query.Where(squirrel.Eq{"active": true})
	}

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptAppetiteRule)
}

// ListLatestActiveRules returns, for every carrier of the organization, the
// highest-versioned active rule for the line of business. Carriers without
// any active rule are simply absent from the result.
func (repo *QuotelaneDbRepository) ListLatestActiveRules(ctx context.Context, exec Executor,
	organizationId string, lineOfBusiness string,
) ([]models.AppetiteRule, error) {
	return SqlToListOfModels(
		ctx,
		exec,
		selectAppetiteRules().
			Options("DISTINCT ON (carrier_id)").
			Where(squirrel.Eq{
				"org_id":           organizationId,
				"line_of_business": lineOfBusiness,
				"active":           true,
			}).
			OrderBy("carrier_id", "version DESC"),
		dbmodels.AdaptAppetiteRule,
	)
}
