package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/quotelane/quotelane-backend/models"
	"github.com/quotelane/quotelane-backend/repositories/dbmodels"
)

// GetLatestRuleVersion returns the highest existing version for the (carrier,
// line of business) pair, active or not, 0 when none exists yet.
func (repo *QuotelaneDbRepository) GetLatestRuleVersion(ctx context.Context, exec Executor,
	organizationId string, carrierId uuid.UUID, lineOfBusiness string,
) (int, error) {
	var version int
	err := exec.QueryRow(ctx,
		`SELECT coalesce(max(version), 0) FROM appetite_rules
		 WHERE org_id = $1 AND carrier_id = $2 AND line_of_business = $3`,
		organizationId, carrierId, lineOfBusiness,
	).Scan(&version)
	if err != nil {
		return 0, errors.Wrap(err, "error reading latest appetite rule version")
	}
	return version, nil
}

func (repo *QuotelaneDbRepository) CreateAppetiteRule(ctx context.Context, exec Executor,
	input models.CreateAppetiteRuleInput, newRuleId uuid.UUID, version int,
) error {
	err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Insert(dbmodels.TABLE_APPETITE_RULES).
			Columns(
				"id",
				"org_id",
				"carrier_id",
				"line_of_business",
				"version",
				"active",
				"allowed_industries",
				"denied_industries",
				"allowed_regions",
				"denied_regions",
				"min_revenue",
				"max_revenue",
				"min_employees",
				"max_employees",
				"min_years_in_operation",
				"loss_lookback_years",
				"max_loss_count",
				"max_total_incurred",
			).
			Values(
				newRuleId,
				input.OrganizationId,
				input.CarrierId,
				input.LineOfBusiness,
				version,
				true,
				input.AllowedIndustries,
				input.DeniedIndustries,
				input.AllowedRegions,
				input.DeniedRegions,
				input.MinRevenue,
				input.MaxRevenue,
				input.MinEmployees,
				input.MaxEmployees,
				input.MinYearsInOperation,
				input.LossLookbackYears,
				input.MaxLossCount,
				input.MaxTotalIncurred,
			),
	)
	if IsUniqueViolationError(err) {
		return errors.Wrap(models.ConflictError,
			"an appetite rule with this version already exists")
	}
	return err
}

// DeactivatePriorVersions turns off every other version of the (carrier, line
// of business) chain, keeping at most one version active.
func (repo *QuotelaneDbRepository) DeactivatePriorVersions(ctx context.Context, exec Executor,
	organizationId string, carrierId uuid.UUID, lineOfBusiness string, exceptRuleId uuid.UUID,
) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Update(dbmodels.TABLE_APPETITE_RULES).
			Set("active", false).
			Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
			Where(squirrel.Eq{
				"org_id":           organizationId,
				"carrier_id":       carrierId,
				"line_of_business": lineOfBusiness,
			}).
			Where(squirrel.NotEq{"id": exceptRuleId}),
	)
}

// SetAppetiteRuleActive toggles one version. Rules referenced by stored fit
// results are never deleted: deactivation is the only way to retire them.
func (repo *QuotelaneDbRepository) SetAppetiteRuleActive(ctx context.Context, exec Executor,
	ruleId uuid.UUID, active bool,
) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Update(dbmodels.TABLE_APPETITE_RULES).
			Set("active", active).
			Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
			Where(squirrel.Eq{"id": ruleId}),
	)
}
