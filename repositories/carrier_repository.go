package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/quotelane/quotelane-backend/models"
	"github.com/quotelane/quotelane-backend/repositories/dbmodels"
)

func selectCarriers() squirrel.SelectBuilder {
	return NewQueryBuilder().
		Select(dbmodels.SelectCarrierColumn...).
		From(dbmodels.TABLE_CARRIERS)
}

func (repo *QuotelaneDbRepository) GetCarrierById(ctx context.Context, exec Executor,
	carrierId uuid.UUID,
) (models.Carrier, error) {
	return SqlToModel(
		ctx,
		exec,
		selectCarriers().Where(squirrel.Eq{"id": carrierId}),
		dbmodels.AdaptCarrier,
	)
}

func (repo *QuotelaneDbRepository) ListCarriers(ctx context.Context, exec Executor,
	organizationId string,
) ([]models.Carrier, error) {
	return SqlToListOfModels(
		ctx,
		exec,
		selectCarriers().
			Where(squirrel.Eq{"org_id": organizationId}).
			OrderBy("priority_rank, name"),
		dbmodels.AdaptCarrier,
	)
}

func (repo *QuotelaneDbRepository) ListEnabledCarriers(ctx context.Context, exec Executor,
	organizationId string,
) ([]models.Carrier, error) {
	return SqlToListOfModels(
		ctx,
		exec,
		selectCarriers().
			Where(squirrel.Eq{"org_id": organizationId, "enabled": true}).
			OrderBy("priority_rank, name"),
		dbmodels.AdaptCarrier,
	)
}

func (repo *QuotelaneDbRepository) CreateCarrier(ctx context.Context, exec Executor,
	input models.CreateCarrierInput, newCarrierId uuid.UUID,
) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Insert(dbmodels.TABLE_CARRIERS).
			Columns("id", "org_id", "name", "market_type", "priority_rank", "enabled").
			Values(newCarrierId, input.OrganizationId, input.Name,
				string(input.MarketType), input.PriorityRank, true),
	)
}

func (repo *QuotelaneDbRepository) UpdateCarrier(ctx context.Context, exec Executor,
	input models.UpdateCarrierInput,
) error {
	query := NewQueryBuilder().
		Update(dbmodels.TABLE_CARRIERS).
		Where(squirrel.Eq{"id": input.Id})

	if input.Name != nil {
		query = query.Set("name", *input.Name)
	}
	if input.MarketType != nil {
		query = query.Set("market_type", string(*input.MarketType))
	}
	if input.PriorityRank != nil {
		query = query.Set("priority_rank", *input.PriorityRank)
	}
	if input.Enabled != nil {
		query = query.Set("enabled", *input.Enabled)
	}

	return ExecBuilder(ctx, exec, query)
}
