package usecases

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/quotelane/quotelane-backend/models"
	"github.com/quotelane/quotelane-backend/repositories"
	"github.com/quotelane/quotelane-backend/usecases/executor_factory"
)

type CarrierRepository interface {
	GetCarrierById(ctx context.Context, exec repositories.Executor,
		carrierId uuid.UUID) (models.Carrier, error)
	ListCarriers(ctx context.Context, exec repositories.Executor,
		organizationId string) ([]models.Carrier, error)
	CreateCarrier(ctx context.Context, exec repositories.Executor,
		input models.CreateCarrierInput, newCarrierId uuid.UUID) error
	UpdateCarrier(ctx context.Context, exec repositories.Executor,
		input models.UpdateCarrierInput) error
}

type CarrierUsecase struct {
	executorFactory   executor_factory.ExecutorFactory
	carrierRepository CarrierRepository
}

func (usecase *CarrierUsecase) GetCarrier(ctx context.Context,
	organizationId string, carrierId uuid.UUID,
) (models.Carrier, error) {
	carrier, err := usecase.carrierRepository.GetCarrierById(ctx,
		usecase.executorFactory.NewExecutor(), carrierId)
	if err != nil {
		return models.Carrier{}, err
	}
	if carrier.OrganizationId != organizationId {
		return models.Carrier{}, errors.Wrap(models.NotFoundError,
			"carrier does not belong to the organization")
	}
	return carrier, nil
}

func (usecase *CarrierUsecase) ListCarriers(ctx context.Context,
	organizationId string,
) ([]models.Carrier, error) {
	return usecase.carrierRepository.ListCarriers(ctx,
		usecase.executorFactory.NewExecutor(), organizationId)
}

func (usecase *CarrierUsecase) CreateCarrier(ctx context.Context,
	input models.CreateCarrierInput,
) (models.Carrier, error) {
	if input.Name == "" {
		return models.Carrier{}, errors.Wrap(models.BadParameterError,
			"carrier name is required")
	}
	if input.MarketType == "" {
		input.MarketType = models.MarketTypeStandard
	}

	newCarrierId := uuid.New()
	var created models.Carrier
	err := usecase.executorFactory.Transaction(ctx, func(tx repositories.Transaction) error {
		if err := usecase.carrierRepository.CreateCarrier(ctx, tx, input, newCarrierId); err != nil {
			return err
		}
		var err error
		created, err = usecase.carrierRepository.GetCarrierById(ctx, tx, newCarrierId)
		return err
	})
	if err != nil {
		return models.Carrier{}, err
	}
	return created, nil
}

func (usecase *CarrierUsecase) UpdateCarrier(ctx context.Context,
	organizationId string, input models.UpdateCarrierInput,
) (models.Carrier, error) {
	var updated models.Carrier
	err := usecase.executorFactory.Transaction(ctx, func(tx repositories.Transaction) error {
		carrier, err := usecase.carrierRepository.GetCarrierById(ctx, tx, input.Id)
		if err != nil {
			return err
		}
		if carrier.OrganizationId != organizationId {
			return errors.Wrap(models.NotFoundError,
				"carrier does not belong to the organization")
		}
		if err := usecase.carrierRepository.UpdateCarrier(ctx, tx, input); err != nil {
			return err
		}
		updated, err = usecase.carrierRepository.GetCarrierById(ctx, tx, input.Id)
		return err
	})
	if err != nil {
		return models.Carrier{}, err
	}
	return updated, nil
}
