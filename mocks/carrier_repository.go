package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/quotelane/quotelane-backend/models"
	"github.com/quotelane/quotelane-backend/repositories"
)

type CarrierRepository struct {
	mock.Mock
}

func (m *CarrierRepository) GetCarrierById(ctx context.Context, exec repositories.Executor,
	carrierId uuid.UUID,
) (models.Carrier, error) {
	args := m.Called(exec, carrierId)
	return args.Get(0).(models.Carrier), args.Error(1)
}

func (m *CarrierRepository) ListCarriers(ctx context.Context, exec repositories.Executor,
	organizationId string,
) ([]models.Carrier, error) {
	args := m.Called(exec, organizationId)
	return args.Get(0).([]models.Carrier), args.Error(1)
}

func (m *CarrierRepository) ListEnabledCarriers(ctx context.Context, exec repositories.Executor,
	organizationId string,
) ([]models.Carrier, error) {
	args := m.Called(exec, organizationId)
	return args.Get(0).([]models.Carrier), args.Error(1)
}

func (m *CarrierRepository) CreateCarrier(ctx context.Context, exec repositories.Executor,
	input models.CreateCarrierInput, newCarrierId uuid.UUID,
) error {
	args := m.Called(exec, input, newCarrierId)
	return args.Error(0)
}

func (m *CarrierRepository) UpdateCarrier(ctx context.Context, exec repositories.Executor,
	input models.UpdateCarrierInput,
) error {
	args := m.Called(exec, input)
	return args.Error(0)
}
