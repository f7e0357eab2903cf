package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/quotelane/quotelane-backend/models"
	"github.com/quotelane/quotelane-backend/repositories"
)

type FitResultRepository struct {
	mock.Mock
}

func (m *FitResultRepository) UpsertCarrierFitResult(ctx context.Context, exec repositories.Executor,
	result models.CarrierFitResult,
) error {
	args := m.Called(exec, result)
	return args.Error(0)
}

func (m *FitResultRepository) ListFitResultsForLead(ctx context.Context, exec repositories.Executor,
	leadId uuid.UUID,
) ([]models.CarrierFitResult, error) {
	args := m.Called(exec, leadId)
	return args.Get(0).([]models.CarrierFitResult), args.Error(1)
}
