package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/quotelane/quotelane-backend/models"
	"github.com/quotelane/quotelane-backend/repositories"
)

type ClassificationRepository struct {
	mock.Mock
}

func (m *ClassificationRepository) UpsertMarketClassification(ctx context.Context, exec repositories.Executor,
	classification models.MarketClassification,
) error {
	args := m.Called(exec, classification)
	return args.Error(0)
}

func (m *ClassificationRepository) GetMarketClassification(ctx context.Context, exec repositories.Executor,
	leadId uuid.UUID,
) (models.MarketClassification, error) {
	args := m.Called(exec, leadId)
	return args.Get(0).(models.MarketClassification), args.Error(1)
}
