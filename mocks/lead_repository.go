package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/quotelane/quotelane-backend/models"
	"github.com/quotelane/quotelane-backend/repositories"
)

type LeadRepository struct {
	mock.Mock
}

func (m *LeadRepository) GetLeadById(ctx context.Context, exec repositories.Executor,
	leadId uuid.UUID,
) (models.Lead, error) {
	args := m.Called(exec, leadId)
	return args.Get(0).(models.Lead), args.Error(1)
}

func (m *LeadRepository) GetLatestIntakeSubmission(ctx context.Context, exec repositories.Executor,
	leadId uuid.UUID,
) (*models.IntakeSubmission, error) {
	args := m.Called(exec, leadId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.IntakeSubmission), args.Error(1)
}

func (m *LeadRepository) LockLead(ctx context.Context, tx repositories.Transaction,
	leadId uuid.UUID,
) error {
	args := m.Called(tx, leadId)
	return args.Error(0)
}
