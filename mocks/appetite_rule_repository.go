package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/quotelane/quotelane-backend/models"
	"github.com/quotelane/quotelane-backend/repositories"
)

type AppetiteRuleRepository struct {
	mock.Mock
}

func (m *AppetiteRuleRepository) GetAppetiteRuleById(ctx context.Context, exec repositories.Executor,
	ruleId uuid.UUID,
) (models.AppetiteRule, error) {
	args := m.Called(exec, ruleId)
	return args.Get(0).(models.AppetiteRule), args.Error(1)
}

func (m *AppetiteRuleRepository) ListAppetiteRules(ctx context.Context, exec repositories.Executor,
	organizationId string, filters models.ListAppetiteRulesFilters,
) ([]models.AppetiteRule, error) {
	args := m.Called(exec, organizationId, filters)
	return args.Get(0).([]models.AppetiteRule), args.Error(1)
}

func (m *AppetiteRuleRepository) ListLatestActiveRules(ctx context.Context, exec repositories.Executor,
	organizationId string, lineOfBusiness string,
) ([]models.AppetiteRule, error) {
	args := m.Called(exec, organizationId, lineOfBusiness)
	return args.Get(0).([]models.AppetiteRule), args.Error(1)
}

func (m *AppetiteRuleRepository) GetLatestRuleVersion(ctx context.Context, exec repositories.Executor,
	organizationId string, carrierId uuid.UUID, lineOfBusiness string,
) (int, error) {
	args := m.Called(exec, organizationId, carrierId, lineOfBusiness)
	return args.Int(0), args.Error(1)
}

func (m *AppetiteRuleRepository) CreateAppetiteRule(ctx context.Context, exec repositories.Executor,
	input models.CreateAppetiteRuleInput, newRuleId uuid.UUID, version int,
) error {
	args := m.Called(exec, input, newRuleId, version)
	return args.Error(0)
}

func (m *AppetiteRuleRepository) DeactivatePriorVersions(ctx context.Context, exec repositories.Executor,
	organizationId string, carrierId uuid.UUID, lineOfBusiness string, exceptRuleId uuid.UUID,
) error {
	args := m.Called(exec, organizationId, carrierId, lineOfBusiness, exceptRuleId)
	return args.Error(0)
}

func (m *AppetiteRuleRepository) SetAppetiteRuleActive(ctx context.Context, exec repositories.Executor,
	ruleId uuid.UUID, active bool,
) error {
	args := m.Called(exec, ruleId, active)
	return args.Error(0)
}
