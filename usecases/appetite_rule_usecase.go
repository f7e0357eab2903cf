package usecases

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/quotelane/quotelane-backend/models"
	"github.com/quotelane/quotelane-backend/repositories"
	"github.com/quotelane/quotelane-backend/usecases/executor_factory"
)

type AppetiteRuleRepository interface {
	GetAppetiteRuleById(ctx context.Context, exec repositories.Executor,
		ruleId uuid.UUID) (models.AppetiteRule, error)
	ListAppetiteRules(ctx context.Context, exec repositories.Executor,
		organizationId string, filters models.ListAppetiteRulesFilters) ([]models.AppetiteRule, error)
	GetLatestRuleVersion(ctx context.Context, exec repositories.Executor,
		organizationId string, carrierId uuid.UUID, lineOfBusiness string) (int, error)
	CreateAppetiteRule(ctx context.Context, exec repositories.Executor,
		input models.CreateAppetiteRuleInput, newRuleId uuid.UUID, version int) error
	DeactivatePriorVersions(ctx context.Context, exec repositories.Executor,
		organizationId string, carrierId uuid.UUID, lineOfBusiness string, exceptRuleId uuid.UUID) error
	SetAppetiteRuleActive(ctx context.Context, exec repositories.Executor,
		ruleId uuid.UUID, active bool) error
}

type RuleCarrierRepository interface {
	GetCarrierById(ctx context.Context, exec repositories.Executor,
		carrierId uuid.UUID) (models.Carrier, error)
}

type AppetiteRuleUsecase struct {
	executorFactory   executor_factory.ExecutorFactory
	ruleRepository    AppetiteRuleRepository
	carrierRepository RuleCarrierRepository
}

// CreateRule appends a new version to the (carrier, line of business) rule
// chain. Prior versions are never mutated: the new rule is written as version
// N+1 and becomes the only active version.
func (usecase *AppetiteRuleUsecase) CreateRule(ctx context.Context,
	input models.CreateAppetiteRuleInput,
) (models.AppetiteRule, error) {
	if err := validateRuleBounds(input); err != nil {
		return models.AppetiteRule{}, err
	}
	if input.LineOfBusiness == "" {
		return models.AppetiteRule{}, errors.Wrap(models.BadParameterError,
			"line of business is required")
	}

	carrier, err := usecase.carrierRepository.GetCarrierById(ctx,
		usecase.executorFactory.NewExecutor(), input.CarrierId)
	if err != nil {
		return models.AppetiteRule{}, err
	}
	if carrier.OrganizationId != input.OrganizationId {
		return models.AppetiteRule{}, errors.Wrap(models.NotFoundError,
			"carrier does not belong to the organization")
	}

	newRuleId := uuid.New()
	var created models.AppetiteRule
	err = usecase.executorFactory.Transaction(ctx, func(tx repositories.Transaction) error {
		latest, err := usecase.ruleRepository.GetLatestRuleVersion(ctx, tx,
			input.OrganizationId, input.CarrierId, input.LineOfBusiness)
		if err != nil {
			return err
		}
		if err := usecase.ruleRepository.CreateAppetiteRule(ctx, tx,
			input, newRuleId, latest+1); err != nil {
			return err
		}
		if err := usecase.ruleRepository.DeactivatePriorVersions(ctx, tx,
			input.OrganizationId, input.CarrierId, input.LineOfBusiness, newRuleId); err != nil {
			return err
		}
		created, err = usecase.ruleRepository.GetAppetiteRuleById(ctx, tx, newRuleId)
		return err
	})
	if err != nil {
		return models.AppetiteRule{}, err
	}
	return created, nil
}

func (usecase *AppetiteRuleUsecase) GetRule(ctx context.Context,
	organizationId string, ruleId uuid.UUID,
) (models.AppetiteRule, error) {
	rule, err := usecase.ruleRepository.GetAppetiteRuleById(ctx,
		usecase.executorFactory.NewExecutor(), ruleId)
	if err != nil {
		return models.AppetiteRule{}, err
	}
	if rule.OrganizationId != organizationId {
		return models.AppetiteRule{}, errors.Wrap(models.NotFoundError,
			"appetite rule does not belong to the organization")
	}
	return rule, nil
}

func (usecase *AppetiteRuleUsecase) ListRules(ctx context.Context,
	organizationId string, filters models.ListAppetiteRulesFilters,
) ([]models.AppetiteRule, error) {
	return usecase.ruleRepository.ListAppetiteRules(ctx,
		usecase.executorFactory.NewExecutor(), organizationId, filters)
}

// ActivateRule makes one version the active one, deactivating every other
// version of its chain in the same transaction so at most one version stays
// active.
func (usecase *AppetiteRuleUsecase) ActivateRule(ctx context.Context,
	organizationId string, ruleId uuid.UUID,
) error {
	return usecase.executorFactory.Transaction(ctx, func(tx repositories.Transaction) error {
		rule, err := usecase.ruleRepository.GetAppetiteRuleById(ctx, tx, ruleId)
		if err != nil {
			return err
		}
		if rule.OrganizationId != organizationId {
			return errors.Wrap(models.NotFoundError,
				"appetite rule does not belong to the organization")
		}
		if err := usecase.ruleRepository.DeactivatePriorVersions(ctx, tx,
			rule.OrganizationId, rule.CarrierId, rule.LineOfBusiness, rule.Id); err != nil {
			return err
		}
		return usecase.ruleRepository.SetAppetiteRuleActive(ctx, tx, rule.Id, true)
	})
}

func (usecase *AppetiteRuleUsecase) DeactivateRule(ctx context.Context,
	organizationId string, ruleId uuid.UUID,
) error {
	return usecase.executorFactory.Transaction(ctx, func(tx repositories.Transaction) error {
		rule, err := usecase.ruleRepository.GetAppetiteRuleById(ctx, tx, ruleId)
		if err != nil {
			return err
		}
		if rule.OrganizationId != organizationId {
			return errors.Wrap(models.NotFoundError,
				"appetite rule does not belong to the organization")
		}
		return usecase.ruleRepository.SetAppetiteRuleActive(ctx, tx, rule.Id, false)
	})
}

func validateRuleBounds(input models.CreateAppetiteRuleInput) error {
	if input.MinRevenue != nil && input.MaxRevenue != nil &&
		*input.MinRevenue > *input.MaxRevenue {
		return errors.Wrap(models.ErrRuleBoundsIncoherent, "revenue bounds")
	}
	if input.MinEmployees != nil && input.MaxEmployees != nil &&
		*input.MinEmployees > *input.MaxEmployees {
		return errors.Wrap(models.ErrRuleBoundsIncoherent, "employee bounds")
	}
	if input.LossLookbackYears < 0 {
		return errors.Wrap(models.BadParameterError,
			"loss lookback years must not be negative")
	}
	return nil
}
