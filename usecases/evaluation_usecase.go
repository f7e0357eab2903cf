package usecases

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/quotelane/quotelane-backend/models"
	"github.com/quotelane/quotelane-backend/repositories"
	"github.com/quotelane/quotelane-backend/usecases/evaluate_appetite"
	"github.com/quotelane/quotelane-backend/usecases/executor_factory"
	"github.com/quotelane/quotelane-backend/utils"
)

// Number of carriers evaluated concurrently for one lead. Evaluation is pure
// CPU work, the limit only bounds goroutine fan-out on large carrier panels.
const maxParallelCarrierEvaluations = 5

type EvaluationLeadRepository interface {
	GetLeadById(ctx context.Context, exec repositories.Executor, leadId uuid.UUID) (models.Lead, error)
	GetLatestIntakeSubmission(ctx context.Context, exec repositories.Executor,
		leadId uuid.UUID) (*models.IntakeSubmission, error)
	LockLead(ctx context.Context, tx repositories.Transaction, leadId uuid.UUID) error
}

type EvaluationCarrierRepository interface {
	ListCarriers(ctx context.Context, exec repositories.Executor,
		organizationId string) ([]models.Carrier, error)
	ListEnabledCarriers(ctx context.Context, exec repositories.Executor,
		organizationId string) ([]models.Carrier, error)
}

type EvaluationRuleRepository interface {
	ListLatestActiveRules(ctx context.Context, exec repositories.Executor,
		organizationId string, lineOfBusiness string) ([]models.AppetiteRule, error)
}

type FitResultRepository interface {
	UpsertCarrierFitResult(ctx context.Context, exec repositories.Executor,
		result models.CarrierFitResult) error
	ListFitResultsForLead(ctx context.Context, exec repositories.Executor,
		leadId uuid.UUID) ([]models.CarrierFitResult, error)
}

type ClassificationRepository interface {
	UpsertMarketClassification(ctx context.Context, exec repositories.Executor,
		classification models.MarketClassification) error
	GetMarketClassification(ctx context.Context, exec repositories.Executor,
		leadId uuid.UUID) (models.MarketClassification, error)
}

type EvaluationUsecase struct {
	executorFactory          executor_factory.ExecutorFactory
	leadRepository           EvaluationLeadRepository
	carrierRepository        EvaluationCarrierRepository
	ruleRepository           EvaluationRuleRepository
	fitResultRepository      FitResultRepository
	classificationRepository ClassificationRepository
}

// EvaluateLead runs the full appetite evaluation for one lead: extract facts
// from the latest intake, score every enabled carrier against its latest
// active rule, classify the market direction, persist everything, and return
// the bucketed response. Re-running it with unchanged inputs is idempotent.
func (usecase *EvaluationUsecase) EvaluateLead(ctx context.Context,
	organizationId string, leadId uuid.UUID,
) (models.LeadEvaluation, error) {
	start := time.Now()
	ctx, span := utils.OpenTelemetryTracerFromContext(ctx).
		Start(ctx, "EvaluationUsecase.EvaluateLead")
	defer span.End()

	exec := usecase.executorFactory.NewExecutor()

	lead, err := usecase.leadRepository.GetLeadById(ctx, exec, leadId)
	if err != nil {
		return models.LeadEvaluation{}, err
	}
	if lead.OrganizationId != organizationId {
		return models.LeadEvaluation{}, errors.Wrap(models.NotFoundError,
			"lead does not belong to the organization")
	}

	intake, err := usecase.leadRepository.GetLatestIntakeSubmission(ctx, exec, leadId)
	if err != nil {
		return models.LeadEvaluation{}, err
	}
	if intake == nil {
		return models.LeadEvaluation{}, models.ErrLeadHasNoIntake
	}

	facts := evaluate_appetite.ExtractFacts(intake.Answers)

	carriers, err := usecase.carrierRepository.ListEnabledCarriers(ctx, exec, organizationId)
	if err != nil {
		return models.LeadEvaluation{}, err
	}
	rules, err := usecase.ruleRepository.ListLatestActiveRules(ctx, exec,
		organizationId, intake.LineOfBusiness)
	if err != nil {
		return models.LeadEvaluation{}, err
	}

	rulesByCarrierId := make(map[uuid.UUID]models.AppetiteRule, len(rules))
	for _, rule := range rules {
		rulesByCarrierId[rule.CarrierId] = rule
	}
	carriersById := make(map[uuid.UUID]models.Carrier, len(carriers))
	for _, carrier := range carriers {
		carriersById[carrier.Id] = carrier
	}

	results, err := usecase.evaluateCarriers(ctx, leadId, facts, carriers, rulesByCarrierId)
	if err != nil {
		return models.LeadEvaluation{}, err
	}

	classification := evaluate_appetite.AggregateMarket(leadId, results, carriersById)

	// The write phase holds the lead's row lock so concurrent evaluations of
	// the same lead serialize instead of interleaving their upserts.
	err = usecase.executorFactory.Transaction(ctx, func(tx repositories.Transaction) error {
		if err := usecase.leadRepository.LockLead(ctx, tx, leadId); err != nil {
			return err
		}
		for _, result := range results {
			if err := usecase.fitResultRepository.UpsertCarrierFitResult(ctx, tx, result); err != nil {
				return err
			}
		}
		return usecase.classificationRepository.UpsertMarketClassification(ctx, tx, classification)
	})
	if err != nil {
		return models.LeadEvaluation{}, err
	}

	utils.LoggerFromContext(ctx).InfoContext(ctx, "evaluated lead appetite",
		"lead_id", leadId.String(),
		"line_of_business", intake.LineOfBusiness,
		"carriers", len(carriers),
		"classification", string(classification.Classification),
		"duration", time.Since(start).String(),
	)

	return buildLeadEvaluation(leadId, classification, results, carriersById), nil
}

// evaluateCarriers scores carriers in parallel. Each carrier evaluation is
// independent and read-only, so ordering does not matter; results are indexed
// by position to keep the output deterministic.
func (usecase *EvaluationUsecase) evaluateCarriers(ctx context.Context,
	leadId uuid.UUID, facts models.FactRecord,
	carriers []models.Carrier, rulesByCarrierId map[uuid.UUID]models.AppetiteRule,
) ([]models.CarrierFitResult, error) {
	results := make([]models.CarrierFitResult, len(carriers))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(maxParallelCarrierEvaluations)

	for i, carrier := range carriers {
		i, carrier := i, carrier
		group.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = errors.Wrapf(models.ErrPanicInAppetiteEvaluation,
						"carrier %s: %v", carrier.Id.String(), r)
				}
			}()
			if err := groupCtx.Err(); err != nil {
				return err
			}

			var rule *models.AppetiteRule
			if r, ok := rulesByCarrierId[carrier.Id]; ok {
				rule = &r
			}
			results[i] = evaluate_appetite.EvaluateCarrierFit(leadId, facts, carrier, rule)
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// GetLeadClassification reads back the stored evaluation for a lead: the
// market classification plus the bucketed carrier results from the last run.
func (usecase *EvaluationUsecase) GetLeadClassification(ctx context.Context,
	organizationId string, leadId uuid.UUID,
) (models.LeadEvaluation, error) {
	exec := usecase.executorFactory.NewExecutor()

	lead, err := usecase.leadRepository.GetLeadById(ctx, exec, leadId)
	if err != nil {
		return models.LeadEvaluation{}, err
	}
	if lead.OrganizationId != organizationId {
		return models.LeadEvaluation{}, errors.Wrap(models.NotFoundError,
			"lead does not belong to the organization")
	}

	classification, err := usecase.classificationRepository.GetMarketClassification(ctx, exec, leadId)
	if err != nil {
		return models.LeadEvaluation{}, err
	}
	results, err := usecase.fitResultRepository.ListFitResultsForLead(ctx, exec, leadId)
	if err != nil {
		return models.LeadEvaluation{}, err
	}

	// Disabled carriers may still have stored results from earlier runs, so
	// the read-back resolves names against the full carrier list.
	carriers, err := usecase.carrierRepository.ListCarriers(ctx, exec, organizationId)
	if err != nil {
		return models.LeadEvaluation{}, err
	}
	carriersById := make(map[uuid.UUID]models.Carrier, len(carriers))
	for _, carrier := range carriers {
		carriersById[carrier.Id] = carrier
	}

	return buildLeadEvaluation(leadId, classification, results, carriersById), nil
}

// buildLeadEvaluation ranks results and splits them into the four presentation
// buckets, filtering each result's reasons down to what the bucket surfaces:
// recommended carriers show inclusions and warnings, excluded carriers show
// only the exclusions that disqualified them, needs-review shows everything.
func buildLeadEvaluation(
	leadId uuid.UUID,
	classification models.MarketClassification,
	results []models.CarrierFitResult,
	carriersById map[uuid.UUID]models.Carrier,
) models.LeadEvaluation {
	evaluation := models.LeadEvaluation{
		LeadId:         leadId,
		Classification: classification,
	}

	for _, result := range evaluate_appetite.RankResults(results, carriersById) {
		carrier := carriersById[result.CarrierId]
		summary := models.CarrierFitSummary{
			CarrierId:   result.CarrierId,
			CarrierName: carrier.Name,
			MarketType:  carrier.MarketType,
			Eligible:    result.Eligible,
			Tier:        result.Tier,
			Score:       result.Score,
		}

		switch {
		case !result.HasRule:
			summary.Reasons = result.Reasons
			evaluation.Skipped = append(evaluation.Skipped, summary)
		case result.Tier == models.GoodFit || result.Tier == models.PossibleFit:
			summary.Reasons = filterReasons(result.Reasons, models.ReasonInclusion, models.ReasonWarning)
			evaluation.Recommended = append(evaluation.Recommended, summary)
		case result.Tier == models.ReviewNeeded:
			summary.Reasons = result.Reasons
			evaluation.NeedsReview = append(evaluation.NeedsReview, summary)
		default:
			summary.Reasons = filterReasons(result.Reasons, models.ReasonExclusion)
			evaluation.Excluded = append(evaluation.Excluded, summary)
		}
	}
	return evaluation
}

func filterReasons(reasons []models.Reason, kinds ...models.ReasonKind) []models.Reason {
	var filtered []models.Reason
	for _, reason := range reasons {
		for _, kind := range kinds {
			if reason.Kind == kind {
				filtered = append(filtered, reason)
				break
			}
		}
	}
	return filtered
}
