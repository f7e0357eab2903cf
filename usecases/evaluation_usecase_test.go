package usecases

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/quotelane/quotelane-backend/mocks"
	"github.com/quotelane/quotelane-backend/models"
	"github.com/quotelane/quotelane-backend/usecases/executor_factory"
)

type EvaluationUsecaseTestSuite struct {
	suite.Suite
	leadRepository           *mocks.LeadRepository
	carrierRepository        *mocks.CarrierRepository
	ruleRepository           *mocks.AppetiteRuleRepository
	fitResultRepository      *mocks.FitResultRepository
	classificationRepository *mocks.ClassificationRepository

	organizationId  string
	leadId          uuid.UUID
	lead            models.Lead
	intake          *models.IntakeSubmission
	standardCarrier models.Carrier
	ruleless        models.Carrier
}

func (suite *EvaluationUsecaseTestSuite) SetupTest() {
	suite.leadRepository = new(mocks.LeadRepository)
	suite.carrierRepository = new(mocks.CarrierRepository)
	suite.ruleRepository = new(mocks.AppetiteRuleRepository)
	suite.fitResultRepository = new(mocks.FitResultRepository)
	suite.classificationRepository = new(mocks.ClassificationRepository)

	suite.organizationId = "org-1"
	suite.leadId = uuid.New()
	suite.lead = models.Lead{
		Id:             suite.leadId,
		OrganizationId: suite.organizationId,
		Name:           "Smith Plumbing LLC",
	}
	suite.intake = &models.IntakeSubmission{
		Id:             uuid.New(),
		LeadId:         suite.leadId,
		LineOfBusiness: "general_liability",
		Answers: map[string]any{
			"operating-regions":  []any{"TX"},
			"annual-revenue":     800_000.0,
			"years-in-operation": 6,
			"primary-industry":   "plumbing",
		},
	}
	suite.standardCarrier = models.Carrier{
		Id:             uuid.New(),
		OrganizationId: suite.organizationId,
		Name:           "Acme Mutual",
		MarketType:     models.MarketTypeStandard,
		Enabled:        true,
	}
	suite.ruleless = models.Carrier{
		Id:             uuid.New(),
		OrganizationId: suite.organizationId,
		Name:           "Unconfigured Casualty",
		MarketType:     models.MarketTypeStandard,
		Enabled:        true,
	}
}

func (suite *EvaluationUsecaseTestSuite) makeUsecase() *EvaluationUsecase {
	return &EvaluationUsecase{
		executorFactory:          executor_factory.NewExecutorFactoryStub(),
		leadRepository:           suite.leadRepository,
		carrierRepository:        suite.carrierRepository,
		ruleRepository:           suite.ruleRepository,
		fitResultRepository:      suite.fitResultRepository,
		classificationRepository: suite.classificationRepository,
	}
}

func (suite *EvaluationUsecaseTestSuite) AssertExpectations() {
	t := suite.T()
	suite.leadRepository.AssertExpectations(t)
	suite.carrierRepository.AssertExpectations(t)
	suite.ruleRepository.AssertExpectations(t)
	suite.fitResultRepository.AssertExpectations(t)
	suite.classificationRepository.AssertExpectations(t)
}

func (suite *EvaluationUsecaseTestSuite) TestEvaluateLead_nominal() {
	rule := models.AppetiteRule{
		Id:                uuid.New(),
		OrganizationId:    suite.organizationId,
		CarrierId:         suite.standardCarrier.Id,
		LineOfBusiness:    "general_liability",
		Version:           2,
		Active:            true,
		AllowedRegions:    []string{"TX"},
		AllowedIndustries: []string{"plumbing"},
		LossLookbackYears: 5,
	}

	suite.leadRepository.On("GetLeadById", mock.Anything, suite.leadId).
		Return(suite.lead, nil)
	suite.leadRepository.On("GetLatestIntakeSubmission", mock.Anything, suite.leadId).
		Return(suite.intake, nil)
	suite.carrierRepository.On("ListEnabledCarriers", mock.Anything, suite.organizationId).
		Return([]models.Carrier{suite.standardCarrier, suite.ruleless}, nil)
	suite.ruleRepository.On("ListLatestActiveRules", mock.Anything, suite.organizationId, "general_liability").
		Return([]models.AppetiteRule{rule}, nil)

	suite.leadRepository.On("LockLead", mock.Anything, suite.leadId).Return(nil)
	suite.fitResultRepository.On("UpsertCarrierFitResult", mock.Anything,
		mock.MatchedBy(func(result models.CarrierFitResult) bool {
			return result.CarrierId == suite.standardCarrier.Id &&
				result.Eligible && result.Tier == models.GoodFit
		})).Return(nil)
	suite.fitResultRepository.On("UpsertCarrierFitResult", mock.Anything,
		mock.MatchedBy(func(result models.CarrierFitResult) bool {
			return result.CarrierId == suite.ruleless.Id && !result.HasRule
		})).Return(nil)
	suite.classificationRepository.On("UpsertMarketClassification", mock.Anything,
		mock.MatchedBy(func(classification models.MarketClassification) bool {
			return classification.LeadId == suite.leadId &&
				classification.Classification == models.MarketStandard
		})).Return(nil)

	evaluation, err := suite.makeUsecase().EvaluateLead(context.Background(),
		suite.organizationId, suite.leadId)

	suite.Require().NoError(err)
	suite.Equal(suite.leadId, evaluation.LeadId)
	suite.Equal(models.MarketStandard, evaluation.Classification.Classification)

	suite.Require().Len(evaluation.Recommended, 1)
	suite.Equal("Acme Mutual", evaluation.Recommended[0].CarrierName)
	suite.Equal(models.GoodFit, evaluation.Recommended[0].Tier)
	for _, reason := range evaluation.Recommended[0].Reasons {
		suite.NotEqual(models.ReasonExclusion, reason.Kind)
	}

	suite.Require().Len(evaluation.Skipped, 1)
	suite.Equal("Unconfigured Casualty", evaluation.Skipped[0].CarrierName)
	suite.Empty(evaluation.Excluded)
	suite.Empty(evaluation.NeedsReview)

	suite.AssertExpectations()
}

func (suite *EvaluationUsecaseTestSuite) TestEvaluateLead_excludedCarrierSurfacesOnlyExclusions() {
	rule := models.AppetiteRule{
		Id:             uuid.New(),
		OrganizationId: suite.organizationId,
		CarrierId:      suite.standardCarrier.Id,
		LineOfBusiness: "general_liability",
		Version:        1,
		Active:         true,
		DeniedRegions:  []string{"TX"},
	}

	suite.leadRepository.On("GetLeadById", mock.Anything, suite.leadId).
		Return(suite.lead, nil)
	suite.leadRepository.On("GetLatestIntakeSubmission", mock.Anything, suite.leadId).
		Return(suite.intake, nil)
	suite.carrierRepository.On("ListEnabledCarriers", mock.Anything, suite.organizationId).
		Return([]models.Carrier{suite.standardCarrier}, nil)
	suite.ruleRepository.On("ListLatestActiveRules", mock.Anything, suite.organizationId, "general_liability").
		Return([]models.AppetiteRule{rule}, nil)
	suite.leadRepository.On("LockLead", mock.Anything, suite.leadId).Return(nil)
	suite.fitResultRepository.On("UpsertCarrierFitResult", mock.Anything, mock.Anything).Return(nil)
	suite.classificationRepository.On("UpsertMarketClassification", mock.Anything, mock.Anything).Return(nil)

	evaluation, err := suite.makeUsecase().EvaluateLead(context.Background(),
		suite.organizationId, suite.leadId)

	suite.Require().NoError(err)
	suite.Require().Len(evaluation.Excluded, 1)
	suite.Require().NotEmpty(evaluation.Excluded[0].Reasons)
	for _, reason := range evaluation.Excluded[0].Reasons {
		suite.Equal(models.ReasonExclusion, reason.Kind)
	}
	suite.AssertExpectations()
}

func (suite *EvaluationUsecaseTestSuite) TestEvaluateLead_leadFromAnotherOrganization() {
	suite.leadRepository.On("GetLeadById", mock.Anything, suite.leadId).
		Return(models.Lead{Id: suite.leadId, OrganizationId: "other-org"}, nil)

	_, err := suite.makeUsecase().EvaluateLead(context.Background(),
		suite.organizationId, suite.leadId)

	suite.Require().ErrorIs(err, models.NotFoundError)
	suite.AssertExpectations()
}

func (suite *EvaluationUsecaseTestSuite) TestEvaluateLead_leadWithoutIntake() {
	suite.leadRepository.On("GetLeadById", mock.Anything, suite.leadId).
		Return(suite.lead, nil)
	suite.leadRepository.On("GetLatestIntakeSubmission", mock.Anything, suite.leadId).
		Return(nil, nil)

	_, err := suite.makeUsecase().EvaluateLead(context.Background(),
		suite.organizationId, suite.leadId)

	suite.Require().ErrorIs(err, models.ErrLeadHasNoIntake)
	suite.Require().ErrorIs(err, models.BadParameterError)
	suite.AssertExpectations()
}

func (suite *EvaluationUsecaseTestSuite) TestEvaluateLead_persistenceFailureAbortsCall() {
	suite.leadRepository.On("GetLeadById", mock.Anything, suite.leadId).
		Return(suite.lead, nil)
	suite.leadRepository.On("GetLatestIntakeSubmission", mock.Anything, suite.leadId).
		Return(suite.intake, nil)
	suite.carrierRepository.On("ListEnabledCarriers", mock.Anything, suite.organizationId).
		Return([]models.Carrier{suite.ruleless}, nil)
	suite.ruleRepository.On("ListLatestActiveRules", mock.Anything, suite.organizationId, "general_liability").
		Return([]models.AppetiteRule{}, nil)
	suite.leadRepository.On("LockLead", mock.Anything, suite.leadId).Return(nil)
	suite.fitResultRepository.On("UpsertCarrierFitResult", mock.Anything, mock.Anything).
		Return(errors.New("connection lost"))

	_, err := suite.makeUsecase().EvaluateLead(context.Background(),
		suite.organizationId, suite.leadId)

	suite.Require().ErrorContains(err, "connection lost")
	suite.classificationRepository.AssertNotCalled(suite.T(), "UpsertMarketClassification",
		mock.Anything, mock.Anything)
}

func (suite *EvaluationUsecaseTestSuite) TestGetLeadClassification() {
	classification := models.MarketClassification{
		LeadId:         suite.leadId,
		Classification: models.MarketBorderline,
		Confidence:     0.50,
		ReasonCodes:    []string{"manual_review_required"},
	}
	storedResult := models.CarrierFitResult{
		LeadId:    suite.leadId,
		CarrierId: suite.standardCarrier.Id,
		Eligible:  true,
		Tier:      models.ReviewNeeded,
		Score:     55,
		HasRule:   true,
	}

	suite.leadRepository.On("GetLeadById", mock.Anything, suite.leadId).
		Return(suite.lead, nil)
	suite.classificationRepository.On("GetMarketClassification", mock.Anything, suite.leadId).
		Return(classification, nil)
	suite.fitResultRepository.On("ListFitResultsForLead", mock.Anything, suite.leadId).
		Return([]models.CarrierFitResult{storedResult}, nil)
	suite.carrierRepository.On("ListCarriers", mock.Anything, suite.organizationId).
		Return([]models.Carrier{suite.standardCarrier}, nil)

	evaluation, err := suite.makeUsecase().GetLeadClassification(context.Background(),
		suite.organizationId, suite.leadId)

	suite.Require().NoError(err)
	suite.Equal(models.MarketBorderline, evaluation.Classification.Classification)
	suite.Require().Len(evaluation.NeedsReview, 1)
	suite.Equal("Acme Mutual", evaluation.NeedsReview[0].CarrierName)
	suite.AssertExpectations()
}

func TestEvaluationUsecase(t *testing.T) {
	suite.Run(t, new(EvaluationUsecaseTestSuite))
}
