package usecases

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/quotelane/quotelane-backend/mocks"
	"github.com/quotelane/quotelane-backend/models"
	"github.com/quotelane/quotelane-backend/pure_utils"
	"github.com/quotelane/quotelane-backend/usecases/executor_factory"
)

type AppetiteRuleUsecaseTestSuite struct {
	suite.Suite
	ruleRepository    *mocks.AppetiteRuleRepository
	carrierRepository *mocks.CarrierRepository

	organizationId string
	carrier        models.Carrier
}

func (suite *AppetiteRuleUsecaseTestSuite) SetupTest() {
	suite.ruleRepository = new(mocks.AppetiteRuleRepository)
	suite.carrierRepository = new(mocks.CarrierRepository)
	suite.organizationId = "org-1"
	suite.carrier = models.Carrier{
		Id:             uuid.New(),
		OrganizationId: suite.organizationId,
		Name:           "Acme Mutual",
	}
}

func (suite *AppetiteRuleUsecaseTestSuite) makeUsecase() *AppetiteRuleUsecase {
	return &AppetiteRuleUsecase{
		executorFactory:   executor_factory.NewExecutorFactoryStub(),
		ruleRepository:    suite.ruleRepository,
		carrierRepository: suite.carrierRepository,
	}
}

func (suite *AppetiteRuleUsecaseTestSuite) TestCreateRule_appendsNextVersion() {
	input := models.CreateAppetiteRuleInput{
		OrganizationId: suite.organizationId,
		CarrierId:      suite.carrier.Id,
		LineOfBusiness: "general_liability",
	}

	suite.carrierRepository.On("GetCarrierById", mock.Anything, suite.carrier.Id).
		Return(suite.carrier, nil)
	suite.ruleRepository.On("GetLatestRuleVersion", mock.Anything,
		suite.organizationId, suite.carrier.Id, "general_liability").
		Return(2, nil)
	suite.ruleRepository.On("CreateAppetiteRule", mock.Anything,
		input, mock.Anything, 3).
		Return(nil)
	suite.ruleRepository.On("DeactivatePriorVersions", mock.Anything,
		suite.organizationId, suite.carrier.Id, "general_liability", mock.Anything).
		Return(nil)
	suite.ruleRepository.On("GetAppetiteRuleById", mock.Anything, mock.Anything).
		Return(models.AppetiteRule{
			OrganizationId: suite.organizationId,
			CarrierId:      suite.carrier.Id,
			LineOfBusiness: "general_liability",
			Version:        3,
			Active:         true,
		}, nil)

	created, err := suite.makeUsecase().CreateRule(context.Background(), input)

	suite.Require().NoError(err)
	suite.Equal(3, created.Version)
	suite.True(created.Active)
	suite.ruleRepository.AssertExpectations(suite.T())
	suite.carrierRepository.AssertExpectations(suite.T())
}

func (suite *AppetiteRuleUsecaseTestSuite) TestCreateRule_rejectsIncoherentBounds() {
	input := models.CreateAppetiteRuleInput{
		OrganizationId: suite.organizationId,
		CarrierId:      suite.carrier.Id,
		LineOfBusiness: "general_liability",
		MinRevenue:     pure_utils.Ptr(1_000_000.0),
		MaxRevenue:     pure_utils.Ptr(500_000.0),
	}

	_, err := suite.makeUsecase().CreateRule(context.Background(), input)

	suite.Require().ErrorIs(err, models.ErrRuleBoundsIncoherent)
	suite.ruleRepository.AssertNotCalled(suite.T(), "CreateAppetiteRule",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AppetiteRuleUsecaseTestSuite) TestCreateRule_carrierFromAnotherOrganization() {
	input := models.CreateAppetiteRuleInput{
		OrganizationId: suite.organizationId,
		CarrierId:      suite.carrier.Id,
		LineOfBusiness: "general_liability",
	}
	suite.carrierRepository.On("GetCarrierById", mock.Anything, suite.carrier.Id).
		Return(models.Carrier{Id: suite.carrier.Id, OrganizationId: "other-org"}, nil)

	_, err := suite.makeUsecase().CreateRule(context.Background(), input)

	suite.Require().ErrorIs(err, models.NotFoundError)
}

func (suite *AppetiteRuleUsecaseTestSuite) TestActivateRule_deactivatesSiblings() {
	rule := models.AppetiteRule{
		Id:             uuid.New(),
		OrganizationId: suite.organizationId,
		CarrierId:      suite.carrier.Id,
		LineOfBusiness: "general_liability",
		Version:        1,
	}

	suite.ruleRepository.On("GetAppetiteRuleById", mock.Anything, rule.Id).
		Return(rule, nil)
	suite.ruleRepository.On("DeactivatePriorVersions", mock.Anything,
		suite.organizationId, suite.carrier.Id, "general_liability", rule.Id).
		Return(nil)
	suite.ruleRepository.On("SetAppetiteRuleActive", mock.Anything, rule.Id, true).
		Return(nil)

	err := suite.makeUsecase().ActivateRule(context.Background(), suite.organizationId, rule.Id)

	suite.Require().NoError(err)
	suite.ruleRepository.AssertExpectations(suite.T())
}

func (suite *AppetiteRuleUsecaseTestSuite) TestDeactivateRule() {
	rule := models.AppetiteRule{
		Id:             uuid.New(),
		OrganizationId: suite.organizationId,
		CarrierId:      suite.carrier.Id,
		LineOfBusiness: "general_liability",
	}

	suite.ruleRepository.On("GetAppetiteRuleById", mock.Anything, rule.Id).
		Return(rule, nil)
	suite.ruleRepository.On("SetAppetiteRuleActive", mock.Anything, rule.Id, false).
		Return(nil)

	err := suite.makeUsecase().DeactivateRule(context.Background(), suite.organizationId, rule.Id)

	suite.Require().NoError(err)
	suite.ruleRepository.AssertExpectations(suite.T())
}

func TestAppetiteRuleUsecase(t *testing.T) {
	suite.Run(t, new(AppetiteRuleUsecaseTestSuite))
}
