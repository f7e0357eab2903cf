package usecases

import (
	"github.com/quotelane/quotelane-backend/repositories"
	"github.com/quotelane/quotelane-backend/usecases/executor_factory"
)

type Repositories struct {
	ExecutorGetter        repositories.ExecutorGetter
	QuotelaneDbRepository *repositories.QuotelaneDbRepository
}

// Usecases is the composition root: one instance per process, handed to the
// API layer which builds a usecase per request.
type Usecases struct {
	Repositories
}

func NewUsecases(repos Repositories) Usecases {
	return Usecases{
		Repositories: repos,
	}
}

func (usecases Usecases) NewExecutorFactory() executor_factory.ExecutorFactory {
	return executor_factory.NewDbExecutorFactory(usecases.ExecutorGetter)
}

func (usecases Usecases) NewEvaluationUsecase() EvaluationUsecase {
	return EvaluationUsecase{
		executorFactory:          usecases.NewExecutorFactory(),
		leadRepository:           usecases.QuotelaneDbRepository,
		carrierRepository:        usecases.QuotelaneDbRepository,
		ruleRepository:           usecases.QuotelaneDbRepository,
		fitResultRepository:      usecases.QuotelaneDbRepository,
		classificationRepository: usecases.QuotelaneDbRepository,
	}
}

func (usecases Usecases) NewAppetiteRuleUsecase() AppetiteRuleUsecase {
	return AppetiteRuleUsecase{
		executorFactory:   usecases.NewExecutorFactory(),
		ruleRepository:    usecases.QuotelaneDbRepository,
		carrierRepository: usecases.QuotelaneDbRepository,
	}
}

func (usecases Usecases) NewCarrierUsecase() CarrierUsecase {
	return CarrierUsecase{
		executorFactory:   usecases.NewExecutorFactory(),
		carrierRepository: usecases.QuotelaneDbRepository,
	}
}
