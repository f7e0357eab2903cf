package executor_factory

import (
	"context"

	"github.com/quotelane/quotelane-backend/repositories"
)

// ExecutorFactoryStub runs transaction callbacks with a nil transaction. Meant
// for usecase tests whose repositories are mocked and never touch the executor.
type ExecutorFactoryStub struct{}

func NewExecutorFactoryStub() ExecutorFactoryStub {
	return ExecutorFactoryStub{}
}

func (stub ExecutorFactoryStub) NewExecutor() repositories.Executor {
	return nil
}

func (stub ExecutorFactoryStub) Transaction(
	ctx context.Context,
	fn func(tx repositories.Transaction) error,
) error {
	return fn(nil)
}
