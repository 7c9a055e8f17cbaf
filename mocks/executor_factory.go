package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/themis-legal/themis-backend/repositories"
)

type ExecutorFactory struct {
	mock.Mock
}

func (e *ExecutorFactory) NewExecutor() repositories.Executor {
	args := e.Called()
	return args.Get(0).(repositories.Executor)
}
