package usecases

import (
	"github.com/themis-legal/themis-backend/repositories"
	"github.com/themis-legal/themis-backend/usecases/executor_factory"
)

type Usecases struct {
	Repositories       repositories.Repositories
	documentsBucketUrl string
}

type Option func(*options)

type options struct {
	documentsBucketUrl string
}

func WithDocumentsBucketUrl(bucketUrl string) Option {
	return func(o *options) {
		o.documentsBucketUrl = bucketUrl
	}
}

func NewUsecases(repos repositories.Repositories, opts ...Option) Usecases {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	return Usecases{
		Repositories:       repos,
		documentsBucketUrl: o.documentsBucketUrl,
	}
}

func (usecases *Usecases) NewExecutorFactory() executor_factory.ExecutorFactory {
	return executor_factory.NewDbExecutorFactory(usecases.Repositories.ExecutorGetter)
}

func (usecases *Usecases) NewTransactionFactory() executor_factory.TransactionFactory {
	return executor_factory.NewDbExecutorFactory(usecases.Repositories.ExecutorGetter)
}

func (usecases *Usecases) NewTokenUseCase() TokenUseCase {
	return TokenUseCase{
		executorFactory: usecases.NewExecutorFactory(),
		userRepository:  &usecases.Repositories.ThemisDbRepository,
		jwtRepository:   usecases.Repositories.JwtRepository,
	}
}

func (usecases *Usecases) NewValidateCredentials() ValidateCredentials {
	return ValidateCredentials{
		jwtRepository: usecases.Repositories.JwtRepository,
	}
}
