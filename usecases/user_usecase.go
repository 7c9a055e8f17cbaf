package usecases

import (
	"context"

	"github.com/cockroachdb/errors"
	"golang.org/x/crypto/bcrypt"

	"github.com/themis-legal/themis-backend/models"
	"github.com/themis-legal/themis-backend/repositories"
	"github.com/themis-legal/themis-backend/usecases/executor_factory"
	"github.com/themis-legal/themis-backend/usecases/security"
)

type UserUseCase struct {
	enforceSecurity    security.EnforceSecurityUser
	executorFactory    executor_factory.ExecutorFactory
	transactionFactory executor_factory.TransactionFactory
	userRepository     repositories.UserRepository
}

type CreateUserInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Role      models.Role
}

func (usecase *UserUseCase) CreateUser(ctx context.Context, input CreateUserInput) (models.User, error) {
	if err := usecase.enforceSecurity.CreateUser(); err != nil {
		return models.User{}, err
	}
	if input.Role == models.NO_ROLE {
		return models.User{}, errors.Wrap(models.BadParameterError, "invalid user role")
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, errors.Wrap(err, "failed to hash password")
	}

	return executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Transaction) (models.User, error) {
			newUserId, err := usecase.userRepository.CreateUser(ctx, tx, models.CreateUserAttributes{
				Email:        input.Email,
				PasswordHash: string(passwordHash),
				FirstName:    input.FirstName,
				LastName:     input.LastName,
				Role:         input.Role,
			})
			if err != nil {
				if repositories.IsUniqueViolationError(err) {
					return models.User{}, errors.Wrap(models.ConflictError,
						"a user with this email already exists")
				}
				return models.User{}, err
			}
			return usecase.userRepository.UserById(ctx, tx, newUserId)
		})
}

func (usecase *UserUseCase) GetUser(ctx context.Context, userId string) (models.User, error) {
	if err := usecase.enforceSecurity.ReadUser(); err != nil {
		return models.User{}, err
	}
	return usecase.userRepository.UserById(ctx, usecase.executorFactory.NewExecutor(), userId)
}

func (usecase *UserUseCase) ListUsers(ctx context.Context, role *models.Role) ([]models.User, error) {
	if err := usecase.enforceSecurity.ReadUser(); err != nil {
		return nil, err
	}
	return usecase.userRepository.ListUsers(ctx, usecase.executorFactory.NewExecutor(), role)
}

func (usecase *UserUseCase) DeactivateUser(ctx context.Context, userId string) error {
	if err := usecase.enforceSecurity.CreateUser(); err != nil {
		return err
	}

	return usecase.transactionFactory.Transaction(ctx, func(tx repositories.Transaction) error {
		if _, err := usecase.userRepository.UserById(ctx, tx, userId); err != nil {
			return err
		}
		return usecase.userRepository.DeactivateUser(ctx, tx, userId)
	})
}
