package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/themis-legal/themis-backend/models"
	"github.com/themis-legal/themis-backend/repositories"
)

type UserRepository struct {
	mock.Mock
}

func (r *UserRepository) CreateUser(ctx context.Context, exec repositories.Executor,
	attributes models.CreateUserAttributes,
) (string, error) {
	args := r.Called(ctx, exec, attributes)
	return args.String(0), args.Error(1)
}

func (r *UserRepository) UserById(ctx context.Context, exec repositories.Executor,
	userId string,
) (models.User, error) {
	args := r.Called(ctx, exec, userId)
	return args.Get(0).(models.User), args.Error(1)
}

func (r *UserRepository) UserByEmail(ctx context.Context, exec repositories.Executor,
	email string,
) (*models.User, error) {
	args := r.Called(ctx, exec, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (r *UserRepository) ListUsers(ctx context.Context, exec repositories.Executor,
	role *models.Role,
) ([]models.User, error) {
	args := r.Called(ctx, exec, role)
	return args.Get(0).([]models.User), args.Error(1)
}

func (r *UserRepository) DeactivateUser(ctx context.Context, exec repositories.Executor,
	userId string,
) error {
	args := r.Called(ctx, exec, userId)
	return args.Error(0)
}
