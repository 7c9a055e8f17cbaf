package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/themis-legal/themis-backend/models"
	"github.com/themis-legal/themis-backend/repositories/dbmodels"
)

type UserRepository interface {
	CreateUser(ctx context.Context, exec Executor, attributes models.CreateUserAttributes) (string, error)
	UserById(ctx context.Context, exec Executor, userId string) (models.User, error)
	UserByEmail(ctx context.Context, exec Executor, email string) (*models.User, error)
	ListUsers(ctx context.Context, exec Executor, role *models.Role) ([]models.User, error)
	DeactivateUser(ctx context.Context, exec Executor, userId string) error
}

func (repo *ThemisDbRepository) CreateUser(
	ctx context.Context,
	exec Executor,
	attributes models.CreateUserAttributes,
) (string, error) {
	if err := validateExecutor(exec); err != nil {
		return "", err
	}

	newUserId := uuid.NewString()
	err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Insert(dbmodels.TABLE_USERS).
			Columns(
				"id",
				"email",
				"password_hash",
				"first_name",
				"last_name",
				"role",
			).
			Values(
				newUserId,
				attributes.Email,
				attributes.PasswordHash,
				attributes.FirstName,
				attributes.LastName,
				attributes.Role.String(),
			),
	)
	return newUserId, err
}

func (repo *ThemisDbRepository) UserById(ctx context.Context, exec Executor, userId string) (models.User, error) {
	if err := validateExecutor(exec); err != nil {
		return models.User{}, err
	}

	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectUserColumn...).
			From(dbmodels.TABLE_USERS).
			Where(squirrel.Eq{"id": userId}),
		dbmodels.AdaptUser,
	)
}

func (repo *ThemisDbRepository) UserByEmail(ctx context.Context, exec Executor, email string) (*models.User, error) {
	if err := validateExecutor(exec); err != nil {
		return nil, err
	}

	return SqlToOptionalModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectUserColumn...).
			From(dbmodels.TABLE_USERS).
			Where(squirrel.Eq{"email": email, "is_active": true}),
		dbmodels.AdaptUser,
	)
}

func (repo *ThemisDbRepository) ListUsers(
	ctx context.Context,
	exec Executor,
	role *models.Role,
) ([]models.User, error) {
	if err := validateExecutor(exec); err != nil {
		return nil, err
	}

	query := NewQueryBuilder().
		Select(dbmodels.SelectUserColumn...).
		From(dbmodels.TABLE_USERS).
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("last_name", "first_name")
	if role != nil {
		query = query.Where(squirrel.Eq{"role": role.String()})
	}

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptUser)
}

func (repo *ThemisDbRepository) DeactivateUser(ctx context.Context, exec Executor, userId string) error {
	if err := validateExecutor(exec); err != nil {
		return err
	}

	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Update(dbmodels.TABLE_USERS).
			Set("is_active", false).
			Where(squirrel.Eq{"id": userId}),
	)
}
