package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/themis-legal/themis-backend/models"
	"github.com/themis-legal/themis-backend/repositories/dbmodels"
)

type NotificationRepository interface {
	CreateNotification(ctx context.Context, exec Executor,
		attributes models.CreateNotificationAttributes) (string, error)
	GetNotificationById(ctx context.Context, exec Executor,
		notificationId string) (models.Notification, error)
	ListNotificationsForUser(ctx context.Context, exec Executor, userId string,
		filters models.NotificationFilters) ([]models.Notification, error)
	CountUnreadNotifications(ctx context.Context, exec Executor, userId string) (int, error)
	MarkNotificationAsRead(ctx context.Context, exec Executor, notificationId string) error
	MarkAllNotificationsAsRead(ctx context.Context, exec Executor, userId string) error
	DeleteNotification(ctx context.Context, exec Executor, notificationId string) error
}

func (repo *ThemisDbRepository) CreateNotification(
	ctx context.Context,
	exec Executor,
	attributes models.CreateNotificationAttributes,
) (string, error) {
	if err := validateExecutor(exec); err != nil {
		return "", err
	}

	newNotificationId := uuid.NewString()
	err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Insert(dbmodels.TABLE_NOTIFICATIONS).
			Columns(
				"id",
				"user_id",
				"case_id",
				"document_id",
				"title",
				"message",
				"notification_type",
				"priority",
			).
			Values(
				newNotificationId,
				attributes.UserId,
				attributes.CaseId,
				attributes.DocumentId,
				attributes.Title,
				attributes.Message,
				attributes.NotificationType,
				attributes.Priority,
			),
	)
	return newNotificationId, err
}

func (repo *ThemisDbRepository) GetNotificationById(
	ctx context.Context,
	exec Executor,
	notificationId string,
) (models.Notification, error) {
	if err := validateExecutor(exec); err != nil {
		return models.Notification{}, err
	}

	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectNotificationColumn...).
			From(dbmodels.TABLE_NOTIFICATIONS).
			Where(squirrel.Eq{"id": notificationId}),
		dbmodels.AdaptNotification,
	)
}

func (repo *ThemisDbRepository) ListNotificationsForUser(
	ctx context.Context,
	exec Executor,
	userId string,
	filters models.NotificationFilters,
) ([]models.Notification, error) {
	if err := validateExecutor(exec); err != nil {
		return nil, err
	}

	query := NewQueryBuilder().
		Select(dbmodels.SelectNotificationColumn...).
		From(dbmodels.TABLE_NOTIFICATIONS).
		Where(squirrel.Eq{"user_id": userId}).
		OrderBy("created_at DESC")
	if filters.UnreadOnly {
		query = query.Where(squirrel.Eq{"is_read": false})
	}

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptNotification)
}

func (repo *ThemisDbRepository) CountUnreadNotifications(
	ctx context.Context,
	exec Executor,
	userId string,
) (int, error) {
	if err := validateExecutor(exec); err != nil {
		return 0, err
	}

	return CountFromQuery(
		ctx,
		exec,
		NewQueryBuilder().
			Select("COUNT(*)").
			From(dbmodels.TABLE_NOTIFICATIONS).
			Where(squirrel.Eq{"user_id": userId, "is_read": false}),
	)
}

func (repo *ThemisDbRepository) MarkNotificationAsRead(
	ctx context.Context,
	exec Executor,
	notificationId string,
) error {
	if err := validateExecutor(exec); err != nil {
		return err
	}

	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Update(dbmodels.TABLE_NOTIFICATIONS).
			Set("is_read", true).
			Set("read_at", squirrel.Expr("NOW()")).
			Where(squirrel.Eq{"id": notificationId}),
	)
}

func (repo *ThemisDbRepository) DeleteNotification(
	ctx context.Context,
	exec Executor,
	notificationId string,
) error {
	if err := validateExecutor(exec); err != nil {
		return err
	}

	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Delete(dbmodels.TABLE_NOTIFICATIONS).
			Where(squirrel.Eq{"id": notificationId}),
	)
}

func (repo *ThemisDbRepository) MarkAllNotificationsAsRead(
	ctx context.Context,
	exec Executor,
	userId string,
) error {
	if err := validateExecutor(exec); err != nil {
		return err
	}

	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Update(dbmodels.TABLE_NOTIFICATIONS).
			Set("is_read", true).
			Set("read_at", squirrel.Expr("NOW()")).
			Where(squirrel.Eq{"user_id": userId, "is_read": false}),
	)
}
