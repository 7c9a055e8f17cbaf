package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/themis-legal/themis-backend/models"
	"github.com/themis-legal/themis-backend/repositories"
)

type NotificationRepository struct {
	mock.Mock
}

func (r *NotificationRepository) CreateNotification(ctx context.Context, exec repositories.Executor,
	attributes models.CreateNotificationAttributes,
) (string, error) {
	args := r.Called(ctx, exec, attributes)
	return args.String(0), args.Error(1)
}

func (r *NotificationRepository) GetNotificationById(ctx context.Context, exec repositories.Executor,
	notificationId string,
) (models.Notification, error) {
	args := r.Called(ctx, exec, notificationId)
	return args.Get(0).(models.Notification), args.Error(1)
}

func (r *NotificationRepository) ListNotificationsForUser(ctx context.Context, exec repositories.Executor,
	userId string, filters models.NotificationFilters,
) ([]models.Notification, error) {
	args := r.Called(ctx, exec, userId, filters)
	return args.Get(0).([]models.Notification), args.Error(1)
}

func (r *NotificationRepository) CountUnreadNotifications(ctx context.Context, exec repositories.Executor,
	userId string,
) (int, error) {
	args := r.Called(ctx, exec, userId)
	return args.Int(0), args.Error(1)
}

func (r *NotificationRepository) MarkNotificationAsRead(ctx context.Context, exec repositories.Executor,
	notificationId string,
) error {
	args := r.Called(ctx, exec, notificationId)
	return args.Error(0)
}

func (r *NotificationRepository) MarkAllNotificationsAsRead(ctx context.Context, exec repositories.Executor,
	userId string,
) error {
	args := r.Called(ctx, exec, userId)
	return args.Error(0)
}

func (r *NotificationRepository) DeleteNotification(ctx context.Context, exec repositories.Executor,
	notificationId string,
) error {
	args := r.Called(ctx, exec, notificationId)
	return args.Error(0)
}
