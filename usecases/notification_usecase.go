package usecases

import (
	"context"

	"github.com/themis-legal/themis-backend/models"
	"github.com/themis-legal/themis-backend/repositories"
	"github.com/themis-legal/themis-backend/usecases/executor_factory"
	"github.com/themis-legal/themis-backend/usecases/security"
)

type NotificationUseCase struct {
	enforceSecurity        security.EnforceSecurityNotification
	executorFactory        executor_factory.ExecutorFactory
	transactionFactory     executor_factory.TransactionFactory
	notificationRepository repositories.NotificationRepository
	credentials            models.Credentials
}

func (usecase *NotificationUseCase) ListNotifications(ctx context.Context,
	filters models.NotificationFilters,
) ([]models.Notification, error) {
	notifications, err := usecase.notificationRepository.ListNotificationsForUser(ctx,
		usecase.executorFactory.NewExecutor(),
		usecase.credentials.ActorIdentity.UserId,
		filters)
	if err != nil {
		return nil, err
	}
	for _, notification := range notifications {
		if err := usecase.enforceSecurity.ReadNotification(notification); err != nil {
			return nil, err
		}
	}
	return notifications, nil
}

func (usecase *NotificationUseCase) CountUnread(ctx context.Context) (int, error) {
	if err := usecase.enforceSecurity.Permission(models.NOTIFICATION_READ); err != nil {
		return 0, err
	}
	return usecase.notificationRepository.CountUnreadNotifications(ctx,
		usecase.executorFactory.NewExecutor(),
		usecase.credentials.ActorIdentity.UserId)
}

func (usecase *NotificationUseCase) MarkAsRead(ctx context.Context, notificationId string) (models.Notification, error) {
	return executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Transaction) (models.Notification, error) {
			notification, err := usecase.notificationRepository.GetNotificationById(ctx, tx, notificationId)
			if err != nil {
				return models.Notification{}, err
			}
			if err := usecase.enforceSecurity.ReadNotification(notification); err != nil {
				return models.Notification{}, err
			}
			if notification.IsRead {
				return notification, nil
			}

			if err := usecase.notificationRepository.MarkNotificationAsRead(ctx, tx, notificationId); err != nil {
				return models.Notification{}, err
			}
			return usecase.notificationRepository.GetNotificationById(ctx, tx, notificationId)
		})
}

func (usecase *NotificationUseCase) DeleteNotification(ctx context.Context, notificationId string) error {
	return usecase.transactionFactory.Transaction(ctx, func(tx repositories.Transaction) error {
		notification, err := usecase.notificationRepository.GetNotificationById(ctx, tx, notificationId)
		if err != nil {
			return err
		}
		if err := usecase.enforceSecurity.ReadNotification(notification); err != nil {
			return err
		}
		return usecase.notificationRepository.DeleteNotification(ctx, tx, notificationId)
	})
}

func (usecase *NotificationUseCase) MarkAllAsRead(ctx context.Context) error {
	if err := usecase.enforceSecurity.Permission(models.NOTIFICATION_READ); err != nil {
		return err
	}
	return usecase.transactionFactory.Transaction(ctx, func(tx repositories.Transaction) error {
		return usecase.notificationRepository.MarkAllNotificationsAsRead(ctx, tx,
			usecase.credentials.ActorIdentity.UserId)
	})
}
