package security

import (
	"github.com/cockroachdb/errors"

	"github.com/themis-legal/themis-backend/models"
)

type EnforceSecurityNotification interface {
	EnforceSecurity
	ReadNotification(notification models.Notification) error
}

type EnforceSecurityNotificationImpl struct {
	EnforceSecurity
	Credentials models.Credentials
}

func (e *EnforceSecurityNotificationImpl) ReadNotification(notification models.Notification) error {
	if err := e.Permission(models.NOTIFICATION_READ); err != nil {
		return err
	}
	if notification.UserId != e.Credentials.ActorIdentity.UserId {
		return errors.Wrap(models.ForbiddenError, "notification belongs to another user")
	}
	return nil
}
