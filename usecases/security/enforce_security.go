package security

import (
	"github.com/cockroachdb/errors"

	"github.com/themis-legal/themis-backend/models"
)

type EnforceSecurity interface {
	Permission(permission models.Permission) error
	UserId() string
}

type EnforceSecurityImpl struct {
	Credentials models.Credentials
}

func (e *EnforceSecurityImpl) Permission(permission models.Permission) error {
	if e.Credentials.Role.HasPermission(permission) {
		return nil
	}
	return errors.Wrapf(models.ForbiddenError,
		"missing permission %s", permission.String())
}

func (e *EnforceSecurityImpl) UserId() string {
	return e.Credentials.ActorIdentity.UserId
}
