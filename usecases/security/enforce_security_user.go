package security

import (
	"github.com/themis-legal/themis-backend/models"
)

type EnforceSecurityUser interface {
	EnforceSecurity
	CreateUser() error
	ReadUser() error
}

type EnforceSecurityUserImpl struct {
	EnforceSecurity
	Credentials models.Credentials
}

func (e *EnforceSecurityUserImpl) CreateUser() error {
	return e.Permission(models.USER_CREATE)
}

func (e *EnforceSecurityUserImpl) ReadUser() error {
	return e.Permission(models.USER_READ)
}
