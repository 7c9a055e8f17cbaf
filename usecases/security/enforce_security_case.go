package security

import (
	"github.com/cockroachdb/errors"

	"github.com/themis-legal/themis-backend/models"
)

type EnforceSecurityCase interface {
	EnforceSecurity
	ReadCase(c models.Case) error
	CreateCase() error
	UpdateCaseStatus(c models.Case) error
}

type EnforceSecurityCaseImpl struct {
	EnforceSecurity
	Credentials models.Credentials
}

// ReadCase allows judges and admins to read any case, other roles only the
// cases they participate in.
func (e *EnforceSecurityCaseImpl) ReadCase(c models.Case) error {
	if err := e.Permission(models.CASE_READ); err != nil {
		return err
	}
	if e.Credentials.Role == models.JUDGE || e.Credentials.Role == models.ADMIN {
		return nil
	}
	if !c.IsParticipant(e.Credentials.ActorIdentity.UserId) {
		return errors.Wrap(models.ForbiddenError, "user is not a participant of this case")
	}
	return nil
}

func (e *EnforceSecurityCaseImpl) CreateCase() error {
	return e.Permission(models.CASE_CREATE)
}

func (e *EnforceSecurityCaseImpl) UpdateCaseStatus(c models.Case) error {
	if err := e.Permission(models.CASE_STATUS_UPDATE); err != nil {
		return err
	}
	if e.Credentials.Role == models.JUDGE || e.Credentials.Role == models.ADMIN {
		return nil
	}
	if c.LawyerId != e.Credentials.ActorIdentity.UserId {
		return errors.Wrap(models.ForbiddenError, "only the lawyer of record can update the case status")
	}
	return nil
}
