package security

import (
	"github.com/cockroachdb/errors"

	"github.com/themis-legal/themis-backend/models"
)

type EnforceSecurityBulkOperation interface {
	EnforceSecurity
	ExecuteBulkOperation() error
	ReadBulkOperationJob(job models.BulkOperationJob) error
}

type EnforceSecurityBulkOperationImpl struct {
	EnforceSecurity
	Credentials models.Credentials
}

func (e *EnforceSecurityBulkOperationImpl) ExecuteBulkOperation() error {
	return e.Permission(models.BULK_EXECUTE)
}

func (e *EnforceSecurityBulkOperationImpl) ReadBulkOperationJob(job models.BulkOperationJob) error {
	if err := e.Permission(models.BULK_EXECUTE); err != nil {
		return err
	}
	if e.Credentials.Role == models.ADMIN {
		return nil
	}
	if job.InitiatedBy != e.Credentials.ActorIdentity.UserId {
		return errors.Wrap(models.ForbiddenError, "bulk operation was initiated by another user")
	}
	return nil
}
