package security

import (
	"github.com/cockroachdb/errors"

	"github.com/themis-legal/themis-backend/models"
)

type EnforceSecurityCaseTransfer interface {
	EnforceSecurity
	RequestTransfer(c models.Case) error
	ReviewTransfer(transfer models.CaseTransfer) error
	CancelTransfer(transfer models.CaseTransfer) error
	ReadTransfer(transfer models.CaseTransfer) error
}

type EnforceSecurityCaseTransferImpl struct {
	EnforceSecurity
	Credentials models.Credentials
}

// RequestTransfer requires the actor to be the lawyer of record: a transfer
// gives the case away, so nobody else may initiate it.
func (e *EnforceSecurityCaseTransferImpl) RequestTransfer(c models.Case) error {
	if err := e.Permission(models.TRANSFER_REQUEST); err != nil {
		return err
	}
	if c.LawyerId != e.Credentials.ActorIdentity.UserId {
		return errors.Wrap(models.ForbiddenError,
			"only the lawyer of record can request a transfer")
	}
	return nil
}

func (e *EnforceSecurityCaseTransferImpl) ReviewTransfer(transfer models.CaseTransfer) error {
	if err := e.Permission(models.TRANSFER_REVIEW); err != nil {
		return err
	}
	if e.Credentials.Role == models.JUDGE || e.Credentials.Role == models.ADMIN {
		return nil
	}
	if transfer.ToUserId != e.Credentials.ActorIdentity.UserId {
		return errors.Wrap(models.ForbiddenError,
			"only the transfer target can review this transfer")
	}
	return nil
}

func (e *EnforceSecurityCaseTransferImpl) CancelTransfer(transfer models.CaseTransfer) error {
	if err := e.Permission(models.TRANSFER_REQUEST); err != nil {
		return err
	}
	if transfer.FromUserId != e.Credentials.ActorIdentity.UserId {
		return errors.Wrap(models.ForbiddenError,
			"only the requester can cancel this transfer")
	}
	return nil
}

func (e *EnforceSecurityCaseTransferImpl) ReadTransfer(transfer models.CaseTransfer) error {
	if err := e.Permission(models.CASE_READ); err != nil {
		return err
	}
	if e.Credentials.Role == models.JUDGE || e.Credentials.Role == models.ADMIN {
		return nil
	}
	userId := e.Credentials.ActorIdentity.UserId
	if transfer.FromUserId != userId && transfer.ToUserId != userId {
		return errors.Wrap(models.ForbiddenError, "user is not a party to this transfer")
	}
	return nil
}
