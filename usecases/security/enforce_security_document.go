package security

import (
	"github.com/cockroachdb/errors"

	"github.com/themis-legal/themis-backend/models"
)

type EnforceSecurityDocument interface {
	EnforceSecurity
	ReadDocument(c models.Case, document models.Document) error
	UploadDocument(c models.Case) error
	ReviewDocument(c models.Case) error
	ShareDocument(c models.Case) error
	CreateDocumentRequest(c models.Case) error
}

type EnforceSecurityDocumentImpl struct {
	EnforceSecurity
	Credentials models.Credentials
}

// ReadDocument: judges only see documents that were explicitly shared with
// them, participants see everything on their case.
func (e *EnforceSecurityDocumentImpl) ReadDocument(c models.Case, document models.Document) error {
	if err := e.Permission(models.DOCUMENT_READ); err != nil {
		return err
	}
	if e.Credentials.Role == models.ADMIN {
		return nil
	}
	if e.Credentials.Role == models.JUDGE {
		if !document.SharedWithJudge {
			return errors.Wrap(models.ForbiddenError,
				"this document has not been shared with the judge")
		}
		return nil
	}
	if !c.IsParticipant(e.Credentials.ActorIdentity.UserId) {
		return errors.Wrap(models.ForbiddenError, "user is not a participant of this case")
	}
	return nil
}

func (e *EnforceSecurityDocumentImpl) UploadDocument(c models.Case) error {
	if err := e.Permission(models.DOCUMENT_UPLOAD); err != nil {
		return err
	}
	if e.Credentials.Role == models.ADMIN {
		return nil
	}
	if !c.IsParticipant(e.Credentials.ActorIdentity.UserId) {
		return errors.Wrap(models.ForbiddenError, "user is not a participant of this case")
	}
	return nil
}

func (e *EnforceSecurityDocumentImpl) ReviewDocument(c models.Case) error {
	if err := e.Permission(models.DOCUMENT_REVIEW); err != nil {
		return err
	}
	if e.Credentials.Role == models.JUDGE || e.Credentials.Role == models.ADMIN {
		return nil
	}
	if c.LawyerId != e.Credentials.ActorIdentity.UserId {
		return errors.Wrap(models.ForbiddenError,
			"only the lawyer of record can review documents")
	}
	return nil
}

func (e *EnforceSecurityDocumentImpl) ShareDocument(c models.Case) error {
	if err := e.Permission(models.DOCUMENT_SHARE); err != nil {
		return err
	}
	if e.Credentials.Role == models.ADMIN {
		return nil
	}
	if c.LawyerId != e.Credentials.ActorIdentity.UserId {
		return errors.Wrap(models.ForbiddenError,
			"only the lawyer of record can share documents with the judge")
	}
	return nil
}

func (e *EnforceSecurityDocumentImpl) CreateDocumentRequest(c models.Case) error {
	if err := e.Permission(models.DOCUMENT_REQUEST_CREATE); err != nil {
		return err
	}
	if e.Credentials.Role == models.JUDGE || e.Credentials.Role == models.ADMIN {
		return nil
	}
	if c.LawyerId != e.Credentials.ActorIdentity.UserId {
		return errors.Wrap(models.ForbiddenError,
			"only the lawyer of record can request documents")
	}
	return nil
}
