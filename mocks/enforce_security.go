package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/themis-legal/themis-backend/models"
)

type EnforceSecurity struct {
	mock.Mock
}

func (e *EnforceSecurity) Permission(permission models.Permission) error {
	args := e.Called(permission)
	return args.Error(0)
}

func (e *EnforceSecurity) UserId() string {
	args := e.Called()
	return args.String(0)
}

func (e *EnforceSecurity) ReadCase(c models.Case) error {
	args := e.Called(c)
	return args.Error(0)
}

func (e *EnforceSecurity) CreateCase() error {
	args := e.Called()
	return args.Error(0)
}

func (e *EnforceSecurity) UpdateCaseStatus(c models.Case) error {
	args := e.Called(c)
	return args.Error(0)
}

func (e *EnforceSecurity) RequestTransfer(c models.Case) error {
	args := e.Called(c)
	return args.Error(0)
}

func (e *EnforceSecurity) ReviewTransfer(transfer models.CaseTransfer) error {
	args := e.Called(transfer)
	return args.Error(0)
}

func (e *EnforceSecurity) CancelTransfer(transfer models.CaseTransfer) error {
	args := e.Called(transfer)
	return args.Error(0)
}

func (e *EnforceSecurity) ReadTransfer(transfer models.CaseTransfer) error {
	args := e.Called(transfer)
	return args.Error(0)
}

func (e *EnforceSecurity) ReadDocument(c models.Case, document models.Document) error {
	args := e.Called(c, document)
	return args.Error(0)
}

func (e *EnforceSecurity) UploadDocument(c models.Case) error {
	args := e.Called(c)
	return args.Error(0)
}

func (e *EnforceSecurity) ReviewDocument(c models.Case) error {
	args := e.Called(c)
	return args.Error(0)
}

func (e *EnforceSecurity) ShareDocument(c models.Case) error {
	args := e.Called(c)
	return args.Error(0)
}

func (e *EnforceSecurity) CreateDocumentRequest(c models.Case) error {
	args := e.Called(c)
	return args.Error(0)
}

func (e *EnforceSecurity) ReadNotification(notification models.Notification) error {
	args := e.Called(notification)
	return args.Error(0)
}

func (e *EnforceSecurity) ExecuteBulkOperation() error {
	args := e.Called()
	return args.Error(0)
}

func (e *EnforceSecurity) ReadBulkOperationJob(job models.BulkOperationJob) error {
	args := e.Called(job)
	return args.Error(0)
}

func (e *EnforceSecurity) CreateUser() error {
	args := e.Called()
	return args.Error(0)
}

func (e *EnforceSecurity) ReadUser() error {
	args := e.Called()
	return args.Error(0)
}

func (e *EnforceSecurity) ReadAnalytics() error {
	args := e.Called()
	return args.Error(0)
}

func (e *EnforceSecurity) AskAssistant() error {
	args := e.Called()
	return args.Error(0)
}
