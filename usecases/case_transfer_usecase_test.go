package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/themis-legal/themis-backend/mocks"
	"github.com/themis-legal/themis-backend/models"
)

type CaseTransferUsecaseTestSuite struct {
	suite.Suite
	enforceSecurity        *mocks.EnforceSecurity
	enforceCaseSecurity    *mocks.EnforceSecurity
	executorFactory        *mocks.ExecutorFactory
	executor               *mocks.Executor
	transaction            *mocks.Transaction
	transactionFactory     *mocks.TransactionFactory
	transferRepository     *mocks.CaseTransferRepository
	caseRepository         *mocks.CaseRepository
	userRepository         *mocks.UserRepository
	notificationRepository *mocks.NotificationRepository

	ctx         context.Context
	caseId      string
	transferId  string
	fromUserId  string
	toUserId    string
	clientId    string
	testCase    models.Case
	pendingItem models.CaseTransfer
}

func (suite *CaseTransferUsecaseTestSuite) SetupTest() {
	suite.enforceSecurity = new(mocks.EnforceSecurity)
	suite.enforceCaseSecurity = new(mocks.EnforceSecurity)
	suite.executorFactory = new(mocks.ExecutorFactory)
	suite.executor = new(mocks.Executor)
	suite.transaction = new(mocks.Transaction)
	suite.transactionFactory = &mocks.TransactionFactory{TxMock: suite.transaction}
	suite.transferRepository = new(mocks.CaseTransferRepository)
	suite.caseRepository = new(mocks.CaseRepository)
	suite.userRepository = new(mocks.UserRepository)
	suite.notificationRepository = new(mocks.NotificationRepository)

	suite.ctx = context.Background()
	suite.caseId = "8d5bc848-c517-4d21-9140-6ba6f33b1e1a"
	suite.transferId = "c54ef3d7-9d09-4dcc-a7a7-bb0193956a75"
	suite.fromUserId = "4b708925-cbb5-426a-acba-675bcd676e95"
	suite.toUserId = "f256e317-d1b4-4331-8534-b29acbc3578c"
	suite.clientId = "d3f5f1a7-1b16-42ae-a08b-0a0a95bf40aa"

	suite.testCase = models.Case{
		Id:         suite.caseId,
		CaseNumber: "CIV-2026-0042",
		Status:     models.CaseOpen,
		LawyerId:   suite.fromUserId,
		ClientId:   suite.clientId,
	}
	suite.pendingItem = models.CaseTransfer{
		Id:          suite.transferId,
		CaseId:      suite.caseId,
		FromUserId:  suite.fromUserId,
		ToUserId:    suite.toUserId,
		Reason:      "conflict of interest",
		Status:      models.TransferPending,
		RequestedAt: time.Now(),
	}
}

func (suite *CaseTransferUsecaseTestSuite) makeUsecase() *CaseTransferUseCase {
	return &CaseTransferUseCase{
		enforceSecurity:        suite.enforceSecurity,
		enforceCaseSecurity:    suite.enforceCaseSecurity,
		executorFactory:        suite.executorFactory,
		transactionFactory:     suite.transactionFactory,
		transferRepository:     suite.transferRepository,
		caseRepository:         suite.caseRepository,
		userRepository:         suite.userRepository,
		notificationRepository: suite.notificationRepository,
		credentials: models.Credentials{
			ActorIdentity: models.Identity{UserId: suite.fromUserId},
			Role:          models.LAWYER,
		},
	}
}

func (suite *CaseTransferUsecaseTestSuite) AssertExpectations() {
	t := suite.T()
	suite.enforceSecurity.AssertExpectations(t)
	suite.transferRepository.AssertExpectations(t)
	suite.caseRepository.AssertExpectations(t)
	suite.userRepository.AssertExpectations(t)
	suite.notificationRepository.AssertExpectations(t)
}

func (suite *CaseTransferUsecaseTestSuite) Test_RequestTransfer_SecondPendingIsRejected() {
	suite.transactionFactory.On("Transaction", suite.ctx, mock.Anything).Return(nil)
	suite.caseRepository.On("GetCaseById", suite.ctx, suite.transaction, suite.caseId).
		Return(suite.testCase, nil)
	suite.enforceSecurity.On("RequestTransfer", suite.testCase).Return(nil)
	suite.userRepository.On("UserById", suite.ctx, suite.transaction, suite.toUserId).
		Return(models.User{Id: suite.toUserId, Role: models.LAWYER, IsActive: true}, nil)
	suite.transferRepository.On("PendingTransferForCase", suite.ctx, suite.transaction, suite.caseId).
		Return(&suite.pendingItem, nil)

	_, err := suite.makeUsecase().RequestTransfer(suite.ctx, RequestCaseTransferInput{
		CaseId:   suite.caseId,
		ToUserId: suite.toUserId,
		Reason:   "workload",
	})

	suite.Require().ErrorIs(err, models.ErrPendingTransferExists)
	suite.Require().ErrorIs(err, models.ConflictError)
	suite.transferRepository.AssertNotCalled(suite.T(), "CreateCaseTransfer")
	suite.AssertExpectations()
}

func (suite *CaseTransferUsecaseTestSuite) Test_RequestTransfer_ToCurrentLawyer() {
	suite.transactionFactory.On("Transaction", suite.ctx, mock.Anything).Return(nil)
	suite.caseRepository.On("GetCaseById", suite.ctx, suite.transaction, suite.caseId).
		Return(suite.testCase, nil)
	suite.enforceSecurity.On("RequestTransfer", suite.testCase).Return(nil)

	_, err := suite.makeUsecase().RequestTransfer(suite.ctx, RequestCaseTransferInput{
		CaseId:   suite.caseId,
		ToUserId: suite.fromUserId,
		Reason:   "workload",
	})

	suite.Require().ErrorIs(err, models.ErrTransferToSelf)
	suite.AssertExpectations()
}

func (suite *CaseTransferUsecaseTestSuite) Test_RequestTransfer_TargetIsNotALawyer() {
	suite.transactionFactory.On("Transaction", suite.ctx, mock.Anything).Return(nil)
	suite.caseRepository.On("GetCaseById", suite.ctx, suite.transaction, suite.caseId).
		Return(suite.testCase, nil)
	suite.enforceSecurity.On("RequestTransfer", suite.testCase).Return(nil)
	suite.userRepository.On("UserById", suite.ctx, suite.transaction, suite.clientId).
		Return(models.User{Id: suite.clientId, Role: models.CLIENT, IsActive: true}, nil)

	_, err := suite.makeUsecase().RequestTransfer(suite.ctx, RequestCaseTransferInput{
		CaseId:   suite.caseId,
		ToUserId: suite.clientId,
		Reason:   "workload",
	})

	suite.Require().ErrorIs(err, models.ErrTransferTargetNotLawyer)
	suite.AssertExpectations()
}

func (suite *CaseTransferUsecaseTestSuite) Test_RequestTransfer_NotifiesTargetAndClient() {
	suite.transactionFactory.On("Transaction", suite.ctx, mock.Anything).Return(nil)
	suite.caseRepository.On("GetCaseById", suite.ctx, suite.transaction, suite.caseId).
		Return(suite.testCase, nil)
	suite.enforceSecurity.On("RequestTransfer", suite.testCase).Return(nil)
	suite.userRepository.On("UserById", suite.ctx, suite.transaction, suite.toUserId).
		Return(models.User{Id: suite.toUserId, Role: models.LAWYER, IsActive: true}, nil)
	suite.transferRepository.On("PendingTransferForCase", suite.ctx, suite.transaction, suite.caseId).
		Return(nil, nil)
	suite.transferRepository.On("CreateCaseTransfer", suite.ctx, suite.transaction, mock.Anything).
		Return(suite.transferId, nil)
	suite.notificationRepository.On("CreateNotification", suite.ctx, suite.transaction, mock.Anything).
		Return("6f3d61f0-5a25-45ad-94b9-8c8872a2e86f", nil)
	suite.transferRepository.On("GetCaseTransferById", suite.ctx, suite.transaction, suite.transferId).
		Return(suite.pendingItem, nil)

	transfer, err := suite.makeUsecase().RequestTransfer(suite.ctx, RequestCaseTransferInput{
		CaseId:   suite.caseId,
		ToUserId: suite.toUserId,
		Reason:   "conflict of interest",
	})

	suite.Require().NoError(err)
	suite.Require().Equal(models.TransferPending, transfer.Status)

	var notified []string
	for _, call := range suite.notificationRepository.Calls {
		if call.Method == "CreateNotification" {
			notified = append(notified,
				call.Arguments.Get(2).(models.CreateNotificationAttributes).UserId)
		}
	}
	suite.Require().ElementsMatch([]string{suite.toUserId, suite.clientId}, notified)
	suite.AssertExpectations()
}

func (suite *CaseTransferUsecaseTestSuite) Test_ApproveTransfer_ReassignsCaseAndNotifiesParties() {
	approved := suite.pendingItem
	approved.Status = models.TransferApproved

	suite.transactionFactory.On("Transaction", suite.ctx, mock.Anything).Return(nil)
	suite.transferRepository.On("GetCaseTransferById", suite.ctx, suite.transaction, suite.transferId).
		Return(suite.pendingItem, nil).Once()
	suite.enforceSecurity.On("ReviewTransfer", suite.pendingItem).Return(nil)
	suite.caseRepository.On("GetCaseById", suite.ctx, suite.transaction, suite.caseId).
		Return(suite.testCase, nil)
	suite.caseRepository.On("UpdateCaseLawyer", suite.ctx, suite.transaction,
		suite.caseId, suite.toUserId).Return(nil)
	suite.transferRepository.On("UpdateCaseTransferStatus", suite.ctx, suite.transaction,
		suite.transferId, models.TransferApproved).Return(nil)
	suite.notificationRepository.On("CreateNotification", suite.ctx, suite.transaction, mock.Anything).
		Return("3e7a2927-6c24-40d4-8bc1-95a08cf3e34a", nil)
	suite.transferRepository.On("GetCaseTransferById", suite.ctx, suite.transaction, suite.transferId).
		Return(approved, nil)

	transfer, err := suite.makeUsecase().ApproveTransfer(suite.ctx, suite.transferId)

	suite.Require().NoError(err)
	suite.Require().Equal(models.TransferApproved, transfer.Status)

	var notified []string
	for _, call := range suite.notificationRepository.Calls {
		if call.Method == "CreateNotification" {
			notified = append(notified,
				call.Arguments.Get(2).(models.CreateNotificationAttributes).UserId)
		}
	}
	suite.Require().ElementsMatch(
		[]string{suite.fromUserId, suite.toUserId, suite.clientId}, notified)
	suite.AssertExpectations()
}

func (suite *CaseTransferUsecaseTestSuite) Test_ApproveTransfer_OnlyFromPending() {
	resolved := suite.pendingItem
	resolved.Status = models.TransferRejected

	suite.transactionFactory.On("Transaction", suite.ctx, mock.Anything).Return(nil)
	suite.transferRepository.On("GetCaseTransferById", suite.ctx, suite.transaction, suite.transferId).
		Return(resolved, nil)
	suite.enforceSecurity.On("ReviewTransfer", resolved).Return(nil)

	_, err := suite.makeUsecase().ApproveTransfer(suite.ctx, suite.transferId)

	suite.Require().ErrorIs(err, models.ErrTransferNotPending)
	suite.caseRepository.AssertNotCalled(suite.T(), "UpdateCaseLawyer")
	suite.AssertExpectations()
}

func (suite *CaseTransferUsecaseTestSuite) Test_RejectTransfer_KeepsCurrentLawyer() {
	rejected := suite.pendingItem
	rejected.Status = models.TransferRejected

	suite.transactionFactory.On("Transaction", suite.ctx, mock.Anything).Return(nil)
	suite.transferRepository.On("GetCaseTransferById", suite.ctx, suite.transaction, suite.transferId).
		Return(suite.pendingItem, nil).Once()
	suite.enforceSecurity.On("ReviewTransfer", suite.pendingItem).Return(nil)
	suite.transferRepository.On("UpdateCaseTransferStatus", suite.ctx, suite.transaction,
		suite.transferId, models.TransferRejected).Return(nil)
	suite.transferRepository.On("AppendCaseTransferNote", suite.ctx, suite.transaction,
		suite.transferId, "caseload is full").Return(nil)
	suite.notificationRepository.On("CreateNotification", suite.ctx, suite.transaction, mock.Anything).
		Return("9e39ee19-16ce-4c2b-9dd8-9f27b30cf53b", nil)
	suite.transferRepository.On("GetCaseTransferById", suite.ctx, suite.transaction, suite.transferId).
		Return(rejected, nil)

	reason := "caseload is full"
	transfer, err := suite.makeUsecase().RejectTransfer(suite.ctx, suite.transferId, &reason)

	suite.Require().NoError(err)
	suite.Require().Equal(models.TransferRejected, transfer.Status)
	suite.caseRepository.AssertNotCalled(suite.T(), "UpdateCaseLawyer")

	attributes := suite.notificationRepository.Calls[0].Arguments.
		Get(2).(models.CreateNotificationAttributes)
	suite.Require().Equal(suite.fromUserId, attributes.UserId)
	suite.AssertExpectations()
}

func (suite *CaseTransferUsecaseTestSuite) Test_CancelTransfer_ForbiddenForNonRequester() {
	suite.transactionFactory.On("Transaction", suite.ctx, mock.Anything).Return(nil)
	suite.transferRepository.On("GetCaseTransferById", suite.ctx, suite.transaction, suite.transferId).
		Return(suite.pendingItem, nil)
	suite.enforceSecurity.On("CancelTransfer", suite.pendingItem).
		Return(errors.Wrap(models.ForbiddenError, "only the requester can cancel this transfer"))

	_, err := suite.makeUsecase().CancelTransfer(suite.ctx, suite.transferId)

	suite.Require().ErrorIs(err, models.ForbiddenError)
	suite.transferRepository.AssertNotCalled(suite.T(), "UpdateCaseTransferStatus")
	suite.AssertExpectations()
}

func TestCaseTransferUsecase(t *testing.T) {
	suite.Run(t, new(CaseTransferUsecaseTestSuite))
}
