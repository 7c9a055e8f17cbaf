package usecases

import (
	"context"
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/themis-legal/themis-backend/models"
	"github.com/themis-legal/themis-backend/repositories"
	"github.com/themis-legal/themis-backend/usecases/executor_factory"
	"github.com/themis-legal/themis-backend/usecases/security"
)

type CaseTransferUseCase struct {
	enforceSecurity        security.EnforceSecurityCaseTransfer
	enforceCaseSecurity    security.EnforceSecurityCase
	executorFactory        executor_factory.ExecutorFactory
	transactionFactory     executor_factory.TransactionFactory
	transferRepository     repositories.CaseTransferRepository
	caseRepository         repositories.CaseRepository
	userRepository         repositories.UserRepository
	notificationRepository repositories.NotificationRepository
	credentials            models.Credentials
}

type RequestCaseTransferInput struct {
	CaseId   string
	ToUserId string
	Reason   string
	Notes    *string
}

// RequestTransfer creates a pending transfer of the case to another lawyer.
// A case can carry at most one pending transfer: the check here catches the
// common path, the partial unique index on case_transfers catches races.
func (usecase *CaseTransferUseCase) RequestTransfer(ctx context.Context, input RequestCaseTransferInput) (models.CaseTransfer, error) {
	return executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Transaction) (models.CaseTransfer, error) {
			c, err := usecase.caseRepository.GetCaseById(ctx, tx, input.CaseId)
			if err != nil {
				return models.CaseTransfer{}, err
			}
			if err := usecase.enforceSecurity.RequestTransfer(c); err != nil {
				return models.CaseTransfer{}, err
			}

			if input.ToUserId == c.LawyerId {
				return models.CaseTransfer{}, models.ErrTransferToSelf
			}

			target, err := usecase.userRepository.UserById(ctx, tx, input.ToUserId)
			if err != nil {
				if errors.Is(err, models.NotFoundError) {
					return models.CaseTransfer{}, models.ErrTransferTargetNotLawyer
				}
				return models.CaseTransfer{}, err
			}
			if target.Role != models.LAWYER || !target.IsActive {
				return models.CaseTransfer{}, models.ErrTransferTargetNotLawyer
			}

			pending, err := usecase.transferRepository.PendingTransferForCase(ctx, tx, input.CaseId)
			if err != nil {
				return models.CaseTransfer{}, err
			}
			if pending != nil {
				return models.CaseTransfer{}, models.ErrPendingTransferExists
			}

			newTransferId, err := usecase.transferRepository.CreateCaseTransfer(ctx, tx,
				models.CreateCaseTransferAttributes{
					CaseId:     input.CaseId,
					FromUserId: c.LawyerId,
					ToUserId:   input.ToUserId,
					Reason:     input.Reason,
					Notes:      input.Notes,
				})
			if err != nil {
				if repositories.IsUniqueViolationError(err) {
					return models.CaseTransfer{}, models.ErrPendingTransferExists
				}
				return models.CaseTransfer{}, err
			}

			notifications := []models.CreateNotificationAttributes{
				{
					UserId:           input.ToUserId,
					CaseId:           &c.Id,
					Title:            "Case transfer requested",
					Message:          fmt.Sprintf("You have been asked to take over case %s: %s", c.CaseNumber, input.Reason),
					NotificationType: models.NotificationTransferRequested,
					Priority:         models.PriorityHigh,
				},
				{
					UserId:           c.ClientId,
					CaseId:           &c.Id,
					Title:            "Case transfer requested",
					Message:          fmt.Sprintf("A transfer of your case %s to another lawyer has been requested", c.CaseNumber),
					NotificationType: models.NotificationTransferRequested,
					Priority:         models.PriorityHigh,
				},
			}
			for _, attributes := range notifications {
				if _, err := usecase.notificationRepository.CreateNotification(ctx, tx, attributes); err != nil {
					return models.CaseTransfer{}, err
				}
			}

			return usecase.transferRepository.GetCaseTransferById(ctx, tx, newTransferId)
		})
}

// ApproveTransfer reassigns the case to the target lawyer and resolves the
// transfer, atomically. Everyone else involved in the case is notified.
func (usecase *CaseTransferUseCase) ApproveTransfer(ctx context.Context, transferId string) (models.CaseTransfer, error) {
	return executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Transaction) (models.CaseTransfer, error) {
			transfer, err := usecase.transferRepository.GetCaseTransferById(ctx, tx, transferId)
			if err != nil {
				return models.CaseTransfer{}, err
			}
			if err := usecase.enforceSecurity.ReviewTransfer(transfer); err != nil {
				return models.CaseTransfer{}, err
			}
			if transfer.Status.IsResolved() {
				return models.CaseTransfer{}, models.ErrTransferNotPending
			}

			c, err := usecase.caseRepository.GetCaseById(ctx, tx, transfer.CaseId)
			if err != nil {
				return models.CaseTransfer{}, err
			}

			if err := usecase.caseRepository.UpdateCaseLawyer(ctx, tx, c.Id, transfer.ToUserId); err != nil {
				return models.CaseTransfer{}, err
			}
			if err := usecase.transferRepository.UpdateCaseTransferStatus(ctx, tx,
				transferId, models.TransferApproved); err != nil {
				return models.CaseTransfer{}, err
			}

			message := fmt.Sprintf("The transfer of case %s has been accepted", c.CaseNumber)
			notified := []string{transfer.FromUserId, transfer.ToUserId, c.ClientId}
			for _, userId := range notified {
				_, err := usecase.notificationRepository.CreateNotification(ctx, tx,
					models.CreateNotificationAttributes{
						UserId:           userId,
						CaseId:           &c.Id,
						Title:            "Case transfer approved",
						Message:          message,
						NotificationType: models.NotificationTransferApproved,
						Priority:         models.PriorityHigh,
					})
				if err != nil {
					return models.CaseTransfer{}, err
				}
			}

			return usecase.transferRepository.GetCaseTransferById(ctx, tx, transferId)
		})
}

func (usecase *CaseTransferUseCase) RejectTransfer(ctx context.Context, transferId string, reason *string) (models.CaseTransfer, error) {
	return executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Transaction) (models.CaseTransfer, error) {
			transfer, err := usecase.transferRepository.GetCaseTransferById(ctx, tx, transferId)
			if err != nil {
				return models.CaseTransfer{}, err
			}
			if err := usecase.enforceSecurity.ReviewTransfer(transfer); err != nil {
				return models.CaseTransfer{}, err
			}
			if transfer.Status.IsResolved() {
				return models.CaseTransfer{}, models.ErrTransferNotPending
			}

			if err := usecase.transferRepository.UpdateCaseTransferStatus(ctx, tx,
				transferId, models.TransferRejected); err != nil {
				return models.CaseTransfer{}, err
			}
			if reason != nil && *reason != "" {
				if err := usecase.transferRepository.AppendCaseTransferNote(ctx, tx,
					transferId, *reason); err != nil {
					return models.CaseTransfer{}, err
				}
			}

			_, err = usecase.notificationRepository.CreateNotification(ctx, tx,
				models.CreateNotificationAttributes{
					UserId:           transfer.FromUserId,
					CaseId:           &transfer.CaseId,
					Title:            "Case transfer rejected",
					Message:          "Your transfer request has been declined, the case stays with you",
					NotificationType: models.NotificationTransferRejected,
					Priority:         models.PriorityHigh,
				})
			if err != nil {
				return models.CaseTransfer{}, err
			}

			return usecase.transferRepository.GetCaseTransferById(ctx, tx, transferId)
		})
}

func (usecase *CaseTransferUseCase) CancelTransfer(ctx context.Context, transferId string) (models.CaseTransfer, error) {
	return executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Transaction) (models.CaseTransfer, error) {
			transfer, err := usecase.transferRepository.GetCaseTransferById(ctx, tx, transferId)
			if err != nil {
				return models.CaseTransfer{}, err
			}
			if err := usecase.enforceSecurity.CancelTransfer(transfer); err != nil {
				return models.CaseTransfer{}, err
			}
			if transfer.Status.IsResolved() {
				return models.CaseTransfer{}, models.ErrTransferNotPending
			}

			if err := usecase.transferRepository.UpdateCaseTransferStatus(ctx, tx,
				transferId, models.TransferCancelled); err != nil {
				return models.CaseTransfer{}, err
			}

			_, err = usecase.notificationRepository.CreateNotification(ctx, tx,
				models.CreateNotificationAttributes{
					UserId:           transfer.ToUserId,
					CaseId:           &transfer.CaseId,
					Title:            "Case transfer cancelled",
					Message:          "A transfer request addressed to you has been withdrawn",
					NotificationType: models.NotificationTransferCancelled,
					Priority:         models.PriorityMedium,
				})
			if err != nil {
				return models.CaseTransfer{}, err
			}

			return usecase.transferRepository.GetCaseTransferById(ctx, tx, transferId)
		})
}

func (usecase *CaseTransferUseCase) GetTransfer(ctx context.Context, transferId string) (models.CaseTransfer, error) {
	transfer, err := usecase.transferRepository.GetCaseTransferById(ctx,
		usecase.executorFactory.NewExecutor(), transferId)
	if err != nil {
		return models.CaseTransfer{}, err
	}
	if err := usecase.enforceSecurity.ReadTransfer(transfer); err != nil {
		return models.CaseTransfer{}, err
	}
	return transfer, nil
}

func (usecase *CaseTransferUseCase) ListTransfers(ctx context.Context, listing models.TransferListingType) ([]models.CaseTransfer, error) {
	return usecase.transferRepository.ListCaseTransfers(ctx,
		usecase.executorFactory.NewExecutor(),
		usecase.credentials.ActorIdentity.UserId,
		listing)
}

func (usecase *CaseTransferUseCase) ListPendingTransfers(ctx context.Context) ([]models.CaseTransfer, error) {
	return usecase.transferRepository.ListPendingTransfersForUser(ctx,
		usecase.executorFactory.NewExecutor(),
		usecase.credentials.ActorIdentity.UserId)
}

func (usecase *CaseTransferUseCase) CaseTransferHistory(ctx context.Context, caseId string) ([]models.CaseTransfer, error) {
	exec := usecase.executorFactory.NewExecutor()
	c, err := usecase.caseRepository.GetCaseById(ctx, exec, caseId)
	if err != nil {
		return nil, err
	}
	if err := usecase.enforceCaseSecurity.ReadCase(c); err != nil {
		return nil, err
	}
	return usecase.transferRepository.TransferHistoryForCase(ctx, exec, caseId)
}
