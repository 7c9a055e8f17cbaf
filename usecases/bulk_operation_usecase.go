package usecases

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/themis-legal/themis-backend/models"
	"github.com/themis-legal/themis-backend/repositories"
	"github.com/themis-legal/themis-backend/usecases/executor_factory"
	"github.com/themis-legal/themis-backend/usecases/security"
)

type BulkOperationUseCase struct {
	enforceSecurity        security.EnforceSecurityBulkOperation
	executorFactory        executor_factory.ExecutorFactory
	transactionFactory     executor_factory.TransactionFactory
	jobRepository          repositories.BulkOperationJobRepository
	notificationRepository repositories.NotificationRepository
	documentUsecase        DocumentUseCase
	caseUsecase            CaseUseCase
	credentials            models.Credentials
}

// runBatch executes one item at a time and aggregates the outcomes. A failed
// item never aborts the batch: each item runs in its own transaction inside
// the callback, so successes stay committed.
func runBatch[T any](items []T, itemId func(T) string, run func(T) error) models.BulkOperationResult {
	var result models.BulkOperationResult
	for _, item := range items {
		if err := run(item); err != nil {
			result.Failures = append(result.Failures, models.BulkItemFailure{
				ItemId: itemId(item),
				Error:  err.Error(),
			})
			continue
		}
		result.Successes = append(result.Successes, models.BulkItemSuccess{
			ItemId: itemId(item),
		})
	}
	return result
}

func (usecase *BulkOperationUseCase) finishBatch(
	ctx context.Context,
	kind models.BulkOperationKind,
	result models.BulkOperationResult,
) (models.BulkOperationJob, error) {
	return executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Transaction) (models.BulkOperationJob, error) {
			newJobId, err := usecase.jobRepository.CreateBulkOperationJob(ctx, tx,
				models.CreateBulkOperationJobAttributes{
					InitiatedBy:   usecase.credentials.ActorIdentity.UserId,
					OperationKind: kind,
					Result:        result,
				})
			if err != nil {
				return models.BulkOperationJob{}, err
			}

			// no summary notification when nothing went through, the job row
			// already carries the failures
			summary := result.Summary()
			if summary.Successful > 0 {
				_, err = usecase.notificationRepository.CreateNotification(ctx, tx,
					models.CreateNotificationAttributes{
						UserId: usecase.credentials.ActorIdentity.UserId,
						Title:  "Bulk operation finished",
						Message: fmt.Sprintf("%s: %d items processed, %d succeeded, %d failed",
							kind, summary.Total, summary.Successful, summary.Failed),
						NotificationType: models.NotificationBulkSummary,
						Priority:         models.PriorityLow,
					})
				if err != nil {
					return models.BulkOperationJob{}, err
				}
			}

			return usecase.jobRepository.GetBulkOperationJobById(ctx, tx, newJobId)
		})
}

func (usecase *BulkOperationUseCase) GetJob(ctx context.Context, jobId string) (models.BulkOperationJob, error) {
	job, err := usecase.jobRepository.GetBulkOperationJobById(ctx,
		usecase.executorFactory.NewExecutor(), jobId)
	if err != nil {
		return models.BulkOperationJob{}, err
	}
	if err := usecase.enforceSecurity.ReadBulkOperationJob(job); err != nil {
		return models.BulkOperationJob{}, err
	}
	return job, nil
}

func (usecase *BulkOperationUseCase) BulkReviewDocuments(ctx context.Context,
	documentIds []string, status models.DocumentStatus, reviewNote *string,
) (models.BulkOperationJob, error) {
	if err := usecase.enforceSecurity.ExecuteBulkOperation(); err != nil {
		return models.BulkOperationJob{}, err
	}
	if len(documentIds) == 0 {
		return models.BulkOperationJob{}, models.ErrEmptyBatch
	}

	kind := models.BulkApproveDocuments
	if status == models.DocumentRejected {
		kind = models.BulkRejectDocuments
	}

	result := runBatch(documentIds,
		func(documentId string) string { return documentId },
		func(documentId string) error {
			_, err := usecase.documentUsecase.ReviewDocument(ctx, documentId, status, reviewNote)
			return err
		})
	return usecase.finishBatch(ctx, kind, result)
}

func (usecase *BulkOperationUseCase) BulkShareDocuments(ctx context.Context,
	documentIds []string,
) (models.BulkOperationJob, error) {
	if err := usecase.enforceSecurity.ExecuteBulkOperation(); err != nil {
		return models.BulkOperationJob{}, err
	}
	if len(documentIds) == 0 {
		return models.BulkOperationJob{}, models.ErrEmptyBatch
	}

	result := runBatch(documentIds,
		func(documentId string) string { return documentId },
		func(documentId string) error {
			_, err := usecase.documentUsecase.ShareDocumentWithJudge(ctx, documentId)
			return err
		})
	return usecase.finishBatch(ctx, models.BulkShareDocuments, result)
}

func (usecase *BulkOperationUseCase) BulkUploadDocuments(ctx context.Context,
	caseId string, fileHeaders []*multipart.FileHeader,
) (models.BulkOperationJob, error) {
	if err := usecase.enforceSecurity.ExecuteBulkOperation(); err != nil {
		return models.BulkOperationJob{}, err
	}
	if len(fileHeaders) == 0 {
		return models.BulkOperationJob{}, models.ErrEmptyBatch
	}

	result := runBatch(fileHeaders,
		func(fileHeader *multipart.FileHeader) string { return fileHeader.Filename },
		func(fileHeader *multipart.FileHeader) error {
			_, err := usecase.documentUsecase.UploadDocument(ctx, caseId, fileHeader)
			return err
		})
	return usecase.finishBatch(ctx, models.BulkUploadDocuments, result)
}

func (usecase *BulkOperationUseCase) BulkCreateDocumentRequests(ctx context.Context,
	inputs []CreateDocumentRequestInput,
) (models.BulkOperationJob, error) {
	if err := usecase.enforceSecurity.ExecuteBulkOperation(); err != nil {
		return models.BulkOperationJob{}, err
	}
	if len(inputs) == 0 {
		return models.BulkOperationJob{}, models.ErrEmptyBatch
	}

	result := runBatch(inputs,
		func(input CreateDocumentRequestInput) string {
			return fmt.Sprintf("%s/%s", input.CaseId, input.DocumentType)
		},
		func(input CreateDocumentRequestInput) error {
			_, err := usecase.documentUsecase.CreateDocumentRequest(ctx, input)
			return err
		})
	return usecase.finishBatch(ctx, models.BulkCreateDocumentRequests, result)
}

func (usecase *BulkOperationUseCase) BulkUpdateCasesStatus(ctx context.Context,
	caseIds []string, status models.CaseStatus,
) (models.BulkOperationJob, error) {
	if err := usecase.enforceSecurity.ExecuteBulkOperation(); err != nil {
		return models.BulkOperationJob{}, err
	}
	if len(caseIds) == 0 {
		return models.BulkOperationJob{}, models.ErrEmptyBatch
	}

	result := runBatch(caseIds,
		func(caseId string) string { return caseId },
		func(caseId string) error {
			_, err := usecase.caseUsecase.UpdateCaseStatus(ctx, caseId, status)
			return err
		})
	return usecase.finishBatch(ctx, models.BulkUpdateCasesStatus, result)
}
