package usecases

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/themis-legal/themis-backend/models"
	"github.com/themis-legal/themis-backend/repositories"
	"github.com/themis-legal/themis-backend/usecases/executor_factory"
	"github.com/themis-legal/themis-backend/usecases/security"
)

type DocumentUseCase struct {
	enforceSecurity           security.EnforceSecurityDocument
	executorFactory           executor_factory.ExecutorFactory
	transactionFactory        executor_factory.TransactionFactory
	documentRepository        repositories.DocumentRepository
	documentRequestRepository repositories.DocumentRequestRepository
	caseRepository            repositories.CaseRepository
	notificationRepository    repositories.NotificationRepository
	blobRepository            repositories.BlobRepository
	bucketUrl                 string
	credentials               models.Credentials
}

// UploadDocument stores the file in blob storage, then records the document.
// The document type is inferred from the file name. If the uploader had an
// open document request of the same type on this case, it is marked fulfilled.
func (usecase *DocumentUseCase) UploadDocument(ctx context.Context, caseId string,
	fileHeader *multipart.FileHeader,
) (models.Document, error) {
	exec := usecase.executorFactory.NewExecutor()
	c, err := usecase.caseRepository.GetCaseById(ctx, exec, caseId)
	if err != nil {
		return models.Document{}, err
	}
	if err := usecase.enforceSecurity.UploadDocument(c); err != nil {
		return models.Document{}, err
	}

	bucketKey := fmt.Sprintf("documents/%s/%s/%s", caseId, uuid.NewString(), fileHeader.Filename)
	if err := usecase.writeToBlobStorage(ctx, fileHeader, bucketKey); err != nil {
		return models.Document{}, err
	}

	documentType := models.InferDocumentType(fileHeader.Filename)

	document, err := executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Transaction) (models.Document, error) {
			newDocumentId, err := usecase.documentRepository.CreateDocument(ctx, tx,
				models.CreateDocumentAttributes{
					CaseId:       caseId,
					FileName:     fileHeader.Filename,
					DocumentType: documentType,
					BucketKey:    bucketKey,
					UploadedBy:   usecase.credentials.ActorIdentity.UserId,
				})
			if err != nil {
				return models.Document{}, err
			}

			if err := usecase.fulfillMatchingRequest(ctx, tx, caseId, documentType); err != nil {
				return models.Document{}, err
			}

			return usecase.documentRepository.GetDocumentById(ctx, tx, newDocumentId)
		})
	if err != nil {
		// The document row does not exist, remove the orphaned blob.
		if deleteErr := usecase.blobRepository.DeleteFile(ctx, usecase.bucketUrl, bucketKey); deleteErr != nil {
			return models.Document{}, errors.Join(err, deleteErr)
		}
		return models.Document{}, err
	}
	return document, nil
}

func (usecase *DocumentUseCase) fulfillMatchingRequest(
	ctx context.Context,
	tx repositories.Transaction,
	caseId string,
	documentType string,
) error {
	requests, err := usecase.documentRequestRepository.ListDocumentRequestsForUser(ctx, tx,
		usecase.credentials.ActorIdentity.UserId)
	if err != nil {
		return err
	}
	for _, request := range requests {
		if request.CaseId != caseId || request.DocumentType != documentType {
			continue
		}
		return usecase.documentRequestRepository.FulfillDocumentRequest(ctx, tx, request.Id)
	}
	return nil
}

func (usecase *DocumentUseCase) writeToBlobStorage(ctx context.Context,
	fileHeader *multipart.FileHeader, bucketKey string,
) error {
	writer, err := usecase.blobRepository.OpenStream(ctx, usecase.bucketUrl, bucketKey, fileHeader.Filename)
	if err != nil {
		return err
	}
	defer writer.Close()

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(models.BadParameterError, err.Error())
	}
	defer file.Close()

	if _, err := io.Copy(writer, file); err != nil {
		return err
	}
	return writer.Close()
}

// ListCaseDocuments returns the case's documents, restricted to shared ones
// when the reader is the judge.
func (usecase *DocumentUseCase) ListCaseDocuments(ctx context.Context, caseId string) ([]models.Document, error) {
	exec := usecase.executorFactory.NewExecutor()
	c, err := usecase.caseRepository.GetCaseById(ctx, exec, caseId)
	if err != nil {
		return nil, err
	}

	sharedOnly := usecase.credentials.Role == models.JUDGE
	documents, err := usecase.documentRepository.ListDocumentsForCase(ctx, exec, caseId, sharedOnly)
	if err != nil {
		return nil, err
	}
	for _, document := range documents {
		if err := usecase.enforceSecurity.ReadDocument(c, document); err != nil {
			return nil, err
		}
	}
	return documents, nil
}

func (usecase *DocumentUseCase) GetDocumentDownloadUrl(ctx context.Context, documentId string) (string, error) {
	exec := usecase.executorFactory.NewExecutor()
	document, err := usecase.documentRepository.GetDocumentById(ctx, exec, documentId)
	if err != nil {
		return "", err
	}
	c, err := usecase.caseRepository.GetCaseById(ctx, exec, document.CaseId)
	if err != nil {
		return "", err
	}
	if err := usecase.enforceSecurity.ReadDocument(c, document); err != nil {
		return "", err
	}

	return usecase.blobRepository.GenerateSignedUrl(ctx, usecase.bucketUrl, document.BucketKey)
}

// ReviewDocument approves or rejects a pending document and notifies the
// uploader.
func (usecase *DocumentUseCase) ReviewDocument(ctx context.Context, documentId string,
	status models.DocumentStatus, reviewNote *string,
) (models.Document, error) {
	if status != models.DocumentApproved && status != models.DocumentRejected {
		return models.Document{}, errors.Wrap(models.BadParameterError,
			"review status must be approved or rejected")
	}

	return executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Transaction) (models.Document, error) {
			document, err := usecase.documentRepository.GetDocumentById(ctx, tx, documentId)
			if err != nil {
				return models.Document{}, err
			}
			c, err := usecase.caseRepository.GetCaseById(ctx, tx, document.CaseId)
			if err != nil {
				return models.Document{}, err
			}
			if err := usecase.enforceSecurity.ReviewDocument(c); err != nil {
				return models.Document{}, err
			}
			if document.Status != models.DocumentPending {
				return models.Document{}, models.ErrDocumentNotPending
			}

			if err := usecase.documentRepository.ReviewDocument(ctx, tx, documentId, status, reviewNote); err != nil {
				return models.Document{}, err
			}

			if document.UploadedBy != usecase.credentials.ActorIdentity.UserId {
				_, err = usecase.notificationRepository.CreateNotification(ctx, tx,
					models.CreateNotificationAttributes{
						UserId:           document.UploadedBy,
						CaseId:           &c.Id,
						DocumentId:       &document.Id,
						Title:            "Document reviewed",
						Message:          fmt.Sprintf("Your document %s has been %s", document.FileName, status),
						NotificationType: models.NotificationDocumentReviewed,
						Priority:         models.PriorityMedium,
					})
				if err != nil {
					return models.Document{}, err
				}
			}

			return usecase.documentRepository.GetDocumentById(ctx, tx, documentId)
		})
}

// ShareDocumentWithJudge makes the document visible to the case's judge and
// notifies them. Sharing is one way, there is no unshare.
func (usecase *DocumentUseCase) ShareDocumentWithJudge(ctx context.Context, documentId string) (models.Document, error) {
	return executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Transaction) (models.Document, error) {
			document, err := usecase.documentRepository.GetDocumentById(ctx, tx, documentId)
			if err != nil {
				return models.Document{}, err
			}
			c, err := usecase.caseRepository.GetCaseById(ctx, tx, document.CaseId)
			if err != nil {
				return models.Document{}, err
			}
			if err := usecase.enforceSecurity.ShareDocument(c); err != nil {
				return models.Document{}, err
			}
			if c.JudgeId == nil {
				return models.Document{}, errors.Wrap(models.BadParameterError,
					"no judge is assigned to this case")
			}

			if err := usecase.documentRepository.ShareDocumentWithJudge(ctx, tx, documentId); err != nil {
				return models.Document{}, err
			}

			if !document.SharedWithJudge {
				_, err = usecase.notificationRepository.CreateNotification(ctx, tx,
					models.CreateNotificationAttributes{
						UserId:           *c.JudgeId,
						CaseId:           &c.Id,
						DocumentId:       &document.Id,
						Title:            "Document shared",
						Message:          fmt.Sprintf("Document %s on case %s has been shared with you", document.FileName, c.CaseNumber),
						NotificationType: models.NotificationDocumentShared,
						Priority:         models.PriorityMedium,
					})
				if err != nil {
					return models.Document{}, err
				}
			}

			return usecase.documentRepository.GetDocumentById(ctx, tx, documentId)
		})
}

type CreateDocumentRequestInput struct {
	CaseId        string
	RequestedFrom string
	DocumentType  string
	Message       string
}

func (usecase *DocumentUseCase) CreateDocumentRequest(ctx context.Context,
	input CreateDocumentRequestInput,
) (models.DocumentRequest, error) {
	return executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Transaction) (models.DocumentRequest, error) {
			c, err := usecase.caseRepository.GetCaseById(ctx, tx, input.CaseId)
			if err != nil {
				return models.DocumentRequest{}, err
			}
			if err := usecase.enforceSecurity.CreateDocumentRequest(c); err != nil {
				return models.DocumentRequest{}, err
			}
			if !c.IsParticipant(input.RequestedFrom) {
				return models.DocumentRequest{}, errors.Wrap(models.BadParameterError,
					"documents can only be requested from a participant of the case")
			}

			newRequestId, err := usecase.documentRequestRepository.CreateDocumentRequest(ctx, tx,
				models.CreateDocumentRequestAttributes{
					CaseId:        input.CaseId,
					RequestedFrom: input.RequestedFrom,
					RequestedBy:   usecase.credentials.ActorIdentity.UserId,
					DocumentType:  input.DocumentType,
					Message:       input.Message,
				})
			if err != nil {
				return models.DocumentRequest{}, err
			}

			_, err = usecase.notificationRepository.CreateNotification(ctx, tx,
				models.CreateNotificationAttributes{
					UserId:           input.RequestedFrom,
					CaseId:           &c.Id,
					Title:            "Document requested",
					Message:          fmt.Sprintf("A %s document is requested on case %s", input.DocumentType, c.CaseNumber),
					NotificationType: models.NotificationDocumentRequested,
					Priority:         models.PriorityHigh,
				})
			if err != nil {
				return models.DocumentRequest{}, err
			}

			return usecase.documentRequestRepository.GetDocumentRequestById(ctx, tx, newRequestId)
		})
}

func (usecase *DocumentUseCase) ListMyDocumentRequests(ctx context.Context) ([]models.DocumentRequest, error) {
	return usecase.documentRequestRepository.ListDocumentRequestsForUser(ctx,
		usecase.executorFactory.NewExecutor(),
		usecase.credentials.ActorIdentity.UserId)
}
