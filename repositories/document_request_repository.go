package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/themis-legal/themis-backend/models"
	"github.com/themis-legal/themis-backend/repositories/dbmodels"
)

type DocumentRequestRepository interface {
	CreateDocumentRequest(ctx context.Context, exec Executor,
		attributes models.CreateDocumentRequestAttributes) (string, error)
	GetDocumentRequestById(ctx context.Context, exec Executor,
		requestId string) (models.DocumentRequest, error)
	ListDocumentRequestsForUser(ctx context.Context, exec Executor,
		userId string) ([]models.DocumentRequest, error)
	FulfillDocumentRequest(ctx context.Context, exec Executor, requestId string) error
}

func (repo *ThemisDbRepository) CreateDocumentRequest(
	ctx context.Context,
	exec Executor,
	attributes models.CreateDocumentRequestAttributes,
) (string, error) {
	if err := validateExecutor(exec); err != nil {
		return "", err
	}

	newRequestId := uuid.NewString()
	err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Insert(dbmodels.TABLE_DOCUMENT_REQUESTS).
			Columns(
				"id",
				"case_id",
				"requested_from",
				"requested_by",
				"document_type",
				"message",
			).
			Values(
				newRequestId,
				attributes.CaseId,
				attributes.RequestedFrom,
				attributes.RequestedBy,
				attributes.DocumentType,
				attributes.Message,
			),
	)
	return newRequestId, err
}

func (repo *ThemisDbRepository) GetDocumentRequestById(
	ctx context.Context,
	exec Executor,
	requestId string,
) (models.DocumentRequest, error) {
	if err := validateExecutor(exec); err != nil {
		return models.DocumentRequest{}, err
	}

	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectDocumentRequestColumn...).
			From(dbmodels.TABLE_DOCUMENT_REQUESTS).
			Where(squirrel.Eq{"id": requestId}),
		dbmodels.AdaptDocumentRequest,
	)
}

func (repo *ThemisDbRepository) ListDocumentRequestsForUser(
	ctx context.Context,
	exec Executor,
	userId string,
) ([]models.DocumentRequest, error) {
	if err := validateExecutor(exec); err != nil {
		return nil, err
	}

	return SqlToListOfModels(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectDocumentRequestColumn...).
			From(dbmodels.TABLE_DOCUMENT_REQUESTS).
			Where(squirrel.Eq{
				"requested_from": userId,
				"status":         models.DocumentRequestOpen,
			}).
			OrderBy("created_at DESC"),
		dbmodels.AdaptDocumentRequest,
	)
}

func (repo *ThemisDbRepository) FulfillDocumentRequest(
	ctx context.Context,
	exec Executor,
	requestId string,
) error {
	if err := validateExecutor(exec); err != nil {
		return err
	}

	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Update(dbmodels.TABLE_DOCUMENT_REQUESTS).
			Set("status", models.DocumentRequestFulfilled).
			Where(squirrel.Eq{"id": requestId}),
	)
}
