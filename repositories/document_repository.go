package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/themis-legal/themis-backend/models"
	"github.com/themis-legal/themis-backend/repositories/dbmodels"
)

type DocumentRepository interface {
	CreateDocument(ctx context.Context, exec Executor, attributes models.CreateDocumentAttributes) (string, error)
	GetDocumentById(ctx context.Context, exec Executor, documentId string) (models.Document, error)
	ListDocumentsForCase(ctx context.Context, exec Executor, caseId string,
		sharedWithJudgeOnly bool) ([]models.Document, error)
	ReviewDocument(ctx context.Context, exec Executor, documentId string,
		status models.DocumentStatus, reviewNote *string) error
	ShareDocumentWithJudge(ctx context.Context, exec Executor, documentId string) error
}

func (repo *ThemisDbRepository) CreateDocument(
	ctx context.Context,
	exec Executor,
	attributes models.CreateDocumentAttributes,
) (string, error) {
	if err := validateExecutor(exec); err != nil {
		return "", err
	}

	newDocumentId := uuid.NewString()
	err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Insert(dbmodels.TABLE_DOCUMENTS).
			Columns(
				"id",
				"case_id",
				"file_name",
				"document_type",
				"bucket_key",
				"uploaded_by",
			).
			Values(
				newDocumentId,
				attributes.CaseId,
				attributes.FileName,
				attributes.DocumentType,
				attributes.BucketKey,
				attributes.UploadedBy,
			),
	)
	return newDocumentId, err
}

func (repo *ThemisDbRepository) GetDocumentById(
	ctx context.Context,
	exec Executor,
	documentId string,
) (models.Document, error) {
	if err := validateExecutor(exec); err != nil {
		return models.Document{}, err
	}

	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectDocumentColumn...).
			From(dbmodels.TABLE_DOCUMENTS).
			Where(squirrel.Eq{"id": documentId}),
		dbmodels.AdaptDocument,
	)
}

func (repo *ThemisDbRepository) ListDocumentsForCase(
	ctx context.Context,
	exec Executor,
	caseId string,
	sharedWithJudgeOnly bool,
) ([]models.Document, error) {
	if err := validateExecutor(exec); err != nil {
		return nil, err
	}

	query := NewQueryBuilder().
		Select(dbmodels.SelectDocumentColumn...).
		From(dbmodels.TABLE_DOCUMENTS).
		Where(squirrel.Eq{"case_id": caseId}).
		OrderBy("created_at DESC")
	if sharedWithJudgeOnly {
		query = query.Where(squirrel.Eq{"shared_with_judge": true})
	}

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptDocument)
}

func (repo *ThemisDbRepository) ReviewDocument(
	ctx context.Context,
	exec Executor,
	documentId string,
	status models.DocumentStatus,
	reviewNote *string,
) error {
	if err := validateExecutor(exec); err != nil {
		return err
	}

	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Update(dbmodels.TABLE_DOCUMENTS).
			Set("status", status).
			Set("review_note", reviewNote).
			Set("reviewed_at", squirrel.Expr("NOW()")).
			Where(squirrel.Eq{"id": documentId}),
	)
}

func (repo *ThemisDbRepository) ShareDocumentWithJudge(
	ctx context.Context,
	exec Executor,
	documentId string,
) error {
	if err := validateExecutor(exec); err != nil {
		return err
	}

	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Update(dbmodels.TABLE_DOCUMENTS).
			Set("shared_with_judge", true).
			Where(squirrel.Eq{"id": documentId}),
	)
}
