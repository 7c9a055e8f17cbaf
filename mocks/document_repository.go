package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/themis-legal/themis-backend/models"
	"github.com/themis-legal/themis-backend/repositories"
)

type DocumentRepository struct {
	mock.Mock
}

func (r *DocumentRepository) CreateDocument(ctx context.Context, exec repositories.Executor,
	attributes models.CreateDocumentAttributes,
) (string, error) {
	args := r.Called(ctx, exec, attributes)
	return args.String(0), args.Error(1)
}

func (r *DocumentRepository) GetDocumentById(ctx context.Context, exec repositories.Executor,
	documentId string,
) (models.Document, error) {
	args := r.Called(ctx, exec, documentId)
	return args.Get(0).(models.Document), args.Error(1)
}

func (r *DocumentRepository) ListDocumentsForCase(ctx context.Context, exec repositories.Executor,
	caseId string, sharedWithJudgeOnly bool,
) ([]models.Document, error) {
	args := r.Called(ctx, exec, caseId, sharedWithJudgeOnly)
	return args.Get(0).([]models.Document), args.Error(1)
}

func (r *DocumentRepository) ReviewDocument(ctx context.Context, exec repositories.Executor,
	documentId string, status models.DocumentStatus, reviewNote *string,
) error {
	args := r.Called(ctx, exec, documentId, status, reviewNote)
	return args.Error(0)
}

func (r *DocumentRepository) ShareDocumentWithJudge(ctx context.Context, exec repositories.Executor,
	documentId string,
) error {
	args := r.Called(ctx, exec, documentId)
	return args.Error(0)
}
