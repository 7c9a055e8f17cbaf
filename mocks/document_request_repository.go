package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/themis-legal/themis-backend/models"
	"github.com/themis-legal/themis-backend/repositories"
)

type DocumentRequestRepository struct {
	mock.Mock
}

func (r *DocumentRequestRepository) CreateDocumentRequest(ctx context.Context, exec repositories.Executor,
	attributes models.CreateDocumentRequestAttributes,
) (string, error) {
	args := r.Called(ctx, exec, attributes)
	return args.String(0), args.Error(1)
}

func (r *DocumentRequestRepository) GetDocumentRequestById(ctx context.Context, exec repositories.Executor,
	requestId string,
) (models.DocumentRequest, error) {
	args := r.Called(ctx, exec, requestId)
	return args.Get(0).(models.DocumentRequest), args.Error(1)
}

func (r *DocumentRequestRepository) ListDocumentRequestsForUser(ctx context.Context, exec repositories.Executor,
	userId string,
) ([]models.DocumentRequest, error) {
	args := r.Called(ctx, exec, userId)
	return args.Get(0).([]models.DocumentRequest), args.Error(1)
}

func (r *DocumentRequestRepository) FulfillDocumentRequest(ctx context.Context, exec repositories.Executor,
	requestId string,
) error {
	args := r.Called(ctx, exec, requestId)
	return args.Error(0)
}
