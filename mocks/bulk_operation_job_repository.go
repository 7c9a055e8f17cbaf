package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/themis-legal/themis-backend/models"
	"github.com/themis-legal/themis-backend/repositories"
)

type BulkOperationJobRepository struct {
	mock.Mock
}

func (r *BulkOperationJobRepository) CreateBulkOperationJob(ctx context.Context, exec repositories.Executor,
	attributes models.CreateBulkOperationJobAttributes,
) (string, error) {
	args := r.Called(ctx, exec, attributes)
	return args.String(0), args.Error(1)
}

func (r *BulkOperationJobRepository) GetBulkOperationJobById(ctx context.Context, exec repositories.Executor,
	jobId string,
) (models.BulkOperationJob, error) {
	args := r.Called(ctx, exec, jobId)
	return args.Get(0).(models.BulkOperationJob), args.Error(1)
}
