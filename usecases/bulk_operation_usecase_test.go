package usecases

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/themis-legal/themis-backend/mocks"
	"github.com/themis-legal/themis-backend/models"
)

func TestRunBatchAggregatesPartialFailures(t *testing.T) {
	items := []string{"first", "second", "third", "fourth"}
	failing := map[string]bool{"second": true, "fourth": true}

	result := runBatch(items,
		func(item string) string { return item },
		func(item string) error {
			if failing[item] {
				return errors.New("item exploded")
			}
			return nil
		})

	summary := result.Summary()
	assert.Equal(t, 4, summary.Total)
	assert.Equal(t, 2, summary.Successful)
	assert.Equal(t, 2, summary.Failed)

	// input order is preserved within each partition
	require.Len(t, result.Successes, 2)
	assert.Equal(t, "first", result.Successes[0].ItemId)
	assert.Equal(t, "third", result.Successes[1].ItemId)

	require.Len(t, result.Failures, 2)
	assert.Equal(t, "second", result.Failures[0].ItemId)
	assert.Equal(t, "fourth", result.Failures[1].ItemId)
	assert.Equal(t, "item exploded", result.Failures[0].Error)
}

func TestRunBatchAllSucceed(t *testing.T) {
	result := runBatch([]string{"a", "b"},
		func(item string) string { return item },
		func(item string) error { return nil })

	summary := result.Summary()
	assert.Equal(t, 2, summary.Total)
	assert.Equal(t, 2, summary.Successful)
	assert.Equal(t, 0, summary.Failed)
	assert.Empty(t, result.Failures)
}

func TestBulkOperationsRejectEmptyBatches(t *testing.T) {
	enforceSecurity := new(mocks.EnforceSecurity)
	enforceSecurity.On("ExecuteBulkOperation").Return(nil)

	usecase := BulkOperationUseCase{enforceSecurity: enforceSecurity}
	ctx := context.Background()

	_, err := usecase.BulkReviewDocuments(ctx, nil, models.DocumentApproved, nil)
	assert.ErrorIs(t, err, models.ErrEmptyBatch)

	_, err = usecase.BulkShareDocuments(ctx, nil)
	assert.ErrorIs(t, err, models.ErrEmptyBatch)

	_, err = usecase.BulkUploadDocuments(ctx, "case-id", nil)
	assert.ErrorIs(t, err, models.ErrEmptyBatch)

	_, err = usecase.BulkCreateDocumentRequests(ctx, nil)
	assert.ErrorIs(t, err, models.ErrEmptyBatch)

	_, err = usecase.BulkUpdateCasesStatus(ctx, nil, models.CaseClosed)
	assert.ErrorIs(t, err, models.ErrEmptyBatch)
}

func TestGetJobEnforcesReadSecurity(t *testing.T) {
	jobId := "6f2b6f92-5c11-4e4f-9a4d-0d52f4a5b0f3"
	job := models.BulkOperationJob{
		Id:          jobId,
		InitiatedBy: "0c01a1d5-2a5d-4b6f-a1ba-0d21fb2d0c5e",
	}

	executor := new(mocks.Executor)
	executorFactory := new(mocks.ExecutorFactory)
	executorFactory.On("NewExecutor").Return(executor)

	jobRepository := new(mocks.BulkOperationJobRepository)
	jobRepository.On("GetBulkOperationJobById", context.Background(), executor, jobId).
		Return(job, nil)

	enforceSecurity := new(mocks.EnforceSecurity)
	enforceSecurity.On("ReadBulkOperationJob", job).
		Return(errors.Wrap(models.ForbiddenError, "job belongs to another user"))

	usecase := BulkOperationUseCase{
		enforceSecurity: enforceSecurity,
		executorFactory: executorFactory,
		jobRepository:   jobRepository,
	}

	_, err := usecase.GetJob(context.Background(), jobId)
	assert.ErrorIs(t, err, models.ForbiddenError)
	enforceSecurity.AssertExpectations(t)
}
