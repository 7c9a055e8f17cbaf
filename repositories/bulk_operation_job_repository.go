package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/themis-legal/themis-backend/models"
	"github.com/themis-legal/themis-backend/repositories/dbmodels"
)

type BulkOperationJobRepository interface {
	CreateBulkOperationJob(ctx context.Context, exec Executor,
		attributes models.CreateBulkOperationJobAttributes) (string, error)
	GetBulkOperationJobById(ctx context.Context, exec Executor,
		jobId string) (models.BulkOperationJob, error)
}

func (repo *ThemisDbRepository) CreateBulkOperationJob(
	ctx context.Context,
	exec Executor,
	attributes models.CreateBulkOperationJobAttributes,
) (string, error) {
	if err := validateExecutor(exec); err != nil {
		return "", err
	}

	serializedResults, err := dbmodels.SerializeBulkResults(attributes.Result)
	if err != nil {
		return "", err
	}

	summary := attributes.Result.Summary()
	newJobId := uuid.NewString()
	err = ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Insert(dbmodels.TABLE_BULK_OPERATION_JOBS).
			Columns(
				"id",
				"initiated_by",
				"operation_kind",
				"total",
				"successful",
				"failed",
				"results",
			).
			Values(
				newJobId,
				attributes.InitiatedBy,
				attributes.OperationKind,
				summary.Total,
				summary.Successful,
				summary.Failed,
				serializedResults,
			),
	)
	return newJobId, err
}

func (repo *ThemisDbRepository) GetBulkOperationJobById(
	ctx context.Context,
	exec Executor,
	jobId string,
) (models.BulkOperationJob, error) {
	if err := validateExecutor(exec); err != nil {
		return models.BulkOperationJob{}, err
	}

	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectBulkOperationJobColumn...).
			From(dbmodels.TABLE_BULK_OPERATION_JOBS).
			Where(squirrel.Eq{"id": jobId}),
		dbmodels.AdaptBulkOperationJob,
	)
}
