package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/themis-legal/themis-backend/models"
	"github.com/themis-legal/themis-backend/repositories/dbmodels"
)

type CaseTransferRepository interface {
	CreateCaseTransfer(ctx context.Context, exec Executor,
		attributes models.CreateCaseTransferAttributes) (string, error)
	GetCaseTransferById(ctx context.Context, exec Executor, transferId string) (models.CaseTransfer, error)
	PendingTransferForCase(ctx context.Context, exec Executor, caseId string) (*models.CaseTransfer, error)
	ListCaseTransfers(ctx context.Context, exec Executor, userId string,
		listing models.TransferListingType) ([]models.CaseTransfer, error)
	ListPendingTransfersForUser(ctx context.Context, exec Executor, userId string) ([]models.CaseTransfer, error)
	TransferHistoryForCase(ctx context.Context, exec Executor, caseId string) ([]models.CaseTransfer, error)
	UpdateCaseTransferStatus(ctx context.Context, exec Executor, transferId string,
		status models.CaseTransferStatus) error
	AppendCaseTransferNote(ctx context.Context, exec Executor, transferId, note string) error
}

func (repo *ThemisDbRepository) CreateCaseTransfer(
	ctx context.Context,
	exec Executor,
	attributes models.CreateCaseTransferAttributes,
) (string, error) {
	if err := validateExecutor(exec); err != nil {
		return "", err
	}

	newTransferId := uuid.NewString()
	err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Insert(dbmodels.TABLE_CASE_TRANSFERS).
			Columns(
				"id",
				"case_id",
				"from_user_id",
				"to_user_id",
				"reason",
				"notes",
			).
			Values(
				newTransferId,
				attributes.CaseId,
				attributes.FromUserId,
				attributes.ToUserId,
				attributes.Reason,
				attributes.Notes,
			),
	)
	return newTransferId, err
}

func (repo *ThemisDbRepository) GetCaseTransferById(
	ctx context.Context,
	exec Executor,
	transferId string,
) (models.CaseTransfer, error) {
	if err := validateExecutor(exec); err != nil {
		return models.CaseTransfer{}, err
	}

	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectCaseTransferColumn...).
			From(dbmodels.TABLE_CASE_TRANSFERS).
			Where(squirrel.Eq{"id": transferId}),
		dbmodels.AdaptCaseTransfer,
	)
}

func (repo *ThemisDbRepository) PendingTransferForCase(
	ctx context.Context,
	exec Executor,
	caseId string,
) (*models.CaseTransfer, error) {
	if err := validateExecutor(exec); err != nil {
		return nil, err
	}

	return SqlToOptionalModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectCaseTransferColumn...).
			From(dbmodels.TABLE_CASE_TRANSFERS).
			Where(squirrel.Eq{
				"case_id": caseId,
				"status":  models.TransferPending,
			}),
		dbmodels.AdaptCaseTransfer,
	)
}

func (repo *ThemisDbRepository) ListCaseTransfers(
	ctx context.Context,
	exec Executor,
	userId string,
	listing models.TransferListingType,
) ([]models.CaseTransfer, error) {
	if err := validateExecutor(exec); err != nil {
		return nil, err
	}

	query := NewQueryBuilder().
		Select(dbmodels.SelectCaseTransferColumn...).
		From(dbmodels.TABLE_CASE_TRANSFERS).
		OrderBy("requested_at DESC")
	switch listing {
	case models.TransferListingSent:
		query = query.Where(squirrel.Eq{"from_user_id": userId})
	case models.TransferListingReceived:
		query = query.Where(squirrel.Eq{"to_user_id": userId})
	default:
		query = query.Where(squirrel.Or{
			squirrel.Eq{"from_user_id": userId},
			squirrel.Eq{"to_user_id": userId},
		})
	}

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptCaseTransfer)
}

func (repo *ThemisDbRepository) ListPendingTransfersForUser(
	ctx context.Context,
	exec Executor,
	userId string,
) ([]models.CaseTransfer, error) {
	if err := validateExecutor(exec); err != nil {
		return nil, err
	}

	return SqlToListOfModels(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectCaseTransferColumn...).
			From(dbmodels.TABLE_CASE_TRANSFERS).
			Where(squirrel.Eq{
				"to_user_id": userId,
				"status":     models.TransferPending,
			}).
			OrderBy("requested_at DESC"),
		dbmodels.AdaptCaseTransfer,
	)
}

func (repo *ThemisDbRepository) TransferHistoryForCase(
	ctx context.Context,
	exec Executor,
	caseId string,
) ([]models.CaseTransfer, error) {
	if err := validateExecutor(exec); err != nil {
		return nil, err
	}

	return SqlToListOfModels(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectCaseTransferColumn...).
			From(dbmodels.TABLE_CASE_TRANSFERS).
			Where(squirrel.Eq{"case_id": caseId}).
			OrderBy("requested_at DESC"),
		dbmodels.AdaptCaseTransfer,
	)
}

func (repo *ThemisDbRepository) UpdateCaseTransferStatus(
	ctx context.Context,
	exec Executor,
	transferId string,
	status models.CaseTransferStatus,
) error {
	if err := validateExecutor(exec); err != nil {
		return err
	}

	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Update(dbmodels.TABLE_CASE_TRANSFERS).
			Set("status", status).
			Set("resolved_at", squirrel.Expr("NOW()")).
			Where(squirrel.Eq{"id": transferId}),
	)
}

func (repo *ThemisDbRepository) AppendCaseTransferNote(
	ctx context.Context,
	exec Executor,
	transferId, note string,
) error {
	if err := validateExecutor(exec); err != nil {
		return err
	}

	// CONCAT_WS skips a NULL notes column, so the first note needs no separator.
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Update(dbmodels.TABLE_CASE_TRANSFERS).
			Set("notes", squirrel.Expr("CONCAT_WS(E'\\n', notes, ?)", note)).
			Where(squirrel.Eq{"id": transferId}),
	)
}
