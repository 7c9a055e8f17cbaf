package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/themis-legal/themis-backend/models"
	"github.com/themis-legal/themis-backend/repositories"
)

type CaseTransferRepository struct {
	mock.Mock
}

func (r *CaseTransferRepository) CreateCaseTransfer(ctx context.Context, exec repositories.Executor,
	attributes models.CreateCaseTransferAttributes,
) (string, error) {
	args := r.Called(ctx, exec, attributes)
	return args.String(0), args.Error(1)
}

func (r *CaseTransferRepository) GetCaseTransferById(ctx context.Context, exec repositories.Executor,
	transferId string,
) (models.CaseTransfer, error) {
	args := r.Called(ctx, exec, transferId)
	return args.Get(0).(models.CaseTransfer), args.Error(1)
}

func (r *CaseTransferRepository) PendingTransferForCase(ctx context.Context, exec repositories.Executor,
	caseId string,
) (*models.CaseTransfer, error) {
	args := r.Called(ctx, exec, caseId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CaseTransfer), args.Error(1)
}

func (r *CaseTransferRepository) ListCaseTransfers(ctx context.Context, exec repositories.Executor,
	userId string, listing models.TransferListingType,
) ([]models.CaseTransfer, error) {
	args := r.Called(ctx, exec, userId, listing)
	return args.Get(0).([]models.CaseTransfer), args.Error(1)
}

func (r *CaseTransferRepository) ListPendingTransfersForUser(ctx context.Context, exec repositories.Executor,
	userId string,
) ([]models.CaseTransfer, error) {
	args := r.Called(ctx, exec, userId)
	return args.Get(0).([]models.CaseTransfer), args.Error(1)
}

func (r *CaseTransferRepository) TransferHistoryForCase(ctx context.Context, exec repositories.Executor,
	caseId string,
) ([]models.CaseTransfer, error) {
	args := r.Called(ctx, exec, caseId)
	return args.Get(0).([]models.CaseTransfer), args.Error(1)
}

func (r *CaseTransferRepository) UpdateCaseTransferStatus(ctx context.Context, exec repositories.Executor,
	transferId string, status models.CaseTransferStatus,
) error {
	args := r.Called(ctx, exec, transferId, status)
	return args.Error(0)
}

func (r *CaseTransferRepository) AppendCaseTransferNote(ctx context.Context, exec repositories.Executor,
	transferId, note string,
) error {
	args := r.Called(ctx, exec, transferId, note)
	return args.Error(0)
}
