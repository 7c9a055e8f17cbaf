package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/themis-legal/themis-backend/models"
	"github.com/themis-legal/themis-backend/repositories"
)

type CaseRepository struct {
	mock.Mock
}

func (r *CaseRepository) CreateCase(ctx context.Context, exec repositories.Executor,
	attributes models.CreateCaseAttributes,
) (string, error) {
	args := r.Called(ctx, exec, attributes)
	return args.String(0), args.Error(1)
}

func (r *CaseRepository) GetCaseById(ctx context.Context, exec repositories.Executor,
	caseId string,
) (models.Case, error) {
	args := r.Called(ctx, exec, caseId)
	return args.Get(0).(models.Case), args.Error(1)
}

func (r *CaseRepository) ListCases(ctx context.Context, exec repositories.Executor,
	filters models.CaseFilters,
) ([]models.Case, error) {
	args := r.Called(ctx, exec, filters)
	return args.Get(0).([]models.Case), args.Error(1)
}

func (r *CaseRepository) UpdateCaseStatus(ctx context.Context, exec repositories.Executor,
	caseId string, status models.CaseStatus,
) error {
	args := r.Called(ctx, exec, caseId, status)
	return args.Error(0)
}

func (r *CaseRepository) UpdateCaseLawyer(ctx context.Context, exec repositories.Executor,
	caseId string, lawyerId string,
) error {
	args := r.Called(ctx, exec, caseId, lawyerId)
	return args.Error(0)
}

func (r *CaseRepository) AssignJudge(ctx context.Context, exec repositories.Executor,
	caseId string, judgeId string,
) error {
	args := r.Called(ctx, exec, caseId, judgeId)
	return args.Error(0)
}
