package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/themis-legal/themis-backend/models"
	"github.com/themis-legal/themis-backend/repositories/dbmodels"
)

type CaseRepository interface {
	CreateCase(ctx context.Context, exec Executor, attributes models.CreateCaseAttributes) (string, error)
	GetCaseById(ctx context.Context, exec Executor, caseId string) (models.Case, error)
	ListCases(ctx context.Context, exec Executor, filters models.CaseFilters) ([]models.Case, error)
	UpdateCaseStatus(ctx context.Context, exec Executor, caseId string, status models.CaseStatus) error
	UpdateCaseLawyer(ctx context.Context, exec Executor, caseId string, lawyerId string) error
	AssignJudge(ctx context.Context, exec Executor, caseId string, judgeId string) error
}

func (repo *ThemisDbRepository) CreateCase(
	ctx context.Context,
	exec Executor,
	attributes models.CreateCaseAttributes,
) (string, error) {
	if err := validateExecutor(exec); err != nil {
		return "", err
	}

	newCaseId := uuid.NewString()
	err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Insert(dbmodels.TABLE_CASES).
			Columns(
				"id",
				"case_number",
				"title",
				"description",
				"lawyer_id",
				"client_id",
				"judge_id",
			).
			Values(
				newCaseId,
				attributes.CaseNumber,
				attributes.Title,
				attributes.Description,
				attributes.LawyerId,
				attributes.ClientId,
				attributes.JudgeId,
			),
	)
	return newCaseId, err
}

func (repo *ThemisDbRepository) GetCaseById(ctx context.Context, exec Executor, caseId string) (models.Case, error) {
	if err := validateExecutor(exec); err != nil {
		return models.Case{}, err
	}

	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectCaseColumn...).
			From(dbmodels.TABLE_CASES).
			Where(squirrel.Eq{"id": caseId}),
		dbmodels.AdaptCase,
	)
}

func (repo *ThemisDbRepository) ListCases(
	ctx context.Context,
	exec Executor,
	filters models.CaseFilters,
) ([]models.Case, error) {
	if err := validateExecutor(exec); err != nil {
		return nil, err
	}

	query := NewQueryBuilder().
		Select(dbmodels.SelectCaseColumn...).
		From(dbmodels.TABLE_CASES).
		OrderBy("created_at DESC")
	if len(filters.Statuses) > 0 {
		query = query.Where(squirrel.Eq{"status": filters.Statuses})
	}
	if filters.ParticipantId != "" {
		query = query.Where(squirrel.Or{
			squirrel.Eq{"lawyer_id": filters.ParticipantId},
			squirrel.Eq{"client_id": filters.ParticipantId},
			squirrel.Eq{"judge_id": filters.ParticipantId},
		})
	}

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptCase)
}

func (repo *ThemisDbRepository) UpdateCaseStatus(
	ctx context.Context,
	exec Executor,
	caseId string,
	status models.CaseStatus,
) error {
	if err := validateExecutor(exec); err != nil {
		return err
	}

	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Update(dbmodels.TABLE_CASES).
			Set("status", status).
			Set("updated_at", squirrel.Expr("NOW()")).
			Where(squirrel.Eq{"id": caseId}),
	)
}

func (repo *ThemisDbRepository) UpdateCaseLawyer(
	ctx context.Context,
	exec Executor,
	caseId string,
	lawyerId string,
) error {
	if err := validateExecutor(exec); err != nil {
		return err
	}

	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Update(dbmodels.TABLE_CASES).
			Set("lawyer_id", lawyerId).
			Set("updated_at", squirrel.Expr("NOW()")).
			Where(squirrel.Eq{"id": caseId}),
	)
}

func (repo *ThemisDbRepository) AssignJudge(
	ctx context.Context,
	exec Executor,
	caseId string,
	judgeId string,
) error {
	if err := validateExecutor(exec); err != nil {
		return err
	}

	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Update(dbmodels.TABLE_CASES).
			Set("judge_id", judgeId).
			Set("updated_at", squirrel.Expr("NOW()")).
			Where(squirrel.Eq{"id": caseId}),
	)
}
