package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/themis-legal/themis-backend/models"
	"github.com/themis-legal/themis-backend/repositories/dbmodels"
)

type AnalyticsRepository interface {
	CountCasesByStatus(ctx context.Context, exec Executor,
		participantId string) (map[models.CaseStatus]int, error)
	CountPendingTransfersForUser(ctx context.Context, exec Executor, userId string) (int, error)
	CountPendingDocumentsForUser(ctx context.Context, exec Executor, userId string) (int, error)
	CountUnreadNotifications(ctx context.Context, exec Executor, userId string) (int, error)
}

type dbCaseStatusCount struct {
	Status string `db:"status"`
	Count  int    `db:"count"`
}

func adaptCaseStatusCount(db dbCaseStatusCount) (dbCaseStatusCount, error) {
	return db, nil
}

// CountCasesByStatus returns counts for every status the user's cases are in.
// An empty participantId removes the participant filter, for admin dashboards.
func (repo *ThemisDbRepository) CountCasesByStatus(
	ctx context.Context,
	exec Executor,
	participantId string,
) (map[models.CaseStatus]int, error) {
	if err := validateExecutor(exec); err != nil {
		return nil, err
	}

	query := NewQueryBuilder().
		Select("status", "COUNT(*) AS count").
		From(dbmodels.TABLE_CASES).
		GroupBy("status")
	if participantId != "" {
		query = query.Where(squirrel.Or{
			squirrel.Eq{"lawyer_id": participantId},
			squirrel.Eq{"client_id": participantId},
			squirrel.Eq{"judge_id": participantId},
		})
	}

	counts, err := SqlToListOfModels(ctx, exec, query, adaptCaseStatusCount)
	if err != nil {
		return nil, err
	}

	casesByStatus := make(map[models.CaseStatus]int, len(counts))
	for _, count := range counts {
		casesByStatus[models.CaseStatusFrom(count.Status)] = count.Count
	}
	return casesByStatus, nil
}

func (repo *ThemisDbRepository) CountPendingTransfersForUser(
	ctx context.Context,
	exec Executor,
	userId string,
) (int, error) {
	if err := validateExecutor(exec); err != nil {
		return 0, err
	}

	return CountFromQuery(
		ctx,
		exec,
		NewQueryBuilder().
			Select("COUNT(*)").
			From(dbmodels.TABLE_CASE_TRANSFERS).
			Where(squirrel.Eq{"status": models.TransferPending}).
			Where(squirrel.Or{
				squirrel.Eq{"from_user_id": userId},
				squirrel.Eq{"to_user_id": userId},
			}),
	)
}

// CountPendingDocumentsForUser counts pending documents on cases where the
// user is the lawyer of record, since lawyers are the reviewers.
func (repo *ThemisDbRepository) CountPendingDocumentsForUser(
	ctx context.Context,
	exec Executor,
	userId string,
) (int, error) {
	if err := validateExecutor(exec); err != nil {
		return 0, err
	}

	return CountFromQuery(
		ctx,
		exec,
		NewQueryBuilder().
			Select("COUNT(*)").
			From(dbmodels.TABLE_DOCUMENTS+" AS d").
			Join(dbmodels.TABLE_CASES+" AS c ON c.id = d.case_id").
			Where(squirrel.Eq{
				"d.status":    models.DocumentPending,
				"c.lawyer_id": userId,
			}),
	)
}
