package usecases

import (
	"context"

	"github.com/themis-legal/themis-backend/models"
	"github.com/themis-legal/themis-backend/repositories"
	"github.com/themis-legal/themis-backend/usecases/executor_factory"
	"github.com/themis-legal/themis-backend/usecases/security"
)

type AnalyticsUseCase struct {
	enforceSecurity     security.EnforceSecurityAnalytics
	executorFactory     executor_factory.ExecutorFactory
	analyticsRepository repositories.AnalyticsRepository
	credentials         models.Credentials
}

// DashboardStats aggregates the counters shown on the landing dashboard. The
// counters are scoped to the current user, except for admins who see the
// whole platform.
func (usecase *AnalyticsUseCase) DashboardStats(ctx context.Context) (models.DashboardStats, error) {
	if err := usecase.enforceSecurity.ReadAnalytics(); err != nil {
		return models.DashboardStats{}, err
	}

	exec := usecase.executorFactory.NewExecutor()
	userId := usecase.credentials.ActorIdentity.UserId

	participantId := userId
	if usecase.credentials.Role == models.ADMIN {
		participantId = ""
	}

	casesByStatus, err := usecase.analyticsRepository.CountCasesByStatus(ctx, exec, participantId)
	if err != nil {
		return models.DashboardStats{}, err
	}
	pendingTransfers, err := usecase.analyticsRepository.CountPendingTransfersForUser(ctx, exec, userId)
	if err != nil {
		return models.DashboardStats{}, err
	}
	pendingDocuments, err := usecase.analyticsRepository.CountPendingDocumentsForUser(ctx, exec, userId)
	if err != nil {
		return models.DashboardStats{}, err
	}
	unreadNotifications, err := usecase.analyticsRepository.CountUnreadNotifications(ctx, exec, userId)
	if err != nil {
		return models.DashboardStats{}, err
	}

	return models.DashboardStats{
		CasesByStatus:       casesByStatus,
		PendingTransfers:    pendingTransfers,
		PendingDocuments:    pendingDocuments,
		UnreadNotifications: unreadNotifications,
	}, nil
}
