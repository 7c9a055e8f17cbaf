package usecases

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/themis-legal/themis-backend/models"
	"github.com/themis-legal/themis-backend/repositories"
	"github.com/themis-legal/themis-backend/usecases/executor_factory"
	"github.com/themis-legal/themis-backend/usecases/security"
)

type CaseUseCase struct {
	enforceSecurity        security.EnforceSecurityCase
	executorFactory        executor_factory.ExecutorFactory
	transactionFactory     executor_factory.TransactionFactory
	caseRepository         repositories.CaseRepository
	userRepository         repositories.UserRepository
	notificationRepository repositories.NotificationRepository
	credentials            models.Credentials
}

func (usecase *CaseUseCase) CreateCase(ctx context.Context, attributes models.CreateCaseAttributes) (models.Case, error) {
	if err := usecase.enforceSecurity.CreateCase(); err != nil {
		return models.Case{}, err
	}

	// court-assigned numbers can be passed in, otherwise one is generated
	if attributes.CaseNumber == "" {
		attributes.CaseNumber = generateCaseNumber()
	}

	return executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Transaction) (models.Case, error) {
			lawyer, err := usecase.userRepository.UserById(ctx, tx, attributes.LawyerId)
			if err != nil {
				return models.Case{}, err
			}
			if lawyer.Role != models.LAWYER {
				return models.Case{}, errors.Wrap(models.BadParameterError,
					"assigned lawyer does not have the LAWYER role")
			}

			client, err := usecase.userRepository.UserById(ctx, tx, attributes.ClientId)
			if err != nil {
				return models.Case{}, err
			}
			if client.Role != models.CLIENT {
				return models.Case{}, errors.Wrap(models.BadParameterError,
					"assigned client does not have the CLIENT role")
			}

			if attributes.JudgeId != nil {
				judge, err := usecase.userRepository.UserById(ctx, tx, *attributes.JudgeId)
				if err != nil {
					return models.Case{}, err
				}
				if judge.Role != models.JUDGE {
					return models.Case{}, errors.Wrap(models.BadParameterError,
						"assigned judge does not have the JUDGE role")
				}
			}

			newCaseId, err := usecase.caseRepository.CreateCase(ctx, tx, attributes)
			if err != nil {
				if repositories.IsUniqueViolationError(err) {
					return models.Case{}, errors.Wrap(models.ConflictError,
						"a case with this case number already exists")
				}
				return models.Case{}, err
			}
			return usecase.caseRepository.GetCaseById(ctx, tx, newCaseId)
		})
}

func (usecase *CaseUseCase) GetCase(ctx context.Context, caseId string) (models.Case, error) {
	c, err := usecase.caseRepository.GetCaseById(ctx, usecase.executorFactory.NewExecutor(), caseId)
	if err != nil {
		return models.Case{}, err
	}
	if err := usecase.enforceSecurity.ReadCase(c); err != nil {
		return models.Case{}, err
	}
	return c, nil
}

// ListCases scopes the listing by role: judges and admins see every case,
// everyone else only the cases they participate in.
func (usecase *CaseUseCase) ListCases(ctx context.Context, statuses []models.CaseStatus) ([]models.Case, error) {
	filters := models.CaseFilters{Statuses: statuses}
	switch usecase.credentials.Role {
	case models.JUDGE, models.ADMIN:
	default:
		filters.ParticipantId = usecase.credentials.ActorIdentity.UserId
	}

	cases, err := usecase.caseRepository.ListCases(ctx, usecase.executorFactory.NewExecutor(), filters)
	if err != nil {
		return nil, err
	}
	for _, c := range cases {
		if err := usecase.enforceSecurity.ReadCase(c); err != nil {
			return nil, err
		}
	}
	return cases, nil
}

func (usecase *CaseUseCase) UpdateCaseStatus(ctx context.Context, caseId string, status models.CaseStatus) (models.Case, error) {
	return executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Transaction) (models.Case, error) {
			c, err := usecase.caseRepository.GetCaseById(ctx, tx, caseId)
			if err != nil {
				return models.Case{}, err
			}
			if err := usecase.enforceSecurity.UpdateCaseStatus(c); err != nil {
				return models.Case{}, err
			}
			if c.Status == status {
				return c, nil
			}

			if err := usecase.caseRepository.UpdateCaseStatus(ctx, tx, caseId, status); err != nil {
				return models.Case{}, err
			}

			if err := usecase.notifyCaseStatusChanged(ctx, tx, c, status); err != nil {
				return models.Case{}, err
			}
			return usecase.caseRepository.GetCaseById(ctx, tx, caseId)
		})
}

func (usecase *CaseUseCase) notifyCaseStatusChanged(
	ctx context.Context,
	tx repositories.Transaction,
	c models.Case,
	newStatus models.CaseStatus,
) error {
	actorId := usecase.credentials.ActorIdentity.UserId
	for _, userId := range caseParticipants(c) {
		if userId == actorId {
			continue
		}
		_, err := usecase.notificationRepository.CreateNotification(ctx, tx,
			models.CreateNotificationAttributes{
				UserId:           userId,
				CaseId:           &c.Id,
				Title:            "Case status updated",
				Message:          fmt.Sprintf("Case %s moved to status %s", c.CaseNumber, newStatus),
				NotificationType: models.NotificationCaseStatusChanged,
				Priority:         models.PriorityMedium,
			})
		if err != nil {
			return err
		}
	}
	return nil
}

func generateCaseNumber() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("CASE-%d-%s", time.Now().Year(), suffix)
}

func caseParticipants(c models.Case) []string {
	participants := []string{c.LawyerId, c.ClientId}
	if c.JudgeId != nil {
		participants = append(participants, *c.JudgeId)
	}
	return participants
}
