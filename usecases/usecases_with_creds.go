package usecases

import (
	"github.com/themis-legal/themis-backend/models"
	"github.com/themis-legal/themis-backend/usecases/security"
)

type UsecasesWithCreds struct {
	Usecases
	Credentials models.Credentials
}

func (usecases *UsecasesWithCreds) NewEnforceSecurity() security.EnforceSecurity {
	return &security.EnforceSecurityImpl{
		Credentials: usecases.Credentials,
	}
}

func (usecases *UsecasesWithCreds) NewEnforceCaseSecurity() security.EnforceSecurityCase {
	return &security.EnforceSecurityCaseImpl{
		EnforceSecurity: usecases.NewEnforceSecurity(),
		Credentials:     usecases.Credentials,
	}
}

func (usecases *UsecasesWithCreds) NewEnforceCaseTransferSecurity() security.EnforceSecurityCaseTransfer {
	return &security.EnforceSecurityCaseTransferImpl{
		EnforceSecurity: usecases.NewEnforceSecurity(),
		Credentials:     usecases.Credentials,
	}
}

func (usecases *UsecasesWithCreds) NewEnforceDocumentSecurity() security.EnforceSecurityDocument {
	return &security.EnforceSecurityDocumentImpl{
		EnforceSecurity: usecases.NewEnforceSecurity(),
		Credentials:     usecases.Credentials,
	}
}

func (usecases *UsecasesWithCreds) NewEnforceNotificationSecurity() security.EnforceSecurityNotification {
	return &security.EnforceSecurityNotificationImpl{
		EnforceSecurity: usecases.NewEnforceSecurity(),
		Credentials:     usecases.Credentials,
	}
}

func (usecases *UsecasesWithCreds) NewEnforceBulkOperationSecurity() security.EnforceSecurityBulkOperation {
	return &security.EnforceSecurityBulkOperationImpl{
		EnforceSecurity: usecases.NewEnforceSecurity(),
		Credentials:     usecases.Credentials,
	}
}

func (usecases *UsecasesWithCreds) NewEnforceUserSecurity() security.EnforceSecurityUser {
	return &security.EnforceSecurityUserImpl{
		EnforceSecurity: usecases.NewEnforceSecurity(),
		Credentials:     usecases.Credentials,
	}
}

func (usecases *UsecasesWithCreds) NewEnforceAnalyticsSecurity() security.EnforceSecurityAnalytics {
	return &security.EnforceSecurityAnalyticsImpl{
		EnforceSecurity: usecases.NewEnforceSecurity(),
		Credentials:     usecases.Credentials,
	}
}

func (usecases *UsecasesWithCreds) NewEnforceAssistantSecurity() security.EnforceSecurityAssistant {
	return &security.EnforceSecurityAssistantImpl{
		EnforceSecurity: usecases.NewEnforceSecurity(),
		Credentials:     usecases.Credentials,
	}
}

func (usecases *UsecasesWithCreds) NewUserUseCase() UserUseCase {
	return UserUseCase{
		enforceSecurity:    usecases.NewEnforceUserSecurity(),
		executorFactory:    usecases.NewExecutorFactory(),
		transactionFactory: usecases.NewTransactionFactory(),
		userRepository:     &usecases.Repositories.ThemisDbRepository,
	}
}

func (usecases *UsecasesWithCreds) NewCaseUseCase() CaseUseCase {
	return CaseUseCase{
		enforceSecurity:        usecases.NewEnforceCaseSecurity(),
		executorFactory:        usecases.NewExecutorFactory(),
		transactionFactory:     usecases.NewTransactionFactory(),
		caseRepository:         &usecases.Repositories.ThemisDbRepository,
		userRepository:         &usecases.Repositories.ThemisDbRepository,
		notificationRepository: &usecases.Repositories.ThemisDbRepository,
		credentials:            usecases.Credentials,
	}
}

func (usecases *UsecasesWithCreds) NewCaseTransferUseCase() CaseTransferUseCase {
	return CaseTransferUseCase{
		enforceSecurity:        usecases.NewEnforceCaseTransferSecurity(),
		enforceCaseSecurity:    usecases.NewEnforceCaseSecurity(),
		executorFactory:        usecases.NewExecutorFactory(),
		transactionFactory:     usecases.NewTransactionFactory(),
		transferRepository:     &usecases.Repositories.ThemisDbRepository,
		caseRepository:         &usecases.Repositories.ThemisDbRepository,
		userRepository:         &usecases.Repositories.ThemisDbRepository,
		notificationRepository: &usecases.Repositories.ThemisDbRepository,
		credentials:            usecases.Credentials,
	}
}

func (usecases *UsecasesWithCreds) NewDocumentUseCase() DocumentUseCase {
	return DocumentUseCase{
		enforceSecurity:           usecases.NewEnforceDocumentSecurity(),
		executorFactory:           usecases.NewExecutorFactory(),
		transactionFactory:        usecases.NewTransactionFactory(),
		documentRepository:        &usecases.Repositories.ThemisDbRepository,
		documentRequestRepository: &usecases.Repositories.ThemisDbRepository,
		caseRepository:            &usecases.Repositories.ThemisDbRepository,
		notificationRepository:    &usecases.Repositories.ThemisDbRepository,
		blobRepository:            usecases.Repositories.BlobRepository,
		bucketUrl:                 usecases.documentsBucketUrl,
		credentials:               usecases.Credentials,
	}
}

func (usecases *UsecasesWithCreds) NewBulkOperationUseCase() BulkOperationUseCase {
	return BulkOperationUseCase{
		enforceSecurity:        usecases.NewEnforceBulkOperationSecurity(),
		executorFactory:        usecases.NewExecutorFactory(),
		transactionFactory:     usecases.NewTransactionFactory(),
		jobRepository:          &usecases.Repositories.ThemisDbRepository,
		notificationRepository: &usecases.Repositories.ThemisDbRepository,
		documentUsecase:        usecases.NewDocumentUseCase(),
		caseUsecase:            usecases.NewCaseUseCase(),
		credentials:            usecases.Credentials,
	}
}

func (usecases *UsecasesWithCreds) NewNotificationUseCase() NotificationUseCase {
	return NotificationUseCase{
		enforceSecurity:        usecases.NewEnforceNotificationSecurity(),
		executorFactory:        usecases.NewExecutorFactory(),
		transactionFactory:     usecases.NewTransactionFactory(),
		notificationRepository: &usecases.Repositories.ThemisDbRepository,
		credentials:            usecases.Credentials,
	}
}

func (usecases *UsecasesWithCreds) NewAnalyticsUseCase() AnalyticsUseCase {
	return AnalyticsUseCase{
		enforceSecurity:     usecases.NewEnforceAnalyticsSecurity(),
		executorFactory:     usecases.NewExecutorFactory(),
		analyticsRepository: &usecases.Repositories.ThemisDbRepository,
		credentials:         usecases.Credentials,
	}
}

func (usecases *UsecasesWithCreds) NewAssistantUseCase() AssistantUseCase {
	return AssistantUseCase{
		enforceSecurity:     usecases.NewEnforceAssistantSecurity(),
		enforceCaseSecurity: usecases.NewEnforceCaseSecurity(),
		executorFactory:     usecases.NewExecutorFactory(),
		assistantRepository: usecases.Repositories.AssistantRepository,
		caseRepository:      &usecases.Repositories.ThemisDbRepository,
		documentRepository:  &usecases.Repositories.ThemisDbRepository,
	}
}
