package security

import (
	"github.com/themis-legal/themis-backend/models"
)

type EnforceSecurityAnalytics interface {
	EnforceSecurity
	ReadAnalytics() error
}

type EnforceSecurityAnalyticsImpl struct {
	EnforceSecurity
	Credentials models.Credentials
}

func (e *EnforceSecurityAnalyticsImpl) ReadAnalytics() error {
	return e.Permission(models.ANALYTICS_READ)
}

type EnforceSecurityAssistant interface {
	EnforceSecurity
	AskAssistant() error
}

type EnforceSecurityAssistantImpl struct {
	EnforceSecurity
	Credentials models.Credentials
}

func (e *EnforceSecurityAssistantImpl) AskAssistant() error {
	return e.Permission(models.ASSISTANT_ASK)
}
