package models

import "time"

type Notification struct {
	Id               string
	UserId           string
	CaseId           *string
	DocumentId       *string
	Title            string
	Message          string
	NotificationType NotificationType
	Priority         NotificationPriority
	IsRead           bool
	CreatedAt        time.Time
	ReadAt           *time.Time
}

type NotificationType string

const (
	NotificationTransferRequested NotificationType = "transfer_requested"
	NotificationTransferApproved  NotificationType = "transfer_approved"
	NotificationTransferRejected  NotificationType = "transfer_rejected"
	NotificationTransferCancelled NotificationType = "transfer_cancelled"
	NotificationCaseStatusChanged NotificationType = "case_status_changed"
	NotificationDocumentReviewed  NotificationType = "document_reviewed"
	NotificationDocumentShared    NotificationType = "document_shared"
	NotificationDocumentRequested NotificationType = "document_requested"
	NotificationBulkSummary       NotificationType = "bulk_summary"
)

type NotificationPriority string

const (
	PriorityLow    NotificationPriority = "low"
	PriorityMedium NotificationPriority = "medium"
	PriorityHigh   NotificationPriority = "high"
)

type CreateNotificationAttributes struct {
	UserId           string
	CaseId           *string
	DocumentId       *string
	Title            string
	Message          string
	NotificationType NotificationType
	Priority         NotificationPriority
}

type NotificationFilters struct {
	UnreadOnly bool
}
