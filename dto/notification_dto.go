package dto

import (
	"time"

	"github.com/themis-legal/themis-backend/models"
)

type APINotification struct {
	Id               string     `json:"id"`
	UserId           string     `json:"user_id"`
	CaseId           *string    `json:"case_id"`
	DocumentId       *string    `json:"document_id"`
	Title            string     `json:"title"`
	Message          string     `json:"message"`
	NotificationType string     `json:"notification_type"`
	Priority         string     `json:"priority"`
	IsRead           bool       `json:"is_read"`
	CreatedAt        time.Time  `json:"created_at"`
	ReadAt           *time.Time `json:"read_at"`
}

func AdaptNotificationDto(notification models.Notification) APINotification {
	return APINotification{
		Id:               notification.Id,
		UserId:           notification.UserId,
		CaseId:           notification.CaseId,
		DocumentId:       notification.DocumentId,
		Title:            notification.Title,
		Message:          notification.Message,
		NotificationType: string(notification.NotificationType),
		Priority:         string(notification.Priority),
		IsRead:           notification.IsRead,
		CreatedAt:        notification.CreatedAt,
		ReadAt:           notification.ReadAt,
	}
}
