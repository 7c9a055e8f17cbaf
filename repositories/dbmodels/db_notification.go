package dbmodels

import (
	"time"

	"github.com/themis-legal/themis-backend/models"
	"github.com/themis-legal/themis-backend/utils"
)

type DBNotification struct {
	Id               string     `db:"id"`
	UserId           string     `db:"user_id"`
	CaseId           *string    `db:"case_id"`
	DocumentId       *string    `db:"document_id"`
	Title            string     `db:"title"`
	Message          string     `db:"message"`
	NotificationType string     `db:"notification_type"`
	Priority         string     `db:"priority"`
	IsRead           bool       `db:"is_read"`
	CreatedAt        time.Time  `db:"created_at"`
	ReadAt           *time.Time `db:"read_at"`
}

const TABLE_NOTIFICATIONS = "notifications"

var SelectNotificationColumn = utils.ColumnList[DBNotification]()

func AdaptNotification(db DBNotification) (models.Notification, error) {
	return models.Notification{
		Id:               db.Id,
		UserId:           db.UserId,
		CaseId:           db.CaseId,
		DocumentId:       db.DocumentId,
		Title:            db.Title,
		Message:          db.Message,
		NotificationType: models.NotificationType(db.NotificationType),
		Priority:         models.NotificationPriority(db.Priority),
		IsRead:           db.IsRead,
		CreatedAt:        db.CreatedAt,
		ReadAt:           db.ReadAt,
	}, nil
}
