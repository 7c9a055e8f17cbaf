package dbmodels

import (
	"time"

	"github.com/themis-legal/themis-backend/models"
	"github.com/themis-legal/themis-backend/utils"
)

type DBDocumentRequest struct {
	Id            string    `db:"id"`
	CaseId        string    `db:"case_id"`
	RequestedFrom string    `db:"requested_from"`
	RequestedBy   string    `db:"requested_by"`
	DocumentType  string    `db:"document_type"`
	Message       string    `db:"message"`
	Status        string    `db:"status"`
	CreatedAt     time.Time `db:"created_at"`
}

const TABLE_DOCUMENT_REQUESTS = "document_requests"

var SelectDocumentRequestColumn = utils.ColumnList[DBDocumentRequest]()

func AdaptDocumentRequest(db DBDocumentRequest) (models.DocumentRequest, error) {
	return models.DocumentRequest{
		Id:            db.Id,
		CaseId:        db.CaseId,
		RequestedFrom: db.RequestedFrom,
		RequestedBy:   db.RequestedBy,
		DocumentType:  db.DocumentType,
		Message:       db.Message,
		Status:        models.DocumentRequestStatus(db.Status),
		CreatedAt:     db.CreatedAt,
	}, nil
}
