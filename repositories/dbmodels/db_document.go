package dbmodels

import (
	"time"

	"github.com/themis-legal/themis-backend/models"
	"github.com/themis-legal/themis-backend/utils"
)

type DBDocument struct {
	Id              string     `db:"id"`
	CaseId          string     `db:"case_id"`
	FileName        string     `db:"file_name"`
	DocumentType    string     `db:"document_type"`
	Status          string     `db:"status"`
	ReviewNote      *string    `db:"review_note"`
	SharedWithJudge bool       `db:"shared_with_judge"`
	BucketKey       string     `db:"bucket_key"`
	UploadedBy      string     `db:"uploaded_by"`
	CreatedAt       time.Time  `db:"created_at"`
	ReviewedAt      *time.Time `db:"reviewed_at"`
}

const TABLE_DOCUMENTS = "documents"

var SelectDocumentColumn = utils.ColumnList[DBDocument]()

func AdaptDocument(db DBDocument) (models.Document, error) {
	return models.Document{
		Id:              db.Id,
		CaseId:          db.CaseId,
		FileName:        db.FileName,
		DocumentType:    db.DocumentType,
		Status:          models.DocumentStatus(db.Status),
		ReviewNote:      db.ReviewNote,
		SharedWithJudge: db.SharedWithJudge,
		BucketKey:       db.BucketKey,
		UploadedBy:      db.UploadedBy,
		CreatedAt:       db.CreatedAt,
		ReviewedAt:      db.ReviewedAt,
	}, nil
}
