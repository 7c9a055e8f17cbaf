package dto

import (
	"time"

	"github.com/guregu/null/v5"

	"github.com/themis-legal/themis-backend/models"
)

type APIDocument struct {
	Id              string     `json:"id"`
	CaseId          string     `json:"case_id"`
	FileName        string     `json:"file_name"`
	DocumentType    string     `json:"document_type"`
	Status          string     `json:"status"`
	ReviewNote      *string    `json:"review_note"`
	SharedWithJudge bool       `json:"shared_with_judge"`
	UploadedBy      string     `json:"uploaded_by"`
	CreatedAt       time.Time  `json:"created_at"`
	ReviewedAt      *time.Time `json:"reviewed_at"`
}

func AdaptDocumentDto(document models.Document) APIDocument {
	return APIDocument{
		Id:              document.Id,
		CaseId:          document.CaseId,
		FileName:        document.FileName,
		DocumentType:    document.DocumentType,
		Status:          string(document.Status),
		ReviewNote:      document.ReviewNote,
		SharedWithJudge: document.SharedWithJudge,
		UploadedBy:      document.UploadedBy,
		CreatedAt:       document.CreatedAt,
		ReviewedAt:      document.ReviewedAt,
	}
}

type ReviewDocumentBody struct {
	ReviewNote null.String `json:"review_note"`
}
