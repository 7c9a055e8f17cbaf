package dto

import (
	"time"

	"github.com/themis-legal/themis-backend/models"
)

type APIDocumentRequest struct {
	Id            string    `json:"id"`
	CaseId        string    `json:"case_id"`
	RequestedFrom string    `json:"requested_from"`
	RequestedBy   string    `json:"requested_by"`
	DocumentType  string    `json:"document_type"`
	Message       string    `json:"message"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

func AdaptDocumentRequestDto(request models.DocumentRequest) APIDocumentRequest {
	return APIDocumentRequest{
		Id:            request.Id,
		CaseId:        request.CaseId,
		RequestedFrom: request.RequestedFrom,
		RequestedBy:   request.RequestedBy,
		DocumentType:  request.DocumentType,
		Message:       request.Message,
		Status:        string(request.Status),
		CreatedAt:     request.CreatedAt,
	}
}

type CreateDocumentRequestBody struct {
	CaseId        string `json:"case_id" binding:"required,uuid"`
	RequestedFrom string `json:"requested_from" binding:"required,uuid"`
	DocumentType  string `json:"document_type" binding:"required"`
	Message       string `json:"message"`
}
