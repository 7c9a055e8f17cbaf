package models

import "time"

type DocumentRequest struct {
	Id            string
	CaseId        string
	RequestedFrom string
	RequestedBy   string
	DocumentType  string
	Message       string
	Status        DocumentRequestStatus
	CreatedAt     time.Time
}

type DocumentRequestStatus string

const (
	DocumentRequestOpen      DocumentRequestStatus = "open"
	DocumentRequestFulfilled DocumentRequestStatus = "fulfilled"
)

type CreateDocumentRequestAttributes struct {
	CaseId        string
	RequestedFrom string
	RequestedBy   string
	DocumentType  string
	Message       string
}
