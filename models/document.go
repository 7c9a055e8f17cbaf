package models

import (
	"strings"
	"time"
)

type Document struct {
	Id              string
	CaseId          string
	FileName        string
	DocumentType    string
	Status          DocumentStatus
	ReviewNote      *string
	SharedWithJudge bool
	BucketKey       string
	UploadedBy      string
	CreatedAt       time.Time
	ReviewedAt      *time.Time
}

type DocumentStatus string

const (
	DocumentPending  DocumentStatus = "pending"
	DocumentApproved DocumentStatus = "approved"
	DocumentRejected DocumentStatus = "rejected"
)

type CreateDocumentAttributes struct {
	CaseId       string
	FileName     string
	DocumentType string
	BucketKey    string
	UploadedBy   string
}

// documentTypeRules is ordered: the first keyword found in the lowercased
// file name decides the type.
var documentTypeRules = []struct {
	keyword      string
	documentType string
}{
	{"fir", "FIR"},
	{"aadhaar", "Aadhaar"},
	{"aadhar", "Aadhaar"},
	{"medical", "Medical Report"},
	{"complaint", "Complaint"},
	{"notice", "Legal Notice"},
	{"cheque", "Bounced Cheque"},
	{"video", "Video Evidence"},
	{"audio", "Audio Evidence"},
}

const DocumentTypeOther = "Other"

// InferDocumentType is a pure function of the file name.
func InferDocumentType(fileName string) string {
	lowered := strings.ToLower(fileName)
	for _, rule := range documentTypeRules {
		if strings.Contains(lowered, rule.keyword) {
			return rule.documentType
		}
	}
	return DocumentTypeOther
}
