package models

import "time"

type BulkOperationKind string

const (
	BulkApproveDocuments       BulkOperationKind = "documents_approve"
	BulkRejectDocuments        BulkOperationKind = "documents_reject"
	BulkShareDocuments         BulkOperationKind = "documents_share"
	BulkUploadDocuments        BulkOperationKind = "documents_upload"
	BulkCreateDocumentRequests BulkOperationKind = "document_requests_create"
	BulkUpdateCasesStatus      BulkOperationKind = "cases_update_status"
)

type BulkItemSuccess struct {
	ItemId string
}

type BulkItemFailure struct {
	ItemId string
	Error  string
}

type BulkOperationSummary struct {
	Total      int
	Successful int
	Failed     int
}

// BulkOperationResult is built fresh for every invocation and returned in the
// response body. Per-item errors land in Failures and never abort the batch.
type BulkOperationResult struct {
	Successes []BulkItemSuccess
	Failures  []BulkItemFailure
}

func (r BulkOperationResult) Summary() BulkOperationSummary {
	return BulkOperationSummary{
		Total:      len(r.Successes) + len(r.Failures),
		Successful: len(r.Successes),
		Failed:     len(r.Failures),
	}
}

// BulkOperationJob is the persisted trace of one bulk invocation, so that the
// job status endpoint can return real state instead of a placeholder.
type BulkOperationJob struct {
	Id            string
	InitiatedBy   string
	OperationKind BulkOperationKind
	Total         int
	Successful    int
	Failed        int
	Results       BulkOperationResult
	CreatedAt     time.Time
}

type CreateBulkOperationJobAttributes struct {
	InitiatedBy   string
	OperationKind BulkOperationKind
	Result        BulkOperationResult
}
