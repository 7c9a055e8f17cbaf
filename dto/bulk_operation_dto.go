package dto

import (
	"time"

	"github.com/guregu/null/v5"

	"github.com/themis-legal/themis-backend/models"
	"github.com/themis-legal/themis-backend/pure_utils"
)

type APIBulkItemSuccess struct {
	ItemId string `json:"item_id"`
}

type APIBulkItemFailure struct {
	ItemId string `json:"item_id"`
	Error  string `json:"error"`
}

type APIBulkOperationSummary struct {
	Total      int `json:"total"`
	Successful int `json:"successful"`
	Failed     int `json:"failed"`
}

type APIBulkOperationJob struct {
	Id            string                  `json:"id"`
	InitiatedBy   string                  `json:"initiated_by"`
	OperationKind string                  `json:"operation_kind"`
	Summary       APIBulkOperationSummary `json:"summary"`
	Successes     []APIBulkItemSuccess    `json:"successes"`
	Failures      []APIBulkItemFailure    `json:"failures"`
	CreatedAt     time.Time               `json:"created_at"`
}

func AdaptBulkOperationJobDto(job models.BulkOperationJob) APIBulkOperationJob {
	return APIBulkOperationJob{
		Id:            job.Id,
		InitiatedBy:   job.InitiatedBy,
		OperationKind: string(job.OperationKind),
		Summary: APIBulkOperationSummary{
			Total:      job.Total,
			Successful: job.Successful,
			Failed:     job.Failed,
		},
		Successes: pure_utils.Map(job.Results.Successes,
			func(success models.BulkItemSuccess) APIBulkItemSuccess {
				return APIBulkItemSuccess{ItemId: success.ItemId}
			}),
		Failures: pure_utils.Map(job.Results.Failures,
			func(failure models.BulkItemFailure) APIBulkItemFailure {
				return APIBulkItemFailure{ItemId: failure.ItemId, Error: failure.Error}
			}),
		CreatedAt: job.CreatedAt,
	}
}

type BulkDocumentIdsBody struct {
	DocumentIds []string `json:"document_ids" binding:"required,dive,uuid"`
}

type BulkReviewDocumentsBody struct {
	DocumentIds []string    `json:"document_ids" binding:"required,dive,uuid"`
	ReviewNote  null.String `json:"review_note"`
}

type BulkCreateDocumentRequestsBody struct {
	Requests []CreateDocumentRequestBody `json:"requests" binding:"required,dive"`
}

type BulkUpdateCasesStatusBody struct {
	CaseIds []string `json:"case_ids" binding:"required,dive,uuid"`
	Status  string   `json:"status" binding:"required"`
}
