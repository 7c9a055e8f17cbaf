package dbmodels

import (
	"encoding/json"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/themis-legal/themis-backend/models"
	"github.com/themis-legal/themis-backend/utils"
)

type DBBulkOperationJob struct {
	Id            string          `db:"id"`
	InitiatedBy   string          `db:"initiated_by"`
	OperationKind string          `db:"operation_kind"`
	Total         int             `db:"total"`
	Successful    int             `db:"successful"`
	Failed        int             `db:"failed"`
	Results       json.RawMessage `db:"results"`
	CreatedAt     time.Time       `db:"created_at"`
}

const TABLE_BULK_OPERATION_JOBS = "bulk_operation_jobs"

var SelectBulkOperationJobColumn = utils.ColumnList[DBBulkOperationJob]()

type dbBulkResults struct {
	Successes []dbBulkItemSuccess `json:"successes"`
	Failures  []dbBulkItemFailure `json:"failures"`
}

type dbBulkItemSuccess struct {
	ItemId string `json:"item_id"`
}

type dbBulkItemFailure struct {
	ItemId string `json:"item_id"`
	Error  string `json:"error"`
}

func AdaptBulkOperationJob(db DBBulkOperationJob) (models.BulkOperationJob, error) {
	var results dbBulkResults
	if err := json.Unmarshal(db.Results, &results); err != nil {
		return models.BulkOperationJob{}, errors.Wrap(err, "can't decode bulk operation results")
	}

	job := models.BulkOperationJob{
		Id:            db.Id,
		InitiatedBy:   db.InitiatedBy,
		OperationKind: models.BulkOperationKind(db.OperationKind),
		Total:         db.Total,
		Successful:    db.Successful,
		Failed:        db.Failed,
		CreatedAt:     db.CreatedAt,
	}
	for _, success := range results.Successes {
		job.Results.Successes = append(job.Results.Successes,
			models.BulkItemSuccess{ItemId: success.ItemId})
	}
	for _, failure := range results.Failures {
		job.Results.Failures = append(job.Results.Failures,
			models.BulkItemFailure{ItemId: failure.ItemId, Error: failure.Error})
	}
	return job, nil
}

func SerializeBulkResults(result models.BulkOperationResult) ([]byte, error) {
	results := dbBulkResults{
		Successes: make([]dbBulkItemSuccess, len(result.Successes)),
		Failures:  make([]dbBulkItemFailure, len(result.Failures)),
	}
	for i, success := range result.Successes {
		results.Successes[i] = dbBulkItemSuccess{ItemId: success.ItemId}
	}
	for i, failure := range result.Failures {
		results.Failures[i] = dbBulkItemFailure{ItemId: failure.ItemId, Error: failure.Error}
	}
	return json.Marshal(results)
}
