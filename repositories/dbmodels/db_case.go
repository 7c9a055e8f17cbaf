package dbmodels

import (
	"time"

	"github.com/themis-legal/themis-backend/models"
	"github.com/themis-legal/themis-backend/utils"
)

type DBCase struct {
	Id          string    `db:"id"`
	CaseNumber  string    `db:"case_number"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	Status      string    `db:"status"`
	LawyerId    string    `db:"lawyer_id"`
	ClientId    string    `db:"client_id"`
	JudgeId     *string   `db:"judge_id"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

const TABLE_CASES = "cases"

var SelectCaseColumn = utils.ColumnList[DBCase]()

func AdaptCase(db DBCase) (models.Case, error) {
	return models.Case{
		Id:          db.Id,
		CaseNumber:  db.CaseNumber,
		Title:       db.Title,
		Description: db.Description,
		Status:      models.CaseStatus(db.Status),
		LawyerId:    db.LawyerId,
		ClientId:    db.ClientId,
		JudgeId:     db.JudgeId,
		CreatedAt:   db.CreatedAt,
		UpdatedAt:   db.UpdatedAt,
	}, nil
}
