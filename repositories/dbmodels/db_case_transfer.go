package dbmodels

import (
	"time"

	"github.com/themis-legal/themis-backend/models"
	"github.com/themis-legal/themis-backend/utils"
)

type DBCaseTransfer struct {
	Id          string     `db:"id"`
	CaseId      string     `db:"case_id"`
	FromUserId  string     `db:"from_user_id"`
	ToUserId    string     `db:"to_user_id"`
	Reason      string     `db:"reason"`
	Notes       *string    `db:"notes"`
	Status      string     `db:"status"`
	RequestedAt time.Time  `db:"requested_at"`
	ResolvedAt  *time.Time `db:"resolved_at"`
}

const TABLE_CASE_TRANSFERS = "case_transfers"

var SelectCaseTransferColumn = utils.ColumnList[DBCaseTransfer]()

func AdaptCaseTransfer(db DBCaseTransfer) (models.CaseTransfer, error) {
	return models.CaseTransfer{
		Id:          db.Id,
		CaseId:      db.CaseId,
		FromUserId:  db.FromUserId,
		ToUserId:    db.ToUserId,
		Reason:      db.Reason,
		Notes:       db.Notes,
		Status:      models.CaseTransferStatus(db.Status),
		RequestedAt: db.RequestedAt,
		ResolvedAt:  db.ResolvedAt,
	}, nil
}
