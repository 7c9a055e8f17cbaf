package dto

import (
	"time"

	"github.com/guregu/null/v5"

	"github.com/themis-legal/themis-backend/models"
)

type APICaseTransfer struct {
	Id          string     `json:"id"`
	CaseId      string     `json:"case_id"`
	FromUserId  string     `json:"from_user_id"`
	ToUserId    string     `json:"to_user_id"`
	Reason      string     `json:"reason"`
	Notes       *string    `json:"notes"`
	Status      string     `json:"status"`
	RequestedAt time.Time  `json:"requested_at"`
	ResolvedAt  *time.Time `json:"resolved_at"`
}

func AdaptCaseTransferDto(transfer models.CaseTransfer) APICaseTransfer {
	return APICaseTransfer{
		Id:          transfer.Id,
		CaseId:      transfer.CaseId,
		FromUserId:  transfer.FromUserId,
		ToUserId:    transfer.ToUserId,
		Reason:      transfer.Reason,
		Notes:       transfer.Notes,
		Status:      string(transfer.Status),
		RequestedAt: transfer.RequestedAt,
		ResolvedAt:  transfer.ResolvedAt,
	}
}

type RequestCaseTransferBody struct {
	CaseId   string  `json:"case_id" binding:"required,uuid"`
	ToUserId string  `json:"to_user_id" binding:"required,uuid"`
	Reason   string  `json:"reason" binding:"required"`
	Notes    *string `json:"notes"`
}

type RejectCaseTransferBody struct {
	Reason null.String `json:"reason"`
}
