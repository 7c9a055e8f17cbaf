package dto

import (
	"github.com/themis-legal/themis-backend/models"
)

type APIDashboardStats struct {
	CasesByStatus       map[string]int `json:"cases_by_status"`
	PendingTransfers    int            `json:"pending_transfers"`
	PendingDocuments    int            `json:"pending_documents"`
	UnreadNotifications int            `json:"unread_notifications"`
}

func AdaptDashboardStatsDto(stats models.DashboardStats) APIDashboardStats {
	casesByStatus := make(map[string]int, len(stats.CasesByStatus))
	for status, count := range stats.CasesByStatus {
		casesByStatus[string(status)] = count
	}
	return APIDashboardStats{
		CasesByStatus:       casesByStatus,
		PendingTransfers:    stats.PendingTransfers,
		PendingDocuments:    stats.PendingDocuments,
		UnreadNotifications: stats.UnreadNotifications,
	}
}

type AssistantQuestionBody struct {
	Question string `json:"question" binding:"required"`
}
