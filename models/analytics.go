package models

type DashboardStats struct {
	CasesByStatus       map[CaseStatus]int
	PendingTransfers    int
	PendingDocuments    int
	UnreadNotifications int
}
