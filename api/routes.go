package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/themis-legal/themis-backend/usecases"
)

const maxDocumentFileSize = 30 * 1024 * 1024 // 30MB

func addRoutes(r *gin.Engine, auth Authentication, uc usecases.Usecases) {
	r.GET("/liveness", handleLivenessProbe)
	r.POST("/token", handlePostToken(uc))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router := r.Use(auth.Middleware)

	router.GET("/credentials", handleGetCredentials())

	router.GET("/users", handleListUsers(uc))
	router.POST("/users", handlePostUser(uc))
	router.GET("/users/me", handleGetMe(uc))
	router.GET("/users/:user_id", handleGetUser(uc))
	router.DELETE("/users/:user_id", handleDeleteUser(uc))

	router.GET("/cases", handleListCases(uc))
	router.POST("/cases", handlePostCase(uc))
	router.GET("/cases/:case_id", handleGetCase(uc))
	router.PATCH("/cases/:case_id/status", handlePatchCaseStatus(uc))
	router.GET("/cases/:case_id/documents", handleListCaseDocuments(uc))
	router.POST("/cases/:case_id/documents", handlePostCaseDocument(uc))
	router.GET("/cases/:case_id/transfers", handleCaseTransferHistory(uc))

	router.POST("/case-transfers/request", handleRequestCaseTransfer(uc))
	router.GET("/case-transfers/my-requests", handleListMyCaseTransfers(uc))
	router.GET("/case-transfers/pending", handleListPendingCaseTransfers(uc))
	router.GET("/case-transfers/:transfer_id", handleGetCaseTransfer(uc))
	router.PATCH("/case-transfers/:transfer_id/approve", handleApproveCaseTransfer(uc))
	router.PATCH("/case-transfers/:transfer_id/reject", handleRejectCaseTransfer(uc))
	router.PATCH("/case-transfers/:transfer_id/cancel", handleCancelCaseTransfer(uc))

	router.GET("/documents/:document_id/download", handleDownloadDocument(uc))
	router.PATCH("/documents/:document_id/approve", handleApproveDocument(uc))
	router.PATCH("/documents/:document_id/reject", handleRejectDocument(uc))
	router.PATCH("/documents/:document_id/share", handleShareDocumentWithJudge(uc))

	router.GET("/document-requests", handleListMyDocumentRequests(uc))
	router.POST("/document-requests", handlePostDocumentRequest(uc))

	router.POST("/bulk-operations/documents/approve", handleBulkApproveDocuments(uc))
	router.POST("/bulk-operations/documents/reject", handleBulkRejectDocuments(uc))
	router.POST("/bulk-operations/documents/share", handleBulkShareDocuments(uc))
	router.POST("/bulk-operations/documents/upload", handleBulkUploadDocuments(uc))
	router.POST("/bulk-operations/document-requests", handleBulkCreateDocumentRequests(uc))
	router.POST("/bulk-operations/cases/update-status", handleBulkUpdateCasesStatus(uc))
	router.GET("/bulk-operations/:job_id", handleGetBulkOperationJob(uc))

	router.GET("/notifications", handleListNotifications(uc))
	router.GET("/notifications/unread-count", handleCountUnreadNotifications(uc))
	router.PATCH("/notifications/read-all", handleMarkAllNotificationsAsRead(uc))
	router.PATCH("/notifications/:notification_id/read", handleMarkNotificationAsRead(uc))
	router.DELETE("/notifications/:notification_id", handleDeleteNotification(uc))

	router.GET("/analytics/dashboard", handleDashboardStats(uc))

	router.POST("/assistant/cases/:case_id/ask", handleAskAssistant(uc))
}
