package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/themis-legal/themis-backend/dto"
	"github.com/themis-legal/themis-backend/models"
	"github.com/themis-legal/themis-backend/pure_utils"
	"github.com/themis-legal/themis-backend/usecases"
)

type BulkOperationJobInput struct {
	Id string `uri:"job_id" binding:"required,uuid"`
}

func handleBulkApproveDocuments(uc usecases.Usecases) func(c *gin.Context) {
	return handleBulkReviewDocuments(uc, models.DocumentApproved)
}

func handleBulkRejectDocuments(uc usecases.Usecases) func(c *gin.Context) {
	return handleBulkReviewDocuments(uc, models.DocumentRejected)
}

func handleBulkReviewDocuments(uc usecases.Usecases, status models.DocumentStatus) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var data dto.BulkReviewDocumentsBody
		if err := c.ShouldBindJSON(&data); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewBulkOperationUseCase()
		job, err := usecase.BulkReviewDocuments(ctx, data.DocumentIds, status, data.ReviewNote.Ptr())
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"bulk_operation": dto.AdaptBulkOperationJobDto(job),
		})
	}
}

func handleBulkShareDocuments(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var data dto.BulkDocumentIdsBody
		if err := c.ShouldBindJSON(&data); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewBulkOperationUseCase()
		job, err := usecase.BulkShareDocuments(ctx, data.DocumentIds)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"bulk_operation": dto.AdaptBulkOperationJobDto(job),
		})
	}
}

func handleBulkUploadDocuments(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		caseId := c.PostForm("case_id")
		if caseId == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "missing case_id form field"})
			return
		}

		form, err := c.MultipartForm()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "request is not a multipart form"})
			return
		}
		fileHeaders := form.File["files[]"]
		for _, fileHeader := range fileHeaders {
			if fileHeader.Size > maxDocumentFileSize {
				c.JSON(http.StatusRequestEntityTooLarge, gin.H{
					"message": "file too large: " + fileHeader.Filename,
				})
				return
			}
		}

		usecase := usecasesWithCreds(ctx, uc).NewBulkOperationUseCase()
		job, err := usecase.BulkUploadDocuments(ctx, caseId, fileHeaders)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"bulk_operation": dto.AdaptBulkOperationJobDto(job),
		})
	}
}

func handleBulkCreateDocumentRequests(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var data dto.BulkCreateDocumentRequestsBody
		if err := c.ShouldBindJSON(&data); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		inputs := pure_utils.Map(data.Requests,
			func(request dto.CreateDocumentRequestBody) usecases.CreateDocumentRequestInput {
				return usecases.CreateDocumentRequestInput{
					CaseId:        request.CaseId,
					RequestedFrom: request.RequestedFrom,
					DocumentType:  request.DocumentType,
					Message:       request.Message,
				}
			})

		usecase := usecasesWithCreds(ctx, uc).NewBulkOperationUseCase()
		job, err := usecase.BulkCreateDocumentRequests(ctx, inputs)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"bulk_operation": dto.AdaptBulkOperationJobDto(job),
		})
	}
}

func handleBulkUpdateCasesStatus(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var data dto.BulkUpdateCasesStatusBody
		if err := c.ShouldBindJSON(&data); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		status, err := models.ValidateCaseStatus(data.Status)
		if presentError(ctx, c, err) {
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewBulkOperationUseCase()
		job, err := usecase.BulkUpdateCasesStatus(ctx, data.CaseIds, status)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"bulk_operation": dto.AdaptBulkOperationJobDto(job),
		})
	}
}

func handleGetBulkOperationJob(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var jobInput BulkOperationJobInput
		if err := c.ShouldBindUri(&jobInput); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewBulkOperationUseCase()
		job, err := usecase.GetJob(ctx, jobInput.Id)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"bulk_operation": dto.AdaptBulkOperationJobDto(job),
		})
	}
}
