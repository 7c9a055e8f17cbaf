package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/themis-legal/themis-backend/dto"
	"github.com/themis-legal/themis-backend/models"
	"github.com/themis-legal/themis-backend/pure_utils"
	"github.com/themis-legal/themis-backend/usecases"
)

type DocumentInput struct {
	Id string `uri:"document_id" binding:"required,uuid"`
}

func handleListCaseDocuments(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var caseInput CaseInput
		if err := c.ShouldBindUri(&caseInput); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewDocumentUseCase()
		documents, err := usecase.ListCaseDocuments(ctx, caseInput.Id)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"documents": pure_utils.Map(documents, dto.AdaptDocumentDto),
		})
	}
}

func handlePostCaseDocument(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var caseInput CaseInput
		if err := c.ShouldBindUri(&caseInput); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		fileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "request does not contain a file"})
			return
		}
		if fileHeader.Size > maxDocumentFileSize {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"message": "file too large"})
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewDocumentUseCase()
		document, err := usecase.UploadDocument(ctx, caseInput.Id, fileHeader)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"document": dto.AdaptDocumentDto(document),
		})
	}
}

func handleDownloadDocument(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var documentInput DocumentInput
		if err := c.ShouldBindUri(&documentInput); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewDocumentUseCase()
		url, err := usecase.GetDocumentDownloadUrl(ctx, documentInput.Id)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"url": url,
		})
	}
}

// The review note body is optional on approve and reject.
func reviewNoteFromRequest(c *gin.Context) (*string, bool) {
	if c.Request.ContentLength == 0 {
		return nil, true
	}
	var data dto.ReviewDocumentBody
	if err := c.ShouldBindJSON(&data); err != nil {
		return nil, false
	}
	return data.ReviewNote.Ptr(), true
}

func handleApproveDocument(uc usecases.Usecases) func(c *gin.Context) {
	return handleReviewDocument(uc, models.DocumentApproved)
}

func handleRejectDocument(uc usecases.Usecases) func(c *gin.Context) {
	return handleReviewDocument(uc, models.DocumentRejected)
}

func handleReviewDocument(uc usecases.Usecases, status models.DocumentStatus) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var documentInput DocumentInput
		if err := c.ShouldBindUri(&documentInput); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		reviewNote, ok := reviewNoteFromRequest(c)
		if !ok {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewDocumentUseCase()
		document, err := usecase.ReviewDocument(ctx, documentInput.Id, status, reviewNote)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"document": dto.AdaptDocumentDto(document),
		})
	}
}

func handleShareDocumentWithJudge(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var documentInput DocumentInput
		if err := c.ShouldBindUri(&documentInput); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewDocumentUseCase()
		document, err := usecase.ShareDocumentWithJudge(ctx, documentInput.Id)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"document": dto.AdaptDocumentDto(document),
		})
	}
}

func handleListMyDocumentRequests(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		usecase := usecasesWithCreds(ctx, uc).NewDocumentUseCase()
		requests, err := usecase.ListMyDocumentRequests(ctx)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"document_requests": pure_utils.Map(requests, dto.AdaptDocumentRequestDto),
		})
	}
}

func handlePostDocumentRequest(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var data dto.CreateDocumentRequestBody
		if err := c.ShouldBindJSON(&data); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewDocumentUseCase()
		request, err := usecase.CreateDocumentRequest(ctx, usecases.CreateDocumentRequestInput{
			CaseId:        data.CaseId,
			RequestedFrom: data.RequestedFrom,
			DocumentType:  data.DocumentType,
			Message:       data.Message,
		})
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"document_request": dto.AdaptDocumentRequestDto(request),
		})
	}
}
