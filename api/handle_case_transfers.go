package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/themis-legal/themis-backend/dto"
	"github.com/themis-legal/themis-backend/models"
	"github.com/themis-legal/themis-backend/pure_utils"
	"github.com/themis-legal/themis-backend/usecases"
)

type CaseTransferInput struct {
	Id string `uri:"transfer_id" binding:"required,uuid"`
}

func handleRequestCaseTransfer(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var data dto.RequestCaseTransferBody
		if err := c.ShouldBindJSON(&data); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewCaseTransferUseCase()
		transfer, err := usecase.RequestTransfer(ctx, usecases.RequestCaseTransferInput{
			CaseId:   data.CaseId,
			ToUserId: data.ToUserId,
			Reason:   data.Reason,
			Notes:    data.Notes,
		})
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"case_transfer": dto.AdaptCaseTransferDto(transfer),
		})
	}
}

func handleGetCaseTransfer(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var transferInput CaseTransferInput
		if err := c.ShouldBindUri(&transferInput); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewCaseTransferUseCase()
		transfer, err := usecase.GetTransfer(ctx, transferInput.Id)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"case_transfer": dto.AdaptCaseTransferDto(transfer),
		})
	}
}

func handleApproveCaseTransfer(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var transferInput CaseTransferInput
		if err := c.ShouldBindUri(&transferInput); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewCaseTransferUseCase()
		transfer, err := usecase.ApproveTransfer(ctx, transferInput.Id)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"case_transfer": dto.AdaptCaseTransferDto(transfer),
		})
	}
}

func handleRejectCaseTransfer(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var transferInput CaseTransferInput
		if err := c.ShouldBindUri(&transferInput); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		// the rejection reason body is optional
		var reason *string
		if c.Request.ContentLength > 0 {
			var data dto.RejectCaseTransferBody
			if err := c.ShouldBindJSON(&data); err != nil {
				c.Status(http.StatusBadRequest)
				return
			}
			reason = data.Reason.Ptr()
		}

		usecase := usecasesWithCreds(ctx, uc).NewCaseTransferUseCase()
		transfer, err := usecase.RejectTransfer(ctx, transferInput.Id, reason)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"case_transfer": dto.AdaptCaseTransferDto(transfer),
		})
	}
}

func handleCancelCaseTransfer(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var transferInput CaseTransferInput
		if err := c.ShouldBindUri(&transferInput); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewCaseTransferUseCase()
		transfer, err := usecase.CancelTransfer(ctx, transferInput.Id)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"case_transfer": dto.AdaptCaseTransferDto(transfer),
		})
	}
}

func handleListMyCaseTransfers(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		listing, err := models.ValidateTransferListingType(c.Query("type"))
		if presentError(ctx, c, err) {
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewCaseTransferUseCase()
		transfers, err := usecase.ListTransfers(ctx, listing)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"case_transfers": pure_utils.Map(transfers, dto.AdaptCaseTransferDto),
		})
	}
}

func handleListPendingCaseTransfers(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		usecase := usecasesWithCreds(ctx, uc).NewCaseTransferUseCase()
		transfers, err := usecase.ListPendingTransfers(ctx)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"case_transfers": pure_utils.Map(transfers, dto.AdaptCaseTransferDto),
		})
	}
}

func handleCaseTransferHistory(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var caseInput CaseInput
		if err := c.ShouldBindUri(&caseInput); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewCaseTransferUseCase()
		transfers, err := usecase.CaseTransferHistory(ctx, caseInput.Id)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"case_transfers": pure_utils.Map(transfers, dto.AdaptCaseTransferDto),
		})
	}
}
