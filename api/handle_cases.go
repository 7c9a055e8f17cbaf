package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/themis-legal/themis-backend/dto"
	"github.com/themis-legal/themis-backend/models"
	"github.com/themis-legal/themis-backend/pure_utils"
	"github.com/themis-legal/themis-backend/usecases"
)

type CaseInput struct {
	Id string `uri:"case_id" binding:"required,uuid"`
}

func handleListCases(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var statuses []models.CaseStatus
		for _, statusParam := range c.QueryArray("status") {
			status, err := models.ValidateCaseStatus(statusParam)
			if presentError(ctx, c, err) {
				return
			}
			statuses = append(statuses, status)
		}

		usecase := usecasesWithCreds(ctx, uc).NewCaseUseCase()
		cases, err := usecase.ListCases(ctx, statuses)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"cases": pure_utils.Map(cases, dto.AdaptCaseDto),
		})
	}
}

func handlePostCase(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var data dto.CreateCaseBody
		if err := c.ShouldBindJSON(&data); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewCaseUseCase()
		createdCase, err := usecase.CreateCase(ctx, models.CreateCaseAttributes{
			CaseNumber:  data.CaseNumber,
			Title:       data.Title,
			Description: data.Description,
			LawyerId:    data.LawyerId,
			ClientId:    data.ClientId,
			JudgeId:     data.JudgeId,
		})
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"case": dto.AdaptCaseDto(createdCase),
		})
	}
}

func handleGetCase(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var caseInput CaseInput
		if err := c.ShouldBindUri(&caseInput); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewCaseUseCase()
		caseModel, err := usecase.GetCase(ctx, caseInput.Id)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"case": dto.AdaptCaseDto(caseModel),
		})
	}
}

func handlePatchCaseStatus(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var caseInput CaseInput
		if err := c.ShouldBindUri(&caseInput); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		var data dto.UpdateCaseStatusBody
		if err := c.ShouldBindJSON(&data); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		status, err := models.ValidateCaseStatus(data.Status)
		if presentError(ctx, c, err) {
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewCaseUseCase()
		updatedCase, err := usecase.UpdateCaseStatus(ctx, caseInput.Id, status)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"case": dto.AdaptCaseDto(updatedCase),
		})
	}
}
