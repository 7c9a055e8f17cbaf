package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/themis-legal/themis-backend/dto"
	"github.com/themis-legal/themis-backend/usecases"
)

func handleAskAssistant(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var caseInput CaseInput
		if err := c.ShouldBindUri(&caseInput); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		var data dto.AssistantQuestionBody
		if err := c.ShouldBindJSON(&data); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewAssistantUseCase()
		answer, err := usecase.Ask(ctx, data.Question, &caseInput.Id)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"answer": answer,
		})
	}
}
