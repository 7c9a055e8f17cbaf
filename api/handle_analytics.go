package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/themis-legal/themis-backend/dto"
	"github.com/themis-legal/themis-backend/usecases"
)

func handleDashboardStats(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		usecase := usecasesWithCreds(ctx, uc).NewAnalyticsUseCase()
		stats, err := usecase.DashboardStats(ctx)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"dashboard": dto.AdaptDashboardStatsDto(stats),
		})
	}
}
