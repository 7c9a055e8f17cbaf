package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/themis-legal/themis-backend/dto"
	"github.com/themis-legal/themis-backend/models"
	"github.com/themis-legal/themis-backend/pure_utils"
	"github.com/themis-legal/themis-backend/usecases"
)

type NotificationInput struct {
	Id string `uri:"notification_id" binding:"required,uuid"`
}

func handleListNotifications(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		filters := models.NotificationFilters{
			UnreadOnly: c.Query("unread_only") == "true",
		}

		usecase := usecasesWithCreds(ctx, uc).NewNotificationUseCase()
		notifications, err := usecase.ListNotifications(ctx, filters)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"notifications": pure_utils.Map(notifications, dto.AdaptNotificationDto),
		})
	}
}

func handleCountUnreadNotifications(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		usecase := usecasesWithCreds(ctx, uc).NewNotificationUseCase()
		count, err := usecase.CountUnread(ctx)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"count": count,
		})
	}
}

func handleMarkNotificationAsRead(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var notificationInput NotificationInput
		if err := c.ShouldBindUri(&notificationInput); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewNotificationUseCase()
		notification, err := usecase.MarkAsRead(ctx, notificationInput.Id)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"notification": dto.AdaptNotificationDto(notification),
		})
	}
}

func handleMarkAllNotificationsAsRead(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		usecase := usecasesWithCreds(ctx, uc).NewNotificationUseCase()
		err := usecase.MarkAllAsRead(ctx)
		if presentError(ctx, c, err) {
			return
		}

		c.Status(http.StatusNoContent)
	}
}

func handleDeleteNotification(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var notificationInput NotificationInput
		if err := c.ShouldBindUri(&notificationInput); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewNotificationUseCase()
		err := usecase.DeleteNotification(ctx, notificationInput.Id)
		if presentError(ctx, c, err) {
			return
		}

		c.Status(http.StatusNoContent)
	}
}
