package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/themis-legal/themis-backend/dto"
	"github.com/themis-legal/themis-backend/models"
	"github.com/themis-legal/themis-backend/pure_utils"
	"github.com/themis-legal/themis-backend/usecases"
	"github.com/themis-legal/themis-backend/utils"
)

func handleListUsers(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var roleFilter *models.Role
		if roleParam := c.Query("role"); roleParam != "" {
			role := models.RoleFromString(roleParam)
			if role == models.NO_ROLE {
				c.Status(http.StatusBadRequest)
				return
			}
			roleFilter = &role
		}

		usecase := usecasesWithCreds(ctx, uc).NewUserUseCase()
		users, err := usecase.ListUsers(ctx, roleFilter)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"users": pure_utils.Map(users, dto.AdaptUserDto),
		})
	}
}

func handlePostUser(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var data dto.CreateUserBody
		if err := c.ShouldBindJSON(&data); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewUserUseCase()
		createdUser, err := usecase.CreateUser(ctx, usecases.CreateUserInput{
			Email:     data.Email,
			Password:  data.Password,
			FirstName: data.FirstName,
			LastName:  data.LastName,
			Role:      models.RoleFromString(data.Role),
		})
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"user": dto.AdaptUserDto(createdUser),
		})
	}
}

func handleGetMe(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		creds, found := utils.CredentialsFromCtx(ctx)
		if !found {
			c.Status(http.StatusUnauthorized)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewUserUseCase()
		user, err := usecase.GetUser(ctx, creds.ActorIdentity.UserId)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"user": dto.AdaptUserDto(user),
		})
	}
}

type UserInput struct {
	Id string `uri:"user_id" binding:"required,uuid"`
}

func handleGetUser(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var userInput UserInput
		if err := c.ShouldBindUri(&userInput); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewUserUseCase()
		user, err := usecase.GetUser(ctx, userInput.Id)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"user": dto.AdaptUserDto(user),
		})
	}
}

func handleDeleteUser(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var userInput UserInput
		if err := c.ShouldBindUri(&userInput); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewUserUseCase()
		err := usecase.DeactivateUser(ctx, userInput.Id)
		if presentError(ctx, c, err) {
			return
		}

		c.Status(http.StatusNoContent)
	}
}
