package api

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/themis-legal/themis-backend/usecases"
	"github.com/themis-legal/themis-backend/utils"
)

type Authentication struct {
	validator usecases.ValidateCredentials
}

func NewAuthentication(validator usecases.ValidateCredentials) Authentication {
	return Authentication{
		validator: validator,
	}
}

// Middleware authenticates the request from its bearer token, and stores the
// credentials and an enriched logger in the request context.
func (a Authentication) Middleware(c *gin.Context) {
	ctx := c.Request.Context()

	token, err := ParseAuthorizationBearerHeader(c.Request.Header)
	if err != nil {
		presentError(ctx, c, err)
		c.Abort()
		return
	}

	creds, err := a.validator.ValidateCredentials(token)
	if err != nil {
		presentError(ctx, c, err)
		c.Abort()
		return
	}

	newContext := utils.StoreCredentialsInContext(ctx, creds)

	logger := utils.LoggerFromContext(newContext).
		With(slog.String("user_id", creds.ActorIdentity.UserId)).
		With(slog.String("role", creds.Role.String()))
	newContext = utils.StoreLoggerInContext(newContext, logger)

	c.Request = c.Request.WithContext(newContext)
	c.Next()
}
