package api

import (
	"net/http"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/themis-legal/themis-backend/models"
)

func ParseAuthorizationBearerHeader(header http.Header) (string, error) {
	authorization := header.Get("Authorization")
	if authorization == "" {
		return "", errors.Wrap(models.UnAuthorizedError, "missing Authorization header")
	}

	token, found := strings.CutPrefix(authorization, "Bearer ")
	if !found {
		return "", errors.Wrap(models.UnAuthorizedError,
			"malformed Authorization header, expected 'Bearer <token>'")
	}
	return strings.TrimSpace(token), nil
}
