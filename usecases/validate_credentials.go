package usecases

import (
	"github.com/themis-legal/themis-backend/models"
)

type tokenValidator interface {
	ValidateToken(tokenString string) (models.Credentials, error)
}

// ValidateCredentials turns a bearer token into credentials. It exists so
// that the auth middleware does not depend on the jwt repository directly.
type ValidateCredentials struct {
	jwtRepository tokenValidator
}

func (usecase ValidateCredentials) ValidateCredentials(tokenString string) (models.Credentials, error) {
	return usecase.jwtRepository.ValidateToken(tokenString)
}
