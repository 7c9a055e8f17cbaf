package usecases

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"golang.org/x/crypto/bcrypt"

	"github.com/themis-legal/themis-backend/models"
	"github.com/themis-legal/themis-backend/repositories"
	"github.com/themis-legal/themis-backend/usecases/executor_factory"
)

const tokenLifetime = 12 * time.Hour

type tokenEncoder interface {
	EncodeToken(expirationTime time.Time, creds models.Credentials) (string, error)
}

type TokenUseCase struct {
	executorFactory executor_factory.ExecutorFactory
	userRepository  repositories.UserRepository
	jwtRepository   tokenEncoder
}

// NewToken authenticates the user by email and password and returns a signed
// token. Unknown emails and wrong passwords produce the same error so that
// the endpoint does not leak which accounts exist.
func (usecase *TokenUseCase) NewToken(ctx context.Context, email, password string) (string, time.Time, error) {
	user, err := usecase.userRepository.UserByEmail(ctx, usecase.executorFactory.NewExecutor(), email)
	if err != nil {
		return "", time.Time{}, err
	}
	if user == nil {
		return "", time.Time{}, errors.Wrap(models.UnAuthorizedError, "invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", time.Time{}, errors.Wrap(models.UnAuthorizedError, "invalid email or password")
	}

	expirationTime := time.Now().Add(tokenLifetime)
	token, err := usecase.jwtRepository.EncodeToken(expirationTime, user.IntoCredentials())
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "failed to encode token")
	}
	return token, expirationTime, nil
}
