package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/themis-legal/themis-backend/mocks"
	"github.com/themis-legal/themis-backend/models"
)

func tokenTestUser(t *testing.T, password string) models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return models.User{
		Id:           "bf0aa695-7a31-4c8f-a9cc-1a4a2ba34a0f",
		Email:        "lawyer@example.com",
		PasswordHash: string(hash),
		Role:         models.LAWYER,
		IsActive:     true,
	}
}

func makeTokenUsecase(userRepository *mocks.UserRepository, jwtRepository *mocks.JwtRepository) *TokenUseCase {
	executorFactory := new(mocks.ExecutorFactory)
	executorFactory.On("NewExecutor").Return(new(mocks.Executor))
	return &TokenUseCase{
		executorFactory: executorFactory,
		userRepository:  userRepository,
		jwtRepository:   jwtRepository,
	}
}

func TestNewTokenSuccess(t *testing.T) {
	user := tokenTestUser(t, "correct horse battery")

	userRepository := new(mocks.UserRepository)
	userRepository.On("UserByEmail", mock.Anything, mock.Anything, user.Email).
		Return(&user, nil)

	jwtRepository := new(mocks.JwtRepository)
	jwtRepository.On("EncodeToken", mock.Anything, user.IntoCredentials()).
		Return("signed-token", nil)

	usecase := makeTokenUsecase(userRepository, jwtRepository)
	token, expirationTime, err := usecase.NewToken(context.Background(),
		user.Email, "correct horse battery")

	require.NoError(t, err)
	assert.Equal(t, "signed-token", token)
	assert.WithinDuration(t, time.Now().Add(tokenLifetime), expirationTime, time.Minute)
	jwtRepository.AssertExpectations(t)
}

func TestNewTokenFailuresAreIndistinguishable(t *testing.T) {
	user := tokenTestUser(t, "correct horse battery")

	userRepository := new(mocks.UserRepository)
	userRepository.On("UserByEmail", mock.Anything, mock.Anything, user.Email).
		Return(&user, nil)
	userRepository.On("UserByEmail", mock.Anything, mock.Anything, "nobody@example.com").
		Return(nil, nil)

	usecase := makeTokenUsecase(userRepository, new(mocks.JwtRepository))

	_, _, unknownEmailErr := usecase.NewToken(context.Background(),
		"nobody@example.com", "whatever")
	_, _, wrongPasswordErr := usecase.NewToken(context.Background(),
		user.Email, "wrong password")

	require.ErrorIs(t, unknownEmailErr, models.UnAuthorizedError)
	require.ErrorIs(t, wrongPasswordErr, models.UnAuthorizedError)
	assert.Equal(t, unknownEmailErr.Error(), wrongPasswordErr.Error())
}
