package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/themis-legal/themis-backend/mocks"
	"github.com/themis-legal/themis-backend/models"
)

func TestCreateUserStoresPasswordHash(t *testing.T) {
	ctx := context.Background()
	newUserId := "1fbc0cf5-06c6-4897-9cbd-7c72fbf64d31"

	enforceSecurity := new(mocks.EnforceSecurity)
	transaction := new(mocks.Transaction)
	transactionFactory := &mocks.TransactionFactory{TxMock: transaction}
	userRepository := new(mocks.UserRepository)

	enforceSecurity.On("CreateUser").Return(nil)
	transactionFactory.On("Transaction", ctx, mock.Anything).Return(nil)
	userRepository.On("CreateUser", ctx, transaction,
		mock.MatchedBy(func(attributes models.CreateUserAttributes) bool {
			return attributes.PasswordHash != "hunter2" &&
				bcrypt.CompareHashAndPassword(
					[]byte(attributes.PasswordHash), []byte("hunter2")) == nil
		})).
		Return(newUserId, nil)
	userRepository.On("UserById", ctx, transaction, newUserId).
		Return(models.User{Id: newUserId, Email: "jordan@example.com", Role: models.LAWYER}, nil)

	usecase := UserUseCase{
		enforceSecurity:    enforceSecurity,
		transactionFactory: transactionFactory,
		userRepository:     userRepository,
	}
	user, err := usecase.CreateUser(ctx, CreateUserInput{
		Email:     "jordan@example.com",
		Password:  "hunter2",
		FirstName: "Jordan",
		LastName:  "Mehta",
		Role:      models.LAWYER,
	})

	require.NoError(t, err)
	require.Equal(t, newUserId, user.Id)
	enforceSecurity.AssertExpectations(t)
	userRepository.AssertExpectations(t)
}
