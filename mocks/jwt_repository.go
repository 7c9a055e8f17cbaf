package mocks

import (
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/themis-legal/themis-backend/models"
)

type JwtRepository struct {
	mock.Mock
}

func (r *JwtRepository) EncodeToken(expirationTime time.Time, creds models.Credentials) (string, error) {
	args := r.Called(expirationTime, creds)
	return args.String(0), args.Error(1)
}

func (r *JwtRepository) ValidateToken(token string) (models.Credentials, error) {
	args := r.Called(token)
	return args.Get(0).(models.Credentials), args.Error(1)
}
