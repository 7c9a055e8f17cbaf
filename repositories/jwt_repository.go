package repositories

import (
	"crypto/rsa"
	"fmt"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/golang-jwt/jwt/v4"

	"github.com/themis-legal/themis-backend/dto"
	"github.com/themis-legal/themis-backend/models"
)

type ThemisJwtRepository struct {
	jwtSigningPrivateKey rsa.PrivateKey
}

// Claims embeds jwt.RegisteredClaims to provide fields like expiry time.
type Claims struct {
	Credentials dto.Credentials `json:"credentials"`
	jwt.RegisteredClaims
}

var ValidationAlgo = jwt.SigningMethodRS256

func (repo *ThemisJwtRepository) EncodeToken(expirationTime time.Time, creds models.Credentials) (string, error) {
	claims := &Claims{
		Credentials: dto.AdaptCredentialDto(creds),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			Issuer:    "themis",
		},
	}

	token := jwt.NewWithClaims(ValidationAlgo, claims)
	return token.SignedString(&repo.jwtSigningPrivateKey)
}

func (repo *ThemisJwtRepository) ValidateToken(tokenString string) (models.Credentials, error) {
	keyFunc := func(token *jwt.Token) (interface{}, error) {
		method, ok := token.Method.(*jwt.SigningMethodRSA)
		if !ok || method != ValidationAlgo {
			return nil, errors.Wrapf(models.UnAuthorizedError,
				"unexpected signing method: %v", token.Header["alg"])
		}
		return &repo.jwtSigningPrivateKey.PublicKey, nil
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, keyFunc)
	if err != nil {
		return models.Credentials{}, errors.Join(
			models.UnAuthorizedError,
			errors.Wrap(err, "error parsing jwt token claims"),
		)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return dto.AdaptCredential(claims.Credentials), nil
	}
	return models.Credentials{}, fmt.Errorf("invalid jwt token")
}

func NewJWTRepository(key *rsa.PrivateKey) *ThemisJwtRepository {
	return &ThemisJwtRepository{
		jwtSigningPrivateKey: *key,
	}
}
