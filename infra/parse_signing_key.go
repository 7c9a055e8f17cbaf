package infra

import (
	"crypto/rand"
	"crypto/rsa"
	"log"

	"github.com/golang-jwt/jwt/v4"
)

func ParseOrGenerateSigningKey(pemKey string) *rsa.PrivateKey {
	if pemKey == "" {
		// Tokens signed with an ephemeral key do not survive a restart.
		log.Println("AUTHENTICATION_JWT_SIGNING_KEY is not set, generating a one-off signing key")
		key, err := rsa.GenerateKey(rand.Reader, 2048)
		if err != nil {
			log.Fatalf("could not generate RSA key: %v", err)
		}
		return key
	}

	key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(pemKey))
	if err != nil {
		log.Fatalf("could not parse AUTHENTICATION_JWT_SIGNING_KEY: %v", err)
	}
	return key
}
