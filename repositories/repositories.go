package repositories

import (
	"crypto/rsa"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repositories struct {
	ExecutorGetter      ExecutorGetter
	JwtRepository       *ThemisJwtRepository
	ThemisDbRepository  ThemisDbRepository
	BlobRepository      BlobRepository
	AssistantRepository AssistantRepository
}

func NewRepositories(
	jwtSigningKey *rsa.PrivateKey,
	connectionPool *pgxpool.Pool,
	assistantRepository AssistantRepository,
) Repositories {
	return Repositories{
		ExecutorGetter:      NewExecutorGetter(connectionPool),
		JwtRepository:       NewJWTRepository(jwtSigningKey),
		ThemisDbRepository:  ThemisDbRepository{},
		BlobRepository:      NewBlobRepository(),
		AssistantRepository: assistantRepository,
	}
}
