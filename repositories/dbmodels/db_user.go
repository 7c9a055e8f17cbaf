package dbmodels

import (
	"time"

	"github.com/themis-legal/themis-backend/models"
	"github.com/themis-legal/themis-backend/utils"
)

type DBUser struct {
	Id           string    `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	FirstName    string    `db:"first_name"`
	LastName     string    `db:"last_name"`
	Role         string    `db:"role"`
	IsActive     bool      `db:"is_active"`
	CreatedAt    time.Time `db:"created_at"`
}

const TABLE_USERS = "users"

var SelectUserColumn = utils.ColumnList[DBUser]()

func AdaptUser(db DBUser) (models.User, error) {
	return models.User{
		Id:           db.Id,
		Email:        db.Email,
		PasswordHash: db.PasswordHash,
		FirstName:    db.FirstName,
		LastName:     db.LastName,
		Role:         models.RoleFromString(db.Role),
		IsActive:     db.IsActive,
		CreatedAt:    db.CreatedAt,
	}, nil
}
