package dto

import (
	"github.com/themis-legal/themis-backend/models"
	"github.com/themis-legal/themis-backend/pure_utils"
)

type Identity struct {
	UserId    string `json:"user_id,omitempty"`
	Email     string `json:"email,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

type Credentials struct {
	Role          string   `json:"role"`
	ActorIdentity Identity `json:"actor_identity"`
	Permissions   []string `json:"permissions"`
}

func AdaptCredentialDto(creds models.Credentials) Credentials {
	permissions := pure_utils.Map(creds.Role.Permissions(),
		func(p models.Permission) string { return p.String() })

	return Credentials{
		Role: creds.Role.String(),
		ActorIdentity: Identity{
			UserId:    creds.ActorIdentity.UserId,
			Email:     creds.ActorIdentity.Email,
			FirstName: creds.ActorIdentity.FirstName,
			LastName:  creds.ActorIdentity.LastName,
		},
		Permissions: permissions,
	}
}

func AdaptCredential(dto Credentials) models.Credentials {
	return models.Credentials{
		Role: models.RoleFromString(dto.Role),
		ActorIdentity: models.Identity{
			UserId:    dto.ActorIdentity.UserId,
			Email:     dto.ActorIdentity.Email,
			FirstName: dto.ActorIdentity.FirstName,
			LastName:  dto.ActorIdentity.LastName,
		},
	}
}
