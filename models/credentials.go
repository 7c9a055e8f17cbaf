package models

type Identity struct {
	UserId    string
	Email     string
	FirstName string
	LastName  string
}

type Credentials struct {
	ActorIdentity Identity
	Role          Role
}

func (u User) IntoCredentials() Credentials {
	return Credentials{
		ActorIdentity: Identity{
			UserId:    u.Id,
			Email:     u.Email,
			FirstName: u.FirstName,
			LastName:  u.LastName,
		},
		Role: u.Role,
	}
}
