package models

import "time"

type User struct {
	Id           string
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Role         Role
	IsActive     bool
	CreatedAt    time.Time
}

func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

type CreateUserAttributes struct {
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Role         Role
}
