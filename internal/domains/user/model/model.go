package model

import "bookinn/shared/model"

const (
	TableName  = "users"
	EntityName = "user"

	FieldID        = "id"
	FieldUsername  = "username"
	FieldPassword  = "password"
	FieldRole      = "role"
	FieldLastLogin = "last_login"
	FieldActive    = "active"
)

type User struct {
	ID        string  `db:"id"`
	Username  string  `db:"username"`
	Password  string  `db:"password"`
	Role      string  `db:"role"`
	LastLogin *string `db:"last_login"`
	Active    bool    `db:"active"`
	model.Metadata
}
