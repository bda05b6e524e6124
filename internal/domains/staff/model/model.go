package model

import "reception/shared/model"

const (
	TableName  = "staff"
	EntityName = "staff"

	FieldID         = "id"
	FieldEmail      = "email"
	FieldPassword   = "password"
	FieldRole       = "role"
	FieldFullName   = "full_name"
	FieldDepartment = "department"
	FieldLastLogin  = "last_login"
	FieldActive     = "active"
)

type Staff struct {
	ID         string  `db:"id"`
	Email      string  `db:"email"`
	Password   string  `db:"password"`
	Role       string  `db:"role"`
	FullName   *string `db:"full_name"`
	Department string  `db:"department"`
	LastLogin  *string `db:"last_login"`
	Active     bool    `db:"active"`
	model.Metadata
}
