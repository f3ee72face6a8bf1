package model

import (
	"parkease/shared/model"
)

const (
	TableName  = "users"
	EntityName = "user"

	FieldID            = "id"
	FieldCustomID      = "custom_id"
	FieldEmail         = "email"
	FieldPassword      = "password"
	FieldFullName      = "full_name"
	FieldRole          = "role"
	FieldWalletBalance = "wallet_balance"
	FieldLoyaltyPoints = "loyalty_points"
)

type User struct {
	ID            int64   `db:"id"`
	CustomID      *string `db:"custom_id"`
	Email         string  `db:"email"`
	Password      string  `db:"password"`
	FullName      *string `db:"full_name"`
	Role          string  `db:"role"`
	WalletBalance float64 `db:"wallet_balance"`
	LoyaltyPoints int     `db:"loyalty_points"`
	model.Metadata
}
