package dto

import (
	"parkease/internal/domains/user/model"
)

type ProfileResponse struct {
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	WalletBalance float64 `json:"walletBalance"`
	LoyaltyPoints int     `json:"loyaltyPoints"`
}

func (r *ProfileResponse) FromModel(user model.User) {
	if user.FullName != nil {
		r.Name = *user.FullName
	}

	r.Email = user.Email
	r.WalletBalance = user.WalletBalance
	r.LoyaltyPoints = user.LoyaltyPoints
}
