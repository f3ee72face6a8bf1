package dto

import (
	userModel "parkease/internal/domains/user/model"
	"parkease/shared/constant"
	gModel "parkease/shared/model"
	"parkease/shared/timezone"
)

type RegisterRequest struct {
	Email     string `json:"email"     validate:"required,email"`
	Password  string `json:"password"  validate:"required"`
	AdminCode string `json:"adminCode" validate:"omitempty"`
}

func (r *RegisterRequest) ToUserModel(username, storedPassword, role string) userModel.User {
	fullName := constant.DefaultUserName

	return userModel.User{
		Email:    r.Email,
		Password: storedPassword,
		FullName: &fullName,
		Role:     role,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  username,
			ModifiedBy: username,
		},
	}
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateCustomIDRequest struct {
	CustomID string `db:"custom_id" json:"customId" validate:"required"`
}

// AuthUserResponse is the user object the frontend consumes; ID carries the
// display id (USER001 style), not the surrogate key.
type AuthUserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Name  string `json:"name"`
}

// AuthResponse is the envelope for login and register replies.
type AuthResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	User    *AuthUserResponse `json:"user,omitempty"`
}

func (a *AuthUserResponse) FromModel(user userModel.User) {
	if user.CustomID != nil {
		a.ID = *user.CustomID
	}

	a.Email = user.Email
	a.Role = user.Role

	a.Name = constant.FallbackLoginName
	if user.FullName != nil && *user.FullName != constant.Empty {
		a.Name = *user.FullName
	}
}
