package api

import (
	"time"

	"account-service/internal/model"
)

// swagger:model api.UserResponse
type UserResponse struct {
	ID        int       `json:"id" example:"1"`
	Username  string    `json:"username" example:"foobar"`
	Email     string    `json:"email" example:"foo@bar.com"`
	FirstName string    `json:"first_name" example:"Foo"`
	LastName  string    `json:"last_name" example:"Bar"`
	FullName  string    `json:"full_name" example:"Foo Bar"`
	Active    bool      `json:"active" example:"true"`
	IsAdmin   bool      `json:"is_admin" example:"false"`
	CreatedAt time.Time `json:"created_at"`
}

// NewUserResponse maps a stored user onto the wire shape. The password
// hash never leaves the model layer.
func NewUserResponse(u model.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		FullName:  u.FullName(),
		Active:    u.Active,
		IsAdmin:   u.IsAdmin,
		CreatedAt: u.CreatedAt,
	}
}
